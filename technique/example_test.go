package technique_test

import (
	"fmt"

	"github.com/katalvlaran/autotune/cost"
	"github.com/katalvlaran/autotune/technique"
)

// ExampleRoundRobin_NextIndices shows the batch-and-report cycle of an
// IndexTechnique: propose a batch, evaluate it, report costs, repeat until
// the batch comes back empty.
func ExampleRoundRobin_NextIndices() {
	rr := technique.NewRoundRobin(technique.WithBatchSize(2))
	rr.Initialize(5)

	for {
		batch := rr.NextIndices()
		if len(batch) == 0 {
			break
		}
		fmt.Println(batch)
		rr.ReportCosts(map[int64]cost.Cost{})
	}
	// Output:
	// [0 1]
	// [2 3]
	// [4]
}
