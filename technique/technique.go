package technique

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/autotune/cost"
)

// Coordinate is a point in (0,1]^D, one component per declared parameter in
// declared order.
type Coordinate []float64

// IndexTechnique explores the flat index space [0,|SP|).
type IndexTechnique interface {
	// Initialize prepares the technique to explore [0,size).
	Initialize(size int64)

	// Finalize releases any resources held by the technique. Called
	// exactly once, after the orchestrator stops driving it.
	Finalize()

	// NextIndices proposes the next batch of candidate indices. A nil or
	// empty return signals the technique has no further candidates.
	NextIndices() []int64

	// ReportCosts returns exactly the outcomes for the batch last
	// returned by NextIndices, keyed by index.
	ReportCosts(costs map[int64]cost.Cost)
}

// CoordinateTechnique explores the continuous coordinate cube (0,1]^D.
type CoordinateTechnique interface {
	// Initialize prepares the technique to explore (0,1]^d.
	Initialize(d int)

	// Finalize releases any resources held by the technique. Called
	// exactly once, after the orchestrator stops driving it.
	Finalize()

	// NextCoordinates proposes the next batch of candidate coordinates. A
	// nil or empty return signals the technique has no further
	// candidates.
	NextCoordinates() []Coordinate

	// ReportCosts returns exactly the outcomes for the batch last
	// returned by NextCoordinates, keyed by CoordinateKey(coordinate).
	ReportCosts(costs map[string]cost.Cost)
}

// CoordinateKey renders c as a stable map key. Go map keys cannot be
// slices, so coordinate-space proposals are matched to their reported
// costs by this string form; both NextCoordinates and the orchestrator's
// ReportCosts call derive the key from the identical []float64 values (no
// arithmetic happens to them in between), so the formatting only needs to
// be injective, not human-friendly.
func CoordinateKey(c Coordinate) string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}
