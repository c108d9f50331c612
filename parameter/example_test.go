package parameter_test

import (
	"fmt"

	"github.com/katalvlaran/autotune/parameter"
)

// ExampleValidate_interdependent mirrors the workgroup-size /
// local-size scenario: WPT must divide N, and LS must divide N/WPT.
func ExampleValidate_interdependent() {
	n, _ := parameter.IntSetRange(12)
	wptRange, _ := parameter.NewIntervalRange(1, 12, 1)
	lsRange, _ := parameter.NewIntervalRange(1, 12, 1)

	nParam, _ := parameter.New("N", n, nil)
	wpt, _ := parameter.New("WPT", wptRange, &parameter.Constraint{
		DependsOn: []string{"N"},
		Predicate: func(b map[string]parameter.Value) bool {
			return b["N"].Int()%b["WPT"].Int() == 0
		},
	})
	ls, _ := parameter.New("LS", lsRange, &parameter.Constraint{
		DependsOn: []string{"N", "WPT"},
		Predicate: func(b map[string]parameter.Value) bool {
			return (b["N"].Int()/b["WPT"].Int())%b["LS"].Int() == 0
		},
	})

	err := parameter.Validate([]parameter.Parameter{nParam, wpt, ls})
	fmt.Println(err)
	// Output:
	// <nil>
}
