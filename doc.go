// Package autotune is a generic auto-tuner: given a set of tuning
// parameters (each with a finite range and an optional constraint that may
// depend on earlier parameters), a cost function, a search technique, and
// an abort condition, it finds the parameter assignment minimizing cost.
//
// Its defining contribution is the principled handling of *interdependent*
// tuning parameters: the constrained Cartesian product of parameter ranges
// is built once as a "chain-of-trees" — one prefix tree per maximal
// contiguous group of mutually-dependent parameters — and exposed to
// search techniques both as an enumerable flat index space [0,|SP|) and as
// a continuous coordinate cube (0,1]^D.
//
// Everything is organized under one subpackage per concern:
//
//	parameter/   — parameter & range declarations, configurations
//	searchspace/ — chain-of-trees generator, index/coordinate mapping
//	technique/   — search-technique interfaces + reference implementations
//	abort/       — abort-condition interface, concrete kinds, combinators
//	cost/        — the cost-function contract
//	tuningdata/  — read-only run summary and history
//	tuner/       — the orchestrator: Tune, MakeStep, logging
//
// A minimal run:
//
//	p1, _ := parameter.IntSetRange(1, 2)
//	p2, _ := parameter.IntSetRange(10, 20)
//	P1, _ := parameter.New("P1", p1, nil)
//	P2, _ := parameter.New("P2", p2, nil)
//
//	t, err := tuner.New([]parameter.Parameter{P1, P2})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	costFn := func(cfg parameter.Configuration) (cost.Cost, error) {
//		return cost.Cost(cfg["P1"].Int() + cfg["P2"].Int()), nil
//	}
//
//	if err := t.Tune(context.Background(), costFn, nil); err != nil {
//		log.Fatal(err)
//	}
//	best, _ := t.Data().Best()
package autotune
