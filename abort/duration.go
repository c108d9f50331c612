package abort

import (
	"fmt"
	"time"

	"github.com/katalvlaran/autotune/tuningdata"
)

// Duration stops a run once D has elapsed since the run's StartTime.
type Duration struct {
	D time.Duration
}

// NewDuration constructs a Duration condition.
func NewDuration(d time.Duration) Duration {
	return Duration{D: d}
}

func (d Duration) Stop(td *tuningdata.TuningData) bool {
	return time.Since(td.StartTime()) >= d.D
}

func (d Duration) ID() string {
	return fmt.Sprintf("Duration(%s)", d.D)
}
