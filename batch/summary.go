package batch

import (
	"math"
	"time"

	"github.com/katalvlaran/jumppoint/jps"
)

// costTolerance absorbs float rounding between path costs summed differently.
const costTolerance = 1e-6

// Summary aggregates a batch.
type Summary struct {
	Total    int
	Found    int // StatusOK or StatusTrivial
	Blocked  int
	Failed   int // allocation failures and invalid scenarios
	Cost     float64
	Expanded int
	Duration time.Duration

	// Baseline aggregates; zero unless the batch ran WithBaseline.
	BaselineExpanded int
	BaselineDuration time.Duration
	Mismatches       int // outcomes where found-ness or cost differ from the baseline
}

// Summarize folds outcomes into a Summary.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		s.Total++
		switch {
		case o.Status.Found():
			s.Found++
			s.Cost += o.Cost
		case o.Status == jps.StatusBlocked:
			s.Blocked++
		default:
			s.Failed++
		}
		s.Expanded += o.Expanded
		s.Duration += o.Duration

		if !o.Baseline {
			continue
		}
		s.BaselineExpanded += o.BaselineExpanded
		s.BaselineDuration += o.BaselineDuration
		if mismatch(o) {
			s.Mismatches++
		}
	}
	return s
}

// Speedup is the ratio of baseline to search expansions, 0 without baseline.
func (s Summary) Speedup() float64 {
	if s.Expanded == 0 || s.BaselineExpanded == 0 {
		return 0
	}
	return float64(s.BaselineExpanded) / float64(s.Expanded)
}

func mismatch(o Outcome) bool {
	if o.Status != jps.StatusOK && o.Status != jps.StatusTrivial && o.Status != jps.StatusBlocked {
		return false
	}
	baseFound := !math.IsNaN(o.BaselineCost)
	if baseFound != o.Status.Found() {
		return true
	}
	return baseFound && math.Abs(o.BaselineCost-o.Cost) > costTolerance
}
