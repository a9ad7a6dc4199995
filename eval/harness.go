package eval

import (
	"os"
	"testing"

	"github.com/homebench-ai/sdk/catalog"
	"github.com/homebench-ai/sdk/scenario"
)

// Run executes an evaluation test, skipping unless the GOEVALS=1 environment
// variable is set. This lets evaluation tests live alongside regular unit
// tests without slowing down the normal test suite.
//
// Example:
//
//	func TestPrecisionScenarios(t *testing.T) {
//	    eval.Run(t, "precision_easy", func(e *eval.E) {
//	        result := e.EvaluateTurn(actualActions, actualState, turn, meta)
//	        e.RequirePass(result)
//	    })
//	}
func Run(t *testing.T, name string, f func(e *E)) {
	if os.Getenv("GOEVALS") != "1" {
		t.Skip("GOEVALS=1 not set")
		return
	}

	t.Run(name, func(t *testing.T) {
		f(&E{
			T:         t,
			Evaluator: NewAdaptiveEvaluator(),
		})
	})
}

// E wraps testing.TB with an adaptive evaluation session, so go test can
// drive live agent evaluations and assert on the resulting profile.
type E struct {
	// T is the underlying testing.TB instance.
	T testing.TB

	// Evaluator is the session evaluator all turns are scored through.
	Evaluator *AdaptiveEvaluator
}

// EvaluateTurn scores the actual execution of one ground-truth turn through
// the session evaluator.
func (e *E) EvaluateTurn(actualActions []scenario.ExpectedAction, actualState map[string]any, turn scenario.Turn, metadata Metadata) TurnResult {
	return e.Evaluator.EvaluateTurn(actualActions, actualState, turn.ExpectedActions, turn.ExpectedFinalState, metadata)
}

// RequirePass fails the test if the turn did not score full marks.
// It uses Errorf, not Fatalf, so a test can assert several turns.
func (e *E) RequirePass(result TurnResult) {
	if !result.Passed() {
		e.T.Errorf("turn failed: %s", result.Message)
		for _, msg := range result.Errors {
			e.T.Logf("  %s", msg)
		}
	}
}

// RequirePassRate fails the test if the pass rate of a dimension bucket is
// below the threshold.
func (e *E) RequirePassRate(dim catalog.Dimension, threshold float64) {
	stats, ok := e.Evaluator.GlobalProfile().ByDimension[dim.String()]
	if !ok {
		e.T.Errorf("unknown dimension %q", dim)
		return
	}
	if rate := stats.PassRate(); rate < threshold {
		e.T.Errorf("dimension %s pass rate %.3f below threshold %.3f (%d/%d passed)",
			dim, rate, threshold, stats.Passed, stats.Total)
	}
}
