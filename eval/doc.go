// Package eval is the turn-level scoring engine and adaptive
// weakness-profiling subsystem for smart-home agent evaluation.
//
// # Scoring one turn
//
// A TurnEvaluator compares the agent's actual action sequence and resulting
// state against ground truth. Sequence comparison is strict: same length,
// same order, structural equality at every position. A failed sequence
// invalidates the turn and the final state is never inspected. The state
// check is partial: only fields declared in the expected final state are
// compared, extra state is ignored. The score is binary.
//
// # Profiling weaknesses
//
// A WeaknessAnalyzer accumulates pass/fail statistics per dimension,
// per difficulty tier, and per device as results stream in one turn at a
// time, with no reprocessing of history. The resulting Profile reveals where
// the agent under test systematically fails and feeds the next round of
// question generation.
//
// # Driving a session
//
// AdaptiveEvaluator is the facade the examiner loop calls:
//
//	ev := eval.NewAdaptiveEvaluator()
//	result := ev.EvaluateTurn(actualActions, actualState,
//	    turn.ExpectedActions, turn.ExpectedFinalState,
//	    eval.Metadata{Dimension: tc.Dimension, Difficulty: tc.Difficulty})
//	if !result.Passed() {
//	    // immediate per-turn reporting
//	}
//	profile := ev.GlobalProfile()
//	weak := profile.WeakDimensions(0.5)
//
// Evaluation is synchronous and single-threaded within a session. Hosts that
// parallelize across sessions give each session its own AdaptiveEvaluator;
// nothing is shared between instances.
package eval
