package eval

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/homebench-ai/sdk/scenario"
)

// TurnEvaluator scores one interaction: an expected action sequence and an
// expected partial final state versus the actual ones. The expectations are
// fixed at construction; Evaluate is a pure function of its inputs.
type TurnEvaluator struct {
	expectedActions []scenario.ExpectedAction
	expectedState   map[string]any
}

// NewTurnEvaluator creates an evaluator for one turn's ground truth.
func NewTurnEvaluator(expectedActions []scenario.ExpectedAction, expectedFinalState map[string]any) *TurnEvaluator {
	return &TurnEvaluator{
		expectedActions: expectedActions,
		expectedState:   expectedFinalState,
	}
}

// Evaluate compares the actual execution against the expectations.
//
// The sequence check runs first: a length mismatch fails immediately with a
// single error; otherwise every differing index is recorded. A failed
// sequence invalidates the turn regardless of the incidental final state, so
// the state is never inspected and StateMatch reports not evaluated.
//
// The state check is partial: only keys declared in the expected final state
// are compared, extra keys in the actual state are ignored. A missing key or
// a value not structurally equal to the expected one is an error.
//
// The score is binary: 1 if sequence and state both matched, 0 otherwise.
// Evaluate never fails; every mismatch is expressed as data in the result.
func (e *TurnEvaluator) Evaluate(actualActions []scenario.ExpectedAction, actualFinalState map[string]any) TurnResult {
	errors := []string{}

	// Sequence check
	if len(actualActions) != len(e.expectedActions) {
		errors = append(errors, fmt.Sprintf("Action count mismatch: expected %d, got %d",
			len(e.expectedActions), len(actualActions)))
	} else {
		for i, expected := range e.expectedActions {
			if !actionsEqual(expected, actualActions[i]) {
				errors = append(errors, fmt.Sprintf("Action #%d mismatch: expected %v, got %v",
					i, formatAction(expected), formatAction(actualActions[i])))
			}
		}
	}

	if len(errors) > 0 {
		return TurnResult{
			Score:         0,
			SequenceMatch: false,
			StateMatch:    StateNotEvaluated,
			Errors:        errors,
			Message:       "Sequence mismatch",
		}
	}

	// State check, only reached when the sequence matched
	stateMatch := StateMatched
	for _, key := range sortedKeys(e.expectedState) {
		expectedValue := e.expectedState[key]
		actualValue, ok := actualFinalState[key]
		switch {
		case !ok:
			errors = append(errors, fmt.Sprintf("Missing state key [%s]: expected '%v'",
				key, expectedValue))
			stateMatch = StateMismatched
		case !valuesEqual(expectedValue, actualValue):
			errors = append(errors, fmt.Sprintf("State mismatch [%s]: expected '%v', got '%v'",
				key, expectedValue, actualValue))
			stateMatch = StateMismatched
		}
	}

	score := 0
	message := "State mismatch"
	if stateMatch == StateMatched {
		score = 1
		message = "Perfect"
	}

	return TurnResult{
		Score:         score,
		SequenceMatch: true,
		StateMatch:    stateMatch,
		Errors:        errors,
		Message:       message,
	}
}

// actionsEqual compares two actions by structural equality: same action kind,
// same device key, same value with exact type-sensitive equality. The int 24
// and the string "24" are not equal.
func actionsEqual(expected, actual scenario.ExpectedAction) bool {
	if expected.Action != actual.Action || expected.Key != actual.Key {
		return false
	}
	return valuesEqual(expected.Value, actual.Value)
}

// valuesEqual is strict structural equality with no coercion between types.
func valuesEqual(expected, actual any) bool {
	return reflect.DeepEqual(expected, actual)
}

// formatAction renders an action for error messages.
func formatAction(a scenario.ExpectedAction) string {
	return fmt.Sprintf("{action: %s, key: %s, value: %v}", a.Action, a.Key, a.Value)
}

// sortedKeys returns map keys in sorted order so error output is stable.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
