package eval

import (
	"reflect"
	"testing"

	"github.com/homebench-ai/sdk/scenario"
)

func lightOn() []scenario.ExpectedAction {
	return []scenario.ExpectedAction{
		{Action: "update", Key: "living_room_light", Value: "on"},
	}
}

func TestTurnEvaluator_PerfectTurn(t *testing.T) {
	evaluator := NewTurnEvaluator(lightOn(), map[string]any{"living_room_light": "on"})

	result := evaluator.Evaluate(lightOn(), map[string]any{
		"living_room_light": "on",
		"ac":                "off", // extra state is ignored
	})

	if result.Score != 1 {
		t.Errorf("Score = %d, want 1", result.Score)
	}
	if !result.SequenceMatch {
		t.Error("SequenceMatch = false, want true")
	}
	if result.StateMatch != StateMatched {
		t.Errorf("StateMatch = %v, want matched", result.StateMatch)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}
	if result.Message != "Perfect" {
		t.Errorf("Message = %q, want Perfect", result.Message)
	}
}

func TestTurnEvaluator_ActionCountMismatch(t *testing.T) {
	evaluator := NewTurnEvaluator(lightOn(), map[string]any{"living_room_light": "on"})

	result := evaluator.Evaluate([]scenario.ExpectedAction{}, map[string]any{"living_room_light": "on"})

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.SequenceMatch {
		t.Error("SequenceMatch = true, want false")
	}
	// State is never inspected on a sequence failure.
	if result.StateMatch != StateNotEvaluated {
		t.Errorf("StateMatch = %v, want not evaluated", result.StateMatch)
	}
	want := []string{"Action count mismatch: expected 1, got 0"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Errorf("Errors = %v, want %v", result.Errors, want)
	}
}

func TestTurnEvaluator_StateValueMismatch(t *testing.T) {
	evaluator := NewTurnEvaluator(lightOn(), map[string]any{"living_room_light": "on"})

	result := evaluator.Evaluate(lightOn(), map[string]any{"living_room_light": "off"})

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if !result.SequenceMatch {
		t.Error("SequenceMatch = false, want true")
	}
	if result.StateMatch != StateMismatched {
		t.Errorf("StateMatch = %v, want mismatched", result.StateMatch)
	}
	want := []string{"State mismatch [living_room_light]: expected 'on', got 'off'"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Errorf("Errors = %v, want %v", result.Errors, want)
	}
}

func TestTurnEvaluator_MissingStateKey(t *testing.T) {
	evaluator := NewTurnEvaluator(lightOn(), map[string]any{"living_room_light": "on"})

	result := evaluator.Evaluate(lightOn(), map[string]any{})

	if result.Score != 0 || result.StateMatch != StateMismatched {
		t.Errorf("result = %+v, want score 0 with mismatched state", result)
	}
	want := []string{"Missing state key [living_room_light]: expected 'on'"}
	if !reflect.DeepEqual(result.Errors, want) {
		t.Errorf("Errors = %v, want %v", result.Errors, want)
	}
}

func TestTurnEvaluator_SequenceComparison(t *testing.T) {
	expected := []scenario.ExpectedAction{
		{Action: "update", Key: "living_room_light", Value: "on"},
		{Action: "update", Key: "ac_temperature", Value: 24},
	}

	tests := []struct {
		name         string
		actual       []scenario.ExpectedAction
		wantMatch    bool
		wantErrEmpty bool
		wantErrCount int
	}{
		{
			name: "identical sequence matches",
			actual: []scenario.ExpectedAction{
				{Action: "update", Key: "living_room_light", Value: "on"},
				{Action: "update", Key: "ac_temperature", Value: 24},
			},
			wantMatch:    true,
			wantErrEmpty: true,
		},
		{
			name: "reordered but identical actions fail",
			actual: []scenario.ExpectedAction{
				{Action: "update", Key: "ac_temperature", Value: 24},
				{Action: "update", Key: "living_room_light", Value: "on"},
			},
			wantMatch:    false,
			wantErrCount: 2,
		},
		{
			name: "type-sensitive equality: int 24 is not string 24",
			actual: []scenario.ExpectedAction{
				{Action: "update", Key: "living_room_light", Value: "on"},
				{Action: "update", Key: "ac_temperature", Value: "24"},
			},
			wantMatch:    false,
			wantErrCount: 1,
		},
		{
			name: "every differing index is recorded",
			actual: []scenario.ExpectedAction{
				{Action: "update", Key: "kitchen_light", Value: "on"},
				{Action: "update", Key: "music_volume", Value: 3},
			},
			wantMatch:    false,
			wantErrCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluator := NewTurnEvaluator(expected, nil)
			result := evaluator.Evaluate(tt.actual, map[string]any{})

			if result.SequenceMatch != tt.wantMatch {
				t.Errorf("SequenceMatch = %v, want %v", result.SequenceMatch, tt.wantMatch)
			}
			if tt.wantErrEmpty && len(result.Errors) != 0 {
				t.Errorf("Errors = %v, want none", result.Errors)
			}
			if !tt.wantErrEmpty && len(result.Errors) != tt.wantErrCount {
				t.Errorf("got %d errors %v, want %d", len(result.Errors), result.Errors, tt.wantErrCount)
			}
			if !tt.wantMatch && result.StateMatch != StateNotEvaluated {
				t.Errorf("StateMatch = %v, want not evaluated on sequence failure", result.StateMatch)
			}
		})
	}
}

func TestTurnEvaluator_PartialStateSemantics(t *testing.T) {
	// Supersets of the expected partial state match: identical on every
	// expected key, arbitrary extra keys ignored.
	evaluator := NewTurnEvaluator(nil, map[string]any{
		"ac":             "on",
		"ac_temperature": 24,
	})

	result := evaluator.Evaluate(nil, map[string]any{
		"ac":                "on",
		"ac_temperature":    24,
		"living_room_light": "off",
		"front_door_lock":   "locked",
	})

	if result.Score != 1 || result.StateMatch != StateMatched {
		t.Errorf("result = %+v, want perfect score on superset state", result)
	}
}

func TestTurnEvaluator_Idempotent(t *testing.T) {
	evaluator := NewTurnEvaluator(lightOn(), map[string]any{"living_room_light": "on"})
	actual := lightOn()
	state := map[string]any{"living_room_light": "off"}

	first := evaluator.Evaluate(actual, state)
	second := evaluator.Evaluate(actual, state)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}

func TestTurnEvaluator_EmptyExpectations(t *testing.T) {
	evaluator := NewTurnEvaluator(nil, nil)

	result := evaluator.Evaluate(nil, nil)

	if result.Score != 1 {
		t.Errorf("Score = %d, want 1 for trivially satisfied expectations", result.Score)
	}
}
