package eval

import (
	"fmt"

	"github.com/homebench-ai/sdk/scenario"
)

// TurnOutcome carries the actual execution record for one turn: the action
// sequence the agent sent and the environment state after those actions ran.
type TurnOutcome struct {
	// TurnID matches the ground-truth turn being answered.
	TurnID int `json:"turn_id" yaml:"turn_id"`

	// Actions is the ordered sequence of calls the agent actually issued.
	Actions []scenario.ExpectedAction `json:"action_sequence" yaml:"action_sequence"`

	// FinalState is the environment state after the actions executed.
	FinalState map[string]any `json:"final_state" yaml:"final_state"`
}

// TurnDetail pairs one turn's score with its diagnostic result.
type TurnDetail struct {
	// TurnID identifies the ground-truth turn.
	TurnID int `json:"turn_id" yaml:"turn_id"`

	// Score is the binary turn score.
	Score int `json:"score" yaml:"score"`

	// Message is a one-line summary of the outcome.
	Message string `json:"message" yaml:"message"`

	// Result holds the full turn result when the turn was actually scored.
	Result *TurnResult `json:"result,omitempty" yaml:"result,omitempty"`
}

// ScenarioResult aggregates the turn scores of one whole test case.
type ScenarioResult struct {
	// ScenarioID identifies the scored test case.
	ScenarioID string `json:"scenario_id" yaml:"scenario_id"`

	// TotalScore is the sum of turn scores.
	TotalScore int `json:"total_score" yaml:"total_score"`

	// MaxScore is the number of turns, one attainable point each.
	MaxScore int `json:"max_score" yaml:"max_score"`

	// TurnScores lists the per-turn scores in turn order.
	TurnScores []int `json:"turn_scores" yaml:"turn_scores"`

	// TurnDetails lists the per-turn diagnostics in turn order.
	TurnDetails []TurnDetail `json:"turn_details" yaml:"turn_details"`

	// Summary is a one-line "scored X of Y" report.
	Summary string `json:"summary" yaml:"summary"`
}

// ScenarioEvaluator scores every turn of one test case against the actual
// per-turn outcomes collected by the examiner.
type ScenarioEvaluator struct {
	testCase scenario.TestCase
}

// NewScenarioEvaluator creates an evaluator for one test case.
func NewScenarioEvaluator(tc scenario.TestCase) *ScenarioEvaluator {
	return &ScenarioEvaluator{testCase: tc}
}

// EvaluateAllTurns scores each ground-truth turn against the outcome at the
// same position. A turn with no corresponding outcome scores 0 with a
// missing-result message; evaluation continues with the remaining turns.
func (s *ScenarioEvaluator) EvaluateAllTurns(outcomes []TurnOutcome) ScenarioResult {
	turnScores := make([]int, 0, len(s.testCase.Turns))
	turnDetails := make([]TurnDetail, 0, len(s.testCase.Turns))

	for i, turn := range s.testCase.Turns {
		if i >= len(outcomes) {
			turnScores = append(turnScores, 0)
			turnDetails = append(turnDetails, TurnDetail{
				TurnID:  turn.TurnID,
				Score:   0,
				Message: "Missing actual result for this turn",
			})
			continue
		}

		evaluator := NewTurnEvaluator(turn.ExpectedActions, turn.ExpectedFinalState)
		result := evaluator.Evaluate(outcomes[i].Actions, outcomes[i].FinalState)

		turnScores = append(turnScores, result.Score)
		turnDetails = append(turnDetails, TurnDetail{
			TurnID:  turn.TurnID,
			Score:   result.Score,
			Message: result.Message,
			Result:  &result,
		})
	}

	totalScore := 0
	for _, score := range turnScores {
		totalScore += score
	}
	maxScore := len(s.testCase.Turns)

	return ScenarioResult{
		ScenarioID:  s.testCase.ScenarioID,
		TotalScore:  totalScore,
		MaxScore:    maxScore,
		TurnScores:  turnScores,
		TurnDetails: turnDetails,
		Summary:     fmt.Sprintf("Scenario %s: %d/%d", s.testCase.ScenarioID, totalScore, maxScore),
	}
}
