package scenario

import "github.com/homebench-ai/sdk/catalog"

// ExpectedAction represents one required side-effecting call the agent under
// test must issue, in order. The only action kind in the simulated home is
// "update".
type ExpectedAction struct {
	// Action is the operation kind. Always "update" in the current catalog.
	Action string `json:"action" yaml:"action"`

	// Key is the device identifier the action targets.
	Key string `json:"key" yaml:"key"`

	// Value is the value the device must be set to.
	Value any `json:"value" yaml:"value"`
}

// Turn is one instruction/response/state-change cycle. It is ground truth:
// immutable once authored.
type Turn struct {
	// TurnID orders the turn within its test case.
	TurnID int `json:"turn_id" yaml:"turn_id"`

	// Instruction is the natural-language instruction issued to the agent.
	Instruction string `json:"instruction" yaml:"instruction"`

	// ExpectedActions is the ordered sequence of calls the agent must issue.
	ExpectedActions []ExpectedAction `json:"expected_actions" yaml:"expected_actions"`

	// ExpectedFinalState maps device identifiers to the values they must hold
	// after the turn. Partial: only the declared fields are checked.
	ExpectedFinalState map[string]any `json:"expected_final_state" yaml:"expected_final_state"`
}

// TestCase groups the turns of one authored scenario with its classification
// metadata.
type TestCase struct {
	// ScenarioID uniquely identifies the test case within a set.
	ScenarioID string `json:"scenario_id" yaml:"scenario_id"`

	// Difficulty is the challenge tier of the case.
	Difficulty catalog.Difficulty `json:"difficulty" yaml:"difficulty"`

	// Dimension is the agent-behavior category the case probes.
	Dimension catalog.Dimension `json:"dimension" yaml:"dimension"`

	// Description summarizes what the case tests.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// InitialState is the environment state before the first turn.
	InitialState map[string]any `json:"initial_state,omitempty" yaml:"initial_state,omitempty"`

	// Turns is the ordered sequence of turns the case owns.
	Turns []Turn `json:"turns" yaml:"turns"`
}

// Set is a collection of test cases with metadata. It represents a question
// bank that can be loaded from a file.
type Set struct {
	// Name identifies this scenario set.
	Name string `json:"name" yaml:"name"`

	// Version tracks the set version for reproducibility.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Cases contains the individual test cases.
	Cases []TestCase `json:"test_cases" yaml:"test_cases"`

	// Metadata stores additional set information such as author or purpose.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
