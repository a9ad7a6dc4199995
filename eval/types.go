package eval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/homebench-ai/sdk/catalog"
	"github.com/homebench-ai/sdk/scenario"
)

// StateMatch is the tri-state outcome of the final-state check.
// State is only inspected after the action sequence matched; a sequence
// failure leaves the state not evaluated.
type StateMatch int

const (
	// StateNotEvaluated means the sequence check failed, so the final state
	// was never inspected.
	StateNotEvaluated StateMatch = iota

	// StateMatched means every expected state field held its expected value.
	StateMatched

	// StateMismatched means at least one expected state field was missing or
	// held a different value.
	StateMismatched
)

// Evaluated returns true if the state check was actually performed.
func (s StateMatch) Evaluated() bool {
	return s != StateNotEvaluated
}

// String returns a human-readable representation of the state outcome.
func (s StateMatch) String() string {
	switch s {
	case StateMatched:
		return "matched"
	case StateMismatched:
		return "mismatched"
	default:
		return "not_evaluated"
	}
}

// MarshalJSON serializes the tri-state as true, false, or null so that
// persisted results keep the conventional nullable-boolean wire shape.
func (s StateMatch) MarshalJSON() ([]byte, error) {
	switch s {
	case StateMatched:
		return []byte("true"), nil
	case StateMismatched:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON parses true, false, or null back into the tri-state.
func (s *StateMatch) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = StateNotEvaluated
	case bytes.Equal(data, []byte("true")):
		*s = StateMatched
	case bytes.Equal(data, []byte("false")):
		*s = StateMismatched
	default:
		return fmt.Errorf("invalid state_match value: %s", data)
	}
	return nil
}

// TurnResult is the outcome of scoring one turn. It is produced fresh per
// evaluation call and never mutated after creation.
type TurnResult struct {
	// Score is binary: 1 if the sequence and state both matched, 0 otherwise.
	Score int `json:"score" yaml:"score"`

	// SequenceMatch reports whether the actual action sequence equaled the
	// expected sequence element-wise.
	SequenceMatch bool `json:"sequence_match" yaml:"sequence_match"`

	// StateMatch reports the final-state check outcome. Not evaluated when
	// the sequence check already failed.
	StateMatch StateMatch `json:"state_match" yaml:"state_match"`

	// Errors lists every mismatch found, in check order.
	Errors []string `json:"errors" yaml:"errors"`

	// Message is a one-line summary of the outcome.
	Message string `json:"message" yaml:"message"`
}

// Passed returns true if the turn scored full marks.
func (r TurnResult) Passed() bool {
	return r.Score == 1
}

// Metadata classifies one evaluated turn for weakness bucketing. It travels
// alongside the turn result; the evaluator fills in InvolvedDevices when the
// caller leaves it empty.
type Metadata struct {
	// Dimension is the behavior category the turn probes.
	Dimension catalog.Dimension `json:"dimension,omitempty" yaml:"dimension,omitempty"`

	// Difficulty is the challenge tier of the turn.
	Difficulty catalog.Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`

	// InvolvedDevices lists the device identifiers the turn touches. When
	// empty, it is inferred from the expected actions and expected state.
	InvolvedDevices []string `json:"involved_devices,omitempty" yaml:"involved_devices,omitempty"`
}

// withInferredDevices returns a copy of the metadata with InvolvedDevices
// populated from the ground-truth side of the turn: the union of every key
// named by an expected action and every key in the expected final state.
// Devices are inferred from what should have been touched, never from what
// the agent actually did. Metadata that already declares devices is returned
// unchanged.
func (m Metadata) withInferredDevices(actions []scenario.ExpectedAction, state map[string]any) Metadata {
	if len(m.InvolvedDevices) > 0 {
		return m
	}

	seen := make(map[string]bool)
	for _, action := range actions {
		if action.Key != "" {
			seen[action.Key] = true
		}
	}
	for key := range state {
		seen[key] = true
	}

	devices := make([]string, 0, len(seen))
	for device := range seen {
		devices = append(devices, device)
	}
	sort.Strings(devices)

	m.InvolvedDevices = devices
	return m
}

// HistoryEntry is one scored turn enriched with its originating metadata and
// a zero-based sequence index. History is append-only: entries are never
// reordered or removed.
type HistoryEntry struct {
	// Index is the zero-based position of the entry in call order.
	Index int `json:"index" yaml:"index"`

	// SessionID identifies the evaluation session the entry belongs to.
	SessionID string `json:"session_id" yaml:"session_id"`

	// Timestamp is when the turn was scored.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Result is the raw per-turn outcome.
	Result TurnResult `json:"result" yaml:"result"`

	// Metadata is the resolved classification for the turn, with inferred
	// devices filled in.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// verify JSON round-trip interfaces at compile time
var (
	_ json.Marshaler   = StateMatch(0)
	_ json.Unmarshaler = (*StateMatch)(nil)
)
