package eval

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/homebench-ai/sdk/catalog"
	"github.com/homebench-ai/sdk/scenario"
)

// AdaptiveEvaluator is the facade the examiner loop calls directly. It scores
// turns as they stream in, keeps an append-only history of every scored turn,
// and forwards each outcome to the weakness analyzer so the global profile is
// always current.
//
// Within one session the evaluator must be driven by a single logical caller:
// concurrent EvaluateTurn calls are not safe unless the host serializes them.
// Independent sessions each get their own AdaptiveEvaluator.
type AdaptiveEvaluator struct {
	sessionID string
	analyzer  *WeaknessAnalyzer
	history   []HistoryEntry

	logger   Logger
	recorder *turnRecorder
	log      *slog.Logger
}

// NewAdaptiveEvaluator creates an evaluator for a fresh session with an empty
// history and an empty weakness profile.
func NewAdaptiveEvaluator() *AdaptiveEvaluator {
	return &AdaptiveEvaluator{
		sessionID: uuid.NewString(),
		analyzer:  NewWeaknessAnalyzer(),
		log:       slog.Default(),
	}
}

// SessionID returns this session's unique identifier.
func (a *AdaptiveEvaluator) SessionID() string {
	return a.sessionID
}

// WithLogger configures a logger that receives every history entry as it is
// appended. Logging failures never fail evaluation.
func (a *AdaptiveEvaluator) WithLogger(logger Logger) *AdaptiveEvaluator {
	a.logger = logger
	return a
}

// WithOTel configures OpenTelemetry tracing and metrics for every scored
// turn. Observability failures never fail evaluation.
func (a *AdaptiveEvaluator) WithOTel(opts OTelOptions) *AdaptiveEvaluator {
	recorder, err := newRecorder(opts)
	if err != nil {
		a.log.Warn("failed to initialize otel instruments", slog.String("error", err.Error()))
		return a
	}
	a.recorder = recorder
	return a
}

// WithSlog replaces the evaluator's diagnostic logger.
func (a *AdaptiveEvaluator) WithSlog(log *slog.Logger) *AdaptiveEvaluator {
	if log != nil {
		a.log = log
	}
	return a
}

// EvaluateTurn scores a single turn and updates the global profile.
//
// A transient TurnEvaluator is built from the expected arguments and the turn
// is scored. The result is enriched with resolved metadata and the next
// sequential index, appended to history, and recorded into the analyzer.
// When the metadata does not declare involved devices, they are inferred from
// the expected actions and expected state: what should have been touched,
// never what actually was. The caller's metadata value is never mutated; the
// resolved copy lives in the history entry.
//
// The raw per-turn result is returned to the caller for immediate reporting.
func (a *AdaptiveEvaluator) EvaluateTurn(
	actualActions []scenario.ExpectedAction,
	actualState map[string]any,
	expectedActions []scenario.ExpectedAction,
	expectedState map[string]any,
	metadata Metadata,
) TurnResult {
	evaluator := NewTurnEvaluator(expectedActions, expectedState)
	result := evaluator.Evaluate(actualActions, actualState)

	resolved := metadata.withInferredDevices(expectedActions, expectedState)

	entry := HistoryEntry{
		Index:     len(a.history),
		SessionID: a.sessionID,
		Timestamp: time.Now().UTC(),
		Result:    result,
		Metadata:  resolved,
	}
	a.history = append(a.history, entry)

	a.analyzer.Update(result, resolved)

	if a.logger != nil {
		if err := a.logger.Log(entry); err != nil {
			a.log.Warn("failed to log history entry",
				slog.Int("index", entry.Index),
				slog.String("error", err.Error()))
		}
	}
	if a.recorder != nil {
		a.recorder.RecordTurn(context.Background(), entry)
	}

	return result
}

// History returns a copy of the append-only history of scored turns, in call
// order with indices 0..N-1.
func (a *AdaptiveEvaluator) History() []HistoryEntry {
	out := make([]HistoryEntry, len(a.history))
	copy(out, a.history)
	return out
}

// GlobalProfile returns the current weakness profile snapshot. The profile is
// live: it reflects every turn evaluated so far and keeps growing as more
// turns are scored. Callers must treat it as read-only.
func (a *AdaptiveEvaluator) GlobalProfile() *Profile {
	return a.analyzer.Profile()
}

// MarkBoundary records a confirmed failure boundary in the session profile on
// behalf of the host loop.
func (a *AdaptiveEvaluator) MarkBoundary(dim catalog.Dimension, diff catalog.Difficulty) {
	a.analyzer.MarkBoundary(dim, diff)
}
