package store

import (
	"context"
	"errors"

	"github.com/homebench-ai/sdk/eval"
)

// Common errors returned by store operations.
var (
	// ErrNotFound is returned when no profile exists for the session.
	ErrNotFound = errors.New("store: session not found")

	// ErrInvalidSession is returned when a session ID is empty.
	ErrInvalidSession = errors.New("store: invalid session ID")
)

// Store persists evaluation session state on behalf of the orchestration
// layer. The evaluation core itself is purely in-memory; a Store lets a host
// snapshot the weakness profile and stream the turn history somewhere durable
// without losing counters, error strings, or ordering.
type Store interface {
	// SaveProfile writes the current weakness profile snapshot for a session,
	// replacing any previous snapshot.
	SaveProfile(ctx context.Context, sessionID string, profile *eval.Profile) error

	// LoadProfile reads the last saved profile snapshot for a session.
	// Returns ErrNotFound if the session has no snapshot.
	LoadProfile(ctx context.Context, sessionID string) (*eval.Profile, error)

	// AppendHistory appends one scored turn to the session's history list.
	// History is append-only; entries are never reordered or removed.
	AppendHistory(ctx context.Context, sessionID string, entry eval.HistoryEntry) error

	// History reads the full turn history for a session, in call order.
	History(ctx context.Context, sessionID string) ([]eval.HistoryEntry, error)

	// Close releases the underlying connection.
	Close() error
}
