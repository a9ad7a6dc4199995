// Package store persists evaluation session state: weakness profile
// snapshots and the append-only turn history. The evaluation core is purely
// in-memory; persistence is the orchestration layer's job and this package is
// the SDK-provided implementation of it, backed by Redis.
package store
