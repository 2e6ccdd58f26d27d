// Package store provides durable history for cipher runs.
//
// Every transform executed with recording enabled is appended to a
// SQLite event log: which cipher, which key, which mode, what went in
// and what came out, plus the full step trace. Runs are grouped into
// sessions and stamped with a monotonic logical sequence number, never
// a wall-clock ordering.
//
// Because every transform is pure and deterministic, a recorded session
// can be replayed: each run is re-executed through the registry and the
// fresh output compared against the stored one. A divergence means the
// stored row was tampered with or the engine changed behavior - replay
// is the determinism check, not a recovery mechanism.
package store
