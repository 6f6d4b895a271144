// Package store provides SQLite-backed durable storage for the build
// tracker.
//
// Four table groups:
//   - Catalog: characters, weapons, artifact_sets: natural-id keyed,
//     first write wins, never mutated
//   - Players: upsertable, nickname follows the latest fetch
//   - Artifacts: content-addressed equipment pieces, append-only
//   - Builds: content-addressed loadout snapshots with five nullable
//     slot references into artifacts
//
// # Critical Patterns
//
// Idempotent insert: artifact and build rows are keyed by their content
// identifier and written with ON CONFLICT(id) DO NOTHING. A unique-key
// conflict means two submissions carried identical content; both converge
// on the same identifier and neither sees an error. At most one row per
// distinct content identifier ever exists.
//
// Referential ordering: a build row only references artifact identifiers
// that have already been written. The service layer sequences the inserts
// explicitly; the slot foreign keys are a backstop.
//
// Deterministic reads: list queries ORDER BY id COLLATE BINARY and return
// empty slices, never nil.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//   - single connection: SQLite allows one writer; concurrent assembly
//     passes serialize through the pool
//
// All content identifiers are computed via internal/loadout using
// canonical JSON and SHA-256 with domain separation.
package store
