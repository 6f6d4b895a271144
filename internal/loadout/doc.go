// Package loadout provides the content model for equipment pieces and builds.
//
// This package contains type definitions plus the canonical encoding and
// content hashing that give each record its identity. All other internal
// packages import loadout; loadout imports nothing internal. This ensures
// the content model remains the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Identity is content-addressed: SHA-256 over canonical JSON with
//     domain separation, hex-encoded (see hash.go)
//   - Canonical encoding is order-independent over substats and slots
//     but sensitive to their multiset content (see canonical.go)
//   - Records are validated before any hashing attempt; an invalid record
//     never reaches the store (see validate.go)
package loadout
