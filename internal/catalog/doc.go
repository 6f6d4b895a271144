// Package catalog bootstraps static reference data: characters, weapons
// and artifact sets keyed by their upstream natural ids.
//
// Catalog rows are not content-addressed. They are created once, either
// from a validated seed file or on first sighting of an unknown id in a
// snapshot, and never mutated afterwards (first write wins). Artifact
// ids additionally have their sub-variant digit stripped before lookup so
// all variants of one set/slot share a single row.
package catalog
