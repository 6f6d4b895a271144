package loadout

import (
	"errors"
	"fmt"
)

// InvalidRecordError reports malformed or incomplete content presented for
// hashing. It is raised before any storage access and is never retried.
type InvalidRecordError struct {
	// Field names the offending field, e.g. "main.prop" or "substats".
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record: %s: %s", e.Field, e.Message)
}

// IsInvalidRecord returns true if the error is an InvalidRecordError.
// Uses errors.As to handle wrapped errors.
func IsInvalidRecord(err error) bool {
	var ir *InvalidRecordError
	return errors.As(err, &ir)
}

func invalid(field, message string) error {
	return &InvalidRecordError{Field: field, Message: message}
}

// ValidateArtifact checks that an artifact carries everything its identity
// is computed over. Substat values may legitimately be zero; props may not
// be empty.
func ValidateArtifact(a Artifact) error {
	if a.Player == 0 {
		return invalid("owner", "missing owner id")
	}
	if a.Set == 0 {
		return invalid("set", "missing catalog set key")
	}
	if a.Main.Prop == "" {
		return invalid("main.prop", "missing main stat")
	}
	if len(a.Substats) > MaxSubstats {
		return invalid("substats", fmt.Sprintf("at most %d substats, got %d", MaxSubstats, len(a.Substats)))
	}
	for i, s := range a.Substats {
		if s.Prop == "" {
			return invalid(fmt.Sprintf("substats[%d].prop", i), "missing substat prop")
		}
	}
	return nil
}

// ValidateBuild checks a build's fixed references and slot identifiers.
// Empty slots are allowed; a populated slot must look like a content
// identifier (length check only, identifiers are otherwise opaque).
func ValidateBuild(b Build) error {
	if b.Player == 0 {
		return invalid("owner", "missing owner id")
	}
	if b.Character == 0 {
		return invalid("character", "missing character id")
	}
	if b.Weapon == 0 {
		return invalid("weapon", "missing weapon id")
	}
	for i, id := range b.Slots {
		if id != "" && len(id) != IDLen {
			return invalid(fmt.Sprintf("slots[%s]", Slot(i)), "malformed content identifier")
		}
	}
	return nil
}
