package enka

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/sango/internal/loadout"
)

// Snapshot is one fetched player showcase: the player's identity plus a
// loadout per displayed character. It is the input to build assembly and
// carries upstream natural ids untouched (artifact ids keep their
// sub-variant digit).
type Snapshot struct {
	UID        int64               `json:"uid"`
	Nickname   string              `json:"nickname"`
	Characters []CharacterSnapshot `json:"characters"`
}

// CharacterSnapshot is one character's equipped state.
type CharacterSnapshot struct {
	CharacterID int64              `json:"character_id"`
	Weapon      WeaponSnapshot     `json:"weapon"`
	Artifacts   []ArtifactSnapshot `json:"artifacts"`
}

// WeaponSnapshot is the equipped weapon with the display metadata the
// payload carries inline.
type WeaponSnapshot struct {
	ID     int64  `json:"id"`
	Icon   string `json:"icon"`
	Rarity int64  `json:"rarity"`
}

// ArtifactSnapshot is one equipped piece. Slot is the upstream EQUIP_*
// tag; Main and Substats use the raw FIGHT_PROP_* property ids, which are
// stable across locales and therefore safe to hash.
type ArtifactSnapshot struct {
	ID       int64          `json:"id"`
	Slot     string         `json:"slot"`
	Icon     string         `json:"icon"`
	Rarity   int64          `json:"rarity"`
	Main     loadout.Stat   `json:"main"`
	Substats []loadout.Stat `json:"substats"`
}

// Fetcher retrieves a player snapshot from the upstream provider.
type Fetcher interface {
	FetchPlayer(ctx context.Context, uid int64) (*Snapshot, error)
}

// UpstreamError reports a failure talking to the upstream provider.
type UpstreamError struct {
	// Status is the upstream HTTP status, 0 for transport failures.
	Status int

	// Message is a human-readable description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("upstream: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstream returns true if the error is an UpstreamError.
// Uses errors.As to handle wrapped errors.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
