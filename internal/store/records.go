package store

import (
	"errors"

	"github.com/roach88/sango/internal/loadout"
)

// ErrNotFound is returned by point lookups when no row matches.
// Absence is an expected outcome, not a storage failure.
var ErrNotFound = errors.New("store: not found")

// Character is a catalog row for one playable character.
type Character struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IconURL     string `json:"icon_url"`
	Rarity      int64  `json:"rarity"`
	Element     string `json:"element"`
	WeaponClass string `json:"weapon_class"`
}

// Weapon is a catalog row for one weapon.
type Weapon struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IconURL     string `json:"icon_url"`
	Rarity      int64  `json:"rarity"`
	WeaponClass string `json:"weapon_class"`
}

// ArtifactSet is a catalog row for one artifact set/slot combination,
// keyed by the stripped set key (see internal/catalog).
type ArtifactSet struct {
	Key     int64  `json:"key"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
	Rarity  int64  `json:"rarity"`
	Slot    string `json:"slot"`
	SetName string `json:"set_name"`
}

// Player is an owner row. The nickname tracks the latest fetch.
type Player struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

// StoredArtifact is an artifact row together with its content identifier.
type StoredArtifact struct {
	ID string `json:"id"`
	loadout.Artifact
}

// StoredBuild is a build row together with its content identifier.
type StoredBuild struct {
	ID string `json:"id"`
	loadout.Build
}

// BuildSummary is one row of a player's build listing.
type BuildSummary struct {
	ID            string `json:"id"`
	CharacterID   int64  `json:"character_id"`
	WeaponID      int64  `json:"weapon_id"`
	CharacterName string `json:"character_name"`
	WeaponName    string `json:"weapon_name"`
}
