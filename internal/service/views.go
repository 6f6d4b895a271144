package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/sango/internal/catalog"
	"github.com/roach88/sango/internal/loadout"
	"github.com/roach88/sango/internal/store"
)

// BuildView is one build resolved against the catalog and its artifact
// rows, keyed by slot name for the wire format.
type BuildView struct {
	ID        string                           `json:"id"`
	Player    int64                            `json:"player"`
	Character *store.Character                 `json:"character"`
	Weapon    *store.Weapon                    `json:"weapon"`
	Slots     map[string]*store.StoredArtifact `json:"slots"`
}

// PlayerView is one player's build listing.
type PlayerView struct {
	Player *store.Player `json:"player"`
	Builds []BuildLink   `json:"builds"`
}

// BuildLink is one row of a player listing, with the shareable path.
type BuildLink struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Link        string `json:"link"`
}

// GetBuild resolves a build identifier into its character, weapon and
// per-slot artifact records. Returns store.ErrNotFound for unknown
// identifiers.
func (s *Service) GetBuild(ctx context.Context, id string) (*BuildView, error) {
	b, err := s.store.GetBuild(ctx, id)
	if err != nil {
		return nil, err
	}

	character, err := s.store.GetCharacter(ctx, b.Character)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", id, err)
	}
	weapon, err := s.store.GetWeapon(ctx, b.Weapon)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", id, err)
	}

	view := &BuildView{
		ID:        b.ID,
		Player:    b.Player,
		Character: character,
		Weapon:    weapon,
		Slots:     make(map[string]*store.StoredArtifact, loadout.NumSlots),
	}
	for _, slot := range loadout.Slots() {
		artifactID := b.Slots[slot]
		if artifactID == "" {
			continue
		}
		artifact, err := s.store.GetArtifact(ctx, artifactID)
		if err != nil {
			// Slot references are written only after their artifact rows,
			// so absence here is a storage-level inconsistency.
			return nil, fmt.Errorf("build %s slot %s: %w", id, slot, err)
		}
		view.Slots[slot.String()] = artifact
	}
	return view, nil
}

// PlayerBuilds returns the player's profile and one link per stored
// build. Returns store.ErrNotFound for unknown players.
func (s *Service) PlayerBuilds(ctx context.Context, uid int64) (*PlayerView, error) {
	player, err := s.store.GetPlayer(ctx, uid)
	if err != nil {
		return nil, err
	}
	summaries, err := s.store.PlayerBuilds(ctx, uid)
	if err != nil {
		return nil, err
	}

	view := &PlayerView{Player: player, Builds: make([]BuildLink, 0, len(summaries))}
	for _, b := range summaries {
		view.Builds = append(view.Builds, BuildLink{
			ID:          b.ID,
			DisplayName: fmt.Sprintf("%s - %s", b.CharacterName, b.WeaponName),
			Link:        "/b/" + b.ID,
		})
	}
	return view, nil
}

// CatalogKind names a catalog table for CatalogEntry lookups.
type CatalogKind string

const (
	KindCharacter   CatalogKind = "character"
	KindWeapon      CatalogKind = "weapon"
	KindArtifactSet CatalogKind = "artifact-set"
)

// CatalogEntry looks up one catalog row by kind and natural id. For
// artifact sets the id may be either the upstream id (sub-variant digit
// attached) or the stored set key; the exact key is tried first, then the
// stripped form.
func (s *Service) CatalogEntry(ctx context.Context, kind CatalogKind, naturalID int64) (any, error) {
	switch kind {
	case KindCharacter:
		return s.store.GetCharacter(ctx, naturalID)
	case KindWeapon:
		return s.store.GetWeapon(ctx, naturalID)
	case KindArtifactSet:
		set, err := s.store.GetArtifactSet(ctx, naturalID)
		if errors.Is(err, store.ErrNotFound) {
			return s.store.GetArtifactSet(ctx, catalog.SetKey(naturalID))
		}
		return set, err
	default:
		return nil, &loadout.InvalidRecordError{Field: "kind", Message: fmt.Sprintf("unknown catalog kind %q", kind)}
	}
}
