package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/sango/internal/loadout"
)

// GetArtifact returns the artifact row with the given content identifier,
// or ErrNotFound.
func (s *Store) GetArtifact(ctx context.Context, id string) (*StoredArtifact, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, u_id, set_key,
		       mainstat_prop, mainstat_value,
		       substat1_prop, substat1_value,
		       substat2_prop, substat2_value,
		       substat3_prop, substat3_value,
		       substat4_prop, substat4_value
		FROM artifacts
		WHERE id = ?
	`, id)

	a, err := scanArtifact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get artifact: %w", err)
	}
	return a, nil
}

// GetBuild returns the build row with the given content identifier, or
// ErrNotFound.
func (s *Store) GetBuild(ctx context.Context, id string) (*StoredBuild, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, u_id, c_id, w_id, flower, feather, sands, goblet, circlet
		FROM builds
		WHERE id = ?
	`, id)

	var (
		b     StoredBuild
		slots [loadout.NumSlots]sql.NullString
	)
	err := row.Scan(&b.ID, &b.Player, &b.Character, &b.Weapon,
		&slots[loadout.SlotFlower], &slots[loadout.SlotFeather],
		&slots[loadout.SlotSands], &slots[loadout.SlotGoblet],
		&slots[loadout.SlotCirclet])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get build: %w", err)
	}
	for i, slot := range slots {
		if slot.Valid {
			b.Slots[i] = slot.String
		}
	}
	return &b, nil
}

// PlayerBuilds returns a summary of every build belonging to one player,
// joined with catalog display names. Ordering is deterministic but carries
// no meaning for callers.
//
// Returns an empty slice (not nil) if the player has no builds.
func (s *Store) PlayerBuilds(ctx context.Context, playerID int64) ([]BuildSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.c_id, b.w_id, c.name, w.name
		FROM builds b
		JOIN characters c ON b.c_id = c.c_id
		JOIN weapons w ON b.w_id = w.w_id
		WHERE b.u_id = ?
		ORDER BY b.id COLLATE BINARY ASC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("query player builds: %w", err)
	}
	defer rows.Close()

	summaries := []BuildSummary{}
	for rows.Next() {
		var bs BuildSummary
		if err := rows.Scan(&bs.ID, &bs.CharacterID, &bs.WeaponID, &bs.CharacterName, &bs.WeaponName); err != nil {
			return nil, fmt.Errorf("scan player build: %w", err)
		}
		summaries = append(summaries, bs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate player builds: %w", err)
	}
	return summaries, nil
}

// PlayerArtifacts returns every artifact row belonging to one player with
// deterministic ordering. Returns an empty slice (not nil) if none exist.
func (s *Store) PlayerArtifacts(ctx context.Context, playerID int64) ([]StoredArtifact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, u_id, set_key,
		       mainstat_prop, mainstat_value,
		       substat1_prop, substat1_value,
		       substat2_prop, substat2_value,
		       substat3_prop, substat3_value,
		       substat4_prop, substat4_value
		FROM artifacts
		WHERE u_id = ?
		ORDER BY id COLLATE BINARY ASC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("query player artifacts: %w", err)
	}
	defer rows.Close()

	artifacts := []StoredArtifact{}
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player artifact: %w", err)
		}
		artifacts = append(artifacts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate player artifacts: %w", err)
	}
	return artifacts, nil
}

// GetPlayer returns a player row or ErrNotFound.
func (s *Store) GetPlayer(ctx context.Context, id int64) (*Player, error) {
	var p Player
	err := s.db.QueryRowContext(ctx,
		`SELECT u_id, nickname FROM players WHERE u_id = ?`, id).
		Scan(&p.ID, &p.Nickname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get player: %w", err)
	}
	return &p, nil
}

// GetCharacter returns a catalog character row or ErrNotFound.
func (s *Store) GetCharacter(ctx context.Context, id int64) (*Character, error) {
	var c Character
	err := s.db.QueryRowContext(ctx, `
		SELECT c_id, name, icon_url, rarity, element, weapon_class
		FROM characters WHERE c_id = ?
	`, id).Scan(&c.ID, &c.Name, &c.IconURL, &c.Rarity, &c.Element, &c.WeaponClass)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get character: %w", err)
	}
	return &c, nil
}

// GetWeapon returns a catalog weapon row or ErrNotFound.
func (s *Store) GetWeapon(ctx context.Context, id int64) (*Weapon, error) {
	var w Weapon
	err := s.db.QueryRowContext(ctx, `
		SELECT w_id, name, icon_url, rarity, weapon_class
		FROM weapons WHERE w_id = ?
	`, id).Scan(&w.ID, &w.Name, &w.IconURL, &w.Rarity, &w.WeaponClass)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get weapon: %w", err)
	}
	return &w, nil
}

// GetArtifactSet returns a catalog artifact-set row by its stripped set
// key, or ErrNotFound.
func (s *Store) GetArtifactSet(ctx context.Context, key int64) (*ArtifactSet, error) {
	var a ArtifactSet
	err := s.db.QueryRowContext(ctx, `
		SELECT set_key, name, icon_url, rarity, slot, set_name
		FROM artifact_sets WHERE set_key = ?
	`, key).Scan(&a.Key, &a.Name, &a.IconURL, &a.Rarity, &a.Slot, &a.SetName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get artifact set: %w", err)
	}
	return &a, nil
}

// scanner abstracts over *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// scanArtifact reads one artifact row, collapsing NULL substat columns
// back into the variable-length substat slice.
func scanArtifact(row scanner) (*StoredArtifact, error) {
	var (
		a     StoredArtifact
		props [loadout.MaxSubstats]sql.NullString
		vals  [loadout.MaxSubstats]sql.NullFloat64
	)
	err := row.Scan(&a.ID, &a.Player, &a.Set,
		&a.Main.Prop, &a.Main.Value,
		&props[0], &vals[0],
		&props[1], &vals[1],
		&props[2], &vals[2],
		&props[3], &vals[3])
	if err != nil {
		return nil, err
	}
	for i := range props {
		if props[i].Valid {
			a.Substats = append(a.Substats, loadout.Stat{Prop: props[i].String, Value: vals[i].Float64})
		}
	}
	return &a, nil
}
