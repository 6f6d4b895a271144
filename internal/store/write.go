package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/sango/internal/loadout"
)

// PutArtifact inserts a content-addressed artifact row, computing its
// identifier first. Uses ON CONFLICT(id) DO NOTHING: a conflict means the
// exact same content is already stored, which is the normal dedup path,
// not an error. Returns the identifier and whether a new row was written.
//
// Validation failures surface as loadout.InvalidRecordError before any
// storage access.
func (s *Store) PutArtifact(ctx context.Context, a loadout.Artifact) (id string, inserted bool, err error) {
	id, err = loadout.ArtifactID(a)
	if err != nil {
		return "", false, err
	}

	// Substats are stored in canonical order so the row reads back in the
	// same shape it was hashed in.
	subs := canonicalSubstats(a.Substats)

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO artifacts
		(id, u_id, set_key,
		 mainstat_prop, mainstat_value,
		 substat1_prop, substat1_value,
		 substat2_prop, substat2_value,
		 substat3_prop, substat3_value,
		 substat4_prop, substat4_value)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id, a.Player, a.Set,
		a.Main.Prop, a.Main.Value,
		subs[0].prop, subs[0].value,
		subs[1].prop, subs[1].value,
		subs[2].prop, subs[2].value,
		subs[3].prop, subs[3].value,
	)
	if err != nil {
		return "", false, fmt.Errorf("put artifact: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("put artifact: rows affected: %w", err)
	}
	return id, n > 0, nil
}

// PutBuild inserts a content-addressed build row. Same idempotency
// discipline as PutArtifact: repeated submissions of identical content
// converge on one row and the same identifier.
//
// All referenced artifact rows must already exist; the service layer
// guarantees this by resolving every slot before calling PutBuild.
func (s *Store) PutBuild(ctx context.Context, b loadout.Build) (id string, inserted bool, err error) {
	id, err = loadout.BuildID(b)
	if err != nil {
		return "", false, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO builds
		(id, u_id, c_id, w_id, flower, feather, sands, goblet, circlet)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id, b.Player, b.Character, b.Weapon,
		nullable(b.Slots[loadout.SlotFlower]),
		nullable(b.Slots[loadout.SlotFeather]),
		nullable(b.Slots[loadout.SlotSands]),
		nullable(b.Slots[loadout.SlotGoblet]),
		nullable(b.Slots[loadout.SlotCirclet]),
	)
	if err != nil {
		return "", false, fmt.Errorf("put build: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("put build: rows affected: %w", err)
	}
	return id, n > 0, nil
}

// UpsertPlayer creates or refreshes a player row. Unlike catalog rows,
// the nickname follows the latest fetch (latest write wins), except that
// an empty nickname never overwrites a stored one: a payload without
// player info is not a rename. The id is immutable.
func (s *Store) UpsertPlayer(ctx context.Context, p Player) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (u_id, nickname)
		VALUES (?, ?)
		ON CONFLICT(u_id) DO UPDATE SET nickname = excluded.nickname
		WHERE excluded.nickname <> ''
	`, p.ID, p.Nickname)
	if err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}

// InsertCharacter inserts a catalog character row if its natural id is
// not yet present. Existing metadata is never overwritten by later
// bootstrap passes (first write wins).
func (s *Store) InsertCharacter(ctx context.Context, c Character) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO characters (c_id, name, icon_url, rarity, element, weapon_class)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(c_id) DO NOTHING
	`, c.ID, c.Name, c.IconURL, c.Rarity, c.Element, c.WeaponClass)
	if err != nil {
		return fmt.Errorf("insert character: %w", err)
	}
	return nil
}

// InsertWeapon inserts a catalog weapon row if absent (first write wins).
func (s *Store) InsertWeapon(ctx context.Context, w Weapon) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weapons (w_id, name, icon_url, rarity, weapon_class)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(w_id) DO NOTHING
	`, w.ID, w.Name, w.IconURL, w.Rarity, w.WeaponClass)
	if err != nil {
		return fmt.Errorf("insert weapon: %w", err)
	}
	return nil
}

// InsertArtifactSet inserts a catalog artifact-set row if absent (first
// write wins). The caller supplies an already-stripped set key.
func (s *Store) InsertArtifactSet(ctx context.Context, a ArtifactSet) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO artifact_sets (set_key, name, icon_url, rarity, slot, set_name)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(set_key) DO NOTHING
	`, a.Key, a.Name, a.IconURL, a.Rarity, a.Slot, a.SetName)
	if err != nil {
		return fmt.Errorf("insert artifact set: %w", err)
	}
	return nil
}

type substatColumn struct {
	prop  any
	value any
}

// canonicalSubstats sorts substats by their canonical pair rendering and
// pads to the four column slots with NULLs.
func canonicalSubstats(subs []loadout.Stat) [loadout.MaxSubstats]substatColumn {
	sorted := append([]loadout.Stat(nil), subs...)
	slices.SortFunc(sorted, func(a, b loadout.Stat) int {
		return strings.Compare(a.Pair(), b.Pair())
	})

	var cols [loadout.MaxSubstats]substatColumn
	for i := range cols {
		if i < len(sorted) {
			cols[i] = substatColumn{prop: sorted[i].Prop, value: sorted[i].Value}
		} else {
			cols[i] = substatColumn{prop: nil, value: nil}
		}
	}
	return cols
}

// nullable maps an empty slot identifier to NULL.
func nullable(id string) any {
	if id == "" {
		return nil
	}
	return id
}
