package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roach88/sango/internal/loadout"
)

// createTestStore creates a file-backed store in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// seedReferences inserts the player and catalog rows that artifact and
// build foreign keys depend on.
func seedReferences(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	for _, p := range []Player{{ID: 1, Nickname: "sango"}, {ID: 42, Nickname: "traveler"}} {
		if err := s.UpsertPlayer(ctx, p); err != nil {
			t.Fatalf("UpsertPlayer(%d) failed: %v", p.ID, err)
		}
	}
	for _, key := range []int64{1400, 1401, 1541, 1552} {
		set := ArtifactSet{Key: key, Name: "Test Set", IconURL: "icon", Rarity: 5, Slot: "EQUIP_BRACER", SetName: "Test Set"}
		if err := s.InsertArtifactSet(ctx, set); err != nil {
			t.Fatalf("InsertArtifactSet(%d) failed: %v", key, err)
		}
	}
	c := Character{ID: 10000005, Name: "Aether", IconURL: "icon", Rarity: 5, Element: "Anemo", WeaponClass: "WEAPON_SWORD_ONE_HAND"}
	if err := s.InsertCharacter(context.Background(), c); err != nil {
		t.Fatalf("InsertCharacter failed: %v", err)
	}
	w := Weapon{ID: 11101, Name: "Dull Blade", IconURL: "icon", Rarity: 1, WeaponClass: "WEAPON_SWORD_ONE_HAND"}
	if err := s.InsertWeapon(context.Background(), w); err != nil {
		t.Fatalf("InsertWeapon failed: %v", err)
	}
}

// createTestArtifact returns a valid artifact owned by player 1.
func createTestArtifact(set int64) loadout.Artifact {
	return loadout.Artifact{
		Player: 1,
		Set:    set,
		Main:   loadout.Stat{Prop: "FIGHT_PROP_HP", Value: 4780},
		Substats: []loadout.Stat{
			{Prop: "FIGHT_PROP_CRITICAL", Value: 3.1},
			{Prop: "FIGHT_PROP_CRITICAL_HURT", Value: 6.2},
		},
	}
}

// countRows returns the number of rows in a table.
func countRows(t *testing.T, s *Store, table string) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
