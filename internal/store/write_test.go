package store

import (
	"context"
	"testing"

	"github.com/roach88/sango/internal/loadout"
)

func TestPutArtifact_Idempotent(t *testing.T) {
	s := createTestStore(t)
	seedReferences(t, s)
	ctx := context.Background()

	a := createTestArtifact(1541)

	id1, inserted, err := s.PutArtifact(ctx, a)
	if err != nil {
		t.Fatalf("first PutArtifact failed: %v", err)
	}
	if !inserted {
		t.Error("first PutArtifact should insert a row")
	}

	id2, inserted, err := s.PutArtifact(ctx, a)
	if err != nil {
		t.Fatalf("second PutArtifact failed: %v", err)
	}
	if inserted {
		t.Error("second PutArtifact must resolve to the existing row")
	}
	if id1 != id2 {
		t.Errorf("identifiers differ: %s vs %s", id1, id2)
	}
	if n := countRows(t, s, "artifacts"); n != 1 {
		t.Errorf("expected exactly 1 artifact row, got %d", n)
	}
}

func TestPutArtifact_SubstatOrderConverges(t *testing.T) {
	s := createTestStore(t)
	seedReferences(t, s)
	ctx := context.Background()

	a := createTestArtifact(1541)
	b := createTestArtifact(1541)
	b.Substats[0], b.Substats[1] = b.Substats[1], b.Substats[0]

	id1, _, err := s.PutArtifact(ctx, a)
	if err != nil {
		t.Fatalf("PutArtifact failed: %v", err)
	}
	id2, inserted, err := s.PutArtifact(ctx, b)
	if err != nil {
		t.Fatalf("PutArtifact (permuted) failed: %v", err)
	}
	if inserted {
		t.Error("permuted substats are the same content; no second row expected")
	}
	if id1 != id2 {
		t.Errorf("identifiers differ: %s vs %s", id1, id2)
	}
}

func TestPutArtifact_DistinctContentGetsDistinctRows(t *testing.T) {
	s := createTestStore(t)
	seedReferences(t, s)
	ctx := context.Background()

	a := createTestArtifact(1541)
	b := createTestArtifact(1541)
	b.Substats[0].Value = 3.9

	id1, _, err := s.PutArtifact(ctx, a)
	if err != nil {
		t.Fatalf("PutArtifact failed: %v", err)
	}
	id2, inserted, err := s.PutArtifact(ctx, b)
	if err != nil {
		t.Fatalf("PutArtifact failed: %v", err)
	}
	if !inserted {
		t.Error("changed substat value is new content; expected an insert")
	}
	if id1 == id2 {
		t.Error("different content must not share an identifier")
	}
	if n := countRows(t, s, "artifacts"); n != 2 {
		t.Errorf("expected 2 artifact rows, got %d", n)
	}
}

func TestPutArtifact_RejectsInvalidBeforeStorage(t *testing.T) {
	s := createTestStore(t)
	seedReferences(t, s)

	a := createTestArtifact(1541)
	a.Main.Prop = ""

	_, _, err := s.PutArtifact(context.Background(), a)
	if !loadout.IsInvalidRecord(err) {
		t.Fatalf("expected InvalidRecordError, got %v", err)
	}
	if n := countRows(t, s, "artifacts"); n != 0 {
		t.Errorf("invalid record must not touch storage, found %d rows", n)
	}
}

func TestPutBuild_Idempotent(t *testing.T) {
	s := createTestStore(t)
	seedReferences(t, s)
	ctx := context.Background()

	flowerID, _, err := s.PutArtifact(ctx, createTestArtifact(1541))
	if err != nil {
		t.Fatalf("PutArtifact failed: %v", err)
	}

	b := loadout.Build{Player: 1, Character: 10000005, Weapon: 11101}
	b.Slots[loadout.SlotFlower] = flowerID

	id1, inserted, err := s.PutBuild(ctx, b)
	if err != nil {
		t.Fatalf("first PutBuild failed: %v", err)
	}
	if !inserted {
		t.Error("first PutBuild should insert a row")
	}

	id2, inserted, err := s.PutBuild(ctx, b)
	if err != nil {
		t.Fatalf("second PutBuild failed: %v", err)
	}
	if inserted {
		t.Error("second PutBuild must resolve to the existing row")
	}
	if id1 != id2 {
		t.Errorf("identifiers differ: %s vs %s", id1, id2)
	}
	if n := countRows(t, s, "builds"); n != 1 {
		t.Errorf("expected exactly 1 build row, got %d", n)
	}
}

func TestPutBuild_RequiresExistingArtifacts(t *testing.T) {
	s := createTestStore(t)
	seedReferences(t, s)

	// A well-formed identifier that no artifact row carries.
	b := loadout.Build{Player: 1, Character: 10000005, Weapon: 11101}
	b.Slots[loadout.SlotFlower] = loadout.MustArtifactID(createTestArtifact(1552))

	_, _, err := s.PutBuild(context.Background(), b)
	if err == nil {
		t.Fatal("expected foreign key violation for dangling slot reference")
	}
}

func TestUpsertPlayer_LatestNicknameWins(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.UpsertPlayer(ctx, Player{ID: 7, Nickname: "before"}); err != nil {
		t.Fatalf("UpsertPlayer failed: %v", err)
	}
	if err := s.UpsertPlayer(ctx, Player{ID: 7, Nickname: "after"}); err != nil {
		t.Fatalf("second UpsertPlayer failed: %v", err)
	}

	p, err := s.GetPlayer(ctx, 7)
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if p.Nickname != "after" {
		t.Errorf("nickname = %q, expected latest write %q", p.Nickname, "after")
	}
	if n := countRows(t, s, "players"); n != 1 {
		t.Errorf("expected 1 player row, got %d", n)
	}
}

func TestUpsertPlayer_EmptyNicknameKeepsStored(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.UpsertPlayer(ctx, Player{ID: 7, Nickname: "traveler"}); err != nil {
		t.Fatalf("UpsertPlayer failed: %v", err)
	}
	if err := s.UpsertPlayer(ctx, Player{ID: 7, Nickname: ""}); err != nil {
		t.Fatalf("empty-nickname UpsertPlayer failed: %v", err)
	}

	p, err := s.GetPlayer(ctx, 7)
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if p.Nickname != "traveler" {
		t.Errorf("nickname = %q, expected stored %q to survive", p.Nickname, "traveler")
	}
}

func TestUpsertPlayer_EmptyNicknameStillCreatesRow(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.UpsertPlayer(ctx, Player{ID: 9, Nickname: ""}); err != nil {
		t.Fatalf("UpsertPlayer failed: %v", err)
	}

	p, err := s.GetPlayer(ctx, 9)
	if err != nil {
		t.Fatalf("GetPlayer failed: %v", err)
	}
	if p.Nickname != "" {
		t.Errorf("nickname = %q, expected empty", p.Nickname)
	}
}

func TestCatalogInserts_FirstWriteWins(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first := Character{ID: 10000002, Name: "Ayaka", IconURL: "icon-a", Rarity: 5, Element: "Cryo", WeaponClass: "WEAPON_SWORD_ONE_HAND"}
	if err := s.InsertCharacter(ctx, first); err != nil {
		t.Fatalf("InsertCharacter failed: %v", err)
	}

	second := first
	second.Name = "Renamed"
	second.IconURL = "icon-b"
	if err := s.InsertCharacter(ctx, second); err != nil {
		t.Fatalf("second InsertCharacter failed: %v", err)
	}

	c, err := s.GetCharacter(ctx, 10000002)
	if err != nil {
		t.Fatalf("GetCharacter failed: %v", err)
	}
	if c.Name != "Ayaka" || c.IconURL != "icon-a" {
		t.Errorf("catalog metadata was overwritten: %+v", c)
	}
	if n := countRows(t, s, "characters"); n != 1 {
		t.Errorf("expected 1 character row, got %d", n)
	}
}

func TestInsertArtifactSet_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	set := ArtifactSet{Key: 1541, Name: "Shimenawa's Reminiscence", IconURL: "icon", Rarity: 5, Slot: "EQUIP_BRACER", SetName: "Shimenawa's Reminiscence"}
	for i := 0; i < 3; i++ {
		if err := s.InsertArtifactSet(ctx, set); err != nil {
			t.Fatalf("InsertArtifactSet iteration %d failed: %v", i, err)
		}
	}
	if n := countRows(t, s, "artifact_sets"); n != 1 {
		t.Errorf("expected 1 artifact_sets row, got %d", n)
	}
}
