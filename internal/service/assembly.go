package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/sango/internal/enka"
	"github.com/roach88/sango/internal/loadout"
	"github.com/roach88/sango/internal/store"
)

// equipTypeSlots maps upstream EQUIP_* tags to build slots.
var equipTypeSlots = map[string]loadout.Slot{
	"EQUIP_BRACER":   loadout.SlotFlower,
	"EQUIP_NECKLACE": loadout.SlotFeather,
	"EQUIP_SHOES":    loadout.SlotSands,
	"EQUIP_RING":     loadout.SlotGoblet,
	"EQUIP_DRESS":    loadout.SlotCirclet,
}

// BuildOutcome is the result of assembling one character's build.
type BuildOutcome struct {
	CharacterID int64      `json:"character_id"`
	BuildID     string     `json:"build_id"`
	Inserted    bool       `json:"inserted"`
	CritValue   float64    `json:"crit_value"`
	SetBonuses  []SetBonus `json:"set_bonuses,omitempty"`
}

// FetchAndRecord fetches one player's showcase from upstream and records
// it. The returned outcomes cover the characters that assembled cleanly;
// the error, if non-nil, aggregates per-character failures or reports a
// fetch failure.
func (s *Service) FetchAndRecord(ctx context.Context, uid int64) ([]BuildOutcome, error) {
	if s.fetcher == nil {
		return nil, ErrNoFetcher
	}
	snap, err := s.fetcher.FetchPlayer(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.RecordSnapshot(ctx, snap)
}

// RecordSnapshot persists one player snapshot: upserts the player,
// bootstraps catalog rows as needed, and assembles one build per
// showcased character.
//
// A failure while assembling one character aborts that character only;
// its already-inserted pieces remain valid content-addressed rows, and
// the other characters still assemble. Per-character errors are joined
// into the returned error alongside the successful outcomes.
//
// Resubmitting an identical snapshot returns the same build identifiers
// and writes no new rows.
func (s *Service) RecordSnapshot(ctx context.Context, snap *enka.Snapshot) ([]BuildOutcome, error) {
	if snap == nil || snap.UID == 0 {
		return nil, &loadout.InvalidRecordError{Field: "owner", Message: "missing owner id"}
	}

	if err := s.store.UpsertPlayer(ctx, store.Player{ID: snap.UID, Nickname: snap.Nickname}); err != nil {
		return nil, err
	}

	outcomes := make([]BuildOutcome, 0, len(snap.Characters))
	var errs []error
	for _, ch := range snap.Characters {
		outcome, err := s.assembleCharacter(ctx, snap.UID, ch)
		if err != nil {
			s.log.Warn("build assembly failed",
				"uid", snap.UID, "character", ch.CharacterID, "error", err)
			errs = append(errs, fmt.Errorf("character %d: %w", ch.CharacterID, err))
			continue
		}
		s.log.Info("build recorded",
			"uid", snap.UID, "character", ch.CharacterID,
			"build", outcome.BuildID, "inserted", outcome.Inserted)
		outcomes = append(outcomes, outcome)
	}
	return outcomes, errors.Join(errs...)
}

// assembleCharacter runs one build assembly pass. Each equipped slot is
// resolved to a content identifier before the next is attempted, and the
// build row is only written after every slot identifier is known. The
// referential ordering guarantee lives here, not in deferred constraint
// checking.
func (s *Service) assembleCharacter(ctx context.Context, uid int64, ch enka.CharacterSnapshot) (BuildOutcome, error) {
	if err := s.catalog.Character(ctx, store.Character{ID: ch.CharacterID}); err != nil {
		return BuildOutcome{}, err
	}
	if ch.Weapon.ID == 0 {
		return BuildOutcome{}, &loadout.InvalidRecordError{Field: "weapon", Message: "missing weapon id"}
	}
	err := s.catalog.Weapon(ctx, store.Weapon{
		ID:      ch.Weapon.ID,
		IconURL: iconURL(ch.Weapon.Icon),
		Rarity:  ch.Weapon.Rarity,
	})
	if err != nil {
		return BuildOutcome{}, err
	}

	build := loadout.Build{Player: uid, Character: ch.CharacterID, Weapon: ch.Weapon.ID}
	for _, art := range ch.Artifacts {
		slot, ok := equipTypeSlots[art.Slot]
		if !ok {
			return BuildOutcome{}, &loadout.InvalidRecordError{
				Field:   "slot",
				Message: fmt.Sprintf("unknown equip type %q", art.Slot),
			}
		}

		setKey, err := s.catalog.ArtifactSet(ctx, art.ID, store.ArtifactSet{
			IconURL: iconURL(art.Icon),
			Rarity:  art.Rarity,
			Slot:    art.Slot,
		})
		if err != nil {
			return BuildOutcome{}, err
		}

		id, _, err := s.store.PutArtifact(ctx, loadout.Artifact{
			Player:   uid,
			Set:      setKey,
			Main:     art.Main,
			Substats: art.Substats,
		})
		if err != nil {
			return BuildOutcome{}, err
		}
		build.Slots[slot] = id
	}

	id, inserted, err := s.store.PutBuild(ctx, build)
	if err != nil {
		return BuildOutcome{}, err
	}

	bonuses, err := s.activeSetBonuses(ctx, ch.Artifacts)
	if err != nil {
		return BuildOutcome{}, err
	}

	return BuildOutcome{
		CharacterID: ch.CharacterID,
		BuildID:     id,
		Inserted:    inserted,
		CritValue:   CritValue(ch.Artifacts),
		SetBonuses:  bonuses,
	}, nil
}

// iconURL resolves an upstream icon name to its public URL. Empty names
// stay empty so catalog bootstrap can substitute its placeholder.
func iconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf("%s/ui/%s.png", enka.DefaultBaseURL, icon)
}
