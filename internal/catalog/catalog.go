package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/sango/internal/store"
)

// PlaceholderIconURL stands in for catalog entries whose icon is unknown
// at first sighting.
const PlaceholderIconURL = "https://static.wikia.nocookie.net/gensin-impact/images/8/84/Unknown_Icon.png/revision/latest?cb=20220509204455"

// placeholderName marks rows created from a snapshot reference before any
// seed supplied real display metadata.
const placeholderName = "Unknown"

// SetKey derives the artifact catalog key from an upstream artifact id by
// discarding its lowest decimal digit. Upstream encodes the initial
// substat count in that digit, so e.g. 15412 and 15413 are sub-variants
// of one set/slot and must collapse to key 1541.
//
// This is a legacy data-cleaning rule preserved bit-for-bit from the
// upstream id scheme; see the regression test before changing it.
func SetKey(naturalID int64) int64 {
	return naturalID / 10
}

// SetGroup collapses a catalog set key to its set-level identity. The
// digit above the sub-variant digit encodes the slot, so the five
// per-slot rows of one artifact set (1541..1545) share group 154. Set
// bonuses activate per group, never per row.
func SetGroup(setKey int64) int64 {
	return setKey / 10
}

// Bootstrap performs lookup-or-insert of static catalog rows. All inserts
// are first-write-wins: a row that exists is never touched. Player
// nicknames follow the opposite policy (see store.UpsertPlayer).
type Bootstrap struct {
	store *store.Store
	log   *slog.Logger
}

// New creates a Bootstrap over the given store. A nil logger disables
// logging.
func New(s *store.Store, log *slog.Logger) *Bootstrap {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Bootstrap{store: s, log: log}
}

// Character ensures a catalog row exists for the character id. Empty
// display fields fall back to placeholders so a row can be created from a
// bare snapshot reference.
func (b *Bootstrap) Character(ctx context.Context, c store.Character) error {
	if c.ID == 0 {
		return fmt.Errorf("bootstrap character: missing natural id")
	}
	fillCharacterDefaults(&c)
	if err := b.store.InsertCharacter(ctx, c); err != nil {
		return fmt.Errorf("bootstrap character %d: %w", c.ID, err)
	}
	b.log.Debug("catalog character ensured", "c_id", c.ID)
	return nil
}

// Weapon ensures a catalog row exists for the weapon id.
func (b *Bootstrap) Weapon(ctx context.Context, w store.Weapon) error {
	if w.ID == 0 {
		return fmt.Errorf("bootstrap weapon: missing natural id")
	}
	fillWeaponDefaults(&w)
	if err := b.store.InsertWeapon(ctx, w); err != nil {
		return fmt.Errorf("bootstrap weapon %d: %w", w.ID, err)
	}
	b.log.Debug("catalog weapon ensured", "w_id", w.ID)
	return nil
}

// ArtifactSet ensures a catalog row exists for the upstream artifact id
// and returns the stripped set key the row is stored under. The Key field
// of the supplied metadata is ignored; it is always derived here.
func (b *Bootstrap) ArtifactSet(ctx context.Context, naturalID int64, meta store.ArtifactSet) (int64, error) {
	if naturalID == 0 {
		return 0, fmt.Errorf("bootstrap artifact set: missing natural id")
	}
	meta.Key = SetKey(naturalID)
	fillArtifactSetDefaults(&meta)
	if err := b.store.InsertArtifactSet(ctx, meta); err != nil {
		return 0, fmt.Errorf("bootstrap artifact set %d: %w", naturalID, err)
	}
	b.log.Debug("catalog artifact set ensured", "a_id", naturalID, "set_key", meta.Key)
	return meta.Key, nil
}

func fillCharacterDefaults(c *store.Character) {
	if c.Name == "" {
		c.Name = placeholderName
	}
	if c.IconURL == "" {
		c.IconURL = PlaceholderIconURL
	}
}

func fillWeaponDefaults(w *store.Weapon) {
	if w.Name == "" {
		w.Name = placeholderName
	}
	if w.IconURL == "" {
		w.IconURL = PlaceholderIconURL
	}
}

func fillArtifactSetDefaults(a *store.ArtifactSet) {
	if a.Name == "" {
		a.Name = placeholderName
	}
	if a.SetName == "" {
		a.SetName = placeholderName
	}
	if a.IconURL == "" {
		a.IconURL = PlaceholderIconURL
	}
}
