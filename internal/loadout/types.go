package loadout

import (
	"fmt"
	"strconv"
)

// Slot identifies one of the five fixed equipment positions in a build.
// Slot order is fixed for storage; hashing sorts slot identifiers and is
// therefore independent of it.
type Slot int

const (
	SlotFlower Slot = iota
	SlotFeather
	SlotSands
	SlotGoblet
	SlotCirclet

	// NumSlots is the number of equipment positions in a build.
	NumSlots = 5
)

var slotNames = [NumSlots]string{"flower", "feather", "sands", "goblet", "circlet"}

// String returns the slot's storage column name.
func (s Slot) String() string {
	if s < 0 || s >= NumSlots {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

// Slots lists all five slots in storage order.
func Slots() [NumSlots]Slot {
	return [NumSlots]Slot{SlotFlower, SlotFeather, SlotSands, SlotGoblet, SlotCirclet}
}

// MaxSubstats is the maximum number of secondary stats on one piece.
const MaxSubstats = 4

// Stat is one property/value pair on an equipment piece. Prop is the
// upstream fight-prop tag (e.g. "FIGHT_PROP_CRITICAL"); Value is the
// rolled numeric value.
type Stat struct {
	Prop  string  `json:"prop"`
	Value float64 `json:"value"`
}

// Pair returns the canonical "PROP:value" rendering used for both sorting
// and hashing. Values use the shortest decimal form that round-trips, so
// the rendering is deterministic across platforms.
func (s Stat) Pair() string {
	return s.Prop + ":" + strconv.FormatFloat(s.Value, 'f', -1, 64)
}

// Artifact is the content of one equipment piece: who owns it, which
// catalog set key it belongs to, its main stat, and up to four substats.
// Identity is computed over this content only; nothing here is mutable.
type Artifact struct {
	Player   int64  `json:"player"`
	Set      int64  `json:"set"` // catalog set key, sub-variant digit already stripped
	Main     Stat   `json:"main"`
	Substats []Stat `json:"substats,omitempty"`
}

// Build is the content of one character's equipped loadout snapshot.
// Slots holds artifact content identifiers in storage order; an empty
// string marks an unequipped slot.
type Build struct {
	Player    int64            `json:"player"`
	Character int64            `json:"character"`
	Weapon    int64            `json:"weapon"`
	Slots     [NumSlots]string `json:"slots"`
}

// EquippedSlots returns the non-empty slot identifiers in storage order.
func (b Build) EquippedSlots() []string {
	ids := make([]string, 0, NumSlots)
	for _, id := range b.Slots {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
