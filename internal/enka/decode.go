package enka

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/roach88/sango/internal/loadout"
)

// Raw showcase payload shapes, limited to the fields this service reads.
// The upstream payload carries far more (fight props, talents, costume
// data); unknown fields are ignored by encoding/json.

type rawPayload struct {
	UID            string          `json:"uid"`
	PlayerInfo     rawPlayerInfo   `json:"playerInfo"`
	AvatarInfoList []rawAvatarInfo `json:"avatarInfoList"`
}

type rawPlayerInfo struct {
	Nickname string `json:"nickname"`
}

type rawAvatarInfo struct {
	AvatarID  int64      `json:"avatarId"`
	EquipList []rawEquip `json:"equipList"`
}

type rawEquip struct {
	ItemID int64        `json:"itemId"`
	Flat   rawEquipFlat `json:"flat"`
}

type rawEquipFlat struct {
	ItemType          string       `json:"itemType"` // ITEM_WEAPON | ITEM_RELIQUARY
	Icon              string       `json:"icon"`
	RankLevel         int64        `json:"rankLevel"`
	EquipType         string       `json:"equipType"` // EQUIP_* for reliquaries
	ReliquaryMainstat *rawMainstat `json:"reliquaryMainstat"`
	ReliquarySubstats []rawSubstat `json:"reliquarySubstats"`
}

type rawMainstat struct {
	MainPropID string  `json:"mainPropId"`
	StatValue  float64 `json:"statValue"`
}

type rawSubstat struct {
	AppendPropID string  `json:"appendPropId"`
	StatValue    float64 `json:"statValue"`
}

const (
	itemTypeWeapon    = "ITEM_WEAPON"
	itemTypeReliquary = "ITEM_RELIQUARY"
)

// DecodeSnapshot parses a raw showcase payload into a Snapshot. Characters
// with no equipped weapon are kept (weapon id 0 fails validation later,
// per-character); a payload with no showcased characters decodes to an
// empty Characters slice, which is not an error here.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode showcase payload: %w", err)
	}

	uid, err := strconv.ParseInt(raw.UID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode showcase payload: bad uid %q: %w", raw.UID, err)
	}

	snap := &Snapshot{
		UID:        uid,
		Nickname:   raw.PlayerInfo.Nickname,
		Characters: make([]CharacterSnapshot, 0, len(raw.AvatarInfoList)),
	}

	for _, avatar := range raw.AvatarInfoList {
		cs := CharacterSnapshot{CharacterID: avatar.AvatarID}
		for _, equip := range avatar.EquipList {
			switch equip.Flat.ItemType {
			case itemTypeWeapon:
				cs.Weapon = WeaponSnapshot{
					ID:     equip.ItemID,
					Icon:   equip.Flat.Icon,
					Rarity: equip.Flat.RankLevel,
				}
			case itemTypeReliquary:
				artifact, err := decodeReliquary(equip)
				if err != nil {
					return nil, fmt.Errorf("decode showcase payload: avatar %d: %w", avatar.AvatarID, err)
				}
				cs.Artifacts = append(cs.Artifacts, artifact)
			}
		}
		snap.Characters = append(snap.Characters, cs)
	}

	return snap, nil
}

func decodeReliquary(equip rawEquip) (ArtifactSnapshot, error) {
	if equip.Flat.ReliquaryMainstat == nil {
		return ArtifactSnapshot{}, fmt.Errorf("reliquary %d has no mainstat", equip.ItemID)
	}

	artifact := ArtifactSnapshot{
		ID:     equip.ItemID,
		Slot:   equip.Flat.EquipType,
		Icon:   equip.Flat.Icon,
		Rarity: equip.Flat.RankLevel,
		Main: loadout.Stat{
			Prop:  equip.Flat.ReliquaryMainstat.MainPropID,
			Value: equip.Flat.ReliquaryMainstat.StatValue,
		},
	}
	for _, sub := range equip.Flat.ReliquarySubstats {
		artifact.Substats = append(artifact.Substats, loadout.Stat{
			Prop:  sub.AppendPropID,
			Value: sub.StatValue,
		})
	}
	return artifact, nil
}
