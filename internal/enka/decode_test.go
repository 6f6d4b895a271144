package enka

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sango/internal/loadout"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "showcase.json"))
	require.NoError(t, err)
	return data
}

func TestDecodeSnapshot_Fixture(t *testing.T) {
	snap, err := DecodeSnapshot(loadFixture(t))
	require.NoError(t, err)

	assert.Equal(t, int64(618285856), snap.UID)
	assert.Equal(t, "sango", snap.Nickname)
	require.Len(t, snap.Characters, 1)

	c := snap.Characters[0]
	assert.Equal(t, int64(10000002), c.CharacterID)
	assert.Equal(t, WeaponSnapshot{ID: 11509, Icon: "UI_EquipIcon_Sword_Narukami", Rarity: 5}, c.Weapon)

	require.Len(t, c.Artifacts, 2)
	flower := c.Artifacts[0]
	assert.Equal(t, int64(15412), flower.ID, "natural id keeps its sub-variant digit")
	assert.Equal(t, "EQUIP_BRACER", flower.Slot)
	assert.Equal(t, loadout.Stat{Prop: "FIGHT_PROP_HP", Value: 4780}, flower.Main)
	assert.Len(t, flower.Substats, 3)
	assert.Equal(t, loadout.Stat{Prop: "FIGHT_PROP_CRITICAL", Value: 3.1}, flower.Substats[0])

	feather := c.Artifacts[1]
	assert.Equal(t, "EQUIP_NECKLACE", feather.Slot)
	assert.Equal(t, loadout.Stat{Prop: "FIGHT_PROP_ATTACK", Value: 311}, feather.Main)
}

func TestDecodeSnapshot_NoShowcasedCharacters(t *testing.T) {
	snap, err := DecodeSnapshot([]byte(`{"playerInfo":{"nickname":"shy"},"uid":"42"}`))
	require.NoError(t, err)

	assert.Equal(t, int64(42), snap.UID)
	assert.Empty(t, snap.Characters, "a hidden showcase is not a decode error")
	assert.NotNil(t, snap.Characters)
}

func TestDecodeSnapshot_BadUID(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"playerInfo":{"nickname":"x"},"uid":"not-a-number"}`))
	assert.Error(t, err)
}

func TestDecodeSnapshot_ReliquaryWithoutMainstat(t *testing.T) {
	payload := `{
		"playerInfo": {"nickname": "x"},
		"uid": "42",
		"avatarInfoList": [{
			"avatarId": 10000002,
			"equipList": [{
				"itemId": 15412,
				"flat": {"itemType": "ITEM_RELIQUARY", "equipType": "EQUIP_BRACER"}
			}]
		}]
	}`
	_, err := DecodeSnapshot([]byte(payload))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no mainstat")
}

func TestDecodeSnapshot_NotJSON(t *testing.T) {
	_, err := DecodeSnapshot([]byte("<html>maintenance</html>"))
	assert.Error(t, err)
}
