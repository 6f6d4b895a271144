package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sango/internal/enka"
	"github.com/roach88/sango/internal/loadout"
	"github.com/roach88/sango/internal/service"
	"github.com/roach88/sango/internal/store"
)

// execute runs the CLI against a throwaway database and captures stdout.
func execute(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(append([]string{"--db", dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sango.db")
	seedPath := filepath.Join(dir, "seed.json")
	seedJSON := `{
  "characters": [
    {"id": 10000002, "name": "Kamisato Ayaka", "icon_url": "https://enka.network/ui/UI_AvatarIcon_Ayaka.png", "rarity": 5, "element": "Cryo", "weapon_class": "WEAPON_SWORD_ONE_HAND"}
  ],
  "weapons": [
    {"id": 11509, "name": "Mistsplitter Reforged", "icon_url": "https://enka.network/ui/UI_EquipIcon_Sword_Narukami.png", "rarity": 5, "weapon_class": "WEAPON_SWORD_ONE_HAND"}
  ],
  "artifact_sets": [
    {"id": 15412, "name": "Capricious Visage", "icon_url": "https://enka.network/ui/UI_RelicIcon_15041_4.png", "rarity": 5, "slot": "EQUIP_BRACER", "set_name": "Shimenawa's Reminiscence"}
  ]
}`
	require.NoError(t, os.WriteFile(seedPath, []byte(seedJSON), 0o644))

	out, err := execute(t, dbPath, "seed", seedPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 characters, 1 weapons, 1 artifact sets")

	// Re-running is first-write-wins and reports the same counts.
	out, err = execute(t, dbPath, "seed", seedPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 characters, 1 weapons, 1 artifact sets")
}

func TestSeedCommand_RejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(`{"characters": [{"name": "missing id"}]}`), 0o644))

	_, err := execute(t, filepath.Join(dir, "sango.db"), "seed", seedPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPlayerCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sango.db")
	recordFixture(t, dbPath)

	out, err := execute(t, dbPath, "player", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "traveler (uid 42): 1 builds")
}

func TestPlayerCommand_UnknownPlayer(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sango.db")

	_, err := execute(t, dbPath, "player", "42")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestPlayerCommand_BadUID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sango.db")

	_, err := execute(t, dbPath, "player", "abc")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestBuildCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sango.db")
	buildID := recordFixture(t, dbPath)

	out, err := execute(t, dbPath, "build", buildID)
	require.NoError(t, err)
	assert.Contains(t, out, "build "+buildID)
	assert.Contains(t, out, "owner     42")
	assert.Contains(t, out, "flower")
}

func TestBuildCommand_BadID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sango.db")

	_, err := execute(t, dbPath, "build", "deadbeef")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFetchCommand_BadUID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sango.db")

	_, err := execute(t, dbPath, "fetch", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// recordFixture stores one complete build for uid 42 and returns its id.
func recordFixture(t *testing.T, dbPath string) string {
	t.Helper()
	s, err := store.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	svc, err := service.New(service.Config{Store: s})
	require.NoError(t, err)

	snap := &enka.Snapshot{
		UID:      42,
		Nickname: "traveler",
		Characters: []enka.CharacterSnapshot{{
			CharacterID: 10000005,
			Weapon:      enka.WeaponSnapshot{ID: 11101, Icon: "UI_EquipIcon_Sword_Blunt", Rarity: 1},
			Artifacts: []enka.ArtifactSnapshot{{
				ID:     15412,
				Slot:   "EQUIP_BRACER",
				Icon:   "UI_RelicIcon_15021_4",
				Rarity: 5,
				Main:   loadout.Stat{Prop: "FIGHT_PROP_HP", Value: 4780},
			}},
		}},
	}
	outcomes, err := svc.RecordSnapshot(context.Background(), snap)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	return outcomes[0].BuildID
}
