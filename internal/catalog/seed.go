package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/roach88/sango/internal/store"
)

//go:embed schema.cue
var schemaCUE string

// Seed is a validated catalog seed file.
type Seed struct {
	Characters []SeedCharacter   `json:"characters"`
	Weapons    []SeedWeapon      `json:"weapons"`
	Sets       []SeedArtifactSet `json:"artifact_sets"`
}

// SeedCharacter mirrors #Character in schema.cue.
type SeedCharacter struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IconURL     string `json:"icon_url"`
	Rarity      int64  `json:"rarity"`
	Element     string `json:"element"`
	WeaponClass string `json:"weapon_class"`
}

// SeedWeapon mirrors #Weapon in schema.cue.
type SeedWeapon struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	IconURL     string `json:"icon_url"`
	Rarity      int64  `json:"rarity"`
	WeaponClass string `json:"weapon_class"`
}

// SeedArtifactSet mirrors #ArtifactSet in schema.cue. ID is the upstream
// natural id, sub-variant digit still attached.
type SeedArtifactSet struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url"`
	Rarity  int64  `json:"rarity"`
	Slot    string `json:"slot"`
	SetName string `json:"set_name"`
}

// LoadSeed reads a JSON seed file and validates it against the embedded
// CUE schema. Validation failures name the offending path.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(path, data)
}

// ParseSeed validates raw seed JSON against #Seed and decodes it.
// The filename is used for error positions only.
func ParseSeed(filename string, data []byte) (*Seed, error) {
	cctx := cuecontext.New()

	schema := cctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	seedDef := schema.LookupPath(cue.ParsePath("#Seed"))
	if err := seedDef.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Seed: %w", err)
	}

	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return nil, fmt.Errorf("parse seed JSON: %w", err)
	}
	value := cctx.BuildExpr(expr)
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("build seed value: %w", err)
	}

	unified := seedDef.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("seed does not satisfy schema: %w", err)
	}

	var seed Seed
	if err := unified.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &seed, nil
}

// ImportStats counts the seed entries processed by an import pass.
// Counts include entries whose rows already existed; first-write-wins
// hides the distinction.
type ImportStats struct {
	Characters int
	Weapons    int
	Sets       int
}

// Import runs first-write-wins inserts for every seed entry. Re-running
// an import never duplicates rows and never rewrites existing metadata.
func (b *Bootstrap) Import(ctx context.Context, seed *Seed) (ImportStats, error) {
	var stats ImportStats
	for _, c := range seed.Characters {
		err := b.Character(ctx, store.Character{
			ID: c.ID, Name: c.Name, IconURL: c.IconURL,
			Rarity: c.Rarity, Element: c.Element, WeaponClass: c.WeaponClass,
		})
		if err != nil {
			return stats, fmt.Errorf("import: %w", err)
		}
		stats.Characters++
	}
	for _, w := range seed.Weapons {
		err := b.Weapon(ctx, store.Weapon{
			ID: w.ID, Name: w.Name, IconURL: w.IconURL,
			Rarity: w.Rarity, WeaponClass: w.WeaponClass,
		})
		if err != nil {
			return stats, fmt.Errorf("import: %w", err)
		}
		stats.Weapons++
	}
	for _, a := range seed.Sets {
		_, err := b.ArtifactSet(ctx, a.ID, store.ArtifactSet{
			Name: a.Name, IconURL: a.IconURL, Rarity: a.Rarity,
			Slot: a.Slot, SetName: a.SetName,
		})
		if err != nil {
			return stats, fmt.Errorf("import: %w", err)
		}
		stats.Sets++
	}
	return stats, nil
}
