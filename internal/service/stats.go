package service

import (
	"context"
	"math"
	"slices"

	"github.com/roach88/sango/internal/catalog"
	"github.com/roach88/sango/internal/enka"
)

// Crit multipliers: crit rate counts double, crit damage counts once.
var critMultipliers = map[string]float64{
	"FIGHT_PROP_CRITICAL":      2,
	"FIGHT_PROP_CRITICAL_HURT": 1,
}

// CritValue sums the crit-related main stats and substats across a
// character's equipped artifacts, rounded to three decimal places.
// Pure display/sorting data; it never feeds identity computation and is
// never persisted.
func CritValue(artifacts []enka.ArtifactSnapshot) float64 {
	var cv float64
	for _, a := range artifacts {
		cv += critMultipliers[a.Main.Prop] * a.Main.Value
		for _, sub := range a.Substats {
			cv += critMultipliers[sub.Prop] * sub.Value
		}
	}
	return math.Round(cv*1000) / 1000
}

// SetBonus describes an active artifact set bonus.
type SetBonus struct {
	Set     int64  `json:"set"`
	SetName string `json:"set_name"`
	Pieces  int    `json:"pieces"` // 2 or 4
}

// activeSetBonuses groups equipped pieces by artifact set and reports the
// 2-piece and 4-piece thresholds that are met. A catalog set key names one
// set/slot row, so pieces of one set span five distinct keys; membership
// is decided by catalog.SetGroup, and the display name comes from any
// member row (the assembly pass has already bootstrapped them all).
func (s *Service) activeSetBonuses(ctx context.Context, artifacts []enka.ArtifactSnapshot) ([]SetBonus, error) {
	type group struct {
		count  int
		member int64 // one catalog set key of the group
	}
	groups := map[int64]*group{}
	for _, a := range artifacts {
		key := catalog.SetKey(a.ID)
		set := catalog.SetGroup(key)
		g, ok := groups[set]
		if !ok {
			g = &group{member: key}
			groups[set] = g
		}
		g.count++
	}

	var bonuses []SetBonus
	for set, g := range groups {
		if g.count < 2 {
			continue
		}
		pieces := 2
		if g.count >= 4 {
			pieces = 4
		}
		row, err := s.store.GetArtifactSet(ctx, g.member)
		if err != nil {
			return nil, err
		}
		bonuses = append(bonuses, SetBonus{Set: set, SetName: row.SetName, Pieces: pieces})
	}
	slices.SortFunc(bonuses, func(a, b SetBonus) int {
		return int(a.Set - b.Set)
	})
	return bonuses, nil
}
