package loadout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Canonical encoding for content hashing.
//
// The encoding is a restricted JSON form with deterministic byte output:
//   - Object keys are emitted in a fixed sorted order
//   - Strings are NFC normalized and encoded without HTML escaping
//   - Numbers use strconv.FormatFloat(v, 'f', -1, 64), the shortest
//     decimal form that round-trips (stat values are fractional, so an
//     int-only encoding is not an option here)
//   - Substats and slot identifiers are sorted before encoding, making
//     the result independent of upstream supply order
//   - Absent substats/slots are omitted entirely, never padded, so a
//     piece with three substats can never collide with a four-substat one
//
// This is the ONLY serialization that may feed identity computation.

// CanonicalArtifact returns the canonical byte form of an artifact.
// The caller is expected to have validated the artifact first.
func CanonicalArtifact(a Artifact) ([]byte, error) {
	pairs := make([]string, len(a.Substats))
	for i, s := range a.Substats {
		pairs[i] = s.Pair()
	}
	slices.Sort(pairs)

	var buf bytes.Buffer
	buf.WriteString(`{"main":`)
	if err := writeCanonicalString(&buf, a.Main.Pair()); err != nil {
		return nil, fmt.Errorf("canonical artifact: %w", err)
	}
	buf.WriteString(`,"owner":`)
	buf.WriteString(strconv.FormatInt(a.Player, 10))
	buf.WriteString(`,"set":`)
	buf.WriteString(strconv.FormatInt(a.Set, 10))
	buf.WriteString(`,"subs":`)
	if err := writeCanonicalStrings(&buf, pairs); err != nil {
		return nil, fmt.Errorf("canonical artifact: %w", err)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CanonicalBuild returns the canonical byte form of a build. Slot
// identifiers are sorted, so the hash does not depend on which position a
// piece occupies; the store keeps positional meaning separately.
func CanonicalBuild(b Build) ([]byte, error) {
	ids := b.EquippedSlots()
	slices.Sort(ids)

	var buf bytes.Buffer
	buf.WriteString(`{"character":`)
	buf.WriteString(strconv.FormatInt(b.Character, 10))
	buf.WriteString(`,"owner":`)
	buf.WriteString(strconv.FormatInt(b.Player, 10))
	buf.WriteString(`,"slots":`)
	if err := writeCanonicalStrings(&buf, ids); err != nil {
		return nil, fmt.Errorf("canonical build: %w", err)
	}
	buf.WriteString(`,"weapon":`)
	buf.WriteString(strconv.FormatInt(b.Weapon, 10))
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeCanonicalStrings writes a JSON array of canonical strings.
// The caller sorts; this function only encodes.
func writeCanonicalStrings(buf *bytes.Buffer, elems []string) error {
	buf.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeCanonicalString(buf, e); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

// writeCanonicalString writes one canonical JSON string: NFC normalized,
// no HTML escaping (< > & stay literal). Prop tags and hex identifiers are
// ASCII in practice, but upstream tags are not under our control, so the
// normalization boundary is enforced here rather than assumed.
func writeCanonicalString(buf *bytes.Buffer, s string) error {
	normalized := norm.NFC.String(s)

	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return err
	}

	// json.Encoder adds a trailing newline, remove it
	out := tmp.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	buf.Write(out)
	return nil
}
