package loadout

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainArtifact = "sango/artifact/v1"
	DomainBuild    = "sango/build/v1"
)

// IDLen is the length of a content identifier in characters.
// Callers treat identifiers as opaque tokens; only their length is public.
const IDLen = sha256.Size * 2

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ArtifactID computes the content-addressed identifier for an artifact.
// The ID is stable across fetches and restarts given the same content:
// two pieces with identical owner, set key, main stat and substat multiset
// hash to the same identifier regardless of substat supply order.
// Returns InvalidRecordError if the artifact fails validation.
func ArtifactID(a Artifact) (string, error) {
	if err := ValidateArtifact(a); err != nil {
		return "", err
	}
	canonical, err := CanonicalArtifact(a)
	if err != nil {
		return "", fmt.Errorf("ArtifactID: %w", err)
	}
	return hashWithDomain(DomainArtifact, canonical), nil
}

// BuildID computes the content-addressed identifier for a build.
// The set of equipped slot identifiers contributes to the hash; slot
// positions do not. Returns InvalidRecordError if the build fails
// validation.
func BuildID(b Build) (string, error) {
	if err := ValidateBuild(b); err != nil {
		return "", err
	}
	canonical, err := CanonicalBuild(b)
	if err != nil {
		return "", fmt.Errorf("BuildID: %w", err)
	}
	return hashWithDomain(DomainBuild, canonical), nil
}

// MustArtifactID is like ArtifactID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustArtifactID(a Artifact) string {
	id, err := ArtifactID(a)
	if err != nil {
		panic(err)
	}
	return id
}

// MustBuildID is like BuildID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustBuildID(b Build) string {
	id, err := BuildID(b)
	if err != nil {
		panic(err)
	}
	return id
}
