// Package enka is the boundary to the upstream showcase provider.
//
// It fetches a player's public showcase over HTTP and decodes the raw
// payload into Snapshot values: upstream natural ids plus raw
// FIGHT_PROP_* stat tags, which are locale-independent and therefore
// safe inputs for content hashing downstream. Nothing here touches
// storage; failures surface as UpstreamError and are never retried.
package enka
