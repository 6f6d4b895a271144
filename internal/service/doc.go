// Package service orchestrates snapshot recording and read views.
//
// The write path is build assembly: for each showcased character, every
// equipped piece is hashed and inserted (or found) first, and the build
// row is written only once all five slot identifiers are known. The
// sequencing is explicit - one insert completes before the next starts -
// so a build row can never reference a piece that is not yet durable,
// even with concurrent assembly passes for other players in flight.
//
// Failures are scoped to one character: pieces inserted before the
// failure stay, the build row is never written, and a later retry
// re-resolves the existing pieces cheaply through the idempotent insert.
package service
