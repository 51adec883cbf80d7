// Package seqno implements the cyclic sequence-number arithmetic that the
// routing core uses to compare per-origin freshness without ever letting a
// stale advertisement look newer than a fresh one after 65536 wraps around.
package seqno

// Seqno is a 16-bit cyclic counter owned by, and only ever incremented by,
// the node it identifies. Other nodes only ever learn a monotone
// lower-bound on it.
type Seqno uint16

// LessThan reports whether a is "older" than b on the 16-bit cycle. This is
// the only comparator route-acceptance and request-forwarding logic may
// use; a raw a < b is meaningless once either value has wrapped.
func LessThan(a, b Seqno) bool {
	x := uint16(b - a)
	return x > 0 && x < 32768
}

// LessOrEqual reports whether a is not newer than b.
func LessOrEqual(a, b Seqno) bool {
	return a == b || LessThan(a, b)
}

// Next returns a incremented by one, wrapping mod 2^16.
func Next(a Seqno) Seqno {
	return a + 1
}
