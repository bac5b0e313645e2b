// Package discover holds the browsing core: which catalog calls to
// issue for the current category/filters/query, how to reconcile
// out-of-order responses, and how pages merge into the visible list.
// Everything here is synchronous state; async dispatch and completion
// delivery belong to the caller's event loop.
package discover

// Guard gates async responses with a monotonically increasing sequence
// number. A producer takes a ticket at dispatch time; on completion the
// result is applied only while that ticket is still the latest issued
// and the guard has not been closed.
type Guard struct {
	seq    uint64
	closed bool
}

// Issue stamps a new request and returns its ticket. Any earlier
// in-flight ticket becomes stale.
func (g *Guard) Issue() uint64 {
	g.seq++
	return g.seq
}

// Current reports whether a ticket is still the latest issued
func (g *Guard) Current(ticket uint64) bool {
	return !g.closed && ticket == g.seq
}

// Invalidate marks every outstanding ticket stale without issuing a
// new one
func (g *Guard) Invalidate() {
	g.seq++
}

// Close permanently rejects all tickets; used when the owning view is
// torn down
func (g *Guard) Close() {
	g.closed = true
}
