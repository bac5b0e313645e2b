package discover

import (
	"strings"
	"time"
)

const (
	// DefaultSettleDelay is how long the query must be stable before a
	// suggestion fetch fires
	DefaultSettleDelay = 300 * time.Millisecond

	// MinQueryLength is the shortest query that produces suggestions
	MinQueryLength = 2
)

// Timer is a pending settle timer. The caller schedules it for Delay
// and hands it back through TimerElapsed; a later keystroke makes it
// dead on arrival.
type Timer struct {
	Seq   uint64
	Delay time.Duration
}

// SuggestionFetch is a stamped suggestion request. The caller performs
// the multi-search and checks ShouldApply before using the result.
type SuggestionFetch struct {
	Query string
	Seq   uint64
}

// Debouncer buffers rapid query-text changes and emits at most one
// suggestion fetch per settling period. Results of superseded fetches
// are dropped via sequence gating.
type Debouncer struct {
	delay  time.Duration
	minLen int

	input uint64 // keystroke counter, gates timers
	guard Guard  // gates fetches
	text  string
}

// NewDebouncer returns a debouncer with the default settling delay and
// minimum query length
func NewDebouncer() *Debouncer {
	return &Debouncer{delay: DefaultSettleDelay, minLen: MinQueryLength}
}

// OnQueryChanged records a keystroke. It returns a timer to schedule,
// or clear=true when the query is too short to suggest for; in that
// case any pending timer and in-flight fetch are abandoned and the
// caller should clear the dropdown.
func (d *Debouncer) OnQueryChanged(text string) (timer *Timer, clear bool) {
	d.input++
	d.text = strings.TrimSpace(text)

	if len([]rune(d.text)) < d.minLen {
		// Drop any in-flight fetch too; its result must not resurface
		// after the dropdown is cleared.
		d.guard.Invalidate()
		return nil, true
	}
	return &Timer{Seq: d.input, Delay: d.delay}, false
}

// TimerElapsed converts an elapsed timer into a suggestion fetch, or
// nil when a later keystroke superseded it
func (d *Debouncer) TimerElapsed(t Timer) *SuggestionFetch {
	if t.Seq != d.input {
		return nil
	}
	return &SuggestionFetch{Query: d.text, Seq: d.guard.Issue()}
}

// ShouldApply reports whether a completed fetch is still the latest
// issued; stale results are silently dropped
func (d *Debouncer) ShouldApply(f SuggestionFetch) bool {
	return d.guard.Current(f.Seq)
}

// Close rejects all in-flight fetches; used at teardown
func (d *Debouncer) Close() {
	d.guard.Close()
}
