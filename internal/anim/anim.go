// Package anim drives a display string through timed transform sequences
// (delete a stale suffix, pause, type a new suffix) to produce a retyping
// effect whenever the target text changes.
//
// All operations take the current time as a parameter; nothing in this
// package reads a clock. Character counting operates on runes so multi-byte
// characters are never split.
package anim

import (
	"time"

	"github.com/prestream/prestream/pkg/ease"
)

// Request is one queued step of a choreographed text transition. Requests
// are immutable once created and converted into a running State via Apply.
type Request interface {
	apply(base []rune, now time.Time) State
}

// DeleteRequest shrinks the text to DesiredLen runes over Duration.
type DeleteRequest struct {
	DesiredLen int
	Duration   time.Duration
}

// WaitRequest leaves the text untouched for Duration.
type WaitRequest struct {
	Duration time.Duration
}

// AppendRequest types Chars onto the end of the text over Duration.
type AppendRequest struct {
	Chars    []rune
	Duration time.Duration
}

// State is the running phase of a text animation. Exactly one of Deleting,
// Appending, Waiting or Idle. The text it exposes is always a valid,
// immediately renderable string.
type State interface {
	// Update advances the text toward its target length for the given time.
	Update(now time.Time)
	// Finished reports whether the phase has run its course at now.
	Finished(now time.Time) bool
	// Text returns the currently displayed string.
	Text() string
	// IntoFinishedString forces the state to its exact end-of-duration
	// instant and extracts the final text. The state must not be used
	// afterwards.
	IntoFinishedString() string
}

// Apply converts a request into a running state anchored at now, carrying
// over the previous state's finished text.
func Apply(req Request, base string, now time.Time) State {
	return req.apply([]rune(base), now)
}

func (r DeleteRequest) apply(base []rune, now time.Time) State {
	return &Deleting{
		text:       base,
		startLen:   len(base),
		desiredLen: r.DesiredLen,
		start:      now,
		duration:   r.Duration,
	}
}

func (r WaitRequest) apply(base []rune, now time.Time) State {
	return &Waiting{text: base, end: now.Add(r.Duration)}
}

func (r AppendRequest) apply(base []rune, now time.Time) State {
	pending := make([]rune, len(r.Chars))
	copy(pending, r.Chars)
	return &Appending{
		text:     base,
		startLen: len(base),
		pending:  pending,
		start:    now,
		duration: r.Duration,
	}
}

// Deleting removes runes from the end of the text over time.
type Deleting struct {
	text       []rune
	startLen   int
	desiredLen int
	start      time.Time
	duration   time.Duration
}

// Update truncates the text according to the eased time fraction. Length is
// non-increasing as now advances and reaches exactly desiredLen at the end
// of the duration.
func (d *Deleting) Update(now time.Time) {
	eased := ease.InSine(timeFraction(now, d.start, d.duration))
	deleted := int(float32(d.startLen-d.desiredLen) * eased)
	d.text = d.text[:d.startLen-deleted]
}

func (d *Deleting) Finished(now time.Time) bool {
	return timeFraction(now, d.start, d.duration) >= 1.0
}

func (d *Deleting) Text() string { return string(d.text) }

func (d *Deleting) IntoFinishedString() string {
	d.Update(d.start.Add(d.duration))
	return string(d.text)
}

// Appending types queued runes onto the end of the text over time.
type Appending struct {
	text     []rune
	startLen int
	pending  []rune // front-consumed
	start    time.Time
	duration time.Duration
}

// Update moves runes from the pending queue onto the text until the eased
// target length is reached. Length is non-decreasing as now advances and
// reaches startLen plus the total pending count at the end of the duration.
func (a *Appending) Update(now time.Time) {
	eased := ease.InSine(timeFraction(now, a.start, a.duration))
	finalLen := len(a.text) + len(a.pending)
	desiredLen := a.startLen + int(float32(finalLen-a.startLen)*eased)

	for len(a.text) < desiredLen {
		if len(a.pending) == 0 {
			// Bookkeeping guarantees the queue covers the target length.
			panic("anim: append queue exhausted before reaching target length")
		}
		a.text = append(a.text, a.pending[0])
		a.pending = a.pending[1:]
	}
}

func (a *Appending) Finished(now time.Time) bool {
	return timeFraction(now, a.start, a.duration) >= 1.0
}

func (a *Appending) Text() string { return string(a.text) }

func (a *Appending) IntoFinishedString() string {
	a.Update(a.start.Add(a.duration))
	return string(a.text)
}

// Waiting holds the text unchanged until an absolute end time.
type Waiting struct {
	text []rune
	end  time.Time
}

func (w *Waiting) Update(time.Time) {}

func (w *Waiting) Finished(now time.Time) bool { return now.After(w.end) }

func (w *Waiting) Text() string { return string(w.text) }

func (w *Waiting) IntoFinishedString() string { return string(w.text) }

// Idle is the resting state between animation cycles.
type Idle struct {
	text string
}

// NewIdle returns an Idle state holding the given text.
func NewIdle(text string) *Idle { return &Idle{text: text} }

func (i *Idle) Update(time.Time) {}

func (i *Idle) Finished(time.Time) bool { return true }

func (i *Idle) Text() string { return i.text }

func (i *Idle) IntoFinishedString() string { return i.text }

// timeFraction returns elapsed-over-duration clamped to [0,1].
func timeFraction(now, start time.Time, duration time.Duration) float32 {
	if duration <= 0 {
		return 1.0
	}
	f := float32(now.Sub(start).Seconds() / duration.Seconds())
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
