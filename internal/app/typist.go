package app

import (
	"time"

	"github.com/prestream/prestream/internal/anim"
)

// typist drives the typewriter animation toward a moving target string.
// When the current animation finishes it pops the next queued request, and
// when the queue drains it diffs the settled text against the target to
// build a fresh queue. The target changes every second (the clock and
// countdown tick), so the typist is perpetually chasing it.
type typist struct {
	state anim.State
	queue []anim.Request
	step  time.Duration
}

func newTypist(step time.Duration) *typist {
	return &typist{
		state: anim.NewIdle(""),
		step:  step,
	}
}

// Advance moves the animation to now and returns the text to draw.
func (t *typist) Advance(now time.Time, target string) string {
	if !t.state.Finished(now) {
		t.state.Update(now)
		return t.state.Text()
	}

	text := t.state.IntoFinishedString()

	if len(t.queue) > 0 {
		t.state = anim.Apply(t.queue[0], text, now)
		t.queue = t.queue[1:]
	} else if text != target {
		t.queue = anim.Diff(text, target, t.step)
		t.state = anim.Apply(t.queue[0], text, now)
		t.queue = t.queue[1:]
	} else {
		t.state = anim.NewIdle(text)
	}

	t.state.Update(now)
	return t.state.Text()
}
