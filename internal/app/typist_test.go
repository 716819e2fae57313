package app

import (
	"testing"
	"time"
)

var typistStart = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// settle advances the typist in small increments until the displayed text
// matches the target or the deadline passes.
func settle(t *testing.T, ty *typist, target string, from time.Time, within time.Duration) time.Time {
	t.Helper()
	now := from
	deadline := from.Add(within)
	for now.Before(deadline) {
		if ty.Advance(now, target) == target {
			return now
		}
		now = now.Add(50 * time.Millisecond)
	}
	t.Fatalf("text never reached %q", target)
	return now
}

func TestTypistTypesInitialText(t *testing.T) {
	ty := newTypist(100 * time.Millisecond)
	settle(t, ty, "hello", typistStart, 5*time.Second)
}

func TestTypistRetypesChangedSuffix(t *testing.T) {
	ty := newTypist(100 * time.Millisecond)

	now := settle(t, ty, "countdown 10", typistStart, 5*time.Second)

	// The target changes; the typist must wait, delete the stale suffix
	// and append the new one.
	now = settle(t, ty, "countdown 09", now, 5*time.Second)

	if got := ty.Advance(now, "countdown 09"); got != "countdown 09" {
		t.Errorf("settled text = %q, want %q", got, "countdown 09")
	}
}

func TestTypistIdlesOnStableTarget(t *testing.T) {
	ty := newTypist(100 * time.Millisecond)
	now := settle(t, ty, "stable", typistStart, 5*time.Second)

	for i := 0; i < 10; i++ {
		now = now.Add(time.Second)
		if got := ty.Advance(now, "stable"); got != "stable" {
			t.Fatalf("idle text changed to %q", got)
		}
	}
}

func TestTypistShrinksOnlyThroughDelete(t *testing.T) {
	ty := newTypist(100 * time.Millisecond)
	now := settle(t, ty, "abcdef", typistStart, 5*time.Second)

	// Shrinking target: text length may never exceed the old text while
	// deleting, and must reach the new target.
	settle(t, ty, "abc", now, 5*time.Second)
}
