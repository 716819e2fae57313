package anim

import "time"

// Diff compares the current and desired strings and builds the request
// sequence that retypes one into the other: an optional wait and delete of
// the stale suffix, then an append of the new suffix. Pure function: same
// inputs always yield the same sequence.
//
// When current is empty or a prefix of desired, no deletion is needed and a
// single append is emitted.
func Diff(current, desired string, step time.Duration) []Request {
	cur := []rune(current)
	des := []rune(desired)

	// First index where the strings differ; len(cur) when current is a
	// prefix of desired.
	i := 0
	for i < len(cur) && i < len(des) && cur[i] == des[i] {
		i++
	}

	var reqs []Request
	if len(cur) > 0 && i < len(cur) {
		reqs = append(reqs,
			WaitRequest{Duration: step},
			DeleteRequest{DesiredLen: i, Duration: step},
		)
	}

	suffix := make([]rune, len(des)-i)
	copy(suffix, des[i:])
	reqs = append(reqs, AppendRequest{Chars: suffix, Duration: step})

	return reqs
}
