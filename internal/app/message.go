package app

import (
	"fmt"
	"time"
)

// clockLayout formats wall-clock times on the screen.
const clockLayout = "15:04:05"

// StartingMessage builds the full text shown on screen: the fake shell
// prompt, topic, start time, current time and a countdown. The countdown
// truncates toward zero and clamps at zero once the start time has passed.
func StartingMessage(program, topic string, start, now time.Time) string {
	remaining := start.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	hours := remaining / time.Hour
	minutes := remaining % time.Hour / time.Minute
	seconds := remaining % time.Minute / time.Second

	return fmt.Sprintf(
		"$ ./%s\n\nToday's topic: %s\nStream starting at %s\n    Current time: %s\n    %02d:%02d:%02d 'till stream starts",
		program,
		topic,
		start.Format(clockLayout),
		now.Format(clockLayout),
		hours, minutes, seconds,
	)
}
