package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagFont       = flag.String("font", "", "Path to a TTF font (defaults to embedded Go Mono)")
	flagStartTime  = flag.String("start-time", "", "When the stream starts (HH:MM:SS)")
	flagTopic      = flag.String("topic", "", "What are we working on today")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Usage = Usage
	flag.Parse()
}

// Usage prints the usage text to stderr.
func Usage() {
	fmt.Fprintf(os.Stderr, "A pre-stream screen.\n\nUsage:\n  %s --start-time HH:MM:SS --topic <topic> [options]\n\nOptions:\n", os.Args[0])
	flag.PrintDefaults()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config and validates the
// required stream inputs.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagFont != "" {
		cfg.Text.FontPath = *flagFont
	}

	if *flagStartTime == "" {
		return fmt.Errorf("start time not provided")
	}
	clock, err := ParseClock(*flagStartTime)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}
	// Anchor the wall-clock value to today's date.
	now := time.Now()
	cfg.Stream.StartTime = time.Date(now.Year(), now.Month(), now.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location())

	if *flagTopic == "" {
		return fmt.Errorf("topic not provided")
	}
	cfg.Stream.Topic = *flagTopic

	return nil
}

// ParseClock parses a wall-clock "HH:MM:SS" value.
func ParseClock(s string) (time.Time, error) {
	return time.Parse("15:04:05", s)
}
