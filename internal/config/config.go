// Package config handles application configuration loading and management.
package config

import "time"

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Text     TextConfig     `yaml:"text"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Stream holds the per-run inputs. Flags only, never persisted.
	Stream StreamConfig `yaml:"-"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// SceneConfig holds 3D scene and lighting settings.
type SceneConfig struct {
	ShadowResolution int32      `yaml:"shadow_resolution"`
	LightDir         [3]float32 `yaml:"light_dir"`
	LightColor       [3]float32 `yaml:"light_color"`
}

// TextConfig holds glyph and text animation settings.
type TextConfig struct {
	// PixelSize is the rasterized glyph height in pixels.
	PixelSize int `yaml:"pixel_size"`
	// FontPath overrides the embedded monospace font when set.
	FontPath     string        `yaml:"font_path"`
	StepDuration time.Duration `yaml:"step_duration"`
	CursorBlink  time.Duration `yaml:"cursor_blink"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// StreamConfig holds the required startup inputs.
type StreamConfig struct {
	// StartTime is the wall-clock time the stream starts; only the
	// hour/minute/second components are meaningful.
	StartTime time.Time
	Topic     string
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      960,
			Height:     540,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			ShadowResolution: 4096,
			LightDir:         [3]float32{-0.3, -1.0, -0.6},
			LightColor:       [3]float32{0.8, 0.8, 0.7},
		},
		Text: TextConfig{
			PixelSize:    256,
			StepDuration: 1500 * time.Millisecond,
			CursorBlink:  500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
