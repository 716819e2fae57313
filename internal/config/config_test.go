package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 960 {
		t.Errorf("expected width 960, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 540 {
		t.Errorf("expected height 540, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.ShadowResolution != 4096 {
		t.Errorf("expected shadow resolution 4096, got %d", cfg.Scene.ShadowResolution)
	}
	if cfg.Scene.LightDir != [3]float32{-0.3, -1.0, -0.6} {
		t.Errorf("unexpected default light dir: %v", cfg.Scene.LightDir)
	}

	if cfg.Text.PixelSize != 256 {
		t.Errorf("expected glyph pixel size 256, got %d", cfg.Text.PixelSize)
	}
	if cfg.Text.StepDuration != 1500*time.Millisecond {
		t.Errorf("expected step duration 1.5s, got %v", cfg.Text.StepDuration)
	}
	if cfg.Text.CursorBlink != 500*time.Millisecond {
		t.Errorf("expected cursor blink 0.5s, got %v", cfg.Text.CursorBlink)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prestream.yaml")
	content := `graphics:
  width: 1920
  height: 1080
scene:
  shadow_resolution: 2048
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("file values not applied: %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Scene.ShadowResolution != 2048 {
		t.Errorf("shadow resolution not applied: %d", cfg.Scene.ShadowResolution)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level not applied: %s", cfg.Logging.Level)
	}
	// Untouched sections keep defaults.
	if cfg.Text.PixelSize != 256 {
		t.Errorf("unrelated setting changed: %d", cfg.Text.PixelSize)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("13:45:07")
	if err != nil {
		t.Fatalf("ParseClock failed: %v", err)
	}
	if got.Hour() != 13 || got.Minute() != 45 || got.Second() != 7 {
		t.Errorf("ParseClock = %02d:%02d:%02d, want 13:45:07", got.Hour(), got.Minute(), got.Second())
	}

	for _, bad := range []string{"", "25:00:00", "12:61:00", "noon", "12:00"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) should fail", bad)
		}
	}
}
