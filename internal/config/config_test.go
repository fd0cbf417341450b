package config

import (
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/pexeso/internal/daily"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.DailySalt != "pexeso" || cfg.WindowScale != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.FontPath != "" || cfg.Seed != 0 || cfg.Daily || cfg.FixedDeal() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PEXESO_FONT", "/tmp/Roboto-Black.ttf")
	t.Setenv("PEXESO_SEED", "77")
	t.Setenv("PEXESO_WINDOW_SCALE", "1.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.FontPath != "/tmp/Roboto-Black.ttf" || cfg.Seed != 77 || cfg.WindowScale != 1.5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadInvalidSeed(t *testing.T) {
	t.Setenv("PEXESO_SEED", "not-a-number")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoadRejectsNonPositiveScale(t *testing.T) {
	t.Setenv("PEXESO_WINDOW_SCALE", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero scale")
	}
}

func TestSeedSource(t *testing.T) {
	fixed := Config{Seed: 5, Daily: true}
	if got := fixed.SeedSource()(); got != 5 {
		t.Fatalf("fixed seed = %d, want 5", got)
	}

	d := Config{Daily: true, DailySalt: "s"}
	if got, want := d.SeedSource()(), daily.Seed(time.Now(), "s"); got != want {
		// Only differs if the test straddles midnight UTC.
		t.Logf("daily seed %d != %d (date rolled over?)", got, want)
	}
	if !d.FixedDeal() {
		t.Fatal("daily config should report a fixed deal")
	}

	if (Config{}).FixedDeal() {
		t.Fatal("default config should not report a fixed deal")
	}
}
