package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/genart/internal/colorhoney"
	"github.com/san-kum/genart/internal/selene"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("expected output dir %s, got %s", DefaultOutputDir, cfg.OutputDir)
	}
	if cfg.Size != DefaultSize {
		t.Errorf("expected size %s, got %s", DefaultSize, cfg.Size)
	}
	if cfg.Batch.Workers <= 0 {
		t.Error("workers should be positive")
	}
	if cfg.BubbleChamber.FPS <= 0 {
		t.Error("bubblechamber fps should be positive")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genart.yaml")
	data := []byte(`
output_dir: renders
size: 800x600
logging:
  level: debug
wael:
  max_eyes: 42
cloudscript:
  text: "Hi"
  padding: [1, 2, 3, 4]
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.OutputDir != "renders" || cfg.Size != "800x600" {
		t.Errorf("expected renders/800x600, got %s/%s", cfg.OutputDir, cfg.Size)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
	if cfg.Wael.MaxEyes != 42 {
		t.Errorf("expected 42 eyes, got %d", cfg.Wael.MaxEyes)
	}
	if cfg.Wael.GrowRate != DefaultConfig().Wael.GrowRate {
		t.Errorf("expected default grow rate to survive, got %v", cfg.Wael.GrowRate)
	}
	if len(cfg.CloudScript.Padding) != 4 || cfg.CloudScript.Text != "Hi" {
		t.Errorf("unexpected cloudscript config %+v", cfg.CloudScript)
	}
}

func TestLoadMissingFile(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), zap.New(core))
	if err != nil {
		t.Fatalf("expected defaults for a missing file, got %v", err)
	}
	if cfg.Size != DefaultSize {
		t.Errorf("expected default size, got %s", cfg.Size)
	}
	if logs.Len() != 1 {
		t.Errorf("expected one warning, got %d", logs.Len())
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("size: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, zap.NewNop()); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Selene.Background = selene.BackgroundParchment

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Selene.Background != selene.BackgroundParchment {
		t.Errorf("expected parchment background, got %s", got.Selene.Background)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("colorhoney", "tokki")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.ColorHoney.System != colorhoney.SystemTokki {
		t.Errorf("expected tokki, got %s", cfg.ColorHoney.System)
	}
	if cfg.Size != DefaultSize {
		t.Errorf("expected preset to keep defaults, got size %s", cfg.Size)
	}

	cfg.ColorHoney.System = colorhoney.SystemHoney
	if GetPreset("colorhoney", "tokki").ColorHoney.System != colorhoney.SystemTokki {
		t.Error("expected presets to be copied")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("wael", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "flesh"); cfg != nil {
		t.Error("expected nil for nonexistent sketch")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("bubblechamber")
	if len(presets) == 0 {
		t.Fatal("expected presets for bubblechamber")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("expected sorted presets, got %v", presets)
		}
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent sketch")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = "renders"
	cfg.ColorHoney.Text = "keep me"

	if err := ApplyPreset(cfg, "colorhoney", "tokki"); err != nil {
		t.Fatal(err)
	}
	if cfg.ColorHoney.System != colorhoney.SystemTokki {
		t.Errorf("expected tokki system, got %s", cfg.ColorHoney.System)
	}
	if cfg.ColorHoney.Text != "keep me" {
		t.Errorf("expected text to survive preset, got %q", cfg.ColorHoney.Text)
	}
	if cfg.OutputDir != "renders" {
		t.Errorf("expected output dir untouched, got %s", cfg.OutputDir)
	}

	if err := ApplyPreset(cfg, "wael", "nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}
