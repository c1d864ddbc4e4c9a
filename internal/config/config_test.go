package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	tests := []struct {
		gameID string
	}{
		{"fishing"},
		{"shapes"},
		{"quiz"},
		{"stocks"},
	}

	for _, tc := range tests {
		t.Run(tc.gameID, func(t *testing.T) {
			data := GetDefaultYAML(tc.gameID)
			if len(data) == 0 {
				t.Fatal("embedded default should not be empty")
			}

			var out map[string]any
			if err := yaml.Unmarshal(data, &out); err != nil {
				t.Fatalf("embedded default should parse: %v", err)
			}
		})
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game ID should return nil")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fishing FishingConfig
	if err := yaml.Unmarshal(GetDefaultYAML("fishing"), &fishing); err != nil {
		t.Fatal(err)
	}
	if fishing != DefaultFishingConfig() {
		t.Errorf("embedded fishing default diverged from hardcoded fallback:\n%+v\n%+v",
			fishing, DefaultFishingConfig())
	}

	var shapes ShapesConfig
	if err := yaml.Unmarshal(GetDefaultYAML("shapes"), &shapes); err != nil {
		t.Fatal(err)
	}
	if shapes != DefaultShapesConfig() {
		t.Error("embedded shapes default diverged from hardcoded fallback")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fishing.yaml")
	custom := []byte("gameplay:\n  target_count: 3\n  correct_points: 25\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFishing(path)
	if err != nil {
		t.Fatalf("LoadFishing(%s) failed: %v", path, err)
	}
	if cfg.Gameplay.TargetCount != 3 || cfg.Gameplay.CorrectPoints != 25 {
		t.Errorf("custom values not applied: %+v", cfg.Gameplay)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := LoadFishing(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("an explicit missing config path should be an error")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, SpawnReduction: 40},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{500, 1.0}, // Clamped
	}

	for _, tc := range tests {
		if got := mgr.Level(tc.score, 0); got != tc.want {
			t.Errorf("Level(score=%d) = %f, expected %f", tc.score, got, tc.want)
		}
	}
}

func TestDifficultySpeedScaling(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := mgr.Speed(0.2, 0, 0); got != 0.2 {
		t.Errorf("Speed at level 0 = %f, expected base", got)
	}
	if got := mgr.Speed(0.2, 100, 0); got != 0.4 {
		t.Errorf("Speed at max level = %f, expected doubled", got)
	}
}

func TestDifficultySpawnEveryFloor(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpawnReduction: 1000},
	})

	if got := mgr.SpawnEvery(90, 10, 0); got != 10 {
		t.Errorf("SpawnEvery should floor at 10, got %d", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if got := mgr.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled manager should hold the initial level, got %f", got)
	}
	if mgr.IsEnabled() {
		t.Error("IsEnabled should be false")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DifficultyConfig{InitialLevel: 0.5}
			ApplyPreset(&cfg, tc.preset)
			if cfg.Enabled != tc.wantEnabled || cfg.InitialLevel != tc.wantLevel {
				t.Errorf("ApplyPreset(%s) = %+v", tc.preset, cfg)
			}
		})
	}

	t.Run("fixed", func(t *testing.T) {
		cfg := DifficultyConfig{Enabled: true, InitialLevel: 0.5}
		ApplyPreset(&cfg, DifficultyFixed)
		if cfg.Enabled {
			t.Error("fixed preset should disable progression")
		}
		if cfg.InitialLevel != 0.5 {
			t.Error("fixed preset should keep the configured level")
		}
	})

	t.Run("empty preset is a no-op", func(t *testing.T) {
		cfg := DifficultyConfig{Enabled: true, InitialLevel: 0.5}
		ApplyPreset(&cfg, "")
		if !cfg.Enabled || cfg.InitialLevel != 0.5 {
			t.Error("empty preset should not modify the config")
		}
	})
}
