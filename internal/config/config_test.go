package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCorgiConfig()) {
		t.Errorf("embedded yaml and DefaultCorgiConfig differ:\n%+v\n%+v", cfg, DefaultCorgiConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultCorgiConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultWinScoreReachable(t *testing.T) {
	cfg := DefaultCorgiConfig()
	ApplyCorgiPreset(&cfg, DifficultyHard)

	total := 0
	for _, g := range cfg.Consumables {
		total += g.Score * len(g.Positions)
	}
	if total < cfg.Gameplay.WinScore {
		t.Errorf("hard win score %d exceeds available points %d", cfg.Gameplay.WinScore, total)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  win_score: 15\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.WinScore != 15 {
		t.Errorf("WinScore = %d, want 15", cfg.Gameplay.WinScore)
	}
	if cfg.Gameplay.StartingLives != 3 {
		t.Errorf("StartingLives = %d, want default 3", cfg.Gameplay.StartingLives)
	}
	if cfg.Window.Width != 72 {
		t.Errorf("Window.Width = %d, want default 72", cfg.Window.Width)
	}
}

func TestParseReplacesLists(t *testing.T) {
	data := `
consumables:
  - name: treat
    sprite: treat.txt
    shape: circle
    score: 5
    positions:
      - {x: 1, y: 1}
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Consumables) != 1 {
		t.Fatalf("len(Consumables) = %d, want 1", len(cfg.Consumables))
	}
	got := cfg.Consumables[0]
	if got.Name != "treat" || got.Score != 5 || got.Shape != "circle" || len(got.Positions) != 1 {
		t.Errorf("unexpected consumable: %+v", got)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("window: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadCorgiCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  starting_lives: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCorgi(path)
	if err != nil {
		t.Fatalf("LoadCorgi: %v", err)
	}
	if cfg.Gameplay.StartingLives != 7 {
		t.Errorf("StartingLives = %d, want 7", cfg.Gameplay.StartingLives)
	}
}

func TestLoadCorgiMissingCustomPath(t *testing.T) {
	_, err := LoadCorgi(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.HasPrefix(err.Error(), "config: read") {
		t.Errorf("error = %q, want config: read prefix", err)
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  starting_lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestApplyCorgiPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantLives int
		wantWin   int
	}{
		{"", 3, 60},
		{DifficultyNormal, 3, 60},
		{DifficultyEasy, 5, 60},
		{DifficultyHard, 2, 90},
	}

	for _, tt := range tests {
		cfg := DefaultCorgiConfig()
		ApplyCorgiPreset(&cfg, tt.preset)
		if cfg.Gameplay.StartingLives != tt.wantLives {
			t.Errorf("preset %q: lives = %d, want %d", tt.preset, cfg.Gameplay.StartingLives, tt.wantLives)
		}
		if cfg.Gameplay.WinScore != tt.wantWin {
			t.Errorf("preset %q: win score = %d, want %d", tt.preset, cfg.Gameplay.WinScore, tt.wantWin)
		}
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParseDifficultyPreset(name); err != nil {
			t.Errorf("ParseDifficultyPreset(%q): %v", name, err)
		}
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CorgiConfig)
		wantErr string
	}{
		{"zero lives", func(c *CorgiConfig) { c.Gameplay.StartingLives = 0 }, "starting_lives"},
		{"zero win score", func(c *CorgiConfig) { c.Gameplay.WinScore = 0 }, "win_score"},
		{"negative start score", func(c *CorgiConfig) { c.Gameplay.StartingScore = -1 }, "starting_score"},
		{"start score at win score", func(c *CorgiConfig) { c.Gameplay.StartingScore = c.Gameplay.WinScore }, "already reaches"},
		{"start score above win score", func(c *CorgiConfig) { c.Gameplay.StartingScore = c.Gameplay.WinScore + 10 }, "already reaches"},
		{"zero speed", func(c *CorgiConfig) { c.Movement.BaseSpeed = 0 }, "base_speed"},
		{"initial above max", func(c *CorgiConfig) { c.Movement.InitialSpeedFactor = 2 }, "speed factors"},
		{"bad window", func(c *CorgiConfig) { c.Window.Height = 0 }, "window"},
		{"bad grid", func(c *CorgiConfig) { c.Grid.CellScale = 0 }, "cell_scale"},
		{"bad player shape", func(c *CorgiConfig) { c.Player.Shape = "triangle" }, "player"},
		{"negative item score", func(c *CorgiConfig) { c.Consumables[0].Score = -5 }, "negative score"},
		{"item outside", func(c *CorgiConfig) { c.Consumables[0].Positions[0].X = 500 }, "outside"},
		{"hazard without sprite", func(c *CorgiConfig) { c.Hazards[0].Sprite = "" }, "no sprite"},
		{"start outside", func(c *CorgiConfig) { c.Player.Start.Y = -1 }, "player start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCorgiConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestWindowCenter(t *testing.T) {
	c := Window{Width: 72, Height: 18}.Center()
	if c.X != 36 || c.Y != 9 {
		t.Errorf("Center = %+v, want (36, 9)", c)
	}
}
