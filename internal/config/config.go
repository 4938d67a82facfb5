// Package config provides YAML-based game configuration loading and
// difficulty presets for the corgi arcade.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// CorgiConfig contains all tuning constants for the Courageous Corgi game.
type CorgiConfig struct {
	Window      Window            `yaml:"window"`
	Player      PlayerConfig      `yaml:"player"`
	Movement    MovementConfig    `yaml:"movement"`
	Jump        JumpConfig        `yaml:"jump"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Grid        GridConfig        `yaml:"grid"`
	Consumables []ConsumableGroup `yaml:"consumables"`
	Obstacles   []ActorGroup      `yaml:"obstacles"`
	Hazards     []ActorGroup      `yaml:"hazards"`
	Message     MessageConfig     `yaml:"message"`
}

// Window defines the world size in cells.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Center returns the middle of the world.
func (w Window) Center() Position {
	return Position{X: float64(w.Width) / 2, Y: float64(w.Height) / 2}
}

// Position is a world coordinate as written in YAML.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the position to a core vector.
func (p Position) Vec() core.Vec2 {
	return core.V(p.X, p.Y)
}

// PlayerConfig defines the player start and visuals.
type PlayerConfig struct {
	Start    Position `yaml:"start"`
	Shape    string   `yaml:"shape"`    // "box" or "circle"
	Standing string   `yaml:"standing"` // Sprite path
	Walking  string   `yaml:"walking"`  // Animation path
	Jumping  string   `yaml:"jumping"`  // Sprite path
}

// MovementConfig defines walking kinematics.
type MovementConfig struct {
	BaseSpeed          float64 `yaml:"base_speed"`           // Cells per second at speed factor 1.0
	InitialSpeedFactor float64 `yaml:"initial_speed_factor"` // Factor when standing
	Acceleration       float64 `yaml:"acceleration"`         // Factor added per walking frame
	MaxSpeedFactor     float64 `yaml:"max_speed_factor"`     // Factor cap
}

// JumpConfig defines the parabolic jump action.
type JumpConfig struct {
	Distance float64 `yaml:"distance"` // Displacement per direction unit
	Height   float64 `yaml:"height"`   // Arc amplitude in cells
	Hops     int     `yaml:"hops"`     // Number of arcs in one jump
	Duration float64 `yaml:"duration"` // Seconds
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	StartingLives int     `yaml:"starting_lives"`
	StartingScore int     `yaml:"starting_score"`
	WinScore      int     `yaml:"win_score"`
	MaxDT         float64 `yaml:"max_dt"` // Longest frame step in seconds; longer frames are truncated
}

// GridConfig defines the broad-phase grid.
type GridConfig struct {
	CellScale float64 `yaml:"cell_scale"` // Cell size as a multiple of the player width
}

// ActorGroup places several actors that share a sprite and shape.
type ActorGroup struct {
	Name      string     `yaml:"name"`
	Sprite    string     `yaml:"sprite"`
	Shape     string     `yaml:"shape"`
	Positions []Position `yaml:"positions"`
}

// ConsumableGroup places scored items.
type ConsumableGroup struct {
	ActorGroup `yaml:",inline"`
	Score      int     `yaml:"score"`
	SpeedBoost float64 `yaml:"speed_boost"` // Reserved multiplier, carried but not applied
}

// MessageConfig defines the end-of-game message actor.
type MessageConfig struct {
	GameOver string `yaml:"game_over"` // Sprite shown when lives run out
	Win      string `yaml:"win"`       // Sprite shown when the win score is reached
	Shape    string `yaml:"shape"`
}

// Validate reports misconfiguration. Every problem found is joined into one error.
func (c CorgiConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Gameplay.StartingLives <= 0 {
		errs = append(errs, fmt.Errorf("starting_lives must be positive, got %d", c.Gameplay.StartingLives))
	}
	if c.Gameplay.StartingScore < 0 {
		errs = append(errs, fmt.Errorf("starting_score must not be negative, got %d", c.Gameplay.StartingScore))
	}
	if c.Gameplay.WinScore <= 0 {
		errs = append(errs, fmt.Errorf("win_score must be positive, got %d", c.Gameplay.WinScore))
	}
	if c.Gameplay.WinScore > 0 && c.Gameplay.StartingScore >= c.Gameplay.WinScore {
		errs = append(errs, fmt.Errorf("starting_score %d already reaches win_score %d",
			c.Gameplay.StartingScore, c.Gameplay.WinScore))
	}
	if c.Movement.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("base_speed must be positive, got %g", c.Movement.BaseSpeed))
	}
	if c.Movement.MaxSpeedFactor <= 0 || c.Movement.InitialSpeedFactor < 0 ||
		c.Movement.InitialSpeedFactor > c.Movement.MaxSpeedFactor {
		errs = append(errs, fmt.Errorf("speed factors must satisfy 0 <= initial (%g) <= max (%g)",
			c.Movement.InitialSpeedFactor, c.Movement.MaxSpeedFactor))
	}
	if c.Jump.Duration < 0 || c.Jump.Hops < 0 {
		errs = append(errs, errors.New("jump duration and hops must not be negative"))
	}
	if c.Grid.CellScale <= 0 {
		errs = append(errs, fmt.Errorf("grid cell_scale must be positive, got %g", c.Grid.CellScale))
	}

	errs = append(errs, c.checkShape("player", c.Player.Shape))
	errs = append(errs, c.checkShape("message", c.Message.Shape))
	errs = append(errs, c.checkInside("player start", c.Player.Start))
	for _, g := range c.Consumables {
		if g.Score < 0 {
			errs = append(errs, fmt.Errorf("consumable %q has negative score %d", g.Name, g.Score))
		}
		errs = append(errs, c.checkGroup("consumable", g.ActorGroup)...)
	}
	for _, g := range c.Obstacles {
		errs = append(errs, c.checkGroup("obstacle", g)...)
	}
	for _, g := range c.Hazards {
		errs = append(errs, c.checkGroup("hazard", g)...)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func (c CorgiConfig) checkGroup(kind string, g ActorGroup) []error {
	errs := []error{c.checkShape(kind+" "+g.Name, g.Shape)}
	if g.Sprite == "" {
		errs = append(errs, fmt.Errorf("%s %q has no sprite", kind, g.Name))
	}
	for _, p := range g.Positions {
		errs = append(errs, c.checkInside(kind+" "+g.Name, p))
	}
	return errs
}

func (c CorgiConfig) checkShape(what, name string) error {
	if _, err := core.ParseShapeKind(name); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func (c CorgiConfig) checkInside(what string, p Position) error {
	if p.X < 0 || p.Y < 0 || p.X > float64(c.Window.Width) || p.Y > float64(c.Window.Height) {
		return fmt.Errorf("%s position (%g, %g) is outside the %dx%d window",
			what, p.X, p.Y, c.Window.Width, c.Window.Height)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI value to a preset. Empty means "use config".
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}
