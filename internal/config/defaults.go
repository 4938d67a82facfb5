package config

import (
	_ "embed"
)

//go:embed defaults/corgi.yaml
var defaultCorgiYAML []byte

// DefaultCorgiConfig returns the built-in Courageous Corgi configuration.
// It mirrors defaults/corgi.yaml and is used when the embedded file cannot be parsed.
func DefaultCorgiConfig() CorgiConfig {
	return CorgiConfig{
		Window: Window{Width: 72, Height: 18},
		Player: PlayerConfig{
			Start:    Position{X: 6, Y: 1.5},
			Shape:    "box",
			Standing: "corgi_stand.txt",
			Walking:  "corgi_walk.txt",
			Jumping:  "corgi_jump.txt",
		},
		Movement: MovementConfig{
			BaseSpeed:          30,
			InitialSpeedFactor: 0.1,
			Acceleration:       0.15,
			MaxSpeedFactor:     1.0,
		},
		Jump: JumpConfig{
			Distance: 6,
			Height:   3,
			Hops:     1,
			Duration: 0.4,
		},
		Gameplay: GameplayConfig{
			StartingLives: 3,
			StartingScore: 0,
			WinScore:      60,
			MaxDT:         0.1,
		},
		Grid: GridConfig{CellScale: 1.25},
		Consumables: []ConsumableGroup{
			{
				ActorGroup: ActorGroup{
					Name:   "bone",
					Sprite: "bone.txt",
					Shape:  "box",
					Positions: []Position{
						{X: 20, Y: 2}, {X: 30, Y: 6}, {X: 44, Y: 3},
						{X: 58, Y: 8}, {X: 12, Y: 12}, {X: 36, Y: 15},
					},
				},
				Score:      10,
				SpeedBoost: 1.0,
			},
			{
				ActorGroup: ActorGroup{
					Name:      "golden_bone",
					Sprite:    "golden_bone.txt",
					Shape:     "circle",
					Positions: []Position{{X: 66, Y: 15}, {X: 52, Y: 13}},
				},
				Score:      25,
				SpeedBoost: 1.5,
			},
		},
		Obstacles: []ActorGroup{
			{
				Name:      "crate",
				Sprite:    "crate.txt",
				Shape:     "box",
				Positions: []Position{{X: 26, Y: 11}, {X: 62, Y: 2}},
			},
		},
		Hazards: []ActorGroup{
			{
				Name:      "puddle",
				Sprite:    "puddle.txt",
				Shape:     "box",
				Positions: []Position{{X: 38, Y: 1}, {X: 24, Y: 16}, {X: 50, Y: 8}},
			},
		},
		Message: MessageConfig{
			GameOver: "game_over.txt",
			Win:      "win.txt",
			Shape:    "box",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCorgiYAML
}
