package corgi

import "github.com/vovakirdan/corgi-arcade/internal/actor"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	PlayerX     float64
	PlayerY     float64
	Motion      MotionState
	SpeedFactor float64
	Facing      int // Player visual scale sign
	Consumables int // Items left in the world
	GameOver    bool
	Won         bool
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	pos := g.player.Position()
	return Snapshot{
		Tick:        g.tick,
		Score:       g.state.Score,
		Lives:       g.state.Lives,
		PlayerX:     pos.X,
		PlayerY:     pos.Y,
		Motion:      g.kin.State(),
		SpeedFactor: g.kin.SpeedFactor(),
		Facing:      g.player.Visual.ScaleX,
		Consumables: g.scene.Count(actor.KindConsumable),
		GameOver:    g.gameOver,
		Won:         g.won,
		State:       state,
	}
}
