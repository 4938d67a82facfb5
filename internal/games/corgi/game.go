// Package corgi implements Courageous Corgi, a small platformer.
// The corgi walks and jumps around a fixed world collecting bones; stepping
// into a hazard costs a life. The game ends when the score reaches the win
// threshold or the lives run out.
package corgi

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/corgi-arcade/internal/actor"
	"github.com/vovakirdan/corgi-arcade/internal/assets"
	"github.com/vovakirdan/corgi-arcade/internal/config"
	"github.com/vovakirdan/corgi-arcade/internal/core"
	"github.com/vovakirdan/corgi-arcade/internal/registry"
	"github.com/vovakirdan/corgi-arcade/internal/spatial"
)

// GameID is the registry identifier of the game.
const GameID = "corgi"

// Settings set via CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	assetsDir        string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name clears it.
// Unknown names are rejected and leave the current preset in place.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		return fmt.Errorf("corgi: %w", err)
	}
	difficultyPreset = p
	return nil
}

// SetAssetsDir makes the game load sprites from dir instead of the embedded set.
func SetAssetsDir(dir string) {
	assetsDir = dir
}

// State is the mutable session state owned by the controller.
type State struct {
	Score int
	Lives int
	Keys  core.KeyState // Held keys sampled at the start of the tick
}

// Game implements the Courageous Corgi controller.
type Game struct {
	override *config.CorgiConfig // Used instead of loading when set
	loader   *assets.Loader
	logger   *log.Logger

	cfg     config.CorgiConfig
	runtime core.RuntimeConfig

	state  State
	scene  *actor.Scene
	grid   *spatial.Grid[*actor.Actor]
	player *actor.Actor
	kin    *Kinematics
	level  *level

	gameOver bool
	won      bool
	paused   bool
	tick     uint64
}

// New creates a game that loads its config and sprites during Reset.
func New() *Game {
	return &Game{logger: discardLogger()}
}

// NewWithConfig creates a game that uses cfg and loader as given.
// A nil loader selects the embedded sprites.
func NewWithConfig(cfg config.CorgiConfig, loader *assets.Loader) *Game {
	g := New()
	g.override = &cfg
	g.loader = loader
	return g
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// SetLogger sets the logger used for gameplay events. Nil discards them.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = discardLogger()
	}
	g.logger = l.WithPrefix(GameID)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Courageous Corgi"
}

// Reset loads the configuration and assets and places every actor.
// Config and asset problems are returned; the previous session is kept on error.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("corgi: %w", err)
	}

	loader, err := g.assetLoader()
	if err != nil {
		return fmt.Errorf("corgi: %w", err)
	}
	lv, err := buildLevel(cfg, loader)
	if err != nil {
		return err
	}

	g.cfg = cfg
	g.runtime = runtime
	g.level = lv
	g.scene = lv.scene
	g.player = lv.player
	g.kin = NewKinematics(cfg.Movement, cfg.Jump)

	cell := cfg.Grid.CellScale * float64(lv.player.Visual.Sprite.Width)
	g.grid = spatial.NewGrid[*actor.Actor](0, float64(cfg.Window.Width), 0, float64(cfg.Window.Height), cell, cell)

	g.state = State{
		Score: cfg.Gameplay.StartingScore,
		Lives: cfg.Gameplay.StartingLives,
		Keys:  core.NewKeyState(),
	}
	g.gameOver = false
	g.won = false
	g.paused = false
	g.tick = 0

	g.logger.Debug("level ready",
		"actors", g.scene.Len(),
		"consumables", g.scene.Count(actor.KindConsumable),
		"hazards", g.scene.Count(actor.KindHazard),
		"win_score", cfg.Gameplay.WinScore,
		"lives", cfg.Gameplay.StartingLives,
	)
	return nil
}

func (g *Game) loadConfig() (config.CorgiConfig, error) {
	if g.override != nil {
		return *g.override, nil
	}
	cfg, err := config.LoadCorgi(configPath)
	if err != nil {
		return cfg, fmt.Errorf("corgi: %w", err)
	}
	if difficultyPreset != "" {
		config.ApplyCorgiPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

func (g *Game) assetLoader() (*assets.Loader, error) {
	if g.loader != nil {
		return g.loader, nil
	}
	if assetsDir != "" && g.override == nil {
		l, err := assets.FromDir(assetsDir)
		if err != nil {
			return nil, err
		}
		g.loader = l
		return l, nil
	}
	return assets.Default(), nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.state.Keys = in.Keys.Clone()

	dt := in.DT
	if dt <= 0 {
		dt = g.runtime.TickDT()
	}
	if limit := g.cfg.Gameplay.MaxDT; limit > 0 && dt > limit {
		dt = limit
	}
	g.Update(dt)

	return core.StepResult{State: g.State()}
}

// Update runs one frame: collide, then move.
func (g *Game) Update(dt float64) {
	if g.gameOver {
		return
	}
	g.Collide()
	g.Move(dt)
}

// Collide rebuilds the grid and resolves every actor touching the player.
func (g *Game) Collide() {
	if g.gameOver {
		return
	}

	g.grid.Clear()
	for _, a := range g.scene.Actors() {
		g.grid.Add(a)
	}

	for _, other := range g.grid.QueryColliding(g.player) {
		if g.gameOver {
			return
		}
		switch other.Kind {
		case actor.KindConsumable:
			if g.scene.Remove(other) {
				g.UpdateScore(other.Item.Score)
			}
		case actor.KindHazard:
			g.logger.Info("hazard hit", "hazard", other.Name, "x", other.Position().X, "y", other.Position().Y)
			g.LoseLife()
			// The player has moved; remaining hits belong to the old position.
			return
		case actor.KindObstacle:
			// Obstacles do not block movement.
		case actor.KindPlayer, actor.KindMessage:
		}
	}
}

// UpdateScore adds points and ends the game once the win score is reached.
// Non-positive points are ignored so the score never decreases.
func (g *Game) UpdateScore(points int) {
	if g.gameOver || points <= 0 {
		return
	}
	g.state.Score += points
	g.logger.Debug("score", "points", points, "score", g.state.Score, "target", g.cfg.Gameplay.WinScore)

	if g.state.Score >= g.cfg.Gameplay.WinScore {
		g.won = true
		g.GameOver()
	}
}

// GameOver stops the session and shows the end message at the world centre.
// Calling it again has no effect.
func (g *Game) GameOver() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	g.paused = false

	sprite, name := g.level.gameOverSprite, "game_over"
	if g.won {
		sprite, name = g.level.winSprite, "win"
	}
	msg := actor.NewMessage(name, g.cfg.Window.Center().Vec(), sprite, g.level.messageShape)
	g.scene.Add(msg)

	g.logger.Info("game over", "won", g.won, "score", g.state.Score, "lives", g.state.Lives, "ticks", g.tick)
}

// LoseLife removes a life. At zero lives the game ends; otherwise the player
// returns to the start position at rest.
func (g *Game) LoseLife() {
	if g.gameOver {
		return
	}
	g.state.Lives--
	g.logger.Info("life lost", "lives", g.state.Lives)

	if g.state.Lives <= 0 {
		g.state.Lives = 0
		g.GameOver()
		return
	}
	g.player.SetPosition(g.cfg.Player.Start.Vec())
	g.kin.Reset()
	g.player.SetSprite(g.level.sprites.Standing)
}

// Move runs the player kinematics and keeps the player centre inside the world.
func (g *Game) Move(dt float64) {
	if g.gameOver {
		return
	}
	g.kin.Update(g.player, IntentFrom(g.state.Keys), dt, g.level.sprites)

	pos := g.player.Position()
	clamped := core.V(
		core.ClampF(pos.X, 0, float64(g.cfg.Window.Width)),
		core.ClampF(pos.Y, 0, float64(g.cfg.Window.Height)),
	)
	if clamped != pos {
		g.player.SetPosition(clamped)
	}
}

// SetKeys replaces the held keys used by the next Move.
func (g *Game) SetKeys(keys core.KeyState) {
	g.state.Keys = keys.Clone()
}

// Player returns the player actor.
func (g *Game) Player() *actor.Actor {
	return g.player
}

// Scene returns the live actors.
func (g *Game) Scene() *actor.Scene {
	return g.scene
}

// Kinematics returns the player kinematics.
func (g *Game) Kinematics() *Kinematics {
	return g.kin
}

// Config returns the active configuration.
func (g *Game) Config() config.CorgiConfig {
	return g.cfg
}

// GridStats returns broad-phase occupancy from the last collide pass.
func (g *Game) GridStats() spatial.Stats {
	return g.grid.Stats()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
