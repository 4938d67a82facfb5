package corgi

import (
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/corgi-arcade/internal/assets"
	"github.com/vovakirdan/corgi-arcade/internal/config"
	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// testRuntime is a 60 FPS runtime on a standard terminal.
var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func testSprites() fstest.MapFS {
	return fstest.MapFS{
		"stand.txt":  {Data: []byte("SS\nSS\n")},
		"walk.txt":   {Data: []byte("@delay 0.1\nW1\nW1\n---\nW2\nW2\n")},
		"jump.txt":   {Data: []byte("JJ\nJJ\n")},
		"item.txt":   {Data: []byte("o\n")},
		"hazard.txt": {Data: []byte("~~\n")},
		"crate.txt":  {Data: []byte("# crate\n##\n")},
		"over.txt":   {Data: []byte("OVER\n")},
		"win.txt":    {Data: []byte("WIN\n")},
	}
}

// testConfig is a 40x20 world with a 2x2 player at (10, 10) and nothing else.
func testConfig() config.CorgiConfig {
	return config.CorgiConfig{
		Window: config.Window{Width: 40, Height: 20},
		Player: config.PlayerConfig{
			Start:    config.Position{X: 10, Y: 10},
			Shape:    "box",
			Standing: "stand.txt",
			Walking:  "walk.txt",
			Jumping:  "jump.txt",
		},
		Movement: config.MovementConfig{
			BaseSpeed:          10,
			InitialSpeedFactor: 0.1,
			Acceleration:       0.15,
			MaxSpeedFactor:     1.0,
		},
		Jump: config.JumpConfig{Distance: 4, Height: 2, Hops: 1, Duration: 0.4},
		Gameplay: config.GameplayConfig{
			StartingLives: 3,
			StartingScore: 0,
			WinScore:      50,
			MaxDT:         0.1,
		},
		Grid:    config.GridConfig{CellScale: 1.25},
		Message: config.MessageConfig{GameOver: "over.txt", Win: "win.txt", Shape: "box"},
	}
}

func item(name string, score int, x, y float64) config.ConsumableGroup {
	return config.ConsumableGroup{
		ActorGroup: config.ActorGroup{
			Name:      name,
			Sprite:    "item.txt",
			Shape:     "box",
			Positions: []config.Position{{X: x, Y: y}},
		},
		Score: score,
	}
}

func newTestGame(t *testing.T, mutate func(*config.CorgiConfig)) *Game {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg, assets.NewLoader(testSprites()))
	if err := g.Reset(testRuntime); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func keys(pressed ...core.Key) core.KeyState {
	ks := core.NewKeyState()
	for _, k := range pressed {
		ks.Press(k)
	}
	return ks
}

func near(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}

func assertShapeSynced(t *testing.T, g *Game) {
	t.Helper()
	for _, a := range g.Scene().Actors() {
		if a.CollisionShape().Center != a.Position() {
			t.Fatalf("%v: shape centre %v diverged from position %v", a, a.CollisionShape().Center, a.Position())
		}
	}
}
