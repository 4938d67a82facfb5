package corgi

import (
	"fmt"

	"github.com/vovakirdan/corgi-arcade/internal/actor"
	"github.com/vovakirdan/corgi-arcade/internal/assets"
	"github.com/vovakirdan/corgi-arcade/internal/config"
	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// level is the set of actors and visuals built from a config.
type level struct {
	scene   *actor.Scene
	player  *actor.Actor
	sprites Sprites

	gameOverSprite *assets.Sprite
	winSprite      *assets.Sprite
	messageShape   core.ShapeKind
}

// buildLevel loads every sprite named by cfg and places the actors.
// Any missing asset or unknown shape is returned as an error.
func buildLevel(cfg config.CorgiConfig, loader *assets.Loader) (*level, error) {
	lv := &level{scene: actor.NewScene()}

	var err error
	load := func(path string) *assets.Sprite {
		if err != nil {
			return nil
		}
		var s *assets.Sprite
		s, err = loader.Load(path)
		return s
	}

	lv.sprites = Sprites{
		Standing: load(cfg.Player.Standing),
		Walking:  load(cfg.Player.Walking),
		Jumping:  load(cfg.Player.Jumping),
	}
	lv.gameOverSprite = load(cfg.Message.GameOver)
	lv.winSprite = load(cfg.Message.Win)
	if err != nil {
		return nil, fmt.Errorf("corgi: %w", err)
	}

	if lv.messageShape, err = core.ParseShapeKind(cfg.Message.Shape); err != nil {
		return nil, fmt.Errorf("corgi: message: %w", err)
	}
	playerShape, err := core.ParseShapeKind(cfg.Player.Shape)
	if err != nil {
		return nil, fmt.Errorf("corgi: player: %w", err)
	}
	lv.player = actor.NewPlayer(cfg.Player.Start.Vec(), lv.sprites.Standing, playerShape)
	lv.scene.Add(lv.player)

	for _, g := range cfg.Consumables {
		item := actor.Item{Name: g.Name, Score: g.Score, SpeedBoost: g.SpeedBoost}
		err := placeGroup(lv.scene, loader, g.ActorGroup, func(pos core.Vec2, s *assets.Sprite, k core.ShapeKind) *actor.Actor {
			return actor.NewConsumable(item, pos, s, k)
		})
		if err != nil {
			return nil, err
		}
	}
	for _, g := range cfg.Obstacles {
		if err := placeGroup(lv.scene, loader, g, named(g.Name, actor.NewObstacle)); err != nil {
			return nil, err
		}
	}
	for _, g := range cfg.Hazards {
		if err := placeGroup(lv.scene, loader, g, named(g.Name, actor.NewHazard)); err != nil {
			return nil, err
		}
	}

	return lv, nil
}

type spawnFunc func(pos core.Vec2, s *assets.Sprite, k core.ShapeKind) *actor.Actor

func named(name string, f func(string, core.Vec2, *assets.Sprite, core.ShapeKind) *actor.Actor) spawnFunc {
	return func(pos core.Vec2, s *assets.Sprite, k core.ShapeKind) *actor.Actor {
		return f(name, pos, s, k)
	}
}

func placeGroup(scene *actor.Scene, loader *assets.Loader, g config.ActorGroup, spawn spawnFunc) error {
	sprite, err := loader.Load(g.Sprite)
	if err != nil {
		return fmt.Errorf("corgi: %s: %w", g.Name, err)
	}
	kind, err := core.ParseShapeKind(g.Shape)
	if err != nil {
		return fmt.Errorf("corgi: %s: %w", g.Name, err)
	}
	for _, p := range g.Positions {
		scene.Add(spawn(p.Vec(), sprite, kind))
	}
	return nil
}
