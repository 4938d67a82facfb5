// Package actor defines the positioned, collidable, drawable entities of a
// level. Actors form a closed set of kinds; collision handling switches on
// Kind instead of inspecting types.
package actor

import (
	"fmt"

	"github.com/vovakirdan/corgi-arcade/internal/assets"
	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// Kind discriminates actor variants.
type Kind int

const (
	KindPlayer     Kind = iota // The corgi; subject of collision queries
	KindConsumable             // Scored item, removed on pickup
	KindObstacle               // Solid scenery
	KindHazard                 // Costs a life on contact
	KindMessage                // End-of-game banner
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindConsumable:
		return "consumable"
	case KindObstacle:
		return "obstacle"
	case KindHazard:
		return "hazard"
	case KindMessage:
		return "message"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ID identifies an actor within a scene. Zero means unassigned.
type ID uint32

// Item is the data carried by consumables.
type Item struct {
	Name       string
	Score      int
	SpeedBoost float64 // Reserved; carried but never applied
}

// Visual is the drawable state of an actor.
type Visual struct {
	Sprite  *assets.Sprite
	ScaleX  int     // +1 draws the sprite as stored, -1 mirrors it
	Elapsed float64 // Animation clock in seconds
}

// Frame returns the rows to draw for the current clock and facing.
func (v Visual) Frame() [][]rune {
	if v.Sprite == nil {
		return nil
	}
	s := v.Sprite
	if v.ScaleX < 0 {
		if m := s.Mirrored(); m != nil {
			s = m
		}
	}
	return s.Frame(v.Elapsed)
}

// Color returns the sprite colour, or the default colour without a sprite.
func (v Visual) Color() core.Color {
	if v.Sprite == nil {
		return core.ColorDefault
	}
	return v.Sprite.Color
}

// Advance moves the animation clock forward.
func (v *Visual) Advance(dt float64) {
	if v.Sprite != nil && v.Sprite.Animated() {
		v.Elapsed += dt
	}
}

// Actor is a positioned entity with a collision shape and a visual.
// The shape centre always equals the position.
type Actor struct {
	ID     ID
	Kind   Kind
	Name   string
	Item   Item // Only meaningful for KindConsumable
	Visual Visual

	pos   core.Vec2
	shape core.Shape
}

// New creates an actor whose shape is derived from the sprite size:
// a box of half extents w/2, h/2 or a circle of radius w/2, centred on pos.
func New(kind Kind, name string, pos core.Vec2, sprite *assets.Sprite, shape core.ShapeKind) *Actor {
	var w, h float64
	if sprite != nil {
		w, h = float64(sprite.Width), float64(sprite.Height)
	}

	a := &Actor{
		Kind:   kind,
		Name:   name,
		Visual: Visual{Sprite: sprite, ScaleX: 1},
		pos:    pos,
	}
	switch shape {
	case core.ShapeCircle:
		a.shape = core.NewCircle(pos, w/2)
	default:
		a.shape = core.NewBox(pos, w/2, h/2)
	}
	return a
}

// NewPlayer creates the player actor.
func NewPlayer(pos core.Vec2, sprite *assets.Sprite, shape core.ShapeKind) *Actor {
	return New(KindPlayer, "player", pos, sprite, shape)
}

// NewConsumable creates a scored item.
func NewConsumable(item Item, pos core.Vec2, sprite *assets.Sprite, shape core.ShapeKind) *Actor {
	a := New(KindConsumable, item.Name, pos, sprite, shape)
	a.Item = item
	return a
}

// NewObstacle creates a piece of solid scenery.
func NewObstacle(name string, pos core.Vec2, sprite *assets.Sprite, shape core.ShapeKind) *Actor {
	return New(KindObstacle, name, pos, sprite, shape)
}

// NewHazard creates an actor that costs the player a life.
func NewHazard(name string, pos core.Vec2, sprite *assets.Sprite, shape core.ShapeKind) *Actor {
	return New(KindHazard, name, pos, sprite, shape)
}

// NewMessage creates a banner actor.
func NewMessage(name string, pos core.Vec2, sprite *assets.Sprite, shape core.ShapeKind) *Actor {
	return New(KindMessage, name, pos, sprite, shape)
}

// Position returns the actor centre.
func (a *Actor) Position() core.Vec2 {
	return a.pos
}

// CollisionShape returns the shape used by the spatial grid.
func (a *Actor) CollisionShape() core.Shape {
	return a.shape
}

// SetPosition moves the actor and its shape together.
func (a *Actor) SetPosition(p core.Vec2) {
	a.pos = p
	a.shape = a.shape.WithCenter(p)
}

// Translate moves the actor by d.
func (a *Actor) Translate(d core.Vec2) {
	a.SetPosition(a.pos.Add(d))
}

// SetSprite swaps the visual. Setting the current sprite again keeps the
// animation clock; a new sprite restarts it.
func (a *Actor) SetSprite(s *assets.Sprite) {
	if a.Visual.Sprite == s {
		return
	}
	a.Visual.Sprite = s
	a.Visual.Elapsed = 0
}

// ImageChange loads the sprite at path and swaps it in.
// The collision shape is unchanged.
func (a *Actor) ImageChange(l *assets.Loader, path string) error {
	s, err := l.Load(path)
	if err != nil {
		return fmt.Errorf("actor: %s image change: %w", a.Name, err)
	}
	a.SetSprite(s)
	return nil
}

// String implements fmt.Stringer for debugging.
func (a *Actor) String() string {
	return fmt.Sprintf("%s#%d(%s @ %.2f,%.2f)", a.Kind, a.ID, a.Name, a.pos.X, a.pos.Y)
}
