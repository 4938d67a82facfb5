package corgi

import (
	"github.com/vovakirdan/corgi-arcade/internal/actor"
	"github.com/vovakirdan/corgi-arcade/internal/assets"
	"github.com/vovakirdan/corgi-arcade/internal/config"
	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// MotionState is the player state machine.
//
//	Standing --move--> Walking --stop--> Standing
//	Standing/Walking --jump pressed--> Jumping --landed--> Standing
type MotionState int

const (
	Standing MotionState = iota
	Walking
	Jumping
)

// String returns a human-readable name for the state.
func (s MotionState) String() string {
	switch s {
	case Standing:
		return "standing"
	case Walking:
		return "walking"
	case Jumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// Intent is the movement request derived from the held keys for one frame.
type Intent struct {
	X, Y int  // -1, 0 or 1 per axis
	Jump bool // Jump key held
}

// IntentFrom combines the four direction keys into a signed unit step.
func IntentFrom(keys core.KeyState) Intent {
	return Intent{
		X:    keys.Axis(core.KeyLeft, core.KeyRight),
		Y:    keys.Axis(core.KeyDown, core.KeyUp),
		Jump: keys.Pressed(core.KeyJump) == 1,
	}
}

// Moving reports whether any direction is requested.
func (in Intent) Moving() bool {
	return in.X != 0 || in.Y != 0
}

// Sprites are the player visuals per state.
type Sprites struct {
	Standing *assets.Sprite
	Walking  *assets.Sprite
	Jumping  *assets.Sprite
}

// Kinematics integrates player movement from input.
type Kinematics struct {
	move config.MovementConfig
	jump config.JumpConfig

	state       MotionState
	speedFactor float64
	jumpHeld    bool // Jump key state on the previous frame
	action      *JumpAction
}

// NewKinematics creates kinematics in the Standing state at baseline speed.
func NewKinematics(move config.MovementConfig, jump config.JumpConfig) *Kinematics {
	return &Kinematics{
		move:        move,
		jump:        jump,
		state:       Standing,
		speedFactor: move.InitialSpeedFactor,
	}
}

// State returns the current motion state.
func (k *Kinematics) State() MotionState {
	return k.state
}

// SpeedFactor returns the current fraction of base speed.
func (k *Kinematics) SpeedFactor() float64 {
	return k.speedFactor
}

// Speed returns the current walking speed in cells per second.
func (k *Kinematics) Speed() float64 {
	return k.move.BaseSpeed * k.speedFactor
}

// Reset cancels a running jump and returns to Standing at baseline speed.
// The jump key edge state is kept so a held key does not fire a new jump.
func (k *Kinematics) Reset() {
	k.action = nil
	k.state = Standing
	k.speedFactor = k.move.InitialSpeedFactor
}

// Update advances the player by one frame.
func (k *Kinematics) Update(p *actor.Actor, in Intent, dt float64, sprites Sprites) {
	defer func() { k.jumpHeld = in.Jump }()

	// Sprites face left; mirror when heading right.
	switch {
	case in.X < 0:
		p.Visual.ScaleX = 1
	case in.X > 0:
		p.Visual.ScaleX = -1
	}

	if k.state == Jumping {
		pos, landed := k.action.Step(dt)
		p.SetPosition(pos)
		if landed {
			k.action = nil
			k.state = Standing
			p.SetSprite(sprites.Standing)
		}
		return
	}

	if in.Jump && !k.jumpHeld {
		delta := core.V(float64(in.X), float64(in.Y)).Scale(k.jump.Distance)
		k.action = NewJumpAction(p.Position(), delta, k.jump.Height, k.jump.Hops, k.jump.Duration)
		k.state = Jumping
		p.SetSprite(sprites.Jumping)
		return
	}

	if !in.Moving() {
		k.state = Standing
		k.speedFactor = k.move.InitialSpeedFactor
		p.SetSprite(sprites.Standing)
		return
	}

	if k.state != Walking {
		k.state = Walking
		p.SetSprite(sprites.Walking)
	}
	k.speedFactor = core.ClampF(k.speedFactor+k.move.Acceleration, 0, k.move.MaxSpeedFactor)

	step := k.Speed() * dt
	p.Translate(core.V(float64(in.X)*step, float64(in.Y)*step))
	p.Visual.Advance(dt)
}
