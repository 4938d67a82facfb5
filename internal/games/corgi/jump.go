package corgi

import (
	"math"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// JumpAction is a timed parabolic displacement. At normalized time
// t = elapsed/duration the position is
//
//	start + (delta.X*t, delta.Y*t + height*|sin(pi*hops*t)|)
//
// and the action lands exactly on start+delta.
type JumpAction struct {
	start    core.Vec2
	delta    core.Vec2
	height   float64
	hops     int
	duration float64
	elapsed  float64
}

// NewJumpAction creates a jump from start covering delta.
// A non-positive duration finishes on the first Step.
func NewJumpAction(start, delta core.Vec2, height float64, hops int, duration float64) *JumpAction {
	return &JumpAction{
		start:    start,
		delta:    delta,
		height:   height,
		hops:     hops,
		duration: duration,
	}
}

// Step advances the jump by dt and returns the new position and whether
// the jump has landed.
func (j *JumpAction) Step(dt float64) (core.Vec2, bool) {
	j.elapsed += dt
	t := j.Progress()
	if t >= 1 {
		return j.start.Add(j.delta), true
	}
	arc := j.height * math.Abs(math.Sin(math.Pi*float64(j.hops)*t))
	return core.V(j.start.X+j.delta.X*t, j.start.Y+j.delta.Y*t+arc), false
}

// Progress returns normalized time in [0, 1].
func (j *JumpAction) Progress() float64 {
	if j.duration <= 0 {
		return 1
	}
	return core.ClampF(j.elapsed/j.duration, 0, 1)
}

// Done reports whether the jump has landed.
func (j *JumpAction) Done() bool {
	return j.Progress() >= 1
}

// Landing returns the final position.
func (j *JumpAction) Landing() core.Vec2 {
	return j.start.Add(j.delta)
}
