package core

import (
	"fmt"
	"math"
)

// ShapeKind selects the collision primitive.
type ShapeKind int

const (
	ShapeBox    ShapeKind = iota // Axis-aligned rectangle
	ShapeCircle                  // Circle
)

// String returns the config name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParseShapeKind converts a config name ("box", "circle") to a ShapeKind.
func ParseShapeKind(name string) (ShapeKind, error) {
	switch name {
	case "box":
		return ShapeBox, nil
	case "circle":
		return ShapeCircle, nil
	default:
		return ShapeBox, fmt.Errorf("unknown shape %q", name)
	}
}

// Bounds is a float axis-aligned bounding box in world space.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Shape is a collision shape centred on Center.
// Boxes use HalfW/HalfH, circles use Radius.
type Shape struct {
	Kind   ShapeKind
	Center Vec2
	HalfW  float64
	HalfH  float64
	Radius float64
}

// NewBox creates an axis-aligned box shape.
func NewBox(center Vec2, halfW, halfH float64) Shape {
	return Shape{Kind: ShapeBox, Center: center, HalfW: halfW, HalfH: halfH}
}

// NewCircle creates a circle shape.
func NewCircle(center Vec2, radius float64) Shape {
	return Shape{Kind: ShapeCircle, Center: center, Radius: radius}
}

// WithCenter returns a copy of the shape moved to center.
func (s Shape) WithCenter(center Vec2) Shape {
	s.Center = center
	return s
}

// Bounds returns the bounding box of the shape.
func (s Shape) Bounds() Bounds {
	hw, hh := s.HalfW, s.HalfH
	if s.Kind == ShapeCircle {
		hw, hh = s.Radius, s.Radius
	}
	return Bounds{
		MinX: s.Center.X - hw,
		MinY: s.Center.Y - hh,
		MaxX: s.Center.X + hw,
		MaxY: s.Center.Y + hh,
	}
}

// Overlaps reports whether two shapes intersect.
// Shapes that only touch along an edge do not overlap.
func (s Shape) Overlaps(o Shape) bool {
	switch {
	case s.Kind == ShapeBox && o.Kind == ShapeBox:
		return math.Abs(s.Center.X-o.Center.X) < s.HalfW+o.HalfW &&
			math.Abs(s.Center.Y-o.Center.Y) < s.HalfH+o.HalfH
	case s.Kind == ShapeCircle && o.Kind == ShapeCircle:
		r := s.Radius + o.Radius
		d := s.Center.Sub(o.Center)
		return d.X*d.X+d.Y*d.Y < r*r
	case s.Kind == ShapeBox:
		return boxCircleOverlap(s, o)
	default:
		return boxCircleOverlap(o, s)
	}
}

// boxCircleOverlap tests a box against a circle using the closest point on the box.
func boxCircleOverlap(box, circle Shape) bool {
	b := box.Bounds()
	cx := ClampF(circle.Center.X, b.MinX, b.MaxX)
	cy := ClampF(circle.Center.Y, b.MinY, b.MaxY)
	dx := circle.Center.X - cx
	dy := circle.Center.Y - cy
	return dx*dx+dy*dy < circle.Radius*circle.Radius
}
