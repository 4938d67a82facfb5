package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add() = %v, expected (4, -2)", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub() = %v, expected (-2, 6)", got)
	}
	if got := b.Scale(0.5); got != V(1.5, -2) {
		t.Errorf("Scale() = %v, expected (1.5, -2)", got)
	}
	if got := b.Len(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestShapeOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Shape
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(V(0, 0), 2, 2),
			b:        NewBox(V(3, 3), 2, 2),
			expected: true,
		},
		{
			name:     "separated boxes",
			a:        NewBox(V(0, 0), 2, 2),
			b:        NewBox(V(10, 0), 2, 2),
			expected: false,
		},
		{
			name:     "touching boxes (no overlap)",
			a:        NewBox(V(0, 0), 2, 2),
			b:        NewBox(V(4, 0), 2, 2),
			expected: false,
		},
		{
			name:     "same position boxes",
			a:        NewBox(V(5, 5), 1, 1),
			b:        NewBox(V(5, 5), 3, 1),
			expected: true,
		},
		{
			name:     "overlapping circles",
			a:        NewCircle(V(0, 0), 2),
			b:        NewCircle(V(3, 0), 2),
			expected: true,
		},
		{
			name:     "touching circles (no overlap)",
			a:        NewCircle(V(0, 0), 2),
			b:        NewCircle(V(4, 0), 2),
			expected: false,
		},
		{
			name:     "circle near box corner but outside",
			a:        NewBox(V(0, 0), 2, 2),
			b:        NewCircle(V(3.5, 3.5), 1.5),
			expected: false,
		},
		{
			name:     "circle overlapping box edge",
			a:        NewBox(V(0, 0), 2, 2),
			b:        NewCircle(V(3, 0), 1.5),
			expected: true,
		},
		{
			name:     "circle inside box",
			a:        NewBox(V(0, 0), 5, 5),
			b:        NewCircle(V(1, 1), 0.5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestShapeBounds(t *testing.T) {
	box := NewBox(V(10, 5), 3, 1)
	b := box.Bounds()
	if b.MinX != 7 || b.MaxX != 13 || b.MinY != 4 || b.MaxY != 6 {
		t.Errorf("box Bounds() = %+v", b)
	}

	circle := NewCircle(V(0, 0), 2)
	b = circle.Bounds()
	if b.MinX != -2 || b.MaxX != 2 || b.MinY != -2 || b.MaxY != 2 {
		t.Errorf("circle Bounds() = %+v", b)
	}
}

func TestShapeWithCenter(t *testing.T) {
	s := NewBox(V(0, 0), 2, 3)
	moved := s.WithCenter(V(4, 4))

	if moved.Center != V(4, 4) {
		t.Errorf("WithCenter() center = %v, expected (4, 4)", moved.Center)
	}
	if moved.HalfW != 2 || moved.HalfH != 3 {
		t.Error("WithCenter() should keep extents")
	}
	if s.Center != V(0, 0) {
		t.Error("WithCenter() should not modify the original")
	}
}

func TestParseShapeKind(t *testing.T) {
	if k, err := ParseShapeKind("box"); err != nil || k != ShapeBox {
		t.Errorf("ParseShapeKind(box) = %v, %v", k, err)
	}
	if k, err := ParseShapeKind("circle"); err != nil || k != ShapeCircle {
		t.Errorf("ParseShapeKind(circle) = %v, %v", k, err)
	}
	if _, err := ParseShapeKind("hexagon"); err == nil {
		t.Error("ParseShapeKind(hexagon) should fail")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
}
