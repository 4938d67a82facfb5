// Package spatial provides the uniform grid used for broad-phase collision
// detection. The grid is rebuilt every frame: Clear, Add every live item,
// then QueryColliding for the items that need answers.
package spatial

import (
	"math"
	"slices"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// Collider is anything with a collision shape that can be stored in a Grid.
type Collider interface {
	comparable
	CollisionShape() core.Shape
}

type entry[T Collider] struct {
	item  T
	shape core.Shape // Shape at insertion time
}

// Grid buckets items into fixed-size cells over a world rectangle.
// Items outside the rectangle are clamped into the border cells.
//
// Cell size should be close to the largest item dimension so that an item
// touches at most four cells.
type Grid[T Collider] struct {
	minX, minY   float64
	cellW, cellH float64
	cols, rows   int

	entries []entry[T]
	cells   [][]int // cells[row*cols+col] = indices into entries

	// stamp[i] == query means entry i was already collected by the current query.
	stamp []uint32
	query uint32
}

// Stats describes grid occupancy, for debugging.
type Stats struct {
	Cols, Rows   int
	Items        int // Items added since the last Clear
	Refs         int // Cell references; an item spanning cells counts once per cell
	Occupied     int // Cells holding at least one item
	MaxPerCell   int
	CellW, CellH float64
}

// NewGrid creates a grid covering [minX, maxX] x [minY, maxY].
// Non-positive cell sizes fall back to a single cell along that axis.
func NewGrid[T Collider](minX, maxX, minY, maxY, cellW, cellH float64) *Grid[T] {
	width := maxX - minX
	height := maxY - minY
	if cellW <= 0 {
		cellW = math.Max(width, 1)
	}
	if cellH <= 0 {
		cellH = math.Max(height, 1)
	}

	// Ensure at least 1x1 grid
	cols := core.Max(int(math.Ceil(width/cellW)), 1)
	rows := core.Max(int(math.Ceil(height/cellH)), 1)

	return &Grid[T]{
		minX:  minX,
		minY:  minY,
		cellW: cellW,
		cellH: cellH,
		cols:  cols,
		rows:  rows,
		cells: make([][]int, cols*rows),
	}
}

// Clear removes every item. Allocated capacity is kept for the next frame.
func (g *Grid[T]) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	clear(g.entries)
	g.entries = g.entries[:0]
	g.stamp = g.stamp[:0]
}

// Add inserts item into every cell its shape bounds overlap.
func (g *Grid[T]) Add(item T) {
	shape := item.CollisionShape()
	idx := len(g.entries)
	g.entries = append(g.entries, entry[T]{item: item, shape: shape})
	g.stamp = append(g.stamp, 0)

	minCol, maxCol, minRow, maxRow := g.cellRange(shape.Bounds())
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			c := row*g.cols + col
			g.cells[c] = append(g.cells[c], idx)
		}
	}
}

// QueryColliding returns the items whose shapes overlap item's shape,
// in insertion order, without duplicates and without item itself.
// item does not need to be in the grid.
func (g *Grid[T]) QueryColliding(item T) []T {
	shape := item.CollisionShape()

	g.query++
	if g.query == 0 {
		// Counter wrapped; reset stamps so stale marks cannot match.
		clear(g.stamp)
		g.query = 1
	}

	var candidates []int
	minCol, maxCol, minRow, maxRow := g.cellRange(shape.Bounds())
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, idx := range g.cells[row*g.cols+col] {
				if g.stamp[idx] == g.query {
					continue
				}
				g.stamp[idx] = g.query
				candidates = append(candidates, idx)
			}
		}
	}
	slices.Sort(candidates)

	var result []T
	for _, idx := range candidates {
		e := g.entries[idx]
		if e.item == item {
			continue
		}
		if shape.Overlaps(e.shape) {
			result = append(result, e.item)
		}
	}
	return result
}

// Len returns the number of items added since the last Clear.
func (g *Grid[T]) Len() int {
	return len(g.entries)
}

// Dimensions returns the number of columns and rows.
func (g *Grid[T]) Dimensions() (cols, rows int) {
	return g.cols, g.rows
}

// Stats returns occupancy figures for the current frame.
func (g *Grid[T]) Stats() Stats {
	s := Stats{
		Cols:  g.cols,
		Rows:  g.rows,
		Items: len(g.entries),
		CellW: g.cellW,
		CellH: g.cellH,
	}
	for _, c := range g.cells {
		if len(c) == 0 {
			continue
		}
		s.Occupied++
		s.Refs += len(c)
		s.MaxPerCell = core.Max(s.MaxPerCell, len(c))
	}
	return s
}

// cellRange returns the inclusive cell span covered by b, clamped to the grid.
func (g *Grid[T]) cellRange(b core.Bounds) (minCol, maxCol, minRow, maxRow int) {
	minCol = g.clampCol(int(math.Floor((b.MinX - g.minX) / g.cellW)))
	maxCol = g.clampCol(int(math.Floor((b.MaxX - g.minX) / g.cellW)))
	minRow = g.clampRow(int(math.Floor((b.MinY - g.minY) / g.cellH)))
	maxRow = g.clampRow(int(math.Floor((b.MaxY - g.minY) / g.cellH)))
	return minCol, maxCol, minRow, maxRow
}

func (g *Grid[T]) clampCol(c int) int {
	return core.Clamp(c, 0, g.cols-1)
}

func (g *Grid[T]) clampRow(r int) int {
	return core.Clamp(r, 0, g.rows-1)
}
