package model

import (
	"math"

	"github.com/pkg/errors"
)

// Cell is the state of a single automaton unit, stored as one byte so the
// backing storage can be handed to a renderer as raw bytes
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// IsAlive reports whether the cell is alive. Any nonzero byte decodes as alive.
func (c Cell) IsAlive() bool {
	return c != Dead
}

// Toggle flips the cell between Alive and Dead
func (c *Cell) Toggle() {
	if c.IsAlive() {
		*c = Dead
		return
	}
	*c = Alive
}

func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

// Coord addresses a cell by zero-based row and column
type Coord struct {
	Row int
	Col int
}

// Grid is a fixed-size toroidal board stored row-major in a flat slice.
// The scratch buffer has the same size as cells and receives the next
// generation during a tick.
type Grid struct {
	width   int
	height  int
	cells   []Cell
	scratch []Cell
}

func newGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[newGrid] %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[newGrid] %dx%d overflows", width, height)
	}
	return &Grid{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		scratch: make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether (row, col) lies on the board without wrapping
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Index returns the flat position of (row, col)
func (g *Grid) Index(row, col int) (int, error) {
	if !g.Contains(row, col) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[Index] (%d, %d) outside %dx%d", row, col, g.width, g.height)
	}
	return g.index(row, col), nil
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// Wrap maps any row/col onto the board, treating it as a torus
func (g *Grid) Wrap(row, col int) (int, int) {
	return wrap(row, g.height), wrap(col, g.width)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// LiveNeighborCount counts the alive cells among the eight wrapped neighbors of (row, col)
func (g *Grid) LiveNeighborCount(row, col int) int {
	row, col = g.Wrap(row, col)

	north := wrap(row-1, g.height)
	south := wrap(row+1, g.height)
	west := wrap(col-1, g.width)
	east := wrap(col+1, g.width)

	count := 0
	for _, idx := range [8]int{
		g.index(north, west), g.index(north, col), g.index(north, east),
		g.index(row, west), g.index(row, east),
		g.index(south, west), g.index(south, col), g.index(south, east),
	} {
		if g.cells[idx].IsAlive() {
			count++
		}
	}
	return count
}

// swap promotes the scratch buffer to the current generation
func (g *Grid) swap() {
	g.cells, g.scratch = g.scratch, g.cells
}
