package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	cellGlyphAlive = '◼'
	cellGlyphDead  = '◻'
)

// Universe runs Conway's Game of Life (B3/S23) on a toroidal grid.
//
// A Universe is not safe for concurrent use. Tick, ToggleCell and
// SetCellsAlive are mutating calls; slices returned by Cells and Bytes alias
// the live generation and are only valid until the next mutating call.
// Epoch changes on every mutating call, so a reader can tell whether a view
// it captured is stale.
type Universe struct {
	grid  *Grid
	epoch uint64
}

// NewUniverse allocates a width x height universe and initializes every cell
// by calling seed in row-major order. A nil seed leaves every cell dead.
func NewUniverse(width, height int, seed SeedFunc) (*Universe, error) {
	grid, err := newGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[NewUniverse] failed to allocate grid")
	}
	if seed != nil {
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				// normalize so every stored byte is 0 or 1
				grid.cells[grid.index(row, col)] = cellOf(seed(row, col).IsAlive())
			}
		}
	}
	return &Universe{grid: grid}, nil
}

// NewRandomUniverse seeds each cell alive with probability DefaultDensity.
// A nil rng draws from the process-local source.
func NewRandomUniverse(width, height int, rng *rand.Rand) (*Universe, error) {
	return NewUniverse(width, height, RandomSeed(rng, DefaultDensity))
}

// Width returns the number of columns
func (u *Universe) Width() int {
	return u.grid.width
}

// Height returns the number of rows
func (u *Universe) Height() int {
	return u.grid.height
}

// Grid exposes the underlying board for neighbor and index queries
func (u *Universe) Grid() *Grid {
	return u.grid
}

// Epoch returns the number of mutating calls applied so far
func (u *Universe) Epoch() uint64 {
	return u.epoch
}

// Tick advances the universe by exactly one generation.
//
// Every next state is computed from the current generation into the scratch
// buffer, which then becomes the current generation.
func (u *Universe) Tick() {
	g := u.grid
	next := g.scratch
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			idx := g.index(row, col)
			alive := rules.ApplyConwayRules(g.LiveNeighborCount(row, col), g.cells[idx].IsAlive())
			next[idx] = cellOf(alive)
		}
	}
	g.swap()
	u.epoch++
}

// ToggleCell flips the cell at (row, col)
func (u *Universe) ToggleCell(row, col int) error {
	idx, err := u.grid.Index(row, col)
	if err != nil {
		return errors.Wrap(err, "[ToggleCell] failed to locate cell")
	}
	u.grid.cells[idx].Toggle()
	u.epoch++
	return nil
}

// SetCellsAlive marks every coordinate alive in the current generation.
// All coordinates are validated first; on error nothing is changed.
func (u *Universe) SetCellsAlive(coords ...Coord) error {
	for _, c := range coords {
		if _, err := u.grid.Index(c.Row, c.Col); err != nil {
			return errors.Wrap(err, "[SetCellsAlive] failed to locate cell")
		}
	}
	for _, c := range coords {
		u.grid.cells[u.grid.index(c.Row, c.Col)] = Alive
	}
	u.epoch++
	return nil
}

// Cell returns the state at (row, col)
func (u *Universe) Cell(row, col int) (Cell, error) {
	idx, err := u.grid.Index(row, col)
	if err != nil {
		return Dead, errors.Wrap(err, "[Cell] failed to locate cell")
	}
	return u.grid.cells[idx], nil
}

// Cells returns the current generation in row-major order without copying.
// Callers must not modify it or retain it across a mutating call.
func (u *Universe) Cells() []Cell {
	return u.grid.cells
}

// Bytes returns the same memory as Cells viewed as raw bytes
func (u *Universe) Bytes() []byte {
	cells := u.grid.cells
	return unsafe.Slice((*byte)(unsafe.SliceData(cells)), len(cells))
}

// Population returns the number of living cells
func (u *Universe) Population() (count int) {
	for _, c := range u.grid.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (u *Universe) Hash() string {
	sum := md5.Sum(u.Bytes())
	return fmt.Sprintf("%x", sum[:])
}

// String renders the current generation, one line per row
func (u *Universe) String() string {
	var b strings.Builder
	w := u.grid.width
	for start := 0; start < len(u.grid.cells); start += w {
		for _, c := range u.grid.cells[start : start+w] {
			if c.IsAlive() {
				b.WriteRune(cellGlyphAlive)
			} else {
				b.WriteRune(cellGlyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
