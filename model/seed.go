package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// DefaultDensity is the probability that a randomly seeded cell starts alive
const DefaultDensity = 0.5

// Seed strategy names accepted by NamedSeed
const (
	SeedRandom     = "random"
	SeedGlider     = "glider"
	SeedBlinker    = "blinker"
	SeedBlock      = "block"
	SeedEveryThird = "every_third"
	SeedMixed      = "mixed"
)

// SeedFunc returns the initial state of the cell at (row, col)
type SeedFunc func(row, col int) Cell

// Pattern is a set of alive cells given as offsets from a top-left origin
type Pattern []Coord

var (
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}

	// Blinker is the horizontal phase of the period-2 oscillator
	Blinker = Pattern{{0, 0}, {0, 1}, {0, 2}}

	// Block is the 2x2 still life
	Block = Pattern{{0, 0}, {0, 1}, {1, 0}, {1, 1}}

	// Toad is a period-2 oscillator
	Toad = Pattern{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}}

	// Beacon is a period-2 oscillator made of two diagonal blocks
	Beacon = Pattern{{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}}
)

// Placement positions a pattern with its origin at (Row, Col)
type Placement struct {
	Pattern Pattern
	Row     int
	Col     int
}

// EveryNth makes every nth cell of each row alive, shifting the phase by one per row
func EveryNth(n int) SeedFunc {
	if n < 1 {
		n = 1
	}
	return func(row, col int) Cell {
		return cellOf((row+col)%n == 0)
	}
}

// RandomSeed makes each cell alive independently with the given probability.
// A nil rng draws from the process-local source.
func RandomSeed(rng *rand.Rand, density float64) SeedFunc {
	float := rand.Float64
	if rng != nil {
		float = rng.Float64
	}
	return func(int, int) Cell {
		return cellOf(float() < density)
	}
}

// PatternSeed makes the cells covered by the placements alive. Placements are
// not wrapped: cells that fall outside the board are never queried.
func PatternSeed(placements ...Placement) SeedFunc {
	alive := make(map[Coord]struct{})
	for _, p := range placements {
		for _, c := range p.Pattern {
			alive[Coord{Row: p.Row + c.Row, Col: p.Col + c.Col}] = struct{}{}
		}
	}
	return func(row, col int) Cell {
		_, ok := alive[Coord{Row: row, Col: col}]
		return cellOf(ok)
	}
}

// Overlay combines seeds: a cell is alive when any of them says so
func Overlay(seeds ...SeedFunc) SeedFunc {
	return func(row, col int) Cell {
		for _, seed := range seeds {
			if seed(row, col).IsAlive() {
				return Alive
			}
		}
		return Dead
	}
}

// NamedSeed builds a seed strategy by name for a width x height board
func NamedSeed(name string, width, height int, rng *rand.Rand, density float64) (SeedFunc, error) {
	midRow, midCol := height/2, width/2
	switch name {
	case SeedRandom:
		return RandomSeed(rng, density), nil
	case SeedGlider:
		return PatternSeed(Placement{Glider, midRow - 1, midCol - 1}), nil
	case SeedBlinker:
		return PatternSeed(Placement{Blinker, midRow, midCol - 1}), nil
	case SeedBlock:
		return PatternSeed(Placement{Block, midRow - 1, midCol - 1}), nil
	case SeedEveryThird:
		return EveryNth(3), nil
	case SeedMixed:
		placements := []Placement{
			{Glider, 5, 5},
			{Blinker, height / 4, width / 4},
		}
		if width >= 20 && height >= 15 {
			placements = append(placements, Placement{Glider, 5, width - 8})
		}
		if width >= 30 {
			placements = append(placements, Placement{Toad, 3 * height / 4, 3 * width / 4})
		}
		return Overlay(PatternSeed(placements...), RandomSeed(rng, density)), nil
	default:
		return nil, errors.Errorf("[NamedSeed] unknown seed strategy %q", name)
	}
}
