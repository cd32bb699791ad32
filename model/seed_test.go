package model

import (
	"math/rand/v2"
	"testing"
)

func TestEveryNth(t *testing.T) {
	u, err := NewUniverse(6, 3, EveryNth(3))
	if err != nil {
		t.Fatal(err)
	}
	want := "◼◻◻◼◻◻\n◻◻◼◻◻◼\n◻◼◻◻◼◻\n"
	if got := u.String(); got != want {
		t.Fatalf("EveryNth(3) seeded\n%s\nexpected\n%s", got, want)
	}
}

func TestRandomSeedIsReproducible(t *testing.T) {
	seedA := RandomSeed(rand.New(rand.NewPCG(9, 9)), DefaultDensity)
	seedB := RandomSeed(rand.New(rand.NewPCG(9, 9)), DefaultDensity)

	a, err := NewUniverse(40, 40, seedA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewUniverse(40, 40, seedB)
	if err != nil {
		t.Fatal(err)
	}
	if a.Hash() != b.Hash() {
		t.Fatal("same random source produced different universes")
	}

	// roughly even odds over 1600 cells
	if pop := a.Population(); pop < 600 || pop > 1000 {
		t.Fatalf("population %d is far from half of 1600", pop)
	}
}

func TestRandomSeedDensityBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	empty, err := NewUniverse(10, 10, RandomSeed(rng, 0))
	if err != nil {
		t.Fatal(err)
	}
	if empty.Population() != 0 {
		t.Fatalf("density 0 gave population %d", empty.Population())
	}

	full, err := NewUniverse(10, 10, RandomSeed(rng, 1))
	if err != nil {
		t.Fatal(err)
	}
	if full.Population() != 100 {
		t.Fatalf("density 1 gave population %d", full.Population())
	}
}

func TestPatternSeedAndOverlay(t *testing.T) {
	seed := Overlay(
		PatternSeed(Placement{Pattern: Block, Row: 0, Col: 0}),
		PatternSeed(Placement{Pattern: Blinker, Row: 3, Col: 1}),
	)
	u, err := NewUniverse(5, 4, seed)
	if err != nil {
		t.Fatal(err)
	}
	want := "◼◼◻◻◻\n◼◼◻◻◻\n◻◻◻◻◻\n◻◼◼◼◻\n"
	if got := u.String(); got != want {
		t.Fatalf("seeded\n%s\nexpected\n%s", got, want)
	}
}

func TestNamedSeed(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for _, name := range []string{SeedRandom, SeedGlider, SeedBlinker, SeedBlock, SeedEveryThird, SeedMixed} {
		seed, err := NamedSeed(name, 40, 30, rng, 0.2)
		if err != nil {
			t.Fatalf("NamedSeed(%q): %v", name, err)
		}
		u, err := NewUniverse(40, 30, seed)
		if err != nil {
			t.Fatal(err)
		}
		if u.Population() == 0 {
			t.Fatalf("NamedSeed(%q) produced an empty universe", name)
		}
	}

	if _, err := NamedSeed("spaceship", 10, 10, rng, 0.5); err == nil {
		t.Fatal("unknown seed name accepted")
	}
}

func TestNamedSeedBlockIsCentered(t *testing.T) {
	seed, err := NamedSeed(SeedBlock, 6, 6, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	u, err := NewUniverse(6, 6, seed)
	if err != nil {
		t.Fatal(err)
	}
	expectAlive(t, u, Coord{2, 2}, Coord{2, 3}, Coord{3, 2}, Coord{3, 3})
}
