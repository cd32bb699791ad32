package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 10*time.Millisecond)
	if s.TotalGenerations != 1 || s.AveragePopulation != 100 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if math.Abs(s.GenerationsPerSecond-100) > 1e-9 {
		t.Fatalf("gen/sec %v, expected 100", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("moving average %v, expected 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 100 {
		t.Fatal("zero duration overwrote gen/sec")
	}
}

func TestNewRNGIsDeterministic(t *testing.T) {
	a, b := NewRNG(17), NewRNG(17)
	for i := 0; i < 10; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("draw %d differs for the same seed", i)
		}
	}
}
