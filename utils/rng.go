package utils

import (
	"math/rand/v2"
	"time"
)

// NewRNG returns a deterministic PCG-backed source. A zero seed is replaced by the current time.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
