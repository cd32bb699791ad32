package utils

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// History remembers the hashes of the last few generations so the game loop
// can notice a static board or a short cycle (period 1 to 3)
type History struct {
	hashes []string
}

// Observe checks hash against the recent generations and then records it
func (h *History) Observe(hash string) (stagnant bool) {
	n := len(h.hashes)
	for i := 1; i <= 3 && i <= n; i++ {
		if h.hashes[n-i] == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Reset forgets every recorded hash
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}
