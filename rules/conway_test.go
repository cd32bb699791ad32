package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	// every (state, neighbor count) pair
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Fatalf("alive with %d neighbors -> %v, expected %v", neighbors, got, wantAlive)
		}

		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Fatalf("dead with %d neighbors -> %v, expected %v", neighbors, got, wantBorn)
		}
	}
}
