package util

import "golang.org/x/exp/rand"

// NewRand returns a seeded generator usable as a distuv source. The same
// seed replays the same draws.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
