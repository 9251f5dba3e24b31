package core

import "math/rand/v2"

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the stream from the provided seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Percent draws a uniform value in [0, 100) from src.
func Percent(src Source) int {
	return src.IntN(100)
}

// Sequence replays a fixed list of draws, wrapping around when exhausted.
// Each value is reduced modulo n so a script can be shared across ranges.
type Sequence struct {
	Values []int
	pos    int
}

// NewSequence returns a Sequence over vals.
func NewSequence(vals ...int) *Sequence {
	return &Sequence{Values: vals}
}

// IntN returns the next scripted value reduced into [0, n).
func (s *Sequence) IntN(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int { return s.pos }
