package core

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator). Games receive their
// seed through RuntimeConfig so two runs with equal seeds and inputs
// produce identical simulations.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}

// Range returns a random float64 in [min, max).
func (r *SimpleRNG) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Chance returns true with probability p in [0, 1].
func (r *SimpleRNG) Chance(p float64) bool {
	return r.Float64() < p
}

// State exposes the internal state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
