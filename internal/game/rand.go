package game

// DirectionSource chooses the horizontal direction of a serve. It is
// injected into the game so tests can supply a fixed direction.
type DirectionSource interface {
	// Sign returns -1 or +1.
	Sign() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
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
	// LCG parameters (same as MINSTD)
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Sign returns -1 or +1 with equal probability.
func (r *SimpleRNG) Sign() float64 {
	if r.Next()>>63 == 0 {
		return -1
	}
	return 1
}

// FixedDirection is a DirectionSource that always returns the same sign.
// Used by tests that need a fully deterministic serve.
type FixedDirection float64

// Sign returns the fixed direction.
func (d FixedDirection) Sign() float64 {
	return float64(d)
}
