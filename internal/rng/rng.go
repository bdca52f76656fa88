package rng

// Generator provides shuffle seeds
type Generator interface {
	// Int63 returns a non-negative random number
	Int63() int64
}

// Fixed always returns the same seed
type Fixed int64

// Int63 returns the fixed seed
func (f Fixed) Int63() int64 {
	return int64(f)
}
