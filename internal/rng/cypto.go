package rng

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Crypto wraps the crypto/rand library
type Crypto struct{}

var maxSeed = big.NewInt(math.MaxInt64)

// Int63 returns a random number in [0, MaxInt64)
func (c Crypto) Int63() int64 {
	b, err := rand.Int(rand.Reader, maxSeed)
	if err != nil {
		panic(err)
	}

	return b.Int64()
}
