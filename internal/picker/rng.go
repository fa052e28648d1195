package picker

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

const mantissa = 1 << 53

// cryptoSource draws 53 fresh bits per call, so it is safe to share.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var b [8]byte
	if _, err := cryptoRand.Read(b[:]); err != nil {
		return rand.Float64()
	}
	return float64(binary.LittleEndian.Uint64(b[:])%mantissa) / mantissa
}

// DefaultRNG is used for live spins.
func DefaultRNG() RandomSource { return cryptoSource{} }

// NewSeededRNG replays the same draws for seed. Not safe for concurrent use.
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
