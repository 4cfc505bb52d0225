package message

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Letters is the size of the symbol alphabet.
const Letters = 26

// DefaultLength is the number of letters in a generated message.
const DefaultLength = 19

// Distribution is a cumulative discrete distribution over the symbols
// 1..Letters.
type Distribution struct {
	limits [Letters]float64
	last   int // highest symbol with a non-zero weight
}

// NewDistribution builds a Distribution from relative weights, which
// need not sum to one.
func NewDistribution(weights [Letters]float64) (*Distribution, error) {
	d := &Distribution{}
	total := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("%w: weight %v for symbol %d",
				ErrInvalidDistribution, w, i+1)
		}
		total += w
		d.limits[i] = total
		if w > 0 {
			d.last = i + 1
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrInvalidDistribution)
	}
	return d, nil
}

// Sample draws a symbol in [1, Letters] using rng.
func (d *Distribution) Sample(rng *rand.Rand) int {
	s := rng.Float64() * d.limits[Letters-1]
	for i, limit := range d.limits {
		if s < limit {
			return i + 1
		}
	}
	return d.last
}

// Source generates random messages by drawing letters from a
// Distribution and encoding them as A1Z26 digit pairs. The random engine
// is created once and reused for every message.
//
// A Source is not safe for concurrent use.
type Source struct {
	dist   *Distribution
	rng    *rand.Rand
	length int
}

// NewSource returns a Source producing messages of length letters
// (2*length digits), seeded with seed.
func NewSource(weights [Letters]float64, seed uint64, length int) (*Source, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: message length %d", ErrInvalidDistribution, length)
	}
	dist, err := NewDistribution(weights)
	if err != nil {
		return nil, err
	}
	return &Source{
		dist:   dist,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		length: length,
	}, nil
}

// Length returns the number of letters per generated message.
func (s *Source) Length() int {
	return s.length
}

// Generate draws a fresh message.
func (s *Source) Generate() Message {
	digits := make([]byte, 0, 2*s.length)
	for i := 0; i < s.length; i++ {
		digits = appendSymbol(digits, s.dist.Sample(s.rng))
	}
	return Message{digits: digits}
}
