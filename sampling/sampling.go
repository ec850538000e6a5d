// Package sampling enumerates the operand pairs a characterization run
// feeds to the device under test, either exhaustively or as a fixed-size
// pseudorandom subset drawn from a seeded generator.
package sampling

import (
	"fmt"
	"math"
	"math/rand"
)

// Seed is hard-coded so that repeated runs with identical parameters
// produce byte-identical artifacts.
const Seed int64 = 42

const (
	// MaxExhaustiveWidth bounds operand widths in exhaustive mode; beyond
	// it the 2^(2w) pair domain is no longer enumerable in practice.
	MaxExhaustiveWidth = 10

	// MaxRandomWidth bounds operand widths in random mode to one machine
	// word per operand.
	MaxRandomWidth = 64
)

// NTests returns the per-dimension random sample count 2^round(1.25*sqrt(w)+1).
// A random run draws NTests(w)^2 operand pairs in total.
func NTests(width int) int {
	return 1 << int(math.Round(1.25*math.Sqrt(float64(width))+1))
}

// Sequence is a finite, ordered stream of operand pairs.
type Sequence interface {
	// Next returns the next pair, or ok=false once the sequence is drained.
	Next() (a, b uint64, ok bool)
	// Count returns the total number of pairs the sequence yields.
	Count() uint64
}

type exhaustive struct {
	width int
	i, n  uint64
}

// NewExhaustive enumerates all pairs over [0, 2^width)^2 row-major, with a
// as the outer counter. The pair at position i is (i >> width, i & mask).
func NewExhaustive(width int) Sequence {
	if width <= 0 || width > MaxExhaustiveWidth {
		panic(fmt.Sprintf("exhaustive sampling requires 0 < width <= %d, got %d", MaxExhaustiveWidth, width))
	}
	return &exhaustive{width: width, n: uint64(1) << uint(2*width)}
}

func (s *exhaustive) Next() (uint64, uint64, bool) {
	if s.i == s.n {
		return 0, 0, false
	}
	a := s.i >> uint(s.width)
	b := s.i & (uint64(1)<<uint(s.width) - 1)
	s.i++
	return a, b, true
}

func (s *exhaustive) Count() uint64 {
	return s.n
}

type random struct {
	mask uint64
	i, n uint64
	rng  *rand.Rand
}

// NewRandom draws NTests(width)^2 independent uniform pairs from a
// generator seeded with Seed. Widths small enough for full enumeration
// degrade to the exhaustive sequence, which is cheaper and free of
// sampling bias.
func NewRandom(width int) Sequence {
	if width <= 0 || width > MaxRandomWidth {
		panic(fmt.Sprintf("random sampling requires 0 < width <= %d, got %d", MaxRandomWidth, width))
	}
	if width <= MaxExhaustiveWidth {
		return NewExhaustive(width)
	}
	mask := ^uint64(0)
	if width < 64 {
		mask = uint64(1)<<uint(width) - 1
	}
	nt := uint64(NTests(width))
	return &random{mask: mask, n: nt * nt, rng: rand.New(rand.NewSource(Seed))}
}

func (s *random) Next() (uint64, uint64, bool) {
	if s.i == s.n {
		return 0, 0, false
	}
	s.i++
	return s.rng.Uint64() & s.mask, s.rng.Uint64() & s.mask, true
}

func (s *random) Count() uint64 {
	return s.n
}
