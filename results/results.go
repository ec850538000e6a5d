// Package results aggregates per-sample error distances into one of the
// three artifact shapes and encodes them in the errors.bin layout: a
// two-int32 header (operand widths) followed by fixed-width big-endian
// records in declaration order.
package results

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/approxware/errchar/utils"
)

// Mode selects the exploration strategy and the output shape of a run.
type Mode int

const (
	Exhaustive Mode = iota
	Random2D
	Random3D
)

func (m Mode) String() string {
	switch m {
	case Exhaustive:
		return "exhaustive"
	case Random2D:
		return "random2d"
	case Random3D:
		return "random3d"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Random2DPolicy selects between the two historical random 2D accumulation
// shapes: the running mean per ideal-result bucket (the shape the binary
// readers consume) or the full diff list per bucket.
type Random2DPolicy int

const (
	KeepMeans Random2DPolicy = iota
	KeepDiffs
)

// Header carries the operand widths written ahead of every result payload.
type Header struct {
	WidthA, WidthB int32
}

// Set is a mode-tagged collection of error distances. Record order follows
// the sampling sequence; Encode emits the artifact bytes after the header.
type Set interface {
	Mode() Mode
	Len() int
	// Record adds one sample. It fails if a value cannot be represented in
	// the artifact's 8-byte records.
	Record(a, b uint64, ideal, diff *big.Int) error
	// Encode returns the full artifact byte image, header included.
	Encode() []byte
}

func toInt64(label string, v *big.Int) (int64, error) {
	if !v.IsInt64() {
		return 0, fmt.Errorf("%s %s does not fit an 8-byte artifact record", label, v.String())
	}
	return v.Int64(), nil
}

// ExhaustiveSet holds one diff per enumerated pair in enumeration order;
// the index i = a*2^w + b encodes the operand pair implicitly.
type ExhaustiveSet struct {
	h     Header
	diffs []int64
}

func NewExhaustiveSet(h Header) *ExhaustiveSet {
	return &ExhaustiveSet{
		h:     h,
		diffs: make([]int64, 0, uint64(1)<<uint(h.WidthA+h.WidthB)),
	}
}

func (s *ExhaustiveSet) Mode() Mode { return Exhaustive }
func (s *ExhaustiveSet) Len() int   { return len(s.diffs) }

// Diffs returns the recorded sequence in enumeration order.
func (s *ExhaustiveSet) Diffs() []int64 { return s.diffs }

func (s *ExhaustiveSet) Record(a, b uint64, ideal, diff *big.Int) error {
	d, err := toInt64("diff", diff)
	if err != nil {
		return err
	}
	s.diffs = append(s.diffs, d)
	return nil
}

func (s *ExhaustiveSet) Encode() []byte {
	o := &utils.OutputBuf{}
	o.AppendInt32(s.h.WidthA)
	o.AppendInt32(s.h.WidthB)
	for _, d := range s.diffs {
		o.AppendInt64(d)
	}
	return o.Bytes()
}

type bucket struct {
	diffs []int64
	sum   float64
	n     int64
}

// Random2DSet buckets diffs by ideal result. Depending on the policy a
// bucket retains every diff in arrival order or only their running mean.
type Random2DSet struct {
	h       Header
	policy  Random2DPolicy
	buckets map[int64]*bucket
	samples int
}

func NewRandom2DSet(h Header, policy Random2DPolicy) *Random2DSet {
	return &Random2DSet{h: h, policy: policy, buckets: make(map[int64]*bucket)}
}

func (s *Random2DSet) Mode() Mode { return Random2D }

// Len returns the number of ideal-result buckets.
func (s *Random2DSet) Len() int { return len(s.buckets) }

// Samples returns the number of recorded samples across all buckets.
func (s *Random2DSet) Samples() int { return s.samples }

func (s *Random2DSet) Record(a, b uint64, ideal, diff *big.Int) error {
	key, err := toInt64("ideal result", ideal)
	if err != nil {
		return err
	}
	d, err := toInt64("diff", diff)
	if err != nil {
		return err
	}
	bk := s.buckets[key]
	if bk == nil {
		bk = &bucket{}
		s.buckets[key] = bk
	}
	if s.policy == KeepDiffs {
		bk.diffs = append(bk.diffs, d)
	}
	bk.sum += float64(d)
	bk.n++
	s.samples++
	return nil
}

// Encode emits buckets sorted by key so that identical runs yield
// byte-identical artifacts regardless of map iteration order.
func (s *Random2DSet) Encode() []byte {
	keys := make([]int64, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	o := &utils.OutputBuf{}
	o.AppendInt32(s.h.WidthA)
	o.AppendInt32(s.h.WidthB)
	for _, k := range keys {
		bk := s.buckets[k]
		o.AppendInt64(k)
		if s.policy == KeepDiffs {
			o.AppendInt32(int32(len(bk.diffs)))
			for _, d := range bk.diffs {
				o.AppendInt64(d)
			}
		} else {
			o.AppendFloat64(bk.sum / float64(bk.n))
		}
	}
	return o.Bytes()
}

// Pair is a recorded operand pair.
type Pair struct {
	A, B uint64
}

// Random3DSet maps operand pairs to a single diff each.
type Random3DSet struct {
	h     Header
	diffs map[Pair]int64
}

func NewRandom3DSet(h Header) *Random3DSet {
	return &Random3DSet{h: h, diffs: make(map[Pair]int64)}
}

func (s *Random3DSet) Mode() Mode { return Random3D }
func (s *Random3DSet) Len() int   { return len(s.diffs) }

// Record stores the diff for (a, b). When random sampling draws the same
// pair twice the later diff overwrites the earlier one; downstream
// consumers rely on this last-write-wins shape, so duplicates are neither
// deduplicated nor aggregated.
func (s *Random3DSet) Record(a, b uint64, ideal, diff *big.Int) error {
	d, err := toInt64("diff", diff)
	if err != nil {
		return err
	}
	s.diffs[Pair{A: a, B: b}] = d
	return nil
}

// Encode emits entries sorted by (a, b) for byte-identical artifacts.
func (s *Random3DSet) Encode() []byte {
	pairs := make([]Pair, 0, len(s.diffs))
	for p := range s.diffs {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	o := &utils.OutputBuf{}
	o.AppendInt32(s.h.WidthA)
	o.AppendInt32(s.h.WidthB)
	for _, p := range pairs {
		o.AppendUint64(p.A)
		o.AppendUint64(p.B)
		o.AppendInt64(s.diffs[p])
	}
	return o.Bytes()
}
