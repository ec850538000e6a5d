package results

import (
	"fmt"

	"github.com/approxware/errchar/utils"
)

func readHeader(in *utils.InputBuf) (Header, error) {
	if in.Len() < 8 {
		return Header{}, fmt.Errorf("artifact too short for header: %d bytes", in.Len())
	}
	return Header{WidthA: in.ReadInt32(), WidthB: in.ReadInt32()}, nil
}

// DecodeExhaustive reads an exhaustive artifact back into its diff
// sequence.
func DecodeExhaustive(data []byte) (Header, []int64, error) {
	in := utils.NewInputBuf(data)
	h, err := readHeader(in)
	if err != nil {
		return Header{}, nil, err
	}
	if in.Len()%8 != 0 {
		return Header{}, nil, fmt.Errorf("exhaustive payload is not a multiple of 8 bytes: %d", in.Len())
	}
	diffs := make([]int64, 0, in.Len()/8)
	for !in.IsEnd() {
		diffs = append(diffs, in.ReadInt64())
	}
	return h, diffs, nil
}

// DecodeRandom2DMeans reads a mean-variant random 2D artifact into an
// ideal-result to mean-diff map.
func DecodeRandom2DMeans(data []byte) (Header, map[int64]float64, error) {
	in := utils.NewInputBuf(data)
	h, err := readHeader(in)
	if err != nil {
		return Header{}, nil, err
	}
	if in.Len()%16 != 0 {
		return Header{}, nil, fmt.Errorf("random 2D mean payload is not a multiple of 16 bytes: %d", in.Len())
	}
	means := make(map[int64]float64, in.Len()/16)
	for !in.IsEnd() {
		key := in.ReadInt64()
		means[key] = in.ReadFloat64()
	}
	return h, means, nil
}

// DecodeRandom2DDiffs reads a list-variant random 2D artifact into an
// ideal-result to diff-list map.
func DecodeRandom2DDiffs(data []byte) (Header, map[int64][]int64, error) {
	in := utils.NewInputBuf(data)
	h, err := readHeader(in)
	if err != nil {
		return Header{}, nil, err
	}
	diffs := make(map[int64][]int64)
	for !in.IsEnd() {
		if in.Len() < 12 {
			return Header{}, nil, fmt.Errorf("truncated random 2D bucket: %d bytes left", in.Len())
		}
		key := in.ReadInt64()
		n := int(in.ReadInt32())
		if n < 0 || in.Len() < 8*n {
			return Header{}, nil, fmt.Errorf("random 2D bucket %d claims %d diffs with %d bytes left", key, n, in.Len())
		}
		ds := make([]int64, n)
		for i := 0; i < n; i++ {
			ds[i] = in.ReadInt64()
		}
		diffs[key] = ds
	}
	return h, diffs, nil
}

// DecodeRandom3D reads a random 3D artifact into an operand-pair to diff
// map.
func DecodeRandom3D(data []byte) (Header, map[Pair]int64, error) {
	in := utils.NewInputBuf(data)
	h, err := readHeader(in)
	if err != nil {
		return Header{}, nil, err
	}
	if in.Len()%24 != 0 {
		return Header{}, nil, fmt.Errorf("random 3D payload is not a multiple of 24 bytes: %d", in.Len())
	}
	diffs := make(map[Pair]int64, in.Len()/24)
	for !in.IsEnd() {
		p := Pair{A: in.ReadUint64(), B: in.ReadUint64()}
		diffs[p] = in.ReadInt64()
	}
	return h, diffs, nil
}
