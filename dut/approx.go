package dut

import "math/big"

// LOAAdder is a lower-part OR adder: the low ApproxBits sum bits are the
// bitwise OR of the operands, the upper part is an exact adder whose
// carry-in is the AND of the operands' top approximate bits.
type LOAAdder struct {
	W          int
	ApproxBits int
}

func (g LOAAdder) Width() int { return g.W }

func (g LOAAdder) Evaluate(a, b uint64, carryIn bool) (uint64, bool, error) {
	k := g.ApproxBits
	if k <= 0 {
		return ExactAdder{W: g.W}.Evaluate(a, b, carryIn)
	}
	if k > g.W {
		k = g.W
	}
	mask := ^uint64(0)
	if g.W < 64 {
		mask = uint64(1)<<uint(g.W) - 1
	}
	a, b = a&mask, b&mask
	lowMask := uint64(1)<<uint(k) - 1
	low := (a | b) & lowMask
	carry := (a >> uint(k-1)) & (b >> uint(k-1)) & 1
	if k == g.W {
		return low, carry == 1, nil
	}
	upper := (a >> uint(k)) + (b >> uint(k)) + carry
	upperMask := uint64(1)<<uint(g.W-k) - 1
	sum := (upper&upperMask)<<uint(k) | low
	return sum, upper>>uint(g.W-k) == 1, nil
}

// TruncatedAdder drops the low Cut bits entirely: they read as zero and
// propagate no carry into the exact upper part.
type TruncatedAdder struct {
	W   int
	Cut int
}

func (g TruncatedAdder) Width() int { return g.W }

func (g TruncatedAdder) Evaluate(a, b uint64, carryIn bool) (uint64, bool, error) {
	k := g.Cut
	if k <= 0 {
		return ExactAdder{W: g.W}.Evaluate(a, b, carryIn)
	}
	if k > g.W {
		k = g.W
	}
	if k == g.W {
		return 0, false, nil
	}
	upperMask := uint64(1)<<uint(g.W-k) - 1
	upper := (a>>uint(k))&upperMask + (b>>uint(k))&upperMask
	return (upper & upperMask) << uint(k), upper>>uint(g.W-k) == 1, nil
}

// TruncatedMultiplier zeroes the low Cut bits of both operands before an
// exact multiplication, mimicking dropped partial-product columns.
type TruncatedMultiplier struct {
	W      int
	Cut    int
	Signed bool
}

func (g TruncatedMultiplier) WidthA() int { return g.W }
func (g TruncatedMultiplier) WidthB() int { return g.W }

func (g TruncatedMultiplier) Evaluate(a, b uint64) (*big.Int, error) {
	if g.Cut > 0 {
		cut := g.Cut
		if cut > g.W {
			cut = g.W
		}
		drop := ^(uint64(1)<<uint(cut) - 1)
		a &= drop
		b &= drop
	}
	return ExactMultiplier{WA: g.W, WB: g.W, Signed: g.Signed}.Evaluate(a, b)
}
