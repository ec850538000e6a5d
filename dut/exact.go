package dut

import (
	"math/big"
	"math/bits"

	"github.com/approxware/errchar/errmodel"
)

// ExactAdder is the golden adder model: a W-bit modular sum with carry-in
// and carry-out. The modular sum bit pattern is the same for signed and
// unsigned operands, so characterizing it yields all-zero diffs in either
// mode.
type ExactAdder struct {
	W int
}

func (g ExactAdder) Width() int { return g.W }

func (g ExactAdder) Evaluate(a, b uint64, carryIn bool) (uint64, bool, error) {
	var cin uint64
	if carryIn {
		cin = 1
	}
	if g.W == 64 {
		sum, cout := bits.Add64(a, b, cin)
		return sum, cout == 1, nil
	}
	mask := uint64(1)<<uint(g.W) - 1
	raw := (a & mask) + (b & mask) + cin
	return raw & mask, raw>>uint(g.W) == 1, nil
}

// ExactMultiplier is the golden multiplier model. Unlike addition, the
// full product bit pattern depends on operand interpretation, so Signed
// selects between the unsigned product and the two's-complement product of
// sign-extended operands.
type ExactMultiplier struct {
	WA, WB int
	Signed bool
}

func (g ExactMultiplier) WidthA() int { return g.WA }
func (g ExactMultiplier) WidthB() int { return g.WB }

func (g ExactMultiplier) Evaluate(a, b uint64) (*big.Int, error) {
	va := new(big.Int).SetUint64(a)
	vb := new(big.Int).SetUint64(b)
	if g.Signed {
		va = errmodel.SignExtend(va, g.WA)
		vb = errmodel.SignExtend(vb, g.WB)
	}
	p := new(big.Int).Mul(va, vb)
	// reduce to the raw result-width bit pattern
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(g.WA+g.WB)), big.NewInt(1))
	return p.And(p, mask), nil
}
