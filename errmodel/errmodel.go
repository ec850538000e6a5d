// Package errmodel derives ideal arithmetic results and signed error
// distances for characterized adders and multipliers. All values are kept
// in big.Int so that wide multiplier results (up to 128 bits) never
// truncate.
package errmodel

import "math/big"

// SignExtend reinterprets the low width bits of v as a two's-complement
// signed value: if bit width-1 is set, 2^width is subtracted.
func SignExtend(v *big.Int, width int) *big.Int {
	if v.Bit(width-1) == 1 {
		return new(big.Int).Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(width)))
	}
	return new(big.Int).Set(v)
}

// Computer turns operand pairs and raw device results into ideal results
// and error distances. Signed selects two's-complement interpretation of
// operands and results.
type Computer struct {
	Signed bool
}

// AdderDiff returns the ideal modular sum (a+b) mod 2^width and the error
// distance actual-ideal for an adder of the given width. Carry-in is held
// low during characterization and carry-out never enters the comparison,
// so both are absent here. In signed mode ideal and actual are
// sign-extended to the result width before differencing.
func (c Computer) AdderDiff(width int, a, b, actual uint64) (ideal, diff *big.Int) {
	mask := ^uint64(0)
	if width < 64 {
		mask = uint64(1)<<uint(width) - 1
	}
	iv := new(big.Int).SetUint64((a + b) & mask)
	av := new(big.Int).SetUint64(actual & mask)
	if c.Signed {
		iv = SignExtend(iv, width)
		av = SignExtend(av, width)
	}
	return iv, new(big.Int).Sub(av, iv)
}

// MulDiff returns the ideal product and the error distance actual-ideal
// for a multiplier with operand widths wa and wb. The ideal result has
// width wa+wb; in signed mode the operands are sign-extended before
// multiplying and the actual result is sign-extended to wa+wb bits.
func (c Computer) MulDiff(wa, wb int, a, b uint64, actual *big.Int) (ideal, diff *big.Int) {
	va := new(big.Int).SetUint64(a)
	vb := new(big.Int).SetUint64(b)
	if c.Signed {
		va = SignExtend(va, wa)
		vb = SignExtend(vb, wb)
	}
	iv := new(big.Int).Mul(va, vb)
	av := new(big.Int).Set(actual)
	if c.Signed {
		av = SignExtend(av, wa+wb)
	}
	return iv, new(big.Int).Sub(av, iv)
}
