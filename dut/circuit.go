package dut

import "github.com/consensys/gnark/frontend"

// LOASumBits builds the gate-level form of LOAAdder over boolean
// variables, bit 0 first. It mirrors LOAAdder.Evaluate gate for gate: OR
// cells below approxBits, a ripple-carry chain above, seeded by the AND of
// the operands' top approximate bits.
func LOASumBits(api frontend.API, a, b []frontend.Variable, approxBits int) (sum []frontend.Variable, carryOut frontend.Variable) {
	if len(a) != len(b) {
		panic("operand bit slices must have equal length")
	}
	n := len(a)
	if approxBits > n {
		approxBits = n
	}
	sum = make([]frontend.Variable, n)
	for i := 0; i < approxBits; i++ {
		sum[i] = api.Or(a[i], b[i])
	}
	carry := frontend.Variable(0)
	if approxBits > 0 {
		carry = api.And(a[approxBits-1], b[approxBits-1])
	}
	for i := approxBits; i < n; i++ {
		axb := api.Xor(a[i], b[i])
		sum[i] = api.Xor(axb, carry)
		carry = api.Or(api.And(a[i], b[i]), api.And(axb, carry))
	}
	return sum, carry
}

// LOAAdderCircuit is the synthesizable counterpart of LOAAdder, used to
// check the plain model against the circuit form.
type LOAAdderCircuit struct {
	A        []frontend.Variable
	B        []frontend.Variable
	Sum      []frontend.Variable
	CarryOut frontend.Variable

	ApproxBits int
}

func (c *LOAAdderCircuit) Define(api frontend.API) error {
	sum, carryOut := LOASumBits(api, c.A, c.B, c.ApproxBits)
	for i := range sum {
		api.AssertIsEqual(c.Sum[i], sum[i])
	}
	api.AssertIsEqual(c.CarryOut, carryOut)
	return nil
}
