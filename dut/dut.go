// Package dut defines the device-under-test contract the engine
// characterizes against, a registry of named circuit builders, and
// reference models of exact and approximate arithmetic units.
package dut

import "math/big"

// Adder is a synchronous arithmetic unit with one request in flight at a
// time. Evaluate must be deterministic: repeated calls with the same
// inputs return the same output. The sum has the operand width; carry-out
// is an independent bit that never enters the error metric.
type Adder interface {
	Width() int
	Evaluate(a, b uint64, carryIn bool) (sum uint64, carryOut bool, err error)
}

// Multiplier is a synchronous arithmetic unit whose result width is the
// sum of the operand widths, up to 128 bits. Evaluate must be
// deterministic for fixed inputs.
type Multiplier interface {
	WidthA() int
	WidthB() int
	Evaluate(a, b uint64) (*big.Int, error)
}
