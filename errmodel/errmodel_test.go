package errmodel

import (
	"math/big"
	"testing"
)

func TestSignExtend(t *testing.T) {
	cases := []struct {
		v     int64
		width int
		want  int64
	}{
		{0, 4, 0},
		{0, 64, 0},
		{7, 4, 7},
		{8, 4, -8},
		{15, 4, -1},
		{127, 8, 127},
		{128, 8, -128},
		{255, 8, -1},
	}
	for _, c := range cases {
		got := SignExtend(big.NewInt(c.v), c.width)
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("SignExtend(%d, %d) = %s, want %d", c.v, c.width, got, c.want)
		}
	}
}

func TestSignExtendWide(t *testing.T) {
	// bit 127 set: value - 2^128
	v := new(big.Int).Lsh(big.NewInt(1), 127)
	want := new(big.Int).Neg(v)
	if got := SignExtend(v, 128); got.Cmp(want) != 0 {
		t.Fatalf("SignExtend(2^127, 128) = %s, want %s", got, want)
	}
}

func TestAdderDiffUnsigned(t *testing.T) {
	c := Computer{}
	ideal, diff := c.AdderDiff(4, 9, 8, 1)
	if ideal.Int64() != 1 { // (9+8) mod 16
		t.Fatalf("ideal = %s, want 1", ideal)
	}
	if diff.Sign() != 0 {
		t.Fatalf("diff = %s, want 0", diff)
	}

	_, diff = c.AdderDiff(4, 3, 4, 6)
	if diff.Int64() != -1 {
		t.Fatalf("diff = %s, want -1", diff)
	}
}

func TestAdderDiffSigned(t *testing.T) {
	c := Computer{Signed: true}
	// ideal (7+7) mod 16 = 14 -> -2 signed; actual 15 -> -1 signed
	ideal, diff := c.AdderDiff(4, 7, 7, 15)
	if ideal.Int64() != -2 {
		t.Fatalf("ideal = %s, want -2", ideal)
	}
	if diff.Int64() != 1 {
		t.Fatalf("diff = %s, want 1", diff)
	}
}

func TestAdderDiffFullWordWidth(t *testing.T) {
	c := Computer{}
	a, b := ^uint64(0), uint64(2)
	ideal, diff := c.AdderDiff(64, a, b, 1) // wraps to 1
	if ideal.Int64() != 1 || diff.Sign() != 0 {
		t.Fatalf("ideal = %s, diff = %s", ideal, diff)
	}
}

func TestMulDiffUnsigned(t *testing.T) {
	c := Computer{}
	ideal, diff := c.MulDiff(4, 4, 13, 11, big.NewInt(143))
	if ideal.Int64() != 143 || diff.Sign() != 0 {
		t.Fatalf("ideal = %s, diff = %s", ideal, diff)
	}
}

func TestMulDiffSigned(t *testing.T) {
	c := Computer{Signed: true}
	// 13 -> -3, 11 -> -5 in 4-bit two's complement; ideal = 15
	// actual raw 15 stays 15 after 8-bit sign extension
	ideal, diff := c.MulDiff(4, 4, 13, 11, big.NewInt(15))
	if ideal.Int64() != 15 {
		t.Fatalf("ideal = %s, want 15", ideal)
	}
	if diff.Sign() != 0 {
		t.Fatalf("diff = %s, want 0", diff)
	}

	// ideal -3*5 = -15; actual raw 241 -> -15 after sign extension
	ideal, diff = c.MulDiff(4, 4, 13, 5, big.NewInt(241))
	if ideal.Int64() != -15 || diff.Sign() != 0 {
		t.Fatalf("ideal = %s, diff = %s", ideal, diff)
	}
}

func TestMulDiffWide(t *testing.T) {
	// 64x64 multiplier: ideal result needs 128 bits and must not truncate
	c := Computer{}
	a := ^uint64(0)
	want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(a))
	ideal, diff := c.MulDiff(64, 64, a, a, want)
	if ideal.Cmp(want) != 0 || diff.Sign() != 0 {
		t.Fatalf("ideal = %s, diff = %s", ideal, diff)
	}
	if ideal.BitLen() != 128 {
		t.Fatalf("ideal BitLen = %d, want 128", ideal.BitLen())
	}
}
