package sampling

import "testing"

func TestExhaustiveOrder(t *testing.T) {
	seq := NewExhaustive(2)
	if seq.Count() != 16 {
		t.Fatalf("Count = %d, want 16", seq.Count())
	}
	want := [][2]uint64{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, 0}, {2, 1}, {2, 2}, {2, 3},
		{3, 0}, {3, 1}, {3, 2}, {3, 3},
	}
	for i, w := range want {
		a, b, ok := seq.Next()
		if !ok {
			t.Fatalf("sequence drained at %d", i)
		}
		if a != w[0] || b != w[1] {
			t.Fatalf("pair %d = (%d, %d), want (%d, %d)", i, a, b, w[0], w[1])
		}
	}
	if _, _, ok := seq.Next(); ok {
		t.Fatal("sequence yields pairs beyond Count")
	}
}

func TestExhaustiveCountLaw(t *testing.T) {
	for w := 1; w <= MaxExhaustiveWidth; w++ {
		if got, want := NewExhaustive(w).Count(), uint64(1)<<uint(2*w); got != want {
			t.Errorf("width %d: Count = %d, want %d", w, got, want)
		}
	}
}

func TestNTests(t *testing.T) {
	// 2^round(1.25*sqrt(w)+1)
	cases := map[int]int{16: 64, 64: 2048}
	for w, want := range cases {
		if got := NTests(w); got != want {
			t.Errorf("NTests(%d) = %d, want %d", w, got, want)
		}
	}
}

func TestRandomSampleCount(t *testing.T) {
	seq := NewRandom(16)
	if got, want := seq.Count(), uint64(64*64); got != want {
		t.Fatalf("Count = %d, want %d", got, want)
	}
	n := uint64(0)
	for {
		a, b, ok := seq.Next()
		if !ok {
			break
		}
		if a >= 1<<16 || b >= 1<<16 {
			t.Fatalf("pair (%d, %d) outside the 16-bit operand domain", a, b)
		}
		n++
	}
	if n != seq.Count() {
		t.Fatalf("yielded %d pairs, want %d", n, seq.Count())
	}
}

func TestRandomDeterminism(t *testing.T) {
	s1, s2 := NewRandom(16), NewRandom(16)
	for i := uint64(0); i < s1.Count(); i++ {
		a1, b1, _ := s1.Next()
		a2, b2, _ := s2.Next()
		if a1 != a2 || b1 != b2 {
			t.Fatalf("sequences diverge at %d: (%d, %d) vs (%d, %d)", i, a1, b1, a2, b2)
		}
	}
}

func TestRandomDegradesToExhaustive(t *testing.T) {
	seq := NewRandom(4)
	if got, want := seq.Count(), uint64(256); got != want {
		t.Fatalf("Count = %d, want %d", got, want)
	}
	a, b, ok := seq.Next()
	if !ok || a != 0 || b != 0 {
		t.Fatalf("first pair = (%d, %d), want (0, 0)", a, b)
	}
}

func TestWidthBoundsPanic(t *testing.T) {
	assertPanics := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	assertPanics("NewExhaustive(11)", func() { NewExhaustive(11) })
	assertPanics("NewRandom(65)", func() { NewRandom(65) })
	assertPanics("NewExhaustive(0)", func() { NewExhaustive(0) })
}
