package simulator

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script simulator stub requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "sim.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecAdder(t *testing.T) {
	bin := writeScript(t, `while read a b c; do
  r=$(( ( 0x$a + 0x$b + c ) ))
  printf '%x %d\n' $(( r & 15 )) $(( ( r >> 4 ) & 1 ))
done
`)
	unit, err := NewExecAdder(4, bin)
	if err != nil {
		t.Fatal(err)
	}
	defer unit.Close()

	if unit.Width() != 4 {
		t.Fatalf("Width = %d, want 4", unit.Width())
	}
	for _, c := range []struct {
		a, b     uint64
		cin      bool
		sum      uint64
		carryOut bool
	}{
		{9, 8, false, 1, true},
		{3, 4, false, 7, false},
		{7, 8, true, 0, true},
	} {
		sum, cout, err := unit.Evaluate(c.a, c.b, c.cin)
		if err != nil {
			t.Fatal(err)
		}
		if sum != c.sum || cout != c.carryOut {
			t.Fatalf("%d+%d = (%d, %v), want (%d, %v)", c.a, c.b, sum, cout, c.sum, c.carryOut)
		}
	}
}

func TestExecMultiplier(t *testing.T) {
	bin := writeScript(t, `while read a b; do
  printf '%x\n' $(( 0x$a * 0x$b ))
done
`)
	unit, err := NewExecMultiplier(4, 4, bin)
	if err != nil {
		t.Fatal(err)
	}
	defer unit.Close()

	p, err := unit.Evaluate(13, 11)
	if err != nil {
		t.Fatal(err)
	}
	if p.Int64() != 143 {
		t.Fatalf("13*11 = %s, want 143", p)
	}
}

func TestExecAdderMalformedResponse(t *testing.T) {
	bin := writeScript(t, `while read a b c; do
  echo nonsense
done
`)
	unit, err := NewExecAdder(4, bin)
	if err != nil {
		t.Fatal(err)
	}
	defer unit.Close()

	if _, _, err := unit.Evaluate(1, 2, false); err == nil {
		t.Fatal("malformed response accepted")
	}
}

func TestExecAdderDeadProcess(t *testing.T) {
	bin := writeScript(t, "exit 0\n")
	unit, err := NewExecAdder(4, bin)
	if err != nil {
		t.Fatal(err)
	}
	defer unit.Close()

	if _, _, err := unit.Evaluate(1, 2, false); err == nil {
		t.Fatal("no error from a simulator that closed its output")
	}
}
