package utils

import (
	"bytes"
	"math"
	"testing"
)

func TestAppendBigEndian(t *testing.T) {
	o := &OutputBuf{}
	o.AppendInt32(1)
	o.AppendInt32(-1)
	o.AppendInt64(-2)
	o.AppendUint64(0x0102030405060708)
	want := []byte{
		0x00, 0x00, 0x00, 0x01,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}
	if !bytes.Equal(o.Bytes(), want) {
		t.Fatalf("got % x, want % x", o.Bytes(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	o := &OutputBuf{}
	o.AppendInt32(-17)
	o.AppendInt64(1 << 40)
	o.AppendUint64(math.MaxUint64)
	o.AppendFloat64(-2.5)

	in := NewInputBuf(o.Bytes())
	if got := in.ReadInt32(); got != -17 {
		t.Errorf("ReadInt32 = %d", got)
	}
	if got := in.ReadInt64(); got != 1<<40 {
		t.Errorf("ReadInt64 = %d", got)
	}
	if got := in.ReadUint64(); got != math.MaxUint64 {
		t.Errorf("ReadUint64 = %d", got)
	}
	if got := in.ReadFloat64(); got != -2.5 {
		t.Errorf("ReadFloat64 = %v", got)
	}
	if !in.IsEnd() {
		t.Errorf("expected end of buffer, %d bytes left", in.Len())
	}
}
