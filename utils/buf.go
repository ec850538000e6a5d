package utils

import (
	"encoding/binary"
	"math"
)

// OutputBuf accumulates fixed-width big-endian values in declaration order.
// It is the only encoder used for the errors.bin artifact.
type OutputBuf struct {
	buf []byte
}

func (o *OutputBuf) AppendInt32(x int32) {
	o.buf = binary.BigEndian.AppendUint32(o.buf, uint32(x))
}

func (o *OutputBuf) AppendInt64(x int64) {
	o.buf = binary.BigEndian.AppendUint64(o.buf, uint64(x))
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.BigEndian.AppendUint64(o.buf, x)
}

func (o *OutputBuf) AppendFloat64(x float64) {
	o.buf = binary.BigEndian.AppendUint64(o.buf, math.Float64bits(x))
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}

type InputBuf struct {
	buf []byte
}

func NewInputBuf(buf []byte) *InputBuf {
	return &InputBuf{buf: buf}
}

func (i *InputBuf) ReadInt32() int32 {
	x := binary.BigEndian.Uint32(i.buf[:4])
	i.buf = i.buf[4:]
	return int32(x)
}

func (i *InputBuf) ReadInt64() int64 {
	x := binary.BigEndian.Uint64(i.buf[:8])
	i.buf = i.buf[8:]
	return int64(x)
}

func (i *InputBuf) ReadUint64() uint64 {
	x := binary.BigEndian.Uint64(i.buf[:8])
	i.buf = i.buf[8:]
	return x
}

func (i *InputBuf) ReadFloat64() float64 {
	x := binary.BigEndian.Uint64(i.buf[:8])
	i.buf = i.buf[8:]
	return math.Float64frombits(x)
}

func (i *InputBuf) Len() int {
	return len(i.buf)
}

func (i *InputBuf) IsEnd() bool {
	return len(i.buf) == 0
}
