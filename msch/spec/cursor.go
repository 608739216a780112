// Package spec implements the msch wire format primitives: the byte cursor,
// coordinate packing, the tagged config codec and payload compression.
package spec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var ErrOutOfBounds = errors.New("msch: read out of bounds")
var ErrValueTooLarge = errors.New("msch: value does not fit wire format")

// Cursor is a position-tracked big-endian view over a byte buffer.
// Reads record the first failure and return zero values afterwards,
// so callers can check Err once after a batch of reads.
// Writes append to the buffer and cannot run out of space.
type Cursor struct {
	data []byte
	off  int
	err  error
}

// NewCursor creates a cursor over data. Pass nil to start an empty
// write buffer.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Err returns the first error recorded by a read or write.
func (c *Cursor) Err() error { return c.err }

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.off }

// Data returns the whole underlying buffer.
func (c *Cursor) Data() []byte { return c.data }

func (c *Cursor) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || c.off+n > len(c.data) {
		c.setErr(fmt.Errorf("%w: %d bytes at offset %d, length %d", ErrOutOfBounds, n, c.off, len(c.data)))
		return nil
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b
}

func (c *Cursor) U8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *Cursor) U16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (c *Cursor) I16() int16 { return int16(c.U16()) }

func (c *Cursor) U32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (c *Cursor) I32() int32 { return int32(c.U32()) }

func (c *Cursor) I64() int64 {
	b := c.take(8)
	if b == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}

func (c *Cursor) F32() float32 { return math.Float32frombits(c.U32()) }

func (c *Cursor) F64() float64 { return math.Float64frombits(uint64(c.I64())) }

func (c *Cursor) Bool() bool { return c.U8() != 0 }

// Bytes reads n raw bytes. The returned slice is a copy.
func (c *Cursor) Bytes(n int) []byte {
	b := c.take(n)
	if b == nil {
		return nil
	}
	return bytes.Clone(b)
}

// UTF reads a length-prefixed UTF-8 string (u16 byte length, then the
// encoded text).
func (c *Cursor) UTF() string {
	return string(c.take(int(c.U16())))
}

func (c *Cursor) WriteU8(v uint8) { c.data = append(c.data, v) }

func (c *Cursor) WriteU16(v uint16) { c.data = binary.BigEndian.AppendUint16(c.data, v) }

func (c *Cursor) WriteI16(v int16) { c.WriteU16(uint16(v)) }

func (c *Cursor) WriteU32(v uint32) { c.data = binary.BigEndian.AppendUint32(c.data, v) }

func (c *Cursor) WriteI32(v int32) { c.WriteU32(uint32(v)) }

func (c *Cursor) WriteI64(v int64) { c.data = binary.BigEndian.AppendUint64(c.data, uint64(v)) }

func (c *Cursor) WriteF32(v float32) { c.WriteU32(math.Float32bits(v)) }

func (c *Cursor) WriteF64(v float64) { c.WriteI64(int64(math.Float64bits(v))) }

func (c *Cursor) WriteBool(v bool) {
	if v {
		c.WriteU8(1)
	} else {
		c.WriteU8(0)
	}
}

func (c *Cursor) WriteBytes(b []byte) { c.data = append(c.data, b...) }

// WriteUTF writes a length-prefixed UTF-8 string. Strings longer than
// 65535 bytes do not fit the prefix and record ErrValueTooLarge.
func (c *Cursor) WriteUTF(s string) {
	if len(s) > math.MaxUint16 {
		c.setErr(fmt.Errorf("%w: string of %d bytes", ErrValueTooLarge, len(s)))
		return
	}
	c.WriteU16(uint16(len(s)))
	c.data = append(c.data, s...)
}
