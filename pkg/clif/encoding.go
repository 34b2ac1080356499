package clif

import (
	"encoding/binary"
	"math"
)

// Coord is the set of coordinate primitives used by the two binary
// encodings: uint16 for the short variant, float32 for the long variant.
type Coord interface {
	~uint16 | ~float32
}

// Meta is the set of metadata primitives (ids, directions, counts).
type Meta interface {
	~uint16 | ~int32
}

// The six geometry command codes. Each encoding owns three; a code from the
// other variant's column is a mismatch even when it would parse.
const (
	cmdLayerShort uint16 = 128
	cmdPlineShort uint16 = 129
	cmdHatchShort uint16 = 131

	cmdLayerLong uint16 = 127
	cmdPlineLong uint16 = 130
	cmdHatchLong uint16 = 132
)

// encoding is the constant table for one binary variant: primitive widths,
// command codes, and the decode function for each primitive. The decode
// functions are infallible; callers bounds-check the cursor first.
type encoding[C Coord, M Meta] struct {
	coordSize int
	metaSize  int

	// fieldPad is skipped after every coordinate or metadata field in
	// aligned mode. Short fields are 2 bytes and pad back to a 4-byte
	// boundary; long fields are already 4 bytes wide and never pad.
	fieldPad int

	cmdLayer uint16
	cmdPline uint16
	cmdHatch uint16

	coord func(b []byte) C
	meta  func(b []byte) M
	count func(b []byte) int
}

var shortEncoding = encoding[uint16, uint16]{
	coordSize: 2,
	metaSize:  2,
	fieldPad:  2,
	cmdLayer:  cmdLayerShort,
	cmdPline:  cmdPlineShort,
	cmdHatch:  cmdHatchShort,
	coord:     binary.LittleEndian.Uint16,
	meta:      binary.LittleEndian.Uint16,
	count:     func(b []byte) int { return int(binary.LittleEndian.Uint16(b)) },
}

var longEncoding = encoding[float32, int32]{
	coordSize: 4,
	metaSize:  4,
	fieldPad:  0,
	cmdLayer:  cmdLayerLong,
	cmdPline:  cmdPlineLong,
	cmdHatch:  cmdHatchLong,
	coord:     func(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) },
	meta:      func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) },
	// Length fields reinterpret the metadata value as unsigned.
	count: func(b []byte) int { return int(binary.LittleEndian.Uint32(b)) },
}

func (e *encoding[C, M]) readCoord(cur *cursor, aligned bool) C {
	v := e.coord(cur.take(e.coordSize))
	if aligned {
		cur.skip(e.fieldPad)
	}
	return v
}

func (e *encoding[C, M]) readMeta(cur *cursor, aligned bool) M {
	v := e.meta(cur.take(e.metaSize))
	if aligned {
		cur.skip(e.fieldPad)
	}
	return v
}

func (e *encoding[C, M]) readCount(cur *cursor, aligned bool) int {
	v := e.count(cur.take(e.metaSize))
	if aligned {
		cur.skip(e.fieldPad)
	}
	return v
}

// cursor tracks the unread tail of the geometry region. take and skip never
// fail; the decoder bounds-checks before calling them.
type cursor struct {
	buf []byte
}

func (c *cursor) len() int { return len(c.buf) }

func (c *cursor) take(n int) []byte {
	b := c.buf[:n]
	c.buf = c.buf[n:]
	return b
}

func (c *cursor) skip(n int) { c.buf = c.buf[n:] }
