// Package clif decodes the Common Layer Interface (.cli) binary file format
// into an in-memory, read-only model.
//
// A CLI file is a free-form text header terminated by $$HEADEREND followed
// by a geometry section of layer, polyline and hatch records. The format
// defines two incompatible binary encodings: short (16-bit coordinates and
// metadata) and long (float32 coordinates, int32 metadata), each with its
// own command codes. The caller selects the encoding up front with
// DecodeShort or DecodeLong; a file written in the other encoding fails with
// ErrEncodingMismatch on its first command.
//
// Decoding examines the data in place. Bulk geometry is exposed as views
// into the caller's buffer, never copied, so the buffer must outlive the
// model. Coordinates are left in file units; multiply by Header.Units when
// millimetres are needed. ASCII geometry sections are not supported.
package clif

import (
	"encoding/binary"
	"unsafe"
)

// DecodeShort decodes buf as a short-encoded CLI file. On any error no
// model is returned; decoding is strict and all-or-nothing.
func DecodeShort(buf []byte) (*ShortModel, error) {
	return decode(buf, &shortEncoding)
}

// DecodeLong decodes buf as a long-encoded CLI file. On any error no model
// is returned; decoding is strict and all-or-nothing.
func DecodeLong(buf []byte) (*LongModel, error) {
	return decode(buf, &longEncoding)
}

func decode[C Coord, M Meta](raw []byte, enc *encoding[C, M]) (*Model[C, M], error) {
	gstart, hdr, err := ParseHeader(raw)
	if err != nil {
		return nil, err
	}
	if !hdr.Binary {
		return nil, ErrUnsupportedFormat
	}
	if hdr.Aligned {
		// The geometry section starts at the next 4-byte boundary at or
		// after the terminator.
		gstart = 4*((gstart-1)/4) + 4
		if gstart > len(raw) {
			return nil, ErrUnexpectedEOF
		}
	}

	m := &Model[C, M]{header: hdr}
	cur := &cursor{buf: raw[gstart:]}
	current := -1
	for {
		more, err := decodeElement(m, enc, cur, &current)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	return m, nil
}

// decodeElement consumes one geometry command and its payload. It reports
// whether any bytes remain after the element.
func decodeElement[C Coord, M Meta](m *Model[C, M], enc *encoding[C, M], cur *cursor, current *int) (bool, error) {
	aligned := m.header.Aligned

	// Command codes are 2 bytes and, in aligned mode, padded to 4 for both
	// encodings.
	cmdSize := 2
	pad := 0
	if aligned {
		cmdSize += 2
		pad = enc.fieldPad
	}
	if cur.len() < cmdSize {
		return false, ErrUnexpectedEOF
	}
	cmd := binary.LittleEndian.Uint16(cur.take(2))
	if aligned {
		cur.skip(2)
	}

	switch cmd {
	case cmdLayerLong, cmdLayerShort:
		if cmd != enc.cmdLayer {
			return false, ErrEncodingMismatch
		}
		if cur.len() < enc.coordSize+pad {
			return false, ErrUnexpectedEOF
		}
		m.layers = append(m.layers, Layer[C, M]{height: enc.readCoord(cur, aligned)})
		*current = len(m.layers) - 1

	case cmdPlineLong, cmdPlineShort:
		if cmd != enc.cmdPline {
			return false, ErrEncodingMismatch
		}
		if cur.len() < 3*(enc.metaSize+pad) {
			return false, ErrUnexpectedEOF
		}
		id := enc.readMeta(cur, aligned)
		dir := enc.readMeta(cur, aligned)
		n := enc.readCount(cur, aligned) * 2
		// Point arrays are tightly packed x,y pairs; $$ALIGN never pads
		// bulk coordinate data.
		if n < 0 || cur.len() < enc.coordSize*n {
			return false, ErrUnexpectedEOF
		}
		points := coordView[C](cur.take(enc.coordSize*n), n)
		if *current < 0 {
			return false, ErrElementOutsideLayer
		}
		layer := &m.layers[*current]
		layer.loops = append(layer.loops, Loop[C, M]{id: id, dir: dir, points: points})

	case cmdHatchLong, cmdHatchShort:
		if cmd != enc.cmdHatch {
			return false, ErrEncodingMismatch
		}
		if cur.len() < 2*(enc.metaSize+pad) {
			return false, ErrUnexpectedEOF
		}
		id := enc.readMeta(cur, aligned)
		n := enc.readCount(cur, aligned) * 4
		if n < 0 || cur.len() < enc.coordSize*n {
			return false, ErrUnexpectedEOF
		}
		points := coordView[C](cur.take(enc.coordSize*n), n)
		if *current < 0 {
			return false, ErrElementOutsideLayer
		}
		layer := &m.layers[*current]
		layer.hatches = append(layer.hatches, Hatches[C, M]{id: id, points: points})

	default:
		return false, &CommandError{Code: cmd}
	}

	return cur.len() > 0, nil
}

// coordView reinterprets b as n coordinate primitives without copying. The
// file is little-endian and so are all platforms Go currently targets in
// practice; the view aliases b and shares its lifetime. Misaligned float32
// loads are fine on supported architectures.
func coordView[C Coord](b []byte, n int) []C {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*C)(unsafe.Pointer(&b[0])), n)
}
