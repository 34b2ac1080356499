package clif

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFile reports input too short to contain a CLI header.
	ErrEmptyFile = errors.New("clif: file too short to contain a CLI header")

	// ErrNoHeader reports that the $$HEADEREND terminator was never matched.
	ErrNoHeader = errors.New("clif: no header found")

	// ErrHeaderNotUTF8 reports a header region that is not valid UTF-8.
	ErrHeaderNotUTF8 = errors.New("clif: header is not valid UTF-8")

	// ErrInvalidHeaderValue reports a numeric directive that failed to parse.
	ErrInvalidHeaderValue = errors.New("clif: invalid numeric header value")

	// ErrUnsupportedFormat reports a header declaring an ASCII geometry
	// section, which this package does not decode.
	ErrUnsupportedFormat = errors.New("clif: ASCII geometry sections are not supported")

	// ErrElementOutsideLayer reports a loop or hatch command appearing
	// before the first layer command.
	ErrElementOutsideLayer = errors.New("clif: geometry element outside a layer")

	// ErrUnexpectedEOF reports a geometry record that claims more data than
	// the buffer holds, or a dangling partial command at the end of it.
	ErrUnexpectedEOF = errors.New("clif: unexpected end of geometry data")

	// ErrEncodingMismatch reports a command code that belongs to the other
	// binary encoding than the one the caller selected.
	ErrEncodingMismatch = errors.New("clif: command code belongs to the other encoding")
)

// IncompleteHeaderError reports a missing required directive. Missing is
// "format", "units" or "version"; the three are checked in that order and
// only the first absent one is reported.
type IncompleteHeaderError struct {
	Missing string
}

func (e *IncompleteHeaderError) Error() string {
	return "clif: incomplete header: missing " + e.Missing
}

// CommandError reports a 16-bit value that is not a geometry command in
// either encoding. The file is most likely corrupt.
type CommandError struct {
	Code uint16
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("clif: invalid geometry command 0x%04x", e.Code)
}
