package clif

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// headerEnd terminates the textual header region. The terminator itself is
// part of the header text.
const headerEnd = "$$HEADEREND"

// Header holds the machine-readable metadata parsed from the textual header
// region of a CLI file.
type Header struct {
	// Binary is true when the geometry section is binary encoded. ASCII
	// geometry sections are rejected by the decoder.
	Binary bool

	// Units is how many millimetres one coordinate unit represents.
	// Coordinates are not converted; multiply when real units are needed.
	Units float64

	// Version is the declared format version. The on-disk integer encodes
	// version x 100.
	Version float32

	// Aligned reports whether 2-byte fields are padded to 4-byte word
	// boundaries in the geometry section.
	Aligned bool

	// Layers is the layer count declared in the header, if any. It is
	// advisory only and never checked against the decoded layer count.
	Layers *int
}

// ParseHeader scans raw for the header terminator and parses the directives
// in front of it. It returns the offset of the first byte after the
// terminator together with the parsed header.
//
// The terminator search is a naive forward scan that resets its partial-match
// index on the first mismatching byte without re-examining that byte. A
// partial occurrence of the marker butted up against a real one can therefore
// hide it ("$$$HEADEREND" is not found). This matches how existing readers
// behave on disk, so it is kept as-is.
func ParseHeader(raw []byte) (int, Header, error) {
	if len(raw) <= len(headerEnd) {
		return 0, Header{}, ErrEmptyFile
	}

	searchIndex := 0
	patternIndex := 0
	for searchIndex < len(raw) && patternIndex < len(headerEnd) {
		if raw[searchIndex] == headerEnd[patternIndex] {
			patternIndex++
		} else {
			patternIndex = 0
		}
		searchIndex++
	}
	if patternIndex < len(headerEnd) {
		return 0, Header{}, ErrNoHeader
	}

	if !utf8.Valid(raw[:searchIndex]) {
		return 0, Header{}, ErrHeaderNotUTF8
	}
	text := string(raw[:searchIndex])

	var (
		binary     bool
		hasFormat  bool
		units      string
		hasUnits   bool
		version    string
		hasVersion bool
		layers     string
		hasLayers  bool
		aligned    bool
	)

	for line := range strings.Lines(text) {
		cleaned := strings.TrimSpace(line)
		if strings.HasPrefix(cleaned, "//") {
			continue
		}
		// An inline comment truncates the rest of the line.
		if i := strings.Index(cleaned, "//"); i >= 0 {
			cleaned = strings.TrimSpace(cleaned[:i])
		}
		directive, value := splitDirective(cleaned)
		switch directive {
		case "$$BINARY":
			binary, hasFormat = true, true
		case "$$ASCII":
			binary, hasFormat = false, true
		case "$$UNITS/":
			units, hasUnits = value, true
		case "$$VERSION/":
			version, hasVersion = value, true
		case "$$LAYERS/":
			layers, hasLayers = value, true
		case "$$ALIGN":
			aligned = true
		}
		// Anything else is an unrecognised directive; skip it. Repeated
		// directives overwrite earlier ones.
	}

	if !hasFormat {
		return 0, Header{}, &IncompleteHeaderError{Missing: "format"}
	}
	if !hasUnits {
		return 0, Header{}, &IncompleteHeaderError{Missing: "units"}
	}
	if !hasVersion {
		return 0, Header{}, &IncompleteHeaderError{Missing: "version"}
	}

	hdr := Header{Binary: binary, Aligned: aligned}

	u, err := strconv.ParseFloat(units, 64)
	if err != nil {
		return 0, Header{}, ErrInvalidHeaderValue
	}
	hdr.Units = u

	v, err := strconv.ParseFloat(version, 32)
	if err != nil {
		return 0, Header{}, ErrInvalidHeaderValue
	}
	hdr.Version = float32(v) / 100

	if hasLayers {
		n, err := strconv.ParseUint(layers, 10, strconv.IntSize-1)
		if err != nil {
			return 0, Header{}, ErrInvalidHeaderValue
		}
		count := int(n)
		hdr.Layers = &count
	}

	return searchIndex, hdr, nil
}

// splitDirective cuts a cleaned header line at the first slash, keeping the
// slash on the directive side so "$$UNITS/" and value-less "$$BINARY" fall
// out of the same split.
func splitDirective(line string) (directive, value string) {
	i := strings.IndexByte(line, '/')
	if i < 0 {
		return line, ""
	}
	return line[:i+1], line[i+1:]
}
