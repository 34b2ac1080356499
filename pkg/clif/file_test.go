package clif

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenAndDecode(t *testing.T) {
	t.Parallel()

	raw := []byte(longHeader)
	raw = appendU16(raw, 127)
	raw = appendF32(raw, 1.25)
	raw = appendU16(raw, 130)
	raw = appendU32(raw, 3, 1, 2)
	raw = appendF32(raw, 0, 0, 4, 4)

	path := filepath.Join(t.TempDir(), "part.cli")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	if len(f.Data) != len(raw) {
		t.Fatalf("data length: got %d want %d", len(f.Data), len(raw))
	}

	m, err := f.DecodeLong()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	layers := m.Layers()
	if len(layers) != 1 || layers[0].Height() != 1.25 {
		t.Fatalf("unexpected layers: %+v", layers)
	}
	loops := layers[0].Loops()
	if len(loops) != 1 || loops[0].ID() != 3 || loops[0].Dir() != 1 {
		t.Fatalf("unexpected loops: %+v", loops)
	}
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "absent.cli"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestFileClose(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tiny.cli")
	raw := []byte(shortHeader)
	raw = appendU16(raw, 128, 1)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if f.Data != nil {
		t.Fatalf("data should be released after close")
	}
	// Closing twice is harmless.
	if err := f.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
