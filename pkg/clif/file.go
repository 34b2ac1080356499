package clif

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// File is a CLI file mapped (or read) into memory. Models decoded from it
// alias Data, so they must be dropped before Close.
type File struct {
	Data    []byte
	mmapped bool
}

// Open maps path read-only. If mmap is unavailable the file is read into
// memory instead; either way decoding stays zero-copy against Data.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := stat.Size()
	if size64 > int64(int(^uint(0)>>1)) {
		// cannot index this file safely as []byte on this architecture.
		return nil, fmt.Errorf("clif: %s: file too large to map", path)
	}
	size := int(size64)

	if size > 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
		if err == nil {
			return &File{Data: data, mmapped: true}, nil
		}
	}

	// Fallback path that does not require mmap support.
	data, err := readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// DecodeShort decodes the file against the short encoding.
func (f *File) DecodeShort() (*ShortModel, error) { return DecodeShort(f.Data) }

// DecodeLong decodes the file against the long encoding.
func (f *File) DecodeLong() (*LongModel, error) { return DecodeLong(f.Data) }

// Close releases the mapping, if any. Geometry views handed out by models
// decoded from this file become invalid.
func (f *File) Close() error {
	if f == nil || f.Data == nil {
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.Data)
	}
	f.Data = nil
	f.mmapped = false
	return err
}
