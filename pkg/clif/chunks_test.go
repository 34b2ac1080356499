package clif

import "testing"

func TestChunksWindows(t *testing.T) {
	t.Parallel()

	src := []int{0, 1, 2, 3, 4, 5, 6}
	c := NewChunks(src, 2)

	if c.Len() != 3 {
		t.Fatalf("len: got %d want 3", c.Len())
	}
	for i := 0; i < 3; i++ {
		w, ok := c.Next()
		if !ok {
			t.Fatalf("window %d missing", i)
		}
		if w[0] != 2*i || w[1] != 2*i+1 {
			t.Fatalf("window %d: got %v", i, w)
		}
	}
	if _, ok := c.Next(); ok {
		t.Fatalf("expected exhaustion after 3 windows")
	}
	rem := c.Remainder()
	if len(rem) != 1 || rem[0] != 6 {
		t.Fatalf("remainder: got %v want [6]", rem)
	}
}

// Windows are sub-slices of the source, not copies.
func TestChunksWindowsAliasSource(t *testing.T) {
	t.Parallel()

	src := []uint16{1, 2, 3, 4}
	c := NewChunks(src, 2)
	w, _ := c.Next()
	src[0] = 99
	if w[0] != 99 {
		t.Fatalf("expected window to alias source, got %d", w[0])
	}
}

func TestChunksIndependentProducers(t *testing.T) {
	t.Parallel()

	src := []int{1, 2, 3, 4}
	a := NewChunks(src, 2)
	a.Next()
	a.Next()

	// A second producer over the same slice starts from the beginning.
	b := NewChunks(src, 2)
	if b.Len() != 2 {
		t.Fatalf("fresh producer len: got %d want 2", b.Len())
	}
	w, ok := b.Next()
	if !ok || w[0] != 1 {
		t.Fatalf("fresh producer window: %v %v", w, ok)
	}
}

func TestPointSeq(t *testing.T) {
	t.Parallel()

	s := newPointSeq([]float32{1, 2, 3, 4, 5})
	if s.Len() != 2 {
		t.Fatalf("len: got %d want 2", s.Len())
	}
	p, ok := s.Next()
	if !ok || p != (Point[float32]{1, 2}) {
		t.Fatalf("first point: %v %v", p, ok)
	}
	p, ok = s.Next()
	if !ok || p != (Point[float32]{3, 4}) {
		t.Fatalf("second point: %v %v", p, ok)
	}
	if _, ok := s.Next(); ok {
		t.Fatalf("expected exhaustion")
	}
	if rem := s.Remainder(); len(rem) != 1 || rem[0] != 5 {
		t.Fatalf("remainder: %v", rem)
	}
}

func TestSegmentSeq(t *testing.T) {
	t.Parallel()

	s := newSegmentSeq([]uint16{1, 2, 3, 4, 5, 6, 7, 8})
	if s.Len() != 2 {
		t.Fatalf("len: got %d want 2", s.Len())
	}
	seg, ok := s.Next()
	if !ok {
		t.Fatalf("first segment missing")
	}
	want := Segment[uint16]{Start: Point[uint16]{1, 2}, End: Point[uint16]{3, 4}}
	if seg != want {
		t.Fatalf("first segment: got %+v want %+v", seg, want)
	}
	seg, _ = s.Next()
	if seg.End != (Point[uint16]{7, 8}) {
		t.Fatalf("second segment end: %+v", seg.End)
	}
	if _, ok := s.Next(); ok {
		t.Fatalf("expected exhaustion")
	}
}

func TestPointSeqEmpty(t *testing.T) {
	t.Parallel()

	s := newPointSeq[uint16](nil)
	if s.Len() != 0 {
		t.Fatalf("len: got %d want 0", s.Len())
	}
	if _, ok := s.Next(); ok {
		t.Fatalf("empty sequence should yield nothing")
	}
}
