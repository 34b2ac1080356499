package clif

// Chunks yields successive size-n windows of a slice without copying. A
// fresh producer is cheap to create and each one tracks its own position, so
// geometry can be walked any number of times.
type Chunks[T any] struct {
	v   []T
	rem []T
	n   int
}

// NewChunks splits s into len(s)/n complete windows. The tail shorter than n
// is never yielded; it is available via Remainder.
func NewChunks[T any](s []T, n int) Chunks[T] {
	rem := len(s) % n
	full := len(s) - rem
	return Chunks[T]{v: s[:full], rem: s[full:], n: n}
}

// Next returns the next window as a sub-slice of the source, or false when
// the windows are exhausted.
func (c *Chunks[T]) Next() ([]T, bool) {
	if len(c.v) < c.n {
		return nil, false
	}
	w := c.v[:c.n]
	c.v = c.v[c.n:]
	return w, true
}

// Remainder returns the undividable tail of the source slice, at most n-1
// elements. Well-formed CLI geometry always divides evenly, so it is
// normally empty.
func (c *Chunks[T]) Remainder() []T { return c.rem }

// Len reports how many windows are still to be yielded.
func (c *Chunks[T]) Len() int { return len(c.v) / c.n }

// Point is one x,y coordinate pair copied out of a geometry view. It does
// not borrow the source buffer.
type Point[C Coord] struct {
	X, Y C
}

// Segment is one hatch line copied out of a geometry view.
type Segment[C Coord] struct {
	Start, End Point[C]
}

// PointSeq yields a coordinate slice two elements at a time as owned Point
// values.
type PointSeq[C Coord] struct {
	c Chunks[C]
}

func newPointSeq[C Coord](points []C) PointSeq[C] {
	return PointSeq[C]{c: NewChunks(points, 2)}
}

// Next returns the next point, or false when the sequence is exhausted.
func (s *PointSeq[C]) Next() (Point[C], bool) {
	w, ok := s.c.Next()
	if !ok {
		return Point[C]{}, false
	}
	return Point[C]{X: w[0], Y: w[1]}, true
}

// Len reports how many points are still to be yielded.
func (s *PointSeq[C]) Len() int { return s.c.Len() }

// Remainder returns the undividable tail of the underlying view.
func (s *PointSeq[C]) Remainder() []C { return s.c.Remainder() }

// SegmentSeq yields a coordinate slice four elements at a time as owned
// Segment values.
type SegmentSeq[C Coord] struct {
	c Chunks[C]
}

func newSegmentSeq[C Coord](points []C) SegmentSeq[C] {
	return SegmentSeq[C]{c: NewChunks(points, 4)}
}

// Next returns the next segment, or false when the sequence is exhausted.
func (s *SegmentSeq[C]) Next() (Segment[C], bool) {
	w, ok := s.c.Next()
	if !ok {
		return Segment[C]{}, false
	}
	return Segment[C]{
		Start: Point[C]{X: w[0], Y: w[1]},
		End:   Point[C]{X: w[2], Y: w[3]},
	}, true
}

// Len reports how many segments are still to be yielded.
func (s *SegmentSeq[C]) Len() int { return s.c.Len() }

// Remainder returns the undividable tail of the underlying view.
func (s *SegmentSeq[C]) Remainder() []C { return s.c.Remainder() }
