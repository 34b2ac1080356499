package clif

// Loop is one polyline of a layer, closed or open depending on its
// direction. Its coordinate slice borrows the buffer the model was decoded
// from.
type Loop[C Coord, M Meta] struct {
	id     M
	dir    M
	points []C
}

// ID returns the loop's CLI id, passed through uninterpreted.
func (l *Loop[C, M]) ID() M { return l.id }

// Dir returns the declared winding: 0 clockwise (internal), 1
// counter-clockwise (external), 2 open line. Slicers disagree on the exact
// meaning, so the value is not validated.
func (l *Loop[C, M]) Dir() M { return l.dir }

// Points returns the flattened x,y coordinate pairs. The length is always
// even. The slice aliases the decoded buffer and is valid only while that
// buffer is alive and unmodified.
func (l *Loop[C, M]) Points() []C { return l.points }

// PointSeq iterates the loop's coordinates as Point values.
func (l *Loop[C, M]) PointSeq() PointSeq[C] { return newPointSeq(l.points) }

// Hatches is one set of independent infill line segments. Its coordinate
// slice borrows the buffer the model was decoded from.
type Hatches[C Coord, M Meta] struct {
	id     M
	points []C
}

// ID returns the hatch set's CLI id, passed through uninterpreted.
func (h *Hatches[C, M]) ID() M { return h.id }

// Points returns the flattened start.x, start.y, end.x, end.y groups. The
// length is always a multiple of four. The slice aliases the decoded buffer.
func (h *Hatches[C, M]) Points() []C { return h.points }

// SegmentSeq iterates the hatch set as Segment values.
func (h *Hatches[C, M]) SegmentSeq() SegmentSeq[C] { return newSegmentSeq(h.points) }

// Layer is one height slice of the part, holding its loops and hatch sets in
// file order.
type Layer[C Coord, M Meta] struct {
	height  C
	loops   []Loop[C, M]
	hatches []Hatches[C, M]
}

// Height is the absolute height above the part's base. Layer thickness is
// not encoded in the format; derive it from the height delta between
// consecutive layers.
func (l *Layer[C, M]) Height() C { return l.height }

// Loops returns the layer's polylines in file order.
func (l *Layer[C, M]) Loops() []Loop[C, M] { return l.loops }

// Hatches returns the layer's hatch sets in file order.
func (l *Layer[C, M]) Hatches() []Hatches[C, M] { return l.hatches }

// Model is the decoded, read-only view of one CLI file. Geometry is never
// copied: every coordinate slice reachable from the model aliases the buffer
// passed to the decoder, so that buffer must stay alive and unmodified for
// as long as the model or any view derived from it is in use.
type Model[C Coord, M Meta] struct {
	header Header
	layers []Layer[C, M]
}

// Header returns the parsed file metadata.
func (m *Model[C, M]) Header() Header { return m.header }

// Layers returns the decoded layers in file order. The count reflects the
// layer commands actually present, not the header's declared value.
func (m *Model[C, M]) Layers() []Layer[C, M] { return m.layers }

// ShortModel is a model decoded from the short encoding (16-bit coordinates
// and metadata).
type ShortModel = Model[uint16, uint16]

// LongModel is a model decoded from the long encoding (float32 coordinates,
// int32 metadata).
type LongModel = Model[float32, int32]
