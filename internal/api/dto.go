package api

import (
	"github.com/samcharles93/clif/pkg/clif"
)

// DocumentInfo is the JSON view of one loaded document. Heights in the layer
// payloads are in millimetres; the raw unit scale is reported here.
type DocumentInfo struct {
	ID             string  `json:"id"`
	Path           string  `json:"path"`
	Encoding       string  `json:"encoding"`
	Units          float64 `json:"units"`
	Version        float32 `json:"version"`
	Aligned        bool    `json:"aligned"`
	DeclaredLayers *int    `json:"declared_layers,omitempty"`
	LayerCount     int     `json:"layer_count"`
}

type LayerSummary struct {
	Index   int     `json:"index"`
	Height  float64 `json:"height"`
	Loops   int     `json:"loops"`
	Hatches int     `json:"hatches"`
}

// Point is an x,y pair in millimetres.
type Point [2]float64

type Loop struct {
	ID     int64   `json:"id"`
	Dir    int64   `json:"dir"`
	Points []Point `json:"points"`
}

type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

type Hatch struct {
	ID       int64     `json:"id"`
	Segments []Segment `json:"segments"`
}

type LayerDetail struct {
	Index   int     `json:"index"`
	Height  float64 `json:"height"`
	Loops   []Loop  `json:"loops"`
	Hatches []Hatch `json:"hatches"`
}

// Info builds the document summary DTO.
func (d *Document) Info() DocumentInfo {
	hdr := d.Header()
	return DocumentInfo{
		ID:             d.ID,
		Path:           d.Path,
		Encoding:       d.Encoding,
		Units:          hdr.Units,
		Version:        hdr.Version,
		Aligned:        hdr.Aligned,
		DeclaredLayers: hdr.Layers,
		LayerCount:     d.LayerCount(),
	}
}

// LayerSummaries lists every layer with its element counts.
func (d *Document) LayerSummaries() []LayerSummary {
	if d.short != nil {
		return layerSummaries(d.short)
	}
	return layerSummaries(d.long)
}

// Layer converts one layer to millimetre geometry. ok is false when the index
// is out of range.
func (d *Document) Layer(index int) (LayerDetail, bool) {
	if d.short != nil {
		return layerDetail(d.short, index)
	}
	return layerDetail(d.long, index)
}

func layerSummaries[C clif.Coord, M clif.Meta](m *clif.Model[C, M]) []LayerSummary {
	units := m.Header().Units
	layers := m.Layers()
	out := make([]LayerSummary, len(layers))
	for i := range layers {
		out[i] = LayerSummary{
			Index:   i,
			Height:  float64(layers[i].Height()) * units,
			Loops:   len(layers[i].Loops()),
			Hatches: len(layers[i].Hatches()),
		}
	}
	return out
}

func layerDetail[C clif.Coord, M clif.Meta](m *clif.Model[C, M], index int) (LayerDetail, bool) {
	layers := m.Layers()
	if index < 0 || index >= len(layers) {
		return LayerDetail{}, false
	}
	units := m.Header().Units
	layer := &layers[index]

	detail := LayerDetail{
		Index:   index,
		Height:  float64(layer.Height()) * units,
		Loops:   make([]Loop, 0, len(layer.Loops())),
		Hatches: make([]Hatch, 0, len(layer.Hatches())),
	}
	for _, l := range layer.Loops() {
		loop := Loop{ID: int64(l.ID()), Dir: int64(l.Dir())}
		seq := l.PointSeq()
		loop.Points = make([]Point, 0, seq.Len())
		for {
			p, ok := seq.Next()
			if !ok {
				break
			}
			loop.Points = append(loop.Points, scalePoint(p, units))
		}
		detail.Loops = append(detail.Loops, loop)
	}
	for _, h := range layer.Hatches() {
		hatch := Hatch{ID: int64(h.ID())}
		seq := h.SegmentSeq()
		hatch.Segments = make([]Segment, 0, seq.Len())
		for {
			s, ok := seq.Next()
			if !ok {
				break
			}
			hatch.Segments = append(hatch.Segments, Segment{
				Start: scalePoint(s.Start, units),
				End:   scalePoint(s.End, units),
			})
		}
		detail.Hatches = append(detail.Hatches, hatch)
	}
	return detail, true
}

func scalePoint[C clif.Coord](p clif.Point[C], units float64) Point {
	return Point{float64(p.X) * units, float64(p.Y) * units}
}
