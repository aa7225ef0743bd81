// Package emit turns a segment geometry plan into drawing primitives: data
// and sprocket holes for every row, the long tape edges, and the end-cap
// profiles. It performs no validation; callers check sprocket bounds and
// levels before this stage.
package emit

import "github.com/punchtape/tapecut/pkg/layout"

// Sink receives drawing primitives. Angles are degrees, counterclockwise.
// *dxf.Drawing satisfies this.
type Sink interface {
	Line(x1, y1, x2, y2 float64)
	Circle(x, y, r float64)
	Arc(x, y, r, startDeg, endDeg float64)
}

// Chadless holes are cut as a partial arc so the chad stays attached.
const (
	chadArcStart = 130.0
	chadArcEnd   = 50.0
)

// Options configures hole emission.
type Options struct {
	// Level is the tape level; rows are traversed over level data bits.
	Level int

	// SprocketPos is how many data bits sit to the right of the sprocket
	// hole. A value past level-1 pushes the sprocket to the extreme edge.
	SprocketPos int

	// Mirror flips the tape left-to-right, for punching from the back.
	Mirror bool

	// Chadless renders holes as partial arcs instead of full circles.
	Chadless bool
}

// Emitter writes one plan's geometry into a sink.
type Emitter struct {
	sink Sink
	opts Options
}

// New returns an emitter writing into sink.
func New(sink Sink, opts Options) *Emitter {
	return &Emitter{sink: sink, opts: opts}
}

// Segment emits the complete geometry for one segment: edges, end caps, and
// every row's holes.
func (e *Emitter) Segment(width float64, seg layout.Segment) {
	e.edges(width, seg)
	e.cap(width, seg, seg.TopCap, true)
	e.cap(width, seg, seg.BottomCap, false)
	for i, row := range seg.Rows {
		y := -(float64(i) + 0.5) * layout.HoleSpacing
		e.row(width, seg.OriginX, y, uint16(row.Symbol))
	}
}

// edges draws the two long sides of the strip.
func (e *Emitter) edges(width float64, seg layout.Segment) {
	e.sink.Line(seg.OriginX, 0, seg.OriginX, -seg.LengthY)
	e.sink.Line(seg.OriginX+width, 0, seg.OriginX+width, -seg.LengthY)
}

// cap draws one end of the strip. The vee apex and the joiner indents extend
// two hole pitches and one hole pitch beyond the edge respectively.
func (e *Emitter) cap(width float64, seg layout.Segment, style layout.EndCap, top bool) {
	x0 := seg.OriginX
	x1 := seg.OriginX + width
	y := 0.0
	dir := 1.0 // outward
	if !top {
		y = -seg.LengthY
		dir = -1
	}

	switch style {
	case layout.CapFlat:
		e.sink.Line(x0, y, x1, y)
	case layout.CapVee:
		apex := y + dir*2*layout.HoleSpacing
		mid := x0 + width/2
		e.sink.Line(x0, y, mid, apex)
		e.sink.Line(mid, apex, x1, y)
	case layout.CapJoinerTab:
		e.joinerTab(x0, x1, y, dir)
	}
}

// joinerTab draws the splice-alignment profile: a flat edge with two square
// indents centered on the quarter-width points, cut one hole pitch into the
// tape.
func (e *Emitter) joinerTab(x0, x1, y, dir float64) {
	width := x1 - x0
	depth := y - dir*layout.HoleSpacing
	half := layout.HoleSpacing / 2

	notch := [2]float64{x0 + width/4, x0 + 3*width/4}
	x := x0
	for _, c := range notch {
		e.sink.Line(x, y, c-half, y)
		e.sink.Line(c-half, y, c-half, depth)
		e.sink.Line(c-half, depth, c+half, depth)
		e.sink.Line(c+half, depth, c+half, y)
		x = c + half
	}
	e.sink.Line(x, y, x1, y)
}

// row punches one row: the sprocket hole always, a data hole per set bit.
// Traversal is most-significant bit first, or least-significant first when
// mirrored.
func (e *Emitter) row(width, originX, y float64, sym uint16) {
	level := e.opts.Level
	cols := level + 1
	for i := 0; i < cols; i++ {
		k := i
		if e.opts.Mirror {
			k = cols - 1 - i
		}
		x := e.columnX(width, originX, k)
		if bit, sprocket := e.slot(k); sprocket {
			e.hole(x, y, layout.SprocketHoleRadius)
		} else if sym&(1<<bit) != 0 {
			e.hole(x, y, layout.DataHoleRadius)
		}
	}
}

// slot maps a column index (0 = leftmost on an unmirrored tape) to either
// the sprocket or a data bit. Data bits run from most significant on the
// left down to bit 0 on the right, with the sprocket interleaved so that
// SprocketPos bits sit to its right.
func (e *Emitter) slot(k int) (bit int, sprocket bool) {
	level := e.opts.Level
	pos := e.opts.SprocketPos
	if pos > level {
		pos = level // out of bounds collapses to the extreme edge
	}
	sprocketCol := level - pos
	switch {
	case k < sprocketCol:
		return level - 1 - k, false
	case k == sprocketCol:
		return 0, true
	default:
		return level - k, false
	}
}

// columnX returns the center X of column k. Columns are pitch-spaced with
// equal margins to the tape edges; mirroring reflects about the centerline.
func (e *Emitter) columnX(width, originX float64, k int) float64 {
	margin := (width - float64(e.opts.Level)*layout.HoleSpacing) / 2
	x := margin + float64(k)*layout.HoleSpacing
	if e.opts.Mirror {
		x = width - x
	}
	return originX + x
}

// hole punches one hole, as a full circle or a chadless arc.
func (e *Emitter) hole(x, y, r float64) {
	if e.opts.Chadless {
		e.sink.Arc(x, y, r, chadArcStart, chadArcEnd)
		return
	}
	e.sink.Circle(x, y, r)
}
