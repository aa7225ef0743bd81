// Package layout partitions an assembled row list into physical tape
// segments bounded by cutting-mat length, and computes each segment's origin
// offset, extent, and end-cap geometry. All dimensions are millimeters.
package layout

import "github.com/punchtape/tapecut/pkg/tape"

// Physical constants of punched tape.
const (
	// HoleSpacing is the row and track pitch: one tenth of an inch.
	HoleSpacing = 2.54

	// DataHoleRadius and SprocketHoleRadius are the punch radii.
	DataHoleRadius     = 0.915
	SprocketHoleRadius = 0.585

	// widthByteTape is one-inch tape used for 6-level and wider codes.
	widthByteTape = 25.4

	// widthBaudot is the 11/16-inch tape used by 5-level teleprinter code.
	widthBaudot = 17.46
)

// TapeWidth returns the physical tape width for a level, doubled when joiner
// mode reserves room for the splice tabs.
func TapeWidth(level int, joiner bool) float64 {
	var w float64
	switch {
	case level >= 6:
		w = widthByteTape
	case level == 5:
		w = widthBaudot
	default:
		w = float64(level)*HoleSpacing + 2*HoleSpacing
	}
	if joiner {
		w *= 2
	}
	return w
}

// EndCap selects how a segment end is cut.
type EndCap int

const (
	// CapFlat is a straight edge across the tape.
	CapFlat EndCap = iota

	// CapVee is a centered notch with its apex two hole pitches beyond the
	// tape edge.
	CapVee

	// CapJoinerTab is the splice-alignment profile with indents at the
	// quarter-width points.
	CapJoinerTab
)

// Segment is one physical strip of tape.
type Segment struct {
	Index int

	// Rows is the segment's slice of the assembled list. The trailing
	// over-allocated segment of an exact division has zero rows.
	Rows tape.List

	// StartRow is the absolute index of the segment's first row in the full
	// list.
	StartRow int

	// CodeOffset is StartRow minus the banner and leader row counts: the
	// offset to feed back as a range start when cutting a joiner fragment
	// that aligns with this segment boundary. Negative for segments that
	// begin before the code region.
	CodeOffset int

	// OriginX is the left edge of the segment strip.
	OriginX float64

	// LengthY is the segment's extent along the tape.
	LengthY float64

	IsFirst bool
	IsLast  bool

	TopCap    EndCap
	BottomCap EndCap
}

// Options configures the layout computation.
type Options struct {
	// RowsPerSegment bounds a segment to the cutting mat.
	RowsPerSegment int

	// Level is the tape level, which fixes the strip width.
	Level int

	// Gap is the spacing between adjacent segment strips.
	Gap float64

	// Vee cuts vee notches instead of flat ends on the outer segments.
	Vee bool

	// Joiner doubles the tape width and cuts splice tabs on the outer
	// segments. Joiner wins over Vee.
	Joiner bool

	// SegmentsPerFile splits the job into numbered output files of this many
	// segments each; zero keeps everything in one file.
	SegmentsPerFile int

	// ExactSegments switches the segment count to a plain ceiling division.
	// The historical formula total/perSegment+1 over-allocates one empty
	// trailing segment whenever the division is exact; that remains the
	// default for compatibility with tapes cut by earlier tooling.
	ExactSegments bool
}

// Plan is the computed geometry plan for one tape job.
type Plan struct {
	Segments  []Segment
	TapeWidth float64
	Level     int
}

// Compute partitions rows into segments and fills in per-segment geometry.
// rowsPerSegment must be positive; callers validate upstream.
func Compute(rows tape.List, opts Options) *Plan {
	per := opts.RowsPerSegment
	count := len(rows)/per + 1
	if opts.ExactSegments {
		count = (len(rows) + per - 1) / per
		if count == 0 {
			count = 1
		}
	}

	skip := rows.Count(tape.RegionBanner) + rows.Count(tape.RegionLeader)
	width := TapeWidth(opts.Level, opts.Joiner)

	plan := &Plan{
		Segments:  make([]Segment, count),
		TapeWidth: width,
		Level:     opts.Level,
	}
	for i := range plan.Segments {
		start := i * per
		end := start + per
		if start > len(rows) {
			start = len(rows)
		}
		if end > len(rows) {
			end = len(rows)
		}

		seg := Segment{
			Index:      i,
			Rows:       rows[start:end],
			StartRow:   start,
			CodeOffset: start - skip,
			OriginX:    float64(i) * (width + opts.Gap),
			LengthY:    float64(end-start) * HoleSpacing,
			IsFirst:    i == 0,
			IsLast:     i == count-1,
		}
		seg.TopCap, seg.BottomCap = caps(seg, opts)
		plan.Segments[i] = seg
	}
	return plan
}

// caps picks the end-cap styles for one segment. Only the outer ends of the
// whole tape get decorated; interior segment boundaries are flat cuts.
func caps(seg Segment, opts Options) (top, bottom EndCap) {
	outer := CapFlat
	switch {
	case opts.Joiner:
		outer = CapJoinerTab
	case opts.Vee:
		outer = CapVee
	}
	top, bottom = CapFlat, CapFlat
	if seg.IsFirst {
		top = outer
	}
	if seg.IsLast {
		bottom = outer
	}
	return top, bottom
}

// FileGroups partitions the segments into per-output-file groups according
// to SegmentsPerFile. With pagination disabled there is a single group.
func (p *Plan) FileGroups(segmentsPerFile int) [][]Segment {
	if segmentsPerFile <= 0 || segmentsPerFile >= len(p.Segments) {
		return [][]Segment{p.Segments}
	}
	var groups [][]Segment
	for start := 0; start < len(p.Segments); start += segmentsPerFile {
		end := start + segmentsPerFile
		if end > len(p.Segments) {
			end = len(p.Segments)
		}
		groups = append(groups, p.Segments[start:end])
	}
	return groups
}
