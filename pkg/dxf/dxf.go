// Package dxf is the drawing sink: an append-only buffer of vector entities
// (lines, circles, arcs) serialized on save as a minimal DXF document that
// common 2D CAD and CNC tools accept. Geometry accumulation is decoupled
// from the text framing; emitters only ever append and never read back.
package dxf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// entityKind tags one accumulated record.
type entityKind int

const (
	kindLine entityKind = iota
	kindCircle
	kindArc
)

// entity is one accumulated drawing record. Arcs use x2/y2 for the start and
// end angles in degrees.
type entity struct {
	kind           entityKind
	x1, y1, x2, y2 float64
	radius         float64
}

// Drawing accumulates entities until Save or WriteTo flushes them. The zero
// value is usable.
type Drawing struct {
	entities []entity
}

// NewDrawing returns an empty drawing buffer.
func NewDrawing() *Drawing { return &Drawing{} }

// Line appends a line segment from (x1, y1) to (x2, y2).
func (d *Drawing) Line(x1, y1, x2, y2 float64) {
	d.entities = append(d.entities, entity{kind: kindLine, x1: x1, y1: y1, x2: x2, y2: y2})
}

// Circle appends a full circle of the given radius centered at (x, y).
func (d *Drawing) Circle(x, y, r float64) {
	d.entities = append(d.entities, entity{kind: kindCircle, x1: x, y1: y, radius: r})
}

// Arc appends a circle segment swept counterclockwise from startDeg to
// endDeg, centered at (x, y).
func (d *Drawing) Arc(x, y, r, startDeg, endDeg float64) {
	d.entities = append(d.entities, entity{
		kind: kindArc, x1: x, y1: y, radius: r, x2: startDeg, y2: endDeg,
	})
}

// Len returns the number of accumulated entities.
func (d *Drawing) Len() int { return len(d.entities) }

// Reset discards all accumulated entities, keeping the drawing usable for
// the next output file.
func (d *Drawing) Reset() { d.entities = d.entities[:0] }

// WriteTo serializes the document as DXF group-code/value pairs.
func (d *Drawing) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	writeGroups(&buf, "0", "SECTION", "2", "HEADER", "9", "$ACADVER", "1", "AC1009", "0", "ENDSEC")
	writeGroups(&buf, "0", "SECTION", "2", "ENTITIES")
	for _, e := range d.entities {
		switch e.kind {
		case kindLine:
			writeGroups(&buf, "0", "LINE", "8", "0",
				"10", num(e.x1), "20", num(e.y1),
				"11", num(e.x2), "21", num(e.y2))
		case kindCircle:
			writeGroups(&buf, "0", "CIRCLE", "8", "0",
				"10", num(e.x1), "20", num(e.y1), "40", num(e.radius))
		case kindArc:
			writeGroups(&buf, "0", "ARC", "8", "0",
				"10", num(e.x1), "20", num(e.y1), "40", num(e.radius),
				"50", num(e.x2), "51", num(e.y2))
		}
	}
	writeGroups(&buf, "0", "ENDSEC", "0", "EOF")
	return buf.WriteTo(w)
}

// Save serializes the document to path. The file is staged in memory first,
// so a failed save never leaves a half-written document behind a successful
// return.
func (d *Drawing) Save(path string) error {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// NumberedPath returns path with a four-digit sequence number spliced in
// before the extension: out.dxf, 2 -> out_0002.dxf. Used when a job is
// paginated across multiple output files.
func NumberedPath(path string, n int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%04d%s", base, n, ext)
}

// writeGroups emits alternating group codes and values, one per line.
func writeGroups(buf *bytes.Buffer, pairs ...string) {
	for _, p := range pairs {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
}

// num formats a coordinate with enough precision for 0.001mm resolution
// without trailing noise.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
