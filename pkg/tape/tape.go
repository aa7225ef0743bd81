// Package tape assembles transcoded symbols into the ordered list of rows
// that make up one physical tape: banner, leader, code, trailer. The
// assembler also applies parity and inversion and computes the per-region
// display numbering used by console previews.
package tape

import "github.com/punchtape/tapecut/pkg/code"

// Region identifies which part of the tape a row belongs to. Regions appear
// on tape in declaration order, top to bottom.
type Region int

const (
	RegionBanner Region = iota
	RegionLeader
	RegionCode
	RegionTrailer
)

var regionNames = [...]string{"banner", "leader", "code", "trailer"}

// String returns the lowercase region name.
func (r Region) String() string {
	if r < 0 || int(r) >= len(regionNames) {
		return "unknown"
	}
	return regionNames[r]
}

// Parity selects the parity bit written into each row's most significant
// data position.
type Parity int

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

// Row is one punched tape row: the bit pattern plus where it sits on the
// tape. Rows are immutable once assembled; parity and inversion are applied
// while the list is built, never afterwards.
type Row struct {
	Symbol code.Symbol
	Region Region

	// Seq is the zero-based position within the row's region.
	Seq int

	// Number is the 1-based display number for numbered regions, or 0 when
	// the region is not numbered. Presentation only; geometry never reads it.
	Number int
}

// List is the full top-to-bottom row sequence of one tape.
type List []Row

// Count returns how many rows belong to the given region.
func (l List) Count(region Region) int {
	n := 0
	for _, r := range l {
		if r.Region == region {
			n++
		}
	}
	return n
}
