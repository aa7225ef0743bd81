package tape

import "github.com/punchtape/tapecut/pkg/code"

// NumberFlags selects which regions receive display numbering.
type NumberFlags struct {
	Banner  bool
	Leader  bool
	Code    bool
	Trailer bool

	// All carries the numbering offset across region boundaries instead of
	// restarting at 1 in every numbered region.
	All bool
}

// Spec describes one tape to assemble.
type Spec struct {
	// Level is the tape level, 1-8. Symbols are truncated to this width.
	Level int

	// Banner holds pre-rendered banner columns, one byte per row.
	Banner []byte

	// Code is the transcoded symbol stream for the code region.
	Code []code.Symbol

	// Start and Length select a sub-range of Code. A negative Start pads the
	// front with zero rows; a range past the end of Code pads the back. A
	// negative Length means "through the end of Code".
	Start  int
	Length int

	// Leader and Trailer are counts of blank sprocket-only rows.
	Leader  int
	Trailer int

	Parity  Parity
	Invert  bool
	Numbers NumberFlags
}

// Assemble builds the ordered row list: banner, leader, code sub-range,
// trailer. Parity is applied before inversion, both exactly once, and the
// returned rows are not mutated afterwards.
func (s Spec) Assemble() List {
	banner := make([]code.Symbol, len(s.Banner))
	for i, col := range s.Banner {
		banner[i] = code.Symbol(col).Mask(s.Level)
	}

	padFront, codeSyms := s.codeRange()

	var rows List
	rows = appendRegion(rows, RegionBanner, banner)
	rows = appendRegion(rows, RegionLeader, make([]code.Symbol, s.Leader+padFront))
	rows = appendRegion(rows, RegionCode, codeSyms)
	rows = appendRegion(rows, RegionTrailer, make([]code.Symbol, s.Trailer))

	for i, r := range rows {
		sym := applyParity(r.Symbol, s.Parity, s.Level)
		if s.Invert {
			sym = (^sym).Mask(s.Level)
		}
		rows[i].Symbol = sym
	}

	number(rows, s.Numbers)
	return rows
}

// codeRange resolves the Start/Length sub-range against the available code
// symbols. It returns how many zero rows to fold into the leader (negative
// start) and the code symbols themselves, zero-padded past the end of data.
// Out-of-range requests pad rather than fail, so joiner and trailer
// fragments can be cut from arbitrary offsets.
func (s Spec) codeRange() (padFront int, syms []code.Symbol) {
	start, length := s.Start, s.Length
	if length < 0 {
		length = len(s.Code) - start
		if length < 0 {
			length = 0
		}
	}
	if start < 0 {
		padFront = -start
		if padFront > length {
			padFront = length
		}
		length -= padFront
		start = 0
	}
	syms = make([]code.Symbol, length)
	for i := 0; i < length; i++ {
		if start+i < len(s.Code) {
			syms[i] = s.Code[start+i].Mask(s.Level)
		}
	}
	return padFront, syms
}

func appendRegion(rows List, region Region, syms []code.Symbol) List {
	for i, sym := range syms {
		rows = append(rows, Row{Symbol: sym, Region: region, Seq: i})
	}
	return rows
}

// applyParity returns sym with its most significant data bit set so that the
// popcount of the whole symbol matches the requested parity. The parity bit
// is computed over the low level-1 bits only.
func applyParity(sym code.Symbol, p Parity, level int) code.Symbol {
	if p == ParityNone || level < 2 {
		return sym
	}
	low := sym.Mask(level - 1)
	odd := low.Popcount()%2 == 1
	set := false
	switch p {
	case ParityEven:
		set = odd
	case ParityOdd:
		set = !odd
	}
	if set {
		return low | 1<<(level-1)
	}
	return low
}

// number fills in display numbers for the flagged regions. Numbering is
// contiguous within a region and restarts at each region boundary unless
// All is set, in which case the count carries over from prior numbered
// regions.
func number(rows List, flags NumberFlags) {
	include := map[Region]bool{
		RegionBanner:  flags.Banner,
		RegionLeader:  flags.Leader,
		RegionCode:    flags.Code,
		RegionTrailer: flags.Trailer,
	}
	n := 0
	last := Region(-1)
	for i, r := range rows {
		if r.Region != last {
			last = r.Region
			if !flags.All {
				n = 0
			}
		}
		if !include[r.Region] {
			continue
		}
		n++
		rows[i].Number = n
	}
}
