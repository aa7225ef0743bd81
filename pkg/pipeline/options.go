package pipeline

import (
	"github.com/punchtape/tapecut/pkg/errors"
	"github.com/punchtape/tapecut/pkg/tape"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultLevel is byte-wide tape.
	DefaultLevel = 8

	// DefaultRowsPerSegment fits a segment on a common A4/letter cutting mat.
	DefaultRowsPerSegment = 100

	// DefaultGap is the spacing between segment strips on the mat, in mm.
	DefaultGap = 5.0

	// DefaultLeader and DefaultTrailer are blank feed rows on either end.
	DefaultLeader  = 10
	DefaultTrailer = 10
)

// Mode selects the character-to-tape transcoder.
type Mode int

const (
	// ModeASCII punches each byte's bit pattern directly.
	ModeASCII Mode = iota

	// ModeBaudot punches ITA2 5-level teleprinter code.
	ModeBaudot

	// ModeWheatstone punches Wheatstone Morse pulse code.
	ModeWheatstone

	// ModeCable punches submarine cable Morse code.
	ModeCable
)

var modeNames = [...]string{"ascii", "baudot", "wheatstone", "cable"}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Options is the single configuration record the pipeline consumes. The CLI
// validates flags before filling this in, but ValidateAndSetDefaults checks
// everything again so library callers get the same guarantees.
type Options struct {
	// Input sources, in priority order: Message wins over InputPath; with
	// neither set, Banner (or bare leader/trailer rows) still makes a tape.
	Message   string
	InputPath string
	Banner    string

	// Input carries pre-resolved bytes; when set it suppresses InputPath.
	Input []byte

	// OutputPath is where the drawing lands. Required unless DryRun.
	OutputPath string

	// DryRun computes the full geometry but skips the file writes.
	DryRun bool

	// Start and Length select a byte sub-range of the transcoded stream.
	// Out-of-range values pad with blank rows rather than fail. A Length of
	// -1 means "through the end".
	Start  int
	Length int

	// Mode selects the transcoder; modes with a fixed geometry force Level
	// and SprocketPos.
	Mode Mode

	// Level is the tape level, 1-8. Zero picks the default.
	Level int

	// SprocketPos is the feed-hole position; -1 picks the conventional
	// position for the level.
	SprocketPos int

	Parity   tape.Parity
	Invert   bool
	Mirror   bool
	Chadless bool

	// Leader and Trailer count blank rows; -1 picks the default.
	Leader  int
	Trailer int

	// Layout controls.
	RowsPerSegment  int
	Gap             float64
	SegmentsPerFile int
	Vee             bool
	Joiner          bool
	ExactSegments   bool

	// Numbers flags regions for display numbering in console previews.
	Numbers tape.NumberFlags
}

// ValidateAndSetDefaults resolves zero values to defaults, applies the
// mode's forced geometry, and rejects invalid configurations before any
// geometry work begins.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Level == 0 {
		o.Level = DefaultLevel
	}
	if o.Length == 0 {
		o.Length = -1
	}
	if o.Leader < 0 {
		o.Leader = DefaultLeader
	}
	if o.Trailer < 0 {
		o.Trailer = DefaultTrailer
	}
	if o.RowsPerSegment == 0 {
		o.RowsPerSegment = DefaultRowsPerSegment
	}
	if o.Gap == 0 {
		o.Gap = DefaultGap
	}

	enc := o.encoder()
	if lvl := enc.Level(); lvl != 0 {
		o.Level = lvl
	}
	if err := errors.ValidateLevel(o.Level); err != nil {
		return err
	}

	if pos := enc.SprocketPos(); pos >= 0 {
		o.SprocketPos = pos
	} else if o.SprocketPos < 0 {
		o.SprocketPos = conventionalSprocket(o.Level)
	}
	if err := errors.ValidateSprocketPos(o.SprocketPos, o.Level); err != nil {
		return err
	}

	if err := errors.ValidateRowsPerSegment(o.RowsPerSegment); err != nil {
		return err
	}
	if err := errors.ValidateSegmentGap(o.Gap); err != nil {
		return err
	}
	if o.Mode < ModeASCII || o.Mode > ModeCable {
		return errors.New(errors.ErrCodeInvalidMode, "unknown mode %d", int(o.Mode))
	}
	if o.Parity < tape.ParityNone || o.Parity > tape.ParityOdd {
		return errors.New(errors.ErrCodeInvalidParity, "unknown parity %d", int(o.Parity))
	}

	if !o.hasInput() {
		return errors.New(errors.ErrCodeNoInput,
			"nothing to generate: no message, input file, banner, leader, or trailer")
	}
	if !o.DryRun {
		if err := errors.ValidateOutputPath(o.OutputPath); err != nil {
			return err
		}
	}
	return nil
}

// hasInput reports whether anything at all would end up on the tape.
func (o *Options) hasInput() bool {
	return o.Message != "" || len(o.Input) > 0 || o.InputPath != "" ||
		o.Banner != "" || o.Leader > 0 || o.Trailer > 0
}

// conventionalSprocket is the feed-hole position customary for each tape
// width: between tracks 3 and 4 on one-inch tape, between 2 and 3 on
// teleprinter tape, centered on anything narrower.
func conventionalSprocket(level int) int {
	switch {
	case level >= 6:
		return 3
	case level == 5:
		return 2
	default:
		return level / 2
	}
}
