package code

import "unicode"

// Baudot tape geometry: 5 data holes with the sprocket punched between the
// second and third hole from the right edge.
const (
	baudotLevel    = 5
	baudotSprocket = 2
)

// ITA2 control codes.
const (
	ita2Figures Symbol = 0b11011 // shift to figures column
	ita2Letters Symbol = 0b11111 // shift back to letters column
)

// ita2Entry is one row of the two-column ITA2 lookup table: a 5-bit code and
// the character it produces in the Letters and Figures shift states. Entries
// whose two columns agree (space, CR, LF) are shift-invariant.
type ita2Entry struct {
	code   Symbol
	letter rune
	figure rune
}

// ita2Table is the standard ITA2 assignment with US-TTY figures. Bit 0 is
// channel 1.
var ita2Table = []ita2Entry{
	{0b00011, 'A', '-'},
	{0b11001, 'B', '?'},
	{0b01110, 'C', ':'},
	{0b01001, 'D', '$'},
	{0b00001, 'E', '3'},
	{0b01101, 'F', '!'},
	{0b11010, 'G', '&'},
	{0b10100, 'H', '#'},
	{0b00110, 'I', '8'},
	{0b01011, 'J', '\''},
	{0b01111, 'K', '('},
	{0b10010, 'L', ')'},
	{0b11100, 'M', '.'},
	{0b01100, 'N', ','},
	{0b11000, 'O', '9'},
	{0b10110, 'P', '0'},
	{0b10111, 'Q', '1'},
	{0b01010, 'R', '4'},
	{0b00101, 'S', '\a'},
	{0b10000, 'T', '5'},
	{0b00111, 'U', '7'},
	{0b11110, 'V', ';'},
	{0b10011, 'W', '2'},
	{0b11101, 'X', '/'},
	{0b10101, 'Y', '6'},
	{0b10001, 'Z', '"'},
	{0b00100, ' ', ' '},
	{0b01000, '\r', '\r'},
	{0b00010, '\n', '\n'},
}

// Baudot transcodes text into 5-level ITA2 code, emitting FIGS/LTRS shift
// codes as the character stream moves between the two table columns. Shift
// state starts in Letters and is scoped to one Encode call.
type Baudot struct{}

// baudotState is the fold accumulator threaded through the character stream.
type baudotState struct {
	figuresActive bool
}

// Encode folds encodeChar over the input. Lowercase letters are upcased
// first; characters in neither table column are dropped.
func (Baudot) Encode(data []byte) []Symbol {
	var syms []Symbol
	state := baudotState{}
	for _, r := range string(data) {
		var out []Symbol
		state, out = encodeChar(state, unicode.ToUpper(r))
		syms = append(syms, out...)
	}
	return syms
}

// encodeChar maps (state, character) to (state, symbols). It is a pure
// function: the only shift state is the explicit accumulator.
func encodeChar(state baudotState, r rune) (baudotState, []Symbol) {
	for _, e := range ita2Table {
		if e.letter == e.figure {
			// Shift-invariant: emit in either state.
			if r == e.letter {
				return state, []Symbol{e.code}
			}
			continue
		}
		if r == e.letter {
			if state.figuresActive {
				state.figuresActive = false
				return state, []Symbol{ita2Letters, e.code}
			}
			return state, []Symbol{e.code}
		}
		if r == e.figure {
			if !state.figuresActive {
				state.figuresActive = true
				return state, []Symbol{ita2Figures, e.code}
			}
			return state, []Symbol{e.code}
		}
	}
	return state, nil
}

// Level returns 5: ITA2 is a 5-level code.
func (Baudot) Level() int { return baudotLevel }

// SprocketPos returns 2, the conventional feed-hole position on 5-level tape.
func (Baudot) SprocketPos() int { return baudotSprocket }
