package code

import "unicode"

// Both Morse tape codes punch two data channels.
const (
	morseLevel        = 2
	wheatstoneSprock  = 1 // feed hole centered between the two channels
	chanA      Symbol = 0b01
	chanB      Symbol = 0b10
	bothChans  Symbol = 0b11
	advance    Symbol = 0b00 // blank row, sprocket only
)

// morseTable is the dot-dash source shared by both tape variants.
var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
}

// Wheatstone transcodes text into the Wheatstone automated-telegraph tape
// code: a dot is one row with both channels punched, a dash spans two rows
// (channel A, then channel B in the next row), and each character is closed
// by one blank terminator row. Whitespace becomes a single blank advance row
// with no extra terminator.
type Wheatstone struct{}

// Encode expands each character's dot-dash pattern into pulse rows.
func (Wheatstone) Encode(data []byte) []Symbol {
	return encodeMorse(data, func(syms []Symbol, mark byte) []Symbol {
		if mark == '.' {
			return append(syms, bothChans)
		}
		return append(syms, chanA, chanB)
	})
}

// Level returns 2.
func (Wheatstone) Level() int { return morseLevel }

// SprocketPos returns 1, the centered feed hole between the two channels.
func (Wheatstone) SprocketPos() int { return wheatstoneSprock }

// CableCode transcodes text into submarine cable code: a dot is one short
// pulse (channel A), a dash one long pulse (channel B), with a blank
// separator row after each character and a single blank advance row per
// whitespace character.
type CableCode struct{}

// Encode maps each dot or dash to exactly one pulse row.
func (CableCode) Encode(data []byte) []Symbol {
	return encodeMorse(data, func(syms []Symbol, mark byte) []Symbol {
		if mark == '.' {
			return append(syms, chanA)
		}
		return append(syms, chanB)
	})
}

// Level returns 2.
func (CableCode) Level() int { return morseLevel }

// SprocketPos returns -1: cable code takes the configured sprocket position.
func (CableCode) SprocketPos() int { return -1 }

// encodeMorse walks the input and applies the variant's pulse-expansion rule
// to every dot or dash, terminating each character with one advance row.
// Whitespace is itself a single advance row; unknown characters vanish.
func encodeMorse(data []byte, expand func([]Symbol, byte) []Symbol) []Symbol {
	var syms []Symbol
	for _, r := range string(data) {
		if unicode.IsSpace(r) {
			syms = append(syms, advance)
			continue
		}
		pattern, ok := morseTable[unicode.ToUpper(r)]
		if !ok {
			continue
		}
		for i := 0; i < len(pattern); i++ {
			syms = expand(syms, pattern[i])
		}
		syms = append(syms, advance)
	}
	return syms
}
