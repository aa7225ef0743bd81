package code

// ASCII is the pass-through transcoder: each input byte becomes one symbol
// with the byte's own bit pattern, truncated to the configured tape level.
// It is the default code for byte-oriented tape (level 8).
type ASCII struct {
	// TapeLevel is the number of data bits per row, 1-8.
	TapeLevel int
}

// Encode maps each byte to one symbol, masked to the tape level.
func (a ASCII) Encode(data []byte) []Symbol {
	syms := make([]Symbol, len(data))
	for i, b := range data {
		syms[i] = Symbol(b).Mask(a.TapeLevel)
	}
	return syms
}

// Level returns 0: ASCII adapts to whatever level the caller configured.
func (ASCII) Level() int { return 0 }

// SprocketPos returns -1: no conventional sprocket position is forced.
func (ASCII) SprocketPos() int { return -1 }
