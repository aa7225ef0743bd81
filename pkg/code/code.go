// Package code implements the character-to-tape-code transcoders.
//
// A transcoder maps input text onto an ordered stream of tape symbols, where
// one symbol is the bit pattern of one punched row. Three families are
// provided:
//
//   - ASCII pass-through: one byte becomes one row, bit for bit
//   - Baudot/ITA2: 5-level teleprinter code with Letters/Figures shift tracking
//   - Morse (Wheatstone and cable code): variable-length pulse sequences on
//     2-level tape
//
// All transcoders share a permissive policy: characters outside a code's
// character set are dropped, never reported. Empty output is valid output.
package code

import "math/bits"

// Symbol is the bit pattern of a single punched row. Bit 0 is the least
// significant data hole (rightmost on an unmirrored tape). Only the low
// `level` bits of a symbol are meaningful; higher bits are always zero.
type Symbol uint16

// MaxLevel is the widest supported tape (one data hole per bit).
const MaxLevel = 8

// Popcount returns the number of set bits in the symbol.
func (s Symbol) Popcount() int { return bits.OnesCount16(uint16(s)) }

// Bit reports whether data bit i is set.
func (s Symbol) Bit(i int) bool { return s&(1<<i) != 0 }

// Mask truncates the symbol to the low `level` bits.
func (s Symbol) Mask(level int) Symbol { return s & Symbol(1<<level-1) }

// Encoder converts input bytes into tape symbols. Implementations are safe
// to reuse across messages; any shift state is scoped to a single Encode
// call.
type Encoder interface {
	// Encode transcodes data into symbols. Unsupported characters are
	// dropped; an empty result is not an error.
	Encode(data []byte) []Symbol

	// Level returns the tape level this code requires, or 0 if the code
	// works at whatever level the caller configured.
	Level() int

	// SprocketPos returns the sprocket position this code conventionally
	// uses, or -1 if the caller's choice stands.
	SprocketPos() int
}
