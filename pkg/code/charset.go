package code

import "sort"

// CharsetEntry describes one character assignment in a code table, for
// display purposes. Code is set for ITA2 entries, Pattern for Morse ones.
type CharsetEntry struct {
	Char    rune
	Figure  rune   // ITA2 figures-shift character; 0 when shift-invariant
	Code    Symbol // ITA2 5-bit code
	Pattern string // Morse dot-dash pattern
}

// BaudotCharset returns the ITA2 assignment in table order: letters column,
// figures column, and the 5-bit code per row.
func BaudotCharset() []CharsetEntry {
	entries := make([]CharsetEntry, 0, len(ita2Table))
	for _, e := range ita2Table {
		entry := CharsetEntry{Char: e.letter, Code: e.code}
		if e.figure != e.letter {
			entry.Figure = e.figure
		}
		entries = append(entries, entry)
	}
	return entries
}

// MorseCharset returns the dot-dash assignments shared by the Wheatstone and
// cable tape codes, sorted by character.
func MorseCharset() []CharsetEntry {
	entries := make([]CharsetEntry, 0, len(morseTable))
	for r, pattern := range morseTable {
		entries = append(entries, CharsetEntry{Char: r, Pattern: pattern})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Char < entries[j].Char })
	return entries
}
