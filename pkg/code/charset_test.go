package code

import "testing"

func TestBaudotCharset(t *testing.T) {
	entries := BaudotCharset()
	if len(entries) != len(ita2Table) {
		t.Fatalf("len = %d, want %d", len(entries), len(ita2Table))
	}
	byChar := map[rune]CharsetEntry{}
	for _, e := range entries {
		byChar[e.Char] = e
	}
	if e := byChar['A']; e.Code != 0b00011 || e.Figure != '-' {
		t.Errorf("A = %+v", e)
	}
	// Shift-invariant characters carry no figures column.
	if e := byChar[' ']; e.Figure != 0 {
		t.Errorf("space figure = %q, want none", e.Figure)
	}
}

func TestMorseCharset(t *testing.T) {
	entries := MorseCharset()
	if len(entries) != len(morseTable) {
		t.Fatalf("len = %d, want %d", len(entries), len(morseTable))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Char >= entries[i].Char {
			t.Fatalf("not sorted at %d: %q >= %q", i, entries[i-1].Char, entries[i].Char)
		}
	}
	for _, e := range entries {
		if e.Char == 'S' && e.Pattern != "..." {
			t.Errorf("S = %q, want ...", e.Pattern)
		}
	}
}
