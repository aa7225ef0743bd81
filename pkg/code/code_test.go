package code

import (
	"reflect"
	"testing"
)

func TestASCII_PassThrough(t *testing.T) {
	syms := ASCII{TapeLevel: 8}.Encode([]byte("A"))
	if len(syms) != 1 {
		t.Fatalf("expected 1 symbol, got %d", len(syms))
	}
	if syms[0] != 0x41 {
		t.Errorf("expected 0x41, got 0x%02X", uint16(syms[0]))
	}
}

func TestASCII_MasksToLevel(t *testing.T) {
	syms := ASCII{TapeLevel: 5}.Encode([]byte{0xFF})
	if syms[0] != 0b11111 {
		t.Errorf("expected low 5 bits only, got %05b", uint16(syms[0]))
	}
}

func TestSymbol_Bits(t *testing.T) {
	s := Symbol(0x41)
	if got := s.Popcount(); got != 2 {
		t.Errorf("popcount: expected 2, got %d", got)
	}
	if !s.Bit(0) || !s.Bit(6) || s.Bit(3) {
		t.Errorf("bit pattern wrong for 0x41")
	}
}

func TestBaudot_ShiftCodes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Symbol
	}{
		{
			// One FIGS before the digit, one LTRS after it.
			name:  "letter digit letter",
			input: "A1B",
			want:  []Symbol{0b00011, ita2Figures, 0b10111, ita2Letters, 0b11001},
		},
		{
			name:  "consecutive letters need no shifts",
			input: "AB",
			want:  []Symbol{0b00011, 0b11001},
		},
		{
			name:  "consecutive digits share one shift",
			input: "12",
			want:  []Symbol{ita2Figures, 0b10111, 0b10011},
		},
		{
			name:  "space is shift-invariant",
			input: "1 2",
			want:  []Symbol{ita2Figures, 0b10111, 0b00100, 0b10011},
		},
		{
			name:  "lowercase is upcased",
			input: "e",
			want:  []Symbol{0b00001},
		},
		{
			name:  "unsupported runes are dropped",
			input: "A\x7fB",
			want:  []Symbol{0b00011, 0b11001},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Baudot{}.Encode([]byte(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Encode(%q) = %05b, want %05b", tt.input, got, tt.want)
			}
		})
	}
}

func TestBaudot_ForcesGeometry(t *testing.T) {
	if got := (Baudot{}).Level(); got != 5 {
		t.Errorf("level: expected 5, got %d", got)
	}
	if got := (Baudot{}).SprocketPos(); got != 2 {
		t.Errorf("sprocket: expected 2, got %d", got)
	}
}

func TestWheatstone_SingleDot(t *testing.T) {
	// "E" is a single dot: one pulse row plus one terminator row.
	syms := Wheatstone{}.Encode([]byte("E"))
	want := []Symbol{bothChans, advance}
	if !reflect.DeepEqual(syms, want) {
		t.Errorf("Encode(E) = %02b, want %02b", syms, want)
	}
}

func TestWheatstone_DashSpansTwoRows(t *testing.T) {
	// "T" is a single dash: channel A, channel B, terminator.
	syms := Wheatstone{}.Encode([]byte("T"))
	want := []Symbol{chanA, chanB, advance}
	if !reflect.DeepEqual(syms, want) {
		t.Errorf("Encode(T) = %02b, want %02b", syms, want)
	}
}

func TestWheatstone_WhitespaceIsSingleAdvance(t *testing.T) {
	syms := Wheatstone{}.Encode([]byte("E E"))
	want := []Symbol{bothChans, advance, advance, bothChans, advance}
	if !reflect.DeepEqual(syms, want) {
		t.Errorf("Encode(\"E E\") = %02b, want %02b", syms, want)
	}
}

func TestCableCode_ShortAndLong(t *testing.T) {
	// "A" is dot dash: short pulse, long pulse, separator.
	syms := CableCode{}.Encode([]byte("A"))
	want := []Symbol{chanA, chanB, advance}
	if !reflect.DeepEqual(syms, want) {
		t.Errorf("Encode(A) = %02b, want %02b", syms, want)
	}
}

func TestMorse_DropsUnsupported(t *testing.T) {
	for _, enc := range []Encoder{Wheatstone{}, CableCode{}} {
		if syms := enc.Encode([]byte("~")); len(syms) != 0 {
			t.Errorf("%T: expected unsupported rune to vanish, got %d symbols", enc, len(syms))
		}
	}
}

func TestBannerColumns(t *testing.T) {
	// "I" trims to three columns plus one spacing column.
	cols := BannerColumns("I")
	want := []byte{0x41, 0x7F, 0x41, 0x00}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("BannerColumns(I) = %#v, want %#v", cols, want)
	}
}

func TestBannerColumns_FoldsAndSkips(t *testing.T) {
	if got, want := BannerColumns("i"), BannerColumns("I"); !reflect.DeepEqual(got, want) {
		t.Errorf("lowercase should render as uppercase")
	}
	if got := BannerColumns("\x80é"); len(got) != 0 {
		t.Errorf("non-ASCII should be skipped, got %d columns", len(got))
	}
	if got := BannerColumns(" "); len(got) != spaceWidth {
		t.Errorf("space should advance %d columns, got %d", spaceWidth, len(got))
	}
}

func TestBannerColumns_NarrowGlyph(t *testing.T) {
	cols := BannerColumns("!")
	want := []byte{0x5F, 0x00}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("BannerColumns(!) = %#v, want %#v", cols, want)
	}
}
