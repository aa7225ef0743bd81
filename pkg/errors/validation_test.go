package errors

import "testing"

func TestValidateLevel(t *testing.T) {
	for _, level := range []int{1, 2, 5, 8} {
		if err := ValidateLevel(level); err != nil {
			t.Errorf("ValidateLevel(%d) = %v, want nil", level, err)
		}
	}
	for _, level := range []int{0, -1, 9, 100} {
		if err := ValidateLevel(level); !Is(err, ErrCodeInvalidLevel) {
			t.Errorf("ValidateLevel(%d) = %v, want INVALID_LEVEL", level, err)
		}
	}
}

func TestValidateSprocketPos(t *testing.T) {
	tests := []struct {
		pos, level int
		ok         bool
	}{
		{0, 8, true},
		{3, 8, true},
		{8, 8, true}, // one past the last bit collapses to the edge
		{2, 5, true},
		{-1, 8, false},
		{9, 8, false},
		{6, 5, false},
	}
	for _, tt := range tests {
		err := ValidateSprocketPos(tt.pos, tt.level)
		if tt.ok && err != nil {
			t.Errorf("ValidateSprocketPos(%d, %d) = %v, want nil", tt.pos, tt.level, err)
		}
		if !tt.ok && !Is(err, ErrCodeInvalidSprocket) {
			t.Errorf("ValidateSprocketPos(%d, %d) = %v, want INVALID_SPROCKET", tt.pos, tt.level, err)
		}
	}
}

func TestValidateRowsPerSegment(t *testing.T) {
	if err := ValidateRowsPerSegment(350); err != nil {
		t.Errorf("expected 350 to validate, got %v", err)
	}
	for _, n := range []int{0, -5} {
		if err := ValidateRowsPerSegment(n); !Is(err, ErrCodeInvalidSegment) {
			t.Errorf("ValidateRowsPerSegment(%d) = %v, want INVALID_SEGMENT", n, err)
		}
	}
}

func TestValidateSegmentGap(t *testing.T) {
	if err := ValidateSegmentGap(5.0); err != nil {
		t.Errorf("expected 5.0 to validate, got %v", err)
	}
	if err := ValidateSegmentGap(-0.1); !Is(err, ErrCodeInvalidSegment) {
		t.Errorf("expected INVALID_SEGMENT, got %v", err)
	}
}

func TestValidateOutputPath(t *testing.T) {
	valid := []string{"tape.dxf", "out/tape.dxf", "/tmp/tape.dxf"}
	for _, p := range valid {
		if err := ValidateOutputPath(p); err != nil {
			t.Errorf("ValidateOutputPath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "bad\x00path.dxf", string(make([]byte, 501))}
	for _, p := range invalid {
		if err := ValidateOutputPath(p); !Is(err, ErrCodeInvalidPath) {
			t.Errorf("ValidateOutputPath(%q) = %v, want INVALID_PATH", p, err)
		}
	}
}

func TestValidateProfileName(t *testing.T) {
	for _, name := range []string{"teletype", "morse-2level", "ascii_8"} {
		if err := ValidateProfileName(name); err != nil {
			t.Errorf("ValidateProfileName(%q) = %v, want nil", name, err)
		}
	}
	for _, name := range []string{"", "a/b", "a\\b", "has space", "ctl\x01"} {
		if err := ValidateProfileName(name); !Is(err, ErrCodeInvalidProfile) {
			t.Errorf("ValidateProfileName(%q) = %v, want INVALID_PROFILE", name, err)
		}
	}
}
