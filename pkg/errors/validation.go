package errors

import (
	"strings"
	"unicode"
)

// Tape geometry bounds.
const (
	// MinLevel and MaxLevel bound the number of data holes per row.
	MinLevel = 1
	MaxLevel = 8
)

// ValidateLevel checks that a tape level is within the punchable range.
func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return New(ErrCodeInvalidLevel, "level %d out of range [%d, %d]", level, MinLevel, MaxLevel)
	}
	return nil
}

// ValidateSprocketPos checks the sprocket position against the tape level.
// A position equal to level (one past the last data bit) is allowed: the
// emitter collapses it to the extreme edge.
func ValidateSprocketPos(pos, level int) error {
	if pos < 0 || pos > level {
		return New(ErrCodeInvalidSprocket, "sprocket position %d out of range [0, %d]", pos, level)
	}
	return nil
}

// ValidateRowsPerSegment checks the cutting-mat bound.
func ValidateRowsPerSegment(rows int) error {
	if rows <= 0 {
		return New(ErrCodeInvalidSegment, "rows per segment must be positive, got %d", rows)
	}
	return nil
}

// ValidateSegmentGap checks the inter-segment spacing.
func ValidateSegmentGap(gap float64) error {
	if gap < 0 {
		return New(ErrCodeInvalidSegment, "segment gap cannot be negative, got %g", gap)
	}
	return nil
}

// ValidateOutputPath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateProfileName validates a named tape profile from the config file.
// Profile names are simple identifiers, never paths.
func ValidateProfileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProfile, "profile name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidProfile, "profile name cannot contain path separators")
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidProfile, "profile name contains invalid characters")
		}
	}
	return nil
}
