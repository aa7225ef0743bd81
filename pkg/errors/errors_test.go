package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidLevel, "test message: %s", "value")

	if err.Code != ErrCodeInvalidLevel {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidLevel)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_LEVEL: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeWriteFailed, cause, "failed to save")

	if err.Code != ErrCodeWriteFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeWriteFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidLevel, "test"),
			code:     ErrCodeInvalidLevel,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidLevel, "test"),
			code:     ErrCodeNoInput,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInvalidLevel,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeWriteFailed, errors.New("io"), "save"),
			code:     ErrCodeWriteFailed,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNoInput, "nothing")); got != ErrCodeNoInput {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeNoInput)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeNoInput, "nothing to generate")); got != "nothing to generate" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
