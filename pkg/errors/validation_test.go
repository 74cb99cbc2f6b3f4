package errors

import (
	"strings"
	"testing"
)

func TestValidateData(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "hello", false},
		{"multi line", "hello\nworld", false},
		{"url", "https://example.com/?q=1", false},
		{"max length", strings.Repeat("a", MaxDataLength), false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxDataLength+1), true},
		{"invalid utf8", "foo\xffbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateData(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateData(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateData(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ansi black", "0", false},
		{"ansi white", "15", false},
		{"ansi 256", "255", false},
		{"hex short", "#fff", false},
		{"hex long", "#1a2B3c", false},

		{"empty", "", true},
		{"out of range", "256", true},
		{"negative", "-1", true},
		{"name", "white", true},
		{"bad hex", "#ggg", true},
		{"hex wrong length", "#abcd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBorder(t *testing.T) {
	if err := ValidateBorder(0); err != nil {
		t.Errorf("ValidateBorder(0) = %v, want nil", err)
	}
	if err := ValidateBorder(4); err != nil {
		t.Errorf("ValidateBorder(4) = %v, want nil", err)
	}
	if err := ValidateBorder(-1); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("ValidateBorder(-1) = %v, want %v", err, ErrCodeInvalidInput)
	}
}
