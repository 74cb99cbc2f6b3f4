package errors

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxDataLength bounds payloads accepted from the CLI and HTTP server.
// The largest QR symbol holds 2953 bytes, so anything longer cannot encode.
const MaxDataLength = 2953

// ValidateData checks that a payload is worth handing to the encoder.
//
// The validation rules:
//   - No empty payloads
//   - Valid UTF-8
//   - At most MaxDataLength bytes
func ValidateData(data string) error {
	if data == "" {
		return New(ErrCodeInvalidInput, "data cannot be empty")
	}

	if !utf8.ValidString(data) {
		return New(ErrCodeInvalidInput, "data is not valid UTF-8")
	}

	if len(data) > MaxDataLength {
		return New(ErrCodeInvalidInput, "data too long (%d bytes, max %d)", len(data), MaxDataLength)
	}

	return nil
}

// ValidateColor checks a lipgloss color string: an ANSI index 0-255 or a
// #rgb / #rrggbb hex triplet.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if strings.HasPrefix(color, "#") {
		hex := color[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
		}
		return nil
	}

	n, err := strconv.Atoi(color)
	if err != nil || n < 0 || n > 255 {
		return New(ErrCodeInvalidColor, "invalid ANSI color: %q (must be 0-255 or #rrggbb)", color)
	}

	return nil
}

// ValidateBorder checks a quiet-zone width.
func ValidateBorder(width int) error {
	if width < 0 {
		return New(ErrCodeInvalidInput, "border width cannot be negative: %d", width)
	}
	return nil
}
