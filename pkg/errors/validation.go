package errors

import (
	"math"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Input limits.
const (
	// MaxValues caps the number of keys in one request. Deeper trees stop
	// fitting any reasonable frame long before this.
	MaxValues = 512

	// MaxDimension caps frame width and height.
	MaxDimension = 10000.0

	// MaxScriptLength caps heap operation scripts.
	MaxScriptLength = 16 * 1024
)

// ValidateValues checks a key list for size and finiteness.
func ValidateValues(values []float64) error {
	if len(values) > MaxValues {
		return New(ErrCodeInvalidInput, "too many values (max %d, got %d)", MaxValues, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "value %d is not a finite number", i)
		}
	}
	return nil
}

// ValidateDimensions checks frame size. Zero means "use the default".
func ValidateDimensions(width, height float64) error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", width}, {"height", height}} {
		if d.v < 0 || d.v > MaxDimension || math.IsNaN(d.v) {
			return New(ErrCodeInvalidInput, "%s must be between 0 and %.0f", d.name, MaxDimension)
		}
	}
	return nil
}

// ValidateScript checks a heap operation script for length and stray
// control characters. Newlines and tabs are allowed as separators.
func ValidateScript(script string) error {
	if len(script) > MaxScriptLength {
		return New(ErrCodeInvalidInput, "script too long (max %d bytes)", MaxScriptLength)
	}
	for _, r := range script {
		if unicode.IsControl(r) && !strings.ContainsRune("\n\r\t", r) {
			return New(ErrCodeInvalidInput, "script contains invalid control characters")
		}
	}
	return nil
}

// ValidateShareID checks that id is a canonical UUID.
func ValidateShareID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "share id cannot be empty")
	}
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != strings.ToLower(id) {
		return New(ErrCodeInvalidInput, "invalid share id: %q", id)
	}
	return nil
}
