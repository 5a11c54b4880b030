package errors

import (
	"strings"
	"time"
	"unicode"
)

// ValidateDuration rejects negative transition durations.
// Zero is valid and means "snap to target on the next tick".
func ValidateDuration(d time.Duration) error {
	if d < 0 {
		return New(ErrCodeInvalidArgument, "duration must not be negative, got %s", d)
	}
	return nil
}

// ValidateCount checks that n elements can be taken from a dataset holding
// available records.
func ValidateCount(n, available int) error {
	if n < 0 {
		return New(ErrCodeInvalidArgument, "element count must not be negative, got %d", n)
	}
	if n > available {
		return New(ErrCodeConfiguration, "dataset has %d records, %d requested", available, n)
	}
	return nil
}

// ValidateLabel validates a display label (an element symbol).
//
// The validation rules are:
//   - No empty labels
//   - No control characters
//   - Maximum length of 16 characters
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return New(ErrCodeInvalidFormat, "label cannot be empty")
	}

	if len(label) > 16 {
		return New(ErrCodeInvalidFormat, "label too long (max 16 characters): %q", label)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFormat, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a file path supplied on the command line or in a
// config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
