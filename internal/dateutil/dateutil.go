// Package dateutil resolves document dates and their display formats.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for date handling.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDate       = errors.New("invalid date")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10) // Pre-allocate with some buffer

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			// Copy content inside brackets literally
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2 // Skip past closing bracket
			continue
		}

		matched := false

		// Try to match tokens (longest first due to slice order)
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Preserve literal character
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// Date is a resolved document date and the layout used to display it.
type Date struct {
	Time   time.Time
	Layout string // Go time layout
}

// IsZero reports whether no date was set.
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// String formats the date with its layout, or returns "" for a zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format(d.Layout)
}

// ParseDate resolves a document date value:
//   - "" → zero Date
//   - "auto" → now, displayed as YYYY-MM-DD
//   - "auto:FORMAT" or "auto:preset" → now, displayed with FORMAT
//   - "YYYY-MM-DD" → that day at midnight UTC
//
// The now parameter allows injecting a fixed time for testing.
func ParseDate(value string, now time.Time) (Date, error) {
	if value == "" {
		return Date{}, nil
	}

	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		goFmt, err := ParseDateFormat(DefaultDateFormat)
		if err != nil {
			return Date{}, err
		}
		t, err := time.ParseInLocation(goFmt, value, time.UTC)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q, use %s or \"auto\"", ErrInvalidDate, value, DefaultDateFormat)
		}
		return Date{Time: t, Layout: goFmt}, nil
	}

	format := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		format = value[len("auto:"):] // keep original case for tokens
		if format == "" {
			return Date{}, fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		return Date{}, fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	goFmt, err := ParseDateFormat(format)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: now, Layout: goFmt}, nil
}
