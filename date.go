package mdpdf

import (
	"fmt"
	"time"

	"github.com/alnah/go-mdpdf/internal/dateutil"
)

// ResolveDate handles the document date syntax and returns the date as it
// is displayed:
//   - "" → ""
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → current date using named preset (iso, european, us, long)
//   - "YYYY-MM-DD" → unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	d, err := resolveDate(value, t)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// resolveDate parses value and tags failures with ErrInvalidDate.
func resolveDate(value string, now time.Time) (dateutil.Date, error) {
	d, err := dateutil.ParseDate(value, now)
	if err != nil {
		return dateutil.Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return d, nil
}
