package models

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = time.DateOnly

// ParseDate parses a YYYY-MM-DD calendar date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	const op = "models.ParseDate"

	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w: %q", op, ErrInvalidDate, s)
	}

	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
