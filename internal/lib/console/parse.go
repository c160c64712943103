package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotInteger = errors.New("not a whole integer")
	ErrNotNumber  = errors.New("not a real number")
	ErrTooSmall   = errors.New("value below minimum")
	ErrTooLarge   = errors.New("value above maximum")
)

// IntRange bounds an integer prompt. Nil ends are open.
type IntRange struct {
	Min *int
	Max *int
}

func AtLeast(lo int) IntRange {
	return IntRange{Min: &lo}
}

func Between(lo, hi int) IntRange {
	return IntRange{Min: &lo, Max: &hi}
}

// ParseInt parses s and checks it against r.
func ParseInt(s string, r IntRange) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotInteger
	}

	if r.Min != nil && v < *r.Min {
		return v, fmt.Errorf("%w: %d", ErrTooSmall, *r.Min)
	}
	if r.Max != nil && v > *r.Max {
		return v, fmt.Errorf("%w: %d", ErrTooLarge, *r.Max)
	}

	return v, nil
}

// ParseFloat parses a finite number not below floor.
func ParseFloat(s string, floor float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumber
	}

	if v < floor {
		return v, fmt.Errorf("%w: %s", ErrTooSmall, formatFloat(floor))
	}

	return v, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
