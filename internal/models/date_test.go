package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "Valid", input: "2024-05-01", expected: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Surrounding space", input: "  2024-03-10\n", expected: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Leap day", input: "2024-02-29", expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "Not a leap year", input: "2023-02-29", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Wrong order", input: "05-01-2024", wantErr: true},
		{name: "With time", input: "2024-05-01T10:00:00Z", wantErr: true},
		{name: "Garbage", input: "tomorrow", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, err := ParseDate(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(d))
			assert.Equal(t, FormatDate(tc.expected), FormatDate(d))
		})
	}
}
