package report

import (
	"bytes"
	"testing"
	"time"

	"concertPlanner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrinter(t *testing.T) *Printer {
	t.Helper()

	pr, err := NewPrinter("en-US", false)
	require.NoError(t, err)

	return pr
}

func TestNewPrinterBadLocale(t *testing.T) {
	t.Parallel()

	_, err := NewPrinter("not a locale!", false)
	require.Error(t, err)
}

func TestMoney(t *testing.T) {
	t.Parallel()

	pr := newTestPrinter(t)

	testCases := []struct {
		name     string
		value    float64
		expected string
		whole    string
	}{
		{name: "Zero", value: 0, expected: "$0.00", whole: "$0"},
		{name: "Cents", value: 35.6, expected: "$35.60", whole: "$36"},
		{name: "Thousands", value: 1234.56, expected: "$1,234.56", whole: "$1,235"},
		{name: "Millions", value: 2500000, expected: "$2,500,000.00", whole: "$2,500,000"},
		{name: "Negative", value: -12, expected: "-$12.00", whole: "-$12"},
		{name: "Tiny negative", value: -0.001, expected: "$0.00", whole: "$0"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, pr.Money(tc.value))
			assert.Equal(t, tc.whole, pr.WholeMoney(tc.value))
		})
	}
}

func TestPercent(t *testing.T) {
	t.Parallel()

	pr := newTestPrinter(t)

	assert.Equal(t, "10.0%", pr.Percent(0.10))
	assert.Equal(t, "12.5%", pr.Percent(0.125))
	assert.Equal(t, "0.0%", pr.Percent(0))
}

func testEvent() (models.Venue, models.Event) {
	venue := models.Venue{Name: "9:30 Club", Capacity: 1200, RentalCost: 12000, City: "Washington, DC"}

	return venue, models.Event{
		Date:               time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		VenueName:          venue.Name,
		ArtistName:         "Japanese Breakfast",
		ExpectedAttendance: 1000,
		TicketPrice:        40,
		ArtistCost:         15000,
		OperationsCost:     3000,
		RentalCost:         12000,
		FeesPercent:        0.10,
		MerchSpendPerHead:  8,
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	pr := newTestPrinter(t)
	venue, e := testEvent()

	var buf bytes.Buffer
	pr.Summary(&buf, venue, e)

	out := buf.String()
	assert.Contains(t, out, "--- Event Summary ---")
	assert.Contains(t, out, "Venue: 9:30 Club (capacity 1,200, rental $12,000)")
	assert.Contains(t, out, "Artist: Japanese Breakfast on 2024-05-01 — expected attendance: 1,000")
	assert.Contains(t, out, "Ticket price: $40.00")
	assert.Contains(t, out, "Ticket gross: $40,000.00")
	assert.Contains(t, out, "Fees (10.0%): $4,000.00")
	assert.Contains(t, out, "Merch gross: $8,000.00")
	assert.Contains(t, out, "Costs (artist + operational costs + rental + fees): $34,000.00")
	assert.Contains(t, out, "Total revenue: $48,000.00")
	assert.Contains(t, out, "Profit: $14,000.00")
}

func TestEventLine(t *testing.T) {
	t.Parallel()

	pr := newTestPrinter(t)
	venue, e := testEvent()

	assert.Equal(t,
		"2024-05-01 — 9:30 Club — Japanese Breakfast — 1,000/1,200 — price $40.00 — profit $14,000.00",
		pr.EventLine(e, venue, true),
	)

	assert.Equal(t,
		"2024-05-01 — 9:30 Club — Japanese Breakfast — 1,000/? — price $40.00 — profit $14,000.00",
		pr.EventLine(e, models.Venue{}, false),
	)
}

func TestVenueMenu(t *testing.T) {
	t.Parallel()

	pr := newTestPrinter(t)

	var buf bytes.Buffer
	pr.VenueMenu(&buf, []models.Venue{
		{Name: "Jammin Java", Capacity: 200, RentalCost: 2500, City: "Vienna, VA"},
		{Name: "Echostage", Capacity: 3000, RentalCost: 24000, City: "Washington, DC"},
	})

	assert.Equal(t, "\nAvailable Venues:\n"+
		"1. Jammin Java — capacity 200 — rental $2,500 — Vienna, VA\n"+
		"2. Echostage — capacity 3,000 — rental $24,000 — Washington, DC\n",
		buf.String())
}
