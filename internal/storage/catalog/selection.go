package catalog

import (
	"fmt"

	"concertPlanner/internal/models"
)

// ByTickets returns the smallest venue that holds tickets. ok is false when
// the estimate is larger than every venue; callers fall back to ByIndex.
func (c *Catalog) ByTickets(tickets int) (venue models.Venue, ok bool) {
	for _, v := range c.ByCapacity() {
		if tickets <= v.Capacity {
			return v, true
		}
	}

	return models.Venue{}, false
}

// ByIndex picks the i-th venue (1-based) of the ByCapacity listing.
func (c *Catalog) ByIndex(i int) (models.Venue, error) {
	const op = "storage.catalog.ByIndex"

	if i < 1 || i > len(c.venues) {
		return models.Venue{}, fmt.Errorf("%s: %w: %d not in [1, %d]", op, ErrIndexOutOfRange, i, len(c.venues))
	}

	return c.ByCapacity()[i-1], nil
}

// CapAttendance limits a ticket estimate to what venue can hold.
func CapAttendance(tickets int, venue models.Venue) int {
	return min(tickets, venue.Capacity)
}
