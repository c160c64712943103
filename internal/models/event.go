package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	DefaultFeesPercent = 0.10
	UnknownArtist      = "Unknown Artist"
)

// Event is one planned concert. It is never edited in place: correcting an
// event means removing it from the ledger and adding a new one.
type Event struct {
	ID                 uuid.UUID
	Date               time.Time
	VenueName          string
	ArtistName         string
	ExpectedAttendance int
	TicketPrice        float64
	ArtistCost         float64
	OperationsCost     float64
	RentalCost         float64
	FeesPercent        float64
	MerchSpendPerHead  float64
}

// EventParams holds the user supplied inputs for NewEvent. A nil FeesPercent
// means DefaultFeesPercent; MerchSpendPerHead defaults to zero.
type EventParams struct {
	Date               time.Time `validate:"required"`
	ArtistName         string
	ExpectedAttendance int      `validate:"gte=1"`
	TicketPrice        float64  `validate:"gte=0,finite"`
	ArtistCost         float64  `validate:"gte=0,finite"`
	OperationsCost     float64  `validate:"gte=0,finite"`
	FeesPercent        *float64 `validate:"omitempty,gte=0,finite"`
	MerchSpendPerHead  float64  `validate:"gte=0,finite"`
}

// NewEvent builds an Event at venue. The venue's rental cost is copied into
// the event; later lookups of capacity or city go back to the catalog.
func NewEvent(venue Venue, p EventParams) (Event, error) {
	const op = "models.NewEvent"

	if err := validate.Struct(p); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			return Event{}, fmt.Errorf("%s: %w: %s", op, ErrInvalidEventParams, validateErr.Error())
		}

		return Event{}, fmt.Errorf("%s: %w", op, err)
	}

	if p.ExpectedAttendance > venue.Capacity {
		return Event{}, fmt.Errorf("%s: %w: %d > %d at %s",
			op, ErrOverCapacity, p.ExpectedAttendance, venue.Capacity, venue.Name)
	}

	artist := strings.TrimSpace(p.ArtistName)
	if artist == "" {
		artist = UnknownArtist
	}

	fees := DefaultFeesPercent
	if p.FeesPercent != nil {
		fees = *p.FeesPercent
	}

	return Event{
		ID:                 uuid.New(),
		Date:               p.Date,
		VenueName:          venue.Name,
		ArtistName:         artist,
		ExpectedAttendance: p.ExpectedAttendance,
		TicketPrice:        p.TicketPrice,
		ArtistCost:         p.ArtistCost,
		OperationsCost:     p.OperationsCost,
		RentalCost:         venue.RentalCost,
		FeesPercent:        fees,
		MerchSpendPerHead:  p.MerchSpendPerHead,
	}, nil
}

func (e Event) TicketGross() float64 {
	return float64(e.ExpectedAttendance) * e.TicketPrice
}

// FeesTotal applies FeesPercent to ticket gross only; merch is not charged.
func (e Event) FeesTotal() float64 {
	return e.TicketGross() * e.FeesPercent
}

func (e Event) MerchGross() float64 {
	return float64(e.ExpectedAttendance) * e.MerchSpendPerHead
}

func (e Event) TotalRevenue() float64 {
	return e.TicketGross() + e.MerchGross()
}

func (e Event) TotalCosts() float64 {
	return e.ArtistCost + e.OperationsCost + e.RentalCost + e.FeesTotal()
}

func (e Event) Profit() float64 {
	return e.TotalRevenue() - e.TotalCosts()
}
