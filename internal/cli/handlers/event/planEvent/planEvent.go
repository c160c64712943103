package planEvent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"concertPlanner/internal/lib/console"
	"concertPlanner/internal/lib/logger/sl"
	"concertPlanner/internal/models"
	"concertPlanner/internal/report"
	"concertPlanner/internal/storage/catalog"
)

var ErrNoVenues = errors.New("no venues available")

type VenueProvider interface {
	ByCapacity() []models.Venue
	ByTickets(tickets int) (models.Venue, bool)
	ByIndex(i int) (models.Venue, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventAdder
type EventAdder interface {
	Add(e models.Event)
}

type Options struct {
	Printer            *report.Printer
	DefaultFeesPercent float64
	PlaceholderArtist  string
}

func New(log *slog.Logger, venues VenueProvider, events EventAdder, opts Options) console.HandlerFunc {
	return func(ctx context.Context, c *console.Console) error {
		const op = "handlers.event.planEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		opts.Printer.Heading(c.Out(), "Plan a New Event")

		venue, attendance, err := chooseVenue(log, c, venues, opts.Printer)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		log.Debug("venue chosen", slog.String("venue", venue.Name), slog.Int("attendance", attendance))

		params, err := askParams(c, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		params.ExpectedAttendance = attendance

		event, err := models.NewEvent(venue, params)
		if err != nil {
			log.Error("failed to build event", sl.Err(err))
			c.Println("Could not plan this event:", err)

			return nil
		}

		events.Add(event)

		log.Info("event planned",
			slog.String("id", event.ID.String()),
			slog.String("venue", event.VenueName),
			slog.String("date", models.FormatDate(event.Date)),
			slog.Float64("profit", event.Profit()),
		)

		opts.Printer.Summary(c.Out(), venue, event)

		return nil
	}
}

func chooseVenue(log *slog.Logger, c *console.Console, venues VenueProvider, pr *report.Printer) (models.Venue, int, error) {
	mode, err := c.Line("Choose venue selection mode: [A]uto by tickets / [M]anual pick: ")
	if err != nil {
		return models.Venue{}, 0, err
	}

	if strings.EqualFold(mode, "a") {
		tickets, err := c.Int("Estimated tickets the artist can sell: ", console.AtLeast(1))
		if err != nil {
			return models.Venue{}, 0, err
		}

		venue, ok := venues.ByTickets(tickets)
		if !ok {
			log.Info("no venue fits ticket estimate", slog.Int("tickets", tickets))
			c.Println("No venue can accommodate this attendance! Try another estimate or choose a different market.")

			venue, err = pickFromMenu(c, venues, pr)
			if err != nil {
				return models.Venue{}, 0, err
			}
		}

		return venue, catalog.CapAttendance(tickets, venue), nil
	}

	venue, err := pickFromMenu(c, venues, pr)
	if err != nil {
		return models.Venue{}, 0, err
	}

	attendance, err := c.Int(
		fmt.Sprintf("Expected attendance (<= %d): ", venue.Capacity),
		console.Between(1, venue.Capacity),
	)
	if err != nil {
		return models.Venue{}, 0, err
	}

	return venue, attendance, nil
}

func pickFromMenu(c *console.Console, venues VenueProvider, pr *report.Printer) (models.Venue, error) {
	listed := venues.ByCapacity()
	if len(listed) == 0 {
		return models.Venue{}, ErrNoVenues
	}

	pr.VenueMenu(c.Out(), listed)

	choice, err := c.Int("Select a venue by number: ", console.Between(1, len(listed)))
	if err != nil {
		return models.Venue{}, err
	}

	return venues.ByIndex(choice)
}

func askParams(c *console.Console, opts Options) (models.EventParams, error) {
	var p models.EventParams
	var err error

	if p.ArtistName, err = c.Line("Artist name: "); err != nil {
		return p, err
	}
	if p.ArtistName == "" {
		p.ArtistName = opts.PlaceholderArtist
	}

	if p.Date, err = c.Date("Event date (YYYY-MM-DD): "); err != nil {
		return p, err
	}
	if p.ArtistCost, err = c.Float("Artist Cost ($): ", 0); err != nil {
		return p, err
	}
	if p.OperationsCost, err = c.Float("Operations Cost ($): ", 0); err != nil {
		return p, err
	}

	fees, err := c.FloatDefault(
		fmt.Sprintf("Fees percent (ex. 0.10 for 10%%, blank for %s): ", opts.Printer.Percent(opts.DefaultFeesPercent)),
		0, opts.DefaultFeesPercent,
	)
	if err != nil {
		return p, err
	}
	p.FeesPercent = &fees

	if p.MerchSpendPerHead, err = c.FloatDefault("Merch spend per attendee ($, blank for none): ", 0, 0); err != nil {
		return p, err
	}
	if p.TicketPrice, err = c.Float("Ticket Price Average($): ", 0); err != nil {
		return p, err
	}

	return p, nil
}
