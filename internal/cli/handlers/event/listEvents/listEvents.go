package listEvents

import (
	"context"
	"log/slog"

	"concertPlanner/internal/lib/console"
	"concertPlanner/internal/lib/logger/sl"
	"concertPlanner/internal/models"
	"concertPlanner/internal/report"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListSorted() []models.Event
}

type VenueGetter interface {
	Get(name string) (models.Venue, error)
}

func New(log *slog.Logger, events EventLister, venues VenueGetter, pr *report.Printer) console.HandlerFunc {
	return func(ctx context.Context, c *console.Console) error {
		const op = "handlers.event.listEvents.New"

		log := log.With(slog.String("op", op))

		listed := events.ListSorted()
		if len(listed) == 0 {
			c.Println("\nNo events have been scheduled yet.")
			return nil
		}

		pr.Heading(c.Out(), "Scheduled Events")

		for _, e := range listed {
			venue, err := venues.Get(e.VenueName)
			if err != nil {
				log.Warn("event venue missing from catalog", slog.String("id", e.ID.String()), sl.Err(err))
			}

			c.Println(pr.EventLine(e, venue, err == nil))
		}

		log.Debug("events listed", slog.Int("count", len(listed)))

		return nil
	}
}
