package removeEvent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"concertPlanner/internal/lib/console"
	"concertPlanner/internal/lib/logger/sl"
	"concertPlanner/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRemover
type EventRemover interface {
	RemoveByDate(date time.Time) (models.Event, bool)
	Len() int
}

// New removes the first event held on the date the user enters. list is run
// first so the user can see what is scheduled.
func New(log *slog.Logger, events EventRemover, list console.HandlerFunc) console.HandlerFunc {
	return func(ctx context.Context, c *console.Console) error {
		const op = "handlers.event.removeEvent.New"

		log := log.With(slog.String("op", op))

		if err := list(ctx, c); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if events.Len() == 0 {
			return nil
		}

		answer, err := c.Line("Enter date (YYYY-MM-DD) of the event to remove: ")
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		date, err := models.ParseDate(answer)
		if err != nil {
			if errors.Is(err, models.ErrInvalidDate) {
				log.Info("invalid removal date", sl.Err(err))
				c.Println("Invalid date format.")

				return nil
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		removed, ok := events.RemoveByDate(date)
		if !ok {
			log.Info("nothing removed", slog.String("date", models.FormatDate(date)))
			c.Println("No event was found on that specific date.")

			return nil
		}

		log.Info("event removed",
			slog.String("id", removed.ID.String()),
			slog.String("venue", removed.VenueName),
			slog.String("date", models.FormatDate(removed.Date)),
		)

		c.Printf("Removed event on %s at %s.\n", models.FormatDate(date), removed.VenueName)

		return nil
	}
}
