package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"concertPlanner/internal/lib/console"
	"concertPlanner/internal/lib/logger/sl"
)

const (
	banner  = "\nWelcome! Please select the four options below to book a show!"
	goodbye = "Goodbye And Thank You For Using Our Platform!"
)

type Item struct {
	Label  string
	Action console.HandlerFunc
}

// Run shows the main menu until the user quits, input ends or ctx is
// cancelled. Items are numbered from 1; the quit option comes last.
func Run(ctx context.Context, log *slog.Logger, c *console.Console, items []Item) error {
	const op = "cli.menu.Run"

	log = log.With(slog.String("op", op))
	quit := strconv.Itoa(len(items) + 1)

	for {
		if ctx.Err() != nil {
			log.Info("menu stopped", slog.String("reason", ctx.Err().Error()))
			return nil
		}

		c.Println("\n--- Concert Event Planner ---")
		c.Println(banner)
		for i, item := range items {
			c.Printf("%d. %s\n", i+1, item.Label)
		}
		c.Printf("%s. Quit\n", quit)

		choice, err := c.Line("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.Println()
				c.Println(goodbye)
				return nil
			}
			return fmt.Errorf("%s: %w", op, err)
		}

		if choice == quit {
			c.Println(goodbye)
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(items) {
			c.Println("Invalid choice, please try again.")
			continue
		}

		item := items[n-1]
		log.Debug("menu option selected", slog.String("option", item.Label))

		if err = item.Action(ctx, c); err != nil {
			switch {
			case errors.Is(err, io.EOF):
				c.Println()
				c.Println(goodbye)
				return nil
			case errors.Is(err, context.Canceled):
				return nil
			default:
				log.Error("menu action failed", slog.String("option", item.Label), sl.Err(err))
				c.Println("Something went wrong, please try again.")
			}
		}
	}
}
