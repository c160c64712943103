package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"concertPlanner/internal/cli/handlers/event/listEvents"
	"concertPlanner/internal/cli/handlers/event/planEvent"
	"concertPlanner/internal/cli/handlers/event/removeEvent"
	"concertPlanner/internal/cli/menu"
	"concertPlanner/internal/config"
	"concertPlanner/internal/lib/console"
	"concertPlanner/internal/lib/logger/handlers/slogpretty"
	"concertPlanner/internal/lib/logger/sl"
	"concertPlanner/internal/report"
	"concertPlanner/internal/storage/catalog"
	"concertPlanner/internal/storage/memory"
)

func main() {
	cfg := config.MustLoad()

	logOut, closeLog, err := openLogOutput(cfg.LogPath)
	if err != nil {
		slog.Error("failed to open log file", slog.String("path", cfg.LogPath), sl.Err(err))
		os.Exit(1)
	}
	defer closeLog()

	log := setupLogger(cfg.Env, logOut)

	log.Info("starting concert planner", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	venues := catalog.Default()
	if cfg.VenuesPath != "" {
		venues, err = catalog.Load(cfg.VenuesPath)
		if err != nil {
			log.Error("failed to load venue catalog", sl.Err(err))
			os.Exit(1)
		}
	}

	log.Info("venue catalog ready", slog.Int("venues", venues.Len()))

	printer, err := report.NewPrinter(cfg.Locale, !cfg.NoColor)
	if err != nil {
		log.Error("failed to init report printer", sl.Err(err))
		os.Exit(1)
	}

	ledger := memory.NewLedger()
	list := listEvents.New(log, ledger, venues, printer)

	items := []menu.Item{
		{Label: "Plan a new event", Action: planEvent.New(log, venues, ledger, planEvent.Options{
			Printer:            printer,
			DefaultFeesPercent: cfg.Planning.DefaultFeesPercent,
			PlaceholderArtist:  cfg.Planning.PlaceholderArtist,
		})},
		{Label: "List events", Action: list},
		{Label: "Remove an event", Action: removeEvent.New(log, ledger, list)},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	done := make(chan struct{})

	// Reading stdin cannot be interrupted, so a signal ends the process here.
	go func() {
		select {
		case <-ctx.Done():
			log.Info("application stopping", slog.Int("events", ledger.Len()))
			os.Stdout.WriteString("\nGoodbye And Thank You For Using Our Platform!\n")
			closeLog()
			os.Exit(130)
		case <-done:
		}
	}()

	err = menu.Run(ctx, log, console.New(os.Stdin, os.Stdout), items)
	close(done)

	if err != nil {
		log.Error("session ended with error", sl.Err(err))
		closeLog()
		os.Exit(1)
	}

	log.Info("application stopped", slog.Int("events", ledger.Len()))
}

func setupLogger(env string, out io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(out)
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog(out io.Writer) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(out)

	return slog.New(h)
}

// openLogOutput keeps logs off stdout, which belongs to the interactive session.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
