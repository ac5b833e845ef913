package monitor

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Christian123002/Bitcoin-Tracker/config"
	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/retention"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/device"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/link"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/storage/postgres"
)

// Start assembles the tracker from configuration and runs it until the feed
// ends or ctx is canceled. It owns the link stream and closes it on cancel,
// which unwinds a read blocked on a quiet line.
func Start(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	recorder, err := buildRecorder(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to set up recorder: %w", err)
	}
	defer recorder.Close()

	stream, err := link.Open(cfg.Link.Mode, cfg.Link.Addr, cfg.Link.Baud)
	if err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	go func() {
		<-ctx.Done()
		stream.Close()
	}()

	logger.Info("link open",
		zap.String("mode", cfg.Link.Mode), zap.String("addr", cfg.Link.Addr))

	display, button, ind := buildPanel(cfg.Panel, logger)

	m := New(display, button, ind, device.WallClock{}, recorder, logger)
	return m.Run(ctx, stream)
}

func buildRecorder(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Recorder, error) {
	if !cfg.Record.Enabled {
		return storage.NoopRecorder{}, nil
	}

	client, err := postgres.InitializeAndMigrate(cfg.Postgres, cfg.Log.Environment, cfg.Record.CreateDB)
	if err != nil {
		return nil, err
	}
	logger.Info("recording to postgres", zap.String("db", cfg.Postgres.DBName))

	if cfg.Record.Retention > 0 {
		retention.NewJob(client, cfg.Record.Retention, logger).Start(ctx)
	}
	return client, nil
}

// buildPanel maps panel kinds to host implementations. Unknown kinds fall
// back to the console panel so a typo still yields a visible run.
func buildPanel(cfg config.PanelConfig, logger *zap.Logger) (device.Display, device.Button, device.Indicator) {
	var display device.Display
	switch cfg.Display {
	case "log":
		display = device.NewLogDisplay(logger)
	default:
		display = device.NewConsoleDisplay(os.Stdout)
	}

	var button device.Button
	switch cfg.Button {
	case "none":
		button = device.NopButton{}
	default:
		button = device.NewStdinButton(os.Stdin)
	}

	var ind device.Indicator
	switch cfg.Indicator {
	case "log":
		ind = device.NewLogIndicator(logger)
	default:
		ind = device.NewConsoleIndicator(os.Stdout)
	}

	return display, button, ind
}
