package feeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Christian123002/Bitcoin-Tracker/config"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/binance"
	"github.com/Christian123002/Bitcoin-Tracker/pkg/link"
)

// Opening price for the mock walk, roughly mid-range of the threshold dial.
const mockOpen = 45000

// Start assembles the feeder from configuration and runs it. In serial mode
// it writes straight to the device. In tcp mode it listens on Link.Addr and
// serves one tracker connection, then returns; restarting on disconnect is
// the supervisor's call, not ours.
func Start(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	src, err := buildSource(cfg.Feed, logger)
	if err != nil {
		return err
	}

	if cfg.Link.Mode == link.ModeTCP {
		return serveOnce(ctx, cfg, src, logger)
	}

	out, err := link.Open(cfg.Link.Mode, cfg.Link.Addr, cfg.Link.Baud)
	if err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	defer out.Close()

	return New(src, out, cfg.Feed.Interval, logger).Run(ctx)
}

func serveOnce(ctx context.Context, cfg *config.Config, src Source, logger *zap.Logger) error {
	lis, err := link.NewListener(cfg.Link.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	go func() {
		<-ctx.Done()
		lis.Close()
	}()

	logger.Info("waiting for tracker", zap.String("addr", lis.Addr()))
	conn, err := lis.AcceptOne()
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Info("tracker connected")
	return New(src, conn, cfg.Feed.Interval, logger).Run(ctx)
}

func buildSource(cfg config.FeedConfig, logger *zap.Logger) (Source, error) {
	switch cfg.Source {
	case "mock":
		return NewMockSource(mockOpen, cfg.Interval, logger), nil
	case "binance", "":
		rest := binance.NewRESTClient(cfg.REST.BaseURL, cfg.REST.Timeout)
		ws := binance.NewWSClient(cfg.WS.URL,
			[]string{binance.TickerStream(cfg.Symbol)}, logger)
		return NewBinanceSource(rest, ws, cfg.Symbol, logger), nil
	default:
		return nil, fmt.Errorf("unknown feed source %q", cfg.Source)
	}
}
