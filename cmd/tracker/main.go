package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Christian123002/Bitcoin-Tracker/config"
	"github.com/Christian123002/Bitcoin-Tracker/internal/tracker/monitor"
	"github.com/Christian123002/Bitcoin-Tracker/logger"

	"go.uber.org/zap"
)

func main() {
	// viper config
	cfg := config.Load()

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// run tracker
	errCh := make(chan error, 1)
	go func() { errCh <- monitor.Start(ctx, cfg, log) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
		select {
		case <-errCh:
		case <-time.After(5 * time.Second):
			log.Warn("shutdown timed out")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal("tracker failed", zap.Error(err))
		}
	}

	log.Info("tracker stopped")
}
