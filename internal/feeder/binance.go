package feeder

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Christian123002/Bitcoin-Tracker/pkg/binance"
)

const quoteBuffer = 16

// BinanceSource streams 24h ticker quotes for one symbol. A REST snapshot
// seeds the first quote so the tracker leaves "Loading..." before the
// stream delivers, then the websocket keeps the channel fresh.
type BinanceSource struct {
	symbol string
	rest   *binance.RESTClient
	ws     *binance.WSClient
	quotes chan Quote
	closed atomic.Bool
	once   sync.Once
	logger *zap.Logger
}

func NewBinanceSource(rest *binance.RESTClient, ws *binance.WSClient, symbol string, logger *zap.Logger) *BinanceSource {
	return &BinanceSource{
		symbol: symbol,
		rest:   rest,
		ws:     ws,
		quotes: make(chan Quote, quoteBuffer),
		logger: logger,
	}
}

// Start fetches the snapshot, subscribes the stream and spawns the read
// loop. A failed snapshot is only a delay, not an error; a failed dial is
// fatal since the stream is the sole ongoing supply.
func (s *BinanceSource) Start(ctx context.Context) error {
	s.seed(ctx)

	s.ws.SetMessageHandler(s.handleMessage)
	if err := s.ws.Connect(); err != nil {
		return err
	}
	go s.ws.Listen()
	return nil
}

func (s *BinanceSource) Quotes() <-chan Quote {
	return s.quotes
}

// Stop ends the stream. The quotes channel stays open; senders check the
// closed flag instead, so a late frame from the read loop cannot panic.
func (s *BinanceSource) Stop() {
	s.once.Do(func() {
		s.closed.Store(true)
		s.ws.Close()
	})
}

func (s *BinanceSource) seed(ctx context.Context) {
	t, err := s.rest.Ticker24h(ctx, s.symbol)
	if err != nil {
		s.logger.Warn("ticker snapshot failed", zap.Error(err))
		return
	}
	price, err := t.Price()
	if err != nil {
		s.logger.Warn("bad snapshot price", zap.Error(err))
		return
	}
	pct, err := t.ChangePct()
	if err != nil {
		s.logger.Warn("bad snapshot change", zap.Error(err))
		return
	}
	s.logger.Info("seeded from snapshot",
		zap.String("symbol", t.Symbol), zap.Float64("price", price))
	s.push(Quote{Price: price, ChangePct: pct, At: time.Now()})
}

func (s *BinanceSource) handleMessage(msg []byte) {
	var evt binance.TickerEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		s.logger.Warn("undecodable stream message", zap.Error(err))
		return
	}
	if !evt.IsTicker() {
		return
	}
	price, err := evt.Price()
	if err != nil {
		s.logger.Warn("bad ticker price", zap.Error(err))
		return
	}
	pct, err := evt.ChangePct()
	if err != nil {
		s.logger.Warn("bad ticker change", zap.Error(err))
		return
	}
	s.push(Quote{Price: price, ChangePct: pct, At: time.UnixMilli(evt.EventTime)})
}

func (s *BinanceSource) push(q Quote) {
	if s.closed.Load() {
		return
	}
	select {
	case s.quotes <- q:
	default:
		// Consumer lags; the next quote supersedes this one anyway.
	}
}
