package feeder

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MockSource generates a random walk so the whole pipeline runs without
// network access. The reported change is relative to the session open, the
// same way an exchange's 24h figure moves against a fixed reference.
type MockSource struct {
	open     float64
	price    float64
	interval time.Duration
	quotes   chan Quote
	stop     chan struct{}
	once     sync.Once
	mu       sync.Mutex
	running  bool
	logger   *zap.Logger
}

func NewMockSource(open float64, interval time.Duration, logger *zap.Logger) *MockSource {
	return &MockSource{
		open:     open,
		price:    open,
		interval: interval,
		quotes:   make(chan Quote, quoteBuffer),
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

func (m *MockSource) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = true
	m.mu.Unlock()

	m.logger.Info("mock source started",
		zap.Float64("open", m.open), zap.Duration("interval", m.interval))
	go m.walk(ctx)
	return nil
}

func (m *MockSource) Quotes() <-chan Quote {
	return m.quotes
}

func (m *MockSource) Stop() {
	m.once.Do(func() { close(m.stop) })
}

// Open returns the session open price the change percentage is computed
// against.
func (m *MockSource) Open() float64 {
	return m.open
}

func (m *MockSource) walk(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stop:
			return
		case <-ticker.C:
			m.step()
		}
	}
}

// step moves the price by up to ±0.5% and publishes the result.
func (m *MockSource) step() {
	m.mu.Lock()
	m.price *= 1 + (rand.Float64()-0.5)*0.01
	if m.price < 1 {
		m.price = 1
	}
	price := m.price
	m.mu.Unlock()

	q := Quote{
		Price:     price,
		ChangePct: (price - m.open) / m.open * 100,
		At:        time.Now(),
	}
	select {
	case m.quotes <- q:
	default:
	}
}
