package binance

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// TickerStream returns the stream name of the 24hr ticker for a symbol.
func TickerStream(symbol string) string {
	return strings.ToLower(symbol) + "@ticker"
}

// WSClient handles the WebSocket connection to Binance and message routing.
type WSClient struct {
	url     string
	streams []string
	conn    *websocket.Conn
	handler func([]byte)
	closed  atomic.Bool
	logger  *zap.Logger
}

// NewWSClient creates a client that subscribes to the given streams once
// connected.
func NewWSClient(url string, streams []string, logger *zap.Logger) *WSClient {
	return &WSClient{
		url:     url,
		streams: streams,
		logger:  logger,
	}
}

// SetMessageHandler sets the function to handle incoming messages.
func (c *WSClient) SetMessageHandler(h func([]byte)) {
	c.handler = h
}

// Connect establishes the WebSocket connection and subscribes to the
// configured streams. It does not start the listener.
func (c *WSClient) Connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		c.logger.Error("Failed to connect to WebSocket", zap.String("url", c.url), zap.Error(err))
		return err
	}
	c.conn = conn
	c.logger.Info("WebSocket connected", zap.String("url", c.url))

	if err := c.subscribe(conn); err != nil {
		c.logger.Error("Failed to send subscription", zap.Error(err))
		return err
	}

	return nil
}

func (c *WSClient) subscribe(conn *websocket.Conn) error {
	subMsg := map[string]interface{}{
		"method": "SUBSCRIBE",
		"params": c.streams,
		"id":     1,
	}

	if err := conn.WriteJSON(subMsg); err != nil {
		return fmt.Errorf("websocket subscribe failed: %w", err)
	}
	return nil
}

// Listen reads messages until Close is called, reconnecting indefinitely on
// read errors.
func (c *WSClient) Listen() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if c.closed.Load() {
				return
			}
			c.logger.Error("WebSocket read error", zap.Error(err))

			// Retry reconnecting indefinitely
			for {
				time.Sleep(3 * time.Second)
				if c.closed.Load() {
					return
				}
				if err := c.reconnectAndResubscribe(); err != nil {
					c.logger.Warn("Retrying reconnect...")
					continue
				}
				c.logger.Info("Reconnected successfully")
				break
			}
			continue // Start listening again with the new connection
		}

		if c.handler != nil {
			c.handler(msg)
		}
	}
}

func (c *WSClient) reconnectAndResubscribe() error {
	newConn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return err
	}

	// Close the old connection if it exists
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.conn = newConn

	return c.subscribe(newConn)
}

// Close tears the connection down and lets Listen return.
func (c *WSClient) Close() {
	c.closed.Store(true)
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
