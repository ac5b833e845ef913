package binance

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTicker24h(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/ticker/24hr" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("symbol"); got != "BTCUSDT" {
			t.Errorf("unexpected symbol param: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"symbol":"BTCUSDT","lastPrice":"45230.50","priceChangePercent":"1.25",`+
			`"highPrice":"46000.00","lowPrice":"44000.00","volume":"12345.67","closeTime":1756100000000}`)
	}))
	defer srv.Close()

	client := NewRESTClient(srv.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ticker, err := client.Ticker24h(ctx, "btcusdt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	price, err := ticker.Price()
	if err != nil || price != 45230.50 {
		t.Errorf("unexpected price: %v (err=%v)", price, err)
	}

	pct, err := ticker.ChangePct()
	if err != nil || pct != 1.25 {
		t.Errorf("unexpected change pct: %v (err=%v)", pct, err)
	}
}

func TestTicker24hServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewRESTClient(srv.URL, 5*time.Second)

	if _, err := client.Ticker24h(context.Background(), "NOPE"); err == nil {
		t.Fatal("expected error for non-200 response, got nil")
	}
}
