package binance

import "strconv"

// Ticker24h is the subset of the 24hr ticker statistics endpoint the feeder
// uses. Binance serializes numeric fields as strings.
type Ticker24h struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
	CloseTime          int64  `json:"closeTime"`
}

// Price returns the last trade price as a float.
func (t *Ticker24h) Price() (float64, error) {
	return strconv.ParseFloat(t.LastPrice, 64)
}

// ChangePct returns the 24h change percentage as a float.
func (t *Ticker24h) ChangePct() (float64, error) {
	return strconv.ParseFloat(t.PriceChangePercent, 64)
}

// TickerEvent is the payload of the <symbol>@ticker stream. The single-letter
// keys come in both cases ("p"/"P", "c"/"C"); every colliding pair is mapped
// explicitly so the case-insensitive JSON matcher cannot cross-assign them.
type TickerEvent struct {
	EventType          string `json:"e"` // "24hrTicker"
	EventTime          int64  `json:"E"`
	Symbol             string `json:"s"`
	PriceChange        string `json:"p"`
	PriceChangePercent string `json:"P"`
	LastPrice          string `json:"c"`
	StatsCloseTime     int64  `json:"C"`
}

// IsTicker reports whether the event is a 24hr ticker update rather than a
// subscription ack or other control payload.
func (t *TickerEvent) IsTicker() bool {
	return t.EventType == "24hrTicker"
}

// Price returns the last trade price as a float.
func (t *TickerEvent) Price() (float64, error) {
	return strconv.ParseFloat(t.LastPrice, 64)
}

// ChangePct returns the 24h change percentage as a float.
func (t *TickerEvent) ChangePct() (float64, error) {
	return strconv.ParseFloat(t.PriceChangePercent, 64)
}
