// Package wire defines the line-oriented message format exchanged over the
// serial link between the feeder and the tracker, one message per line:
//
//	BTC Price: $<price>, 24h Change: <change>%
//
// <price> and <change> are decimal numbers; <change> may be signed. Lines are
// terminated by '\n' or '\r'.
package wire

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	pricePrefix   = "BTC Price: $"
	changeSep     = ", 24h Change: "
	percentSuffix = "%"
)

// Sample is one parsed (price, 24h change) observation from a single line.
// An unparseable line yields the zero Sample with Valid false.
type Sample struct {
	Price  float64 // last price in USD
	Change float64 // 24h change in percent, signed
	Valid  bool    // false when the line deviated from the grammar
}

// ParseLine extracts a Sample from one complete line. The grammar is matched
// strictly: both literals, both numeric fields in order, the trailing percent
// sign, and nothing else. Any deviation yields an invalid Sample; partially
// extracted values are never kept. Same line, same result — no side effects.
func ParseLine(line string) Sample {
	rest, ok := strings.CutPrefix(line, pricePrefix)
	if !ok {
		return Sample{}
	}
	priceStr, changeStr, ok := strings.Cut(rest, changeSep)
	if !ok {
		return Sample{}
	}
	changeStr, ok = strings.CutSuffix(changeStr, percentSuffix)
	if !ok {
		return Sample{}
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return Sample{}
	}
	change, err := strconv.ParseFloat(changeStr, 64)
	if err != nil {
		return Sample{}
	}
	return Sample{Price: price, Change: change, Valid: true}
}

// FormatLine renders price and change in the grammar understood by ParseLine,
// without the line terminator. Both fields carry two decimal places, matching
// what the upstream firmware emits.
func FormatLine(price, change float64) string {
	return fmt.Sprintf("%s%.2f%s%.2f%s", pricePrefix, price, changeSep, change, percentSuffix)
}
