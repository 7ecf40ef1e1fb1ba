package stocks

import (
	"fmt"
	"log"
)

// QuoteProvider supplies a current price per share for a security.
//
// A provider that cannot serve a symbol returns an error wrapping
// [ErrQuoteUnavailable]; [Book.Summarize] treats that as a per-symbol
// degradation, never as a fatal condition.
type QuoteProvider interface {
	PriceOf(security string) (Money, error)
}

// QuoteFunc adapts a plain function into a QuoteProvider.
type QuoteFunc func(security string) (Money, error)

func (f QuoteFunc) PriceOf(security string) (Money, error) { return f(security) }

// StaticQuotes is an in-memory QuoteProvider backed by a fixed price table.
// It serves offline summaries and tests.
type StaticQuotes map[string]Money

func (s StaticQuotes) PriceOf(security string) (Money, error) {
	price, ok := s[security]
	if !ok {
		return Money{}, fmt.Errorf("%w: no stored price for %s", ErrQuoteUnavailable, security)
	}
	return price, nil
}

// PositionSummary is the reporting view of one position.
//
// The market fields (Price, MarketValue, UnrealizedGain) are only meaningful
// when Quoted is true: an open position whose quote could not be obtained,
// and every closed position, reports realized figures only.
type PositionSummary struct {
	Security       string
	Quantity       Quantity
	AverageCost    Money
	CostBasis      Money
	RealizedGain   Money
	Quoted         bool
	Price          Money
	MarketValue    Money
	UnrealizedGain Money
}

// Open reports whether the summarized position still holds shares.
func (p PositionSummary) Open() bool { return p.Quantity.IsPositive() }

// Summary is the portfolio report derived from a book and an optional
// quote provider.
type Summary struct {
	On        Date
	Positions []PositionSummary

	// Totals. RealizedGain spans all positions; MarketValue and
	// UnrealizedGain span only the open positions that could be quoted.
	RealizedGain   Money
	MarketValue    Money
	UnrealizedGain Money
}

// Summarize derives the portfolio report for all positions, open and closed,
// in first-seen order.
//
// For each open position it asks the provider for a price once; a failing
// call degrades that symbol to realized figures only and is logged, the
// summary itself never fails. A nil provider degrades every symbol, which is
// the offline mode.
func (b *Book) Summarize(on Date, quotes QuoteProvider) *Summary {
	s := &Summary{On: on}
	for pos := range b.Positions() {
		ps := PositionSummary{
			Security:     pos.Security(),
			Quantity:     pos.Quantity(),
			AverageCost:  pos.AverageCost(),
			CostBasis:    pos.CostBasis(),
			RealizedGain: pos.RealizedGain(),
		}
		if pos.Open() && quotes != nil {
			price, err := quotes.PriceOf(pos.Security())
			if err != nil {
				log.Printf("no quote for %s: %v", pos.Security(), err)
			} else {
				ps.Quoted = true
				ps.Price = price
				ps.MarketValue = price.Mul(pos.Quantity())
				ps.UnrealizedGain = ps.MarketValue.Sub(pos.CostBasis())
				s.MarketValue = s.MarketValue.Add(ps.MarketValue)
				s.UnrealizedGain = s.UnrealizedGain.Add(ps.UnrealizedGain)
			}
		}
		s.RealizedGain = s.RealizedGain.Add(ps.RealizedGain)
		s.Positions = append(s.Positions, ps)
	}
	return s
}
