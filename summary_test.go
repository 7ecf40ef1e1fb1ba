package stocks

import (
	"fmt"
	"testing"
)

func TestBook_Summarize(t *testing.T) {
	book, err := NewBook(
		NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
		NewBuy(day("2025-01-15"), "", "GOOG", Q(5), USD(200)),
		NewBuy(day("2025-01-20"), "", "MSFT", Q(8), USD(300)),
		NewSell(day("2025-02-01"), "", "MSFT", Q(8), USD(350)),
	)
	if err != nil {
		t.Fatalf("NewBook() failed: %v", err)
	}

	// The provider serves AAPL and fails for GOOG.
	quotes := QuoteFunc(func(security string) (Money, error) {
		if security == "AAPL" {
			return USD(130), nil
		}
		return Money{}, fmt.Errorf("%w: %s", ErrQuoteUnavailable, security)
	})

	s := book.Summarize(day("2025-02-15"), quotes)

	if len(s.Positions) != 3 {
		t.Fatalf("summary has %d positions, want 3", len(s.Positions))
	}
	byName := make(map[string]PositionSummary)
	for _, p := range s.Positions {
		byName[p.Security] = p
	}

	aapl := byName["AAPL"]
	if !aapl.Quoted {
		t.Errorf("AAPL.Quoted = false, want true")
	}
	if !aapl.MarketValue.Equal(USD(1300)) {
		t.Errorf("AAPL.MarketValue = %s, want $1,300.00", aapl.MarketValue)
	}
	if !aapl.UnrealizedGain.Equal(USD(300)) {
		t.Errorf("AAPL.UnrealizedGain = %s, want $300.00", aapl.UnrealizedGain)
	}

	goog := byName["GOOG"]
	if goog.Quoted {
		t.Errorf("GOOG.Quoted = true, want false (degraded)")
	}
	if !goog.AverageCost.Equal(USD(200)) {
		t.Errorf("GOOG.AverageCost = %s, want $200.00", goog.AverageCost)
	}

	msft := byName["MSFT"]
	if msft.Open() || msft.Quoted {
		t.Errorf("MSFT should be closed and unquoted, got open=%v quoted=%v", msft.Open(), msft.Quoted)
	}
	if !msft.RealizedGain.Equal(USD(400)) {
		t.Errorf("MSFT.RealizedGain = %s, want $400.00", msft.RealizedGain)
	}

	// Totals: realized over all positions, market figures over quoted only.
	if !s.RealizedGain.Equal(USD(400)) {
		t.Errorf("RealizedGain = %s, want $400.00", s.RealizedGain)
	}
	if !s.MarketValue.Equal(USD(1300)) {
		t.Errorf("MarketValue = %s, want $1,300.00", s.MarketValue)
	}
	if !s.UnrealizedGain.Equal(USD(300)) {
		t.Errorf("UnrealizedGain = %s, want $300.00", s.UnrealizedGain)
	}
}

func TestBook_SummarizeOffline(t *testing.T) {
	book, err := NewBook(
		NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
	)
	if err != nil {
		t.Fatalf("NewBook() failed: %v", err)
	}

	s := book.Summarize(day("2025-02-15"), nil)

	if len(s.Positions) != 1 {
		t.Fatalf("summary has %d positions, want 1", len(s.Positions))
	}
	if s.Positions[0].Quoted {
		t.Errorf("Quoted = true with a nil provider, want false")
	}
	if !s.MarketValue.IsZero() || !s.UnrealizedGain.IsZero() {
		t.Errorf("market totals = %s / %s with a nil provider, want zero", s.MarketValue, s.UnrealizedGain)
	}
}

func TestStaticQuotes(t *testing.T) {
	quotes := StaticQuotes{"AAPL": USD(130)}

	price, err := quotes.PriceOf("AAPL")
	if err != nil || !price.Equal(USD(130)) {
		t.Errorf("PriceOf(AAPL) = %s, %v, want $130.00, nil", price, err)
	}

	if _, err := quotes.PriceOf("GOOG"); err == nil {
		t.Errorf("PriceOf(GOOG) = nil error, want ErrQuoteUnavailable")
	}
}
