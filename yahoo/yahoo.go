// Package yahoo implements a live quote provider backed by the Yahoo
// Finance API.
package yahoo

import (
	"fmt"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"

	"github.com/etnz/stocks"
)

// Provider fetches the current market price of a security from Yahoo
// Finance. It implements [stocks.QuoteProvider].
type Provider struct {
	fetch func(symbol string) (*finance.Quote, error)
}

// NewProvider returns a provider hitting the live Yahoo Finance API.
func NewProvider() *Provider {
	return &Provider{fetch: quote.Get}
}

// PriceOf returns the regular market price for a symbol. Any failure, a
// transport error, an unknown symbol or a zero price, is reported wrapping
// [stocks.ErrQuoteUnavailable] so the caller can degrade per symbol.
func (p *Provider) PriceOf(security string) (stocks.Money, error) {
	q, err := p.fetch(security)
	if err != nil {
		return stocks.Money{}, fmt.Errorf("%w: %s: %v", stocks.ErrQuoteUnavailable, security, err)
	}
	if q == nil || q.RegularMarketPrice <= 0 {
		return stocks.Money{}, fmt.Errorf("%w: no market price for %s", stocks.ErrQuoteUnavailable, security)
	}
	return stocks.M(q.RegularMarketPrice), nil
}
