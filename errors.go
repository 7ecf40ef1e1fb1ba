package stocks

import "errors"

// Error kinds surfaced by the accounting engine. Callers test for them with
// [errors.Is]; every occurrence carries additional context through wrapping.
var (
	// ErrInvalidInput reports a malformed symbol, quantity, price or date.
	// It is always raised before any ledger mutation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientPosition reports a sell whose quantity exceeds the open
	// position. The sell is rejected, never clamped.
	ErrInsufficientPosition = errors.New("insufficient position")

	// ErrQuoteUnavailable reports that a quote provider could not serve a
	// price for one symbol. It degrades that symbol's market fields and is
	// never fatal to a summary.
	ErrQuoteUnavailable = errors.New("quote unavailable")
)
