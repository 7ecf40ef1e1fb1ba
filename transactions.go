package stocks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is a typed string identifying the direction of a transaction.
type Side string

// Sides of a transaction.
const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a string into a Side. It is case-insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction side %q", ErrInvalidInput, s)
	}
}

// Transaction is an immutable record of one buy or sell event.
// The engine only ever appends transactions or reads existing ones.
type Transaction struct {
	Side     Side     `json:"side"`           // Side is the direction of the transaction ("buy" or "sell").
	Date     Date     `json:"date"`           // Date is the day when the transaction took place.
	Security string   `json:"security"`       // Security is the ticker symbol of the traded security.
	Quantity Quantity `json:"quantity"`       // Quantity is the number of shares traded.
	Price    Money    `json:"price"`          // Price is the price paid or received per share.
	Memo     string   `json:"memo,omitempty"` // Memo is an optional rationale or note.
}

// NewBuy creates a new buy transaction.
func NewBuy(day Date, memo, security string, quantity Quantity, price Money) Transaction {
	return Transaction{Side: Buy, Date: day, Memo: memo, Security: security, Quantity: quantity, Price: price}
}

// NewSell creates a new sell transaction.
func NewSell(day Date, memo, security string, quantity Quantity, price Money) Transaction {
	return Transaction{Side: Sell, Date: day, Memo: memo, Security: security, Quantity: quantity, Price: price}
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.Date }

// Cost returns the total amount of the transaction (price times quantity).
func (t Transaction) Cost() Money { return t.Price.Mul(t.Quantity) }

// Equal reports whether two transactions are the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.Side == o.Side &&
		t.Date == o.Date &&
		t.Security == o.Security &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Memo == o.Memo
}

// Validate checks the transaction's fields and applies quick fixes where
// applicable: a zero date becomes today, and the security symbol is
// upper-cased. It returns the validated (and potentially modified)
// transaction, or an error wrapping [ErrInvalidInput].
func (t Transaction) Validate() (Transaction, error) {
	if t.Side != Buy && t.Side != Sell {
		return t, fmt.Errorf("%w: unknown transaction side %q", ErrInvalidInput, t.Side)
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	t.Security = strings.ToUpper(strings.TrimSpace(t.Security))
	if t.Security == "" {
		return t, fmt.Errorf("%w: security symbol is missing", ErrInvalidInput)
	}
	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("%w: %s quantity must be positive, got %s", ErrInvalidInput, t.Side, t.Quantity)
	}
	if !t.Quantity.IsInteger() {
		return t, fmt.Errorf("%w: %s quantity must be a whole number of shares, got %s", ErrInvalidInput, t.Side, t.Quantity)
	}
	if !t.Price.IsPositive() {
		return t, fmt.Errorf("%w: %s price must be positive, got %s", ErrInvalidInput, t.Side, t.Price)
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface with a stable key
// order, so the persisted ledger stays diff-friendly.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("side", t.Side)
	w.Append("date", t.Date)
	w.Append("security", t.Security)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Side     Side            `json:"side"`
		Date     Date            `json:"date"`
		Security string          `json:"security"`
		Quantity Quantity        `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Memo     string          `json:"memo,omitempty"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.Side = temp.Side
	t.Date = temp.Date
	t.Security = temp.Security
	t.Quantity = temp.Quantity
	t.Price = M(temp.Price)
	t.Memo = temp.Memo
	return nil
}
