package stocks

import (
	"fmt"
	"iter"
)

// Position is the running ledger for one security. It folds the security's
// transactions, in date order, into the open quantity, the cost basis of the
// shares still held, and the realized gain locked in by sells.
//
// A Position has two externally visible states: OPEN (quantity > 0) and FLAT
// (quantity == 0). It is created on the first transaction for its symbol and
// never deleted: a position whose quantity returns to zero keeps its history
// and realized gain as a closed position.
type Position struct {
	security     string
	open         Quantity // shares currently held, never negative
	cost         Money    // total cost basis of the open quantity
	realized     Money    // gains and losses crystallized by sells
	transactions []Transaction
}

// NewPosition creates an empty (flat) position for a security.
func NewPosition(security string) *Position {
	return &Position{security: security}
}

// Security returns the symbol this position accounts for.
func (p *Position) Security() string { return p.security }

// Quantity returns the number of shares currently held.
func (p *Position) Quantity() Quantity { return p.open }

// Open reports whether the position currently holds shares.
func (p *Position) Open() bool { return p.open.IsPositive() }

// CostBasis returns the total cost basis of the open quantity.
func (p *Position) CostBasis() Money { return p.cost }

// AverageCost returns the weighted-average cost per share of the open
// quantity, or zero when the position is flat. The division happens here,
// at the reporting boundary, so intermediate folds stay exact.
func (p *Position) AverageCost() Money {
	if p.open.IsZero() {
		return Money{}
	}
	return p.cost.Div(p.open)
}

// RealizedGain returns the sum of gains and losses locked in by sells since
// inception. It accumulates monotonically and is never reset.
func (p *Position) RealizedGain() Money { return p.realized }

// Apply folds one transaction into the position's running state.
//
// A buy increases the open quantity and adds the purchase cost to the cost
// basis. A sell crystallizes (price − average cost) × quantity as realized
// gain, removes the proportional cost basis, and leaves the average cost of
// the remaining shares unchanged.
//
// Apply is atomic: a sell exceeding the open quantity fails wrapping
// [ErrInsufficientPosition], the record is not appended and the position is
// unchanged. The caller must supply transactions in non-decreasing date
// order; [NewBook] takes care of sorting before folding.
func (p *Position) Apply(tx Transaction) error {
	if tx.Security != p.security {
		return fmt.Errorf("%w: transaction for %q applied to position %q", ErrInvalidInput, tx.Security, p.security)
	}
	switch tx.Side {
	case Buy:
		p.cost = p.cost.Add(tx.Cost())
		p.open = p.open.Add(tx.Quantity)
	case Sell:
		if tx.Quantity.GreaterThan(p.open) {
			return fmt.Errorf("%w: on %s, cannot sell %s of %s, position is only %s",
				ErrInsufficientPosition, tx.Date, tx.Quantity, tx.Security, p.open)
		}
		// Remove the sold shares at their average cost; the remaining shares
		// keep the same cost per share.
		costOfSale := p.cost.Mul(tx.Quantity).Div(p.open)
		p.realized = p.realized.Add(tx.Cost().Sub(costOfSale))
		p.cost = p.cost.Sub(costOfSale)
		p.open = p.open.Sub(tx.Quantity)
		if p.open.IsZero() {
			// Back to flat. Zero the cost basis exactly so a re-opening buy
			// computes a fresh average from its own cost alone.
			p.cost = Money{}
		}
	default:
		return fmt.Errorf("%w: unknown transaction side %q", ErrInvalidInput, tx.Side)
	}
	p.transactions = append(p.transactions, tx)
	return nil
}

// Transactions returns an iterator over this position's history in fold
// order (chronological, insertion order on ties).
func (p *Position) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range p.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}
