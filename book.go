package stocks

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Book aggregates per-security positions from a single transaction history.
//
// A Book owns one [Position] per security, created lazily on the first
// transaction for that symbol. Everything else (active positions, closed
// positions, totals) is derived by reading the positions, never stored: a
// Book is fully reproducible by replaying its transaction history from
// empty, which is exactly what [NewBook] does.
type Book struct {
	transactions []Transaction
	positions    map[string]*Position
	securities   []string // symbols in first-seen order
}

// NewBook replays a stored transaction history into a fresh book.
//
// The history is first stable-sorted by date, so records entered out of
// order fold correctly while same-day records keep their stored order.
// Replay stops at the first transaction that fails to fold, returning the
// wrapped error.
func NewBook(txs ...Transaction) (*Book, error) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].When().Before(txs[j].When())
	})
	b := &Book{positions: make(map[string]*Position)}
	for _, tx := range txs {
		if err := b.append(tx); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Record validates a new transaction and folds it into the book.
//
// Validation happens before any mutation: an invalid record (unknown side,
// empty symbol, non-positive or fractional quantity, non-positive price)
// fails wrapping [ErrInvalidInput] and leaves the book unchanged, as does a
// sell exceeding the open quantity ([ErrInsufficientPosition]). On success
// it returns the validated transaction, with quick fixes applied (zero date
// resolved to today, symbol upper-cased), ready to be persisted.
func (b *Book) Record(side Side, day Date, security string, quantity Quantity, price Money, memo string) (Transaction, error) {
	tx := Transaction{Side: side, Date: day, Security: security, Quantity: quantity, Price: price, Memo: memo}
	tx, err := tx.Validate()
	if err != nil {
		return tx, err
	}
	// A backdated record changes the fold order, so replay the whole
	// history with it. The replay works on a copy: if the record cannot
	// fold (e.g. it would oversell at its date) the book is unchanged.
	if n := len(b.transactions); n > 0 && tx.Date.Before(b.transactions[n-1].When()) {
		replayed, err := NewBook(append(slices.Clone(b.transactions), tx)...)
		if err != nil {
			return tx, err
		}
		*b = *replayed
		return tx, nil
	}
	if err := b.append(tx); err != nil {
		return tx, err
	}
	return tx, nil
}

// append folds one already-validated transaction into its position,
// creating the position on first use.
func (b *Book) append(tx Transaction) error {
	pos, ok := b.positions[tx.Security]
	if !ok {
		pos = NewPosition(tx.Security)
	}
	if err := pos.Apply(tx); err != nil {
		return fmt.Errorf("could not record %s %s %s: %w", tx.Side, tx.Quantity, tx.Security, err)
	}
	if !ok {
		b.positions[tx.Security] = pos
		b.securities = append(b.securities, tx.Security)
	}
	b.transactions = append(b.transactions, tx)
	return nil
}

// Position returns the position for a security, or nil if the book has
// never seen a transaction for it.
func (b *Book) Position(security string) *Position {
	return b.positions[security]
}

// Positions iterates over all positions, open and closed, in the order
// their securities first appeared in the history.
func (b *Book) Positions() iter.Seq[*Position] {
	return func(yield func(*Position) bool) {
		for _, sec := range b.securities {
			if !yield(b.positions[sec]) {
				return
			}
		}
	}
}

// Active iterates over the positions currently holding shares.
func (b *Book) Active() iter.Seq[*Position] {
	return func(yield func(*Position) bool) {
		for pos := range b.Positions() {
			if pos.Open() && !yield(pos) {
				return
			}
		}
	}
}

// Closed iterates over the positions whose quantity has returned to zero.
// They keep their history and realized gain.
func (b *Book) Closed() iter.Seq[*Position] {
	return func(yield func(*Position) bool) {
		for pos := range b.Positions() {
			if !pos.Open() && !yield(pos) {
				return
			}
		}
	}
}

// Transactions returns an iterator over the book's full history in fold
// order: chronological, with same-day records in insertion order.
func (b *Book) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range b.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// RealizedGain returns the realized gain accumulated over all positions,
// open and closed.
func (b *Book) RealizedGain() Money {
	var total Money
	for pos := range b.Positions() {
		total = total.Add(pos.RealizedGain())
	}
	return total
}
