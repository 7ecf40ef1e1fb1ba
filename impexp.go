package stocks

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// This file handles the CSV interchange format. It stays human readable,
// one transaction per row, easy to produce from a spreadsheet.

// csvTransaction is the CSV row layout of a transaction.
type csvTransaction struct {
	Date     string `csv:"date"`
	Side     string `csv:"side"`
	Security string `csv:"security"`
	Quantity string `csv:"quantity"`
	Price    string `csv:"price"`
	Memo     string `csv:"memo"`
}

// ImportTransactions reads transactions from 'r' in the CSV interchange
// format. Each row is validated; the first invalid row aborts the import.
func ImportTransactions(r io.Reader) ([]Transaction, error) {
	var rows []csvTransaction
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse transactions CSV: %w", err)
	}

	var txs []Transaction
	for i, row := range rows {
		tx, err := row.transaction()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ExportTransactions writes transactions to 'w' in the CSV interchange
// format, in the order given.
func ExportTransactions(w io.Writer, txs []Transaction) error {
	rows := make([]csvTransaction, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, csvTransaction{
			Date:     tx.Date.String(),
			Side:     string(tx.Side),
			Security: tx.Security,
			Quantity: tx.Quantity.String(),
			Price:    tx.Price.Round().value.String(),
			Memo:     tx.Memo,
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("cannot write transactions CSV: %w", err)
	}
	return nil
}

func (row csvTransaction) transaction() (Transaction, error) {
	side, err := ParseSide(row.Side)
	if err != nil {
		return Transaction{}, err
	}
	day, err := ParseDate(row.Date)
	if err != nil {
		return Transaction{}, err
	}
	quantity, err := decimal.NewFromString(row.Quantity)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid quantity %q: %v", ErrInvalidInput, row.Quantity, err)
	}
	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid price %q: %v", ErrInvalidInput, row.Price, err)
	}
	tx := Transaction{
		Side:     side,
		Date:     day,
		Security: row.Security,
		Quantity: Q(quantity),
		Price:    M(price),
		Memo:     row.Memo,
	}
	return tx.Validate()
}
