package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/stocks"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx stocks.Transaction) string {
	switch tx.Side {
	case stocks.Buy:
		return fmt.Sprintf("Bought %s of %s at %s", tx.Quantity, tx.Security, tx.Price)
	case stocks.Sell:
		return fmt.Sprintf("Sold %s of %s at %s", tx.Quantity, tx.Security, tx.Price)
	default:
		return string(tx.Side)
	}
}

// TransactionsMarkdown renders the transaction history as a markdown table,
// one row per record in the order given.
func TransactionsMarkdown(txs []stocks.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	table := md.TableSet{
		Header: []string{"Date", "Side", "Security", "Qty", "Price", "Total", "Memo"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			string(tx.Side),
			tx.Security,
			tx.Quantity.String(),
			tx.Price.String(),
			tx.Cost().String(),
			tx.Memo,
		})
	}
	doc.Table(table)

	return doc.String()
}
