package stocks

import (
	"bytes"
	"strings"
	"testing"
)

func TestTransactionsCSVRoundTrip(t *testing.T) {
	txs := []Transaction{
		NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
		NewSell(day("2025-02-01"), "trim", "AAPL", Q(4), USD(110.50)),
		NewBuy(day("2025-02-10"), "", "GOOG", Q(2), USD(2800)),
	}

	var buf bytes.Buffer
	if err := ExportTransactions(&buf, txs); err != nil {
		t.Fatalf("ExportTransactions() failed: %v", err)
	}

	imported, err := ImportTransactions(&buf)
	if err != nil {
		t.Fatalf("ImportTransactions() failed: %v", err)
	}

	if len(imported) != len(txs) {
		t.Fatalf("imported %d transactions, want %d", len(imported), len(txs))
	}
	for i, tx := range txs {
		if !imported[i].Equal(tx) {
			t.Errorf("transaction %d = %+v, want %+v", i, imported[i], tx)
		}
	}
}

func TestImportTransactions(t *testing.T) {
	csv := `date,side,security,quantity,price,memo
2025-01-10,buy,aapl,10,100,
2025-02-01,SELL,aapl,4,110.5,trim
`
	imported, err := ImportTransactions(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportTransactions() failed: %v", err)
	}

	if len(imported) != 2 {
		t.Fatalf("imported %d transactions, want 2", len(imported))
	}
	if imported[0].Security != "AAPL" {
		t.Errorf("security = %q, want normalized %q", imported[0].Security, "AAPL")
	}
	if imported[1].Side != Sell {
		t.Errorf("side = %q, want %q", imported[1].Side, Sell)
	}
	if !imported[1].Price.Equal(USD(110.50)) {
		t.Errorf("price = %s, want $110.50", imported[1].Price)
	}
}

func TestImportTransactionsRejectsBadRows(t *testing.T) {
	testCases := []struct {
		name string
		csv  string
	}{
		{
			name: "unknown side",
			csv:  "date,side,security,quantity,price,memo\n2025-01-10,short,AAPL,10,100,\n",
		},
		{
			name: "bad date",
			csv:  "date,side,security,quantity,price,memo\nnot-a-date,buy,AAPL,10,100,\n",
		},
		{
			name: "bad quantity",
			csv:  "date,side,security,quantity,price,memo\n2025-01-10,buy,AAPL,ten,100,\n",
		},
		{
			name: "fractional quantity",
			csv:  "date,side,security,quantity,price,memo\n2025-01-10,buy,AAPL,1.5,100,\n",
		},
		{
			name: "negative price",
			csv:  "date,side,security,quantity,price,memo\n2025-01-10,buy,AAPL,10,-100,\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportTransactions(strings.NewReader(tc.csv)); err == nil {
				t.Errorf("ImportTransactions() = nil error, want failure")
			}
		})
	}
}
