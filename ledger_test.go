package stocks

import (
	"errors"
	"testing"
)

func TestPosition_WeightedAverage(t *testing.T) {
	testCases := []struct {
		name         string
		transactions []Transaction
		wantQuantity Quantity
		wantAverage  Money
		wantRealized Money
	}{
		{
			name: "single buy",
			transactions: []Transaction{
				NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
			},
			wantQuantity: Q(10),
			wantAverage:  USD(100),
			wantRealized: USD(0),
		},
		{
			name: "two buys at different prices",
			transactions: []Transaction{
				NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
				NewBuy(day("2025-01-15"), "", "AAPL", Q(10), USD(120)),
			},
			wantQuantity: Q(20),
			wantAverage:  USD(110),
			wantRealized: USD(0),
		},
		{
			name: "partial sell leaves average unchanged",
			transactions: []Transaction{
				NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
				NewBuy(day("2025-01-15"), "", "AAPL", Q(10), USD(120)),
				NewSell(day("2025-02-01"), "", "AAPL", Q(15), USD(130)),
			},
			wantQuantity: Q(5),
			wantAverage:  USD(110),
			wantRealized: USD(300), // (130 - 110) * 15
		},
		{
			name: "full sell goes flat",
			transactions: []Transaction{
				NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
				NewSell(day("2025-02-01"), "", "AAPL", Q(10), USD(120)),
			},
			wantQuantity: Q(0),
			wantAverage:  USD(0),
			wantRealized: USD(200),
		},
		{
			name: "selling at a loss realizes a negative gain",
			transactions: []Transaction{
				NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
				NewSell(day("2025-02-01"), "", "AAPL", Q(4), USD(90)),
			},
			wantQuantity: Q(6),
			wantAverage:  USD(100),
			wantRealized: USD(-40),
		},
		{
			name: "re-opening buy starts a fresh average",
			transactions: []Transaction{
				NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
				NewSell(day("2025-02-01"), "", "AAPL", Q(10), USD(120)),
				NewBuy(day("2025-03-01"), "", "AAPL", Q(5), USD(50)),
			},
			wantQuantity: Q(5),
			wantAverage:  USD(50),
			wantRealized: USD(200),
		},
		{
			name: "fractional prices stay exact",
			transactions: []Transaction{
				NewBuy(day("2025-01-10"), "", "AAPL", Q(3), USD(0.10)),
				NewSell(day("2025-02-01"), "", "AAPL", Q(1), USD(0.10)),
			},
			wantQuantity: Q(2),
			wantAverage:  USD(0.10),
			wantRealized: USD(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pos := NewPosition("AAPL")
			for _, tx := range tc.transactions {
				if err := pos.Apply(tx); err != nil {
					t.Fatalf("Apply(%v) failed: %v", tx, err)
				}
			}
			if !pos.Quantity().Equal(tc.wantQuantity) {
				t.Errorf("Quantity() = %s, want %s", pos.Quantity(), tc.wantQuantity)
			}
			if !pos.AverageCost().Equal(tc.wantAverage) {
				t.Errorf("AverageCost() = %s, want %s", pos.AverageCost(), tc.wantAverage)
			}
			if !pos.RealizedGain().Equal(tc.wantRealized) {
				t.Errorf("RealizedGain() = %s, want %s", pos.RealizedGain(), tc.wantRealized)
			}
		})
	}
}

func TestPosition_OversellIsRejected(t *testing.T) {
	pos := NewPosition("AAPL")
	if err := pos.Apply(NewBuy(day("2025-01-10"), "", "AAPL", Q(5), USD(50))); err != nil {
		t.Fatalf("Apply(buy) failed: %v", err)
	}

	err := pos.Apply(NewSell(day("2025-02-01"), "", "AAPL", Q(8), USD(60)))
	if !errors.Is(err, ErrInsufficientPosition) {
		t.Fatalf("Apply(oversell) error = %v, want ErrInsufficientPosition", err)
	}

	// The position must be exactly as before the rejected sell.
	if !pos.Quantity().Equal(Q(5)) {
		t.Errorf("Quantity() = %s, want 5", pos.Quantity())
	}
	if !pos.AverageCost().Equal(USD(50)) {
		t.Errorf("AverageCost() = %s, want $50.00", pos.AverageCost())
	}
	if !pos.RealizedGain().Equal(USD(0)) {
		t.Errorf("RealizedGain() = %s, want $0.00", pos.RealizedGain())
	}
	var history []Transaction
	for _, tx := range pos.Transactions() {
		history = append(history, tx)
	}
	if len(history) != 1 {
		t.Errorf("history has %d transactions, want 1", len(history))
	}

	// Rejection is repeatable, and a valid sell still goes through.
	if err := pos.Apply(NewSell(day("2025-02-01"), "", "AAPL", Q(8), USD(60))); !errors.Is(err, ErrInsufficientPosition) {
		t.Errorf("second oversell error = %v, want ErrInsufficientPosition", err)
	}
	if err := pos.Apply(NewSell(day("2025-02-01"), "", "AAPL", Q(5), USD(60))); err != nil {
		t.Errorf("selling the whole position failed: %v", err)
	}
	if !pos.Quantity().IsZero() {
		t.Errorf("Quantity() = %s, want 0", pos.Quantity())
	}
}

func TestPosition_SellOnEmptyPosition(t *testing.T) {
	pos := NewPosition("AAPL")
	err := pos.Apply(NewSell(day("2025-01-10"), "", "AAPL", Q(1), USD(10)))
	if !errors.Is(err, ErrInsufficientPosition) {
		t.Fatalf("Apply(sell on empty) error = %v, want ErrInsufficientPosition", err)
	}
}

func TestPosition_RejectsForeignSecurity(t *testing.T) {
	pos := NewPosition("AAPL")
	err := pos.Apply(NewBuy(day("2025-01-10"), "", "GOOG", Q(1), USD(10)))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Apply(foreign security) error = %v, want ErrInvalidInput", err)
	}
}

func TestPosition_ClosedKeepsHistory(t *testing.T) {
	pos := NewPosition("AAPL")
	txs := []Transaction{
		NewBuy(day("2025-01-10"), "", "AAPL", Q(10), USD(100)),
		NewSell(day("2025-02-01"), "", "AAPL", Q(10), USD(150)),
	}
	for _, tx := range txs {
		if err := pos.Apply(tx); err != nil {
			t.Fatalf("Apply(%v) failed: %v", tx, err)
		}
	}

	if pos.Open() {
		t.Errorf("Open() = true, want false")
	}
	if !pos.RealizedGain().Equal(USD(500)) {
		t.Errorf("RealizedGain() = %s, want $500.00", pos.RealizedGain())
	}
	var history []Transaction
	for _, tx := range pos.Transactions() {
		history = append(history, tx)
	}
	if len(history) != len(txs) {
		t.Errorf("history has %d transactions, want %d", len(history), len(txs))
	}
}
