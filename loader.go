package stocks

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultLedgerFile is the transaction log the CLI uses when no path is
// given.
const DefaultLedgerFile = "transactions.jsonl"

// Load reads the transaction log at path and replays it into a Book.
// A missing file is not an error: it yields an empty book, so the first
// recorded transaction can create the file.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewBook()
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	txs, err := DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	book, err := NewBook(txs...)
	if err != nil {
		return nil, fmt.Errorf("could not replay ledger file %q: %w", path, err)
	}
	return book, nil
}

// Save persists the book's transaction history to path in JSONL format.
//
// It writes to a temporary file in the same directory and renames it over
// the target, so a failed save leaves the previous file intact.
func Save(path string, book *Book) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	var txs []Transaction
	for _, tx := range book.Transactions() {
		txs = append(txs, tx)
	}
	if err := EncodeTransactions(tmp, txs); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", path, err)
	}
	return nil
}

// Append adds one transaction to the end of the log at path without
// rewriting the rest of the file. The chronological order is restored by
// the stable sort on next load.
func Append(path string, tx Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	if err := EncodeTransaction(f, tx); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", path, err)
	}
	return nil
}
