package stocks

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeTransactions decodes a JSONL stream, one transaction per line, and
// returns the records in file order. Empty lines are skipped.
//
// The decoded records are returned raw: validation and chronological
// ordering belong to [NewBook].
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", string(line), err)
		}
		tx, err := tx.Validate()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", string(line), err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}
	return txs, nil
}

// EncodeTransaction marshals a single transaction and writes it to the
// writer followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write transaction: %w", err)
	}
	return nil
}

// EncodeTransactions persists transactions to a writer in JSONL format, in
// the order given. Key order within each line is stable, so encoding the
// same history twice yields identical bytes.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
