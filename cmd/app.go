// Package cmd implements the CLI application to track stock positions.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/stocks"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file containing transactions (JSONL format)")

// ledgerPath resolves the ledger file: the -ledger-file flag, then the
// STOCKS_LEDGER environment variable (possibly loaded from .env), then the
// default file in the working directory.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if env := os.Getenv("STOCKS_LEDGER"); env != "" {
		return env
	}
	return stocks.DefaultLedgerFile
}

// loadBook loads and replays the app ledger file.
func loadBook() (*stocks.Book, error) {
	return stocks.Load(ledgerPath())
}

// recordTransaction folds a new transaction into the book and, on success,
// appends it to the app ledger file.
func recordTransaction(side stocks.Side, day stocks.Date, security string, quantity stocks.Quantity, price stocks.Money, memo string) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := book.Record(side, day, security, quantity, price, memo)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := stocks.Append(ledgerPath(), tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", ledgerPath())
	return subcommands.ExitSuccess
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}
