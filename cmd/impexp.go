package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stocks"
)

// --- Import Command ---

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV file" }
func (*importCmd) Usage() string {
	return `stk import -f <file.csv>

  Imports transactions from a CSV file (columns: date, side, security,
  quantity, price, memo), merges them into the ledger and saves it. The
  whole import is rejected if any resulting position would oversell.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "CSV file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening CSV file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	imported, err := stocks.ImportTransactions(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var txs []stocks.Transaction
	for _, tx := range book.Transactions() {
		txs = append(txs, tx)
	}
	merged, err := stocks.NewBook(append(txs, imported...)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error merging %q into the ledger: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	if err := stocks.Save(ledgerPath(), merged); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions into %s\n", len(imported), ledgerPath())
	return subcommands.ExitSuccess
}

// --- Export Command ---

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the transaction history as CSV" }
func (*exportCmd) Usage() string {
	return `stk export [-f <file.csv>]

  Exports the transaction history in CSV format, to a file or to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Destination file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var txs []stocks.Transaction
	for _, tx := range book.Transactions() {
		txs = append(txs, tx)
	}

	out := os.Stdout
	if c.file != "" {
		out, err = os.Create(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating CSV file %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := stocks.ExportTransactions(out, txs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
