package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stocks"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `stk fmt

  Validates and formats the ledger file. This command reads all
  transactions, validates them, sorts them by date, and writes them back
  in a canonical JSONL format.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := stocks.Save(ledgerPath(), book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", ledgerPath(), err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Finished formatting ledger %q.\n", ledgerPath())
	return subcommands.ExitSuccess
}
