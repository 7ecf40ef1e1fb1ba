package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/renderer"
	"github.com/etnz/stocks/yahoo"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date    string
	offline bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio summary with P&L" }
func (*summaryCmd) Usage() string {
	return `stk summary [-d <date>] [-offline]

  Displays every position with its open quantity, average cost and realized
  gain. Open positions are enriched with the current market price, market
  value and unrealized gain. A position whose quote cannot be fetched is
  reported with realized figures only.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stocks.Today().String(), "Cut-off date for the summary (YYYY-MM-DD)")
	f.BoolVar(&c.offline, "offline", false, "Do not fetch market prices")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := stocks.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// A backdated summary replays only the transactions up to the cut-off.
	var upTo []stocks.Transaction
	for _, tx := range book.Transactions() {
		if !tx.When().After(on) {
			upTo = append(upTo, tx)
		}
	}
	book, err = stocks.NewBook(upTo...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var quotes stocks.QuoteProvider
	if !c.offline {
		quotes = yahoo.NewProvider()
	}

	printMarkdown(renderer.SummaryMarkdown(book.Summarize(on, quotes)))

	return subcommands.ExitSuccess
}
