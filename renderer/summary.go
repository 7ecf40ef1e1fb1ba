// Package renderer turns report models into markdown.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/stocks"
)

// SummaryMarkdown renders the portfolio summary as a markdown document,
// one table row per position with the portfolio totals below.
func SummaryMarkdown(s *stocks.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.On))

	table := md.TableSet{
		Header: []string{"Security", "Qty", "Avg Cost", "Price", "Market Value", "Unrealized", "Realized"},
	}
	for _, p := range s.Positions {
		row := []string{p.Security, p.Quantity.String(), "-", "-", "-", "-", p.RealizedGain.SignedString()}
		if p.Open() {
			row[2] = p.AverageCost.String()
			if p.Quoted {
				row[3] = p.Price.String()
				row[4] = p.MarketValue.String()
				row[5] = p.UnrealizedGain.SignedString()
			} else {
				row[3] = "n/a"
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	doc.H2("Totals")
	doc.BulletList(
		fmt.Sprintf("Market Value: %s", s.MarketValue),
		fmt.Sprintf("Unrealized Gain: %s", s.UnrealizedGain.SignedString()),
		fmt.Sprintf("Realized Gain: %s", s.RealizedGain.SignedString()),
	)

	return doc.String()
}
