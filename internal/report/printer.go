// Package report renders bank listings as text.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-petr/branch-bank/internal/domain"
)

// DateLayout is the layout of transaction dates, e.g. "Thu Oct 15 2026".
const DateLayout = "Mon Jan 02 2006"

// Printer writes listings to a text sink.
type Printer struct {
	w      io.Writer
	symbol string
}

// NewPrinter returns a printer writing to w and prefixing amounts with symbol.
func NewPrinter(w io.Writer, symbol string) *Printer {
	return &Printer{w: w, symbol: symbol}
}

// PrintForeignBranch reports that a branch does not belong to the bank.
func (p *Printer) PrintForeignBranch() error {
	_, err := io.WriteString(p.w, "Branch does not belong to this bank.\n")
	return err
}

// PrintListing writes the customers of the listing, one line each,
// followed by their numbered transactions when the listing includes them.
func (p *Printer) PrintListing(l domain.Listing) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Customers in %s branch:\n", l.Branch)

	if len(l.Customers) == 0 {
		buf.WriteString("No customers found.\n")
	}

	for _, c := range l.Customers {
		fmt.Fprintf(&buf, "Customer: %s (ID: %d), Balance: %s%s\n", c.Name, c.ID, p.symbol, c.Balance)

		if !l.IncludeTransactions {
			continue
		}

		if len(c.Transactions) == 0 {
			buf.WriteString("  No transactions found.\n")
			continue
		}

		buf.WriteString("  Transactions:\n")

		for i, t := range c.Transactions {
			fmt.Fprintf(&buf, "    %d. Amount: %s%s, Date: %s\n",
				i+1, p.symbol, t.Amount(), t.Date().Format(DateLayout))
		}
	}

	_, err := buf.WriteTo(p.w)

	return err
}
