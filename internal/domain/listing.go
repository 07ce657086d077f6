package domain

import "github.com/shopspring/decimal"

// Printer renders customer listings produced by the bank.
//
//go:generate mockgen -source listing.go -destination listing_mock.go -package domain
type Printer interface {
	PrintListing(l Listing) error
	PrintForeignBranch() error
}

// CustomerListing holds the reported state of one customer.
type CustomerListing struct {
	Name    string
	ID      int
	Balance decimal.Decimal
	// Transactions is nil unless the listing was requested with transactions.
	Transactions []Transaction
}

// Listing holds the customers of a branch at the time it was requested.
type Listing struct {
	Branch              string
	IncludeTransactions bool
	Customers           []CustomerListing
}

// ListCustomers builds the listing of the branch and hands it to the printer.
// It returns false if the branch does not belong to the bank.
func (b *Bank) ListCustomers(branch *Branch, includeTransactions bool) (Listing, bool) {
	if !b.CheckBranch(branch) {
		b.rejected(branch, "branch does not belong to bank").Msg("listing rejected")

		if b.printer != nil {
			if err := b.printer.PrintForeignBranch(); err != nil {
				b.logger.Error().Err(err).Str("bank", b.name).Msg("cannot print listing")
			}
		}

		return Listing{}, false
	}

	l := Listing{
		Branch:              branch.name,
		IncludeTransactions: includeTransactions,
		Customers:           make([]CustomerListing, 0, len(branch.customers)),
	}

	for _, c := range branch.customers {
		cl := CustomerListing{
			Name:    c.name,
			ID:      c.id,
			Balance: c.Balance(),
		}

		if includeTransactions {
			cl.Transactions = make([]Transaction, len(c.transactions))
			copy(cl.Transactions, c.transactions)
		}

		l.Customers = append(l.Customers, cl)
	}

	if b.printer != nil {
		if err := b.printer.PrintListing(l); err != nil {
			b.logger.Error().Err(err).
				Str("bank", b.name).
				Str("branch", branch.name).
				Msg("cannot print listing")
		}
	}

	return l, true
}
