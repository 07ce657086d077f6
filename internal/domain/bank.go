package domain

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Bank owns uniquely named branches and mediates every customer operation through them.
type Bank struct {
	name     string
	branches []*Branch
	handles  map[uuid.UUID]*Branch
	logger   zerolog.Logger
	printer  Printer
}

// Option configures a Bank.
type Option func(*Bank)

// WithLogger sets the logger used to report rejected operations.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Bank) {
		b.logger = logger
	}
}

// WithPrinter sets the printer that receives customer listings.
func WithPrinter(p Printer) Option {
	return func(b *Bank) {
		b.printer = p
	}
}

// NewBank returns a bank without branches.
func NewBank(name string, opts ...Option) *Bank {
	b := &Bank{
		name:     name,
		branches: []*Branch{},
		handles:  make(map[uuid.UUID]*Branch),
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Name returns the bank name.
func (b *Bank) Name() string {
	return b.name
}

// Branches returns the branches in registration order.
func (b *Bank) Branches() []*Branch {
	return b.branches
}

// AddBranch registers the branch unless a branch with the same name is already present.
func (b *Bank) AddBranch(branch *Branch) bool {
	if branch == nil {
		b.logger.Debug().Str("bank", b.name).Str("reason", "nil branch").Msg("branch rejected")
		return false
	}

	if found := b.FindBranchByName(branch.name); found != nil {
		b.rejected(branch, "duplicate branch name").Msg("branch rejected")
		return false
	}

	b.branches = append(b.branches, branch)
	b.handles[branch.handle] = branch

	return true
}

// CheckBranch reports whether this exact branch instance was registered through the bank.
// A different branch with the same name does not pass.
func (b *Bank) CheckBranch(branch *Branch) bool {
	if branch == nil {
		return false
	}

	held, ok := b.handles[branch.handle]

	return ok && held == branch
}

// AddCustomer registers the customer in the branch if the branch belongs to the bank.
func (b *Bank) AddCustomer(branch *Branch, customer *Customer) bool {
	if !b.CheckBranch(branch) {
		b.rejected(branch, "branch does not belong to bank").Msg("customer rejected")
		return false
	}

	if customer == nil {
		b.rejected(branch, "nil customer").Msg("customer rejected")
		return false
	}

	if !branch.AddCustomer(customer) {
		b.rejected(branch, "duplicate customer id").Int("customer_id", customer.id).Msg("customer rejected")
		return false
	}

	return true
}

// AddCustomerTransaction posts the amount to a customer of the branch if the branch belongs to the bank.
func (b *Bank) AddCustomerTransaction(branch *Branch, customerID int, amount decimal.Decimal) bool {
	if !b.CheckBranch(branch) {
		b.rejected(branch, "branch does not belong to bank").
			Int("customer_id", customerID).
			Msg("transaction rejected")

		return false
	}

	if !branch.AddCustomerTransaction(customerID, amount) {
		b.rejected(branch, "customer not found").
			Int("customer_id", customerID).
			Msg("transaction rejected")

		return false
	}

	return true
}

// FindBranchByName returns the branches with the given name, or nil if there are none.
func (b *Bank) FindBranchByName(name string) []*Branch {
	var found []*Branch

	for _, br := range b.branches {
		if br.name == name {
			found = append(found, br)
		}
	}

	return found
}

func (b *Bank) rejected(branch *Branch, reason string) *zerolog.Event {
	e := b.logger.Debug().Str("bank", b.name).Str("reason", reason)
	if branch != nil {
		e = e.Str("branch", branch.name).Str("branch_handle", branch.handle.String())
	}

	return e
}
