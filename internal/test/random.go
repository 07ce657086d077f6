// Package test provides shared test helpers.
package test

import (
	"testing"

	"github.com/go-petr/branch-bank/internal/domain"
	"github.com/go-petr/branch-bank/pkg/randompkg"
)

// SeedBranch registers a randomly named branch in bank holding count customers,
// each with txCount random transactions.
func SeedBranch(t *testing.T, bank *domain.Bank, count, txCount int) *domain.Branch {
	t.Helper()

	branch := domain.NewBranch(randompkg.Name() + " " + randompkg.String(4))
	if !bank.AddBranch(branch) {
		t.Fatalf("bank.AddBranch(%q) rejected", branch.Name())
	}

	for i := 0; i < count; i++ {
		// Sequential ids keep the customers unique within the branch.
		c := domain.NewCustomer(randompkg.Name(), i+1)
		if !bank.AddCustomer(branch, c) {
			t.Fatalf("bank.AddCustomer(%q, %d) rejected", branch.Name(), c.ID())
		}

		for j := 0; j < txCount; j++ {
			amount := randompkg.AmountBetween(-1000, 1000)
			if !bank.AddCustomerTransaction(branch, c.ID(), amount) {
				t.Fatalf("bank.AddCustomerTransaction(%q, %d, %s) rejected", branch.Name(), c.ID(), amount)
			}
		}
	}

	return branch
}
