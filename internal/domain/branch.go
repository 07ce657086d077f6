package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Branch holds the customers of a bank office, unique by customer id.
type Branch struct {
	name      string
	handle    uuid.UUID
	customers []*Customer
}

// NewBranch returns an empty branch with a fresh identity handle.
func NewBranch(name string) *Branch {
	return &Branch{
		name:      name,
		handle:    uuid.New(),
		customers: []*Customer{},
	}
}

// Name returns the branch name.
func (b *Branch) Name() string {
	return b.name
}

// Handle returns the identity handle assigned when the branch was created.
func (b *Branch) Handle() uuid.UUID {
	return b.handle
}

// Customers returns the customers in registration order.
func (b *Branch) Customers() []*Customer {
	return b.customers
}

// Customer returns the customer with the given id.
func (b *Branch) Customer(id int) (*Customer, bool) {
	for _, c := range b.customers {
		if c.id == id {
			return c, true
		}
	}

	return nil, false
}

// AddCustomer registers the customer unless one with the same id is already present.
func (b *Branch) AddCustomer(customer *Customer) bool {
	if customer == nil {
		return false
	}

	if _, ok := b.Customer(customer.id); ok {
		return false
	}

	b.customers = append(b.customers, customer)

	return true
}

// AddCustomerTransaction posts the amount to the customer with the given id.
func (b *Branch) AddCustomerTransaction(customerID int, amount decimal.Decimal) bool {
	c, ok := b.Customer(customerID)
	if !ok {
		return false
	}

	return c.AddTransaction(amount)
}
