package domain

import "github.com/shopspring/decimal"

// Customer holds the ordered transactions of a single branch client.
type Customer struct {
	name         string
	id           int
	transactions []Transaction
}

// NewCustomer returns a customer with no transactions.
func NewCustomer(name string, id int) *Customer {
	return &Customer{
		name:         name,
		id:           id,
		transactions: []Transaction{},
	}
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// ID returns the customer identifier.
func (c *Customer) ID() int {
	return c.id
}

// Transactions returns the transactions in the order they were posted.
// The returned slice is shared with the customer.
func (c *Customer) Transactions() []Transaction {
	return c.transactions
}

// AddTransaction posts the amount stamped with the current time. It always succeeds.
func (c *Customer) AddTransaction(amount decimal.Decimal) bool {
	c.transactions = append(c.transactions, Transaction{amount: amount, date: now()})
	return true
}

// Balance returns the sum of all transaction amounts, never less than zero.
func (c *Customer) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range c.transactions {
		sum = sum.Add(t.amount)
	}

	return decimal.Max(decimal.Zero, sum)
}
