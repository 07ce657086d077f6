// Package domain provides definitions of all entities and the rules that keep the bank tree consistent.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// now is the clock used to stamp new transactions.
var now = time.Now

// Transaction holds a balance change posted to a customer.
type Transaction struct {
	amount decimal.Decimal // can be negative or positive
	date   time.Time
}

// Amount returns the signed amount of the transaction.
func (t Transaction) Amount() decimal.Decimal {
	return t.amount
}

// Date returns the time the transaction was posted.
func (t Transaction) Date() time.Time {
	return t.date
}
