// Package seed builds a bank tree from a seed document.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/go-petr/branch-bank/internal/domain"
)

// ErrInvalidSeed indicates that the seed document does not describe a valid bank.
var ErrInvalidSeed = errors.New("invalid seed")

// File is the content of a seed document.
type File struct {
	Bank     string   `mapstructure:"bank" validate:"required"`
	Branches []Branch `mapstructure:"branches" validate:"dive"`
}

// Branch describes a branch and its customers.
type Branch struct {
	Name      string     `mapstructure:"name" validate:"required"`
	Customers []Customer `mapstructure:"customers" validate:"dive"`
}

// Customer describes a customer and the amounts posted to it, oldest first.
type Customer struct {
	Name         string   `mapstructure:"name" validate:"required"`
	ID           int      `mapstructure:"id" validate:"gte=0"`
	Transactions []string `mapstructure:"transactions" validate:"dive,numeric"`
}

// Summary counts what Apply registered and rejected.
type Summary struct {
	Branches     int
	Customers    int
	Transactions int
	Rejected     int
}

// Load reads the seed document at path. The format is taken from the file extension.
func Load(path string) (File, error) {
	var f File

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return f, fmt.Errorf("read seed %s: %w", path, err)
	}

	if err := v.Unmarshal(&f); err != nil {
		return f, fmt.Errorf("unmarshal seed %s: %w", path, err)
	}

	if err := Validate(f); err != nil {
		return f, err
	}

	return f, nil
}

// Validate checks that f names the bank, every branch and every customer,
// and that all amounts are decimal numbers.
func Validate(f File) error {
	validate := validator.New()

	if err := validate.Struct(f); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			field := ve[0]
			return fmt.Errorf("%w: %s failed on %q", ErrInvalidSeed, field.Namespace(), field.Tag())
		}

		return fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	return nil
}

// Apply registers the branches, customers and transactions of f in bank
// through the bank's own operations. Rejected entries are logged and counted.
// Customers of a rejected branch are rejected as well, and a rejected customer
// takes its transactions with it.
func Apply(ctx context.Context, bank *domain.Bank, f File) Summary {
	l := zerolog.Ctx(ctx)

	var s Summary

	for _, sb := range f.Branches {
		branch := domain.NewBranch(sb.Name)

		if bank.AddBranch(branch) {
			s.Branches++
		} else {
			s.Rejected++
			l.Info().Str("branch", sb.Name).Msg("seed branch rejected")
		}

		for _, sc := range sb.Customers {
			if !bank.AddCustomer(branch, domain.NewCustomer(sc.Name, sc.ID)) {
				s.Rejected += 1 + len(sc.Transactions)
				l.Info().Str("branch", sb.Name).Int("customer_id", sc.ID).Msg("seed customer rejected")

				continue
			}

			s.Customers++

			for _, raw := range sc.Transactions {
				amount, err := decimal.NewFromString(raw)
				if err != nil {
					s.Rejected++
					l.Warn().Err(err).Str("branch", sb.Name).Int("customer_id", sc.ID).Msg("seed amount rejected")

					continue
				}

				if bank.AddCustomerTransaction(branch, sc.ID, amount) {
					s.Transactions++
				}
			}
		}
	}

	l.Debug().
		Int("branches", s.Branches).
		Int("customers", s.Customers).
		Int("transactions", s.Transactions).
		Int("rejected", s.Rejected).
		Msg("seed applied")

	return s
}
