// Package main loads a bank from a seed document and prints the customers of every branch.
package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/branch-bank/internal/domain"
	"github.com/go-petr/branch-bank/internal/report"
	"github.com/go-petr/branch-bank/internal/seed"
	"github.com/go-petr/branch-bank/pkg/configpkg"
	"github.com/go-petr/branch-bank/pkg/currencypkg"
	"github.com/go-petr/branch-bank/pkg/logpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.New(config)

	if err := run(logger.WithContext(context.Background()), config, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("cannot build bank")
	}
}

func run(ctx context.Context, config configpkg.Config, out io.Writer) error {
	l := zerolog.Ctx(ctx)

	f, err := seed.Load(config.SeedFile)
	if err != nil {
		return err
	}

	bank := domain.NewBank(f.Bank,
		domain.WithLogger(*l),
		domain.WithPrinter(report.NewPrinter(out, currencypkg.Symbol(config.Currency))),
	)

	summary := seed.Apply(ctx, bank, f)

	l.Info().
		Str("bank", bank.Name()).
		Int("branches", summary.Branches).
		Int("customers", summary.Customers).
		Int("transactions", summary.Transactions).
		Int("rejected", summary.Rejected).
		Msg("bank loaded")

	for _, branch := range bank.Branches() {
		bank.ListCustomers(branch, config.IncludeTransactions)
	}

	return nil
}
