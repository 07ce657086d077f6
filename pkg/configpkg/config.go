// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/go-petr/branch-bank/pkg/currencypkg"
)

// ErrUnsupportedCurrency indicates that the configured currency is not supported.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment         string `mapstructure:"GO_ENV"`
	LogLevel            string `mapstructure:"LOG_LEVEL"`
	SeedFile            string `mapstructure:"SEED_FILE"`
	IncludeTransactions bool   `mapstructure:"INCLUDE_TRANSACTIONS"`
	Currency            string `mapstructure:"CURRENCY"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_FILE", "./configs/seed.yaml")
	v.SetDefault("INCLUDE_TRANSACTIONS", true)
	v.SetDefault("CURRENCY", currencypkg.USD)
}

// Load reads configuration from the app.env file in path and from environment variables.
// A missing app.env is not an error; defaults and the environment still apply.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unmarshal config: %w", err)
	}

	if !currencypkg.IsSupportedCurrency(c.Currency) {
		return c, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, c.Currency)
	}

	return c, nil
}
