// Package config loads application settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig is returned when loaded values break a bank rule.
var ErrInvalidConfig = errors.New("invalid configuration")

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Debug("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Debug("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"branch", cfg.Bank.BranchCode,
		"withdrawal_limit", cfg.Bank.WithdrawalLimit.String(),
		"max_withdrawals", cfg.Bank.MaxWithdrawals,
	)
	return &cfg, nil
}

// Validate checks the bank rules are usable.
func (c *App) Validate() error {
	if c.Bank == nil {
		return fmt.Errorf("%w: missing bank section", ErrInvalidConfig)
	}
	if c.Bank.BranchCode == "" {
		return fmt.Errorf("%w: empty branch code", ErrInvalidConfig)
	}
	if c.Bank.WithdrawalLimit.IsNegative() {
		return fmt.Errorf("%w: negative withdrawal limit", ErrInvalidConfig)
	}
	if c.Bank.MaxWithdrawals < 0 {
		return fmt.Errorf("%w: negative max withdrawals", ErrInvalidConfig)
	}
	return nil
}
