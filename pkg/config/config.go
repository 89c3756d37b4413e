package config

import (
	"github.com/shopspring/decimal"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[ledger]"`
}

// Bank holds the rules new accounts are opened with.
type Bank struct {
	BranchCode      string          `envconfig:"BRANCH_CODE" default:"0001"`
	WithdrawalLimit decimal.Decimal `envconfig:"WITHDRAWAL_LIMIT" default:"500"`
	MaxWithdrawals  int             `envconfig:"MAX_WITHDRAWALS" default:"3"`
	CurrencySymbol  string          `envconfig:"CURRENCY_SYMBOL" default:"R$"`
}

type App struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Log  *Log   `envconfig:"LOG"`
	Bank *Bank  `envconfig:"BANK"`
}
