package services

import (
	"context"
	"time"

	"bank-ledger/internal/ledger"

	"github.com/shopspring/decimal"
)

// BankServiceInterface defines the ledger operations offered to the shell
type BankServiceInterface interface {
	CreateAccount(ctx context.Context, accountType, accountNumber, accountHolder string) (ledger.Account, error)
	GetAccount(ctx context.Context, accountNumber string) (ledger.Account, error)
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error)
	ApplyInterest(ctx context.Context, accountNumber string) (decimal.Decimal, error)
	ListAccounts(ctx context.Context) []ledger.Account
}

// AccountRegistryInterface is the account store the bank service operates on
type AccountRegistryInterface interface {
	CreateAccount(kind ledger.Kind, accountNumber, accountHolder string) (ledger.Account, error)
	GetAccount(accountNumber string) (ledger.Account, bool)
	Accounts() []ledger.Account
}

// LedgerLoggerInterface defines structured logging for ledger operations
type LedgerLoggerInterface interface {
	LogAccountCreated(ctx context.Context, account ledger.Account)
	LogBalanceChanged(ctx context.Context, operation, accountNumber string, oldBalance, newBalance decimal.Decimal)
	LogOperationRejected(ctx context.Context, operation, accountNumber string, err error)
}

// MetricsRecorderInterface defines the metrics sink used by the bank service
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	ObserveValue(name string, value float64, tags map[string]string)
}
