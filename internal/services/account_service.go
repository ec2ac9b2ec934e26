package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-ledger/internal/ledger"

	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// Operation names used in logs and metrics
const (
	OperationCreate   = "create"
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
	OperationInterest = "apply_interest"
)

// bankService implements BankServiceInterface on top of an account registry
type bankService struct {
	registry AccountRegistryInterface
	logger   LedgerLoggerInterface
	metrics  MetricsRecorderInterface
}

// NewBankService creates a bank service over registry
func NewBankService(
	registry AccountRegistryInterface,
	logger LedgerLoggerInterface,
	metrics MetricsRecorderInterface,
) BankServiceInterface {
	return &bankService{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
	}
}

// CreateAccount opens a savings or current account. accountType is matched case-insensitively.
func (s *bankService) CreateAccount(ctx context.Context, accountType, accountNumber, accountHolder string) (ledger.Account, error) {
	start := time.Now()

	// unknown types go through unchanged so a taken number is still reported first
	kind, err := ledger.ParseKind(accountType)
	if err != nil {
		kind = ledger.Kind(accountType)
	}

	account, err := s.registry.CreateAccount(kind, accountNumber, accountHolder)
	if err != nil {
		s.reject(ctx, OperationCreate, accountNumber, err, start)
		return nil, err
	}

	s.logger.LogAccountCreated(ctx, account)
	s.succeed(OperationCreate, start)
	s.refreshAccountGauge()

	return account, nil
}

// GetAccount looks up an account, reporting ErrAccountNotFound when absent
func (s *bankService) GetAccount(_ context.Context, accountNumber string) (ledger.Account, error) {
	account, ok := s.registry.GetAccount(accountNumber)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountNumber)
	}
	return account, nil
}

// Deposit credits amount to the account and returns the new balance
func (s *bankService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.mutate(ctx, OperationDeposit, accountNumber, func(account ledger.Account) (decimal.Decimal, error) {
		return account.Deposit(amount)
	})
}

// Withdraw debits amount from the account under its variant's rule and returns the new balance
func (s *bankService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	return s.mutate(ctx, OperationWithdraw, accountNumber, func(account ledger.Account) (decimal.Decimal, error) {
		return account.Withdraw(amount)
	})
}

// ApplyInterest credits interest to a savings account and returns the new balance
func (s *bankService) ApplyInterest(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	return s.mutate(ctx, OperationInterest, accountNumber, func(account ledger.Account) (decimal.Decimal, error) {
		return account.ApplyInterest()
	})
}

// ListAccounts returns every account ordered by number
func (s *bankService) ListAccounts(_ context.Context) []ledger.Account {
	return s.registry.Accounts()
}

// mutate runs op against the named account and takes care of logging and metrics
func (s *bankService) mutate(ctx context.Context, operation, accountNumber string, op func(ledger.Account) (decimal.Decimal, error)) (decimal.Decimal, error) {
	start := time.Now()

	account, err := s.GetAccount(ctx, accountNumber)
	if err != nil {
		s.reject(ctx, operation, accountNumber, err, start)
		return decimal.Zero, err
	}

	before := account.Balance()
	balance, err := op(account)
	if err != nil {
		s.reject(ctx, operation, accountNumber, err, start)
		return balance, fmt.Errorf("%s %s: %w", operation, accountNumber, err)
	}

	s.logger.LogBalanceChanged(ctx, operation, accountNumber, before, balance)
	s.succeed(operation, start)
	s.metrics.ObserveValue(MetricBalanceChange, balance.Sub(before).InexactFloat64(), map[string]string{
		"operation": operation,
	})

	return balance, nil
}

func (s *bankService) succeed(operation string, start time.Time) {
	s.metrics.IncrementCounter(MetricOperation, map[string]string{
		"operation": operation,
		"status":    "success",
	})
	s.metrics.RecordProcessingTime(MetricOperation, time.Since(start))
}

func (s *bankService) reject(ctx context.Context, operation, accountNumber string, err error, start time.Time) {
	s.logger.LogOperationRejected(ctx, operation, accountNumber, err)
	s.metrics.IncrementCounter(MetricOperation, map[string]string{
		"operation": operation,
		"status":    "failed_" + failureReason(err),
	})
	s.metrics.RecordProcessingTime(MetricOperation, time.Since(start))
}

func (s *bankService) refreshAccountGauge() {
	counts := map[ledger.Kind]int{
		ledger.KindSavings: 0,
		ledger.KindCurrent: 0,
	}
	for _, account := range s.registry.Accounts() {
		counts[account.Kind()]++
	}

	for kind, n := range counts {
		s.metrics.RecordGauge(MetricAccounts, float64(n), map[string]string{"kind": string(kind)})
	}
}

// failureReason returns a stable label for err suitable for metrics and logs
func failureReason(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ledger.ErrOverdraftExceeded):
		return "overdraft_exceeded"
	case errors.Is(err, ledger.ErrUnsupportedOperation):
		return "unsupported_operation"
	case errors.Is(err, ledger.ErrDuplicateAccount):
		return "duplicate_account"
	case errors.Is(err, ledger.ErrInvalidVariant):
		return "invalid_variant"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	default:
		return "unknown"
	}
}
