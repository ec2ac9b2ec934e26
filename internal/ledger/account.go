package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies an account variant
type Kind string

const (
	KindSavings Kind = "savings"
	KindCurrent Kind = "current"
)

var (
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrOverdraftExceeded    = errors.New("overdraft limit exceeded")
	ErrUnsupportedOperation = errors.New("operation not supported for this account type")
)

var (
	// DefaultInterestRate is applied to savings accounts created without an explicit rate
	DefaultInterestRate = decimal.NewFromFloat(0.02)

	// DefaultOverdraftLimit is applied to current accounts created without an explicit limit
	DefaultOverdraftLimit = decimal.NewFromInt(500)
)

// Account is the capability set shared by every account variant.
// All mutating operations return the resulting balance, or a sentinel error
// in which case the balance is left untouched.
type Account interface {
	ID() uuid.UUID
	Number() string
	Holder() string
	Kind() Kind
	CreatedAt() time.Time
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(amount decimal.Decimal) (decimal.Decimal, error)
	ApplyInterest() (decimal.Decimal, error)
	Describe() string
}

// Savings is implemented by accounts that accrue interest
type Savings interface {
	Account
	InterestRate() decimal.Decimal
}

// Current is implemented by accounts that may be overdrawn
type Current interface {
	Account
	OverdraftLimit() decimal.Decimal
}

// account holds the state common to both variants
type account struct {
	mu        sync.Mutex
	id        uuid.UUID
	number    string
	holder    string
	kind      Kind
	balance   decimal.Decimal
	createdAt time.Time
}

func (a *account) ID() uuid.UUID        { return a.id }
func (a *account) Number() string       { return a.number }
func (a *account) Holder() string       { return a.holder }
func (a *account) Kind() Kind           { return a.kind }
func (a *account) CreatedAt() time.Time { return a.createdAt }

// Balance returns the current balance
func (a *account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit credits a positive amount to the account
func (a *account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.Balance(), ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Describe renders the one-line account summary
func (a *account) Describe() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fmt.Sprintf("Account[%s]: %s, Balance: %s", a.number, a.holder, a.balance.String())
}

// withdraw debits amount as long as the balance stays at or above -allowance.
// shortErr is returned when it would not.
func (a *account) withdraw(amount, allowance decimal.Decimal, shortErr error) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.Balance(), ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance.Add(allowance)) {
		return a.balance, shortErr
	}

	a.balance = a.balance.Sub(amount)
	return a.balance, nil
}

// savingsAccount never goes below zero and accrues interest on demand
type savingsAccount struct {
	account
	interestRate decimal.Decimal
}

func newSavingsAccount(number, holder string, rate decimal.Decimal, createdAt time.Time) *savingsAccount {
	return &savingsAccount{
		account: account{
			id:        uuid.New(),
			number:    number,
			holder:    holder,
			kind:      KindSavings,
			balance:   decimal.Zero,
			createdAt: createdAt,
		},
		interestRate: rate,
	}
}

func (s *savingsAccount) InterestRate() decimal.Decimal { return s.interestRate }

// Withdraw debits the account if the balance covers the full amount
func (s *savingsAccount) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	return s.withdraw(amount, decimal.Zero, ErrInsufficientBalance)
}

// ApplyInterest credits balance * rate to the account
func (s *savingsAccount) ApplyInterest() (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balance = s.balance.Add(s.balance.Mul(s.interestRate))
	return s.balance, nil
}

// currentAccount may be overdrawn down to -overdraftLimit
type currentAccount struct {
	account
	overdraftLimit decimal.Decimal
}

func newCurrentAccount(number, holder string, limit decimal.Decimal, createdAt time.Time) *currentAccount {
	return &currentAccount{
		account: account{
			id:        uuid.New(),
			number:    number,
			holder:    holder,
			kind:      KindCurrent,
			balance:   decimal.Zero,
			createdAt: createdAt,
		},
		overdraftLimit: limit,
	}
}

func (c *currentAccount) OverdraftLimit() decimal.Decimal { return c.overdraftLimit }

// Withdraw debits the account if balance plus the overdraft limit covers the amount
func (c *currentAccount) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	return c.withdraw(amount, c.overdraftLimit, ErrOverdraftExceeded)
}

// ApplyInterest is rejected: current accounts do not accrue interest
func (c *currentAccount) ApplyInterest() (decimal.Decimal, error) {
	return c.Balance(), ErrUnsupportedOperation
}
