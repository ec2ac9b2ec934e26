// Package ledger holds the account model and the registry that owns every account.
package ledger

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateAccount = errors.New("account already exists")
	ErrInvalidVariant   = errors.New("invalid account type")
)

// Option configures a Ledger
type Option func(*Ledger)

// WithInterestRate sets the rate given to newly created savings accounts
func WithInterestRate(rate decimal.Decimal) Option {
	return func(l *Ledger) {
		l.interestRate = rate
	}
}

// WithOverdraftLimit sets the limit given to newly created current accounts
func WithOverdraftLimit(limit decimal.Decimal) Option {
	return func(l *Ledger) {
		l.overdraftLimit = limit
	}
}

// WithClock overrides the time source used to stamp new accounts
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// Ledger maps account numbers to accounts. It is the only place accounts are
// constructed and they are never removed.
type Ledger struct {
	mu             sync.RWMutex
	accounts       map[string]Account
	interestRate   decimal.Decimal
	overdraftLimit decimal.Decimal
	now            func() time.Time
}

// New creates an empty ledger
func New(opts ...Option) *Ledger {
	l := &Ledger{
		accounts:       make(map[string]Account),
		interestRate:   DefaultInterestRate,
		overdraftLimit: DefaultOverdraftLimit,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// ParseKind resolves a user supplied account type, ignoring case and surrounding whitespace
func ParseKind(s string) (Kind, error) {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(s))); kind {
	case KindSavings, KindCurrent:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVariant, s)
	}
}

// CreateAccount opens an account of the given kind with a zero balance.
// The registry is left unchanged on error.
func (l *Ledger) CreateAccount(kind Kind, number, holder string) (Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.accounts[number]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, number)
	}

	var account Account
	switch kind {
	case KindSavings:
		account = newSavingsAccount(number, holder, l.interestRate, l.now())
	case KindCurrent:
		account = newCurrentAccount(number, holder, l.overdraftLimit, l.now())
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, kind)
	}

	l.accounts[number] = account
	return account, nil
}

// GetAccount looks up an account by number
func (l *Ledger) GetAccount(number string) (Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.accounts[number]
	return account, ok
}

// Accounts returns every account ordered by account number
func (l *Ledger) Accounts() []Account {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Account, 0, len(l.accounts))
	for _, account := range l.accounts {
		out = append(out, account)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Number() < out[j].Number()
	})

	return out
}

// Len returns the number of accounts in the ledger
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accounts)
}
