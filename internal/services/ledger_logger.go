package services

import (
	"context"
	"log/slog"
	"time"

	"bank-ledger/internal/ledger"

	"github.com/shopspring/decimal"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying id for log correlation
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the correlation ID stored in ctx, or "" if there is none
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}

	return ""
}

type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	return &LedgerLogger{
		logger: logger,
	}
}

func (ll *LedgerLogger) LogAccountCreated(ctx context.Context, account ledger.Account) {
	ll.logger.InfoContext(ctx, "account created",
		slog.String("event_type", "account_created"),
		slog.String("account_id", account.ID().String()),
		slog.String("account_number", account.Number()),
		slog.String("account_type", string(account.Kind())),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (ll *LedgerLogger) LogBalanceChanged(ctx context.Context, operation, accountNumber string, oldBalance, newBalance decimal.Decimal) {
	ll.logger.InfoContext(ctx, "balance changed",
		slog.String("event_type", "balance_changed"),
		slog.String("operation", operation),
		slog.String("account_number", accountNumber),
		slog.String("old_balance", oldBalance.String()),
		slog.String("new_balance", newBalance.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// LogOperationRejected records a validation failure. These are expected
// outcomes so they are logged at info, not warn.
func (ll *LedgerLogger) LogOperationRejected(ctx context.Context, operation, accountNumber string, err error) {
	ll.logger.InfoContext(ctx, "operation rejected",
		slog.String("event_type", "operation_rejected"),
		slog.String("operation", operation),
		slog.String("account_number", accountNumber),
		slog.String("reason", failureReason(err)),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}
