package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"bank-ledger/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLedgerLogger() (LedgerLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewLedgerLogger(logger), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLedgerLogger_AccountCreated(t *testing.T) {
	ll, buf := newBufferedLedgerLogger()
	account, err := ledger.New().CreateAccount(ledger.KindSavings, "A1", "Alice")
	require.NoError(t, err)

	ll.LogAccountCreated(WithCorrelationID(context.Background(), "corr-42"), account)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "account created", entries[0]["msg"])
	assert.Equal(t, "account_created", entries[0]["event_type"])
	assert.Equal(t, "A1", entries[0]["account_number"])
	assert.Equal(t, "savings", entries[0]["account_type"])
	assert.Equal(t, account.ID().String(), entries[0]["account_id"])
	assert.Equal(t, "corr-42", entries[0]["correlation_id"])
}

func TestLedgerLogger_BalanceChanged(t *testing.T) {
	ll, buf := newBufferedLedgerLogger()

	ll.LogBalanceChanged(context.Background(), OperationWithdraw, "C1", decimal.NewFromInt(0), decimal.NewFromInt(-300))

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "withdraw", entries[0]["operation"])
	assert.Equal(t, "0", entries[0]["old_balance"])
	assert.Equal(t, "-300", entries[0]["new_balance"])
	assert.Equal(t, "", entries[0]["correlation_id"])
}

func TestLedgerLogger_OperationRejected(t *testing.T) {
	ll, buf := newBufferedLedgerLogger()

	ll.LogOperationRejected(context.Background(), OperationWithdraw, "C1", ledger.ErrOverdraftExceeded)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "operation_rejected", entries[0]["event_type"])
	assert.Equal(t, "overdraft_exceeded", entries[0]["reason"])
	assert.Equal(t, "overdraft limit exceeded", entries[0]["error"])
}
