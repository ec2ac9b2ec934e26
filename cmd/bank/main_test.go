package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bank-ledger/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T, metricsPath string) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("APP_ENV", "testing")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SAVINGS_INTEREST_RATE", "0.1")
	t.Setenv("CURRENT_OVERDRAFT_LIMIT", "")
	t.Setenv("METRICS_TEXTFILE", metricsPath)
}

func TestRun_SessionWritesMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "ledger.prom")
	setTestEnv(t, metricsPath)

	input := strings.NewReader(strings.Join([]string{
		"1", "savings", "A1", "Alice",
		"3", "A1", "100",
		"5", "A1",
		"6",
	}, "\n") + "\n")
	var out, logs bytes.Buffer

	require.NoError(t, run(context.Background(), input, &out, &logs))

	assert.Contains(t, out.String(), "Interest applied! New balance: 110")
	assert.Contains(t, logs.String(), `"msg":"ledger started"`)
	assert.Contains(t, logs.String(), `"event_type":"balance_changed"`)
	assert.Contains(t, logs.String(), `"msg":"ledger stopped","accounts":1`)

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `ledger_operations_total{operation="create",status="success"} 1`)
	assert.Contains(t, string(metrics), `ledger_accounts_total{kind="savings"} 1`)
}

func TestRun_InvalidConfig(t *testing.T) {
	setTestEnv(t, "")
	t.Setenv("LOG_FORMAT", "yaml")

	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to load config")
}

func TestRun_CancelledContext(t *testing.T) {
	setTestEnv(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, strings.NewReader("6\n"), &bytes.Buffer{}, &bytes.Buffer{}))
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		format      string
		wantSource  bool
		wantPrefix  string
	}{
		{name: "development text", environment: "development", format: config.LogFormatText, wantSource: true, wantPrefix: "time="},
		{name: "production json", environment: "production", format: config.LogFormatJSON, wantPrefix: "{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				App: config.AppConfig{Environment: tt.environment},
				Log: config.LogConfig{Level: slog.LevelInfo, Format: tt.format},
			}
			var buf bytes.Buffer

			logger := newLogger(cfg, &buf)
			logger.Debug("hidden")
			logger.Info("shown")

			assert.True(t, strings.HasPrefix(buf.String(), tt.wantPrefix))
			assert.Contains(t, buf.String(), "shown")
			assert.NotContains(t, buf.String(), "hidden")
			assert.Equal(t, tt.wantSource, strings.Contains(buf.String(), "main_test.go"))
		})
	}
}
