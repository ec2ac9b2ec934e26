package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bank-ledger/internal/config"
	"bank-ledger/internal/ledger"
	"bank-ledger/internal/services"
	"bank-ledger/internal/shell"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bank: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg, errOut)
	reg := prometheus.NewRegistry()

	registry := ledger.New(
		ledger.WithInterestRate(cfg.Ledger.SavingsInterestRate),
		ledger.WithOverdraftLimit(cfg.Ledger.CurrentOverdraftLimit),
	)
	service := services.NewBankService(
		registry,
		services.NewLedgerLogger(logger),
		services.NewPrometheusMetrics(reg),
	)
	sh := shell.New(service, in, out, shell.WithLogger(logger))

	logger.Info("ledger started",
		slog.String("environment", cfg.App.Environment),
		slog.String("savings_interest_rate", cfg.Ledger.SavingsInterestRate.String()),
		slog.String("current_overdraft_limit", cfg.Ledger.CurrentOverdraftLimit.String()),
	)

	// the shell blocks on input, so run it aside and let a signal end the process
	done := make(chan error, 1)
	go func() {
		done <- sh.Run(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		logger.Info("interrupted, shutting down")
		err = nil
	}
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if path := cfg.Metrics.TextfilePath; path != "" {
		if werr := prometheus.WriteToTextfile(path, reg); werr != nil {
			logger.Error("failed to write metrics", slog.String("path", path), slog.String("error", werr.Error()))
		}
	}

	logSummary(context.WithoutCancel(ctx), logger, service)
	return err
}

// logSummary records the final state of every account
func logSummary(ctx context.Context, logger *slog.Logger, service services.BankServiceInterface) {
	accounts := service.ListAccounts(ctx)
	for _, account := range accounts {
		logger.DebugContext(ctx, "account at exit",
			slog.String("account_number", account.Number()),
			slog.String("account_type", string(account.Kind())),
			slog.String("balance", account.Balance().String()),
		)
	}
	logger.InfoContext(ctx, "ledger stopped", slog.Int("accounts", len(accounts)))
}

// newLogger builds the process logger. Development builds also report the source location.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Log.Level,
		AddSource: cfg.IsDevelopment(),
	}

	if cfg.Log.Format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
