// Package shell implements the interactive text menu in front of the bank service.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"bank-ledger/internal/dto"
	apperrors "bank-ledger/internal/errors"
	"bank-ledger/internal/services"
	"bank-ledger/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Menu options
const (
	ChoiceCreateAccount = iota + 1
	ChoiceViewAccount
	ChoiceDeposit
	ChoiceWithdraw
	ChoiceApplyInterest
	ChoiceExit
)

var menu = []string{
	"",
	"--- Bank Management System ---",
	"1. Create Account",
	"2. View Account Details",
	"3. Deposit Money",
	"4. Withdraw Money",
	"5. Apply Interest (Savings Account)",
	"6. Exit",
}

// errExit ends the loop after the exit option
var errExit = errors.New("exit requested")

// Shell reads menu selections and field values line by line and dispatches
// them to the bank service. Failed operations are printed and the menu is shown again.
type Shell struct {
	service   services.BankServiceInterface
	scanner   *bufio.Scanner
	out       io.Writer
	validator *validation.Validator
	logger    *slog.Logger
	newID     func() string
	title     cases.Caser
}

// Option configures a Shell
type Option func(*Shell)

// WithLogger sets the logger used for command diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(sh *Shell) {
		sh.logger = logger
	}
}

// WithIDGenerator overrides how per-command correlation IDs are produced
func WithIDGenerator(newID func() string) Option {
	return func(sh *Shell) {
		sh.newID = newID
	}
}

// New creates a shell reading from in and writing to out
func New(service services.BankServiceInterface, in io.Reader, out io.Writer, opts ...Option) *Shell {
	sh := &Shell{
		service:   service,
		scanner:   bufio.NewScanner(in),
		out:       out,
		validator: validation.GetValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:     uuid.NewString,
		title:     cases.Title(language.English),
	}

	for _, opt := range opts {
		opt(sh)
	}

	return sh
}

// Run shows the menu until the user exits or input ends. Only input read
// failures and context cancellation are returned.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sh.printMenu()
		raw, err := sh.prompt("Enter your choice: ")
		if err != nil {
			return sh.stop(err)
		}

		cmdCtx := services.WithCorrelationID(ctx, sh.newID())
		if err := sh.dispatch(cmdCtx, raw); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return sh.stop(err)
		}
	}
}

// stop turns end of input into a clean exit
func (sh *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		sh.println("")
		sh.println("Exiting the system. Goodbye!")
		return nil
	}
	return err
}

func (sh *Shell) dispatch(ctx context.Context, raw string) error {
	req := dto.MenuChoiceRequest{Choice: raw}
	if err := sh.validator.Struct(req); err != nil {
		sh.report(ctx, err)
		return nil
	}

	switch req.Value() {
	case ChoiceCreateAccount:
		return sh.createAccount(ctx)
	case ChoiceViewAccount:
		return sh.viewAccount(ctx)
	case ChoiceDeposit:
		return sh.deposit(ctx)
	case ChoiceWithdraw:
		return sh.withdraw(ctx)
	case ChoiceApplyInterest:
		return sh.applyInterest(ctx)
	case ChoiceExit:
		sh.println("Exiting the system. Goodbye!")
		return errExit
	default:
		sh.report(ctx, fmt.Errorf("%w: %d", validation.ErrInvalidChoice, req.Value()))
		return nil
	}
}

func (sh *Shell) createAccount(ctx context.Context) error {
	var req dto.CreateAccountRequest
	var err error

	if req.AccountType, err = sh.prompt("Enter account type (savings/current): "); err != nil {
		return err
	}
	if req.AccountNumber, err = sh.prompt("Enter account number: "); err != nil {
		return err
	}
	if req.AccountHolder, err = sh.prompt("Enter account holder name: "); err != nil {
		return err
	}

	if err := sh.validator.Struct(req); err != nil {
		sh.report(ctx, err)
		return nil
	}

	account, err := sh.service.CreateAccount(ctx, req.AccountType, req.AccountNumber, req.AccountHolder)
	if err != nil {
		sh.report(ctx, err)
		return nil
	}

	sh.printf("%s account created successfully!\n", sh.title.String(string(account.Kind())))
	return nil
}

func (sh *Shell) viewAccount(ctx context.Context) error {
	number, ok, err := sh.promptAccountNumber(ctx)
	if err != nil || !ok {
		return err
	}

	account, err := sh.service.GetAccount(ctx, number)
	if err != nil {
		sh.report(ctx, err)
		return nil
	}

	sh.println(account.Describe())
	return nil
}

func (sh *Shell) deposit(ctx context.Context) error {
	number, amount, ok, err := sh.promptAccountAndAmount(ctx, "Enter amount to deposit: ")
	if err != nil || !ok {
		return err
	}

	balance, err := sh.service.Deposit(ctx, number, amount.Value())
	if err != nil {
		sh.report(ctx, err)
		return nil
	}

	sh.printf("Deposit successful! New balance: %s\n", balance.String())
	return nil
}

func (sh *Shell) withdraw(ctx context.Context) error {
	number, amount, ok, err := sh.promptAccountAndAmount(ctx, "Enter amount to withdraw: ")
	if err != nil || !ok {
		return err
	}

	balance, err := sh.service.Withdraw(ctx, number, amount.Value())
	if err != nil {
		sh.report(ctx, err)
		return nil
	}

	sh.printf("Withdrawal successful! New balance: %s\n", balance.String())
	return nil
}

func (sh *Shell) applyInterest(ctx context.Context) error {
	number, ok, err := sh.promptAccountNumber(ctx)
	if err != nil || !ok {
		return err
	}

	balance, err := sh.service.ApplyInterest(ctx, number)
	if err != nil {
		sh.report(ctx, err)
		return nil
	}

	sh.printf("Interest applied! New balance: %s\n", balance.String())
	return nil
}

// promptAccountNumber reads and validates an account number. ok is false when
// the entry was rejected and already reported.
func (sh *Shell) promptAccountNumber(ctx context.Context) (string, bool, error) {
	raw, err := sh.prompt("Enter account number: ")
	if err != nil {
		return "", false, err
	}

	req := dto.AccountNumberRequest{AccountNumber: raw}
	if err := sh.validator.Struct(req); err != nil {
		sh.report(ctx, err)
		return "", false, nil
	}

	return req.AccountNumber, true, nil
}

// promptAccountAndAmount confirms the account exists before asking for the amount
func (sh *Shell) promptAccountAndAmount(ctx context.Context, label string) (string, dto.AmountRequest, bool, error) {
	var req dto.AmountRequest

	number, ok, err := sh.promptAccountNumber(ctx)
	if err != nil || !ok {
		return "", req, false, err
	}

	if _, err := sh.service.GetAccount(ctx, number); err != nil {
		sh.report(ctx, err)
		return "", req, false, nil
	}

	if req.Amount, err = sh.prompt(label); err != nil {
		return "", req, false, err
	}

	if err := sh.validator.Struct(req); err != nil {
		sh.report(ctx, err)
		return "", req, false, nil
	}

	return number, req, true, nil
}

func (sh *Shell) prompt(label string) (string, error) {
	sh.printf("%s", label)

	if !sh.scanner.Scan() {
		if err := sh.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(sh.scanner.Text()), nil
}

func (sh *Shell) report(ctx context.Context, err error) {
	response := apperrors.FromError(err, services.CorrelationID(ctx))

	level := slog.LevelDebug
	if response.Code == apperrors.SystemUnexpectedError {
		level = slog.LevelError
	}
	sh.logger.Log(ctx, level, "command failed",
		slog.String("code", string(response.Code)),
		slog.String("error", err.Error()),
		slog.String("correlation_id", response.CorrelationID),
	)

	sh.println(response.String())
}

func (sh *Shell) printMenu() {
	for _, line := range menu {
		sh.println(line)
	}
}

func (sh *Shell) println(line string) {
	fmt.Fprintln(sh.out, line)
}

func (sh *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(sh.out, format, args...)
}
