package services

import (
	"context"
	"testing"

	"bank-ledger/internal/ledger"
	"bank-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BankServiceMockSuite verifies the service's collaboration with its dependencies
type BankServiceMockSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	registry *service_mocks.MockAccountRegistryInterface
	logger   *service_mocks.MockLedgerLoggerInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	service  BankServiceInterface
	ctx      context.Context
}

func (s *BankServiceMockSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registry = service_mocks.NewMockAccountRegistryInterface(s.ctrl)
	s.logger = service_mocks.NewMockLedgerLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewBankService(s.registry, s.logger, s.metrics)
	s.ctx = WithCorrelationID(context.Background(), "corr-1")
}

func (s *BankServiceMockSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBankServiceMockSuite(t *testing.T) {
	suite.Run(t, new(BankServiceMockSuite))
}

func (s *BankServiceMockSuite) expectTimed(operation, status string) {
	s.metrics.EXPECT().IncrementCounter(MetricOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
	s.metrics.EXPECT().RecordProcessingTime(MetricOperation, gomock.Any())
}

func (s *BankServiceMockSuite) TestCreateAccount_LogsAndRefreshesGauge() {
	account, err := ledger.New().CreateAccount(ledger.KindCurrent, "C1", "Holder")
	s.Require().NoError(err)

	s.registry.EXPECT().CreateAccount(ledger.KindCurrent, "C1", "Holder").Return(account, nil)
	s.registry.EXPECT().Accounts().Return([]ledger.Account{account})
	s.logger.EXPECT().LogAccountCreated(s.ctx, account)
	s.expectTimed(OperationCreate, "success")
	s.metrics.EXPECT().RecordGauge(MetricAccounts, 1.0, map[string]string{"kind": "current"})
	s.metrics.EXPECT().RecordGauge(MetricAccounts, 0.0, map[string]string{"kind": "savings"})

	got, err := s.service.CreateAccount(s.ctx, " Current ", "C1", "Holder")
	s.NoError(err)
	s.Same(account, got)
}

func (s *BankServiceMockSuite) TestCreateAccount_InvalidTypeIsRejectedByRegistry() {
	s.registry.EXPECT().CreateAccount(ledger.Kind("premium"), "X1", "Holder").
		Return(nil, ledger.ErrInvalidVariant)
	s.logger.EXPECT().LogOperationRejected(s.ctx, OperationCreate, "X1", gomock.Any()).
		Do(func(_ context.Context, _, _ string, err error) {
			s.ErrorIs(err, ledger.ErrInvalidVariant)
		})
	s.expectTimed(OperationCreate, "failed_invalid_variant")

	account, err := s.service.CreateAccount(s.ctx, "premium", "X1", "Holder")
	s.ErrorIs(err, ledger.ErrInvalidVariant)
	s.Nil(account)
}

func (s *BankServiceMockSuite) TestWithdraw_NotFoundIsLoggedAsRejection() {
	s.registry.EXPECT().GetAccount("ghost").Return(nil, false)
	s.logger.EXPECT().LogOperationRejected(s.ctx, OperationWithdraw, "ghost", gomock.Any())
	s.expectTimed(OperationWithdraw, "failed_account_not_found")

	_, err := s.service.Withdraw(s.ctx, "ghost", decimal.NewFromInt(5))
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *BankServiceMockSuite) TestDeposit_RecordsBalanceChange() {
	account, err := ledger.New().CreateAccount(ledger.KindSavings, "S1", "Holder")
	s.Require().NoError(err)

	s.registry.EXPECT().GetAccount("S1").Return(account, true)
	s.logger.EXPECT().LogBalanceChanged(s.ctx, OperationDeposit, "S1", gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _, _ string, before, after decimal.Decimal) {
			s.True(before.IsZero())
			s.True(decimal.NewFromInt(40).Equal(after))
		})
	s.expectTimed(OperationDeposit, "success")
	s.metrics.EXPECT().ObserveValue(MetricBalanceChange, 40.0, map[string]string{"operation": OperationDeposit})

	balance, err := s.service.Deposit(s.ctx, "S1", decimal.NewFromInt(40))
	s.NoError(err)
	s.True(decimal.NewFromInt(40).Equal(balance))
}

func (s *BankServiceMockSuite) TestListAccounts_PassesThrough() {
	s.registry.EXPECT().Accounts().Return(nil)
	s.Empty(s.service.ListAccounts(s.ctx))
}

func TestFailureReason(t *testing.T) {
	cases := map[error]string{
		ledger.ErrInvalidAmount:        "invalid_amount",
		ledger.ErrInsufficientBalance:  "insufficient_balance",
		ledger.ErrOverdraftExceeded:    "overdraft_exceeded",
		ledger.ErrUnsupportedOperation: "unsupported_operation",
		ledger.ErrDuplicateAccount:     "duplicate_account",
		ledger.ErrInvalidVariant:       "invalid_variant",
		ErrAccountNotFound:             "account_not_found",
		context.DeadlineExceeded:       "unknown",
	}

	for err, want := range cases {
		if got := failureReason(err); got != want {
			t.Errorf("failureReason(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestCorrelationID(t *testing.T) {
	if got := CorrelationID(context.Background()); got != "" {
		t.Fatalf("expected empty correlation ID, got %q", got)
	}

	ctx := WithCorrelationID(context.Background(), "abc")
	if got := CorrelationID(ctx); got != "abc" {
		t.Fatalf("CorrelationID() = %q, want abc", got)
	}
}
