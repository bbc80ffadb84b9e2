package handlers

import (
	"BankLedger/internal/adapters/console"
	"BankLedger/internal/core/domain"
	"BankLedger/internal/core/ports"
	"BankLedger/internal/menu"
	"BankLedger/internal/shared/config"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// MockLedger is a mock for the Ledger port
type MockLedger struct {
	mock.Mock
}

var _ ports.Ledger = (*MockLedger)(nil)

func (m *MockLedger) OpenSavingsAccount(ctx context.Context, customerName string, initial, annualRate float64) (string, error) {
	args := m.Called(ctx, customerName, initial, annualRate)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) OpenCurrentAccount(ctx context.Context, customerName string, initial, overdraftLimit float64) (string, error) {
	args := m.Called(ctx, customerName, initial, overdraftLimit)
	return args.String(0), args.Error(1)
}

func (m *MockLedger) Deposit(ctx context.Context, accountID string, amount float64) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

func (m *MockLedger) Withdraw(ctx context.Context, accountID string, amount float64) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

func (m *MockLedger) Transfer(ctx context.Context, fromID, toID string, amount float64) error {
	args := m.Called(ctx, fromID, toID, amount)
	return args.Error(0)
}

func (m *MockLedger) GetBalance(ctx context.Context, accountID string) (float64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockLedger) ApplyMonthlyUpdates(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockLedger) ListAccounts(ctx context.Context) []ports.AccountSummary {
	args := m.Called(ctx)
	return args.Get(0).([]ports.AccountSummary)
}

// newTestDeps builds a mock ledger plus a real console adapter driven by
// scripted input.
func newTestDeps(input string) (*config.Config, *MockLedger, *console.Console, *bytes.Buffer) {
	nopLogger := zerolog.Nop()
	cfg := &config.Config{
		AppEnv: "test",
		Bank:   config.BankConfig{Name: "Test Bank", IDSeed: 1000},
	}
	out := &bytes.Buffer{}
	term := console.New(strings.NewReader(input), out, &nopLogger)
	return cfg, new(MockLedger), term, out
}

func nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// --- Tests ---

func TestOpenSavingsHandler(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("Alice\n100\n0.05\n")
	h := NewOpenSavingsHandler(cfg, ledger, term, nop())

	ledger.On("OpenSavingsAccount", mock.Anything, "Alice", 100.0, 0.05).
		Return("SAV-1001", nil).Once()

	require.NoError(t, h.Handle(context.Background()))

	ledger.AssertExpectations(t)
	assert.Contains(t, out.String(), "Savings account created with ID: SAV-1001")
}

func TestOpenCurrentHandler(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("Bob\n50\n20\n")
	h := NewOpenCurrentHandler(cfg, ledger, term, nop())

	ledger.On("OpenCurrentAccount", mock.Anything, "Bob", 50.0, 20.0).
		Return("CUR-1002", nil).Once()

	require.NoError(t, h.Handle(context.Background()))

	ledger.AssertExpectations(t)
	assert.Contains(t, out.String(), "Current account created with ID: CUR-1002")
}

func TestDepositHandler(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("SAV-1001\n50\n")
	h := NewDepositHandler(cfg, ledger, term, nop())

	ledger.On("Deposit", mock.Anything, "SAV-1001", 50.0).Return(nil).Once()

	require.NoError(t, h.Handle(context.Background()))

	ledger.AssertExpectations(t)
	assert.Contains(t, out.String(), "Deposit successful.")
}

func TestDepositHandler_BadNumberNeverReachesLedger(t *testing.T) {
	cfg, ledger, term, _ := newTestDeps("SAV-1001\nlots\n")
	h := NewDepositHandler(cfg, ledger, term, nop())

	err := h.Handle(context.Background())

	assert.Error(t, err)
	ledger.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawHandler_PropagatesDomainError(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("SAV-1001\n500\n")
	h := NewWithdrawHandler(cfg, ledger, term, nop())

	ledger.On("Withdraw", mock.Anything, "SAV-1001", 500.0).
		Return(fmt.Errorf("%w: savings cannot go negative", domain.ErrInsufficientFunds)).Once()

	err := h.Handle(context.Background())

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	ledger.AssertExpectations(t)
	assert.NotContains(t, out.String(), "Withdrawal successful.")
}

func TestTransferHandler(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("SAV-1001\nCUR-1002\n30\n")
	h := NewTransferHandler(cfg, ledger, term, nop())

	ledger.On("Transfer", mock.Anything, "SAV-1001", "CUR-1002", 30.0).Return(nil).Once()

	require.NoError(t, h.Handle(context.Background()))

	ledger.AssertExpectations(t)
	assert.Contains(t, out.String(), "Transfer successful.")
}

func TestBalanceHandler(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("SAV-1001\n")
	h := NewBalanceHandler(cfg, ledger, term, nop())

	ledger.On("GetBalance", mock.Anything, "SAV-1001").Return(101.0, nil).Once()

	require.NoError(t, h.Handle(context.Background()))

	ledger.AssertExpectations(t)
	assert.Contains(t, out.String(), "Balance = 101.00")
}

func TestMonthlyUpdatesHandler(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("")
	h := NewMonthlyUpdatesHandler(cfg, ledger, term, nop())

	ledger.On("ApplyMonthlyUpdates", mock.Anything).Return().Once()

	require.NoError(t, h.Handle(context.Background()))

	ledger.AssertExpectations(t)
	assert.Contains(t, out.String(), "Monthly updates applied.")
}

func TestListAccountsHandler(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("")
	h := NewListAccountsHandler(cfg, ledger, term, nop())

	ledger.On("ListAccounts", mock.Anything).Return([]ports.AccountSummary{
		{ID: "CUR-1002", Type: domain.TypeCurrent, OwnerName: "Bob", Balance: 50},
		{ID: "SAV-1001", Type: domain.TypeSavings, OwnerName: "Alice", Balance: 101},
	}).Once()

	require.NoError(t, h.Handle(context.Background()))

	ledger.AssertExpectations(t)
	assert.Contains(t, out.String(), "=== Test Bank Accounts ===")
	assert.Contains(t, out.String(), "CurrentAccount{id='CUR-1002', owner='Bob', balance=50.00}")
	assert.Contains(t, out.String(), "SavingsAccount{id='SAV-1001', owner='Alice', balance=101.00}")
}

func TestExitHandler(t *testing.T) {
	cfg, ledger, term, out := newTestDeps("")
	h := NewExitHandler(cfg, ledger, term, nop())

	err := h.Handle(context.Background())

	assert.ErrorIs(t, err, menu.ErrExit)
	assert.Contains(t, out.String(), "Exiting. Goodbye!")
}
