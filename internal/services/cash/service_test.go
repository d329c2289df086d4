package cash

import (
	"context"
	"errors"
	"testing"

	"remit/internal/clients"
	"remit/internal/models"
	"remit/internal/services/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	records   []*models.TransactionRecord
	updates   int
	createErr error
	updateErr error
	failOn    int // 1-based update call that returns updateErr
}

func (s *memStore) Create(rec *models.TransactionRecord) error {
	if s.createErr != nil {
		return s.createErr
	}
	rec.ID = uint(len(s.records) + 1)
	s.records = append(s.records, rec)
	return nil
}

func (s *memStore) Update(rec *models.TransactionRecord) error {
	s.updates++
	if s.failOn != 0 && s.updates == s.failOn {
		return s.updateErr
	}
	return nil
}

type sentNote struct {
	email   string
	message string
}

type notifierRecorder struct {
	sent []sentNote
	err  error
}

func (n *notifierRecorder) Publish(_ context.Context, email, message string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentNote{email: email, message: message})
	return nil
}

type mockLedger struct {
	mock.Mock
	lastCtx context.Context
}

func (m *mockLedger) GetProfile(ctx context.Context, login string) (*models.Profile, error) {
	m.lastCtx = ctx
	args := m.Called(login)
	if p := args.Get(0); p != nil {
		return p.(*models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedger) ApplyCash(_ context.Context, mut clients.CashMutation) (*clients.LedgerResult, error) {
	args := m.Called(mut)
	if r := args.Get(0); r != nil {
		return r.(*clients.LedgerResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedger) ApplyTransfer(_ context.Context, mut clients.TransferMutation) (*clients.LedgerResult, error) {
	args := m.Called(mut)
	if r := args.Get(0); r != nil {
		return r.(*clients.LedgerResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRisk struct {
	mock.Mock
}

func (m *mockRisk) CheckCash(_ context.Context, currency string, amount float64, direction string) (risk.CheckResult, error) {
	args := m.Called(currency, amount, direction)
	return args.Get(0).(risk.CheckResult), args.Error(1)
}

func (m *mockRisk) CheckTransfer(_ context.Context, fromCurrency, toCurrency string, amount float64, self bool) (risk.CheckResult, error) {
	args := m.Called(fromCurrency, toCurrency, amount, self)
	return args.Get(0).(risk.CheckResult), args.Error(1)
}

func holderProfile() *models.Profile {
	return &models.Profile{
		Login:       "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		Balances:    map[string]float64{"RUB": 150_000},
	}
}

func TestCashSaga_WithdrawSuccess(t *testing.T) {
	store := &memStore{}
	notifier := &notifierRecorder{}
	ledger := new(mockLedger)
	riskChecker := new(mockRisk)

	ledger.On("GetProfile", "alice").Return(holderProfile(), nil)
	riskChecker.On("CheckCash", "RUB", 10_000.0, "withdraw").Return(risk.CheckResult{}, nil)
	ledger.On("ApplyCash", clients.CashMutation{
		Login: "alice", Currency: "RUB", Amount: 10_000, Direction: "withdraw",
	}).Return(&clients.LedgerResult{Status: clients.LedgerStatusSuccess}, nil)

	s := NewService(store, ledger, riskChecker, notifier)
	outcome, err := s.Process(context.Background(), "alice", "RUB", 10_000, "withdraw")

	require.NoError(t, err)
	assert.True(t, outcome.OK())

	require.Len(t, store.records, 1)
	rec := store.records[0]
	assert.True(t, rec.Succeeded)
	assert.False(t, rec.Blocked)
	assert.Equal(t, models.OperationKindCash, rec.Kind)
	assert.NotEmpty(t, rec.ReferenceID)

	// Collaborator calls carry the operation's reference id.
	assert.Equal(t, rec.ReferenceID, clients.RequestID(ledger.lastCtx))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "alice@example.com", notifier.sent[0].email)
	assert.Contains(t, notifier.sent[0].message, "Withdrawal of 10000.00 RUB")

	ledger.AssertExpectations(t)
	riskChecker.AssertExpectations(t)
}

func TestCashSaga_BlockedByRiskScreen(t *testing.T) {
	store := &memStore{}
	notifier := &notifierRecorder{}
	ledger := new(mockLedger)
	riskChecker := new(mockRisk)

	ledger.On("GetProfile", "alice").Return(holderProfile(), nil)
	riskChecker.On("CheckCash", "RUB", 500_000.0, "withdraw").
		Return(risk.CheckResult{Blocked: true, Reason: risk.ReasonWithdrawalLimit}, nil)

	s := NewService(store, ledger, riskChecker, notifier)
	outcome, err := s.Process(context.Background(), "alice", "RUB", 500_000, "withdraw")

	require.NoError(t, err)
	assert.False(t, outcome.OK())
	assert.Equal(t, []string{risk.ReasonWithdrawalLimit}, outcome.Errors)

	rec := store.records[0]
	assert.True(t, rec.Blocked)
	assert.False(t, rec.Succeeded)

	// The ledger is never touched for a blocked operation.
	ledger.AssertNotCalled(t, "ApplyCash", mock.Anything)

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].message, risk.ReasonWithdrawalLimit)
}

func TestCashSaga_LedgerBusinessFailure(t *testing.T) {
	store := &memStore{}
	notifier := &notifierRecorder{}
	ledger := new(mockLedger)
	riskChecker := new(mockRisk)

	ledger.On("GetProfile", "alice").Return(holderProfile(), nil)
	riskChecker.On("CheckCash", "RUB", 200_000.0, "withdraw").Return(risk.CheckResult{}, nil)
	ledger.On("ApplyCash", mock.Anything).
		Return(&clients.LedgerResult{Status: clients.LedgerStatusFailed, Errors: []string{"insufficient funds"}}, nil)

	s := NewService(store, ledger, riskChecker, notifier)
	outcome, err := s.Process(context.Background(), "alice", "RUB", 200_000, "withdraw")

	require.NoError(t, err)
	assert.False(t, outcome.OK())
	assert.Equal(t, []string{"insufficient funds"}, outcome.Errors)

	rec := store.records[0]
	assert.False(t, rec.Blocked)
	assert.False(t, rec.Succeeded)
	assert.Equal(t, models.StringArray{"insufficient funds"}, rec.Errors)

	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].message, "insufficient funds")
}

func TestCashSaga_PersistFailureAfterLedgerStillNotifies(t *testing.T) {
	// Update 1 stamps the screened record, update 2 finalizes it after
	// the ledger; the second one fails.
	store := &memStore{failOn: 2, updateErr: errors.New("connection reset")}
	notifier := &notifierRecorder{}
	ledger := new(mockLedger)
	riskChecker := new(mockRisk)

	ledger.On("GetProfile", "alice").Return(holderProfile(), nil)
	riskChecker.On("CheckCash", "RUB", 10_000.0, "withdraw").Return(risk.CheckResult{}, nil)
	ledger.On("ApplyCash", mock.Anything).
		Return(&clients.LedgerResult{Status: clients.LedgerStatusSuccess}, nil)

	s := NewService(store, ledger, riskChecker, notifier)
	outcome, err := s.Process(context.Background(), "alice", "RUB", 10_000, "withdraw")

	require.Error(t, err)
	assert.Nil(t, outcome)

	// The money already moved, so the holder hears about it regardless.
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0].message, "complete")
}

func TestCashSaga_RiskUnavailable(t *testing.T) {
	store := &memStore{}
	notifier := &notifierRecorder{}
	ledger := new(mockLedger)
	riskChecker := new(mockRisk)

	ledger.On("GetProfile", "alice").Return(holderProfile(), nil)
	riskChecker.On("CheckCash", "RUB", 10_000.0, "deposit").
		Return(risk.CheckResult{}, &clients.UnavailableError{Collaborator: clients.CollaboratorRisk, Err: errors.New("connection refused")})

	s := NewService(store, ledger, riskChecker, notifier)
	outcome, err := s.Process(context.Background(), "alice", "RUB", 10_000, "deposit")

	require.Error(t, err)
	assert.Nil(t, outcome)
	assert.True(t, clients.IsUnavailable(err))

	// The ledger mutation never ran; the record is finalized unresolved.
	ledger.AssertNotCalled(t, "ApplyCash", mock.Anything)
	rec := store.records[0]
	assert.False(t, rec.Blocked)
	assert.False(t, rec.Succeeded)
	assert.NotEmpty(t, rec.Errors)

	// An outage is not a customer-facing outcome.
	assert.Empty(t, notifier.sent)
}

func TestCashSaga_UnknownLogin(t *testing.T) {
	store := &memStore{}
	notifier := &notifierRecorder{}
	ledger := new(mockLedger)
	riskChecker := new(mockRisk)

	ledger.On("GetProfile", "ghost").Return(nil, clients.ErrProfileNotFound)
	riskChecker.On("CheckCash", "RUB", 10.0, "deposit").Return(risk.CheckResult{}, nil)

	s := NewService(store, ledger, riskChecker, notifier)
	_, err := s.Process(context.Background(), "ghost", "RUB", 10, "deposit")

	require.Error(t, err)
	assert.ErrorIs(t, err, clients.ErrProfileNotFound)
	assert.Empty(t, notifier.sent)
	require.Len(t, store.records, 1)
}
