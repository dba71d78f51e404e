package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"aevia-legacy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLegacy() *domain.Legacy {
	now := time.Now().UTC().Truncate(time.Microsecond)
	tokenID := "42"
	return &domain.Legacy{
		ID:                  uuid.New(),
		BlockchainID:        "115792089237316195423570985008687907853269984665640564039457584007913129639935",
		Name:                "Savings",
		ChainID:             domain.ChainEthereumMainnet,
		TokenType:           domain.TokenTypeERC721,
		TokenAddress:        "0x455e53CBB86018Ac2B8092FdCd39d8444aFFC3F6",
		TokenID:             &tokenID,
		Amount:              "1000000000000000000",
		Wallet:              "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		HeirWallet:          "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		ContractAddress:     "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TelegramID:          "1001",
		InvestmentEnabled:   true,
		InvestmentRisk:      domain.InvestmentRiskLow,
		ExecutionState:      domain.ExecutionStateNotExecuted,
		CreatedAt:           now,
		UpdatedAt:           now,
		TelegramIDEmergency: nil,
	}
}

func legacyColumnNames() []string {
	return []string{
		"id", "blockchain_id", "name", "chain_id", "token_type", "token_address", "token_id", "amount",
		"wallet", "heir_wallet", "contract_address", "telegram_id", "telegram_id_emergency", "telegram_id_heir",
		"signal_confirmation_retries", "signal_requested_at", "signal_received_at",
		"investment_enabled", "investment_risk", "investment_wallet",
		"signature", "execution_state", "executed_at", "created_at", "updated_at",
	}
}

func legacyRow(rows *pgxmock.Rows, l *domain.Legacy) *pgxmock.Rows {
	return rows.AddRow(
		l.ID, l.BlockchainID, l.Name, l.ChainID, int(l.TokenType), l.TokenAddress, l.TokenID, l.Amount,
		l.Wallet, l.HeirWallet, l.ContractAddress, l.TelegramID, l.TelegramIDEmergency, l.TelegramIDHeir,
		l.SignalConfirmationRetries, l.SignalRequestedAt, l.SignalReceivedAt,
		l.InvestmentEnabled, string(l.InvestmentRisk), l.InvestmentWallet,
		l.Signature, string(l.ExecutionState), l.ExecutedAt, l.CreatedAt, l.UpdatedAt,
	)
}

func TestLegacyRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyRepo(mock)
	l := newTestLegacy()

	args := make([]any, 25)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	args[0], args[1], args[4] = l.ID, l.BlockchainID, int(domain.TokenTypeERC721)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO legacies").
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, l)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyRepo(mock)
	l := newTestLegacy()

	mock.ExpectQuery("SELECT .+ FROM legacies WHERE id").
		WithArgs(l.ID).
		WillReturnRows(legacyRow(pgxmock.NewRows(legacyColumnNames()), l))

	result, err := repo.GetByID(context.Background(), l.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, l.ID, result.ID)
	assert.Equal(t, domain.TokenTypeERC721, result.TokenType)
	assert.Equal(t, domain.InvestmentRiskLow, result.InvestmentRisk)
	assert.Equal(t, domain.ExecutionStateNotExecuted, result.ExecutionState)
	assert.Equal(t, "42", result.EffectiveTokenID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM legacies WHERE id").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepo_GetLastByTelegramID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyRepo(mock)
	l := newTestLegacy()

	mock.ExpectQuery("SELECT .+ FROM legacies\\s+WHERE telegram_id = \\$1 ORDER BY created_at DESC LIMIT 1").
		WithArgs("1001").
		WillReturnRows(legacyRow(pgxmock.NewRows(legacyColumnNames()), l))

	result, err := repo.GetLastByTelegramID(context.Background(), "1001")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, l.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepo_UpdateSignature(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE legacies SET signature").
		WithArgs("0xsig", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE legacies SET signature").
		WithArgs("0xother", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.UpdateSignature(context.Background(), id, "0xsig")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateSignature(context.Background(), id, "0xother")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepo_TransitionExecutionState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE legacies\\s+SET execution_state").
		WithArgs("EXECUTING", id, "NOT_EXECUTED").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE legacies\\s+SET execution_state").
		WithArgs("EXECUTING", id, "NOT_EXECUTED").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("UPDATE legacies\\s+SET execution_state").
		WithArgs("EXECUTED", id, "EXECUTING").
		WillReturnError(errors.New("connection reset"))

	ok, err := repo.TransitionExecutionState(context.Background(), id, domain.ExecutionStateNotExecuted, domain.ExecutionStateExecuting)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TransitionExecutionState(context.Background(), id, domain.ExecutionStateNotExecuted, domain.ExecutionStateExecuting)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.TransitionExecutionState(context.Background(), id, domain.ExecutionStateExecuting, domain.ExecutionStateExecuted)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepo_SetInvestmentWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyRepo(mock)
	id := uuid.New()
	addr := "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE legacies SET investment_wallet").
		WithArgs(addr, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetInvestmentWallet(context.Background(), tx, id, addr)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "legacy not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyRepo_ListInvestmentActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyRepo(mock)
	a, b := newTestLegacy(), newTestLegacy()

	rows := pgxmock.NewRows(legacyColumnNames())
	legacyRow(rows, a)
	legacyRow(rows, b)

	mock.ExpectQuery("SELECT .+ FROM legacies\\s+WHERE investment_enabled = TRUE").
		WithArgs("NOT_EXECUTED", 50).
		WillReturnRows(rows)

	result, err := repo.ListInvestmentActive(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, a.ID, result[0].ID)
	assert.Equal(t, b.ID, result[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
