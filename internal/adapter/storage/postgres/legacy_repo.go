package postgres

import (
	"context"
	"errors"
	"fmt"

	"aevia-legacy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const legacyColumns = `id, blockchain_id, name, chain_id, token_type, token_address, token_id, amount,
	wallet, heir_wallet, contract_address, telegram_id, telegram_id_emergency, telegram_id_heir,
	signal_confirmation_retries, signal_requested_at, signal_received_at,
	investment_enabled, investment_risk, investment_wallet,
	signature, execution_state, executed_at, created_at, updated_at`

// LegacyRepo implements ports.LegacyRepository.
type LegacyRepo struct {
	pool Pool
}

// NewLegacyRepo creates a new LegacyRepo.
func NewLegacyRepo(pool Pool) *LegacyRepo {
	return &LegacyRepo{pool: pool}
}

// Create inserts a legacy inside the caller's transaction.
func (r *LegacyRepo) Create(ctx context.Context, tx pgx.Tx, l *domain.Legacy) error {
	query := `INSERT INTO legacies (` + legacyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23, $24, $25)`

	_, err := tx.Exec(ctx, query,
		l.ID, l.BlockchainID, l.Name, l.ChainID, int(l.TokenType), l.TokenAddress, l.TokenID, l.Amount,
		l.Wallet, l.HeirWallet, l.ContractAddress, l.TelegramID, l.TelegramIDEmergency, l.TelegramIDHeir,
		l.SignalConfirmationRetries, l.SignalRequestedAt, l.SignalReceivedAt,
		l.InvestmentEnabled, string(l.InvestmentRisk), l.InvestmentWallet,
		l.Signature, string(l.ExecutionState), l.ExecutedAt, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert legacy: %w", err)
	}
	return nil
}

// GetByID fetches a legacy by its UUID.
func (r *LegacyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Legacy, error) {
	query := `SELECT ` + legacyColumns + ` FROM legacies WHERE id = $1`

	l, err := scanLegacy(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get legacy by id: %w", err)
	}
	return l, nil
}

// GetLastByTelegramID fetches the most recently created legacy of a user.
func (r *LegacyRepo) GetLastByTelegramID(ctx context.Context, telegramID string) (*domain.Legacy, error) {
	query := `SELECT ` + legacyColumns + ` FROM legacies
		WHERE telegram_id = $1 ORDER BY created_at DESC LIMIT 1`

	l, err := scanLegacy(r.pool.QueryRow(ctx, query, telegramID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last legacy by telegram id: %w", err)
	}
	return l, nil
}

// UpdateSignature stores the owner signature unless one is already present.
func (r *LegacyRepo) UpdateSignature(ctx context.Context, id uuid.UUID, signature string) (bool, error) {
	query := `UPDATE legacies SET signature = $1, updated_at = NOW()
		WHERE id = $2 AND (signature IS NULL OR signature = '')`

	tag, err := r.pool.Exec(ctx, query, signature, id)
	if err != nil {
		return false, fmt.Errorf("update legacy signature: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetInvestmentWallet records the investment wallet address on the legacy.
func (r *LegacyRepo) SetInvestmentWallet(ctx context.Context, tx pgx.Tx, id uuid.UUID, address string) error {
	query := `UPDATE legacies SET investment_wallet = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, address, id)
	if err != nil {
		return fmt.Errorf("set investment wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("legacy not found: %s", id)
	}
	return nil
}

// TransitionExecutionState moves execution_state from one value to another.
// It returns false when the current state is not from.
func (r *LegacyRepo) TransitionExecutionState(ctx context.Context, id uuid.UUID, from, to domain.ExecutionState) (bool, error) {
	query := `UPDATE legacies
		SET execution_state = $1,
			executed_at = CASE WHEN $1 = 'EXECUTED' THEN NOW() ELSE executed_at END,
			updated_at = NOW()
		WHERE id = $2 AND execution_state = $3`

	tag, err := r.pool.Exec(ctx, query, string(to), id, string(from))
	if err != nil {
		return false, fmt.Errorf("transition execution state: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListInvestmentActive lists investment legacies that have not been executed,
// oldest first.
func (r *LegacyRepo) ListInvestmentActive(ctx context.Context, limit int) ([]domain.Legacy, error) {
	query := `SELECT ` + legacyColumns + ` FROM legacies
		WHERE investment_enabled = TRUE AND investment_wallet IS NOT NULL AND execution_state = $1
		ORDER BY created_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, string(domain.ExecutionStateNotExecuted), limit)
	if err != nil {
		return nil, fmt.Errorf("list investment legacies: %w", err)
	}
	defer rows.Close()

	var legacies []domain.Legacy
	for rows.Next() {
		l, err := scanLegacy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan legacy: %w", err)
		}
		legacies = append(legacies, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legacies: %w", err)
	}
	return legacies, nil
}

func scanLegacy(row pgx.Row) (*domain.Legacy, error) {
	var (
		l         domain.Legacy
		tokenType int
		risk      string
		state     string
	)
	err := row.Scan(
		&l.ID, &l.BlockchainID, &l.Name, &l.ChainID, &tokenType, &l.TokenAddress, &l.TokenID, &l.Amount,
		&l.Wallet, &l.HeirWallet, &l.ContractAddress, &l.TelegramID, &l.TelegramIDEmergency, &l.TelegramIDHeir,
		&l.SignalConfirmationRetries, &l.SignalRequestedAt, &l.SignalReceivedAt,
		&l.InvestmentEnabled, &risk, &l.InvestmentWallet,
		&l.Signature, &state, &l.ExecutedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.TokenType = domain.TokenType(tokenType)
	l.InvestmentRisk = domain.InvestmentRisk(risk)
	l.ExecutionState = domain.ExecutionState(state)
	return &l, nil
}
