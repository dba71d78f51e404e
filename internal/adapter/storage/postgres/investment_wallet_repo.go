package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aevia-legacy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// walletIndexLockKey serialises index allocation across concurrent creates.
const walletIndexLockKey int64 = 0x61657669

// InvestmentWalletRepo implements ports.InvestmentWalletRepository.
type InvestmentWalletRepo struct {
	pool Pool
}

// NewInvestmentWalletRepo creates a new InvestmentWalletRepo.
func NewInvestmentWalletRepo(pool Pool) *InvestmentWalletRepo {
	return &InvestmentWalletRepo{pool: pool}
}

// Reserve allocates the next derivation index for legacyID. The address is
// filled in later with SetAddress, within the same transaction.
func (r *InvestmentWalletRepo) Reserve(ctx context.Context, tx pgx.Tx, legacyID uuid.UUID) (*domain.InvestmentWallet, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, walletIndexLockKey); err != nil {
		return nil, fmt.Errorf("lock wallet index: %w", err)
	}

	query := `INSERT INTO investment_wallets (id, idx, legacy_id, address, created_at, updated_at)
		SELECT $1, COALESCE(MAX(idx), 0) + 1, $2, '', NOW(), NOW() FROM investment_wallets
		RETURNING id, idx, legacy_id, address, created_at, updated_at, unstaked_at`

	w, err := scanInvestmentWallet(tx.QueryRow(ctx, query, uuid.New(), legacyID))
	if err != nil {
		return nil, fmt.Errorf("reserve investment wallet: %w", err)
	}
	return w, nil
}

// SetAddress records the derived address of a reserved wallet.
func (r *InvestmentWalletRepo) SetAddress(ctx context.Context, tx pgx.Tx, id uuid.UUID, address string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE investment_wallets SET address = $1, updated_at = NOW() WHERE id = $2`,
		address, id,
	)
	if err != nil {
		return fmt.Errorf("set investment wallet address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("investment wallet not found: %s", id)
	}
	return nil
}

// GetByLegacyID fetches the investment wallet of a legacy.
func (r *InvestmentWalletRepo) GetByLegacyID(ctx context.Context, legacyID uuid.UUID) (*domain.InvestmentWallet, error) {
	query := `SELECT id, idx, legacy_id, address, created_at, updated_at, unstaked_at
		FROM investment_wallets WHERE legacy_id = $1`

	w, err := scanInvestmentWallet(r.pool.QueryRow(ctx, query, legacyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investment wallet: %w", err)
	}
	return w, nil
}

// MarkUnstaked stamps unstaked_at the first time it is called.
func (r *InvestmentWalletRepo) MarkUnstaked(ctx context.Context, legacyID uuid.UUID, at time.Time) (*domain.InvestmentWallet, error) {
	query := `UPDATE investment_wallets
		SET unstaked_at = COALESCE(unstaked_at, $2), updated_at = NOW()
		WHERE legacy_id = $1
		RETURNING id, idx, legacy_id, address, created_at, updated_at, unstaked_at`

	w, err := scanInvestmentWallet(r.pool.QueryRow(ctx, query, legacyID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("mark investment wallet unstaked: %w", err)
	}
	return w, nil
}

func scanInvestmentWallet(row pgx.Row) (*domain.InvestmentWallet, error) {
	w := &domain.InvestmentWallet{}
	err := row.Scan(&w.ID, &w.Index, &w.LegacyID, &w.Address, &w.CreatedAt, &w.UpdatedAt, &w.UnstakedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}
