package ports

import (
	"context"
	"time"

	"aevia-legacy/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LegacyRepository defines persistence operations for legacies.
// Methods accepting pgx.Tx run inside the caller's transaction.
type LegacyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, legacy *domain.Legacy) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Legacy, error)
	GetLastByTelegramID(ctx context.Context, telegramID string) (*domain.Legacy, error)
	// UpdateSignature sets the signature only if none is stored yet.
	// Returns false when the legacy is missing or already signed.
	UpdateSignature(ctx context.Context, id uuid.UUID, signature string) (bool, error)
	SetInvestmentWallet(ctx context.Context, tx pgx.Tx, id uuid.UUID, address string) error
	// TransitionExecutionState is a compare-and-swap on execution_state.
	TransitionExecutionState(ctx context.Context, id uuid.UUID, from, to domain.ExecutionState) (bool, error)
	// ListInvestmentActive lists investment legacies that are not executed yet.
	ListInvestmentActive(ctx context.Context, limit int) ([]domain.Legacy, error)
}

// InvestmentWalletRepository defines persistence for investment wallets.
type InvestmentWalletRepository interface {
	// Reserve allocates the next derivation index for a legacy.
	Reserve(ctx context.Context, tx pgx.Tx, legacyID uuid.UUID) (*domain.InvestmentWallet, error)
	SetAddress(ctx context.Context, tx pgx.Tx, id uuid.UUID, address string) error
	GetByLegacyID(ctx context.Context, legacyID uuid.UUID) (*domain.InvestmentWallet, error)
	// MarkUnstaked stamps unstaked_at once; later calls keep the first value.
	MarkUnstaked(ctx context.Context, legacyID uuid.UUID, at time.Time) (*domain.InvestmentWallet, error)
}

// ContractRepository defines persistence for the contracts registry.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	List(ctx context.Context) ([]domain.Contract, error)
	GetByNameAndChain(ctx context.Context, name string, chainID int64) (*domain.Contract, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
