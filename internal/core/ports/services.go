package ports

import (
	"context"
	"encoding/json"
	"time"

	"aevia-legacy/internal/core/domain"

	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// --- Outbound ports (adapters) ---

// StakingProvider is the external staking API that issues and tracks
// multi-transaction staking plans.
type StakingProvider interface {
	GetYieldInfo(ctx context.Context, integrationID string) (*domain.YieldInfo, error)
	InitiateAction(ctx context.Context, req domain.ActionRequest) (*domain.ActionSession, error)
	GetGasQuote(ctx context.Context, network string) (*domain.GasQuote, error)
	AttachGas(ctx context.Context, txID string, gasArgs json.RawMessage) (*domain.UnsignedTransaction, error)
	SubmitSigned(ctx context.Context, txID string, signedHex string) error
	PollStatus(ctx context.Context, txID string) (*domain.TransactionStatusReport, error)
	GetBalances(ctx context.Context, integrationID string, address string, validators []string) ([]domain.BalanceEntry, error)
}

// CustodySigner signs transactions with one custodial key.
type CustodySigner interface {
	Address() string
	// SignTransaction returns the 0x-prefixed raw signed transaction.
	SignTransaction(tx *domain.UnsignedTransaction) (string, error)
}

// KeyOracle derives custodial signers from the HD seed.
type KeyOracle interface {
	SignerForIndex(index int64) (CustodySigner, error)
	AddressForIndex(index int64) (string, error)
}

// ChainExecutor submits the direct executeLegacy transaction and waits for it.
type ChainExecutor interface {
	ExecuteLegacy(ctx context.Context, legacy *domain.Legacy, contract *domain.Contract) (string, error)
}

// LegacyLocker is a distributed mutex keyed by legacy.
type LegacyLocker interface {
	// Acquire returns a token identifying the holder; acquired is false when
	// another holder owns the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)
	Release(ctx context.Context, key string, token string) error
}

// EventPublisher publishes lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.LegacyEvent) error
}

// --- Service Ports (Business Logic) ---

// StakingOrchestrator runs staking sagas for one custodial address.
type StakingOrchestrator interface {
	RunAction(ctx context.Context, legacy *domain.Legacy, signer CustodySigner, kind domain.ActionKind) (*domain.ActionResult, error)
	RunPendingActions(ctx context.Context, legacy *domain.Legacy, signer CustodySigner, sel domain.PendingSelector) (*domain.PendingSweepResult, error)
	Balances(ctx context.Context, legacy *domain.Legacy, address string) ([]domain.BalanceEntry, error)
}

// InvestmentWalletRegistry maps legacies to their custodial wallets.
type InvestmentWalletRegistry interface {
	Create(ctx context.Context, tx pgx.Tx, legacyID uuid.UUID) (*domain.InvestmentWallet, error)
	Get(ctx context.Context, legacyID uuid.UUID) (*domain.InvestmentWallet, error)
	Signer(ctx context.Context, legacyID uuid.UUID) (*domain.InvestmentWallet, CustodySigner, error)
	MarkUnstaked(ctx context.Context, legacyID uuid.UUID) (*domain.InvestmentWallet, error)
}

// CreateLegacyRequest holds validated input for legacy creation.
type CreateLegacyRequest struct {
	Name                      string
	ChainID                   int64
	TokenType                 domain.TokenType
	TokenAddress              string
	TokenID                   *string
	Amount                    string
	Wallet                    string
	HeirWallet                string
	TelegramID                string
	TelegramIDEmergency       *string
	TelegramIDHeir            *string
	SignalConfirmationRetries int
	SignalRequestedAt         *time.Time
	SignalReceivedAt          *time.Time
	InvestmentEnabled         bool
	InvestmentRisk            domain.InvestmentRisk
}

// LegacyService is the legacy lifecycle exposed over the API.
// Execute, Stake, Claim and Withdraw return the partial result alongside
// the error when legs ran before the failure.
type LegacyService interface {
	Create(ctx context.Context, req CreateLegacyRequest) (*domain.Legacy, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Legacy, error)
	GetLastByUser(ctx context.Context, telegramID string) (*domain.Legacy, error)
	SignatureMessage(ctx context.Context, id uuid.UUID) (*apitypes.TypedData, error)
	SetSignature(ctx context.Context, id uuid.UUID, signature string) (*domain.Legacy, error)
	Execute(ctx context.Context, id uuid.UUID) (*domain.ExecutionResult, error)
	Stake(ctx context.Context, id uuid.UUID) (*domain.ActionResult, error)
	Claim(ctx context.Context, id uuid.UUID) (*domain.PendingSweepResult, error)
	Withdraw(ctx context.Context, id uuid.UUID) (*domain.PendingSweepResult, error)
	GetBalance(ctx context.Context, id uuid.UUID) ([]domain.BalanceView, error)
}

// ContractService manages the contracts registry.
type ContractService interface {
	Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
	Get(ctx context.Context, name string, chainID int64) (*domain.Contract, error)
}

// TokenService handles JWT service tokens.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// AuditService records audited API actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
