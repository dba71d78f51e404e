package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenType mirrors the on-chain token kind argument of executeLegacy.
type TokenType int

const (
	TokenTypeERC20   TokenType = 0 // also used for the chain's native coin
	TokenTypeERC721  TokenType = 1
	TokenTypeERC1155 TokenType = 2
)

// IsValid reports whether t is one of the supported token kinds.
func (t TokenType) IsValid() bool {
	return t == TokenTypeERC20 || t == TokenTypeERC721 || t == TokenTypeERC1155
}

// ExecutionState guards a legacy against being executed twice.
type ExecutionState string

const (
	ExecutionStateNotExecuted ExecutionState = "NOT_EXECUTED"
	ExecutionStateExecuting   ExecutionState = "EXECUTING"
	ExecutionStateExecuted    ExecutionState = "EXECUTED"
)

// InvestmentRisk is the risk tier chosen for idle assets.
type InvestmentRisk string

const (
	InvestmentRiskLow    InvestmentRisk = "LOW"
	InvestmentRiskMedium InvestmentRisk = "MEDIUM"
	InvestmentRiskHigh   InvestmentRisk = "HIGH"
)

// Legacy is an asset bequest that is released to the heir once the owner stops
// answering liveness signals.
type Legacy struct {
	ID           uuid.UUID `json:"id"`
	BlockchainID string    `json:"blockchain_id"` // uint256 as decimal string
	Name         string    `json:"name"`
	ChainID      int64     `json:"chain_id"`
	TokenType    TokenType `json:"token_type"`
	TokenAddress string    `json:"token_address"`
	TokenID      *string   `json:"token_id,omitempty"` // ERC721 only
	Amount       string    `json:"amount"`             // base units
	Wallet       string    `json:"wallet"`
	HeirWallet   string    `json:"heir_wallet"`

	ContractAddress string `json:"contract_address"`

	TelegramID          string  `json:"telegram_id"`
	TelegramIDEmergency *string `json:"telegram_id_emergency,omitempty"`
	TelegramIDHeir      *string `json:"telegram_id_heir,omitempty"`

	SignalConfirmationRetries int        `json:"signal_confirmation_retries"`
	SignalRequestedAt         *time.Time `json:"signal_requested_at,omitempty"`
	SignalReceivedAt          *time.Time `json:"signal_received_at,omitempty"`

	InvestmentEnabled bool           `json:"investment_enabled"`
	InvestmentRisk    InvestmentRisk `json:"investment_risk,omitempty"`
	InvestmentWallet  *string        `json:"investment_wallet,omitempty"`

	Signature      *string        `json:"signature,omitempty"`
	ExecutionState ExecutionState `json:"execution_state"`
	ExecutedAt     *time.Time     `json:"executed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveTokenID is the token id passed on chain: the stored id for ERC721,
// zero for every other token type.
func (l *Legacy) EffectiveTokenID() string {
	if l.TokenType == TokenTypeERC721 && l.TokenID != nil && *l.TokenID != "" {
		return *l.TokenID
	}
	return "0"
}

// HasSignature reports whether the owner's EIP-712 signature is attached.
func (l *Legacy) HasSignature() bool {
	return l.Signature != nil && *l.Signature != ""
}

// IsExecuted reports whether the legacy has already been released.
func (l *Legacy) IsExecuted() bool {
	return l.ExecutionState == ExecutionStateExecuted
}
