package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/pkg/apperror"

	"github.com/google/uuid"
)

// CreateLegacyRequest is the request body for legacy creation.
type CreateLegacyRequest struct {
	Name                      string     `json:"name" binding:"required,min=1,max=100"`
	ChainID                   int64      `json:"chain_id" binding:"required,gt=0"`
	TokenType                 *int       `json:"token_type" binding:"required,min=0,max=2"`
	TokenAddress              string     `json:"token_address" binding:"required,eth_addr"`
	TokenID                   *string    `json:"token_id,omitempty" binding:"omitempty,uint_str"`
	Amount                    string     `json:"amount" binding:"required,uint_str"`
	Wallet                    string     `json:"wallet" binding:"required,eth_addr"`
	HeirWallet                string     `json:"heir_wallet" binding:"required,eth_addr"`
	TelegramID                string     `json:"telegram_id" binding:"required,safe_id"`
	TelegramIDEmergency       *string    `json:"telegram_id_emergency,omitempty" binding:"omitempty,safe_id"`
	TelegramIDHeir            *string    `json:"telegram_id_heir,omitempty" binding:"omitempty,safe_id"`
	SignalConfirmationRetries int        `json:"signal_confirmation_retries" binding:"min=0,max=100"`
	SignalRequestedAt         *time.Time `json:"signal_requested_at,omitempty"`
	SignalReceivedAt          *time.Time `json:"signal_received_at,omitempty"`
	InvestmentEnabled         bool       `json:"investment_enabled"`
	InvestmentRisk            string     `json:"investment_risk,omitempty" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// ToPort converts the body into the service request.
func (r CreateLegacyRequest) ToPort() ports.CreateLegacyRequest {
	req := ports.CreateLegacyRequest{
		Name:                      r.Name,
		ChainID:                   r.ChainID,
		TokenAddress:              r.TokenAddress,
		TokenID:                   r.TokenID,
		Amount:                    r.Amount,
		Wallet:                    r.Wallet,
		HeirWallet:                r.HeirWallet,
		TelegramID:                r.TelegramID,
		TelegramIDEmergency:       r.TelegramIDEmergency,
		TelegramIDHeir:            r.TelegramIDHeir,
		SignalConfirmationRetries: r.SignalConfirmationRetries,
		SignalRequestedAt:         r.SignalRequestedAt,
		SignalReceivedAt:          r.SignalReceivedAt,
		InvestmentEnabled:         r.InvestmentEnabled,
		InvestmentRisk:            domain.InvestmentRisk(r.InvestmentRisk),
	}
	if r.TokenType != nil {
		req.TokenType = domain.TokenType(*r.TokenType)
	}
	return req
}

// SetSignatureRequest is the request body for attaching the owner's signature.
type SetSignatureRequest struct {
	Signature string `json:"signature" binding:"required,startswith=0x,max=1024"`
}

// CreateContractRequest is the request body for registering a contract.
type CreateContractRequest struct {
	Name    string          `json:"name" binding:"required,safe_id,max=100"`
	ChainID int64           `json:"chain_id" binding:"required,gt=0"`
	Address string          `json:"address" binding:"required,eth_addr"`
	ABI     json.RawMessage `json:"abi" binding:"required"`
}

// ToDomain converts the body into a contract.
func (r CreateContractRequest) ToDomain() *domain.Contract {
	return &domain.Contract{
		Name:    r.Name,
		ChainID: r.ChainID,
		Address: r.Address,
		ABI:     r.ABI,
	}
}

// SweepResponse wraps a claim or withdraw outcome.
type SweepResponse struct {
	Status    string                `json:"status"`
	Submitted int                   `json:"submitted"`
	Actions   []domain.ActionResult `json:"actions"`
}

// NewSweepResponse builds the response for a pending-action sweep.
func NewSweepResponse(r *domain.PendingSweepResult) SweepResponse {
	resp := SweepResponse{
		Status:    r.Status,
		Submitted: r.Submitted(),
		Actions:   r.Actions,
	}
	if resp.Actions == nil {
		resp.Actions = []domain.ActionResult{}
	}
	return resp
}

// ActionFailure is the error details of a failed execute, stake, claim or
// withdraw. Result holds what the service completed before the failure.
type ActionFailure struct {
	LegacyID string      `json:"legacy_id"`
	Action   string      `json:"action"`
	Cause    string      `json:"cause"`
	Result   interface{} `json:"result,omitempty"`
}

// NewActionFailure builds the failure details. Internal causes are not exposed.
func NewActionFailure(legacyID uuid.UUID, action string, err error, result interface{}) ActionFailure {
	cause := "internal error"
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && !strings.HasPrefix(appErr.Code, "SYS_") {
		cause = err.Error()
	}
	return ActionFailure{
		LegacyID: legacyID.String(),
		Action:   action,
		Cause:    cause,
		Result:   result,
	}
}
