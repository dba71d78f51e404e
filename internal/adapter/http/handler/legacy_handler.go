package handler

import (
	"aevia-legacy/internal/adapter/http/dto"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/pkg/apperror"
	"aevia-legacy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LegacyHandler handles legacy lifecycle endpoints.
type LegacyHandler struct {
	legacySvc ports.LegacyService
}

// NewLegacyHandler creates a new LegacyHandler.
func NewLegacyHandler(legacySvc ports.LegacyService) *LegacyHandler {
	return &LegacyHandler{legacySvc: legacySvc}
}

// Create handles POST /api/v1/legacies.
func (h *LegacyHandler) Create(c *gin.Context) {
	var req dto.CreateLegacyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	legacy, err := h.legacySvc.Create(c.Request.Context(), req.ToPort())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, legacy)
}

// Get handles GET /api/v1/legacies/:id.
func (h *LegacyHandler) Get(c *gin.Context) {
	id, ok := legacyID(c)
	if !ok {
		return
	}

	legacy, err := h.legacySvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, legacy)
}

// GetLastByUser handles GET /api/v1/legacies/users/:telegram_id/last.
func (h *LegacyHandler) GetLastByUser(c *gin.Context) {
	telegramID := c.Param("telegram_id")
	if telegramID == "" {
		response.Error(c, apperror.Validation("telegram_id is required"))
		return
	}

	legacy, err := h.legacySvc.GetLastByUser(c.Request.Context(), telegramID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, legacy)
}

// SignatureMessage handles GET /api/v1/legacies/:id/signature-message.
func (h *LegacyHandler) SignatureMessage(c *gin.Context) {
	id, ok := legacyID(c)
	if !ok {
		return
	}

	typed, err := h.legacySvc.SignatureMessage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, typed)
}

// SetSignature handles PUT /api/v1/legacies/:id/signature.
func (h *LegacyHandler) SetSignature(c *gin.Context) {
	id, ok := legacyID(c)
	if !ok {
		return
	}

	var req dto.SetSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	legacy, err := h.legacySvc.SetSignature(c.Request.Context(), id, req.Signature)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, legacy)
}

// GetBalance handles GET /api/v1/legacies/:id/balance.
func (h *LegacyHandler) GetBalance(c *gin.Context) {
	id, ok := legacyID(c)
	if !ok {
		return
	}

	balances, err := h.legacySvc.GetBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, balances)
}

// Execute handles POST /api/v1/legacies/:id/execute.
func (h *LegacyHandler) Execute(c *gin.Context) {
	id, ok := legacyID(c)
	if !ok {
		return
	}

	result, err := h.legacySvc.Execute(c.Request.Context(), id)
	if err != nil {
		var partial interface{}
		if result != nil {
			partial = result
		}
		actionFailed(c, id, "execute", err, partial)
		return
	}

	response.OK(c, result)
}

// Stake handles POST /api/v1/legacies/:id/stake.
func (h *LegacyHandler) Stake(c *gin.Context) {
	id, ok := legacyID(c)
	if !ok {
		return
	}

	result, err := h.legacySvc.Stake(c.Request.Context(), id)
	if err != nil {
		var partial interface{}
		if result != nil {
			partial = result
		}
		actionFailed(c, id, "stake", err, partial)
		return
	}

	response.OK(c, result)
}

// Claim handles POST /api/v1/legacies/:id/claim.
func (h *LegacyHandler) Claim(c *gin.Context) {
	id, ok := legacyID(c)
	if !ok {
		return
	}

	result, err := h.legacySvc.Claim(c.Request.Context(), id)
	if err != nil {
		var partial interface{}
		if result != nil {
			partial = dto.NewSweepResponse(result)
		}
		actionFailed(c, id, "claim", err, partial)
		return
	}

	response.OK(c, dto.NewSweepResponse(result))
}

// Withdraw handles POST /api/v1/legacies/:id/withdraw.
func (h *LegacyHandler) Withdraw(c *gin.Context) {
	id, ok := legacyID(c)
	if !ok {
		return
	}

	result, err := h.legacySvc.Withdraw(c.Request.Context(), id)
	if err != nil {
		var partial interface{}
		if result != nil {
			partial = dto.NewSweepResponse(result)
		}
		actionFailed(c, id, "withdraw", err, partial)
		return
	}

	response.OK(c, dto.NewSweepResponse(result))
}

// actionFailed writes err with the legacy, the action and any partial result.
func actionFailed(c *gin.Context, id uuid.UUID, action string, err error, partial interface{}) {
	response.ErrorWithDetails(c, err, dto.NewActionFailure(id, action, err, partial))
}

// legacyID parses the :id path parameter and writes a validation error
// when it is not a UUID.
func legacyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
