package handler

import (
	"strconv"

	"aevia-legacy/internal/adapter/http/dto"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/pkg/apperror"
	"aevia-legacy/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles the contracts registry endpoints.
type ContractHandler struct {
	contractSvc ports.ContractService
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(contractSvc ports.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

// List handles GET /api/v1/contracts.
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.contractSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, contracts)
}

// Get handles GET /api/v1/contracts/:name/:chain_id.
func (h *ContractHandler) Get(c *gin.Context) {
	chainID, err := strconv.ParseInt(c.Param("chain_id"), 10, 64)
	if err != nil || chainID <= 0 {
		response.Error(c, apperror.Validation("chain_id must be a positive integer"))
		return
	}

	contract, err := h.contractSvc.Get(c.Request.Context(), c.Param("name"), chainID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, contract)
}

// Create handles POST /api/v1/contracts.
func (h *ContractHandler) Create(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	contract, err := h.contractSvc.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, contract)
}
