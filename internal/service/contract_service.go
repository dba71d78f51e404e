package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/pkg/apperror"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContractServiceImpl implements ports.ContractService.
type ContractServiceImpl struct {
	repo ports.ContractRepository
	log  zerolog.Logger
}

// NewContractService creates a new ContractServiceImpl.
func NewContractService(repo ports.ContractRepository, log zerolog.Logger) *ContractServiceImpl {
	return &ContractServiceImpl{repo: repo, log: log}
}

// Create registers a deployed contract. The ABI must parse.
func (s *ContractServiceImpl) Create(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	if strings.TrimSpace(contract.Name) == "" {
		return nil, apperror.Validation("name is required")
	}
	if contract.ChainID <= 0 {
		return nil, apperror.Validation("chain_id must be positive")
	}
	if !common.IsHexAddress(contract.Address) {
		return nil, apperror.Validation("address is not a valid hex address")
	}
	if !json.Valid(contract.ABI) {
		return nil, apperror.Validation("abi is not valid JSON")
	}
	if _, err := abi.JSON(strings.NewReader(string(contract.ABI))); err != nil {
		return nil, apperror.Validation(fmt.Sprintf("abi does not parse: %v", err))
	}

	existing, err := s.repo.GetByNameAndChain(ctx, contract.Name, contract.ChainID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup contract: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrContractExists(contract.Name, contract.ChainID)
	}

	contract.ID = uuid.New()
	contract.Address = common.HexToAddress(contract.Address).Hex()
	contract.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, contract); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create contract: %w", err))
	}

	s.log.Info().
		Str("name", contract.Name).
		Int64("chain_id", contract.ChainID).
		Str("address", contract.Address).
		Msg("contract registered")

	return contract, nil
}

// List returns every registered contract.
func (s *ContractServiceImpl) List(ctx context.Context) ([]domain.Contract, error) {
	contracts, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list contracts: %w", err))
	}
	return contracts, nil
}

// Get returns the contract registered under name on chainID.
func (s *ContractServiceImpl) Get(ctx context.Context, name string, chainID int64) (*domain.Contract, error) {
	contract, err := s.repo.GetByNameAndChain(ctx, name, chainID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get contract: %w", err))
	}
	if contract == nil {
		return nil, apperror.ErrNotFound("contract")
	}
	return contract, nil
}
