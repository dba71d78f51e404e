package postgres

import (
	"context"
	"errors"
	"fmt"

	"aevia-legacy/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ContractRepo implements ports.ContractRepository.
type ContractRepo struct {
	pool Pool
}

// NewContractRepo creates a new ContractRepo.
func NewContractRepo(pool Pool) *ContractRepo {
	return &ContractRepo{pool: pool}
}

// Create inserts a contract. (name, chain_id) is unique.
func (r *ContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contracts (id, name, chain_id, address, abi, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.ChainID, c.Address, []byte(c.ABI), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// List returns every registered contract.
func (r *ContractRepo) List(ctx context.Context) ([]domain.Contract, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, chain_id, address, abi, created_at FROM contracts ORDER BY name, chain_id`)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}
	return contracts, nil
}

// GetByNameAndChain fetches the contract deployed under name on chainID.
func (r *ContractRepo) GetByNameAndChain(ctx context.Context, name string, chainID int64) (*domain.Contract, error) {
	c, err := scanContract(r.pool.QueryRow(ctx,
		`SELECT id, name, chain_id, address, abi, created_at FROM contracts WHERE name = $1 AND chain_id = $2`,
		name, chainID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var (
		c   domain.Contract
		abi []byte
	)
	if err := row.Scan(&c.ID, &c.Name, &c.ChainID, &c.Address, &abi, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.ABI = abi
	return &c, nil
}
