package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// InvestmentWalletRegistryService implements ports.InvestmentWalletRegistry.
// Each investment legacy owns one HD-derived custodial address.
type InvestmentWalletRegistryService struct {
	repo ports.InvestmentWalletRepository
	keys ports.KeyOracle
	log  zerolog.Logger
	now  func() time.Time
}

// NewInvestmentWalletRegistry creates a new InvestmentWalletRegistryService.
func NewInvestmentWalletRegistry(repo ports.InvestmentWalletRepository, keys ports.KeyOracle, log zerolog.Logger) *InvestmentWalletRegistryService {
	return &InvestmentWalletRegistryService{
		repo: repo,
		keys: keys,
		log:  log,
		now:  time.Now,
	}
}

// Create reserves the next derivation index inside tx and stores its address.
func (s *InvestmentWalletRegistryService) Create(ctx context.Context, tx pgx.Tx, legacyID uuid.UUID) (*domain.InvestmentWallet, error) {
	wallet, err := s.repo.Reserve(ctx, tx, legacyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("reserve wallet index: %w", err))
	}

	address, err := s.keys.AddressForIndex(wallet.Index)
	if err != nil {
		return nil, apperror.ErrSigningFailure(fmt.Errorf("derive index %d: %w", wallet.Index, err))
	}

	if err := s.repo.SetAddress(ctx, tx, wallet.ID, address); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store wallet address: %w", err))
	}
	wallet.Address = address

	s.log.Info().
		Str("legacy_id", legacyID.String()).
		Int64("index", wallet.Index).
		Str("address", address).
		Msg("investment wallet created")

	return wallet, nil
}

// Get returns the wallet of a legacy.
func (s *InvestmentWalletRegistryService) Get(ctx context.Context, legacyID uuid.UUID) (*domain.InvestmentWallet, error) {
	wallet, err := s.repo.GetByLegacyID(ctx, legacyID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get investment wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("investment wallet")
	}
	return wallet, nil
}

// Signer returns the wallet together with the key that controls it.
func (s *InvestmentWalletRegistryService) Signer(ctx context.Context, legacyID uuid.UUID) (*domain.InvestmentWallet, ports.CustodySigner, error) {
	wallet, err := s.Get(ctx, legacyID)
	if err != nil {
		return nil, nil, err
	}

	signer, err := s.keys.SignerForIndex(wallet.Index)
	if err != nil {
		return nil, nil, apperror.ErrSigningFailure(fmt.Errorf("derive index %d: %w", wallet.Index, err))
	}
	if !strings.EqualFold(signer.Address(), wallet.Address) {
		return nil, nil, apperror.ErrSigningFailure(
			fmt.Errorf("index %d derives %s, wallet stores %s", wallet.Index, signer.Address(), wallet.Address))
	}
	return wallet, signer, nil
}

// MarkUnstaked records the first successful exit of the wallet.
func (s *InvestmentWalletRegistryService) MarkUnstaked(ctx context.Context, legacyID uuid.UUID) (*domain.InvestmentWallet, error) {
	wallet, err := s.repo.MarkUnstaked(ctx, legacyID, s.now().UTC())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark unstaked: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("investment wallet")
	}
	return wallet, nil
}
