package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"aevia-legacy/config"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EIP-712 domain of the on-chain wish handler.
const (
	wishDomainName    = "WishHandler"
	wishDomainVersion = "1.0.0"
	wishPrimaryType   = "Wish"
)

var blockchainIDLimit = new(big.Int).Lsh(big.NewInt(1), 256)

// LegacyDeps groups the collaborators of LegacyServiceImpl.
type LegacyDeps struct {
	Legacies     ports.LegacyRepository
	Contracts    ports.ContractRepository
	Wallets      ports.InvestmentWalletRegistry
	Orchestrator ports.StakingOrchestrator
	Chain        ports.ChainExecutor
	Locker       ports.LegacyLocker
	Events       ports.EventPublisher // optional
	Transactor   ports.DBTransactor
}

// LegacyServiceImpl implements ports.LegacyService. It owns the legacy
// lifecycle and coordinates execution and staking under a per-legacy lock.
type LegacyServiceImpl struct {
	legacies     ports.LegacyRepository
	contracts    ports.ContractRepository
	wallets      ports.InvestmentWalletRegistry
	orchestrator ports.StakingOrchestrator
	chain        ports.ChainExecutor
	locker       ports.LegacyLocker
	events       ports.EventPublisher
	transactor   ports.DBTransactor
	cfg          config.LegacyConfig
	log          zerolog.Logger
	now          func() time.Time
}

// NewLegacyService creates a new LegacyServiceImpl.
func NewLegacyService(deps LegacyDeps, cfg config.LegacyConfig, log zerolog.Logger) *LegacyServiceImpl {
	return &LegacyServiceImpl{
		legacies:     deps.Legacies,
		contracts:    deps.Contracts,
		wallets:      deps.Wallets,
		orchestrator: deps.Orchestrator,
		chain:        deps.Chain,
		locker:       deps.Locker,
		events:       deps.Events,
		transactor:   deps.Transactor,
		cfg:          cfg,
		log:          log,
		now:          time.Now,
	}
}

// Create validates and stores a new legacy. Investment legacies get their
// custodial wallet in the same database transaction.
func (s *LegacyServiceImpl) Create(ctx context.Context, req ports.CreateLegacyRequest) (*domain.Legacy, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	if req.InvestmentEnabled {
		if _, ok := domain.ResolveIntegration(req.ChainID, req.TokenAddress); !ok {
			return nil, apperror.ErrIntegrationNotFound(req.ChainID, req.TokenAddress)
		}
		if req.InvestmentRisk == "" {
			req.InvestmentRisk = domain.InvestmentRiskLow
		}
	}

	contract, err := s.contracts.GetByNameAndChain(ctx, domain.ProtocolContractName, req.ChainID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup protocol contract: %w", err))
	}
	if contract == nil {
		return nil, apperror.ErrNotFound("contract")
	}

	blockchainID, err := rand.Int(rand.Reader, blockchainIDLimit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate blockchain id: %w", err))
	}

	now := s.now().UTC()
	legacy := &domain.Legacy{
		ID:                        uuid.New(),
		BlockchainID:              blockchainID.String(),
		Name:                      req.Name,
		ChainID:                   req.ChainID,
		TokenType:                 req.TokenType,
		TokenAddress:              req.TokenAddress,
		Amount:                    req.Amount,
		Wallet:                    req.Wallet,
		HeirWallet:                req.HeirWallet,
		ContractAddress:           contract.Address,
		TelegramID:                req.TelegramID,
		TelegramIDEmergency:       req.TelegramIDEmergency,
		TelegramIDHeir:            req.TelegramIDHeir,
		SignalConfirmationRetries: req.SignalConfirmationRetries,
		SignalRequestedAt:         req.SignalRequestedAt,
		SignalReceivedAt:          req.SignalReceivedAt,
		InvestmentEnabled:         req.InvestmentEnabled,
		InvestmentRisk:            req.InvestmentRisk,
		ExecutionState:            domain.ExecutionStateNotExecuted,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if req.TokenType == domain.TokenTypeERC721 {
		legacy.TokenID = req.TokenID
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.legacies.Create(ctx, dbTx, legacy); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create legacy: %w", err))
	}

	if legacy.InvestmentEnabled {
		wallet, err := s.wallets.Create(ctx, dbTx, legacy.ID)
		if err != nil {
			return nil, err
		}
		if err := s.legacies.SetInvestmentWallet(ctx, dbTx, legacy.ID, wallet.Address); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("link investment wallet: %w", err))
		}
		legacy.InvestmentWallet = &wallet.Address
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("legacy_id", legacy.ID.String()).
		Int64("chain_id", legacy.ChainID).
		Bool("investment", legacy.InvestmentEnabled).
		Msg("legacy created")

	s.publish(ctx, domain.NewLegacyEvent(domain.EventLegacyCreated, legacy, now))
	return legacy, nil
}

func validateCreate(req *ports.CreateLegacyRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperror.Validation("name is required")
	}
	if req.ChainID <= 0 {
		return apperror.Validation("chain_id must be positive")
	}
	if !req.TokenType.IsValid() {
		return apperror.Validation("token_type must be 0 (ERC20), 1 (ERC721) or 2 (ERC1155)")
	}
	if req.TokenType == domain.TokenTypeERC721 && (req.TokenID == nil || !isUint(*req.TokenID)) {
		return apperror.Validation("token_id is required for ERC721 legacies")
	}
	if !isUint(req.Amount) {
		return apperror.Validation("amount must be a non-negative integer in base units")
	}
	if strings.TrimSpace(req.TelegramID) == "" {
		return apperror.Validation("telegram_id is required")
	}

	addresses := map[string]*string{
		"token_address": &req.TokenAddress,
		"wallet":        &req.Wallet,
		"heir_wallet":   &req.HeirWallet,
	}
	for field, addr := range addresses {
		if !common.IsHexAddress(*addr) {
			return apperror.Validation(field + " is not a valid address")
		}
		*addr = common.HexToAddress(*addr).Hex()
	}
	return nil
}

func isUint(s string) bool {
	n, ok := new(big.Int).SetString(s, 10)
	return ok && n.Sign() >= 0
}

// Get returns a legacy by id.
func (s *LegacyServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Legacy, error) {
	legacy, err := s.legacies.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get legacy: %w", err))
	}
	if legacy == nil {
		return nil, apperror.ErrLegacyNotFound()
	}
	return legacy, nil
}

// GetLastByUser returns the most recent legacy of a Telegram user.
func (s *LegacyServiceImpl) GetLastByUser(ctx context.Context, telegramID string) (*domain.Legacy, error) {
	legacy, err := s.legacies.GetLastByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get last legacy: %w", err))
	}
	if legacy == nil {
		return nil, apperror.ErrLegacyNotFound()
	}
	return legacy, nil
}

// SignatureMessage builds the EIP-712 typed data the owner signs to authorize
// execution.
func (s *LegacyServiceImpl) SignatureMessage(ctx context.Context, id uuid.UUID) (*apitypes.TypedData, error) {
	legacy, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			wishPrimaryType: {
				{Name: "keyHash", Type: "uint256"},
				{Name: "tokenType", Type: "uint8"},
				{Name: "tokenAddress", Type: "address"},
				{Name: "tokenId", Type: "uint256"},
				{Name: "amount", Type: "uint256"},
				{Name: "from", Type: "address"},
				{Name: "to", Type: "address"},
			},
		},
		PrimaryType: wishPrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              wishDomainName,
			Version:           wishDomainVersion,
			ChainId:           math.NewHexOrDecimal256(legacy.ChainID),
			VerifyingContract: common.HexToAddress(legacy.ContractAddress).Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"keyHash":      legacy.BlockchainID,
			"tokenType":    strconv.Itoa(int(legacy.TokenType)),
			"tokenAddress": common.HexToAddress(legacy.TokenAddress).Hex(),
			"tokenId":      legacy.EffectiveTokenID(),
			"amount":       amountOrZero(legacy.Amount),
			"from":         common.HexToAddress(legacy.Wallet).Hex(),
			"to":           common.HexToAddress(legacy.HeirWallet).Hex(),
		},
	}, nil
}

func amountOrZero(a string) string {
	if a == "" {
		return "0"
	}
	return a
}

// SetSignature attaches the owner's signature. A stored signature is never
// replaced.
func (s *LegacyServiceImpl) SetSignature(ctx context.Context, id uuid.UUID, signature string) (*domain.Legacy, error) {
	if _, err := hexutil.Decode(signature); err != nil {
		return nil, apperror.Validation("signature must be 0x-prefixed hex")
	}

	updated, err := s.legacies.UpdateSignature(ctx, id, signature)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update signature: %w", err))
	}

	legacy, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.ErrSignatureAlreadySet()
	}

	s.log.Info().Str("legacy_id", id.String()).Msg("legacy signature set")
	return legacy, nil
}

// Execute releases the legacy to the heir: a direct executeLegacy transaction,
// or an unstake of the investment wallet for investment legacies.
func (s *LegacyServiceImpl) Execute(ctx context.Context, id uuid.UUID) (*domain.ExecutionResult, error) {
	legacy, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if legacy.IsExecuted() {
		return nil, apperror.ErrAlreadyExecuted()
	}
	if !legacy.InvestmentEnabled && !legacy.HasSignature() {
		return nil, apperror.ErrSignatureMissing()
	}

	var result *domain.ExecutionResult
	err = s.withLock(ctx, id, "execute", func(ctx context.Context) error {
		swapped, err := s.legacies.TransitionExecutionState(ctx, id, domain.ExecutionStateNotExecuted, domain.ExecutionStateExecuting)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("claim execution: %w", err))
		}
		if !swapped {
			return apperror.ErrAlreadyExecuted()
		}

		var submitted bool
		result, submitted, err = s.execute(ctx, legacy)
		if err != nil {
			s.releaseExecution(context.WithoutCancel(ctx), legacy, submitted, err)
			return err
		}

		if _, err := s.legacies.TransitionExecutionState(context.WithoutCancel(ctx), id, domain.ExecutionStateExecuting, domain.ExecutionStateExecuted); err != nil {
			s.log.Error().Err(err).Str("legacy_id", id.String()).Msg("legacy executed but state not recorded")
		}
		executedAt := s.now().UTC()
		legacy.ExecutionState = domain.ExecutionStateExecuted
		legacy.ExecutedAt = &executedAt
		return nil
	})
	if err != nil {
		return result, err
	}

	evt := domain.NewLegacyEvent(domain.EventLegacyExecuted, legacy, s.now())
	evt.TxHash = result.TransactionHash
	if result.Staking != nil {
		evt.Action = result.Staking.Kind
		evt.Staking = result.Staking
		evt.Submitted = result.Staking.Submitted()
	}
	s.publish(ctx, evt)

	return result, nil
}

func (s *LegacyServiceImpl) execute(ctx context.Context, legacy *domain.Legacy) (*domain.ExecutionResult, bool, error) {
	if legacy.InvestmentEnabled {
		return s.executeInvestment(ctx, legacy)
	}
	return s.executeStandard(ctx, legacy)
}

func (s *LegacyServiceImpl) executeStandard(ctx context.Context, legacy *domain.Legacy) (*domain.ExecutionResult, bool, error) {
	contract, err := s.contracts.GetByNameAndChain(ctx, domain.ProtocolContractName, legacy.ChainID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("lookup protocol contract: %w", err))
	}
	if contract == nil {
		return nil, false, apperror.ErrNotFound("contract")
	}

	hash, err := s.chain.ExecuteLegacy(ctx, legacy, contract)
	if err != nil {
		if hash == "" {
			return nil, false, err
		}
		return &domain.ExecutionResult{Legacy: legacy, TransactionHash: hash}, errors.Is(err, apperror.ErrReceiptTimeout("")), err
	}

	s.log.Info().
		Str("legacy_id", legacy.ID.String()).
		Str("tx_hash", hash).
		Msg("legacy executed on chain")

	return &domain.ExecutionResult{Legacy: legacy, TransactionHash: hash}, true, nil
}

func (s *LegacyServiceImpl) executeInvestment(ctx context.Context, legacy *domain.Legacy) (*domain.ExecutionResult, bool, error) {
	_, signer, err := s.wallets.Signer(ctx, legacy.ID)
	if err != nil {
		return nil, false, err
	}

	staking, err := s.orchestrator.RunAction(ctx, legacy, signer, domain.ActionExit)
	if err != nil {
		if staking == nil {
			return nil, false, err
		}
		return &domain.ExecutionResult{Legacy: legacy, Staking: staking}, staking.Submitted() > 0, err
	}

	if _, err := s.wallets.MarkUnstaked(ctx, legacy.ID); err != nil {
		s.log.Error().Err(err).Str("legacy_id", legacy.ID.String()).Msg("exit completed but unstake time not recorded")
	}

	return &domain.ExecutionResult{Legacy: legacy, Staking: staking}, true, nil
}

// releaseExecution puts a failed execution back to NOT_EXECUTED unless
// something already reached the chain.
func (s *LegacyServiceImpl) releaseExecution(ctx context.Context, legacy *domain.Legacy, submitted bool, cause error) {
	logEvt := s.log.With().Str("legacy_id", legacy.ID.String()).Logger()
	if submitted {
		logEvt.Error().Err(cause).Msg("execution failed after submission, left EXECUTING for reconciliation")
		return
	}
	if _, err := s.legacies.TransitionExecutionState(ctx, legacy.ID, domain.ExecutionStateExecuting, domain.ExecutionStateNotExecuted); err != nil {
		logEvt.Error().Err(err).Msg("failed to release execution state")
		return
	}
	logEvt.Warn().Err(cause).Msg("execution failed before submission")
}

// Stake moves the legacy amount into the staking integration.
func (s *LegacyServiceImpl) Stake(ctx context.Context, id uuid.UUID) (*domain.ActionResult, error) {
	legacy, err := s.investmentLegacy(ctx, id)
	if err != nil {
		return nil, err
	}

	var result *domain.ActionResult
	err = s.withLock(ctx, id, "stake", func(ctx context.Context) error {
		_, signer, err := s.wallets.Signer(ctx, id)
		if err != nil {
			return err
		}
		result, err = s.orchestrator.RunAction(ctx, legacy, signer, domain.ActionEnter)
		return err
	})
	if err != nil {
		return result, err
	}

	evt := domain.NewLegacyEvent(domain.EventStakingActionCompleted, legacy, s.now())
	evt.Action = domain.ActionEnter
	evt.Staking = result
	evt.Submitted = result.Submitted()
	s.publish(ctx, evt)

	return result, nil
}

// Claim sweeps the claimable rewards of the investment wallet.
func (s *LegacyServiceImpl) Claim(ctx context.Context, id uuid.UUID) (*domain.PendingSweepResult, error) {
	legacy, err := s.investmentLegacy(ctx, id)
	if err != nil {
		return nil, err
	}

	var result *domain.PendingSweepResult
	err = s.withLock(ctx, id, "claim", func(ctx context.Context) error {
		_, signer, err := s.wallets.Signer(ctx, id)
		if err != nil {
			return err
		}
		result, err = s.orchestrator.RunPendingActions(ctx, legacy, signer, domain.ClaimRewardsSelector)
		return err
	})
	if err != nil {
		return result, err
	}

	s.publishSweep(ctx, legacy, result)
	return result, nil
}

// Withdraw sweeps unlocked unstaked principal once the wallet has exited.
func (s *LegacyServiceImpl) Withdraw(ctx context.Context, id uuid.UUID) (*domain.PendingSweepResult, error) {
	legacy, err := s.investmentLegacy(ctx, id)
	if err != nil {
		return nil, err
	}

	var result *domain.PendingSweepResult
	err = s.withLock(ctx, id, "withdraw", func(ctx context.Context) error {
		wallet, signer, err := s.wallets.Signer(ctx, id)
		if err != nil {
			return err
		}
		if !wallet.IsUnstaked() {
			return apperror.ErrNotUnstaked()
		}
		if !wallet.CooldownElapsed(s.now(), s.cfg.WithdrawCooldown) {
			return apperror.ErrWithdrawCooldown()
		}
		result, err = s.orchestrator.RunPendingActions(ctx, legacy, signer, domain.WithdrawSelector)
		return err
	})
	if err != nil {
		return result, err
	}

	s.publishSweep(ctx, legacy, result)
	return result, nil
}

// GetBalance returns the staking position of the investment wallet.
func (s *LegacyServiceImpl) GetBalance(ctx context.Context, id uuid.UUID) ([]domain.BalanceView, error) {
	legacy, err := s.investmentLegacy(ctx, id)
	if err != nil {
		return nil, err
	}
	wallet, err := s.wallets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.orchestrator.Balances(ctx, legacy, wallet.Address)
	if err != nil {
		return nil, err
	}
	return domain.NewBalanceViews(entries), nil
}

func (s *LegacyServiceImpl) investmentLegacy(ctx context.Context, id uuid.UUID) (*domain.Legacy, error) {
	legacy, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !legacy.InvestmentEnabled {
		return nil, apperror.ErrInvestmentNotEnabled()
	}
	return legacy, nil
}

// withLock runs fn while holding the legacy's lock. fn gets a context that
// survives the caller going away, bounded by the saga timeout.
func (s *LegacyServiceImpl) withLock(ctx context.Context, id uuid.UUID, op string, fn func(ctx context.Context) error) error {
	key := id.String()
	token, acquired, err := s.locker.Acquire(ctx, key, s.cfg.LockTTL)
	if err != nil {
		return apperror.ErrLockTimeout(err)
	}
	if !acquired {
		s.log.Info().Str("legacy_id", key).Str("op", op).Msg("legacy busy")
		return apperror.ErrLegacyBusy()
	}

	detached := context.WithoutCancel(ctx)
	defer func() {
		if err := s.locker.Release(detached, key, token); err != nil {
			s.log.Warn().Err(err).Str("legacy_id", key).Str("op", op).Msg("failed to release legacy lock")
		}
	}()

	var (
		sagaCtx context.Context
		cancel  context.CancelFunc
	)
	if s.cfg.SagaTimeout > 0 {
		sagaCtx, cancel = context.WithTimeout(detached, s.cfg.SagaTimeout)
	} else {
		sagaCtx, cancel = context.WithCancel(detached)
	}
	defer cancel()

	return fn(sagaCtx)
}

func (s *LegacyServiceImpl) publishSweep(ctx context.Context, legacy *domain.Legacy, result *domain.PendingSweepResult) {
	if result.NothingToDo {
		return
	}
	evt := domain.NewLegacyEvent(domain.EventStakingPendingSwept, legacy, s.now())
	evt.Action = domain.ActionPending
	evt.Submitted = result.Submitted()
	s.publish(ctx, evt)
}

func (s *LegacyServiceImpl) publish(ctx context.Context, evt *domain.LegacyEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warn().Err(err).
			Str("legacy_id", evt.LegacyID.String()).
			Str("event", string(evt.Type)).
			Msg("failed to publish event")
	}
}
