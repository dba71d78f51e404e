package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/pkg/apperror"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	sagaLegsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aevia_saga_legs_total",
			Help: "Staking saga legs by action kind and final status.",
		},
		[]string{"kind", "status"},
	)
	sagaDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aevia_saga_duration_seconds",
			Help:    "Duration of staking sagas.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"kind", "outcome"},
	)
)

// errStillPending makes the poll loop try again.
var errStillPending = errors.New("transaction still pending")

// OrchestratorConfig tunes the saga loop.
type OrchestratorConfig struct {
	GasTier         domain.GasTier
	PollInterval    time.Duration
	PollMaxAttempts int
}

// StakingOrchestratorService implements ports.StakingOrchestrator. It drives
// every leg of a provider plan through gas, signing, submission and polling.
type StakingOrchestratorService struct {
	provider ports.StakingProvider
	cfg      OrchestratorConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewStakingOrchestrator creates a new StakingOrchestratorService.
func NewStakingOrchestrator(provider ports.StakingProvider, cfg OrchestratorConfig, log zerolog.Logger) *StakingOrchestratorService {
	if cfg.PollMaxAttempts < 1 {
		cfg.PollMaxAttempts = 1
	}
	return &StakingOrchestratorService{
		provider: provider,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// RunAction runs an enter or exit saga for the legacy from the signer's address.
func (o *StakingOrchestratorService) RunAction(ctx context.Context, legacy *domain.Legacy, signer ports.CustodySigner, kind domain.ActionKind) (*domain.ActionResult, error) {
	start := time.Now()
	result, err := o.runAction(ctx, legacy, signer, kind)
	observeSaga(kind, start, err)
	if err != nil {
		return result, fmt.Errorf("legacy %s %s: %w", legacy.ID, kind, err)
	}
	return result, nil
}

func (o *StakingOrchestratorService) runAction(ctx context.Context, legacy *domain.Legacy, signer ports.CustodySigner, kind domain.ActionKind) (*domain.ActionResult, error) {
	integration, yield, err := o.resolveYield(ctx, legacy)
	if err != nil {
		return nil, err
	}

	amount, err := domain.NormalizeAmount(legacy.Amount, yield.Decimals)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if amount.LessThan(yield.MinAmount) {
		return nil, apperror.ErrAmountTooLow(amount.String(), yield.MinAmount.String())
	}

	session, err := o.provider.InitiateAction(ctx, domain.ActionRequest{
		IntegrationID:    integration.ID,
		Kind:             kind,
		Address:          signer.Address(),
		Amount:           amount.String(),
		ValidatorAddress: yield.Validator(),
	})
	if err != nil {
		return nil, err
	}
	if session.Transactions == nil {
		return nil, apperror.ErrSagaInitiationFailed(fmt.Errorf("action %s has no transactions", session.ID))
	}

	result := &domain.ActionResult{
		Kind:          kind,
		IntegrationID: integration.ID,
		SessionID:     session.ID,
	}
	err = o.completeLegs(ctx, legacy, signer, session.Transactions, result)

	o.log.Info().
		Str("legacy_id", legacy.ID.String()).
		Str("action", string(kind)).
		Str("session_id", session.ID).
		Int("legs", len(result.Legs)).
		Int("submitted", result.Submitted()).
		Int("failed", result.Failed()).
		Msg("staking action finished")

	return result, err
}

// RunPendingActions pushes every pending action matched by sel through the
// provider's pending endpoint.
func (o *StakingOrchestratorService) RunPendingActions(ctx context.Context, legacy *domain.Legacy, signer ports.CustodySigner, sel domain.PendingSelector) (*domain.PendingSweepResult, error) {
	start := time.Now()
	result, err := o.runPendingActions(ctx, legacy, signer, sel)
	observeSaga(domain.ActionPending, start, err)
	if err != nil {
		return result, fmt.Errorf("legacy %s %s %s: %w", legacy.ID, domain.ActionPending, sel.Name, err)
	}
	return result, nil
}

func (o *StakingOrchestratorService) runPendingActions(ctx context.Context, legacy *domain.Legacy, signer ports.CustodySigner, sel domain.PendingSelector) (*domain.PendingSweepResult, error) {
	integration, yield, err := o.resolveYield(ctx, legacy)
	if err != nil {
		return nil, err
	}

	entries, err := o.provider.GetBalances(ctx, integration.ID, signer.Address(), yield.Validators())
	if err != nil {
		return nil, err
	}

	work := sel.Select(entries, o.now())
	if len(work) == 0 {
		o.log.Info().
			Str("legacy_id", legacy.ID.String()).
			Str("selector", sel.Name).
			Msg("no pending actions")
		return &domain.PendingSweepResult{NothingToDo: true, Status: "Nothing to " + sel.Name}, nil
	}

	sweep := &domain.PendingSweepResult{Status: "completed"}
	for _, w := range work {
		validator := w.Entry.ValidatorAddress
		if validator == "" {
			validator = yield.Validator()
		}

		session, err := o.provider.InitiateAction(ctx, domain.ActionRequest{
			IntegrationID:    integration.ID,
			Kind:             domain.ActionPending,
			Address:          signer.Address(),
			Amount:           w.Entry.Amount,
			ValidatorAddress: validator,
			PendingType:      w.Action.Type,
			Passthrough:      w.Action.Passthrough,
		})
		if err != nil {
			return sweep, err
		}
		if session.Transactions == nil {
			return sweep, apperror.ErrSagaInitiationFailed(fmt.Errorf("pending action %s has no transactions", session.ID))
		}

		action := domain.ActionResult{
			Kind:          domain.ActionPending,
			IntegrationID: integration.ID,
			SessionID:     session.ID,
			PendingType:   w.Action.Type,
		}
		err = o.completeLegs(ctx, legacy, signer, session.Transactions, &action)
		sweep.Actions = append(sweep.Actions, action)
		if err != nil {
			return sweep, err
		}
	}

	o.log.Info().
		Str("legacy_id", legacy.ID.String()).
		Str("selector", sel.Name).
		Int("actions", len(sweep.Actions)).
		Int("submitted", sweep.Submitted()).
		Msg("pending actions finished")

	return sweep, nil
}

// Balances returns the provider balances of address for the legacy's integration.
func (o *StakingOrchestratorService) Balances(ctx context.Context, legacy *domain.Legacy, address string) ([]domain.BalanceEntry, error) {
	integration, yield, err := o.resolveYield(ctx, legacy)
	if err != nil {
		return nil, fmt.Errorf("legacy %s balances: %w", legacy.ID, err)
	}
	entries, err := o.provider.GetBalances(ctx, integration.ID, address, yield.Validators())
	if err != nil {
		return nil, fmt.Errorf("legacy %s balances: %w", legacy.ID, err)
	}
	return entries, nil
}

func (o *StakingOrchestratorService) resolveYield(ctx context.Context, legacy *domain.Legacy) (domain.StakingIntegration, *domain.YieldInfo, error) {
	integration, ok := domain.ResolveIntegration(legacy.ChainID, legacy.TokenAddress)
	if !ok {
		return domain.StakingIntegration{}, nil, apperror.ErrIntegrationNotFound(legacy.ChainID, legacy.TokenAddress)
	}
	yield, err := o.provider.GetYieldInfo(ctx, integration.ID)
	if err != nil {
		return domain.StakingIntegration{}, nil, err
	}
	return integration, yield, nil
}

// completeLegs walks the plan in step order. A FAILED leg is recorded and the
// walk continues; any other error stops it with the legs done so far.
func (o *StakingOrchestratorService) completeLegs(ctx context.Context, legacy *domain.Legacy, signer ports.CustodySigner, txs []domain.PartialTransaction, result *domain.ActionResult) error {
	legs := make([]domain.PartialTransaction, len(txs))
	copy(legs, txs)
	sort.SliceStable(legs, func(i, j int) bool { return legs[i].StepIndex < legs[j].StepIndex })

	for _, tx := range legs {
		leg := domain.LegResult{
			TransactionID: tx.ID,
			Type:          tx.Type,
			Network:       tx.Network,
			StepIndex:     tx.StepIndex,
			Status:        tx.Status,
		}

		logEvt := o.log.With().
			Str("legacy_id", legacy.ID.String()).
			Str("action", string(result.Kind)).
			Str("tx_id", tx.ID).
			Str("tx_type", tx.Type).
			Logger()

		if tx.Status == domain.TxStatusSkipped {
			logEvt.Debug().Msg("leg skipped")
			result.Legs = append(result.Legs, leg)
			sagaLegsTotal.WithLabelValues(string(result.Kind), string(domain.TxStatusSkipped)).Inc()
			continue
		}

		if err := o.completeLeg(ctx, signer, tx, &leg); err != nil {
			leg.Error = err.Error()
			result.Legs = append(result.Legs, leg)
			sagaLegsTotal.WithLabelValues(string(result.Kind), "error").Inc()
			logEvt.Error().Err(err).Bool("submitted", leg.Submitted).Msg("leg aborted")
			return err
		}

		result.Legs = append(result.Legs, leg)
		sagaLegsTotal.WithLabelValues(string(result.Kind), string(leg.Status)).Inc()

		if leg.Status == domain.TxStatusFailed {
			logEvt.Warn().Str("hash", leg.Hash).Msg("leg failed, continuing")
			continue
		}
		logEvt.Info().Str("hash", leg.Hash).Str("url", leg.URL).Msg("leg confirmed")
	}
	return nil
}

func (o *StakingOrchestratorService) completeLeg(ctx context.Context, signer ports.CustodySigner, tx domain.PartialTransaction, leg *domain.LegResult) error {
	quote, err := o.provider.GetGasQuote(ctx, tx.Network)
	if err != nil {
		return err
	}
	mode, err := quote.Select(o.cfg.GasTier)
	if err != nil {
		return apperror.ErrMalformedTransaction(err)
	}

	unsigned, err := o.provider.AttachGas(ctx, tx.ID, mode.GasArgs)
	if err != nil {
		return err
	}

	signed, err := signer.SignTransaction(unsigned)
	if err != nil {
		return err
	}

	if err := o.provider.SubmitSigned(ctx, tx.ID, signed); err != nil {
		return err
	}
	leg.Submitted = true

	report, err := o.awaitTerminal(ctx, tx.ID)
	if err != nil {
		return err
	}
	leg.Status = report.Status
	leg.Hash = report.Hash
	leg.URL = report.URL
	return nil
}

// awaitTerminal polls until CONFIRMED or FAILED, at most PollMaxAttempts times.
func (o *StakingOrchestratorService) awaitTerminal(ctx context.Context, txID string) (*domain.TransactionStatusReport, error) {
	poll := func() (*domain.TransactionStatusReport, error) {
		report, err := o.provider.PollStatus(ctx, txID)
		if err != nil {
			if errors.Is(err, apperror.ErrProviderUnavailable(nil)) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if !report.Status.IsTerminal() {
			return nil, errStillPending
		}
		return report, nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(o.cfg.PollInterval), uint64(o.cfg.PollMaxAttempts-1)),
		ctx,
	)
	report, err := backoff.RetryWithData(poll, policy)
	if err != nil {
		if errors.Is(err, errStillPending) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.ErrConfirmationTimeout(txID)
		}
		return nil, err
	}
	return report, nil
}

func observeSaga(kind domain.ActionKind, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	sagaDuration.WithLabelValues(string(kind), outcome).Observe(time.Since(start).Seconds())
}
