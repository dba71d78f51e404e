package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports/mocks"
	"aevia-legacy/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const custodyAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

type orchestratorTestDeps struct {
	svc      *StakingOrchestratorService
	provider *mocks.MockStakingProvider
	signer   *mocks.MockCustodySigner
	ctrl     *gomock.Controller
}

func setupOrchestrator(t *testing.T, maxPolls int) *orchestratorTestDeps {
	ctrl := gomock.NewController(t)
	d := &orchestratorTestDeps{
		provider: mocks.NewMockStakingProvider(ctrl),
		signer:   mocks.NewMockCustodySigner(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewStakingOrchestrator(d.provider, OrchestratorConfig{
		GasTier:         domain.GasTierMarket,
		PollInterval:    time.Millisecond,
		PollMaxAttempts: maxPolls,
	}, zerolog.Nop())
	d.signer.EXPECT().Address().Return(custodyAddress).AnyTimes()
	return d
}

func stakingLegacy(amount string) *domain.Legacy {
	return &domain.Legacy{
		ID:           uuid.New(),
		ChainID:      domain.ChainEthereumMainnet,
		TokenAddress: domain.TokenEthereumPOL,
		Amount:       amount,
	}
}

func polYield() *domain.YieldInfo {
	return &domain.YieldInfo{
		ID:               domain.IntegrationPOL,
		Decimals:         18,
		MinAmount:        decimal.NewFromInt(1),
		DefaultValidator: "0xvalidator",
	}
}

var marketQuote = &domain.GasQuote{Modes: []domain.GasMode{
	{Name: "economy", GasArgs: json.RawMessage(`{"tier":"economy"}`)},
	{Name: "market", GasArgs: json.RawMessage(`{"tier":"market"}`)},
	{Name: "fast", GasArgs: json.RawMessage(`{"tier":"fast"}`)},
}}

// expectLeg sets up gas, signing and submission for one leg.
func (d *orchestratorTestDeps) expectLeg(ctx context.Context, txID string) {
	unsigned := &domain.UnsignedTransaction{From: custodyAddress, Nonce: 1}
	d.provider.EXPECT().GetGasQuote(ctx, "ethereum").Return(marketQuote, nil)
	d.provider.EXPECT().AttachGas(ctx, txID, json.RawMessage(`{"tier":"market"}`)).Return(unsigned, nil)
	d.signer.EXPECT().SignTransaction(unsigned).Return("0xsigned-"+txID, nil)
	d.provider.EXPECT().SubmitSigned(ctx, txID, "0xsigned-"+txID).Return(nil)
}

// ==================== RunAction Tests ====================

func TestStakingOrchestrator_RunAction_Success(t *testing.T) {
	d := setupOrchestrator(t, 5)
	defer d.ctrl.Finish()

	ctx := context.Background()
	legacy := stakingLegacy("2500000000000000000")

	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().InitiateAction(ctx, domain.ActionRequest{
		IntegrationID:    domain.IntegrationPOL,
		Kind:             domain.ActionEnter,
		Address:          custodyAddress,
		Amount:           "2.5",
		ValidatorAddress: "0xvalidator",
	}).Return(&domain.ActionSession{ID: "action-1", Transactions: []domain.PartialTransaction{
		{ID: "stake", Type: "STAKE", Status: domain.TxStatusPending, Network: "ethereum", StepIndex: 1},
		{ID: "approve", Type: "APPROVAL", Status: domain.TxStatusSkipped, Network: "ethereum", StepIndex: 0},
	}}, nil)

	d.expectLeg(ctx, "stake")
	gomock.InOrder(
		d.provider.EXPECT().PollStatus(ctx, "stake").Return(&domain.TransactionStatusReport{Status: domain.TxStatusPending}, nil),
		d.provider.EXPECT().PollStatus(ctx, "stake").Return(&domain.TransactionStatusReport{Status: domain.TxStatusPending}, nil),
		d.provider.EXPECT().PollStatus(ctx, "stake").Return(&domain.TransactionStatusReport{
			Status: domain.TxStatusConfirmed, Hash: "0xhash", URL: "https://etherscan.io/tx/0xhash",
		}, nil),
	)

	result, err := d.svc.RunAction(ctx, legacy, d.signer, domain.ActionEnter)
	require.NoError(t, err)
	require.Len(t, result.Legs, 2)

	assert.Equal(t, domain.ActionEnter, result.Kind)
	assert.Equal(t, "action-1", result.SessionID)
	assert.Equal(t, "approve", result.Legs[0].TransactionID)
	assert.Equal(t, domain.TxStatusSkipped, result.Legs[0].Status)
	assert.False(t, result.Legs[0].Submitted)
	assert.Equal(t, domain.TxStatusConfirmed, result.Legs[1].Status)
	assert.Equal(t, "0xhash", result.Legs[1].Hash)
	assert.Equal(t, 1, result.Submitted())
}

func TestStakingOrchestrator_RunAction_NextLegAfterConfirmation(t *testing.T) {
	d := setupOrchestrator(t, 5)
	defer d.ctrl.Finish()

	ctx := context.Background()
	legacy := stakingLegacy("2500000000000000000")
	market := json.RawMessage(`{"tier":"market"}`)
	unsignedApprove := &domain.UnsignedTransaction{From: custodyAddress, Nonce: 1}
	unsignedStake := &domain.UnsignedTransaction{From: custodyAddress, Nonce: 2}
	pending := &domain.TransactionStatusReport{Status: domain.TxStatusPending}

	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().InitiateAction(ctx, gomock.Any()).Return(&domain.ActionSession{ID: "action-2", Transactions: []domain.PartialTransaction{
		{ID: "approve", Type: "APPROVAL", Status: domain.TxStatusPending, Network: "ethereum", StepIndex: 0},
		{ID: "stake", Type: "STAKE", Status: domain.TxStatusPending, Network: "ethereum", StepIndex: 1},
	}}, nil)

	gomock.InOrder(
		d.provider.EXPECT().GetGasQuote(ctx, "ethereum").Return(marketQuote, nil),
		d.provider.EXPECT().AttachGas(ctx, "approve", market).Return(unsignedApprove, nil),
		d.signer.EXPECT().SignTransaction(unsignedApprove).Return("0xsigned-approve", nil),
		d.provider.EXPECT().SubmitSigned(ctx, "approve", "0xsigned-approve").Return(nil),
		d.provider.EXPECT().PollStatus(ctx, "approve").Return(pending, nil),
		d.provider.EXPECT().PollStatus(ctx, "approve").Return(pending, nil),
		d.provider.EXPECT().PollStatus(ctx, "approve").Return(&domain.TransactionStatusReport{Status: domain.TxStatusConfirmed, Hash: "0xa"}, nil),
		d.provider.EXPECT().GetGasQuote(ctx, "ethereum").Return(marketQuote, nil),
		d.provider.EXPECT().AttachGas(ctx, "stake", market).Return(unsignedStake, nil),
		d.signer.EXPECT().SignTransaction(unsignedStake).Return("0xsigned-stake", nil),
		d.provider.EXPECT().SubmitSigned(ctx, "stake", "0xsigned-stake").Return(nil),
		d.provider.EXPECT().PollStatus(ctx, "stake").Return(&domain.TransactionStatusReport{Status: domain.TxStatusConfirmed, Hash: "0xs"}, nil),
	)

	result, err := d.svc.RunAction(ctx, legacy, d.signer, domain.ActionEnter)
	require.NoError(t, err)
	require.Len(t, result.Legs, 2)
	assert.Equal(t, "0xa", result.Legs[0].Hash)
	assert.Equal(t, "0xs", result.Legs[1].Hash)
	assert.Equal(t, 2, result.Submitted())
}

func TestStakingOrchestrator_RunAction_IntegrationNotFound(t *testing.T) {
	d := setupOrchestrator(t, 5)
	defer d.ctrl.Finish()

	legacy := stakingLegacy("1000000000000000000")
	legacy.ChainID = 10

	_, err := d.svc.RunAction(context.Background(), legacy, d.signer, domain.ActionEnter)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrIntegrationNotFound(0, ""))
	assert.Contains(t, err.Error(), legacy.ID.String())
}

func TestStakingOrchestrator_RunAction_AmountTooLow(t *testing.T) {
	d := setupOrchestrator(t, 5)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)

	_, err := d.svc.RunAction(ctx, stakingLegacy("999999999999999999"), d.signer, domain.ActionEnter)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrAmountTooLow("", ""))
}

func TestStakingOrchestrator_RunAction_AmountEqualToMinimum(t *testing.T) {
	d := setupOrchestrator(t, 5)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().InitiateAction(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.ActionRequest) (*domain.ActionSession, error) {
			assert.Equal(t, "1", req.Amount)
			return &domain.ActionSession{ID: "action-2", Transactions: []domain.PartialTransaction{}}, nil
		})

	result, err := d.svc.RunAction(ctx, stakingLegacy("1000000000000000000"), d.signer, domain.ActionEnter)
	require.NoError(t, err)
	assert.Empty(t, result.Legs)
}

func TestStakingOrchestrator_RunAction_MissingTransactions(t *testing.T) {
	d := setupOrchestrator(t, 5)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().InitiateAction(ctx, gomock.Any()).Return(&domain.ActionSession{ID: "action-3"}, nil)

	_, err := d.svc.RunAction(ctx, stakingLegacy("5000000000000000000"), d.signer, domain.ActionExit)
	assert.ErrorIs(t, err, apperror.ErrSagaInitiationFailed(nil))
}

func TestStakingOrchestrator_RunAction_FailedLegContinues(t *testing.T) {
	d := setupOrchestrator(t, 5)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().InitiateAction(ctx, gomock.Any()).Return(&domain.ActionSession{ID: "action-4", Transactions: []domain.PartialTransaction{
		{ID: "first", Status: domain.TxStatusPending, Network: "ethereum", StepIndex: 0},
		{ID: "second", Status: domain.TxStatusPending, Network: "ethereum", StepIndex: 1},
	}}, nil)

	d.expectLeg(ctx, "first")
	d.provider.EXPECT().PollStatus(ctx, "first").Return(&domain.TransactionStatusReport{Status: domain.TxStatusFailed}, nil)
	d.expectLeg(ctx, "second")
	d.provider.EXPECT().PollStatus(ctx, "second").Return(&domain.TransactionStatusReport{Status: domain.TxStatusConfirmed}, nil)

	result, err := d.svc.RunAction(ctx, stakingLegacy("5000000000000000000"), d.signer, domain.ActionExit)
	require.NoError(t, err)
	require.Len(t, result.Legs, 2)
	assert.Equal(t, domain.TxStatusFailed, result.Legs[0].Status)
	assert.Equal(t, domain.TxStatusConfirmed, result.Legs[1].Status)
	assert.Equal(t, 1, result.Failed())
}

func TestStakingOrchestrator_RunAction_ConfirmationTimeout(t *testing.T) {
	d := setupOrchestrator(t, 3)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().InitiateAction(ctx, gomock.Any()).Return(&domain.ActionSession{ID: "action-5", Transactions: []domain.PartialTransaction{
		{ID: "slow", Status: domain.TxStatusPending, Network: "ethereum"},
		{ID: "never", Status: domain.TxStatusPending, Network: "ethereum", StepIndex: 1},
	}}, nil)

	d.expectLeg(ctx, "slow")
	d.provider.EXPECT().PollStatus(ctx, "slow").Return(&domain.TransactionStatusReport{Status: domain.TxStatusPending}, nil).Times(3)

	result, err := d.svc.RunAction(ctx, stakingLegacy("5000000000000000000"), d.signer, domain.ActionEnter)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConfirmationTimeout(""))
	require.NotNil(t, result)
	require.Len(t, result.Legs, 1)
	assert.True(t, result.Legs[0].Submitted)
	assert.Equal(t, 1, result.Submitted())
}

func TestStakingOrchestrator_RunAction_PollRetriesUnavailableProvider(t *testing.T) {
	d := setupOrchestrator(t, 3)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().InitiateAction(ctx, gomock.Any()).Return(&domain.ActionSession{ID: "action-6", Transactions: []domain.PartialTransaction{
		{ID: "leg", Status: domain.TxStatusPending, Network: "ethereum"},
	}}, nil)

	d.expectLeg(ctx, "leg")
	gomock.InOrder(
		d.provider.EXPECT().PollStatus(ctx, "leg").Return(nil, apperror.ErrProviderUnavailable(assert.AnError)),
		d.provider.EXPECT().PollStatus(ctx, "leg").Return(&domain.TransactionStatusReport{Status: domain.TxStatusConfirmed}, nil),
	)

	result, err := d.svc.RunAction(ctx, stakingLegacy("5000000000000000000"), d.signer, domain.ActionEnter)
	require.NoError(t, err)
	assert.Equal(t, domain.TxStatusConfirmed, result.Legs[0].Status)
}

func TestStakingOrchestrator_RunAction_SigningFailureStopsBeforeSubmit(t *testing.T) {
	d := setupOrchestrator(t, 3)
	defer d.ctrl.Finish()

	ctx := context.Background()
	unsigned := &domain.UnsignedTransaction{From: custodyAddress}
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().InitiateAction(ctx, gomock.Any()).Return(&domain.ActionSession{ID: "action-7", Transactions: []domain.PartialTransaction{
		{ID: "leg", Status: domain.TxStatusPending, Network: "ethereum"},
	}}, nil)
	d.provider.EXPECT().GetGasQuote(ctx, "ethereum").Return(marketQuote, nil)
	d.provider.EXPECT().AttachGas(ctx, "leg", gomock.Any()).Return(unsigned, nil)
	d.signer.EXPECT().SignTransaction(unsigned).Return("", apperror.ErrMalformedTransaction(assert.AnError))

	result, err := d.svc.RunAction(ctx, stakingLegacy("5000000000000000000"), d.signer, domain.ActionEnter)
	assert.ErrorIs(t, err, apperror.ErrMalformedTransaction(nil))
	require.Len(t, result.Legs, 1)
	assert.False(t, result.Legs[0].Submitted)
	assert.NotEmpty(t, result.Legs[0].Error)
}

// ==================== RunPendingActions Tests ====================

func TestStakingOrchestrator_RunPendingActions_Withdraw(t *testing.T) {
	d := setupOrchestrator(t, 3)
	defer d.ctrl.Finish()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	d.svc.now = func() time.Time { return now }
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().GetBalances(ctx, domain.IntegrationPOL, custodyAddress, []string{"0xvalidator"}).Return([]domain.BalanceEntry{
		{GroupID: "unlocked", Type: domain.BalanceTypeUnstaked, Amount: "10", Date: &past,
			PendingActions: []domain.PendingAction{{Type: domain.PendingActionWithdraw, Passthrough: "pass-1"}}},
		{GroupID: "locked", Type: domain.BalanceTypeUnstaked, Amount: "20", Date: &future,
			PendingActions: []domain.PendingAction{{Type: domain.PendingActionWithdraw, Passthrough: "pass-2"}}},
	}, nil)
	d.provider.EXPECT().InitiateAction(ctx, domain.ActionRequest{
		IntegrationID:    domain.IntegrationPOL,
		Kind:             domain.ActionPending,
		Address:          custodyAddress,
		Amount:           "10",
		ValidatorAddress: "0xvalidator",
		PendingType:      domain.PendingActionWithdraw,
		Passthrough:      "pass-1",
	}).Return(&domain.ActionSession{ID: "pending-1", Transactions: []domain.PartialTransaction{
		{ID: "withdraw", Status: domain.TxStatusPending, Network: "ethereum"},
	}}, nil)
	d.expectLeg(ctx, "withdraw")
	d.provider.EXPECT().PollStatus(ctx, "withdraw").Return(&domain.TransactionStatusReport{Status: domain.TxStatusConfirmed}, nil)

	sweep, err := d.svc.RunPendingActions(ctx, stakingLegacy("0"), d.signer, domain.WithdrawSelector)
	require.NoError(t, err)
	assert.False(t, sweep.NothingToDo)
	require.Len(t, sweep.Actions, 1)
	assert.Equal(t, domain.PendingActionWithdraw, sweep.Actions[0].PendingType)
	assert.Equal(t, 1, sweep.Submitted())
}

func TestStakingOrchestrator_RunPendingActions_NothingToDo(t *testing.T) {
	d := setupOrchestrator(t, 3)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().GetBalances(ctx, domain.IntegrationPOL, custodyAddress, gomock.Any()).Return([]domain.BalanceEntry{
		{GroupID: "staked", Type: domain.BalanceTypeStaked, Amount: "10"},
	}, nil)

	sweep, err := d.svc.RunPendingActions(ctx, stakingLegacy("0"), d.signer, domain.WithdrawSelector)
	require.NoError(t, err)
	assert.True(t, sweep.NothingToDo)
	assert.Equal(t, domain.NothingToWithdraw, sweep.Status)
	assert.Zero(t, sweep.Submitted())
}

func TestStakingOrchestrator_RunPendingActions_ProviderError(t *testing.T) {
	d := setupOrchestrator(t, 3)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(nil, apperror.ErrProviderError(502, "bad gateway"))

	_, err := d.svc.RunPendingActions(ctx, stakingLegacy("0"), d.signer, domain.ClaimRewardsSelector)
	assert.ErrorIs(t, err, apperror.ErrProviderError(0, ""))
}

// ==================== Balances Tests ====================

func TestStakingOrchestrator_Balances(t *testing.T) {
	d := setupOrchestrator(t, 3)
	defer d.ctrl.Finish()

	ctx := context.Background()
	entries := []domain.BalanceEntry{{GroupID: "g", Type: domain.BalanceTypeStaked, Amount: "3"}}
	d.provider.EXPECT().GetYieldInfo(ctx, domain.IntegrationPOL).Return(polYield(), nil)
	d.provider.EXPECT().GetBalances(ctx, domain.IntegrationPOL, custodyAddress, []string{"0xvalidator"}).Return(entries, nil)

	got, err := d.svc.Balances(ctx, stakingLegacy("0"), custodyAddress)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
