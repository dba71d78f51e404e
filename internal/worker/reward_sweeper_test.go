package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"aevia-legacy/config"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports/mocks"
	"aevia-legacy/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupSweeper(t *testing.T) (*RewardSweeper, *mocks.MockLegacyRepository, *mocks.MockLegacyService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockLegacyRepository(ctrl)
	svc := mocks.NewMockLegacyService(ctrl)
	sweeper := NewRewardSweeper(repo, svc, config.WorkerConfig{
		ClaimEnabled:     true,
		ClaimInterval:    time.Hour,
		ClaimConcurrency: 2,
		ClaimBatch:       10,
	}, zerolog.Nop())
	return sweeper, repo, svc
}

func TestRewardSweeper_RunOnce(t *testing.T) {
	sweeper, repo, svc := setupSweeper(t)
	ctx := context.Background()

	claimed, nothing, busy, broken := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	repo.EXPECT().ListInvestmentActive(ctx, 10).Return([]domain.Legacy{
		{ID: claimed, InvestmentEnabled: true},
		{ID: nothing, InvestmentEnabled: true},
		{ID: busy, InvestmentEnabled: true},
		{ID: broken, InvestmentEnabled: true},
	}, nil)

	svc.EXPECT().Claim(gomock.Any(), claimed).Return(&domain.PendingSweepResult{
		Status:  "completed",
		Actions: []domain.ActionResult{{Kind: domain.ActionPending}},
	}, nil)
	svc.EXPECT().Claim(gomock.Any(), nothing).Return(&domain.PendingSweepResult{NothingToDo: true, Status: "Nothing to claim"}, nil)
	svc.EXPECT().Claim(gomock.Any(), busy).Return(nil, apperror.ErrLegacyBusy())
	svc.EXPECT().Claim(gomock.Any(), broken).Return(nil, apperror.ErrProviderUnavailable(errors.New("503")))

	stats, err := sweeper.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, &SweepStats{Scanned: 4, Claimed: 1, Nothing: 1, Skipped: 1, Failed: 1}, stats)
}

func TestRewardSweeper_RunOnce_ListFails(t *testing.T) {
	sweeper, repo, _ := setupSweeper(t)
	ctx := context.Background()

	repo.EXPECT().ListInvestmentActive(ctx, 10).Return(nil, errors.New("db down"))

	_, err := sweeper.RunOnce(ctx)
	assert.Error(t, err)
}

func TestRewardSweeper_RunOnce_Empty(t *testing.T) {
	sweeper, repo, _ := setupSweeper(t)
	ctx := context.Background()

	repo.EXPECT().ListInvestmentActive(ctx, 10).Return(nil, nil)

	stats, err := sweeper.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Scanned)
}

func TestRewardSweeper_StartStopsOnCancel(t *testing.T) {
	sweeper, _, _ := setupSweeper(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := sweeper.Start(ctx)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestRewardSweeper_StartWaitsForInFlightClaim(t *testing.T) {
	sweeper, repo, svc := setupSweeper(t)
	sweeper.interval = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	id := uuid.New()
	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})

	repo.EXPECT().ListInvestmentActive(gomock.Any(), 10).Return([]domain.Legacy{{ID: id, InvestmentEnabled: true}}, nil)
	svc.EXPECT().Claim(gomock.Any(), id).DoAndReturn(func(context.Context, uuid.UUID) (*domain.PendingSweepResult, error) {
		close(started)
		<-release
		close(finished)
		return &domain.PendingSweepResult{NothingToDo: true}, nil
	})

	done := sweeper.Start(ctx)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("claim did not start")
	}
	cancel()

	select {
	case <-done:
		t.Fatal("sweeper stopped before the claim finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
	select {
	case <-finished:
	default:
		t.Fatal("claim did not finish")
	}
}

func TestRewardSweeper_StartDisabled(t *testing.T) {
	sweeper, _, _ := setupSweeper(t)
	sweeper.interval = 0

	select {
	case <-sweeper.Start(context.Background()):
	case <-time.After(time.Second):
		t.Fatal("disabled sweeper did not report done")
	}
}

func TestNewRewardSweeper_Defaults(t *testing.T) {
	sweeper := NewRewardSweeper(nil, nil, config.WorkerConfig{}, zerolog.Nop())
	assert.Equal(t, 1, sweeper.concurrency)
	assert.Equal(t, 100, sweeper.batch)
}
