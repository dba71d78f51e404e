package worker

import (
	"context"
	"errors"
	"time"

	"aevia-legacy/config"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports"
	"aevia-legacy/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var rewardClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aevia_reward_claims_total",
	Help: "Reward claims attempted by the sweeper, by outcome.",
}, []string{"outcome"})

// RewardSweeper periodically claims staking rewards for every investment
// legacy that has not been executed yet.
type RewardSweeper struct {
	legacies    ports.LegacyRepository
	legacySvc   ports.LegacyService
	interval    time.Duration
	concurrency int
	batch       int
	log         zerolog.Logger
}

// NewRewardSweeper creates a new RewardSweeper.
func NewRewardSweeper(legacies ports.LegacyRepository, legacySvc ports.LegacyService, cfg config.WorkerConfig, log zerolog.Logger) *RewardSweeper {
	s := &RewardSweeper{
		legacies:    legacies,
		legacySvc:   legacySvc,
		interval:    cfg.ClaimInterval,
		concurrency: cfg.ClaimConcurrency,
		batch:       cfg.ClaimBatch,
		log:         log.With().Str("worker", "reward_sweeper").Logger(),
	}
	if s.concurrency < 1 {
		s.concurrency = 1
	}
	if s.batch < 1 {
		s.batch = 100
	}
	return s
}

// SweepStats summarizes one sweep.
type SweepStats struct {
	Scanned int
	Claimed int
	Nothing int
	Skipped int
	Failed  int
}

// Start runs a sweep every interval until ctx is cancelled. The returned
// channel is closed once the loop has stopped and the sweep in flight, if
// any, has finished.
func (s *RewardSweeper) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	if s.interval <= 0 {
		s.log.Warn().Msg("claim interval not set, reward sweeper disabled")
		close(done)
		return done
	}

	s.log.Info().Dur("interval", s.interval).Int("concurrency", s.concurrency).Msg("reward sweeper started")

	go func() {
		defer close(done)
		s.loop(ctx)
	}()
	return done
}

func (s *RewardSweeper) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			if _, err := s.RunOnce(ctx); err != nil {
				s.log.Error().Err(err).Msg("reward sweep failed")
			}
		case <-ctx.Done():
			s.log.Info().Msg("reward sweeper stopped")
			return
		}
	}
}

// RunOnce claims rewards for one batch of active investment legacies. A
// failing legacy does not stop the others.
func (s *RewardSweeper) RunOnce(ctx context.Context) (*SweepStats, error) {
	legacies, err := s.legacies.ListInvestmentActive(ctx, s.batch)
	if err != nil {
		return nil, err
	}

	outcomes := make([]string, len(legacies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range legacies {
		legacy := legacies[i]
		g.Go(func() error {
			outcomes[i] = s.claim(gctx, &legacy)
			return nil
		})
	}
	_ = g.Wait()

	stats := &SweepStats{Scanned: len(legacies)}
	for _, o := range outcomes {
		rewardClaimsTotal.WithLabelValues(o).Inc()
		switch o {
		case "claimed":
			stats.Claimed++
		case "nothing":
			stats.Nothing++
		case "skipped":
			stats.Skipped++
		default:
			stats.Failed++
		}
	}

	s.log.Info().
		Int("scanned", stats.Scanned).
		Int("claimed", stats.Claimed).
		Int("nothing", stats.Nothing).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("reward sweep finished")

	return stats, nil
}

func (s *RewardSweeper) claim(ctx context.Context, legacy *domain.Legacy) string {
	if ctx.Err() != nil {
		return "skipped"
	}

	result, err := s.legacySvc.Claim(ctx, legacy.ID)
	if err != nil {
		if errors.Is(err, apperror.ErrLegacyBusy()) {
			s.log.Debug().Str("legacy_id", legacy.ID.String()).Err(err).Msg("claim skipped")
			return "skipped"
		}
		s.log.Error().Str("legacy_id", legacy.ID.String()).Err(err).Msg("claim failed")
		return "failed"
	}
	if result.NothingToDo {
		return "nothing"
	}
	return "claimed"
}
