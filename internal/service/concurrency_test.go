package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"aevia-legacy/config"
	redisStorage "aevia-legacy/internal/adapter/storage/redis"
	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports/mocks"
	"aevia-legacy/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// inMemoryLegacyRepo keeps legacies in a map; TransitionExecutionState is an
// atomic compare-and-swap like the SQL UPDATE ... WHERE execution_state = $from.
type inMemoryLegacyRepo struct {
	mu   sync.Mutex
	data map[uuid.UUID]domain.Legacy
}

func newInMemoryLegacyRepo(legacies ...*domain.Legacy) *inMemoryLegacyRepo {
	r := &inMemoryLegacyRepo{data: make(map[uuid.UUID]domain.Legacy)}
	for _, l := range legacies {
		r.data[l.ID] = *l
	}
	return r
}

func (r *inMemoryLegacyRepo) Create(_ context.Context, _ pgx.Tx, l *domain.Legacy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[l.ID] = *l
	return nil
}

func (r *inMemoryLegacyRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Legacy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *inMemoryLegacyRepo) GetLastByTelegramID(_ context.Context, _ string) (*domain.Legacy, error) {
	return nil, errors.New("not implemented")
}

func (r *inMemoryLegacyRepo) UpdateSignature(_ context.Context, _ uuid.UUID, _ string) (bool, error) {
	return false, errors.New("not implemented")
}

func (r *inMemoryLegacyRepo) SetInvestmentWallet(_ context.Context, _ pgx.Tx, _ uuid.UUID, _ string) error {
	return errors.New("not implemented")
}

func (r *inMemoryLegacyRepo) TransitionExecutionState(_ context.Context, id uuid.UUID, from, to domain.ExecutionState) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.data[id]
	if !ok || l.ExecutionState != from {
		return false, nil
	}
	l.ExecutionState = to
	r.data[id] = l
	return true, nil
}

func (r *inMemoryLegacyRepo) ListInvestmentActive(_ context.Context, _ int) ([]domain.Legacy, error) {
	return nil, errors.New("not implemented")
}

func (r *inMemoryLegacyRepo) state(id uuid.UUID) domain.ExecutionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[id].ExecutionState
}

func setupConcurrentExecute(t *testing.T, legacy *domain.Legacy) (*LegacyServiceImpl, *inMemoryLegacyRepo, *mocks.MockChainExecutor) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := newInMemoryLegacyRepo(legacy)
	contracts := mocks.NewMockContractRepository(ctrl)
	contracts.EXPECT().GetByNameAndChain(gomock.Any(), domain.ProtocolContractName, legacy.ChainID).
		Return(protocolContract(legacy.ChainID), nil).AnyTimes()
	chain := mocks.NewMockChainExecutor(ctrl)

	svc := NewLegacyService(LegacyDeps{
		Legacies:  repo,
		Contracts: contracts,
		Chain:     chain,
		Locker:    redisStorage.NewLegacyLock(client),
	}, config.LegacyConfig{LockTTL: time.Minute, SagaTimeout: time.Minute}, zerolog.Nop())

	return svc, repo, chain
}

// TestConcurrentExecute fires many execute requests at one legacy and checks
// that exactly one reaches the chain.
func TestConcurrentExecute(t *testing.T) {
	legacy := signedLegacy()
	svc, repo, chain := setupConcurrentExecute(t, legacy)

	var chainCalls atomic.Int32
	chain.EXPECT().ExecuteLegacy(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Legacy, _ *domain.Contract) (string, error) {
			chainCalls.Add(1)
			time.Sleep(50 * time.Millisecond)
			return "0xhash", nil
		}).Times(1)

	const concurrency = 20
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		busy      atomic.Int32
		already   atomic.Int32
		other     atomic.Int32
		start     = make(chan struct{})
	)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Execute(context.Background(), legacy.ID)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, apperror.ErrLegacyBusy()):
				busy.Add(1)
			case errors.Is(err, apperror.ErrAlreadyExecuted()):
				already.Add(1)
			default:
				other.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(1), chainCalls.Load())
	assert.Equal(t, int32(concurrency-1), busy.Load()+already.Load())
	assert.Zero(t, other.Load())
	assert.Equal(t, domain.ExecutionStateExecuted, repo.state(legacy.ID))

	// Once executed, later calls are rejected without taking the lock.
	_, err := svc.Execute(context.Background(), legacy.ID)
	assert.ErrorIs(t, err, apperror.ErrAlreadyExecuted())
}

// TestExecuteRetryAfterFailureBeforeSubmit checks that a failure before any
// transaction was broadcast frees both the lock and the execution state.
func TestExecuteRetryAfterFailureBeforeSubmit(t *testing.T) {
	legacy := signedLegacy()
	svc, repo, chain := setupConcurrentExecute(t, legacy)

	gomock.InOrder(
		chain.EXPECT().ExecuteLegacy(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", apperror.ErrChainUnavailable(errors.New("dial tcp: refused"))),
		chain.EXPECT().ExecuteLegacy(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("0xhash", nil),
	)

	_, err := svc.Execute(context.Background(), legacy.ID)
	require.Error(t, err)
	assert.Equal(t, domain.ExecutionStateNotExecuted, repo.state(legacy.ID))

	result, err := svc.Execute(context.Background(), legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, "0xhash", result.TransactionHash)
	assert.Equal(t, domain.ExecutionStateExecuted, repo.state(legacy.ID))
}
