package quota

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/tubespark/server/internal/plans"
)

type staticResolver struct {
	tier string
	err  error
}

func (r staticResolver) PlanTier(_ context.Context, _ string) (string, error) {
	return r.tier, r.err
}

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveConsume(_ plans.ResourceKind, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var october = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func newTestLedger(tier string, opts ...Option) (*Ledger, *MemoryStore) {
	store := NewMemoryStore()
	opts = append([]Option{WithClock(fixedClock(october))}, opts...)
	return NewLedger(store, staticResolver{tier: tier}, opts...), store
}

func TestLedger_CheckLimit_Fresh(t *testing.T) {
	ledger, _ := newTestLedger("free")

	limit, err := ledger.CheckLimit(context.Background(), "user-1", plans.KindIdea)
	require.NoError(t, err)

	assert.Equal(t, 0, limit.Used)
	assert.Equal(t, 10, limit.Limit)
	assert.Equal(t, 10, limit.Remaining)
	assert.False(t, limit.Exceeded)
	assert.Equal(t, StatusSafe, limit.Status)
	assert.Equal(t, plans.TierFree, limit.PlanType)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), limit.CycleStart)
	assert.Equal(t, time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC), limit.ResetsAt)
}

func TestLedger_CheckLimit_DoesNotMutate(t *testing.T) {
	ledger, _ := newTestLedger("free")
	ctx := context.Background()

	for range 5 {
		_, err := ledger.CheckLimit(ctx, "user-1", plans.KindIdea)
		require.NoError(t, err)
	}

	limit, err := ledger.CheckLimit(ctx, "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.Equal(t, 0, limit.Used)
}

func TestLedger_CheckLimit_UnknownKind(t *testing.T) {
	ledger, _ := newTestLedger("free")

	_, err := ledger.CheckLimit(context.Background(), "user-1", plans.ResourceKind("video"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLedger_Consume_UntilExhausted(t *testing.T) {
	ledger, _ := newTestLedger("free")
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		result, err := ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
		require.NoError(t, err)
		assert.True(t, result.OK)
		assert.Equal(t, i, result.Used)
	}

	result, err := ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, 10, result.Used)
	assert.Equal(t, 10, result.Limit)

	limit, err := ledger.CheckLimit(ctx, "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.True(t, limit.Exceeded)
	assert.Equal(t, 0, limit.Remaining)
	assert.Equal(t, float64(100), limit.Percent)
	assert.Equal(t, StatusCritical, limit.Status)
}

func TestLedger_Consume_RemainingThenOneMore(t *testing.T) {
	ledger, store := newTestLedger("free")
	ctx := context.Background()
	store.Set("user-1", plans.KindIdea, CycleAt(october).Start, 4)

	check, err := ledger.CheckLimit(ctx, "user-1", plans.KindIdea)
	require.NoError(t, err)

	result, err := ledger.Consume(ctx, "user-1", plans.KindIdea, check.Remaining)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 10, result.Used)

	result, err = ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
	require.NoError(t, err)
	assert.False(t, result.OK)
}

func TestLedger_Consume_RefusalDoesNotMutate(t *testing.T) {
	ledger, store := newTestLedger("free")
	ctx := context.Background()
	store.Set("user-1", plans.KindIdea, CycleAt(october).Start, 8)

	result, err := ledger.Consume(ctx, "user-1", plans.KindIdea, 3)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, 8, result.Used)

	limit, err := ledger.CheckLimit(ctx, "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.Equal(t, 8, limit.Used)
}

func TestLedger_Consume_ZeroLimitKind(t *testing.T) {
	ledger, _ := newTestLedger("free")

	result, err := ledger.Consume(context.Background(), "user-1", plans.KindScriptPremium, 1)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, 0, result.Used)
}

func TestLedger_Consume_InvalidAmount(t *testing.T) {
	ledger, _ := newTestLedger("free")

	_, err := ledger.Consume(context.Background(), "user-1", plans.KindIdea, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedger_Consume_Unlimited(t *testing.T) {
	ledger, _ := newTestLedger("pro")
	ctx := context.Background()

	for range 500 {
		result, err := ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
		require.NoError(t, err)
		require.True(t, result.OK)
	}

	limit, err := ledger.CheckLimit(ctx, "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.True(t, limit.Unlimited)
	assert.Equal(t, plans.Unlimited, limit.Limit)
	assert.Equal(t, plans.Unlimited, limit.Remaining)
	assert.Equal(t, 500, limit.Used)
	assert.False(t, limit.Exceeded)
	assert.Equal(t, StatusUnlimited, limit.Status)
}

func TestLedger_Consume_ConcurrentLastUnit(t *testing.T) {
	ledger, store := newTestLedger("free")
	ctx := context.Background()
	store.Set("user-1", plans.KindIdea, CycleAt(october).Start, 9)

	var wg sync.WaitGroup
	var successes atomic.Int32

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
			if err == nil && result.OK {
				successes.Add(1)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())

	limit, err := ledger.CheckLimit(ctx, "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.Equal(t, 10, limit.Used)
}

func TestLedger_CycleReset(t *testing.T) {
	now := october
	store := NewMemoryStore()
	ledger := NewLedger(store, staticResolver{tier: "free"}, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	for range 10 {
		_, err := ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
		require.NoError(t, err)
	}

	now = time.Date(2026, time.November, 1, 0, 0, 1, 0, time.UTC)

	limit, err := ledger.CheckLimit(ctx, "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.Equal(t, 0, limit.Used)

	result, err := ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 1, result.Used)
}

func TestLedger_UsersAreIsolated(t *testing.T) {
	ledger, store := newTestLedger("free")
	ctx := context.Background()
	store.Set("user-1", plans.KindIdea, CycleAt(october).Start, 10)

	result, err := ledger.Consume(ctx, "user-2", plans.KindIdea, 1)
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestLedger_ResolverError(t *testing.T) {
	observer := &recordingObserver{}
	store := NewMemoryStore()
	ledger := NewLedger(store, staticResolver{err: errors.New("billing down")}, WithObserver(observer))

	_, err := ledger.Consume(context.Background(), "user-1", plans.KindIdea, 1)
	require.Error(t, err)
	assert.Equal(t, []string{OutcomeError}, observer.outcomes)
}

func TestLedger_ObserverOutcomes(t *testing.T) {
	observer := &recordingObserver{}
	ledger, store := newTestLedger("free", WithObserver(observer))
	ctx := context.Background()
	store.Set("user-1", plans.KindIdea, CycleAt(october).Start, 9)

	_, err := ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
	require.NoError(t, err)
	_, err = ledger.Consume(ctx, "user-1", plans.KindIdea, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{OutcomeConsumed, OutcomeRefused}, observer.outcomes)
}

func TestLedger_Summary(t *testing.T) {
	ledger, store := newTestLedger("starter")
	store.Set("user-1", plans.KindIdea, CycleAt(october).Start, 80)

	summary, err := ledger.Summary(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Len(t, summary, len(plans.Kinds))
	assert.Equal(t, 80, summary[plans.KindIdea].Used)
	assert.Equal(t, StatusWarning, summary[plans.KindIdea].Status)
	assert.Equal(t, 5, summary[plans.KindScriptPremium].Limit)
}

func TestUsagePercentAndStatus(t *testing.T) {
	tests := []struct {
		used, limit int
		percent     float64
		status      string
	}{
		{0, 10, 0, StatusSafe},
		{7, 10, 70, StatusSafe},
		{3, 4, 75, StatusWarning},
		{9, 10, 90, StatusCritical},
		{1, 3, 33.33, StatusSafe},
		{12, 10, 100, StatusCritical},
		{0, 0, 100, StatusCritical},
	}

	for _, tt := range tests {
		percent := usagePercent(tt.used, tt.limit)
		assert.Equal(t, tt.percent, percent, "used=%d limit=%d", tt.used, tt.limit)
		assert.Equal(t, tt.status, usageStatus(percent), "used=%d limit=%d", tt.used, tt.limit)
	}
}
