package generation

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/tubespark/server/internal/plans"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/tubespark/ideas"
	"codeberg.org/tubespark/server/tubespark/subscriptions"
)

// implements Capability for testing
type mockCapability struct {
	generateFunc func(ctx context.Context, req Request) ([]map[string]any, error)
	calls        atomic.Int32
}

func (m *mockCapability) Generate(ctx context.Context, req Request) ([]map[string]any, error) {
	m.calls.Add(1)

	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}

	out := make([]map[string]any, 0, 5)
	for i := range 5 {
		out = append(out, map[string]any{
			"title":          fmt.Sprintf("Idea %d", i+1),
			"trendScore":     80,
			"estimatedViews": "50K-100K",
			"difficulty":     "Médio",
		})
	}

	return out, nil
}

var now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		Niche:        "cooking",
		ChannelType:  "lifestyle",
		AudienceAge:  "25-34",
		ContentStyle: "tutorial",
	}
}

func newTestOrchestrator(t *testing.T, used int, capability Capability, opts ...Option) (*Orchestrator, *quota.Ledger) {
	t.Helper()

	store := quota.NewMemoryStore()
	store.Set("user-1", plans.KindIdea, quota.CycleAt(now).Start, used)

	ledger := quota.NewLedger(store, subscriptions.StaticResolver{Tier: "free"}, quota.WithClock(func() time.Time { return now }))

	return NewOrchestrator(ledger, capability, opts...), ledger
}

func TestGenerate_FreePlanConsumesOneUnitPerBatch(t *testing.T) {
	capability := &mockCapability{}
	orchestrator, ledger := newTestOrchestrator(t, 7, capability)

	result, consumption, err := orchestrator.Generate(context.Background(), "user-1", validRequest())
	require.NoError(t, err)

	require.Len(t, result, 5)
	assert.Equal(t, 8, consumption.Used)
	assert.Equal(t, 10, consumption.Limit)

	for _, idea := range result {
		assert.Equal(t, "cooking", idea.Niche)
		assert.Equal(t, "lifestyle", idea.ChannelType)
		assert.Equal(t, ideas.DifficultyMedium, idea.Difficulty)
		assert.Equal(t, ideas.Views(50000), idea.EstimatedViews)
		assert.Equal(t, ideas.StatusSaved, idea.Status)
		assert.Empty(t, idea.ID)
	}

	limit, err := ledger.CheckLimit(context.Background(), "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.Equal(t, 8, limit.Used)
}

func TestGenerate_CandidatesKeepRequestContextAndHaveNoIdentity(t *testing.T) {
	capability := &mockCapability{
		generateFunc: func(ctx context.Context, req Request) ([]map[string]any, error) {
			return []map[string]any{{
				"id":          "gen-42",
				"userId":      "someone-else",
				"title":       "Knife skills",
				"niche":       "woodworking",
				"channelType": "gaming",
			}}, nil
		},
	}
	orchestrator, _ := newTestOrchestrator(t, 0, capability)

	result, _, err := orchestrator.Generate(context.Background(), "user-1", validRequest())
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Empty(t, result[0].ID)
	assert.Empty(t, result[0].UserID)
	assert.Equal(t, "cooking", result[0].Niche)
	assert.Equal(t, "lifestyle", result[0].ChannelType)
	assert.Equal(t, "Knife skills", result[0].Title)
}

func TestGenerate_ExhaustedQuotaSkipsCapability(t *testing.T) {
	capability := &mockCapability{}
	orchestrator, _ := newTestOrchestrator(t, 10, capability)

	result, _, err := orchestrator.Generate(context.Background(), "user-1", validRequest())
	require.Error(t, err)
	assert.Nil(t, result)

	var exceeded *quota.ExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, 10, exceeded.Used)
	assert.Equal(t, 10, exceeded.Limit)
	assert.Equal(t, plans.KindIdea, exceeded.Kind)

	assert.Equal(t, int32(0), capability.calls.Load())
}

func TestGenerate_InvalidRequestSpendsNothing(t *testing.T) {
	capability := &mockCapability{}
	orchestrator, ledger := newTestOrchestrator(t, 0, capability)

	req := validRequest()
	req.Niche = "   "
	req.ChannelType = "podcast"
	req.AudienceAge = ""

	_, _, err := orchestrator.Generate(context.Background(), "user-1", req)

	var invalid *InvalidRequestError
	require.True(t, errors.As(err, &invalid))
	assert.ElementsMatch(t, []string{"niche", "audienceAge"}, invalid.Missing)
	assert.Equal(t, []string{"channelType"}, invalid.Invalid)

	assert.Equal(t, int32(0), capability.calls.Load())

	limit, err := ledger.CheckLimit(context.Background(), "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.Equal(t, 0, limit.Used)
}

func TestValidate_OptionalFields(t *testing.T) {
	orchestrator, _ := newTestOrchestrator(t, 0, &mockCapability{})

	req := validRequest()
	req.Language = "de"
	req.Count = 50

	var invalid *InvalidRequestError
	require.True(t, errors.As(orchestrator.Validate(req), &invalid))
	assert.ElementsMatch(t, []string{"language", "count"}, invalid.Invalid)

	req.Language = "en"
	req.Count = 5
	assert.NoError(t, orchestrator.Validate(req))
}

func TestGenerate_TimeoutKeepsUnitSpent(t *testing.T) {
	capability := &mockCapability{
		generateFunc: func(ctx context.Context, _ Request) ([]map[string]any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	orchestrator, ledger := newTestOrchestrator(t, 3, capability, WithTimeout(20*time.Millisecond))

	_, consumption, err := orchestrator.Generate(context.Background(), "user-1", validRequest())

	var failed *FailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, ReasonTimeout, failed.Reason)
	assert.Equal(t, 4, consumption.Used)

	limit, err := ledger.CheckLimit(context.Background(), "user-1", plans.KindIdea)
	require.NoError(t, err)
	assert.Equal(t, 4, limit.Used)
}

func TestGenerate_FailureReasons(t *testing.T) {
	tests := []struct {
		name   string
		result []map[string]any
		err    error
		want   string
	}{
		{"provider error", nil, errors.New("502 bad gateway"), ReasonProvider},
		{"malformed", nil, fmt.Errorf("%w: junk", ErrMalformedResponse), ReasonMalformed},
		{"empty list", []map[string]any{}, nil, ReasonMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capability := &mockCapability{
				generateFunc: func(context.Context, Request) ([]map[string]any, error) {
					return tt.result, tt.err
				},
			}
			orchestrator, _ := newTestOrchestrator(t, 0, capability)

			_, _, err := orchestrator.Generate(context.Background(), "user-1", validRequest())

			var failed *FailedError
			require.True(t, errors.As(err, &failed))
			assert.Equal(t, tt.want, failed.Reason)
		})
	}
}

type recordingObserver struct {
	outcomes []string
}

func (r *recordingObserver) ObserveGeneration(outcome string, _ time.Duration) {
	r.outcomes = append(r.outcomes, outcome)
}

func TestGenerate_ObserverOutcomes(t *testing.T) {
	observer := &recordingObserver{}
	orchestrator, _ := newTestOrchestrator(t, 9, &mockCapability{}, WithObserver(observer))

	_, _, err := orchestrator.Generate(context.Background(), "user-1", validRequest())
	require.NoError(t, err)

	_, _, err = orchestrator.Generate(context.Background(), "user-1", validRequest())
	require.Error(t, err)

	_, _, err = orchestrator.Generate(context.Background(), "user-1", Request{})
	require.Error(t, err)

	assert.Equal(t, []string{OutcomeSuccess, OutcomeRefused, OutcomeInvalid}, observer.outcomes)
}
