package subscriptions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	resolver := StaticResolver{
		Tier:      "starter",
		Overrides: map[string]string{"vip": "business"},
	}

	tier, err := resolver.PlanTier(context.Background(), "someone")
	require.NoError(t, err)
	assert.Equal(t, "starter", tier)

	tier, err = resolver.PlanTier(context.Background(), "vip")
	require.NoError(t, err)
	assert.Equal(t, "business", tier)
}

func TestStaticResolver_DefaultsToFree(t *testing.T) {
	tier, err := StaticResolver{}.PlanTier(context.Background(), "someone")
	require.NoError(t, err)
	assert.Equal(t, "free", tier)
}
