package trippricer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPriceReturnsFiveDeals(t *testing.T) {
	p := New(zap.NewNop())

	deals, err := p.Price(context.Background(), "key", uuid.New(), 2, 1, 7, 100)
	require.NoError(t, err)
	require.Len(t, deals, 5)

	for _, d := range deals {
		assert.NotEmpty(t, d.Name)
		assert.NotEqual(t, uuid.Nil, d.TripID)
		assert.GreaterOrEqual(t, d.Price, 0.0)
	}
}

func TestPriceRewardPointsNeverGoNegative(t *testing.T) {
	p := New(zap.NewNop())

	deals, err := p.Price(context.Background(), "key", uuid.New(), 0, 0, 0, 1_000_000)
	require.NoError(t, err)
	for _, d := range deals {
		assert.Equal(t, 0.0, d.Price)
	}
}
