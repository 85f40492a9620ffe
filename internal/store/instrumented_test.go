package store

import (
	"context"
	"testing"

	"github.com/gogotex/qa-service/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedCountsOutcomes(t *testing.T) {
	s := NewInstrumented(NewMemoryStore(), "memtest")
	ctx := context.Background()

	id := s.NewID("questions")
	require.NoError(t, s.Set(ctx, "questions", id, Document{"id": id}))
	_, err := s.Get(ctx, "questions", id)
	require.NoError(t, err)
	_, err = s.Get(ctx, "questions", "missing")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.All(ctx, "questions")
	require.NoError(t, err)
	_, err = s.Where(ctx, "questions", "id", id)
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("memtest", "set", metrics.OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("memtest", "get", metrics.OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("memtest", "get", metrics.OutcomeNotFound)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("memtest", "all", metrics.OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreOperations.WithLabelValues("memtest", "where", metrics.OutcomeOK)))
	require.NoError(t, s.Ping(ctx))
}
