package redis

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmpref/internal/platform/config"
)

func TestNew(t *testing.T) {
	t.Run("disabled without URL", func(t *testing.T) {
		c, err := New(context.Background(), config.RedisConfig{}, nil)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		_, err := New(context.Background(), config.RedisConfig{URL: "://nope"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse redis URL")
	})
}

func TestAddDelta(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPoolMetrics(reg)

	addDelta(m.Hits, 5, 0)
	addDelta(m.Hits, 8, 5)
	addDelta(m.Hits, 3, 8)

	assert.Equal(t, float64(8), testutil.ToFloat64(m.Hits))
}

func TestRecordPoolStatsWithoutMetrics(t *testing.T) {
	c := &Client{}
	assert.NotPanics(t, c.RecordPoolStats)
}
