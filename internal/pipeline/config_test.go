package pipeline

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg := NewConfig("research-writer")
	require.Equal(t, "research-writer", cfg.PipelineID)
	require.NotEmpty(t, cfg.RunID)
	require.Equal(t, defaultStageTimeout, cfg.StageTimeout)
	require.Nil(t, cfg.Retry)
	require.False(t, cfg.Debug)
	require.NotNil(t, cfg.Logger)
}

func TestNewConfigRunIDsAreUnique(t *testing.T) {
	t.Parallel()
	a := NewConfig("p")
	b := NewConfig("p")
	require.NotEqual(t, a.RunID, b.RunID)
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()
	logger := slog.Default().With("test", true)
	cfg := NewConfig("p",
		WithStageTimeout(5*time.Second),
		WithRetryPolicy(RetryPolicy{MaxAttempts: 3, Delay: time.Second}),
		WithDebug(),
		WithLogger(logger),
		WithRunID("fixed-id"),
	)
	require.Equal(t, 5*time.Second, cfg.StageTimeout)
	require.NotNil(t, cfg.Retry)
	require.Equal(t, 3, cfg.Retry.MaxAttempts)
	require.True(t, cfg.Debug)
	require.Equal(t, logger, cfg.Logger)
	require.Equal(t, "fixed-id", cfg.RunID)
}
