package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("RequiresBothCredentials", func(t *testing.T) {
		t.Setenv("TAVILY_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "")
		_, err := Load()
		require.Error(t, err)

		t.Setenv("TAVILY_API_KEY", "tv-key")
		_, err = Load()
		require.Error(t, err)
	})

	t.Run("AppliesDefaults", func(t *testing.T) {
		t.Setenv("TAVILY_API_KEY", "tv-key")
		t.Setenv("OPENAI_API_KEY", "oa-key")
		t.Setenv("OPENAI_MODEL", "")
		t.Setenv("LISTEN_ADDR", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "tv-key", cfg.TavilyAPIKey)
		require.Equal(t, "oa-key", cfg.OpenAIAPIKey)
		require.Equal(t, defaultModel, cfg.OpenAIModel)
		require.Equal(t, defaultListenAddr, cfg.ListenAddr)
	})

	t.Run("EnvironmentOverridesDefaults", func(t *testing.T) {
		t.Setenv("TAVILY_API_KEY", "tv-key")
		t.Setenv("OPENAI_API_KEY", "oa-key")
		t.Setenv("OPENAI_MODEL", "gpt-4o")
		t.Setenv("LISTEN_ADDR", ":9000")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "gpt-4o", cfg.OpenAIModel)
		require.Equal(t, ":9000", cfg.ListenAddr)
	})
}
