package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkohler/changelogger/internal/config"
)

func TestProviderFactory_Create(t *testing.T) {
	factory := NewProviderFactory()

	t.Run("known providers", func(t *testing.T) {
		cases := []string{"openai", "deepseek", "ollama", "gemini", "grok"}
		for _, name := range cases {
			provider, err := factory.Create(config.ModelConfig{
				Provider: name,
				Model:    "test-model",
				APIKey:   "test-key",
			})
			require.NoError(t, err, name)
			assert.Equal(t, name, provider.Name())
			assert.Equal(t, "test-model", provider.GetConfig().Model)
		}
	})

	t.Run("unsupported provider", func(t *testing.T) {
		_, err := factory.Create(config.ModelConfig{Provider: "anthropic"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported provider")
	})

	t.Run("deepseek gets a default base URL", func(t *testing.T) {
		provider, err := factory.Create(config.ModelConfig{
			Provider: "deepseek",
			Model:    "deepseek-chat",
			APIKey:   "test-key",
		})
		require.NoError(t, err)
		assert.Equal(t, DeepseekDefaultBaseURL, provider.GetConfig().BaseURL)
	})

	t.Run("ollama gets a placeholder api key", func(t *testing.T) {
		provider, err := factory.Create(config.ModelConfig{
			Provider: "ollama",
			Model:    "llama3",
		})
		require.NoError(t, err)
		assert.Equal(t, "ollama", provider.GetConfig().APIKey)
		assert.Equal(t, OllamaDefaultBaseURL, provider.GetConfig().BaseURL)
	})

	t.Run("explicit base URL is preserved", func(t *testing.T) {
		provider, err := factory.Create(config.ModelConfig{
			Provider: "grok",
			Model:    "grok-2",
			APIKey:   "test-key",
			BaseURL:  "https://proxy.example.com/v1",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://proxy.example.com/v1", provider.GetConfig().BaseURL)
	})
}

func TestProviderFactory_CreateFromConfig(t *testing.T) {
	factory := NewProviderFactory()

	appCfg := &config.Config{
		DefaultModel: "main",
		Models: map[string]config.ModelConfig{
			"main": {Provider: "openai", Model: "gpt-4o", APIKey: "test-key"},
		},
	}

	t.Run("default model", func(t *testing.T) {
		provider, err := factory.CreateFromConfig(appCfg, "")
		require.NoError(t, err)
		assert.Equal(t, "openai", provider.Name())
		assert.Equal(t, "gpt-4o", provider.GetConfig().Model)
	})

	t.Run("unknown model name", func(t *testing.T) {
		_, err := factory.CreateFromConfig(appCfg, "missing")
		assert.Error(t, err)
	})
}
