package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/mkohler/changelogger/internal/config"
)

const (
	// DeepseekDefaultBaseURL is the default API base URL for Deepseek
	DeepseekDefaultBaseURL = "https://api.deepseek.com/v1"
	// OllamaDefaultBaseURL is the default API base URL for Ollama
	OllamaDefaultBaseURL = "http://localhost:11434/v1"
	// GrokDefaultBaseURL is the default API base URL for Grok
	GrokDefaultBaseURL = "https://api.x.ai/v1"
)

// openAICompatProvider implements Provider for any endpoint that speaks the
// OpenAI chat completion API. OpenAI itself, Deepseek, Ollama, and Grok all
// go through here and differ only in name and default base URL.
type openAICompatProvider struct {
	name string
	cfg  config.ModelConfig
}

// Name returns the provider name
func (p *openAICompatProvider) Name() string {
	return p.name
}

// GetConfig returns the model configuration
func (p *openAICompatProvider) GetConfig() config.ModelConfig {
	return p.cfg
}

// CreateChatModel creates an Eino ChatModel against the configured endpoint
func (p *openAICompatProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	cfg := &openai.ChatModelConfig{
		APIKey:  p.cfg.APIKey,
		Model:   p.cfg.Model,
		BaseURL: p.cfg.BaseURL,
	}

	return openai.NewChatModel(ctx, cfg)
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(cfg config.ModelConfig) Provider {
	return &openAICompatProvider{name: "openai", cfg: cfg}
}

// NewDeepseekProvider creates a new Deepseek provider
func NewDeepseekProvider(cfg config.ModelConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DeepseekDefaultBaseURL
	}
	return &openAICompatProvider{name: "deepseek", cfg: cfg}
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(cfg config.ModelConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = OllamaDefaultBaseURL
	}
	// Ollama doesn't require an API key, set a placeholder
	if cfg.APIKey == "" {
		cfg.APIKey = "ollama"
	}
	return &openAICompatProvider{name: "ollama", cfg: cfg}
}

// NewGrokProvider creates a new Grok provider
func NewGrokProvider(cfg config.ModelConfig) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = GrokDefaultBaseURL
	}
	return &openAICompatProvider{name: "grok", cfg: cfg}
}
