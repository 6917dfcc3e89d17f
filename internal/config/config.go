package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is the configuration file looked up in the current and home
// directories
const ConfigFileName = ".changelogger.yaml"

// Supported providers
var supportedProviders = map[string]bool{
	"openai":   true,
	"deepseek": true,
	"ollama":   true,
	"gemini":   true,
	"grok":     true,
}

// SupportedProviders returns a list of supported providers
func SupportedProviders() []string {
	providers := make([]string, 0, len(supportedProviders))
	for p := range supportedProviders {
		providers = append(providers, p)
	}
	return providers
}

// Error marks a failure as a configuration problem so the entrypoint can map
// it to a distinct exit status.
type Error struct {
	Err error
}

// Error returns the underlying error description
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Config represents the application configuration
type Config struct {
	DefaultModel string                 `yaml:"default_model" mapstructure:"default_model"`
	Models       map[string]ModelConfig `yaml:"models" mapstructure:"models"`
	Language     string                 `yaml:"language" mapstructure:"language"`
	Changelog    *ChangelogConfig       `yaml:"changelog" mapstructure:"changelog"`
	Retry        *RetryConfig           `yaml:"retry" mapstructure:"retry"`
}

// ChangelogConfig represents the changelog generation configuration
type ChangelogConfig struct {
	OutputDir      string `yaml:"output_dir" mapstructure:"output_dir"`
	MaxIterations  int    `yaml:"max_iterations" mapstructure:"max_iterations"`
	CommandTimeout int    `yaml:"command_timeout" mapstructure:"command_timeout"` // in seconds
}

// DefaultChangelogConfig returns the default changelog configuration
func DefaultChangelogConfig() *ChangelogConfig {
	return &ChangelogConfig{
		OutputDir:      "Changelogs",
		MaxIterations:  8,
		CommandTimeout: 30,
	}
}

// RetryConfig represents the retry configuration
type RetryConfig struct {
	Enabled     bool    `yaml:"enabled" mapstructure:"enabled"`
	MaxAttempts int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	BackoffBase float64 `yaml:"backoff_base" mapstructure:"backoff_base"` // in seconds
	BackoffMax  float64 `yaml:"backoff_max" mapstructure:"backoff_max"`   // in seconds
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		Enabled:     true,
		MaxAttempts: 3,
		BackoffBase: 1.0,
		BackoffMax:  8.0,
	}
}

// Validate validates the retry configuration
func (r *RetryConfig) Validate() error {
	if r.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts must be non-negative")
	}
	if r.BackoffBase < 0 {
		return fmt.Errorf("backoff_base must be non-negative")
	}
	if r.BackoffMax < r.BackoffBase {
		return fmt.Errorf("backoff_max must be greater than or equal to backoff_base")
	}
	return nil
}

// ModelConfig represents a single model configuration
type ModelConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	APIKey   string `yaml:"api_key" mapstructure:"api_key"`
	Model    string `yaml:"model" mapstructure:"model"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
}

// Validate validates the model configuration
func (m *ModelConfig) Validate() error {
	if m.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !supportedProviders[m.Provider] {
		return fmt.Errorf("unsupported provider: %s", m.Provider)
	}
	if m.Model == "" {
		return fmt.Errorf("model is required")
	}
	// API key is required for all providers except ollama
	if m.Provider != "ollama" && m.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", m.Provider)
	}
	return nil
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("no models configured")
	}

	if c.DefaultModel != "" {
		if _, ok := c.Models[c.DefaultModel]; !ok {
			return fmt.Errorf("default model '%s' not found in models configuration", c.DefaultModel)
		}
	}

	for name, model := range c.Models {
		if err := model.Validate(); err != nil {
			return fmt.Errorf("invalid model '%s': %w", name, err)
		}
	}

	if c.Retry != nil {
		if err := c.Retry.Validate(); err != nil {
			return fmt.Errorf("invalid retry configuration: %w", err)
		}
	}

	return nil
}

// GetModel returns the model configuration by name.
// Priority: parameter > env variable (CHANGELOGGER_MODEL) > default_model
func (c *Config) GetModel(modelName string) (*ModelConfig, error) {
	if modelName == "" {
		modelName = os.Getenv("CHANGELOGGER_MODEL")
	}
	if modelName == "" {
		modelName = c.DefaultModel
	}
	if modelName == "" {
		return nil, fmt.Errorf("no model specified and no default model configured")
	}

	model, ok := c.Models[modelName]
	if !ok {
		return nil, fmt.Errorf("model '%s' not found in configuration", modelName)
	}

	// Expand environment variables in API key. An expansion that produces
	// nothing means the credential is missing, which must fail up front
	// rather than at the first LLM call.
	expanded := expandEnv(model.APIKey)
	if model.APIKey != "" && expanded == "" {
		return nil, fmt.Errorf("api_key for model '%s' references an unset environment variable (%s)", modelName, model.APIKey)
	}
	model.APIKey = expanded

	return &model, nil
}

// GetLanguage returns the language to use.
// Priority: parameter > env variable (CHANGELOGGER_LANG) > config file > default (en)
func (c *Config) GetLanguage(langParam string) string {
	if langParam != "" {
		return langParam
	}
	if envLang := os.Getenv("CHANGELOGGER_LANG"); envLang != "" {
		return envLang
	}
	if c.Language != "" {
		return c.Language
	}
	return "en"
}

// GetChangelogConfig returns the changelog configuration with defaults applied
func (c *Config) GetChangelogConfig() *ChangelogConfig {
	if c.Changelog == nil {
		return DefaultChangelogConfig()
	}
	defaults := DefaultChangelogConfig()
	if c.Changelog.OutputDir == "" {
		c.Changelog.OutputDir = defaults.OutputDir
	}
	if c.Changelog.MaxIterations <= 0 {
		c.Changelog.MaxIterations = defaults.MaxIterations
	}
	if c.Changelog.CommandTimeout <= 0 {
		c.Changelog.CommandTimeout = defaults.CommandTimeout
	}
	return c.Changelog
}

// GetRetryConfig returns the retry configuration with defaults applied
func (c *Config) GetRetryConfig() *RetryConfig {
	if c.Retry == nil {
		return DefaultRetryConfig()
	}
	defaults := DefaultRetryConfig()
	if c.Retry.MaxAttempts < 0 {
		c.Retry.MaxAttempts = defaults.MaxAttempts
	}
	if c.Retry.BackoffBase < 0 {
		c.Retry.BackoffBase = defaults.BackoffBase
	}
	if c.Retry.BackoffMax < 0 {
		c.Retry.BackoffMax = defaults.BackoffMax
	}
	return c.Retry
}

// expandEnv expands environment variables in the format ${VAR} or $VAR
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envName := s[2 : len(s)-1]
		return os.Getenv(envName)
	}
	if strings.HasPrefix(s, "$") {
		envName := s[1:]
		return os.Getenv(envName)
	}
	return s
}

// LoadFromFile loads configuration from a file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Load loads configuration with the following priority:
// 1. Custom path if provided
// 2. Current directory .changelogger.yaml
// 3. Home directory ~/.changelogger.yaml
func Load(customPath string) (*Config, error) {
	if customPath != "" {
		return LoadFromFile(customPath)
	}

	if cfg, err := LoadFromFile(ConfigFileName); err == nil {
		return cfg, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	if cfg, err := LoadFromFile(filepath.Join(homeDir, ConfigFileName)); err == nil {
		return cfg, nil
	}

	return nil, fmt.Errorf("no configuration file found. Run 'changelogger init' to create one")
}
