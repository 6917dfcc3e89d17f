package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkohler/changelogger/internal/config"
)

const defaultConfigTemplate = `# Changelogger Configuration File

# Default language for generated changelogs (en, zh, zh-tw, ja, ko)
language: en

# Default model to use (must match a key in the models section)
default_model: gemini

# LLM Model configurations
models:
  # Google Gemini
  gemini:
    provider: gemini
    api_key: ${GOOGLE_API_KEY}
    model: gemini-2.0-flash

  # OpenAI
  # openai:
  #   provider: openai
  #   api_key: ${OPENAI_API_KEY}
  #   model: gpt-4o
  #   base_url: https://api.openai.com/v1

  # Deepseek
  # deepseek:
  #   provider: deepseek
  #   api_key: ${DEEPSEEK_API_KEY}
  #   model: deepseek-chat

  # Ollama (local)
  # ollama:
  #   provider: ollama
  #   model: llama3.2
  #   base_url: http://localhost:11434/v1

  # xAI Grok
  # grok:
  #   provider: grok
  #   api_key: ${XAI_API_KEY}
  #   model: grok-beta

# Changelog generation settings
# changelog:
#   output_dir: Changelogs
#   max_iterations: 8
#   command_timeout: 30  # seconds per git command

# Retry behavior for LLM calls
# retry:
#   enabled: true
#   max_attempts: 3
#   backoff_base: 1.0
#   backoff_max: 8.0
`

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize changelogger configuration",
	Long: `Create a default configuration file (~/.changelogger.yaml).

This command creates a template configuration file with example settings
for various LLM providers. Edit the file to add your API keys and customize settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		configPath := filepath.Join(homeDir, config.ConfigFileName)

		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", configPath)
		}

		err = os.WriteFile(configPath, []byte(defaultConfigTemplate), 0600)
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Printf("✅ Configuration file created: %s\n", configPath)
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Edit the config file and add your API keys")
		fmt.Println("  2. Set environment variables for sensitive keys (recommended)")
		fmt.Println("  3. Run 'changelogger' to generate your first changelog")

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
