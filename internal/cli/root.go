package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkohler/changelogger/internal/log"
)

var (
	// Global flags
	debugMode  bool
	configFile string
	modelName  string
	language   string

	// Version info
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// rootCmd represents the base command. Running it without a subcommand starts
// an interactive changelog session.
var rootCmd = &cobra.Command{
	Use:   "changelogger",
	Short: "AI-powered changelog generator for git repositories",
	Long: `Changelogger analyzes git commits or staged changes with an LLM and
writes user-facing changelog documents in markdown.

Run without arguments to start an interactive session, or use
"changelogger [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env in the working directory supplies API keys, same as
		// exporting them in the shell
		_ = godotenv.Load()

		if debugMode {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	RunE: runGenerate,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	version = v
	gitCommit = commit
	buildTime = time
}

// GetVersionInfo returns version information
func GetVersionInfo() (string, string, string) {
	return version, gitCommit, buildTime
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default: ~/.changelogger.yaml)")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "LLM model to use (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&language, "lang", "l", "", "Output language (overrides config)")
}
