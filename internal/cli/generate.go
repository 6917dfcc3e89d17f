package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mkohler/changelogger/internal/config"
	"github.com/mkohler/changelogger/internal/llm"
	"github.com/mkohler/changelogger/internal/log"
	"github.com/mkohler/changelogger/pkg/lang"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Start an interactive changelog session",
	Long: `Analyze staged changes or a specific commit with an LLM and save the
resulting changelog as a markdown file.

This is the same session that starts when changelogger is run without a
subcommand.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// runGenerate wires configuration into an interactive session. Configuration
// failures are wrapped in config.Error so the entrypoint can map them to a
// distinct exit status.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return &config.Error{Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &config.Error{Err: err}
	}

	modelCfg, err := cfg.GetModel(modelName)
	if err != nil {
		return &config.Error{Err: err}
	}

	provider, err := llm.NewProviderFactory().Create(*modelCfg)
	if err != nil {
		return &config.Error{Err: err}
	}

	outLang := lang.ParseLanguage(cfg.GetLanguage(language))

	log.Debug("Using LLM: provider=%s, model=%s", provider.Name(), modelCfg.Model)
	log.Debug("Output language: %s (%s)", outLang, outLang.DisplayName())
	log.DebugConfig("Changelog settings", cfg.GetChangelogConfig())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := &Session{
		Config:   cfg,
		Provider: provider,
		Language: outLang.String(),
		Input:    os.Stdin,
		Output:   os.Stdout,
		Debug:    debugMode,
	}

	return session.Run(ctx)
}
