package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mkohler/changelogger/internal/agent"
	"github.com/mkohler/changelogger/internal/changelog"
	"github.com/mkohler/changelogger/internal/config"
	"github.com/mkohler/changelogger/internal/git"
	"github.com/mkohler/changelogger/internal/llm"
	"github.com/mkohler/changelogger/internal/log"
	"github.com/mkohler/changelogger/internal/ui"
)

// errQuit ends the whole session loop without reporting a failure
var errQuit = errors.New("session finished")

// Session drives the interactive changelog loop: pick a repository, pick a
// change set, generate, save, repeat until the user is done.
type Session struct {
	Config   *config.Config
	Provider llm.Provider
	Language string
	Input    io.Reader
	Output   io.Writer
	Debug    bool

	// NewInspector and Now are replaceable for tests
	NewInspector func(workDir string, timeout time.Duration) git.Inspector
	Now          func() time.Time
}

// Run executes the session until the user quits or input ends
func (s *Session) Run(ctx context.Context) error {
	newInspector := s.NewInspector
	if newInspector == nil {
		newInspector = func(workDir string, timeout time.Duration) git.Inspector {
			return git.NewInspector(workDir, timeout)
		}
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	clCfg := s.Config.GetChangelogConfig()
	timeout := time.Duration(clCfg.CommandTimeout) * time.Second
	writer := changelog.NewWriter(clCfg.OutputDir)
	printer := ui.NewStreamPrinter(s.Output, ui.WithVerbose(s.Debug))

	// One terminal for the whole session so piped input is not lost
	// between prompts
	term := ui.NewTerminal(s.Input, s.Output)

	for {
		inspector, err := s.promptRepository(ctx, newInspector, timeout, term, printer)
		if err != nil {
			return s.finish(err)
		}

		err = s.runRepository(ctx, inspector, term, writer, printer, clCfg, now)
		if errors.Is(err, errSwitchRepo) {
			continue
		}
		return s.finish(err)
	}
}

// finish maps end-of-input and quit signals to a clean exit
func (s *Session) finish(err error) error {
	if err == nil || errors.Is(err, errQuit) {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, ui.ErrInterrupted) {
		fmt.Fprintln(s.Output, "\nGoodbye!")
		return nil
	}
	return err
}

// promptRepository asks for a repository path until it names a git work tree
func (s *Session) promptRepository(ctx context.Context, newInspector func(string, time.Duration) git.Inspector, timeout time.Duration, term *ui.Terminal, printer *ui.StreamPrinter) (git.Inspector, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, err := (&ui.LinePrompt{Prompt: "Repository path", Default: cwd}).Show(term)
		if err != nil {
			return nil, err
		}

		inspector := newInspector(path, timeout)
		if err := inspector.Verify(ctx); err != nil {
			if errors.Is(err, git.ErrNotRepository) {
				_ = printer.PrintError(fmt.Sprintf("%s is not a git repository", path))
				continue
			}
			return nil, err
		}

		return inspector, nil
	}
}

// errSwitchRepo restarts the session with a new repository
var errSwitchRepo = errors.New("switch repository")

// runRepository generates changelogs for one repository until the user quits
// or asks for a different repository
func (s *Session) runRepository(ctx context.Context, inspector git.Inspector, term *ui.Terminal, writer *changelog.Writer, printer *ui.StreamPrinter, clCfg *config.ChangelogConfig, now func() time.Time) error {
	for {
		sel, err := s.promptSelector(ctx, inspector, term, printer)
		if err != nil {
			return err
		}

		if err := s.generateOne(ctx, inspector, sel, writer, printer, clCfg, now); err != nil {
			return err
		}

		again, err := ui.ConfirmWithDefault("Generate another changelog?", true, term)
		if err != nil {
			return err
		}
		if !again {
			return errQuit
		}

		switchRepo, err := ui.ConfirmWithDefault("Use a different repository?", false, term)
		if err != nil {
			return err
		}
		if switchRepo {
			return errSwitchRepo
		}
	}
}

// promptSelector asks what to analyze. Commit ids are resolved before the
// agent runs so an unknown revision fails here, not mid-generation.
func (s *Session) promptSelector(ctx context.Context, inspector git.Inspector, term *ui.Terminal, printer *ui.StreamPrinter) (changelog.Selector, error) {
	var zero changelog.Selector

	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		choice, err := (&ui.LinePrompt{
			Prompt:  "Analyze (1) staged changes or (2) a specific commit",
			Default: "1",
		}).Show(term)
		if err != nil {
			return zero, err
		}

		switch choice {
		case "1":
			return changelog.StagedSelector(), nil

		case "2":
			id, err := (&ui.LinePrompt{Prompt: "Commit id"}).Show(term)
			if err != nil {
				if errors.Is(err, ui.ErrEmptyInput) {
					_ = printer.PrintError("commit id must not be empty")
					continue
				}
				return zero, err
			}

			if _, err := inspector.ResolveCommit(ctx, id); err != nil {
				if errors.Is(err, git.ErrUnknownRevision) {
					_ = printer.PrintError(fmt.Sprintf("unknown revision: %s", id))
					continue
				}
				return zero, err
			}

			return changelog.CommitSelector(id), nil

		default:
			fmt.Fprintln(s.Output, "Please enter 1 or 2")
		}
	}
}

// generateOne runs the agent for the selected change set and persists the
// result. Generation failures are reported and the session continues.
func (s *Session) generateOne(ctx context.Context, inspector git.Inspector, sel changelog.Selector, writer *changelog.Writer, printer *ui.StreamPrinter, clCfg *config.ChangelogConfig, now func() time.Time) error {
	retryCfg := s.Config.GetRetryConfig()

	changelogAgent := agent.NewChangelogAgent(agent.ChangelogAgentOptions{
		Language:      s.Language,
		Inspector:     inspector,
		LLMProvider:   s.Provider,
		Printer:       printer,
		Output:        s.Output,
		Debug:         s.Debug,
		MaxIterations: clCfg.MaxIterations,
		Retry: llm.RetryConfig{
			Enabled:     retryCfg.Enabled,
			MaxAttempts: retryCfg.MaxAttempts,
			BackoffBase: retryCfg.BackoffBase,
			BackoffMax:  retryCfg.BackoffMax,
		},
	})

	started := now()
	resp, err := changelogAgent.Generate(ctx, agent.ChangelogRequest{
		Selector: sel,
		Language: s.Language,
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		_ = printer.PrintError(fmt.Sprintf("changelog generation failed: %v", err))
		return nil
	}

	if err := ui.ShowChangelog(resp.Changelog, s.Output); err != nil {
		return err
	}

	doc, err := changelog.NewDocument(sel, resp.Changelog, now())
	if err != nil {
		return err
	}

	path, err := writer.Write(doc)
	if err != nil {
		_ = printer.PrintError(err.Error())
		return nil
	}

	_ = printer.PrintSuccess(fmt.Sprintf("Changelog saved to %s", path))
	log.Debug("Changelog written to %s after %d iterations", path, resp.Iterations)

	_ = printer.PrintStats(&ui.ExecutionStats{
		StartTime:        started,
		EndTime:          now(),
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
		TotalTokens:      resp.TotalTokens,
	})

	return nil
}
