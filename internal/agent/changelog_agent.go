package agent

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/cloudwego/eino/schema"

	"github.com/mkohler/changelogger/internal/agent/tools"
	"github.com/mkohler/changelogger/internal/changelog"
	"github.com/mkohler/changelogger/internal/git"
	"github.com/mkohler/changelogger/internal/llm"
	"github.com/mkohler/changelogger/internal/log"
	"github.com/mkohler/changelogger/internal/ui"
)

// DefaultMaxIterations bounds the tool-calling loop. Three tools per run is
// the expected ceiling, so eight leaves room for retries after tool errors.
const DefaultMaxIterations = 8

// ChangelogRequest describes one changelog generation run
type ChangelogRequest struct {
	Selector      changelog.Selector // What to analyze: a commit or the staging area
	Language      string             // Output language
	MaxIterations int                // Maximum agent iterations (0 uses the default)
}

// ChangelogResponse contains the generated changelog and usage accounting
type ChangelogResponse struct {
	Changelog        string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Iterations       int
}

// ChangelogAgentOptions contains configuration for ChangelogAgent
type ChangelogAgentOptions struct {
	Language      string            // Output language (default: "en")
	Inspector     git.Inspector     // Git inspector for the target repository
	LLMProvider   llm.Provider      // LLM provider for generating changelogs
	Printer       *ui.StreamPrinter // Stream printer for output (optional)
	Output        io.Writer         // Output writer (used if Printer is nil)
	Debug         bool              // Enable debug mode
	MaxIterations int               // Maximum agent iterations (0 uses the default)
	Retry         llm.RetryConfig   // Retry behavior for LLM calls
}

// ChangelogAgent generates changelog documents using an LLM over git
// inspection tools
type ChangelogAgent struct {
	opts ChangelogAgentOptions
}

// NewChangelogAgent creates a new ChangelogAgent
func NewChangelogAgent(opts ChangelogAgentOptions) *ChangelogAgent {
	if opts.Language == "" {
		opts.Language = "en"
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &ChangelogAgent{opts: opts}
}

// BuildCommitChangelogPrompt builds the system prompt for commit analysis
func BuildCommitChangelogPrompt(language string) string {
	return renderPrompt("commit_changelog", CommitChangelogPrompt, language)
}

// BuildStagedChangelogPrompt builds the system prompt for staged analysis
func BuildStagedChangelogPrompt(language string) string {
	return renderPrompt("staged_changelog", StagedChangelogPrompt, language)
}

func renderPrompt(name, text, language string) string {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return text
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string{"Language": language}); err != nil {
		return text
	}
	return buf.String()
}

// Generate runs the tool-calling loop until the model replies with a final
// changelog or the iteration ceiling is hit
func (a *ChangelogAgent) Generate(ctx context.Context, req ChangelogRequest) (*ChangelogResponse, error) {
	printer := a.opts.Printer

	printProgress := func(msg string) {
		if printer != nil {
			_ = printer.PrintProgress(msg)
		}
		log.Debug(msg)
	}

	printToolCall := func(name string) {
		if printer != nil {
			_ = printer.PrintToolCall(name, nil)
		}
	}

	printToolResult := func(name, result string) {
		if printer != nil {
			_ = printer.PrintSuccess(fmt.Sprintf("%s returned %d bytes", name, len(result)))
		}
	}

	printInfo := func(msg string) {
		if printer != nil {
			_ = printer.PrintInfo(msg)
		}
	}

	if err := req.Selector.Validate(); err != nil {
		return nil, err
	}

	if a.opts.LLMProvider == nil {
		return nil, fmt.Errorf("LLM provider is not configured")
	}
	if a.opts.Inspector == nil {
		return nil, fmt.Errorf("git inspector is not configured")
	}

	language := req.Language
	if language == "" {
		language = a.opts.Language
	}

	maxIterations := req.MaxIterations
	if maxIterations <= 0 {
		maxIterations = a.opts.MaxIterations
	}

	providerName := a.opts.LLMProvider.Name()
	modelName := a.opts.LLMProvider.GetConfig().Model
	printProgress(fmt.Sprintf("Initializing LLM provider (%s/%s)...", providerName, modelName))

	chatModel, err := a.opts.LLMProvider.CreateChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is nil (provider: %s)", providerName)
	}

	registry := tools.NewRegistry(a.opts.Inspector)

	// Commit runs and staged runs see disjoint tool sets
	var toolInfos []*schema.ToolInfo
	var systemPrompt, userMessage string

	switch req.Selector.Kind {
	case changelog.KindCommit:
		toolInfos = registry.CommitToolInfos()
		systemPrompt = BuildCommitChangelogPrompt(language)
		userMessage = fmt.Sprintf("Please generate a changelog for commit %s.", req.Selector.CommitID)
	case changelog.KindStaged:
		toolInfos = registry.StagedToolInfos()
		systemPrompt = BuildStagedChangelogPrompt(language)
		userMessage = "Please generate a changelog for the currently staged changes."
	default:
		return nil, fmt.Errorf("unknown selector kind: %d", req.Selector.Kind)
	}

	if err := chatModel.BindTools(toolInfos); err != nil {
		return nil, fmt.Errorf("failed to bind tools: %w", err)
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: userMessage},
	}

	printInfo("Starting changelog generation...")

	var promptTokens, completionTokens, totalTokens int

	for iteration := 1; ; iteration++ {
		if iteration > maxIterations {
			return nil, fmt.Errorf("changelog generation exceeded maximum iterations (%d)", maxIterations)
		}

		printProgress(fmt.Sprintf("Agent iteration %d...", iteration))

		streamReader, err := llm.WithRetryResult(ctx, a.opts.Retry, func() (*schema.StreamReader[*schema.Message], error) {
			return chatModel.Stream(ctx, messages)
		})
		if err != nil {
			return nil, fmt.Errorf("LLM stream failed: %w", err)
		}

		var fullContent strings.Builder
		var toolCalls []*schema.ToolCall

		for {
			chunk, err := streamReader.Recv()
			if err != nil {
				if err == io.EOF {
					break
				}
				streamReader.Close()
				return nil, fmt.Errorf("stream read error: %w", err)
			}

			if chunk.Content != "" {
				fullContent.WriteString(chunk.Content)
				if printer != nil {
					_ = printer.PrintLLMContent(chunk.Content)
				}
			}

			// Accumulate tool call fragments by index
			for _, tc := range chunk.ToolCalls {
				idx := 0
				if tc.Index != nil {
					idx = *tc.Index
				}

				for len(toolCalls) <= idx {
					toolCalls = append(toolCalls, &schema.ToolCall{Function: schema.FunctionCall{}})
				}

				if tc.ID != "" {
					toolCalls[idx].ID = tc.ID
				}
				if tc.Function.Name != "" {
					if toolCalls[idx].Function.Name == "" {
						printToolCall(tc.Function.Name)
					}
					toolCalls[idx].Function.Name = tc.Function.Name
				}
				if tc.Function.Arguments != "" {
					toolCalls[idx].Function.Arguments += tc.Function.Arguments
				}
			}

			if chunk.ResponseMeta != nil && chunk.ResponseMeta.Usage != nil {
				usage := chunk.ResponseMeta.Usage
				promptTokens += usage.PromptTokens
				completionTokens += usage.CompletionTokens
				totalTokens += usage.TotalTokens
			}
		}
		streamReader.Close()

		if printer != nil {
			_ = printer.Newline()
		}

		var toolCallsValue []schema.ToolCall
		for _, tc := range toolCalls {
			if tc != nil {
				toolCallsValue = append(toolCallsValue, *tc)
			}
		}
		messages = append(messages, &schema.Message{
			Role:      schema.Assistant,
			Content:   fullContent.String(),
			ToolCalls: toolCallsValue,
		})

		// No tool calls means the model has produced its final answer
		if len(toolCalls) == 0 {
			content := strings.TrimSpace(fullContent.String())
			if content == "" {
				return nil, fmt.Errorf("LLM returned an empty changelog")
			}

			log.DebugTokenUsage(promptTokens, completionTokens, totalTokens)

			return &ChangelogResponse{
				Changelog:        content,
				PromptTokens:     promptTokens,
				CompletionTokens: completionTokens,
				TotalTokens:      totalTokens,
				Iterations:       iteration,
			}, nil
		}

		for _, tc := range toolCalls {
			if tc.Function.Name == "" {
				continue
			}

			log.DebugToolCall(tc.Function.Name, tc.Function.Arguments)
			result, toolErr := registry.Dispatch(ctx, tc.Function.Name, tc.Function.Arguments)
			log.DebugToolResult(tc.Function.Name, result, toolErr)

			// Tool failures go back to the model so it can adjust,
			// rather than aborting the whole run
			var toolResult string
			if toolErr != nil {
				toolResult = fmt.Sprintf("Error: %v", toolErr)
			} else {
				toolResult = result
				printToolResult(tc.Function.Name, result)
			}

			messages = append(messages, &schema.Message{
				Role:       schema.Tool,
				Content:    toolResult,
				ToolCallID: tc.ID,
			})
		}
	}
}
