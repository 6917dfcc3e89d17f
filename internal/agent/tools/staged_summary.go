package tools

import (
	"context"

	"github.com/mkohler/changelogger/internal/git"
)

// StagedSummaryTool returns a summary of staged changes
type StagedSummaryTool struct {
	inspector git.Inspector
}

// NewStagedSummaryTool creates a new StagedSummaryTool
func NewStagedSummaryTool(inspector git.Inspector) *StagedSummaryTool {
	return &StagedSummaryTool{inspector: inspector}
}

// Name returns the tool name
func (t *StagedSummaryTool) Name() string {
	return "get_staged_changes_summary"
}

// Description returns the tool description
func (t *StagedSummaryTool) Description() string {
	return `Get a summary of staged changes: the current branch, the list of staged files with
their status (added, modified, deleted), and overall statistics.`
}

// Execute runs the tool and returns the staged summary
func (t *StagedSummaryTool) Execute(ctx context.Context, params interface{}) (string, error) {
	summary, err := t.inspector.StagedSummary(ctx)
	if err != nil {
		return "", err
	}

	if summary == "" {
		return "No staged changes found.", nil
	}

	return "Staged Changes Summary:\n" + summary, nil
}
