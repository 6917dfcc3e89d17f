package tools

import (
	"context"
	"fmt"

	"github.com/mkohler/changelogger/internal/git"
)

// CommitSummaryParams represents the parameters for the get_commit_summary tool
type CommitSummaryParams struct {
	// CommitID is the commit hash or ref to summarize
	CommitID string `json:"commit_id"`
}

// CommitSummaryTool returns commit metadata and the list of changed files
type CommitSummaryTool struct {
	inspector git.Inspector
}

// NewCommitSummaryTool creates a new CommitSummaryTool
func NewCommitSummaryTool(inspector git.Inspector) *CommitSummaryTool {
	return &CommitSummaryTool{inspector: inspector}
}

// Name returns the tool name
func (t *CommitSummaryTool) Name() string {
	return "get_commit_summary"
}

// Description returns the tool description
func (t *CommitSummaryTool) Description() string {
	return `Get a brief summary of a commit: message, author, date, and the list of files changed.
Use this tool first to understand the shape of a commit before fetching the full diff.
Parameters:
- commit_id: The git commit hash or ref to summarize (required)`
}

// Execute runs the tool and returns the commit summary
func (t *CommitSummaryTool) Execute(ctx context.Context, params *CommitSummaryParams) (string, error) {
	if params == nil || params.CommitID == "" {
		return "", fmt.Errorf("commit_id is required")
	}
	return t.inspector.CommitSummary(ctx, params.CommitID)
}
