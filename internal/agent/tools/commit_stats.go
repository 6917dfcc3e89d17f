package tools

import (
	"context"
	"fmt"

	"github.com/mkohler/changelogger/internal/git"
)

// CommitStatsParams represents the parameters for the get_commit_stats tool
type CommitStatsParams struct {
	// CommitID is the commit hash or ref to report statistics for
	CommitID string `json:"commit_id"`
}

// CommitStatsTool returns line statistics for a commit
type CommitStatsTool struct {
	inspector git.Inspector
}

// NewCommitStatsTool creates a new CommitStatsTool
func NewCommitStatsTool(inspector git.Inspector) *CommitStatsTool {
	return &CommitStatsTool{inspector: inspector}
}

// Name returns the tool name
func (t *CommitStatsTool) Name() string {
	return "get_commit_stats"
}

// Description returns the tool description
func (t *CommitStatsTool) Description() string {
	return `Get statistics about a commit: files changed, insertions, and deletions.
This is cheaper than fetching the full diff and is enough for the numbers section of a changelog.
Parameters:
- commit_id: The git commit hash or ref (required)`
}

// Execute runs the tool and returns the commit statistics
func (t *CommitStatsTool) Execute(ctx context.Context, params *CommitStatsParams) (string, error) {
	if params == nil || params.CommitID == "" {
		return "", fmt.Errorf("commit_id is required")
	}
	return t.inspector.CommitStats(ctx, params.CommitID)
}
