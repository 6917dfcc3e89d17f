package tools

import (
	"context"
	"fmt"

	"github.com/mkohler/changelogger/internal/git"
)

// CommitChangesParams represents the parameters for the get_commit_changes tool
type CommitChangesParams struct {
	// CommitID is the commit hash or ref to fetch changes for
	CommitID string `json:"commit_id"`
}

// CommitChangesTool returns the full diff of a commit
type CommitChangesTool struct {
	inspector git.Inspector
}

// NewCommitChangesTool creates a new CommitChangesTool
func NewCommitChangesTool(inspector git.Inspector) *CommitChangesTool {
	return &CommitChangesTool{inspector: inspector}
}

// Name returns the tool name
func (t *CommitChangesTool) Name() string {
	return "get_commit_changes"
}

// Description returns the tool description
func (t *CommitChangesTool) Description() string {
	return `Fetch the full changes of a git commit, including the diff, author, date, and message.
Use this tool when you need the complete line-level detail of what a commit changed.
Parameters:
- commit_id: The git commit hash or ref to fetch changes for (required)`
}

// Execute runs the tool and returns the commit diff
func (t *CommitChangesTool) Execute(ctx context.Context, params *CommitChangesParams) (string, error) {
	if params == nil || params.CommitID == "" {
		return "", fmt.Errorf("commit_id is required")
	}
	return t.inspector.CommitDiff(ctx, params.CommitID)
}
