package tools

import (
	"context"

	"github.com/mkohler/changelogger/internal/git"
)

// StagedChangesTool returns the diff of staged changes
type StagedChangesTool struct {
	inspector git.Inspector
}

// NewStagedChangesTool creates a new StagedChangesTool
func NewStagedChangesTool(inspector git.Inspector) *StagedChangesTool {
	return &StagedChangesTool{inspector: inspector}
}

// Name returns the tool name
func (t *StagedChangesTool) Name() string {
	return "get_staged_changes"
}

// Description returns the tool description
func (t *StagedChangesTool) Description() string {
	return `Get the staged changes (changes added to the index but not yet committed).
This shows the full diff of everything that would be included in the next commit.`
}

// Execute runs the tool and returns the staged diff
func (t *StagedChangesTool) Execute(ctx context.Context, params interface{}) (string, error) {
	diff, err := t.inspector.StagedDiff(ctx)
	if err != nil {
		return "", err
	}

	if diff == "" {
		return "No staged changes found. Please stage your changes using 'git add' first.", nil
	}

	return "Staged Changes (Ready to Commit):\n\n" + diff, nil
}
