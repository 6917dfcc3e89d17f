package tools

import (
	"context"

	"github.com/mkohler/changelogger/internal/git"
)

// StagedStatsTool returns line statistics for staged changes
type StagedStatsTool struct {
	inspector git.Inspector
}

// NewStagedStatsTool creates a new StagedStatsTool
func NewStagedStatsTool(inspector git.Inspector) *StagedStatsTool {
	return &StagedStatsTool{inspector: inspector}
}

// Name returns the tool name
func (t *StagedStatsTool) Name() string {
	return "get_staged_changes_stats"
}

// Description returns the tool description
func (t *StagedStatsTool) Description() string {
	return `Get detailed statistics about staged changes: per-file insertions and deletions
plus an overall summary. Cheaper than fetching the full staged diff.`
}

// Execute runs the tool and returns the staged statistics
func (t *StagedStatsTool) Execute(ctx context.Context, params interface{}) (string, error) {
	stats, err := t.inspector.StagedStats(ctx)
	if err != nil {
		return "", err
	}

	if stats == "" {
		return "No staged changes found.", nil
	}

	return "Staged Changes Statistics:\n\n" + stats, nil
}
