package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/mkohler/changelogger/internal/git"
)

// Registry holds the fixed set of git inspection tools and dispatches model
// tool calls to them by name. The set is closed: the model can only reach
// the six operations below, and dispatch is a plain switch rather than
// reflection so the callable surface stays statically checkable.
type Registry struct {
	commitChanges *CommitChangesTool
	commitSummary *CommitSummaryTool
	commitStats   *CommitStatsTool
	stagedChanges *StagedChangesTool
	stagedSummary *StagedSummaryTool
	stagedStats   *StagedStatsTool
}

// NewRegistry creates a Registry backed by the given inspector
func NewRegistry(inspector git.Inspector) *Registry {
	return &Registry{
		commitChanges: NewCommitChangesTool(inspector),
		commitSummary: NewCommitSummaryTool(inspector),
		commitStats:   NewCommitStatsTool(inspector),
		stagedChanges: NewStagedChangesTool(inspector),
		stagedSummary: NewStagedSummaryTool(inspector),
		stagedStats:   NewStagedStatsTool(inspector),
	}
}

// Dispatch executes the named tool with the given JSON arguments. Argument
// structure is validated here; semantic validity (a commit id actually
// resolving) is left to the inspector. Results are never cached.
func (r *Registry) Dispatch(ctx context.Context, name, args string) (string, error) {
	switch name {
	case "get_commit_changes":
		var params CommitChangesParams
		if err := unmarshalArgs(name, args, &params); err != nil {
			return "", err
		}
		return r.commitChanges.Execute(ctx, &params)

	case "get_commit_summary":
		var params CommitSummaryParams
		if err := unmarshalArgs(name, args, &params); err != nil {
			return "", err
		}
		return r.commitSummary.Execute(ctx, &params)

	case "get_commit_stats":
		var params CommitStatsParams
		if err := unmarshalArgs(name, args, &params); err != nil {
			return "", err
		}
		return r.commitStats.Execute(ctx, &params)

	case "get_staged_changes":
		return r.stagedChanges.Execute(ctx, nil)

	case "get_staged_changes_summary":
		return r.stagedSummary.Execute(ctx, nil)

	case "get_staged_changes_stats":
		return r.stagedStats.Execute(ctx, nil)

	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// unmarshalArgs decodes tool-call arguments, tolerating an empty argument
// string (the required-field check happens in the tool itself)
func unmarshalArgs(name, args string, out interface{}) error {
	if args == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(args), out); err != nil {
		return fmt.Errorf("invalid parameters for %s: %w", name, err)
	}
	return nil
}

// CommitToolInfos returns the tool schemas offered to the model when
// analyzing an existing commit
func (r *Registry) CommitToolInfos() []*schema.ToolInfo {
	commitIDParam := map[string]*schema.ParameterInfo{
		"commit_id": {
			Type:     schema.String,
			Desc:     "The git commit hash or ref",
			Required: true,
		},
	}

	return []*schema.ToolInfo{
		{
			Name:        r.commitChanges.Name(),
			Desc:        r.commitChanges.Description(),
			ParamsOneOf: schema.NewParamsOneOfByParams(commitIDParam),
		},
		{
			Name:        r.commitSummary.Name(),
			Desc:        r.commitSummary.Description(),
			ParamsOneOf: schema.NewParamsOneOfByParams(commitIDParam),
		},
		{
			Name:        r.commitStats.Name(),
			Desc:        r.commitStats.Description(),
			ParamsOneOf: schema.NewParamsOneOfByParams(commitIDParam),
		},
	}
}

// StagedToolInfos returns the tool schemas offered to the model when
// analyzing staged changes
func (r *Registry) StagedToolInfos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name:        r.stagedChanges.Name(),
			Desc:        r.stagedChanges.Description(),
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name:        r.stagedSummary.Name(),
			Desc:        r.stagedSummary.Description(),
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		{
			Name:        r.stagedStats.Name(),
			Desc:        r.stagedStats.Description(),
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
	}
}
