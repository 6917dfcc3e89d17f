package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingInspector is a fake git.Inspector that records which views were
// fetched, so tests can assert call isolation between the tools.
type recordingInspector struct {
	calls []string
}

func (r *recordingInspector) record(name string) (string, error) {
	r.calls = append(r.calls, name)
	return name + " output", nil
}

func (r *recordingInspector) Verify(ctx context.Context) error { return nil }
func (r *recordingInspector) ResolveCommit(ctx context.Context, id string) (string, error) {
	r.calls = append(r.calls, "ResolveCommit")
	return id, nil
}
func (r *recordingInspector) CommitDiff(ctx context.Context, id string) (string, error) {
	return r.record("CommitDiff")
}
func (r *recordingInspector) CommitSummary(ctx context.Context, id string) (string, error) {
	return r.record("CommitSummary")
}
func (r *recordingInspector) CommitStats(ctx context.Context, id string) (string, error) {
	return r.record("CommitStats")
}
func (r *recordingInspector) StagedDiff(ctx context.Context) (string, error) {
	return r.record("StagedDiff")
}
func (r *recordingInspector) StagedSummary(ctx context.Context) (string, error) {
	return r.record("StagedSummary")
}
func (r *recordingInspector) StagedStats(ctx context.Context) (string, error) {
	return r.record("StagedStats")
}
func (r *recordingInspector) CurrentBranch(ctx context.Context) (string, error) {
	return r.record("CurrentBranch")
}

func TestRegistry_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("commit stats never fetches the diff", func(t *testing.T) {
		inspector := &recordingInspector{}
		registry := NewRegistry(inspector)

		result, err := registry.Dispatch(ctx, "get_commit_stats", `{"commit_id":"abc123"}`)
		require.NoError(t, err)
		assert.Contains(t, result, "CommitStats")
		assert.Equal(t, []string{"CommitStats"}, inspector.calls)
	})

	t.Run("staged stats never fetches the diff", func(t *testing.T) {
		inspector := &recordingInspector{}
		registry := NewRegistry(inspector)

		_, err := registry.Dispatch(ctx, "get_staged_changes_stats", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"StagedStats"}, inspector.calls)
	})

	t.Run("each tool dispatches to exactly one view", func(t *testing.T) {
		cases := map[string]string{
			"get_commit_changes":        "CommitDiff",
			"get_commit_summary":        "CommitSummary",
			"get_commit_stats":          "CommitStats",
			"get_staged_changes":        "StagedDiff",
			"get_staged_changes_summary": "StagedSummary",
			"get_staged_changes_stats":  "StagedStats",
		}

		for toolName, view := range cases {
			inspector := &recordingInspector{}
			registry := NewRegistry(inspector)

			_, err := registry.Dispatch(ctx, toolName, `{"commit_id":"abc123"}`)
			require.NoError(t, err, toolName)
			assert.Equal(t, []string{view}, inspector.calls, toolName)
		}
	})

	t.Run("missing commit_id fails before the inspector is touched", func(t *testing.T) {
		inspector := &recordingInspector{}
		registry := NewRegistry(inspector)

		_, err := registry.Dispatch(ctx, "get_commit_changes", `{}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "commit_id is required")
		assert.Empty(t, inspector.calls)
	})

	t.Run("malformed arguments", func(t *testing.T) {
		inspector := &recordingInspector{}
		registry := NewRegistry(inspector)

		_, err := registry.Dispatch(ctx, "get_commit_summary", `{not json`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid parameters")
		assert.Empty(t, inspector.calls)
	})

	t.Run("unknown tool", func(t *testing.T) {
		registry := NewRegistry(&recordingInspector{})

		_, err := registry.Dispatch(ctx, "write_file", `{}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tool")
	})
}

func TestRegistry_ToolInfos(t *testing.T) {
	registry := NewRegistry(&recordingInspector{})

	t.Run("commit tools", func(t *testing.T) {
		infos := registry.CommitToolInfos()
		require.Len(t, infos, 3)

		names := make([]string, 0, len(infos))
		for _, info := range infos {
			names = append(names, info.Name)
			assert.NotEmpty(t, info.Desc)
		}
		assert.Equal(t, []string{"get_commit_changes", "get_commit_summary", "get_commit_stats"}, names)
	})

	t.Run("staged tools", func(t *testing.T) {
		infos := registry.StagedToolInfos()
		require.Len(t, infos, 3)

		names := make([]string, 0, len(infos))
		for _, info := range infos {
			names = append(names, info.Name)
			assert.NotEmpty(t, info.Desc)
		}
		assert.Equal(t, []string{"get_staged_changes", "get_staged_changes_summary", "get_staged_changes_stats"}, names)
	})
}
