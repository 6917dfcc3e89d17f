package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommandTimeout bounds a single git invocation. The underlying tool
// normally returns in milliseconds; the ceiling only matters for pathological
// repositories or hung filesystems.
const DefaultCommandTimeout = 30 * time.Second

// Inspector retrieves textual views of committed or staged changes from a
// git working tree. All results are plain text, ready to be handed to a
// language model.
type Inspector interface {
	// Verify checks that the working directory is inside a git working tree
	Verify(ctx context.Context) error

	// ResolveCommit resolves a commit id or ref to a full commit hash
	ResolveCommit(ctx context.Context, id string) (string, error)

	// CommitDiff returns the full diff of a commit, including its metadata
	CommitDiff(ctx context.Context, id string) (string, error)

	// CommitSummary returns commit metadata plus the list of changed files
	CommitSummary(ctx context.Context, id string) (string, error)

	// CommitStats returns per-file and aggregate line statistics for a commit
	CommitStats(ctx context.Context, id string) (string, error)

	// StagedDiff returns the diff of staged changes, empty if nothing is staged
	StagedDiff(ctx context.Context) (string, error)

	// StagedSummary returns the branch, file status list and stats of staged changes
	StagedSummary(ctx context.Context) (string, error)

	// StagedStats returns per-file and aggregate line statistics for staged changes
	StagedStats(ctx context.Context) (string, error)

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)
}

// DefaultInspector is the default implementation of Inspector, shelling out
// to the git binary scoped to a single working directory.
type DefaultInspector struct {
	workDir string
	timeout time.Duration
}

// NewInspector creates a DefaultInspector for the given working directory.
// A zero timeout falls back to DefaultCommandTimeout.
func NewInspector(workDir string, timeout time.Duration) *DefaultInspector {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &DefaultInspector{workDir: workDir, timeout: timeout}
}

// runGit runs a git command under the inspector's timeout and returns stdout
func (i *DefaultInspector) runGit(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = i.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &InspectionError{Args: args, Stderr: stderr.String(), Err: err}
	}

	return stdout.String(), nil
}

// Verify checks that the working directory is inside a git working tree
func (i *DefaultInspector) Verify(ctx context.Context) error {
	if _, err := i.runGit(ctx, "rev-parse", "--is-inside-work-tree"); err != nil {
		return fmt.Errorf("%w: %s", ErrNotRepository, i.workDir)
	}
	return nil
}

// ResolveCommit resolves a commit id or ref to a full commit hash
func (i *DefaultInspector) ResolveCommit(ctx context.Context, id string) (string, error) {
	out, err := i.runGit(ctx, "rev-parse", "--verify", "--quiet", id+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownRevision, id)
	}
	return trim(out), nil
}

// CommitDiff returns the full diff of a commit, including its metadata
func (i *DefaultInspector) CommitDiff(ctx context.Context, id string) (string, error) {
	info, err := i.runGit(ctx, "show", "--no-patch", "--format=fuller", id)
	if err != nil {
		return "", err
	}

	diff, err := i.runGit(ctx, "show", id)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Commit Information:\n%s\nChanges:\n%s", info, diff), nil
}

// CommitSummary returns commit metadata plus the list of changed files
func (i *DefaultInspector) CommitSummary(ctx context.Context, id string) (string, error) {
	const headerFormat = "Commit: %H%nAuthor: %an <%ae>%nDate:   %ad%nSubject: %s%n%n%b"

	header, err := i.runGit(ctx, "log", "-1", "--format="+headerFormat, id)
	if err != nil {
		return "", err
	}

	files, err := i.runGit(ctx, "show", "--name-status", "--format=", id)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\nFiles Changed:\n%s", trim(header), files), nil
}

// CommitStats returns per-file and aggregate line statistics for a commit
func (i *DefaultInspector) CommitStats(ctx context.Context, id string) (string, error) {
	numstat, err := i.runGit(ctx, "show", "--numstat", "--format=", id)
	if err != nil {
		return "", err
	}

	stat, err := i.runGit(ctx, "show", "--stat", "--format=", id)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Detailed Line Changes:\n%s\nSummary:\n%s", numstat, stat), nil
}

// StagedDiff returns the diff of staged changes, empty if nothing is staged
func (i *DefaultInspector) StagedDiff(ctx context.Context) (string, error) {
	out, err := i.runGit(ctx, "diff", "--cached")
	if err != nil {
		return "", err
	}
	return trim(out), nil
}

// StagedSummary returns the branch, file status list and stats of staged changes
func (i *DefaultInspector) StagedSummary(ctx context.Context) (string, error) {
	files, err := i.runGit(ctx, "diff", "--cached", "--name-status")
	if err != nil {
		return "", err
	}
	if trim(files) == "" {
		return "", nil
	}

	stat, err := i.runGit(ctx, "diff", "--cached", "--stat")
	if err != nil {
		return "", err
	}

	branch, err := i.CurrentBranch(ctx)
	if err != nil {
		// A repo without commits has no branch to report; the summary is
		// still useful without it.
		branch = ""
	}

	return fmt.Sprintf("Branch: %s\n\nFiles Status:\n%s\nStatistics:\n%s", branch, files, stat), nil
}

// StagedStats returns per-file and aggregate line statistics for staged changes
func (i *DefaultInspector) StagedStats(ctx context.Context) (string, error) {
	numstat, err := i.runGit(ctx, "diff", "--cached", "--numstat")
	if err != nil {
		return "", err
	}
	if trim(numstat) == "" {
		return "", nil
	}

	stat, err := i.runGit(ctx, "diff", "--cached", "--stat")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Detailed Line Changes:\n%s\nSummary:\n%s", numstat, stat), nil
}

// CurrentBranch returns the current branch name
func (i *DefaultInspector) CurrentBranch(ctx context.Context) (string, error) {
	out, err := i.runGit(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return trim(out), nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
