package changelog

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Kind identifies what a changelog run analyzes
type Kind int

const (
	// KindCommit analyzes an existing commit by id
	KindCommit Kind = iota
	// KindStaged analyzes the staged (uncommitted) changes
	KindStaged
)

// Selector is the user's choice of change set: a specific commit, or the
// currently staged changes.
type Selector struct {
	Kind     Kind
	CommitID string // set only for KindCommit
}

// CommitSelector returns a selector for an existing commit
func CommitSelector(id string) Selector {
	return Selector{Kind: KindCommit, CommitID: id}
}

// StagedSelector returns a selector for the staged changes
func StagedSelector() Selector {
	return Selector{Kind: KindStaged}
}

// Validate checks the selector invariants
func (s Selector) Validate() error {
	if s.Kind == KindCommit && strings.TrimSpace(s.CommitID) == "" {
		return fmt.Errorf("commit selector requires a non-empty commit id")
	}
	return nil
}

// Document is a generated changelog ready to be persisted
type Document struct {
	Selector Selector
	Content  string

	name string
}

// Staged filenames carry a seconds-granularity timestamp; two documents
// created in the same second get a numeric suffix so they never collide.
var (
	stagedMu    sync.Mutex
	stagedStamp string
	stagedSeq   int
)

// NewDocument creates a Document and derives its filename: <commit-id>.md
// for commits, staged_<timestamp>.md for staged changes.
func NewDocument(sel Selector, content string, now time.Time) (*Document, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	doc := &Document{Selector: sel, Content: content}

	switch sel.Kind {
	case KindCommit:
		// Refs like "feature/x" must not create subdirectories
		id := strings.ReplaceAll(sel.CommitID, "/", "-")
		doc.name = id + ".md"
	case KindStaged:
		doc.name = stagedFilename(now)
	default:
		return nil, fmt.Errorf("unknown selector kind: %d", sel.Kind)
	}

	return doc, nil
}

// Filename returns the derived filename of the document
func (d *Document) Filename() string {
	return d.name
}

func stagedFilename(now time.Time) string {
	stamp := now.Format("20060102_150405")

	stagedMu.Lock()
	defer stagedMu.Unlock()

	if stamp == stagedStamp {
		stagedSeq++
		return fmt.Sprintf("staged_%s_%d.md", stamp, stagedSeq)
	}

	stagedStamp = stamp
	stagedSeq = 0
	return fmt.Sprintf("staged_%s.md", stamp)
}
