package log

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, debug bool) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetDebugMode(debug)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetDebugMode(false)
	})
	return &buf
}

func TestDebug(t *testing.T) {
	t.Run("silent unless debug mode", func(t *testing.T) {
		buf := captureOutput(t, false)
		Debug("loading config from %s", "/tmp/x")
		assert.Empty(t, buf.String())
	})

	t.Run("prints in debug mode", func(t *testing.T) {
		buf := captureOutput(t, true)
		Debug("loading config from %s", "/tmp/x")
		assert.Contains(t, buf.String(), "[DEBUG] loading config from /tmp/x")
	})
}

func TestDebugToolCall(t *testing.T) {
	buf := captureOutput(t, true)

	DebugToolCall("get_commit_summary", `{"commit_id":"abc123"}`)
	DebugToolCall("get_staged_changes", "")

	text := buf.String()
	assert.Contains(t, text, `Tool call: get_commit_summary {"commit_id":"abc123"}`)
	assert.Contains(t, text, "Tool call: get_staged_changes\n")
}

func TestDebugToolResult(t *testing.T) {
	buf := captureOutput(t, true)

	DebugToolResult("get_staged_changes", "+added line", nil)
	DebugToolResult("get_commit_stats", "", errors.New("commit_id is required"))
	DebugToolResult("get_commit_changes", strings.Repeat("x", 300), nil)

	text := buf.String()
	assert.Contains(t, text, "Tool get_staged_changes result: +added line")
	assert.Contains(t, text, "Tool get_commit_stats error: commit_id is required")
	assert.Contains(t, text, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, text, strings.Repeat("x", 201))
}

func TestDebugConfig(t *testing.T) {
	buf := captureOutput(t, true)

	DebugConfig("Changelog settings", map[string]int{"max_iterations": 8})
	assert.Contains(t, buf.String(), "Changelog settings")
	assert.Contains(t, buf.String(), `"max_iterations": 8`)
}

func TestDebugTokenUsage(t *testing.T) {
	buf := captureOutput(t, true)

	DebugTokenUsage(100, 20, 120)
	assert.Contains(t, buf.String(), "prompt=100, completion=20, total=120")
}

func TestErrorAndWarn(t *testing.T) {
	buf := captureOutput(t, false)

	Error("stream failed: %v", fmt.Errorf("boom"))
	Warn("retrying in %s", "2s")

	text := buf.String()
	assert.Contains(t, text, "Error: stream failed: boom")
	assert.Contains(t, text, "Warning: retrying in 2s")
}
