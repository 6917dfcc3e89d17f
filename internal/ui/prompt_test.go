package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewTerminal(strings.NewReader(input), &out), &out
}

func TestLinePrompt_Show(t *testing.T) {
	t.Run("reads a trimmed line", func(t *testing.T) {
		term, out := newTestTerminal("  /tmp/repo  \n")
		prompt := &LinePrompt{Prompt: "Repository path"}

		result, err := prompt.Show(term)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/repo", result)
		assert.Contains(t, out.String(), "Repository path: ")
	})

	t.Run("empty input falls back to default", func(t *testing.T) {
		term, out := newTestTerminal("\n")
		prompt := &LinePrompt{Prompt: "Repository path", Default: "/home/user"}

		result, err := prompt.Show(term)
		require.NoError(t, err)
		assert.Equal(t, "/home/user", result)
		assert.Contains(t, out.String(), "[/home/user]")
	})

	t.Run("empty input without default", func(t *testing.T) {
		term, _ := newTestTerminal("\n")
		prompt := &LinePrompt{Prompt: "Commit id"}

		_, err := prompt.Show(term)
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("last line without newline", func(t *testing.T) {
		term, _ := newTestTerminal("abc123")
		prompt := &LinePrompt{Prompt: "Commit id"}

		result, err := prompt.Show(term)
		require.NoError(t, err)
		assert.Equal(t, "abc123", result)
	})

	t.Run("closed input returns EOF", func(t *testing.T) {
		term, _ := newTestTerminal("")
		prompt := &LinePrompt{Prompt: "Commit id"}

		_, err := prompt.Show(term)
		assert.ErrorIs(t, err, io.EOF)
	})
}

// Piped input has to survive across prompts: each read consumes one line,
// never the rest of the stream.
func TestTerminal_SharedAcrossPrompts(t *testing.T) {
	term, _ := newTestTerminal("/tmp/repo\n2\nabc123\ny\n")

	path, err := (&LinePrompt{Prompt: "Repository path"}).Show(term)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/repo", path)

	choice, err := (&LinePrompt{Prompt: "Choice", Default: "1"}).Show(term)
	require.NoError(t, err)
	assert.Equal(t, "2", choice)

	id, err := (&LinePrompt{Prompt: "Commit id"}).Show(term)
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	again, err := ConfirmWithDefault("Generate another changelog?", false, term)
	require.NoError(t, err)
	assert.True(t, again)

	_, err = (&LinePrompt{Prompt: "Commit id"}).Show(term)
	assert.ErrorIs(t, err, io.EOF)
}

func TestConfirmWithDefault(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default yes", "\n", true, true},
		{"empty uses default no", "\n", false, false},
		{"garbage then yes", "maybe\ny\n", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term, _ := newTestTerminal(tc.input)
			got, err := ConfirmWithDefault("Continue?", tc.defaultYes, term)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("eof", func(t *testing.T) {
		term, _ := newTestTerminal("")
		_, err := Confirm("Continue?", term)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestStreamPrinter(t *testing.T) {
	var out bytes.Buffer
	printer := NewStreamPrinter(&out, WithColor(false))

	require.NoError(t, printer.PrintProgress("working"))
	require.NoError(t, printer.PrintToolCall("get_commit_summary", nil))
	require.NoError(t, printer.PrintSuccess("done"))
	require.NoError(t, printer.PrintLLMContent("chunk"))
	require.NoError(t, printer.Newline())

	text := out.String()
	assert.Contains(t, text, "working")
	assert.Contains(t, text, "Calling tool: get_commit_summary")
	assert.Contains(t, text, "done")
	assert.Contains(t, text, "chunk")
}
