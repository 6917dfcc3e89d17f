package log

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	debugMode           = false
	output    io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug mode
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// SetOutput sets the output writer for log messages
func SetOutput(w io.Writer) {
	output = w
}

// Debug prints debug messages (only in debug mode)
func Debug(format string, args ...interface{}) {
	if debugMode {
		gray := color.New(color.FgHiBlack)
		gray.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// DebugConfig prints configuration details in debug mode
func DebugConfig(label string, config interface{}) {
	if debugMode {
		gray := color.New(color.FgHiBlack)
		data, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			gray.Fprintf(output, "[DEBUG] %s: (failed to serialize: %v)\n", label, err)
			return
		}
		gray.Fprintf(output, "[DEBUG] %s:\n%s\n", label, string(data))
	}
}

// DebugToolCall logs a tool invocation with its raw JSON arguments in debug mode
func DebugToolCall(toolName, arguments string) {
	if debugMode {
		yellow := color.New(color.FgYellow)
		if arguments == "" {
			yellow.Fprintf(output, "[DEBUG] Tool call: %s\n", toolName)
			return
		}
		yellow.Fprintf(output, "[DEBUG] Tool call: %s %s\n", toolName, arguments)
	}
}

// DebugToolResult logs a tool result in debug mode
func DebugToolResult(toolName string, result string, err error) {
	if debugMode {
		if err != nil {
			red := color.New(color.FgRed)
			red.Fprintf(output, "[DEBUG] Tool %s error: %v\n", toolName, err)
		} else {
			green := color.New(color.FgGreen)
			green.Fprintf(output, "[DEBUG] Tool %s result: %s\n", toolName, truncate(result, 200))
		}
	}
}

// DebugTokenUsage logs token usage in debug mode
func DebugTokenUsage(promptTokens, completionTokens, totalTokens int) {
	if debugMode {
		magenta := color.New(color.FgMagenta)
		magenta.Fprintf(output, "[DEBUG] Token Usage: prompt=%d, completion=%d, total=%d\n",
			promptTokens, completionTokens, totalTokens)
	}
}

// Error prints error messages
func Error(format string, args ...interface{}) {
	red := color.New(color.FgRed)
	red.Fprintf(output, "Error: "+format+"\n", args...)
}

// Warn prints warning messages
func Warn(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(output, "Warning: "+format+"\n", args...)
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
