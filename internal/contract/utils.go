package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Load status label constants.
const (
	LoadedValue  = "Loaded"  // File parsed into a table
	FailedValue  = "Failed"  // File could not be read or parsed
	SkippedValue = "Skipped" // Step not run because an input was missing
)

// Color variables for console output.
var (
	LoadedColor  = color.New(color.FgGreen, color.Bold) // LoadedColor marks a successful load.
	FailedColor  = color.New(color.FgRed, color.Bold)   // FailedColor marks a failed load.
	SkippedColor = color.New(color.FgYellow)            // SkippedColor marks a skipped step.
)

// GetPlainLabel returns the plain text label for a load outcome.
// This is the core logic used for JSON and table printing.
func GetPlainLabel(ok bool) string {
	if ok {
		return LoadedValue
	}
	return FailedValue
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(ok bool, useColors bool) string {
	text := GetPlainLabel(ok)
	if !useColors {
		return text
	}
	if ok {
		return LoadedColor.Sprint(text)
	}
	return FailedColor.Sprint(text)
}

// GetSkippedLabel returns the label printed when analysis is skipped.
func GetSkippedLabel(useColors bool) string {
	if !useColors {
		return SkippedValue
	}
	return SkippedColor.Sprint(SkippedValue)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// SelectOutputFile returns the file handle the console report is written to.
// An empty path selects os.Stdout; otherwise the file is created or truncated.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText truncates a string to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for "..." and at least one character.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
