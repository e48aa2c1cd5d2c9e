package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"clarion/internal/ast"
)

// DiagnosticLevel represents the severity of a diagnostic.
type DiagnosticLevel string

const (
	Error   DiagnosticLevel = "error"
	Warning DiagnosticLevel = "warning"
	Note    DiagnosticLevel = "note"
)

// Diagnostic is a structured, positioned error with context notes.
type Diagnostic struct {
	Level    DiagnosticLevel
	Code     string       // Error code like E0401
	Message  string       // Primary error message
	Position ast.Position // Location in source
	Length   int          // Length of the problematic region
	Notes    []string     // Additional context notes
	Help     string       // Help text for the error
}

// Reporter handles consistent diagnostic formatting against one source file.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a diagnostic with Rust-like styling: header, location,
// source excerpt with a caret marker, then notes and help.
func (r *Reporter) Format(d Diagnostic) string {
	var result strings.Builder

	levelColor := levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0401]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(d.Level)), d.Message))
	}

	width := lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if d.Position.Line > 0 && d.Position.Line <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, d.Position.Line)),
			dim("│"),
			r.lines[d.Position.Line-1]))

		length := d.Length
		if length <= 0 {
			length = 1
		}
		marker := strings.Repeat(" ", max(0, d.Position.Column-1)) +
			levelColor(strings.Repeat("^", length))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note))
	}

	if d.Help != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), helpColor("help:"), d.Help))
	}

	result.WriteString("\n")
	return result.String()
}

func levelColor(level DiagnosticLevel) func(...interface{}) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
