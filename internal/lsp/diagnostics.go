package lsp

import (
	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"clarion/internal/analysis"
)

// ConvertParseError transforms a parser error into LSP diagnostics for
// IDE display: unbalanced parens, malformed literals, and other syntax
// problems.
func ConvertParseError(err error) []protocol.Diagnostic {
	line, column := uint32(0), uint32(0)
	if pe, ok := err.(participle.Error); ok {
		pos := pe.Position()
		if pos.Line > 0 {
			line = uint32(pos.Line - 1) // convert to 0-based indexing
		}
		if pos.Column > 0 {
			column = uint32(pos.Column - 1)
		}
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: column},
			End:   protocol.Position{Line: line, Character: column + 5}, // rough span for visibility
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("clarion-parser"),
		Message:  err.Error(),
	}}
}

// ConvertCheckError transforms an analysis failure into LSP diagnostics.
// Analysis stops at the first failure, so there is always exactly one.
func ConvertCheckError(checkErr *analysis.CheckError) []protocol.Diagnostic {
	diagnostic := checkErr.Diagnostic()

	line, column := uint32(0), uint32(0)
	if diagnostic.Position.Line > 0 {
		line = uint32(diagnostic.Position.Line - 1) // convert to 0-based indexing
	}
	if diagnostic.Position.Column > 0 {
		column = uint32(diagnostic.Position.Column - 1)
	}
	length := uint32(diagnostic.Length)
	if length == 0 {
		length = 1
	}

	code := protocol.IntegerOrString{Value: diagnostic.Code}
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: column},
			End:   protocol.Position{Line: line, Character: column + length},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("clarion-analysis"),
		Code:     &code,
		Message:  diagnostic.Message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
