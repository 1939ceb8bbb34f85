package lsp

import (
	"errors"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/jpp/java/parser"
	"github.com/dhamidi/jpp/java/token"
)

const diagnosticSource = "jpp"

// Diagnostics converts a parse error into LSP diagnostics. Errors that carry
// no source span are reported at the start of the document.
func Diagnostics(err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}

	var message string
	var lexErr *parser.LexicalError
	var synErr *parser.SyntaxError
	switch {
	case errors.As(err, &lexErr):
		message = lexErr.Message
	case errors.As(err, &synErr):
		message = "expected " + synErr.Expected + ", found " + synErr.Found.String()
	default:
		message = err.Error()
	}

	span, _ := parser.Span(err)
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return []protocol.Diagnostic{{
		Range:    toRange(span),
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}}
}

func toRange(s token.Span) protocol.Range {
	start := toPosition(s.Start)
	end := toPosition(s.End)
	if end.Line < start.Line || (end.Line == start.Line && end.Character < start.Character) {
		end = start
	}
	return protocol.Range{Start: start, End: end}
}

// toPosition maps a 1-based line and column to the 0-based LSP position.
func toPosition(p token.Position) protocol.Position {
	var pos protocol.Position
	if p.Line > 0 {
		pos.Line = protocol.UInteger(p.Line - 1)
	}
	if p.Column > 0 {
		pos.Character = protocol.UInteger(p.Column - 1)
	}
	return pos
}

// documentRange covers all of text.
func documentRange(text string) protocol.Range {
	lines := strings.Count(text, "\n")
	last := text[strings.LastIndex(text, "\n")+1:]
	return protocol.Range{
		Start: protocol.Position{},
		End:   protocol.Position{Line: protocol.UInteger(lines), Character: protocol.UInteger(len([]rune(last)))},
	}
}
