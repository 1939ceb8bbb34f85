package parser

import (
	"errors"
	"fmt"

	"github.com/dhamidi/jpp/java/token"
)

// ErrStreamConsumed is returned when a TokenStream is read after it has been
// drained.
var ErrStreamConsumed = errors.New("token stream already consumed")

// LexicalError reports input the lexer cannot classify under the active
// feature set.
type LexicalError struct {
	Span    token.Span
	Text    string
	Message string
	// Incomplete is set for a comment or text block cut off by the end of
	// input.
	Incomplete bool
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: lexical error: %s", e.Span.Start, e.Message)
}

// SyntaxError reports a token no production accepts at its position.
type SyntaxError struct {
	Span     token.Span
	Expected string
	Found    token.Token
	// Incomplete is set when the parser ran out of input, so more text could
	// still make the source valid.
	Incomplete bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: expected %s, found %s", e.Span.Start, e.Expected, e.Found)
}

// Span returns the source span of a LexicalError or SyntaxError found in
// err's chain.
func Span(err error) (token.Span, bool) {
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return lexErr.Span, true
	}
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Span, true
	}
	return token.Span{}, false
}
