package parser

import (
	"iter"

	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/java/token"
)

// TokenStream is a single pass over the significant tokens of a source:
// whitespace and comments are skipped, and the final token is EOF. Once the
// EOF token or an error has been returned, further reads fail with
// ErrStreamConsumed. To tokenize again, call Tokenize on the source again.
type TokenStream struct {
	lexer    *Lexer
	comments []token.Token
	done     bool
}

// Tokenize returns a lazy token stream over src. The only Option that
// affects tokenizing is WithFile.
func Tokenize(src []byte, features *feature.Set, opts ...Option) *TokenStream {
	p := newParser(nil, nil, opts)
	return &TokenStream{lexer: NewLexer(src, p.file, features)}
}

// Next returns the next significant token. A *LexicalError ends the stream.
func (ts *TokenStream) Next() (token.Token, error) {
	if ts.done {
		return token.Token{}, ErrStreamConsumed
	}
	for {
		tok, err := ts.lexer.NextToken()
		if err != nil {
			ts.done = true
			return tok, err
		}
		switch tok.Kind {
		case token.Whitespace:
			continue
		case token.Comment, token.LineComment:
			ts.comments = append(ts.comments, tok)
			continue
		case token.EOF:
			ts.done = true
		}
		return tok, nil
	}
}

// All yields the remaining tokens, ending after EOF or the first error.
func (ts *TokenStream) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := ts.Next()
			if !yield(tok, err) || err != nil || tok.Kind == token.EOF {
				return
			}
		}
	}
}

// Comments returns the comments skipped so far.
func (ts *TokenStream) Comments() []token.Token {
	return ts.comments
}
