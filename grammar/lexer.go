package grammar

import (
	"fmt"
	"io"

	"golang.org/x/exp/ebnf"
)

// Production names the lexer uses: tokens are the alternatives of
// tokenProduction, and whitespaceProduction is skipped.
const (
	tokenProduction      = "token"
	whitespaceProduction = "whitespace"
)

// Position is a location in the scanned input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexeme together with the lexical production that matched it.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

type memoKey struct {
	name   string
	offset int
}

// Lexer splits input into tokens by matching the lexical productions of a
// grammar directly. It is slow and serves as a reference for the
// hand-written lexer in package parser.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int // match length, -1 for no match
	visiting map[memoKey]bool
}

// NewLexer returns a lexer for input. The grammar must define the token
// production as an alternative of production names.
func NewLexer(g ebnf.Grammar, input []byte, filename string) (*Lexer, error) {
	prod, ok := g[tokenProduction]
	if !ok || prod.Expr == nil {
		return nil, fmt.Errorf("grammar has no %s production", tokenProduction)
	}
	var kinds []string
	alt, ok := prod.Expr.(ebnf.Alternative)
	if !ok {
		alt = ebnf.Alternative{prod.Expr}
	}
	for _, e := range alt {
		name, ok := e.(*ebnf.Name)
		if !ok {
			return nil, fmt.Errorf("%s: alternatives must be production names", tokenProduction)
		}
		kinds = append(kinds, name.String)
	}
	return &Lexer{
		grammar:  g,
		kinds:    kinds,
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
	}, nil
}

func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// NextToken returns the longest match among the token kinds, preferring
// the kind listed first on a tie. Whitespace is skipped. At the end of
// input it returns an EOF token and io.EOF.
func (l *Lexer) NextToken() (Token, error) {
	for {
		l.memo = make(map[memoKey]int)
		l.visiting = make(map[memoKey]bool)

		if l.pos >= len(l.input) {
			return Token{Kind: "EOF", Position: l.Position()}, io.EOF
		}

		if n := l.tryMatchName(whitespaceProduction, l.pos); n > 0 {
			for i := 0; i < n; i++ {
				l.advance()
			}
			continue
		}

		start := l.Position()
		bestKind, bestLen := "", 0
		for _, kind := range l.kinds {
			if n := l.tryMatchName(kind, l.pos); n > bestLen {
				bestKind, bestLen = kind, n
			}
		}
		if bestLen == 0 {
			return Token{Kind: "ERROR", Literal: string(l.input[l.pos]), Position: start},
				fmt.Errorf("%s: no token matches %q", start, l.input[l.pos])
		}
		literal := string(l.input[l.pos : l.pos+bestLen])
		for i := 0; i < bestLen; i++ {
			l.advance()
		}
		return Token{Kind: bestKind, Literal: literal, Position: start}, nil
	}
}

// Tokenize reads all tokens, ending with EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		tokens = append(tokens, tok)
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
	}
}

// tryMatch returns the length of the longest match of expr at offset, or
// -1. An empty match is 0, so optional and repeated parts can succeed
// without consuming input.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		pos := offset
		for _, item := range e {
			n := l.tryMatch(item, pos)
			if n < 0 {
				return -1
			}
			pos += n
		}
		return pos - offset

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := l.tryMatch(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		pos := offset
		for {
			n := l.tryMatch(e.Body, pos)
			if n <= 0 {
				break
			}
			pos += n
		}
		return pos - offset

	case *ebnf.Option:
		if n := l.tryMatch(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)
	}
	return -1
}

func (l *Lexer) tryMatchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if result, ok := l.memo[key]; ok {
		return result
	}
	if l.visiting[key] {
		return -1
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return -1
	}

	l.visiting[key] = true
	result := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = result
	return result
}

func (l *Lexer) tryMatchToken(s string, offset int) int {
	if offset+len(s) > len(l.input) {
		return -1
	}
	if string(l.input[offset:offset+len(s)]) == s {
		return len(s)
	}
	return -1
}

func (l *Lexer) tryMatchRange(begin, end string, offset int) int {
	if offset >= len(l.input) || len(begin) != 1 || len(end) != 1 {
		return -1
	}
	ch := l.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1
	}
	return -1
}
