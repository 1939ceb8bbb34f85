package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/java/token"
)

// Lexer splits source text into tokens. Extension lexemes are only
// recognized when their feature is enabled in the lexer's set; a nil set
// means the base language.
type Lexer struct {
	input    []byte
	file     string
	pos      int
	line     int
	column   int
	features *feature.Set
}

func NewLexer(input []byte, file string, features *feature.Set) *Lexer {
	return &Lexer{
		input:    input,
		file:     file,
		pos:      0,
		line:     1,
		column:   1,
		features: features,
	}
}

func (l *Lexer) Position() token.Position {
	return token.Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	if ch >= utf8.RuneSelf {
		_, size := utf8.DecodeRune(l.input[l.pos:])
		l.pos += size
		l.column++
		return ch
	}
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// NextToken returns the next token, including whitespace and comments.
// At the end of input it returns an EOF token on every call.
func (l *Lexer) NextToken() (token.Token, error) {
	startPos := l.Position()

	if l.atEnd() {
		return token.Token{Kind: token.EOF, Span: token.Span{Start: startPos, End: startPos}}, nil
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		return l.scanLineComment(startPos), nil
	}
	if ch == '/' && l.peekN(1) == '*' {
		return l.scanBlockComment(startPos)
	}

	if isWhitespace(ch) {
		return l.scanWhitespace(startPos), nil
	}

	if l.isIdentStart() {
		return l.scanIdentOrKeyword(startPos), nil
	}

	if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
		return l.scanNumber(startPos), nil
	}

	if ch == '\'' {
		return l.scanCharLiteral(startPos)
	}

	if ch == '"' {
		if l.peekN(1) == '"' && l.peekN(2) == '"' {
			return l.scanTextBlock(startPos)
		}
		return l.scanStringLiteral(startPos)
	}

	return l.scanOperator(startPos)
}

func (l *Lexer) scanWhitespace(start token.Position) token.Token {
	for isWhitespace(l.peek()) {
		l.advance()
	}
	return l.token(token.Whitespace, start)
}

func (l *Lexer) scanLineComment(start token.Position) token.Token {
	l.advanceN(2)
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
	return l.token(token.LineComment, start)
}

func (l *Lexer) scanBlockComment(start token.Position) (token.Token, error) {
	l.advanceN(2)
	for {
		if l.atEnd() {
			return l.failIncomplete(start, "unterminated comment")
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		l.advance()
	}
	return l.token(token.Comment, start), nil
}

func (l *Lexer) scanIdentOrKeyword(start token.Position) token.Token {
	for l.isIdentPart() {
		l.advance()
	}
	tok := l.token(token.Ident, start)
	tok.Kind = token.LookupKeyword(tok.Literal)
	return tok
}

func (l *Lexer) scanNumber(start token.Position) token.Token {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		return l.scanHexNumber(start)
	}
	if l.peek() == '0' && (l.peekN(1) == 'b' || l.peekN(1) == 'B') {
		return l.scanBinaryNumber(start)
	}

	isFloat := false
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}

	if l.peek() == '.' && l.pointStartsFraction() {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}

	ch := l.peek()
	if ch == 'f' || ch == 'F' || ch == 'd' || ch == 'D' {
		isFloat = true
		l.advance()
	} else if ch == 'l' || ch == 'L' {
		l.advance()
	}

	if isFloat {
		return l.token(token.FloatLiteral, start)
	}
	return l.token(token.IntLiteral, start)
}

func (l *Lexer) scanHexNumber(start token.Position) token.Token {
	l.advanceN(2)
	for isHexDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	isFloat := false
	if l.peek() == '.' {
		isFloat = true
		l.advance()
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}
	if l.peek() == 'p' || l.peek() == 'P' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}
	if isFloat {
		if l.peek() == 'f' || l.peek() == 'F' || l.peek() == 'd' || l.peek() == 'D' {
			l.advance()
		}
		return l.token(token.FloatLiteral, start)
	}
	if l.peek() == 'l' || l.peek() == 'L' {
		l.advance()
	}
	return l.token(token.IntLiteral, start)
}

func (l *Lexer) scanBinaryNumber(start token.Position) token.Token {
	l.advanceN(2)
	for l.peek() == '0' || l.peek() == '1' || l.peek() == '_' {
		l.advance()
	}
	if l.peek() == 'l' || l.peek() == 'L' {
		l.advance()
	}
	return l.token(token.IntLiteral, start)
}

func (l *Lexer) scanCharLiteral(start token.Position) (token.Token, error) {
	l.advance()
	for !l.atEnd() && l.peek() != '\'' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() != '\'' {
		return l.fail(start, "unterminated character literal")
	}
	l.advance()
	return l.token(token.CharLiteral, start), nil
}

func (l *Lexer) scanStringLiteral(start token.Position) (token.Token, error) {
	l.advance()
	for !l.atEnd() && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() != '"' {
		return l.fail(start, "unterminated string literal")
	}
	l.advance()
	return l.token(token.StringLiteral, start), nil
}

func (l *Lexer) scanTextBlock(start token.Position) (token.Token, error) {
	l.advanceN(3)
	for {
		if l.atEnd() {
			return l.failIncomplete(start, "unterminated text block")
		}
		if l.peek() == '"' && l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			break
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	return l.token(token.TextBlock, start), nil
}

func (l *Lexer) scanOperator(start token.Position) (token.Token, error) {
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return l.token(token.LParen, start), nil
	case ')':
		l.advance()
		return l.token(token.RParen, start), nil
	case '{':
		l.advance()
		return l.token(token.LBrace, start), nil
	case '}':
		l.advance()
		return l.token(token.RBrace, start), nil
	case '[':
		l.advance()
		return l.token(token.LBracket, start), nil
	case ']':
		l.advance()
		return l.token(token.RBracket, start), nil
	case ';':
		l.advance()
		return l.token(token.Semicolon, start), nil
	case ',':
		l.advance()
		return l.token(token.Comma, start), nil
	case '@':
		l.advance()
		return l.token(token.At, start), nil
	case '~':
		l.advance()
		return l.token(token.BitNot, start), nil

	case '?':
		// "?." is ambiguous with a conditional whose branch is a fraction
		// like ".5", so a disabled null-safe feature falls back to "?" ".".
		if l.peekN(1) == '.' && !isDigit(l.peekN(2)) && l.features.IsEnabled(feature.NullSafe) {
			l.advanceN(2)
			return l.token(token.QuestionDot, start), nil
		}
		l.advance()
		return l.token(token.Question, start), nil

	case '.':
		if l.peekN(1) == '.' && l.peekN(2) == '.' {
			l.advanceN(3)
			return l.token(token.Ellipsis, start), nil
		}
		l.advance()
		return l.token(token.Dot, start), nil

	case ':':
		if l.peekN(1) == ':' {
			l.advanceN(2)
			return l.token(token.ColonColon, start), nil
		}
		l.advance()
		return l.token(token.Colon, start), nil

	case '=':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.EQ, start), nil
		}
		l.advance()
		return l.token(token.Assign, start), nil

	case '!':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.NE, start), nil
		}
		l.advance()
		return l.token(token.Not, start), nil

	case '<':
		if l.peekN(1) == '<' {
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.token(token.ShlAssign, start), nil
			}
			l.advanceN(2)
			return l.token(token.Shl, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.LE, start), nil
		}
		l.advance()
		return l.token(token.LT, start), nil

	case '>':
		if l.peekN(1) == '>' {
			if l.peekN(2) == '>' {
				if l.peekN(3) == '=' {
					l.advanceN(4)
					return l.token(token.UShrAssign, start), nil
				}
				l.advanceN(3)
				return l.token(token.UShr, start), nil
			}
			if l.peekN(2) == '=' {
				l.advanceN(3)
				return l.token(token.ShrAssign, start), nil
			}
			l.advanceN(2)
			return l.token(token.Shr, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.GE, start), nil
		}
		l.advance()
		return l.token(token.GT, start), nil

	case '&':
		if l.peekN(1) == '&' {
			l.advanceN(2)
			return l.token(token.And, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.AndAssign, start), nil
		}
		l.advance()
		return l.token(token.BitAnd, start), nil

	case '|':
		if l.peekN(1) == '|' {
			l.advanceN(2)
			return l.token(token.Or, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.OrAssign, start), nil
		}
		l.advance()
		return l.token(token.BitOr, start), nil

	case '^':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.XorAssign, start), nil
		}
		l.advance()
		return l.token(token.BitXor, start), nil

	case '+':
		if l.peekN(1) == '+' {
			l.advanceN(2)
			return l.token(token.Increment, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.PlusAssign, start), nil
		}
		l.advance()
		return l.token(token.Plus, start), nil

	case '-':
		if l.peekN(1) == '-' {
			l.advanceN(2)
			return l.token(token.Decrement, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.MinusAssign, start), nil
		}
		if l.peekN(1) == '>' {
			l.advanceN(2)
			return l.token(token.Arrow, start), nil
		}
		l.advance()
		return l.token(token.Minus, start), nil

	case '*':
		if l.peekN(1) == '*' {
			// "**" has no meaning in the base language, so it is rejected
			// outright rather than split into two multiplications.
			l.advanceN(2)
			if !l.features.IsEnabled(feature.PowerOperator) {
				return l.fail(start, fmt.Sprintf("operator '**' requires feature %s", feature.PowerOperator))
			}
			return l.token(token.Power, start), nil
		}
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.StarAssign, start), nil
		}
		l.advance()
		return l.token(token.Star, start), nil

	case '/':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.SlashAssign, start), nil
		}
		l.advance()
		return l.token(token.Slash, start), nil

	case '%':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(token.PercentAssign, start), nil
		}
		l.advance()
		return l.token(token.Percent, start), nil
	}

	l.advance()
	return l.fail(start, fmt.Sprintf("unexpected character %q", string(l.input[start.Offset:l.pos])))
}

func (l *Lexer) token(kind token.Kind, start token.Position) token.Token {
	end := l.Position()
	return token.Token{
		Kind:    kind,
		Span:    token.Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) fail(start token.Position, msg string) (token.Token, error) {
	tok := l.token(token.Error, start)
	return tok, &LexicalError{Span: tok.Span, Text: tok.Literal, Message: msg}
}

func (l *Lexer) failIncomplete(start token.Position, msg string) (token.Token, error) {
	tok, err := l.fail(start, msg)
	err.(*LexicalError).Incomplete = true
	return tok, err
}

func (l *Lexer) isIdentStart() bool {
	ch := l.peek()
	if ch >= utf8.RuneSelf {
		r, _ := utf8.DecodeRune(l.input[l.pos:])
		return unicode.IsLetter(r)
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func (l *Lexer) isIdentPart() bool {
	ch := l.peek()
	if ch >= utf8.RuneSelf {
		r, _ := utf8.DecodeRune(l.input[l.pos:])
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return l.isIdentStart() || isDigit(ch)
}

// pointStartsFraction reports whether the '.' at the cursor belongs to the
// number before it. 1. and 1.e3 are doubles while 1.x stays a member access.
func (l *Lexer) pointStartsFraction() bool {
	ch := l.peekN(1)
	switch {
	case isDigit(ch):
		return true
	case ch == 'e' || ch == 'E':
		next := l.peekN(2)
		if next == '+' || next == '-' {
			next = l.peekN(3)
		}
		return isDigit(next)
	case ch == 'f' || ch == 'F' || ch == 'd' || ch == 'D':
		return !isIdentByte(l.peekN(2))
	}
	return !isIdentByte(ch)
}

// isIdentByte treats every non-ASCII byte as part of an identifier.
func isIdentByte(ch byte) bool {
	return ch >= utf8.RuneSelf || isDigit(ch) ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
