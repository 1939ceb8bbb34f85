// Package parser turns source text of the Java dialect into the syntax tree
// of package ast.
//
// Both the lexer and the parser consult a feature.Set: extension lexemes
// and productions are only accepted while their feature is enabled, and
// with every feature disabled the parser accepts exactly the base
// language. Several extensions are sugar and produce ordinary base-language
// nodes (a list literal becomes a call to java.util.List.of), so the tree
// can always be printed back as base syntax.
//
// Parsing is all or nothing: Finish returns either a complete tree or a
// *LexicalError / *SyntaxError, never a partial tree.
package parser

import (
	"errors"
	"io"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/token"
)

var log = commonlog.GetLogger("jpp.parser")

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithFeatures selects the extensions the parse accepts. Without this
// option the registry defaults apply; a nil set means the base language.
func WithFeatures(s *feature.Set) Option {
	return func(p *Parser) {
		p.features = s
	}
}

// Entry selects the production a parse starts from.
type Entry int

const (
	// EntryExpression parses a single expression.
	EntryExpression Entry = iota
	// EntryStatement parses a single statement.
	EntryStatement
	// EntryStatements parses statements up to the end of input and returns
	// them as a *ast.Block.
	EntryStatements
)

func (e Entry) parseFunc() parseFunc {
	switch e {
	case EntryStatement:
		return (*Parser).parseStatementEntry
	case EntryStatements:
		return (*Parser).parseStatementsEntry
	}
	return (*Parser).parseExpressionEntry
}

type parseFunc func(*Parser) ast.Node

type Parser struct {
	file     string
	features *feature.Set
	reader   io.Reader
	input    []byte
	tokens   []token.Token
	comments []token.Token
	pos      int
	entry    parseFunc
}

// bailout carries a parse error out of the recursive descent to run.
type bailout struct {
	err error
}

func newParser(r io.Reader, entry parseFunc, opts []Option) *Parser {
	p := &Parser{
		reader:   r,
		entry:    entry,
		features: feature.Default.Defaults(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func ParseExpression(r io.Reader, opts ...Option) *Parser {
	return newParser(r, EntryExpression.parseFunc(), opts)
}

func ParseStatement(r io.Reader, opts ...Option) *Parser {
	return newParser(r, EntryStatement.parseFunc(), opts)
}

func ParseStatements(r io.Reader, opts ...Option) *Parser {
	return newParser(r, EntryStatements.parseFunc(), opts)
}

// Parse consumes ts and parses it from entry under features. The stream
// must be unread; tokenizing and parsing should use the same feature set.
func Parse(ts *TokenStream, features *feature.Set, entry Entry) (ast.Node, error) {
	p := &Parser{features: features, entry: entry.parseFunc()}
	if err := p.load(ts); err != nil {
		return nil, err
	}
	return p.run()
}

// Features returns the feature set the parser runs with.
func (p *Parser) Features() *feature.Set {
	return p.features
}

// Comments returns the comments skipped by the last parse.
func (p *Parser) Comments() []token.Token {
	return p.comments
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return err
	}
	p.input = data
	return nil
}

// IsComplete reports whether more input could not change the outcome of
// Finish. It returns false for input such as "1 + " that ends in the middle
// of a construct, and true both for valid input and for input that is
// wrong regardless of what follows.
func (p *Parser) IsComplete() bool {
	_, err := p.Finish()
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return !synErr.Incomplete
	}
	var lexErr *LexicalError
	if errors.As(err, &lexErr) {
		return !lexErr.Incomplete
	}
	return true
}

// Finish reads the whole input and parses it.
func (p *Parser) Finish() (ast.Node, error) {
	if err := p.readAll(); err != nil {
		return nil, err
	}
	log.Debugf("parsing %d bytes of %s with features [%s]", len(p.input), p.displayFile(), p.features)
	if err := p.load(Tokenize(p.input, p.features, WithFile(p.file))); err != nil {
		return nil, err
	}
	return p.run()
}

// Reset prepares the parser for new input, keeping its options.
func (p *Parser) Reset(r io.Reader) {
	p.reader = r
	p.input = nil
	p.tokens = nil
	p.comments = nil
	p.pos = 0
}

func (p *Parser) displayFile() string {
	if p.file == "" {
		return "<input>"
	}
	return p.file
}

func (p *Parser) load(ts *TokenStream) error {
	p.tokens = nil
	p.pos = 0
	for tok, err := range ts.All() {
		if err != nil {
			return err
		}
		p.tokens = append(p.tokens, tok)
	}
	p.comments = ts.Comments()
	return nil
}

func (p *Parser) run() (result ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			result, err = nil, b.err
		}
	}()
	result = p.entry(p)
	if !p.check(token.EOF) {
		p.fail("end of input")
	}
	return result, nil
}

func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.tokens) {
		if len(p.tokens) > 0 {
			last := p.tokens[len(p.tokens)-1]
			return token.Token{Kind: token.EOF, Span: token.Span{Start: last.Span.End, End: last.Span.End}}
		}
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// expect consumes a token of the given kind or fails describing what.
func (p *Parser) expect(kind token.Kind, what string) token.Token {
	if !p.check(kind) {
		p.fail(what)
	}
	return p.advance()
}

func (p *Parser) fail(expected string) {
	tok := p.peek()
	panic(bailout{&SyntaxError{
		Span:       tok.Span,
		Expected:   expected,
		Found:      tok,
		Incomplete: tok.Kind == token.EOF,
	}})
}

func (p *Parser) enabled(id string) bool {
	return p.features.IsEnabled(id)
}

// isIdentifierLike accepts contextual keywords in identifier positions.
func (p *Parser) isIdentifierLike() bool {
	return isIdentifierKind(p.peek().Kind)
}

func isIdentifierKind(k token.Kind) bool {
	switch k {
	case token.Ident, token.Var, token.Yield, token.Record:
		return true
	}
	return false
}

func (p *Parser) expectIdentifier() string {
	if !p.isIdentifierLike() {
		p.fail("identifier")
	}
	return p.advance().Literal
}

func (p *Parser) start() token.Position {
	return p.peek().Span.Start
}

// finish sets n's span from start to the end of the last consumed token.
func finish[T ast.Node](p *Parser, n T, start token.Position) T {
	end := start
	if p.pos > 0 && p.pos <= len(p.tokens) {
		end = p.tokens[p.pos-1].Span.End
	}
	n.SetSpan(token.Span{Start: start, End: end})
	return n
}

// trailingComma reports whether a comma just consumed is the last one
// before close, which is allowed when the feature id is enabled.
func (p *Parser) trailingComma(close token.Kind, id string) bool {
	return p.check(close) && p.enabled(id)
}

func (p *Parser) parseExpressionEntry() ast.Node {
	return p.parseExpression()
}

func (p *Parser) parseStatementEntry() ast.Node {
	return p.parseStatement()
}

func (p *Parser) parseStatementsEntry() ast.Node {
	start := p.start()
	var stmts []ast.Statement
	for !p.check(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	return finish(p, ast.NewBlock(stmts...), start)
}
