package parser

import (
	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/token"
)

func (p *Parser) parseBlock() *ast.Block {
	start := p.start()
	p.expect(token.LBrace, "'{'")

	var stmts []ast.Statement
	for !p.check(token.RBrace) {
		if p.check(token.EOF) {
			p.fail("'}'")
		}
		stmts = append(stmts, p.parseStatement())
	}

	p.expect(token.RBrace, "'}'")
	return finish(p, ast.NewBlock(stmts...), start)
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		// An empty statement is kept as an empty block.
		start := p.start()
		p.advance()
		return finish(p, ast.NewBlock(), start)
	case token.If:
		return p.parseIfStmt()
	case token.Return:
		return p.parseReturnStmt()
	}
	if p.isPrintStmt() {
		return p.parsePrintStmt()
	}
	return p.parseLocalVarOrExprStmt()
}

func (p *Parser) parseIfStmt() ast.Statement {
	start := p.start()
	p.expect(token.If, "'if'")
	p.expect(token.LParen, "'('")
	cond := p.parseExpression()
	p.expect(token.RParen, "')'")
	then := p.parseStatement()
	var otherwise ast.Statement
	if p.check(token.Else) {
		p.advance()
		otherwise = p.parseStatement()
	}
	return finish(p, ast.NewIfStatement(cond, then, otherwise), start)
}

func (p *Parser) parseReturnStmt() ast.Statement {
	start := p.start()
	p.expect(token.Return, "'return'")
	var value ast.Expression
	if !p.check(token.Semicolon) {
		value = p.parseExpression()
	}
	p.expect(token.Semicolon, "';'")
	return finish(p, ast.NewReturnStatement(value), start)
}

func (p *Parser) parseLocalVarOrExprStmt() ast.Statement {
	if p.isLocalVarDecl() {
		return p.parseLocalVarDecl()
	}
	return p.parseExprStmt()
}

// isLocalVarDecl looks ahead for a type followed by an identifier.
func (p *Parser) isLocalVarDecl() bool {
	save := p.pos
	defer func() { p.pos = save }()

	switch {
	case p.peek().Kind.IsPrimitiveType():
		p.advance()
	case p.isIdentifierLike():
		p.advance()
		for p.check(token.Dot) && isIdentifierKind(p.peekN(1).Kind) {
			p.advanceN(2)
		}
	default:
		return false
	}
	for p.check(token.LBracket) && p.peekN(1).Kind == token.RBracket {
		p.advanceN(2)
	}
	return p.isIdentifierLike()
}

func (p *Parser) parseLocalVarDecl() ast.Statement {
	start := p.start()
	typ := p.parseType()
	name := p.expectIdentifier()
	var init ast.Expression
	if p.check(token.Assign) {
		p.advance()
		init = p.parseExpression()
	} else if typ.IsVar() {
		p.fail("'=' after var declaration")
	}
	p.expect(token.Semicolon, "';'")
	return finish(p, ast.NewLocalVariable(typ, name, init), start)
}

func (p *Parser) parseExprStmt() ast.Statement {
	start := p.start()
	expr := p.parseExpression()
	p.expect(token.Semicolon, "';'")
	return finish(p, ast.NewExpressionStatement(expr), start)
}

var printStatements = map[string]bool{
	"print":    true,
	"println":  true,
	"printf":   true,
	"printfln": true,
}

// isPrintStmt reports whether the statement starts with a print keyword
// used as a statement rather than as a variable or a method name.
func (p *Parser) isPrintStmt() bool {
	if !p.enabled(feature.PrintStatements) {
		return false
	}
	tok := p.peek()
	if tok.Kind != token.Ident || !printStatements[tok.Literal] {
		return false
	}
	switch p.peekN(1).Kind {
	case token.Dot, token.QuestionDot, token.LBracket, token.Increment, token.Decrement, token.Arrow:
		return false
	}
	save := p.pos
	p.advance()
	assign := p.isAssignOp()
	p.pos = save
	return !assign
}

// parsePrintStmt parses print, println, printf or printfln followed by
// arguments separated by commas or whitespace.
func (p *Parser) parsePrintStmt() ast.Statement {
	start := p.start()
	keyword := p.advance().Literal

	var args []ast.Expression
	if !p.check(token.Semicolon) {
		args = append(args, p.parseArgument())
		if p.check(token.Comma) {
			for p.check(token.Comma) {
				p.advance()
				if p.check(token.Semicolon) && p.enabled(feature.TrailingOtherComma) {
					break
				}
				args = append(args, p.parseArgument())
			}
		} else {
			for !p.check(token.Semicolon) && !p.check(token.EOF) {
				args = append(args, p.parseArgument())
			}
		}
	}
	p.expect(token.Semicolon, "';'")

	switch keyword {
	case "printf":
		if len(args) == 0 {
			p.fail("format string")
		}
		return finish(p, printCall("printf", args...), start)
	case "printfln":
		if len(args) == 0 {
			p.fail("format string")
		}
		args[0] = ast.NewBinary(args[0], "+", ast.NewLiteral(`"%n"`))
		return finish(p, printCall("printf", args...), start)
	}
	return finish(p, printStatement(keyword, args), start)
}
