package parser

import (
	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/token"
)

func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignmentExpr()
}

func (p *Parser) parseAssignmentExpr() ast.Expression {
	if p.isLambda() {
		return p.parseLambdaExpr()
	}

	start := p.start()
	left := p.parseConditionalExpr()

	if p.isAssignOp() {
		switch left.(type) {
		case *ast.Name, *ast.FieldAccess, *ast.ArrayAccess:
		default:
			p.fail("end of expression")
		}
		op := p.advance().Literal
		value := p.parseAssignmentExpr()
		return finish(p, ast.NewAssignment(left, op, value), start)
	}

	return left
}

func (p *Parser) isAssignOp() bool {
	return p.match(token.Assign, token.PlusAssign, token.MinusAssign,
		token.StarAssign, token.SlashAssign, token.PercentAssign,
		token.AndAssign, token.OrAssign, token.XorAssign,
		token.ShlAssign, token.ShrAssign, token.UShrAssign)
}

// isLambda looks ahead for "x ->" or a balanced parenthesis group followed
// by "->".
func (p *Parser) isLambda() bool {
	if p.isIdentifierLike() && p.peekN(1).Kind == token.Arrow {
		return true
	}

	if !p.check(token.LParen) {
		return false
	}

	save := p.pos
	defer func() { p.pos = save }()
	p.advance()
	depth := 1

	for depth > 0 && !p.check(token.EOF) {
		switch p.peek().Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
		p.advance()
	}

	return depth == 0 && p.check(token.Arrow)
}

func (p *Parser) parseLambdaExpr() ast.Expression {
	start := p.start()
	var params ast.LambdaParameters

	if p.isIdentifierLike() {
		pstart := p.start()
		name := p.advance().Literal
		params = ast.InformalParameters(finish(p, ast.NewInformalParameter(name), pstart))
	} else {
		params = p.parseLambdaParameters()
	}

	p.expect(token.Arrow, "'->'")

	var body ast.LambdaBody
	if p.check(token.LBrace) {
		body = ast.BlockBody(p.parseBlock())
	} else {
		body = ast.ExpressionBody(p.parseExpression())
	}

	return finish(p, ast.NewLambda(params, body), start)
}

// parseLambdaParameters parses a parenthesized parameter list, which must
// be all typed or all untyped.
func (p *Parser) parseLambdaParameters() ast.LambdaParameters {
	p.expect(token.LParen, "'('")

	var formal []*ast.FormalParameter
	var informal []*ast.InformalParameter

	if !p.check(token.RParen) {
		for {
			if p.isLambdaTypedParam() {
				if len(informal) > 0 {
					p.fail("untyped parameter")
				}
				formal = append(formal, p.parseFormalParameter())
			} else {
				if len(formal) > 0 {
					p.fail("typed parameter")
				}
				start := p.start()
				name := p.expectIdentifier()
				informal = append(informal, finish(p, ast.NewInformalParameter(name), start))
			}
			if !p.check(token.Comma) {
				break
			}
			p.advance()
			if p.trailingComma(token.RParen, feature.TrailingOtherComma) {
				break
			}
		}
	}

	p.expect(token.RParen, "')'")
	if len(formal) > 0 {
		return ast.FormalParameters(formal...)
	}
	return ast.InformalParameters(informal...)
}

func (p *Parser) isLambdaTypedParam() bool {
	tok := p.peek()
	switch {
	case tok.Kind == token.Final, tok.Kind.IsPrimitiveType():
		return true
	case isIdentifierKind(tok.Kind):
		next := p.peekN(1).Kind
		return isIdentifierKind(next) || next == token.Dot || next == token.LBracket
	}
	return false
}

func (p *Parser) parseFormalParameter() *ast.FormalParameter {
	start := p.start()
	final := false
	if p.check(token.Final) {
		p.advance()
		final = true
	}
	typ := p.parseType()
	name := p.expectIdentifier()
	return finish(p, ast.NewFormalParameter(final, typ, name), start)
}

// parseType parses a primitive or qualified type name followed by array
// dimensions.
func (p *Parser) parseType() *ast.Type {
	start := p.start()
	var name string
	if p.peek().Kind.IsPrimitiveType() {
		name = p.advance().Literal
	} else {
		name = p.parseQualifiedName()
	}
	dims := p.parseDims()
	return finish(p, ast.NewType(name, dims), start)
}

func (p *Parser) parseQualifiedName() string {
	name := p.expectIdentifier()
	for p.check(token.Dot) && isIdentifierKind(p.peekN(1).Kind) {
		p.advance()
		name += "." + p.advance().Literal
	}
	return name
}

func (p *Parser) parseDims() int {
	dims := 0
	for p.check(token.LBracket) && p.peekN(1).Kind == token.RBracket {
		p.advanceN(2)
		dims++
	}
	return dims
}

func (p *Parser) advanceN(n int) {
	for i := 0; i < n; i++ {
		p.advance()
	}
}

func (p *Parser) parseConditionalExpr() ast.Expression {
	start := p.start()
	cond := p.parseBinaryExpr(ast.PrecLogicalOr)

	if !p.check(token.Question) {
		return cond
	}
	if next := p.peekN(1).Kind; p.enabled(feature.OptionalLiterals) && (p.isTerminal(next) || next == token.LT) {
		p.advance()
		return finish(p, optionalOf(cond, p.parseOptionalType()), start)
	}

	p.advance()
	then := p.parseExpression()
	p.expect(token.Colon, "':'")
	var otherwise ast.Expression
	if p.isLambda() {
		otherwise = p.parseLambdaExpr()
	} else {
		otherwise = p.parseConditionalExpr()
	}
	return finish(p, ast.NewConditional(cond, then, otherwise), start)
}

// isTerminal reports whether k ends the operand before it, making a
// preceding "?" an optional literal rather than a conditional.
func (p *Parser) isTerminal(k token.Kind) bool {
	switch k {
	case token.RParen, token.RBracket, token.RBrace, token.Comma, token.Semicolon, token.EOF:
		return true
	}
	return false
}

// parseBinaryExpr parses binary operators binding at least as tightly as
// min by precedence climbing.
func (p *Parser) parseBinaryExpr(min ast.Precedence) ast.Expression {
	start := p.start()
	left := p.parseUnaryExpr()

	for {
		tok := p.peek()
		prec, ok := p.binaryOperator(tok)
		if !ok || prec < min {
			return left
		}
		p.advance()
		next := prec.Next()
		if ast.RightAssociative(tok.Literal) {
			next = prec
		}
		right := p.parseBinaryExpr(next)
		left = finish(p, ast.NewBinary(left, tok.Literal, right), start)
	}
}

func (p *Parser) binaryOperator(tok token.Token) (ast.Precedence, bool) {
	switch tok.Kind {
	case token.Or, token.And, token.BitOr, token.BitXor, token.BitAnd,
		token.EQ, token.NE, token.LT, token.LE, token.GT, token.GE,
		token.Shl, token.Shr, token.UShr,
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent:
		return ast.BinaryPrecedence(tok.Literal)
	case token.Power:
		if p.enabled(feature.PowerOperator) {
			return ast.BinaryPrecedence(tok.Literal)
		}
	}
	return 0, false
}

func (p *Parser) parseUnaryExpr() ast.Expression {
	start := p.start()
	switch p.peek().Kind {
	case token.Increment, token.Decrement, token.Plus, token.Minus, token.Not, token.BitNot:
		op := p.advance().Literal
		operand := p.parseUnaryExpr()
		return finish(p, ast.NewUnary(op, operand), start)
	case token.LParen:
		if p.isCast() {
			return p.parseCastExpr()
		}
	}

	return p.parsePostfixExpr()
}

// isCast decides whether a parenthesis starts a cast. A primitive type is
// always a cast; a reference type only when the next token cannot continue
// a binary expression, so (a) - b stays a subtraction.
func (p *Parser) isCast() bool {
	if !p.check(token.LParen) {
		return false
	}

	save := p.pos
	defer func() { p.pos = save }()
	p.advance()

	if p.peek().Kind.IsPrimitiveType() {
		p.advance()
		for p.check(token.LBracket) && p.peekN(1).Kind == token.RBracket {
			p.advanceN(2)
		}
		return p.check(token.RParen)
	}

	if !p.isIdentifierLike() {
		return false
	}
	p.advance()
	for p.check(token.Dot) && isIdentifierKind(p.peekN(1).Kind) {
		p.advanceN(2)
	}
	for p.check(token.LBracket) && p.peekN(1).Kind == token.RBracket {
		p.advanceN(2)
	}
	if !p.check(token.RParen) {
		return false
	}
	p.advance()

	switch k := p.peek().Kind; {
	case isIdentifierKind(k), k.IsLiteral():
		return true
	case k == token.This, k == token.Super, k == token.New,
		k == token.LParen, k == token.Not, k == token.BitNot:
		return true
	case k == token.LBracket, k == token.LBrace:
		return p.enabled(feature.CollectionLiterals)
	}
	return false
}

func (p *Parser) parseCastExpr() ast.Expression {
	start := p.start()
	p.expect(token.LParen, "'('")
	typ := p.parseType()
	p.expect(token.RParen, "')'")

	var operand ast.Expression
	if p.isLambda() {
		operand = p.parseLambdaExpr()
	} else {
		operand = p.parseUnaryExpr()
	}
	return finish(p, ast.NewCast(typ, operand), start)
}

func (p *Parser) parsePostfixExpr() ast.Expression {
	start := p.start()
	expr := p.parsePrimaryExpr()
	for {
		switch p.peek().Kind {
		case token.Increment, token.Decrement:
			op := p.advance().Literal
			return finish(p, ast.NewPostfix(expr, op), start)
		case token.Dot:
			p.advance()
			expr = p.parseMemberSuffix(expr, false, start)
		case token.QuestionDot:
			if !p.enabled(feature.NullSafe) {
				p.fail("'.'")
			}
			p.advance()
			expr = p.parseMemberSuffix(expr, true, start)
		case token.LBracket:
			p.advance()
			index := p.parseExpression()
			p.expect(token.RBracket, "']'")
			expr = finish(p, ast.NewArrayAccess(expr, index), start)
		case token.Not:
			if !p.enabled(feature.OptionalLiterals) {
				return expr
			}
			p.advance()
			expr = finish(p, orElseThrow(expr), start)
		default:
			return expr
		}
	}
}

// parseMemberSuffix parses the name after "." or "?." and an optional
// argument list.
func (p *Parser) parseMemberSuffix(object ast.Expression, nullSafe bool, start token.Position) ast.Expression {
	name := p.expectIdentifier()
	if p.check(token.LParen) {
		args := p.parseArguments()
		return finish(p, ast.NewMethodCall(object, name, args, nullSafe), start)
	}
	return finish(p, ast.NewFieldAccess(object, name, nullSafe), start)
}

func (p *Parser) parseArguments() []ast.Expression {
	p.expect(token.LParen, "'('")
	args := []ast.Expression{}

	if !p.check(token.RParen) {
		for {
			args = append(args, p.parseArgument())
			if !p.check(token.Comma) {
				break
			}
			p.advance()
			if p.trailingComma(token.RParen, feature.TrailingArgComma) {
				break
			}
		}
	}

	p.expect(token.RParen, "')'")
	return args
}

// parseArgument parses an argument, dropping a "name:" label when
// argument annotations are enabled.
func (p *Parser) parseArgument() ast.Expression {
	if p.enabled(feature.ArgumentAnnotations) && p.isIdentifierLike() && p.peekN(1).Kind == token.Colon {
		p.advanceN(2)
	}
	return p.parseExpression()
}

func (p *Parser) parsePrimaryExpr() ast.Expression {
	start := p.start()
	tok := p.peek()
	switch {
	case tok.Kind.IsLiteral():
		p.advance()
		return finish(p, ast.NewLiteral(tok.Literal), start)

	case tok.Kind == token.This, tok.Kind == token.Super:
		p.advance()
		return finish(p, ast.NewName(tok.Literal), start)

	case tok.Kind == token.LParen:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RParen, "')'")
		return expr

	case tok.Kind == token.LBracket && p.enabled(feature.CollectionLiterals):
		return p.parseBracketLiteral()

	case tok.Kind == token.LBrace && p.enabled(feature.CollectionLiterals):
		return p.parseBraceLiteral()

	case tok.Kind == token.Question && p.enabled(feature.OptionalLiterals):
		p.advance()
		return finish(p, optionalEmpty(p.parseOptionalType()), start)

	case isIdentifierKind(tok.Kind):
		p.advance()
		if p.check(token.LParen) {
			args := p.parseArguments()
			return finish(p, ast.NewMethodCall(nil, tok.Literal, args, false), start)
		}
		return finish(p, ast.NewName(tok.Literal), start)
	}

	p.fail("expression")
	return nil
}

// parseBracketLiteral parses a list [a, b], a map [k: v] or the empty map
// [:].
func (p *Parser) parseBracketLiteral() ast.Expression {
	start := p.start()
	p.expect(token.LBracket, "'['")
	if p.check(token.Colon) && p.peekN(1).Kind == token.RBracket {
		p.advanceN(2)
		return finish(p, mapOf(nil), start)
	}
	return p.parseCollectionRest(token.RBracket, "']'", listOf, start)
}

// parseBraceLiteral parses a set {a, b} or a map {k: v}. An empty pair of
// braces is the empty map.
func (p *Parser) parseBraceLiteral() ast.Expression {
	start := p.start()
	p.expect(token.LBrace, "'{'")
	return p.parseCollectionRest(token.RBrace, "'}'", setOf, start)
}

// parseCollectionRest parses the elements of a collection literal up to
// close. A colon after the first element makes it a map. A trailing comma
// is always allowed, and a lone comma stands for no elements.
func (p *Parser) parseCollectionRest(close token.Kind, what string, elements func([]ast.Expression) ast.Expression, start token.Position) ast.Expression {
	if p.check(token.Comma) && p.peekN(1).Kind == close {
		p.advance()
	}

	var elems []ast.Expression
	var entries [][2]ast.Expression
	for !p.check(close) {
		first := p.parseExpression()
		if len(elems) == 0 && (len(entries) > 0 || p.check(token.Colon)) {
			p.expect(token.Colon, "':'")
			entries = append(entries, [2]ast.Expression{first, p.parseExpression()})
		} else {
			elems = append(elems, first)
		}
		if !p.check(token.Comma) {
			break
		}
		p.advance()
	}
	p.expect(close, what)

	switch {
	case len(entries) > 0:
		return finish(p, mapOf(entries), start)
	case len(elems) == 0 && close == token.RBrace:
		return finish(p, mapOf(nil), start)
	}
	return finish(p, elements(elems), start)
}

// parseOptionalType parses the <int>, <long> or <double> that may follow an
// optional mark and returns the type name, or "" when there is none.
func (p *Parser) parseOptionalType() string {
	if !p.check(token.LT) {
		return ""
	}
	p.advance()
	tok := p.peek()
	switch tok.Kind {
	case token.Int, token.Long, token.Double:
	default:
		p.fail("'int', 'long' or 'double'")
	}
	p.advance()
	p.expect(token.GT, "'>'")
	return tok.Literal
}
