// Package format renders syntax trees back to source text and to JSON.
package format

import (
	"bytes"
	"io"
	"strings"

	"github.com/dhamidi/jpp/java/ast"
)

// Printer writes nodes as source text. Expressions are parenthesized only
// where their precedence is lower than the slot they occupy requires, so
// parsing the output yields a tree equal to the printed one.
type Printer struct {
	w           io.Writer
	indent      int
	indentStr   string
	atLineStart bool
	err         error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:           w,
		indentStr:   "    ",
		atLineStart: true,
	}
}

// Code renders n as source text.
func Code(n ast.Node) string {
	var buf bytes.Buffer
	NewPrinter(&buf).Print(n)
	return buf.String()
}

// Statements renders the statements of b one per line, without the
// enclosing braces, so the output parses back with ParseStatements.
func Statements(b *ast.Block) string {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStatements(b)
	return buf.String()
}

// Print writes n, returning the first write error.
func (p *Printer) Print(n ast.Node) error {
	p.printNode(n)
	return p.err
}

func (p *Printer) PrintStatements(b *ast.Block) error {
	for _, stmt := range b.Statements() {
		p.printStmt(stmt)
		p.newline()
	}
	return p.err
}

func (p *Printer) printNode(n ast.Node) {
	switch n := n.(type) {
	case ast.Expression:
		p.printExpr(n, ast.PrecAssignment)
	case ast.Statement:
		p.printStmt(n)
	case *ast.Type:
		p.printType(n)
	case *ast.FormalParameter:
		p.printFormalParameter(n)
	case *ast.InformalParameter:
		p.write(n.Name())
	}
}

func (p *Printer) writeIndent() {
	if !p.atLineStart {
		return
	}
	p.atLineStart = false
	for i := 0; i < p.indent; i++ {
		p.write(p.indentStr)
	}
}

func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	p.writeIndent()
	_, p.err = io.WriteString(p.w, s)
}

func (p *Printer) newline() {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, "\n")
	p.atLineStart = true
}

// printExpr writes e in a slot that requires at least precedence ctx.
func (p *Printer) printExpr(e ast.Expression, ctx ast.Precedence) {
	if e.Precedence() < ctx {
		p.write("(")
		p.printExpr(e, ast.PrecAssignment)
		p.write(")")
		return
	}

	switch e := e.(type) {
	case *ast.Literal:
		p.write(e.Value())
	case *ast.Name:
		p.write(e.Identifier())
	case *ast.FieldAccess:
		p.printExpr(e.Object(), ast.PrecPrimary)
		p.write(selector(e.NullSafe()))
		p.write(e.Name())
	case *ast.MethodCall:
		if e.Object() != nil {
			p.printExpr(e.Object(), ast.PrecPrimary)
			p.write(selector(e.NullSafe()))
		}
		p.write(e.Name())
		p.printArguments(e.Arguments())
	case *ast.ArrayAccess:
		p.printExpr(e.Array(), ast.PrecPrimary)
		p.write("[")
		p.printExpr(e.Index(), ast.PrecAssignment)
		p.write("]")
	case *ast.Unary:
		p.printUnary(e)
	case *ast.Postfix:
		p.printExpr(e.Operand(), ast.PrecPostfix)
		p.write(e.Op())
	case *ast.Binary:
		p.printBinary(e)
	case *ast.Assignment:
		p.printExpr(e.Target(), ast.PrecPostfix)
		p.write(" " + e.Op() + " ")
		p.printExpr(e.Value(), ast.PrecAssignment)
	case *ast.Conditional:
		p.printExpr(e.Condition(), ast.PrecLogicalOr)
		p.write(" ? ")
		p.printExpr(e.Then(), ast.PrecAssignment)
		p.write(" : ")
		p.printExpr(e.Otherwise(), ast.PrecConditional)
	case *ast.Cast:
		p.printCast(e)
	case *ast.Lambda:
		p.printLambda(e)
	}
}

func selector(nullSafe bool) string {
	if nullSafe {
		return "?."
	}
	return "."
}

func (p *Printer) printArguments(args []ast.Expression) {
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(arg, ast.PrecAssignment)
	}
	p.write(")")
}

// printBinary gives the operand on the associative side the operator's own
// level and the other operand the next tighter one, so a - (b - c) keeps
// its parentheses and (a - b) - c loses them.
func (p *Printer) printBinary(e *ast.Binary) {
	prec := e.Precedence()
	left, right := prec, prec.Next()
	if ast.RightAssociative(e.Op()) {
		left, right = prec.Next(), prec
	}
	p.printExpr(e.Left(), left)
	p.write(" " + e.Op() + " ")
	p.printExpr(e.Right(), right)
}

func (p *Printer) printUnary(e *ast.Unary) {
	operand := p.render(e.Operand(), ast.PrecUnary)
	p.write(e.Op())
	// Keep "- -x" and "+ +x" from lexing as decrement or increment.
	if last := e.Op()[len(e.Op())-1]; len(operand) > 0 && operand[0] == last && (last == '-' || last == '+') {
		p.write(" ")
	}
	p.write(operand)
}

func (p *Printer) printCast(e *ast.Cast) {
	p.write("(")
	p.printType(e.Type())
	p.write(") ")
	operand := p.render(e.Operand(), ast.PrecUnary)
	// (T) -x reads as a subtraction unless T is primitive.
	if !isPrimitive(e.Type()) && (strings.HasPrefix(operand, "-") || strings.HasPrefix(operand, "+")) {
		operand = "(" + operand + ")"
	}
	p.write(operand)
}

func isPrimitive(t *ast.Type) bool {
	if t.Dims() > 0 {
		return false
	}
	switch t.Name() {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

// render prints e into a string at the current indentation.
func (p *Printer) render(e ast.Expression, ctx ast.Precedence) string {
	var buf bytes.Buffer
	sub := &Printer{w: &buf, indent: p.indent, indentStr: p.indentStr}
	sub.printExpr(e, ctx)
	if sub.err != nil && p.err == nil {
		p.err = sub.err
	}
	return buf.String()
}

// printLambda writes a single untyped parameter bare and every other
// parameter list in parentheses.
func (p *Printer) printLambda(e *ast.Lambda) {
	e.Parameters().Match(
		func(params []*ast.FormalParameter) {
			p.write("(")
			for i, param := range params {
				if i > 0 {
					p.write(", ")
				}
				p.printFormalParameter(param)
			}
			p.write(")")
		},
		func(params []*ast.InformalParameter) {
			if len(params) == 1 {
				p.write(params[0].Name())
				return
			}
			p.write("(")
			for i, param := range params {
				if i > 0 {
					p.write(", ")
				}
				p.write(param.Name())
			}
			p.write(")")
		},
	)
	p.write(" -> ")
	e.Body().Match(
		func(b *ast.Block) { p.printBlock(b) },
		func(body ast.Expression) { p.printExpr(body, ast.PrecAssignment) },
	)
}

func (p *Printer) printFormalParameter(param *ast.FormalParameter) {
	if param.Final() {
		p.write("final ")
	}
	p.printType(param.Type())
	p.write(" " + param.Name())
}

func (p *Printer) printType(t *ast.Type) {
	p.write(t.String())
}
