package format

import "github.com/dhamidi/jpp/java/ast"

func (p *Printer) printStmt(s ast.Statement) {
	switch s := s.(type) {
	case *ast.Block:
		p.printBlock(s)
	case *ast.ExpressionStatement:
		p.printExpr(s.Expression(), ast.PrecAssignment)
		p.write(";")
	case *ast.ReturnStatement:
		p.write("return")
		if s.Value() != nil {
			p.write(" ")
			p.printExpr(s.Value(), ast.PrecAssignment)
		}
		p.write(";")
	case *ast.LocalVariable:
		p.printType(s.Type())
		p.write(" " + s.Name())
		if s.Init() != nil {
			p.write(" = ")
			p.printExpr(s.Init(), ast.PrecAssignment)
		}
		p.write(";")
	case *ast.IfStatement:
		p.printIf(s)
	}
}

// printBlock writes an empty block as {} and any other block with one
// statement per indented line.
func (p *Printer) printBlock(b *ast.Block) {
	if b.IsEmpty() {
		p.write("{}")
		return
	}
	p.write("{")
	p.newline()
	p.indent++
	for _, stmt := range b.Statements() {
		p.printStmt(stmt)
		p.newline()
	}
	p.indent--
	p.write("}")
}

func (p *Printer) printIf(s *ast.IfStatement) {
	p.write("if (")
	p.printExpr(s.Condition(), ast.PrecAssignment)
	p.write(") ")
	then := s.Then()
	// Without braces an else would attach to the inner if.
	if s.Otherwise() != nil && endsInOpenIf(then) {
		then = ast.NewBlock(then)
	}
	p.printStmt(then)
	if s.Otherwise() != nil {
		p.write(" else ")
		p.printStmt(s.Otherwise())
	}
}

// endsInOpenIf reports whether s ends with an if that has no else.
func endsInOpenIf(s ast.Statement) bool {
	i, ok := s.(*ast.IfStatement)
	if !ok {
		return false
	}
	if i.Otherwise() == nil {
		return true
	}
	return endsInOpenIf(i.Otherwise())
}
