package parser

import (
	"strings"

	"github.com/dhamidi/jpp/java/ast"
)

// maxMapOfPairs is the largest map Map.of accepts; bigger literals go
// through Map.ofEntries.
const maxMapOfPairs = 10

func staticCall(qualifier, name string, args ...ast.Expression) *ast.MethodCall {
	return ast.NewMethodCall(qualified(qualifier), name, args, false)
}

func qualified(name string) ast.Expression {
	parts := strings.Split(name, ".")
	return ast.QualifiedName(parts[0], parts[1:]...)
}

// primitiveOptionals maps the primitive types that have their own Optional
// class to that class.
var primitiveOptionals = map[string]string{
	"int":    "java.util.OptionalInt",
	"long":   "java.util.OptionalLong",
	"double": "java.util.OptionalDouble",
}

// optionalOf wraps e in an Optional. The primitive type, or else a cast of e
// to a primitive type, picks OptionalInt, OptionalLong or OptionalDouble.
func optionalOf(e ast.Expression, primitive string) ast.Expression {
	if c, ok := e.(*ast.Cast); ok && primitive == "" && c.Type().Dims() == 0 {
		primitive = c.Type().Name()
	}
	if class, ok := primitiveOptionals[primitive]; ok {
		return staticCall(class, "of", e)
	}
	return staticCall("java.util.Optional", "ofNullable", e)
}

func optionalEmpty(primitive string) ast.Expression {
	if class, ok := primitiveOptionals[primitive]; ok {
		return staticCall(class, "empty")
	}
	return staticCall("java.util.Optional", "empty")
}

func orElseThrow(e ast.Expression) ast.Expression {
	return ast.NewMethodCall(e, "orElseThrow", nil, false)
}

func listOf(elems []ast.Expression) ast.Expression {
	return staticCall("java.util.List", "of", elems...)
}

func setOf(elems []ast.Expression) ast.Expression {
	return staticCall("java.util.Set", "of", elems...)
}

func mapOf(entries [][2]ast.Expression) ast.Expression {
	if len(entries) <= maxMapOfPairs {
		args := make([]ast.Expression, 0, 2*len(entries))
		for _, e := range entries {
			args = append(args, e[0], e[1])
		}
		return staticCall("java.util.Map", "of", args...)
	}
	args := make([]ast.Expression, len(entries))
	for i, e := range entries {
		args[i] = staticCall("java.util.Map", "entry", e[0], e[1])
	}
	return staticCall("java.util.Map", "ofEntries", args...)
}

func printCall(name string, args ...ast.Expression) *ast.ExpressionStatement {
	return ast.NewExpressionStatement(staticCall("java.lang.System.out", name, args...))
}

// printStatement expands print or println with several values into
// statements printing them separated by single spaces.
func printStatement(keyword string, args []ast.Expression) ast.Statement {
	switch len(args) {
	case 0:
		if keyword == "print" {
			return ast.NewBlock()
		}
		return printCall(keyword)
	case 1:
		return printCall(keyword, args[0])
	}
	var stmts []ast.Statement
	for i, arg := range args {
		if i > 0 {
			stmts = append(stmts, printCall("print", ast.NewLiteral("' '")))
		}
		name := "print"
		if i == len(args)-1 {
			name = keyword
		}
		stmts = append(stmts, printCall(name, arg))
	}
	return ast.NewBlock(stmts...)
}
