// Package ast declares the syntax tree produced by the parser.
//
// Every node exclusively owns its children: a node is never reachable through
// two paths and never its own descendant. Setters that take lists copy them,
// and setters that take required children reject nil by panicking with a
// *ContractError, since such calls are programming errors rather than bad
// input.
//
// Trees are traversed with a Visitor (see Walk), which may replace the node
// it is visiting through the Replacer it is handed. Nodes compare
// structurally with Equal and are deep-copied with Clone; source spans take
// part in neither.
package ast

import (
	"fmt"
	"reflect"

	"github.com/dhamidi/jpp/java/token"
)

type Kind int

const (
	KindLiteral Kind = iota
	KindName
	KindFieldAccess
	KindMethodCall
	KindArrayAccess
	KindUnary
	KindPostfix
	KindBinary
	KindAssignment
	KindConditional
	KindCast
	KindLambda

	KindBlock
	KindExpressionStatement
	KindReturnStatement
	KindLocalVariable
	KindIfStatement

	KindType
	KindFormalParameter
	KindInformalParameter
)

var kindNames = map[Kind]string{
	KindLiteral:             "Literal",
	KindName:                "Name",
	KindFieldAccess:         "FieldAccess",
	KindMethodCall:          "MethodCall",
	KindArrayAccess:         "ArrayAccess",
	KindUnary:               "Unary",
	KindPostfix:             "Postfix",
	KindBinary:              "Binary",
	KindAssignment:          "Assignment",
	KindConditional:         "Conditional",
	KindCast:                "Cast",
	KindLambda:              "Lambda",
	KindBlock:               "Block",
	KindExpressionStatement: "ExpressionStatement",
	KindReturnStatement:     "ReturnStatement",
	KindLocalVariable:       "LocalVariable",
	KindIfStatement:         "IfStatement",
	KindType:                "Type",
	KindFormalParameter:     "FormalParameter",
	KindInformalParameter:   "InformalParameter",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Node is implemented by every syntax tree element.
type Node interface {
	Kind() Kind
	Span() token.Span
	SetSpan(token.Span)

	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Node

	// Equal reports whether other has the same kind and structurally equal
	// children.
	Equal(other Node) bool

	// Accept calls the visit method for the node's kind and, if it returns
	// true, visits the node's children in order.
	Accept(v Visitor, parent Node, replace Replacer)
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	Precedence() Precedence
	exprNode()
}

// Statement is a Node that can appear in a block.
type Statement interface {
	Node
	stmtNode()
}

type node struct {
	span token.Span
}

func (n *node) Span() token.Span      { return n.span }
func (n *node) SetSpan(s token.Span) { n.span = s }

// ContractError is the panic value for calls that would violate a node
// invariant: nil required children, an Either with no arm, or a replacement
// node of the wrong kind.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("ast: %s: %s", e.Op, e.Reason)
}

func violation(op, format string, args ...any) {
	panic(&ContractError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

// isNil reports whether v is nil or a typed nil pointer, map, func or
// interface. Nil slices are not considered nil: they are empty lists.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func require[T any](op string, v T) T {
	if isNil(v) {
		violation(op, "required child is nil")
	}
	return v
}

// Equal reports whether a and b are structurally equal, treating two nil
// nodes as equal.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return a.Equal(b)
}

// Clone deep-copies n, preserving its static type.
func Clone[T Node](n T) T {
	if isNil(n) {
		return n
	}
	return n.Clone().(T)
}

func cloneList[T Node](list []T) []T {
	out := make([]T, len(list))
	for i, n := range list {
		out[i] = Clone(n)
	}
	return out
}

func equalList[T Node](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func copyList[T Node](op string, list []T) []T {
	out := make([]T, len(list))
	for i, n := range list {
		out[i] = require(op, n)
	}
	return out
}
