package ast

import "strings"

// Block is { statements... }.
type Block struct {
	node
	stmts []Statement
}

func NewBlock(stmts ...Statement) *Block {
	n := &Block{}
	n.SetStatements(stmts)
	return n
}

func (n *Block) Statements() []Statement { return n.stmts }
func (n *Block) IsEmpty() bool           { return len(n.stmts) == 0 }
func (n *Block) Kind() Kind              { return KindBlock }
func (n *Block) stmtNode()               {}

// SetStatements stores a copy of stmts.
func (n *Block) SetStatements(stmts []Statement) {
	n.stmts = copyList("Block.SetStatements", stmts)
}

func (n *Block) Clone() Node {
	c := *n
	c.stmts = cloneList(n.stmts)
	return &c
}

func (n *Block) Equal(other Node) bool {
	o, ok := other.(*Block)
	return ok && o != nil && equalList(n.stmts, o.stmts)
}

func (n *Block) Accept(v Visitor, parent Node, replace Replacer) {
	if v.VisitBlock(n, parent, replace) {
		visitList(v, n, n.stmts)
	}
}

type ExpressionStatement struct {
	node
	expr Expression
}

func NewExpressionStatement(e Expression) *ExpressionStatement {
	n := &ExpressionStatement{}
	n.SetExpression(e)
	return n
}

func (n *ExpressionStatement) Expression() Expression { return n.expr }
func (n *ExpressionStatement) Kind() Kind             { return KindExpressionStatement }
func (n *ExpressionStatement) stmtNode()              {}

func (n *ExpressionStatement) SetExpression(e Expression) {
	n.expr = require("ExpressionStatement.SetExpression", e)
}

func (n *ExpressionStatement) Clone() Node {
	c := *n
	c.expr = Clone(n.expr)
	return &c
}

func (n *ExpressionStatement) Equal(other Node) bool {
	o, ok := other.(*ExpressionStatement)
	return ok && o != nil && Equal(n.expr, o.expr)
}

func (n *ExpressionStatement) Accept(v Visitor, parent Node, replace Replacer) {
	if v.VisitExpressionStatement(n, parent, replace) {
		n.expr.Accept(v, n, once(n, func(r Node) { n.SetExpression(expect[Expression](n, r)) }))
	}
}

// ReturnStatement is return [value];.
type ReturnStatement struct {
	node
	value Expression
}

// NewReturnStatement builds a return; value may be nil.
func NewReturnStatement(value Expression) *ReturnStatement {
	n := &ReturnStatement{}
	n.SetValue(value)
	return n
}

func (n *ReturnStatement) Value() Expression { return n.value }
func (n *ReturnStatement) Kind() Kind        { return KindReturnStatement }
func (n *ReturnStatement) stmtNode()         {}

func (n *ReturnStatement) SetValue(e Expression) {
	if isNil(e) {
		n.value = nil
		return
	}
	n.value = e
}

func (n *ReturnStatement) Clone() Node {
	c := *n
	if n.value != nil {
		c.value = Clone(n.value)
	}
	return &c
}

func (n *ReturnStatement) Equal(other Node) bool {
	o, ok := other.(*ReturnStatement)
	return ok && o != nil && Equal(n.value, o.value)
}

func (n *ReturnStatement) Accept(v Visitor, parent Node, replace Replacer) {
	if v.VisitReturnStatement(n, parent, replace) && n.value != nil {
		n.value.Accept(v, n, once(n, func(r Node) { n.SetValue(expect[Expression](n, r)) }))
	}
}

// LocalVariable is type name [= init];.
type LocalVariable struct {
	node
	typ  *Type
	name string
	init Expression
}

// NewLocalVariable declares name with type typ; init may be nil.
func NewLocalVariable(typ *Type, name string, init Expression) *LocalVariable {
	if name == "" {
		violation("NewLocalVariable", "empty name")
	}
	n := &LocalVariable{name: name}
	n.SetType(typ)
	n.SetInit(init)
	return n
}

func (n *LocalVariable) Type() *Type      { return n.typ }
func (n *LocalVariable) Name() string     { return n.name }
func (n *LocalVariable) Init() Expression { return n.init }
func (n *LocalVariable) Kind() Kind       { return KindLocalVariable }
func (n *LocalVariable) stmtNode()        {}

func (n *LocalVariable) SetType(t *Type) { n.typ = require("LocalVariable.SetType", t) }

func (n *LocalVariable) SetInit(e Expression) {
	if isNil(e) {
		if n.typ != nil && n.typ.IsVar() {
			violation("LocalVariable.SetInit", "var declaration needs an initializer")
		}
		n.init = nil
		return
	}
	n.init = e
}

func (n *LocalVariable) Clone() Node {
	c := *n
	c.typ = Clone(n.typ)
	if n.init != nil {
		c.init = Clone(n.init)
	}
	return &c
}

func (n *LocalVariable) Equal(other Node) bool {
	o, ok := other.(*LocalVariable)
	return ok && o != nil && o.name == n.name && Equal(n.typ, o.typ) && Equal(n.init, o.init)
}

func (n *LocalVariable) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitLocalVariable(n, parent, replace) {
		return
	}
	n.typ.Accept(v, n, once(n, func(r Node) { n.SetType(expect[*Type](n, r)) }))
	if n.init != nil {
		n.init.Accept(v, n, once(n, func(r Node) { n.SetInit(expect[Expression](n, r)) }))
	}
}

// IfStatement is if (condition) then [else otherwise].
type IfStatement struct {
	node
	condition Expression
	then      Statement
	otherwise Statement
}

// NewIfStatement builds an if; otherwise may be nil.
func NewIfStatement(condition Expression, then, otherwise Statement) *IfStatement {
	n := &IfStatement{}
	n.SetCondition(condition)
	n.SetThen(then)
	n.SetOtherwise(otherwise)
	return n
}

func (n *IfStatement) Condition() Expression { return n.condition }
func (n *IfStatement) Then() Statement       { return n.then }
func (n *IfStatement) Otherwise() Statement  { return n.otherwise }
func (n *IfStatement) Kind() Kind            { return KindIfStatement }
func (n *IfStatement) stmtNode()             {}

func (n *IfStatement) SetCondition(e Expression) { n.condition = require("IfStatement.SetCondition", e) }
func (n *IfStatement) SetThen(s Statement)       { n.then = require("IfStatement.SetThen", s) }

func (n *IfStatement) SetOtherwise(s Statement) {
	if isNil(s) {
		n.otherwise = nil
		return
	}
	n.otherwise = s
}

func (n *IfStatement) Clone() Node {
	c := *n
	c.condition = Clone(n.condition)
	c.then = Clone(n.then)
	if n.otherwise != nil {
		c.otherwise = Clone(n.otherwise)
	}
	return &c
}

func (n *IfStatement) Equal(other Node) bool {
	o, ok := other.(*IfStatement)
	return ok && o != nil && Equal(n.condition, o.condition) &&
		Equal(n.then, o.then) && Equal(n.otherwise, o.otherwise)
}

func (n *IfStatement) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitIfStatement(n, parent, replace) {
		return
	}
	n.condition.Accept(v, n, once(n, func(r Node) { n.SetCondition(expect[Expression](n, r)) }))
	n.then.Accept(v, n, once(n, func(r Node) { n.SetThen(expect[Statement](n, r)) }))
	if n.otherwise != nil {
		n.otherwise.Accept(v, n, once(n, func(r Node) { n.SetOtherwise(expect[Statement](n, r)) }))
	}
}

// Type is a possibly qualified type name with array dimensions, such as
// int, java.util.List or String[][].
type Type struct {
	node
	name string
	dims int
}

func NewType(name string, dims int) *Type {
	if name == "" {
		violation("NewType", "empty name")
	}
	if dims < 0 {
		violation("NewType", "negative dimensions %d", dims)
	}
	return &Type{name: name, dims: dims}
}

func (n *Type) Name() string { return n.name }
func (n *Type) Dims() int    { return n.dims }
func (n *Type) Kind() Kind   { return KindType }

// IsVar reports whether the type is the inferred local variable type.
func (n *Type) IsVar() bool { return n.name == "var" && n.dims == 0 }

func (n *Type) String() string {
	return n.name + strings.Repeat("[]", n.dims)
}

func (n *Type) Clone() Node {
	c := *n
	return &c
}

func (n *Type) Equal(other Node) bool {
	o, ok := other.(*Type)
	return ok && o != nil && o.name == n.name && o.dims == n.dims
}

func (n *Type) Accept(v Visitor, parent Node, replace Replacer) {
	v.VisitType(n, parent, replace)
}

// FormalParameter is a typed lambda parameter: [final] type name.
type FormalParameter struct {
	node
	final bool
	typ   *Type
	name  string
}

func NewFormalParameter(final bool, typ *Type, name string) *FormalParameter {
	if name == "" {
		violation("NewFormalParameter", "empty name")
	}
	n := &FormalParameter{final: final, name: name}
	n.SetType(typ)
	return n
}

func (n *FormalParameter) Final() bool  { return n.final }
func (n *FormalParameter) Type() *Type  { return n.typ }
func (n *FormalParameter) Name() string { return n.name }
func (n *FormalParameter) Kind() Kind   { return KindFormalParameter }

func (n *FormalParameter) SetType(t *Type) { n.typ = require("FormalParameter.SetType", t) }

func (n *FormalParameter) Clone() Node {
	c := *n
	c.typ = Clone(n.typ)
	return &c
}

func (n *FormalParameter) Equal(other Node) bool {
	o, ok := other.(*FormalParameter)
	return ok && o != nil && o.final == n.final && o.name == n.name && Equal(n.typ, o.typ)
}

func (n *FormalParameter) Accept(v Visitor, parent Node, replace Replacer) {
	if v.VisitFormalParameter(n, parent, replace) {
		n.typ.Accept(v, n, once(n, func(r Node) { n.SetType(expect[*Type](n, r)) }))
	}
}

// InformalParameter is an untyped lambda parameter.
type InformalParameter struct {
	node
	name string
}

func NewInformalParameter(name string) *InformalParameter {
	if name == "" {
		violation("NewInformalParameter", "empty name")
	}
	return &InformalParameter{name: name}
}

func (n *InformalParameter) Name() string { return n.name }
func (n *InformalParameter) Kind() Kind   { return KindInformalParameter }

func (n *InformalParameter) Clone() Node {
	c := *n
	return &c
}

func (n *InformalParameter) Equal(other Node) bool {
	o, ok := other.(*InformalParameter)
	return ok && o != nil && o.name == n.name
}

func (n *InformalParameter) Accept(v Visitor, parent Node, replace Replacer) {
	v.VisitInformalParameter(n, parent, replace)
}
