package ast

// Literal is a literal token kept in its source spelling, e.g. 42, 1.5f,
// "text", 'c', true or null.
type Literal struct {
	node
	value string
}

func NewLiteral(value string) *Literal {
	if value == "" {
		violation("NewLiteral", "empty literal")
	}
	return &Literal{value: value}
}

func (n *Literal) Value() string          { return n.value }
func (n *Literal) Kind() Kind             { return KindLiteral }
func (n *Literal) Precedence() Precedence { return PrecPrimary }
func (n *Literal) exprNode()              {}

func (n *Literal) Clone() Node {
	c := *n
	return &c
}

func (n *Literal) Equal(other Node) bool {
	o, ok := other.(*Literal)
	return ok && o != nil && o.value == n.value
}

func (n *Literal) Accept(v Visitor, parent Node, replace Replacer) {
	v.VisitLiteral(n, parent, replace)
}

// Name is a simple identifier in expression position. Qualified names are
// chains of FieldAccess.
type Name struct {
	node
	identifier string
}

func NewName(identifier string) *Name {
	if identifier == "" {
		violation("NewName", "empty identifier")
	}
	return &Name{identifier: identifier}
}

func (n *Name) Identifier() string     { return n.identifier }
func (n *Name) Kind() Kind             { return KindName }
func (n *Name) Precedence() Precedence { return PrecPrimary }
func (n *Name) exprNode()              {}

func (n *Name) Clone() Node {
	c := *n
	return &c
}

func (n *Name) Equal(other Node) bool {
	o, ok := other.(*Name)
	return ok && o != nil && o.identifier == n.identifier
}

func (n *Name) Accept(v Visitor, parent Node, replace Replacer) {
	v.VisitName(n, parent, replace)
}

// FieldAccess is object.name, or object?.name when null-safe.
type FieldAccess struct {
	node
	object   Expression
	name     string
	nullSafe bool
}

func NewFieldAccess(object Expression, name string, nullSafe bool) *FieldAccess {
	if name == "" {
		violation("NewFieldAccess", "empty name")
	}
	n := &FieldAccess{name: name, nullSafe: nullSafe}
	n.SetObject(object)
	return n
}

// QualifiedName builds the FieldAccess chain for a dotted name such as
// java.lang.System.out.
func QualifiedName(first string, rest ...string) Expression {
	var e Expression = NewName(first)
	for _, name := range rest {
		e = NewFieldAccess(e, name, false)
	}
	return e
}

func (n *FieldAccess) Object() Expression     { return n.object }
func (n *FieldAccess) Name() string           { return n.name }
func (n *FieldAccess) NullSafe() bool         { return n.nullSafe }
func (n *FieldAccess) Kind() Kind             { return KindFieldAccess }
func (n *FieldAccess) Precedence() Precedence { return PrecPrimary }
func (n *FieldAccess) exprNode()              {}

func (n *FieldAccess) SetObject(e Expression) {
	n.object = require("FieldAccess.SetObject", e)
}

func (n *FieldAccess) Clone() Node {
	c := *n
	c.object = Clone(n.object)
	return &c
}

func (n *FieldAccess) Equal(other Node) bool {
	o, ok := other.(*FieldAccess)
	return ok && o != nil && o.name == n.name && o.nullSafe == n.nullSafe &&
		Equal(n.object, o.object)
}

func (n *FieldAccess) Accept(v Visitor, parent Node, replace Replacer) {
	if v.VisitFieldAccess(n, parent, replace) {
		n.object.Accept(v, n, once(n, func(r Node) { n.SetObject(expect[Expression](n, r)) }))
	}
}

// MethodCall is [object.]name(args...). The object is optional.
type MethodCall struct {
	node
	object   Expression
	name     string
	args     []Expression
	nullSafe bool
}

func NewMethodCall(object Expression, name string, args []Expression, nullSafe bool) *MethodCall {
	if name == "" {
		violation("NewMethodCall", "empty name")
	}
	if nullSafe && isNil(object) {
		violation("NewMethodCall", "null-safe call without object")
	}
	n := &MethodCall{object: object, name: name, nullSafe: nullSafe}
	n.SetArguments(args)
	return n
}

func (n *MethodCall) Object() Expression      { return n.object }
func (n *MethodCall) Name() string            { return n.name }
func (n *MethodCall) NullSafe() bool          { return n.nullSafe }
func (n *MethodCall) Arguments() []Expression { return n.args }
func (n *MethodCall) Kind() Kind              { return KindMethodCall }
func (n *MethodCall) Precedence() Precedence  { return PrecPrimary }
func (n *MethodCall) exprNode()               {}

// SetObject sets or, with nil, clears the receiver expression.
func (n *MethodCall) SetObject(e Expression) {
	if isNil(e) {
		if n.nullSafe {
			violation("MethodCall.SetObject", "null-safe call without object")
		}
		n.object = nil
		return
	}
	n.object = e
}

// SetArguments stores a copy of args.
func (n *MethodCall) SetArguments(args []Expression) {
	n.args = copyList("MethodCall.SetArguments", args)
}

func (n *MethodCall) Clone() Node {
	c := *n
	if n.object != nil {
		c.object = Clone(n.object)
	}
	c.args = cloneList(n.args)
	return &c
}

func (n *MethodCall) Equal(other Node) bool {
	o, ok := other.(*MethodCall)
	return ok && o != nil && o.name == n.name && o.nullSafe == n.nullSafe &&
		Equal(n.object, o.object) && equalList(n.args, o.args)
}

func (n *MethodCall) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitMethodCall(n, parent, replace) {
		return
	}
	if n.object != nil {
		n.object.Accept(v, n, once(n, func(r Node) { n.SetObject(expect[Expression](n, r)) }))
	}
	visitList(v, n, n.args)
}

// ArrayAccess is array[index].
type ArrayAccess struct {
	node
	array Expression
	index Expression
}

func NewArrayAccess(array, index Expression) *ArrayAccess {
	n := &ArrayAccess{}
	n.SetArray(array)
	n.SetIndex(index)
	return n
}

func (n *ArrayAccess) Array() Expression      { return n.array }
func (n *ArrayAccess) Index() Expression      { return n.index }
func (n *ArrayAccess) Kind() Kind             { return KindArrayAccess }
func (n *ArrayAccess) Precedence() Precedence { return PrecPrimary }
func (n *ArrayAccess) exprNode()              {}

func (n *ArrayAccess) SetArray(e Expression) { n.array = require("ArrayAccess.SetArray", e) }
func (n *ArrayAccess) SetIndex(e Expression) { n.index = require("ArrayAccess.SetIndex", e) }

func (n *ArrayAccess) Clone() Node {
	c := *n
	c.array = Clone(n.array)
	c.index = Clone(n.index)
	return &c
}

func (n *ArrayAccess) Equal(other Node) bool {
	o, ok := other.(*ArrayAccess)
	return ok && o != nil && Equal(n.array, o.array) && Equal(n.index, o.index)
}

func (n *ArrayAccess) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitArrayAccess(n, parent, replace) {
		return
	}
	n.array.Accept(v, n, once(n, func(r Node) { n.SetArray(expect[Expression](n, r)) }))
	n.index.Accept(v, n, once(n, func(r Node) { n.SetIndex(expect[Expression](n, r)) }))
}

// Unary is a prefix operator applied to an operand: + - ! ~ ++ --.
type Unary struct {
	node
	op      string
	operand Expression
}

func NewUnary(op string, operand Expression) *Unary {
	if !unaryOps[op] {
		violation("NewUnary", "unknown operator %q", op)
	}
	n := &Unary{op: op}
	n.SetOperand(operand)
	return n
}

func (n *Unary) Op() string             { return n.op }
func (n *Unary) Operand() Expression    { return n.operand }
func (n *Unary) Kind() Kind             { return KindUnary }
func (n *Unary) Precedence() Precedence { return PrecUnary }
func (n *Unary) exprNode()              {}

func (n *Unary) SetOperand(e Expression) { n.operand = require("Unary.SetOperand", e) }

func (n *Unary) Clone() Node {
	c := *n
	c.operand = Clone(n.operand)
	return &c
}

func (n *Unary) Equal(other Node) bool {
	o, ok := other.(*Unary)
	return ok && o != nil && o.op == n.op && Equal(n.operand, o.operand)
}

func (n *Unary) Accept(v Visitor, parent Node, replace Replacer) {
	if v.VisitUnary(n, parent, replace) {
		n.operand.Accept(v, n, once(n, func(r Node) { n.SetOperand(expect[Expression](n, r)) }))
	}
}

// Postfix is operand++ or operand--.
type Postfix struct {
	node
	op      string
	operand Expression
}

func NewPostfix(operand Expression, op string) *Postfix {
	if op != "++" && op != "--" {
		violation("NewPostfix", "unknown operator %q", op)
	}
	n := &Postfix{op: op}
	n.SetOperand(operand)
	return n
}

func (n *Postfix) Op() string             { return n.op }
func (n *Postfix) Operand() Expression    { return n.operand }
func (n *Postfix) Kind() Kind             { return KindPostfix }
func (n *Postfix) Precedence() Precedence { return PrecPostfix }
func (n *Postfix) exprNode()              {}

func (n *Postfix) SetOperand(e Expression) { n.operand = require("Postfix.SetOperand", e) }

func (n *Postfix) Clone() Node {
	c := *n
	c.operand = Clone(n.operand)
	return &c
}

func (n *Postfix) Equal(other Node) bool {
	o, ok := other.(*Postfix)
	return ok && o != nil && o.op == n.op && Equal(n.operand, o.operand)
}

func (n *Postfix) Accept(v Visitor, parent Node, replace Replacer) {
	if v.VisitPostfix(n, parent, replace) {
		n.operand.Accept(v, n, once(n, func(r Node) { n.SetOperand(expect[Expression](n, r)) }))
	}
}

// Binary is left op right for every infix operator in BinaryPrecedence.
type Binary struct {
	node
	op    string
	left  Expression
	right Expression
}

func NewBinary(left Expression, op string, right Expression) *Binary {
	if _, ok := binaryPrecedence[op]; !ok {
		violation("NewBinary", "unknown operator %q", op)
	}
	n := &Binary{op: op}
	n.SetLeft(left)
	n.SetRight(right)
	return n
}

func (n *Binary) Op() string            { return n.op }
func (n *Binary) Left() Expression      { return n.left }
func (n *Binary) Right() Expression     { return n.right }
func (n *Binary) Kind() Kind            { return KindBinary }
func (n *Binary) exprNode()             {}
func (n *Binary) SetLeft(e Expression)  { n.left = require("Binary.SetLeft", e) }
func (n *Binary) SetRight(e Expression) { n.right = require("Binary.SetRight", e) }

func (n *Binary) Precedence() Precedence {
	return binaryPrecedence[n.op]
}

func (n *Binary) Clone() Node {
	c := *n
	c.left = Clone(n.left)
	c.right = Clone(n.right)
	return &c
}

func (n *Binary) Equal(other Node) bool {
	o, ok := other.(*Binary)
	return ok && o != nil && o.op == n.op && Equal(n.left, o.left) && Equal(n.right, o.right)
}

func (n *Binary) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitBinary(n, parent, replace) {
		return
	}
	n.left.Accept(v, n, once(n, func(r Node) { n.SetLeft(expect[Expression](n, r)) }))
	n.right.Accept(v, n, once(n, func(r Node) { n.SetRight(expect[Expression](n, r)) }))
}

// Assignment is target op value for = and the compound assignment operators.
type Assignment struct {
	node
	op     string
	target Expression
	value  Expression
}

func NewAssignment(target Expression, op string, value Expression) *Assignment {
	if !assignmentOps[op] {
		violation("NewAssignment", "unknown operator %q", op)
	}
	n := &Assignment{op: op}
	n.SetTarget(target)
	n.SetValue(value)
	return n
}

func (n *Assignment) Op() string             { return n.op }
func (n *Assignment) Target() Expression     { return n.target }
func (n *Assignment) Value() Expression      { return n.value }
func (n *Assignment) Kind() Kind             { return KindAssignment }
func (n *Assignment) Precedence() Precedence { return PrecAssignment }
func (n *Assignment) exprNode()              {}

func (n *Assignment) SetTarget(e Expression) { n.target = require("Assignment.SetTarget", e) }
func (n *Assignment) SetValue(e Expression)  { n.value = require("Assignment.SetValue", e) }

func (n *Assignment) Clone() Node {
	c := *n
	c.target = Clone(n.target)
	c.value = Clone(n.value)
	return &c
}

func (n *Assignment) Equal(other Node) bool {
	o, ok := other.(*Assignment)
	return ok && o != nil && o.op == n.op && Equal(n.target, o.target) && Equal(n.value, o.value)
}

func (n *Assignment) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitAssignment(n, parent, replace) {
		return
	}
	n.target.Accept(v, n, once(n, func(r Node) { n.SetTarget(expect[Expression](n, r)) }))
	n.value.Accept(v, n, once(n, func(r Node) { n.SetValue(expect[Expression](n, r)) }))
}

// Conditional is condition ? then : otherwise.
type Conditional struct {
	node
	condition Expression
	then      Expression
	otherwise Expression
}

func NewConditional(condition, then, otherwise Expression) *Conditional {
	n := &Conditional{}
	n.SetCondition(condition)
	n.SetThen(then)
	n.SetOtherwise(otherwise)
	return n
}

func (n *Conditional) Condition() Expression  { return n.condition }
func (n *Conditional) Then() Expression       { return n.then }
func (n *Conditional) Otherwise() Expression  { return n.otherwise }
func (n *Conditional) Kind() Kind             { return KindConditional }
func (n *Conditional) Precedence() Precedence { return PrecConditional }
func (n *Conditional) exprNode()              {}

func (n *Conditional) SetCondition(e Expression) { n.condition = require("Conditional.SetCondition", e) }
func (n *Conditional) SetThen(e Expression)      { n.then = require("Conditional.SetThen", e) }
func (n *Conditional) SetOtherwise(e Expression) { n.otherwise = require("Conditional.SetOtherwise", e) }

func (n *Conditional) Clone() Node {
	c := *n
	c.condition = Clone(n.condition)
	c.then = Clone(n.then)
	c.otherwise = Clone(n.otherwise)
	return &c
}

func (n *Conditional) Equal(other Node) bool {
	o, ok := other.(*Conditional)
	return ok && o != nil && Equal(n.condition, o.condition) &&
		Equal(n.then, o.then) && Equal(n.otherwise, o.otherwise)
}

func (n *Conditional) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitConditional(n, parent, replace) {
		return
	}
	n.condition.Accept(v, n, once(n, func(r Node) { n.SetCondition(expect[Expression](n, r)) }))
	n.then.Accept(v, n, once(n, func(r Node) { n.SetThen(expect[Expression](n, r)) }))
	n.otherwise.Accept(v, n, once(n, func(r Node) { n.SetOtherwise(expect[Expression](n, r)) }))
}

// Cast is (type) operand.
type Cast struct {
	node
	typ     *Type
	operand Expression
}

func NewCast(typ *Type, operand Expression) *Cast {
	n := &Cast{}
	n.SetType(typ)
	n.SetOperand(operand)
	return n
}

func (n *Cast) Type() *Type            { return n.typ }
func (n *Cast) Operand() Expression    { return n.operand }
func (n *Cast) Kind() Kind             { return KindCast }
func (n *Cast) Precedence() Precedence { return PrecUnary }
func (n *Cast) exprNode()              {}

func (n *Cast) SetType(t *Type)         { n.typ = require("Cast.SetType", t) }
func (n *Cast) SetOperand(e Expression) { n.operand = require("Cast.SetOperand", e) }

func (n *Cast) Clone() Node {
	c := *n
	c.typ = Clone(n.typ)
	c.operand = Clone(n.operand)
	return &c
}

func (n *Cast) Equal(other Node) bool {
	o, ok := other.(*Cast)
	return ok && o != nil && Equal(n.typ, o.typ) && Equal(n.operand, o.operand)
}

func (n *Cast) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitCast(n, parent, replace) {
		return
	}
	n.typ.Accept(v, n, once(n, func(r Node) { n.SetType(expect[*Type](n, r)) }))
	n.operand.Accept(v, n, once(n, func(r Node) { n.SetOperand(expect[Expression](n, r)) }))
}
