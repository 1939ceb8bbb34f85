package ast

// Replacer substitutes the node currently being visited inside its parent's
// slot. It may be called at most once. Calling it again, or with a node the
// slot cannot hold, panics with a *ContractError.
type Replacer func(Node)

// Visitor has one method per node kind. Each is called before the node's
// children and returns whether to descend into them. A replacement made
// through replace does not change which children are visited next: they
// are those of the node that was visited.
type Visitor interface {
	VisitLiteral(n *Literal, parent Node, replace Replacer) bool
	VisitName(n *Name, parent Node, replace Replacer) bool
	VisitFieldAccess(n *FieldAccess, parent Node, replace Replacer) bool
	VisitMethodCall(n *MethodCall, parent Node, replace Replacer) bool
	VisitArrayAccess(n *ArrayAccess, parent Node, replace Replacer) bool
	VisitUnary(n *Unary, parent Node, replace Replacer) bool
	VisitPostfix(n *Postfix, parent Node, replace Replacer) bool
	VisitBinary(n *Binary, parent Node, replace Replacer) bool
	VisitAssignment(n *Assignment, parent Node, replace Replacer) bool
	VisitConditional(n *Conditional, parent Node, replace Replacer) bool
	VisitCast(n *Cast, parent Node, replace Replacer) bool
	VisitLambda(n *Lambda, parent Node, replace Replacer) bool
	VisitBlock(n *Block, parent Node, replace Replacer) bool
	VisitExpressionStatement(n *ExpressionStatement, parent Node, replace Replacer) bool
	VisitReturnStatement(n *ReturnStatement, parent Node, replace Replacer) bool
	VisitLocalVariable(n *LocalVariable, parent Node, replace Replacer) bool
	VisitIfStatement(n *IfStatement, parent Node, replace Replacer) bool
	VisitType(n *Type, parent Node, replace Replacer) bool
	VisitFormalParameter(n *FormalParameter, parent Node, replace Replacer) bool
	VisitInformalParameter(n *InformalParameter, parent Node, replace Replacer) bool
}

// BaseVisitor descends everywhere. Embed it to override only some kinds.
type BaseVisitor struct{}

func (BaseVisitor) VisitLiteral(*Literal, Node, Replacer) bool         { return true }
func (BaseVisitor) VisitName(*Name, Node, Replacer) bool               { return true }
func (BaseVisitor) VisitFieldAccess(*FieldAccess, Node, Replacer) bool { return true }
func (BaseVisitor) VisitMethodCall(*MethodCall, Node, Replacer) bool   { return true }
func (BaseVisitor) VisitArrayAccess(*ArrayAccess, Node, Replacer) bool { return true }
func (BaseVisitor) VisitUnary(*Unary, Node, Replacer) bool             { return true }
func (BaseVisitor) VisitPostfix(*Postfix, Node, Replacer) bool         { return true }
func (BaseVisitor) VisitBinary(*Binary, Node, Replacer) bool           { return true }
func (BaseVisitor) VisitAssignment(*Assignment, Node, Replacer) bool   { return true }
func (BaseVisitor) VisitConditional(*Conditional, Node, Replacer) bool { return true }
func (BaseVisitor) VisitCast(*Cast, Node, Replacer) bool               { return true }
func (BaseVisitor) VisitLambda(*Lambda, Node, Replacer) bool           { return true }
func (BaseVisitor) VisitBlock(*Block, Node, Replacer) bool             { return true }
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement, Node, Replacer) bool {
	return true
}
func (BaseVisitor) VisitReturnStatement(*ReturnStatement, Node, Replacer) bool { return true }
func (BaseVisitor) VisitLocalVariable(*LocalVariable, Node, Replacer) bool     { return true }
func (BaseVisitor) VisitIfStatement(*IfStatement, Node, Replacer) bool         { return true }
func (BaseVisitor) VisitType(*Type, Node, Replacer) bool                       { return true }
func (BaseVisitor) VisitFormalParameter(*FormalParameter, Node, Replacer) bool { return true }
func (BaseVisitor) VisitInformalParameter(*InformalParameter, Node, Replacer) bool {
	return true
}

// Walk traverses root with v and returns the root, which differs from the
// argument if v replaced it.
func Walk(v Visitor, root Node) Node {
	if isNil(root) {
		return root
	}
	result := root
	replace := func(r Node) {
		if isNil(r) {
			violation("Walk", "replacement is nil")
		}
		result = r
	}
	root.Accept(v, nil, once(nil, replace))
	return result
}

// Inspect calls f for every node in pre-order, descending while f returns
// true.
func Inspect(root Node, f func(n, parent Node) bool) {
	Walk(&inspector{f: f}, root)
}

type inspector struct{ f func(n, parent Node) bool }

func (i *inspector) VisitLiteral(n *Literal, p Node, _ Replacer) bool         { return i.f(n, p) }
func (i *inspector) VisitName(n *Name, p Node, _ Replacer) bool               { return i.f(n, p) }
func (i *inspector) VisitFieldAccess(n *FieldAccess, p Node, _ Replacer) bool { return i.f(n, p) }
func (i *inspector) VisitMethodCall(n *MethodCall, p Node, _ Replacer) bool   { return i.f(n, p) }
func (i *inspector) VisitArrayAccess(n *ArrayAccess, p Node, _ Replacer) bool { return i.f(n, p) }
func (i *inspector) VisitUnary(n *Unary, p Node, _ Replacer) bool             { return i.f(n, p) }
func (i *inspector) VisitPostfix(n *Postfix, p Node, _ Replacer) bool         { return i.f(n, p) }
func (i *inspector) VisitBinary(n *Binary, p Node, _ Replacer) bool           { return i.f(n, p) }
func (i *inspector) VisitAssignment(n *Assignment, p Node, _ Replacer) bool   { return i.f(n, p) }
func (i *inspector) VisitConditional(n *Conditional, p Node, _ Replacer) bool { return i.f(n, p) }
func (i *inspector) VisitCast(n *Cast, p Node, _ Replacer) bool               { return i.f(n, p) }
func (i *inspector) VisitLambda(n *Lambda, p Node, _ Replacer) bool           { return i.f(n, p) }
func (i *inspector) VisitBlock(n *Block, p Node, _ Replacer) bool             { return i.f(n, p) }
func (i *inspector) VisitExpressionStatement(n *ExpressionStatement, p Node, _ Replacer) bool {
	return i.f(n, p)
}
func (i *inspector) VisitReturnStatement(n *ReturnStatement, p Node, _ Replacer) bool {
	return i.f(n, p)
}
func (i *inspector) VisitLocalVariable(n *LocalVariable, p Node, _ Replacer) bool {
	return i.f(n, p)
}
func (i *inspector) VisitIfStatement(n *IfStatement, p Node, _ Replacer) bool { return i.f(n, p) }
func (i *inspector) VisitType(n *Type, p Node, _ Replacer) bool               { return i.f(n, p) }
func (i *inspector) VisitFormalParameter(n *FormalParameter, p Node, _ Replacer) bool {
	return i.f(n, p)
}
func (i *inspector) VisitInformalParameter(n *InformalParameter, p Node, _ Replacer) bool {
	return i.f(n, p)
}

// expect converts a replacement for a child slot of parent to the slot's
// type.
func expect[T Node](parent Node, r Node) T {
	t, ok := r.(T)
	if !ok || isNil(r) {
		kind := "nil"
		if !isNil(r) {
			kind = r.Kind().String()
		}
		violation(parent.Kind().String()+".replace", "slot cannot hold %s", kind)
	}
	return t
}

// once wraps the replacer of one child slot of parent. A nil parent stands
// for the root slot of Walk.
func once(parent Node, replace func(Node)) Replacer {
	op := "Walk"
	if parent != nil {
		op = parent.Kind().String() + ".replace"
	}
	used := false
	return func(r Node) {
		if used {
			violation(op, "replacer called more than once")
		}
		used = true
		replace(r)
	}
}

func visitList[T Node](v Visitor, parent Node, list []T) {
	for i := range list {
		list[i].Accept(v, parent, once(parent, func(r Node) { list[i] = expect[T](parent, r) }))
	}
}
