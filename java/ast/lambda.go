package ast

// LambdaParameters is the parameter list of a lambda: typed formal
// parameters or untyped informal ones.
type LambdaParameters = Either[[]*FormalParameter, []*InformalParameter]

// LambdaBody is the body of a lambda: a block or a single expression.
type LambdaBody = Either[*Block, Expression]

func FormalParameters(params ...*FormalParameter) LambdaParameters {
	return First[[]*FormalParameter, []*InformalParameter](copyList("FormalParameters", params))
}

func InformalParameters(params ...*InformalParameter) LambdaParameters {
	return Second[[]*FormalParameter, []*InformalParameter](copyList("InformalParameters", params))
}

func BlockBody(b *Block) LambdaBody {
	return First[*Block, Expression](b)
}

func ExpressionBody(e Expression) LambdaBody {
	return Second[*Block, Expression](e)
}

// Lambda is params -> body.
type Lambda struct {
	node
	params LambdaParameters
	body   LambdaBody
}

func NewLambda(params LambdaParameters, body LambdaBody) *Lambda {
	n := &Lambda{}
	n.SetParameters(params)
	n.SetBody(body)
	return n
}

func (n *Lambda) Parameters() LambdaParameters { return n.params }
func (n *Lambda) Body() LambdaBody             { return n.body }
func (n *Lambda) Kind() Kind                   { return KindLambda }
func (n *Lambda) Precedence() Precedence       { return PrecAssignment }
func (n *Lambda) exprNode()                    {}

// ParameterCount returns the length of whichever parameter list is held.
func (n *Lambda) ParameterCount() int {
	if n.params.IsFirst() {
		return len(n.params.First())
	}
	return len(n.params.Second())
}

// SetParameters stores p with its list copied, so later changes to the
// caller's slice do not reach the node.
func (n *Lambda) SetParameters(p LambdaParameters) {
	if !p.Valid() {
		violation("Lambda.SetParameters", "either holds no value")
	}
	n.params = MapEither(p,
		func(l []*FormalParameter) []*FormalParameter { return copyList("Lambda.SetParameters", l) },
		func(l []*InformalParameter) []*InformalParameter { return copyList("Lambda.SetParameters", l) },
	)
}

func (n *Lambda) SetBody(b LambdaBody) {
	if !b.Valid() {
		violation("Lambda.SetBody", "either holds no value")
	}
	n.body = b
}

func (n *Lambda) SetBlockBody(b *Block)          { n.body = BlockBody(b) }
func (n *Lambda) SetExpressionBody(e Expression) { n.body = ExpressionBody(e) }

// replaceBody installs a visitor replacement in the body slot. Either arm
// is accepted since both are valid bodies.
func (n *Lambda) replaceBody(r Node) {
	switch r := r.(type) {
	case *Block:
		n.SetBlockBody(r)
	case Expression:
		n.SetExpressionBody(r)
	default:
		if isNil(r) {
			violation("Lambda.Body", "replacement is nil")
		}
		violation("Lambda.Body", "cannot replace body with %s", r.Kind())
	}
}

func (n *Lambda) Clone() Node {
	c := *n
	c.params = MapEither(n.params, cloneList[*FormalParameter], cloneList[*InformalParameter])
	c.body = MapEither(n.body, Clone[*Block], Clone[Expression])
	return &c
}

func (n *Lambda) Equal(other Node) bool {
	o, ok := other.(*Lambda)
	if !ok || o == nil {
		return false
	}
	if n.params.IsFirst() != o.params.IsFirst() || n.body.IsFirst() != o.body.IsFirst() {
		return false
	}
	if n.params.IsFirst() {
		if !equalList(n.params.First(), o.params.First()) {
			return false
		}
	} else if !equalList(n.params.Second(), o.params.Second()) {
		return false
	}
	if n.body.IsFirst() {
		return Equal(n.body.First(), o.body.First())
	}
	return Equal(n.body.Second(), o.body.Second())
}

// Accept visits the held parameter list element by element, then the body.
func (n *Lambda) Accept(v Visitor, parent Node, replace Replacer) {
	if !v.VisitLambda(n, parent, replace) {
		return
	}
	n.params.Match(
		func(l []*FormalParameter) { visitList(v, n, l) },
		func(l []*InformalParameter) { visitList(v, n, l) },
	)
	n.body.Match(
		func(b *Block) { b.Accept(v, n, once(n, n.replaceBody)) },
		func(e Expression) { e.Accept(v, n, once(n, n.replaceBody)) },
	)
}
