package ast

import (
	"errors"
	"strings"
	"testing"
)

func mustPanicContract(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", name)
		}
		err, ok := r.(error)
		var ce *ContractError
		if !ok || !errors.As(err, &ce) {
			t.Fatalf("%s: panic value %v is not a *ContractError", name, r)
		}
	}()
	f()
}

func sampleLambda() *Lambda {
	return NewLambda(
		InformalParameters(NewInformalParameter("x")),
		ExpressionBody(NewBinary(NewName("x"), "+", NewLiteral("1"))),
	)
}

func TestEither(t *testing.T) {
	e := First[string, int]("a")
	if !e.IsFirst() || e.IsSecond() || !e.Valid() {
		t.Fatalf("First: arms wrong")
	}
	if e.First() != "a" {
		t.Errorf("First() = %q, want %q", e.First(), "a")
	}
	mustPanicContract(t, "Second on first arm", func() { e.Second() })

	s := Second[string, int](3)
	if s.Second() != 3 || s.Value() != 3 {
		t.Errorf("Second() = %v, want 3", s.Second())
	}
	mustPanicContract(t, "First on second arm", func() { s.First() })

	var zero Either[string, int]
	if zero.Valid() {
		t.Errorf("zero either is valid")
	}
	mustPanicContract(t, "Match on zero", func() { zero.Match(func(string) {}, func(int) {}) })

	m := MapEither(s, func(a string) int { return len(a) }, func(b int) string { return strings.Repeat("z", b) })
	if !m.IsSecond() || m.Second() != "zzz" {
		t.Errorf("MapEither = %v, want second arm zzz", m.Value())
	}
}

func TestEitherRejectsNilPayload(t *testing.T) {
	mustPanicContract(t, "nil block", func() { BlockBody(nil) })
	mustPanicContract(t, "nil expression", func() { ExpressionBody(nil) })
	var lit *Literal
	mustPanicContract(t, "typed nil", func() { ExpressionBody(lit) })

	// A nil slice is an empty list, not an absent payload.
	p := First[[]*FormalParameter, []*InformalParameter](nil)
	if !p.Valid() || len(p.First()) != 0 {
		t.Errorf("nil slice payload rejected")
	}
}

func TestLambdaParametersAreCopied(t *testing.T) {
	params := []*InformalParameter{NewInformalParameter("a"), NewInformalParameter("b")}
	l := NewLambda(Second[[]*FormalParameter, []*InformalParameter](params), BlockBody(NewBlock()))

	params[0] = NewInformalParameter("changed")
	if got := l.Parameters().Second()[0].Name(); got != "a" {
		t.Errorf("parameter after external mutation = %q, want %q", got, "a")
	}

	mustPanicContract(t, "nil element", func() {
		InformalParameters(NewInformalParameter("a"), nil)
	})
	mustPanicContract(t, "zero parameters", func() {
		l.SetParameters(LambdaParameters{})
	})
	mustPanicContract(t, "zero body", func() {
		l.SetBody(LambdaBody{})
	})
}

func TestSettersRejectNil(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"binary left", func() { NewBinary(nil, "+", NewLiteral("1")) }},
		{"binary op", func() { NewBinary(NewLiteral("1"), "?", NewLiteral("1")) }},
		{"unary op", func() { NewUnary("*", NewLiteral("1")) }},
		{"assignment op", func() { NewAssignment(NewName("a"), "==", NewLiteral("1")) }},
		{"cast type", func() { NewCast(nil, NewName("a")) }},
		{"field object", func() { NewFieldAccess(nil, "f", false) }},
		{"null-safe call without object", func() { NewMethodCall(nil, "m", nil, true) }},
		{"block element", func() { NewBlock(nil) }},
		{"if then", func() { NewIfStatement(NewName("c"), nil, nil) }},
		{"var without init", func() { NewLocalVariable(NewType("var", 0), "x", nil) }},
		{"empty name", func() { NewName("") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanicContract(t, tt.name, tt.f)
		})
	}
}

func TestOptionalChildren(t *testing.T) {
	r := NewReturnStatement(nil)
	if r.Value() != nil {
		t.Errorf("return value = %v, want nil", r.Value())
	}
	call := NewMethodCall(nil, "f", nil, false)
	if call.Object() != nil || len(call.Arguments()) != 0 {
		t.Errorf("bare call has object or arguments")
	}
	i := NewIfStatement(NewName("c"), NewBlock(), nil)
	if i.Otherwise() != nil {
		t.Errorf("else branch = %v, want nil", i.Otherwise())
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := NewLambda(
		FormalParameters(
			NewFormalParameter(false, NewType("int", 0), "x"),
			NewFormalParameter(true, NewType("int", 0), "y"),
		),
		BlockBody(NewBlock(
			NewReturnStatement(NewBinary(NewName("x"), "*", NewName("y"))),
		)),
	)
	c := Clone(orig)
	if c == orig {
		t.Fatalf("clone is the same pointer")
	}
	if !Equal(c, orig) {
		t.Fatalf("clone not structurally equal:\n%s\nvs\n%s", Dump(c), Dump(orig))
	}

	ret := c.Body().First().Statements()[0].(*ReturnStatement)
	ret.Value().(*Binary).SetRight(NewLiteral("2"))
	c.Parameters().First()[0].SetType(NewType("long", 0))

	if Equal(c, orig) {
		t.Errorf("mutating the clone changed equality with the original")
	}
	origRet := orig.Body().First().Statements()[0].(*ReturnStatement)
	if got := origRet.Value().(*Binary).Right().(*Name).Identifier(); got != "y" {
		t.Errorf("original right operand = %q, want y", got)
	}
	if got := orig.Parameters().First()[0].Type().Name(); got != "int" {
		t.Errorf("original parameter type = %q, want int", got)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"same literal", NewLiteral("1"), NewLiteral("1"), true},
		{"different literal", NewLiteral("1"), NewLiteral("2"), false},
		{"different kind", NewLiteral("x"), NewName("x"), false},
		{"different op", NewBinary(NewName("a"), "+", NewName("b")), NewBinary(NewName("a"), "-", NewName("b")), false},
		{"null-safe flag", NewFieldAccess(NewName("a"), "b", true), NewFieldAccess(NewName("a"), "b", false), false},
		{"parameter arm", NewLambda(FormalParameters(), BlockBody(NewBlock())), NewLambda(InformalParameters(), BlockBody(NewBlock())), false},
		{"body arm", NewLambda(InformalParameters(), BlockBody(NewBlock())), NewLambda(InformalParameters(), ExpressionBody(NewLiteral("0"))), false},
		{"lambda", sampleLambda(), sampleLambda(), true},
		{"optional else", NewIfStatement(NewName("c"), NewBlock(), nil), NewIfStatement(NewName("c"), NewBlock(), NewBlock()), false},
		{"both nil", nil, nil, true},
		{"one nil", NewLiteral("1"), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

type zeroToOne struct {
	BaseVisitor
	visited []string
}

func (v *zeroToOne) VisitLiteral(n *Literal, parent Node, replace Replacer) bool {
	v.visited = append(v.visited, n.Value())
	if n.Value() == "0" {
		replace(NewLiteral("1"))
		return false
	}
	return true
}

func TestVisitorReplacesLambdaBody(t *testing.T) {
	l := NewLambda(InformalParameters(NewInformalParameter("x")), ExpressionBody(NewLiteral("0")))
	v := &zeroToOne{}
	Walk(v, l)

	want := NewLambda(InformalParameters(NewInformalParameter("x")), ExpressionBody(NewLiteral("1")))
	if !Equal(l, want) {
		t.Errorf("after walk:\n%s\nwant:\n%s", Dump(l), Dump(want))
	}
	if len(v.visited) != 1 || v.visited[0] != "0" {
		t.Errorf("visited = %v, want [0]", v.visited)
	}
}

type renamer struct {
	BaseVisitor
	parents []Kind
}

func (v *renamer) VisitName(n *Name, parent Node, replace Replacer) bool {
	v.parents = append(v.parents, parent.Kind())
	replace(NewName(strings.ToUpper(n.Identifier())))
	return false
}

func TestVisitorReplacesListElements(t *testing.T) {
	call := NewMethodCall(NewName("out"), "println", []Expression{NewName("a"), NewLiteral("2"), NewName("b")}, false)
	block := NewBlock(NewExpressionStatement(call))
	v := &renamer{}
	Walk(v, block)

	args := call.Arguments()
	if args[0].(*Name).Identifier() != "A" || args[2].(*Name).Identifier() != "B" {
		t.Errorf("arguments not replaced: %s", Dump(call))
	}
	if call.Object().(*Name).Identifier() != "OUT" {
		t.Errorf("receiver not replaced: %s", Dump(call))
	}
	want := []Kind{KindMethodCall, KindMethodCall, KindMethodCall}
	if len(v.parents) != len(want) {
		t.Fatalf("parents = %v, want %v", v.parents, want)
	}
	for i := range want {
		if v.parents[i] != want[i] {
			t.Errorf("parents[%d] = %v, want %v", i, v.parents[i], want[i])
		}
	}
}

type doubleReplacer struct {
	BaseVisitor
	kind Kind
}

func (v doubleReplacer) replaceTwice(n Node, replace Replacer) bool {
	if n.Kind() == v.kind {
		replace(NewName("first"))
		replace(NewName("second"))
	}
	return true
}

func (v doubleReplacer) VisitName(n *Name, parent Node, replace Replacer) bool {
	return v.replaceTwice(n, replace)
}

func (v doubleReplacer) VisitLiteral(n *Literal, parent Node, replace Replacer) bool {
	return v.replaceTwice(n, replace)
}

func (v doubleReplacer) VisitBinary(n *Binary, parent Node, replace Replacer) bool {
	return v.replaceTwice(n, replace)
}

func TestReplacerIsOneShot(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		root func() Node
	}{
		{"list element", KindName, func() Node {
			return NewMethodCall(nil, "f", []Expression{NewName("a")}, false)
		}},
		{"single slot", KindLiteral, func() Node {
			return NewUnary("-", NewLiteral("1"))
		}},
		{"lambda body", KindBinary, func() Node { return sampleLambda() }},
		{"walk root", KindName, func() Node { return NewName("root") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanicContract(t, tt.name, func() {
				Walk(doubleReplacer{kind: tt.kind}, tt.root())
			})
		})
	}
}

func TestReplacerFirstCallApplies(t *testing.T) {
	call := NewMethodCall(nil, "f", []Expression{NewName("a")}, false)
	func() {
		defer func() { recover() }()
		Walk(doubleReplacer{kind: KindName}, call)
	}()
	if got := call.Arguments()[0].(*Name).Identifier(); got != "first" {
		t.Errorf("argument = %q, want %q", got, "first")
	}
}

type bodyToBlock struct{ BaseVisitor }

func (bodyToBlock) VisitBinary(n *Binary, parent Node, replace Replacer) bool {
	if _, ok := parent.(*Lambda); ok {
		replace(NewBlock(NewReturnStatement(n)))
		return false
	}
	return true
}

func TestVisitorSwitchesBodyArm(t *testing.T) {
	l := sampleLambda()
	Walk(bodyToBlock{}, l)
	if !l.Body().IsFirst() {
		t.Fatalf("body arm not switched to block")
	}
	ret := l.Body().First().Statements()[0].(*ReturnStatement)
	if ret.Value().Kind() != KindBinary {
		t.Errorf("return value kind = %v, want Binary", ret.Value().Kind())
	}
}

type wrongKind struct{ BaseVisitor }

func (wrongKind) VisitInformalParameter(n *InformalParameter, parent Node, replace Replacer) bool {
	replace(NewFormalParameter(false, NewType("int", 0), n.Name()))
	return false
}

func TestVisitorWrongKindReplacementPanics(t *testing.T) {
	mustPanicContract(t, "formal into informal list", func() {
		Walk(wrongKind{}, sampleLambda())
	})
}

type rootReplacer struct{ BaseVisitor }

func (rootReplacer) VisitLiteral(n *Literal, parent Node, replace Replacer) bool {
	if parent == nil {
		replace(NewName("root"))
	}
	return false
}

func TestWalkReturnsReplacedRoot(t *testing.T) {
	got := Walk(rootReplacer{}, NewLiteral("1"))
	if !Equal(got, NewName("root")) {
		t.Errorf("Walk = %s, want Name root", Dump(got))
	}
}

func TestVisitOrder(t *testing.T) {
	n := NewConditional(
		NewName("c"),
		NewCast(NewType("int", 0), NewName("a")),
		NewLambda(FormalParameters(NewFormalParameter(false, NewType("T", 1), "p")), ExpressionBody(NewName("p"))),
	)
	var kinds []string
	Inspect(n, func(node, parent Node) bool {
		kinds = append(kinds, node.Kind().String())
		return true
	})
	want := "Conditional Name Cast Type Name Lambda FormalParameter Type Name"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestInspectPrunes(t *testing.T) {
	n := NewBinary(NewUnary("-", NewName("a")), "+", NewName("b"))
	var names []string
	Inspect(n, func(node, parent Node) bool {
		if name, ok := node.(*Name); ok {
			names = append(names, name.Identifier())
		}
		return node.Kind() != KindUnary
	})
	if len(names) != 1 || names[0] != "b" {
		t.Errorf("names = %v, want [b]", names)
	}
}

func TestDump(t *testing.T) {
	got := Dump(sampleLambda())
	want := "Lambda informal/1\n  InformalParameter x\n  Binary +\n    Name x\n    Literal 1\n"
	if got != want {
		t.Errorf("Dump =\n%s\nwant\n%s", got, want)
	}
}

func TestPrecedence(t *testing.T) {
	if !(PrecAssignment < PrecConditional && PrecMultiplicative < PrecPower && PrecPower < PrecUnary) {
		t.Errorf("precedence levels out of order")
	}
	if PrecPrimary.Next() != PrecPrimary {
		t.Errorf("Next does not saturate")
	}
	if p, ok := BinaryPrecedence("<<"); !ok || p != PrecShift {
		t.Errorf("BinaryPrecedence(<<) = %v, %v", p, ok)
	}
	if !RightAssociative("**") || RightAssociative("-") {
		t.Errorf("RightAssociative wrong")
	}
	if got := sampleLambda().Precedence(); got != PrecAssignment {
		t.Errorf("lambda precedence = %v, want Assignment", got)
	}
}
