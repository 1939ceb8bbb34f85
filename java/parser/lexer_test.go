package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/java/token"
)

func withFeatures(t *testing.T, patterns ...string) *feature.Set {
	t.Helper()
	s := feature.Default.Empty()
	if len(patterns) > 0 {
		if _, err := s.Enable(patterns...); err != nil {
			t.Fatalf("Enable(%v): %v", patterns, err)
		}
	}
	return s
}

func kinds(t *testing.T, src string, features *feature.Set) []token.Kind {
	t.Helper()
	var got []token.Kind
	for tok, err := range Tokenize([]byte(src), features).All() {
		if err != nil {
			t.Fatalf("tokenize %q: %v", src, err)
		}
		got = append(got, tok.Kind)
	}
	return got
}

func equalKinds(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLexerTokenKinds(t *testing.T) {
	all := withFeatures(t, "*")
	tests := []struct {
		name     string
		input    string
		features *feature.Set
		want     []token.Kind
	}{
		{"empty", "", nil, []token.Kind{token.EOF}},
		{"keywords", "if else return final", nil, []token.Kind{token.If, token.Else, token.Return, token.Final, token.EOF}},
		{"contextual keywords", "var yield record", nil, []token.Kind{token.Var, token.Yield, token.Record, token.EOF}},
		{"identifiers", "foo _bar $baz über", nil, []token.Kind{token.Ident, token.Ident, token.Ident, token.Ident, token.EOF}},
		{"literals", `1 2.5 .5 'c' "s" true null`, nil, []token.Kind{
			token.IntLiteral, token.FloatLiteral, token.FloatLiteral, token.CharLiteral,
			token.StringLiteral, token.True, token.Null, token.EOF,
		}},
		{"comments skipped", "a /* b */ // c\n d", nil, []token.Kind{token.Ident, token.Ident, token.EOF}},
		{"shifts", "<< >> >>> >>>=", nil, []token.Kind{token.Shl, token.Shr, token.UShr, token.UShrAssign, token.EOF}},
		{"arrow", "x -> y", nil, []token.Kind{token.Ident, token.Arrow, token.Ident, token.EOF}},
		{"null-safe enabled", "a?.b", all, []token.Kind{token.Ident, token.QuestionDot, token.Ident, token.EOF}},
		{"null-safe disabled", "a?.b", nil, []token.Kind{token.Ident, token.Question, token.Dot, token.Ident, token.EOF}},
		{"question before fraction", "a?.5:1", all, []token.Kind{token.Ident, token.Question, token.FloatLiteral, token.Colon, token.IntLiteral, token.EOF}},
		{"trailing point", "1. 1.e3 1.f 1.5", nil, []token.Kind{token.FloatLiteral, token.FloatLiteral, token.FloatLiteral, token.FloatLiteral, token.EOF}},
		{"point before member", "1.x 1.equals", nil, []token.Kind{
			token.IntLiteral, token.Dot, token.Ident, token.IntLiteral, token.Dot, token.Ident, token.EOF,
		}},
		{"power enabled", "a ** b", all, []token.Kind{token.Ident, token.Power, token.Ident, token.EOF}},
		{"star assign", "a *= b", nil, []token.Kind{token.Ident, token.StarAssign, token.Ident, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kinds(t, tt.input, tt.features); !equalKinds(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexerFloatLiterals(t *testing.T) {
	tests := map[string]string{
		"1.;":     "1.",
		"1.e3;":   "1.e3",
		"1.E-3)":  "1.E-3",
		"2.d+1":   "2.d",
		"3.5f":    "3.5f",
		"1_000.0": "1_000.0",
	}
	for input, want := range tests {
		tok, err := Tokenize([]byte(input), nil).Next()
		if err != nil {
			t.Fatalf("%s: %v", input, err)
		}
		if tok.Kind != token.FloatLiteral || tok.Literal != want {
			t.Errorf("%s: got %s %q, want FloatLiteral %q", input, tok.Kind, tok.Literal, want)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	ts := Tokenize([]byte("a\n  bc"), nil, WithFile("x.jpp"))
	a, _ := ts.Next()
	bc, _ := ts.Next()

	if a.Span.Start.Line != 1 || a.Span.Start.Column != 1 {
		t.Errorf("a starts at %s, want 1:1", a.Span.Start)
	}
	if bc.Span.Start.Line != 2 || bc.Span.Start.Column != 3 {
		t.Errorf("bc starts at %s, want 2:3", bc.Span.Start)
	}
	if bc.Span.End.Column != 5 {
		t.Errorf("bc ends at column %d, want 5", bc.Span.End.Column)
	}
	if bc.Span.Start.File != "x.jpp" {
		t.Errorf("file = %q, want %q", bc.Span.Start.File, "x.jpp")
	}
	if bc.Literal != "bc" {
		t.Errorf("literal = %q, want %q", bc.Literal, "bc")
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		features   *feature.Set
		message    string
		incomplete bool
	}{
		{"power disabled", "a ** b", nil, "operator '**' requires feature operators.power", false},
		{"unterminated string", `"abc`, nil, "unterminated string literal", false},
		{"string cut by newline", "\"abc\nd\"", nil, "unterminated string literal", false},
		{"unterminated char", "'a", nil, "unterminated character literal", false},
		{"unterminated comment", "a /* b", nil, "unterminated comment", true},
		{"unterminated text block", `"""` + "\nabc", nil, "unterminated text block", true},
		{"unexpected character", "a # b", nil, `unexpected character "#"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			for _, e := range Tokenize([]byte(tt.input), tt.features).All() {
				err = e
			}
			var lexErr *LexicalError
			if !errors.As(err, &lexErr) {
				t.Fatalf("got %v, want *LexicalError", err)
			}
			if lexErr.Message != tt.message {
				t.Errorf("message = %q, want %q", lexErr.Message, tt.message)
			}
			if lexErr.Incomplete != tt.incomplete {
				t.Errorf("incomplete = %v, want %v", lexErr.Incomplete, tt.incomplete)
			}
			if !strings.Contains(err.Error(), "lexical error") {
				t.Errorf("Error() = %q, want it to mention a lexical error", err.Error())
			}
		})
	}
}

func TestPowerErrorSpan(t *testing.T) {
	_, err := ParseExpression(strings.NewReader("a ** b"), WithFeatures(nil)).Finish()
	span, ok := Span(err)
	if !ok {
		t.Fatalf("got %v, want an error with a span", err)
	}
	if span.Start.Column != 3 || span.End.Column != 5 {
		t.Errorf("span = %s, want columns 3-5", span)
	}
}

func TestTokenStreamConsumed(t *testing.T) {
	ts := Tokenize([]byte("a b"), nil)
	n := 0
	for _, err := range ts.All() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		n++
	}
	if n != 3 {
		t.Errorf("got %d tokens, want 3", n)
	}
	if _, err := ts.Next(); !errors.Is(err, ErrStreamConsumed) {
		t.Errorf("Next after EOF = %v, want ErrStreamConsumed", err)
	}

	ts = Tokenize([]byte("#"), nil)
	if _, err := ts.Next(); err == nil {
		t.Fatal("want a lexical error")
	}
	if _, err := ts.Next(); !errors.Is(err, ErrStreamConsumed) {
		t.Errorf("Next after error = %v, want ErrStreamConsumed", err)
	}
}

func TestTokenStreamCollectsComments(t *testing.T) {
	ts := Tokenize([]byte("a // one\n/* two */ b"), nil)
	for range ts.All() {
	}
	comments := ts.Comments()
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].Kind != token.LineComment || comments[1].Kind != token.Comment {
		t.Errorf("comment kinds = %v, %v", comments[0].Kind, comments[1].Kind)
	}
}
