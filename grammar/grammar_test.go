package grammar

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/java/parser"
)

var validSources = []string{
	"int x = 1 + 2 * 3;",
	"var f = (int a, final String b) -> { return a; };",
	"f = x -> x ** 2;",
	"if (a) b(); else if (c) d(); else { e(); }",
	`println "sum:", a + b;`,
	`var m = ["k": 1, "j": 2,];`,
	"var l = [1, [2, 3], [:]];",
	`var s = {1, 2,}; var m = {"k": {}, "j": [3,]};`,
	"var i = (int) x?; var e = ?<long>; var d = y?<double>;",
	"double d = 1. + 1.e3 + 2.f;",
	"var o = name?; var e = ?; var v = o!;",
	"x = user?.address?.city();",
	"call(width: 10, height: 20,);",
	"long n = (long) -x + (Object) (y);",
	"a.b.c[0]++;",
	"c = flag ? 1.5e3 : .5;",
	"String[][] grid = null;",
	"char c = '\\n'; return;",
	"",
}

var invalidSources = []string{
	"int x = ;",
	"f(;",
	"if a) b();",
	"(int x, y) -> x;",
	"x = 1 +;",
	"[1, 2;",
	"return 1",
	"a ? b;",
	"var m = {1: 2, 3};",
	"var o = ?<String>;",
}

func allFeatures(t *testing.T) *feature.Set {
	t.Helper()
	s := feature.Default.Empty()
	if _, err := s.Enable("*"); err != nil {
		t.Fatal(err)
	}
	return s
}

func load(t *testing.T) ebnf.Grammar {
	t.Helper()
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return g
}

func TestLoad(t *testing.T) {
	g := load(t)
	for _, name := range []string{Start, SourceProduction, tokenProduction, whitespaceProduction} {
		if _, ok := g[name]; !ok {
			t.Errorf("grammar lacks production %s", name)
		}
	}
	if !strings.Contains(string(Source()), "Lambda = ") {
		t.Error("Source() does not contain the lambda production")
	}
}

func TestEveryFeatureHasProductions(t *testing.T) {
	g := load(t)
	for _, f := range feature.Default.All() {
		prods := Productions(f.ID())
		if len(prods) == 0 {
			t.Errorf("feature %s introduces no productions", f.ID())
		}
		for _, p := range prods {
			if _, ok := g[p]; !ok {
				t.Errorf("feature %s names unknown production %s", f.ID(), p)
			}
			if id, ok := FeatureOf(p); !ok || id != f.ID() {
				t.Errorf("FeatureOf(%s) = %q, %v; want %s", p, id, ok, f.ID())
			}
		}
	}
	for id := range featureProductions {
		if _, ok := feature.Default.Lookup(id); !ok {
			t.Errorf("production index names unregistered feature %s", id)
		}
	}
}

func TestGates(t *testing.T) {
	gates := Gates(feature.Default.Defaults())
	found := false
	for i, g := range gates {
		if i > 0 && gates[i-1].Production > g.Production {
			t.Errorf("gates not sorted: %s before %s", gates[i-1].Production, g.Production)
		}
		if g.Production == "PowerOperator" {
			found = true
			if g.Enabled {
				t.Error("PowerOperator should be disabled by default")
			}
		}
		if g.Production == "NullSafeSelector" && !g.Enabled {
			t.Error("NullSafeSelector should be enabled by default")
		}
	}
	if !found {
		t.Error("no gate for PowerOperator")
	}
	if _, ok := FeatureOf("Lambda"); ok {
		t.Error("Lambda is base syntax")
	}
}

// TestLexerAgreesWithParser checks the hand-written lexer against the
// lexical productions of the grammar.
func TestLexerAgreesWithParser(t *testing.T) {
	g := load(t)
	features := allFeatures(t)
	for _, src := range validSources {
		t.Run(src, func(t *testing.T) {
			lx, err := NewLexer(g, []byte(src), "")
			if err != nil {
				t.Fatal(err)
			}
			ref, err := lx.Tokenize()
			if err != nil {
				t.Fatalf("reference lexer: %v", err)
			}
			var want []string
			for _, tok := range ref[:len(ref)-1] {
				want = append(want, tok.Literal)
			}

			var got []string
			for tok, err := range parser.Tokenize([]byte(src), features).All() {
				if err != nil {
					t.Fatalf("parser lexer: %v", err)
				}
				if tok.Literal != "" {
					got = append(got, tok.Literal)
				}
			}

			if strings.Join(got, " ") != strings.Join(want, " ") {
				t.Errorf("got tokens %q, want %q", got, want)
			}
		})
	}
}

// TestRecognizeAgreesWithParser checks that the grammar and the parser
// accept and reject the same sources.
func TestRecognizeAgreesWithParser(t *testing.T) {
	g := load(t)
	features := allFeatures(t)
	parse := func(src string) error {
		_, err := parser.ParseStatements(strings.NewReader(src), parser.WithFeatures(features)).Finish()
		return err
	}

	for _, src := range validSources {
		t.Run("valid/"+src, func(t *testing.T) {
			if err := parse(src); err != nil {
				t.Errorf("parser rejects: %v", err)
			}
			if err := Recognize(g, []byte(src), SourceProduction); err != nil {
				t.Errorf("grammar rejects: %v", err)
			}
		})
	}
	for _, src := range invalidSources {
		t.Run("invalid/"+src, func(t *testing.T) {
			if err := parse(src); err == nil {
				t.Error("parser accepts")
			}
			err := Recognize(g, []byte(src), SourceProduction)
			if !errors.Is(err, ErrNoMatch) {
				t.Errorf("grammar: got %v, want ErrNoMatch", err)
			}
		})
	}
}

func TestRecognizeReportsPosition(t *testing.T) {
	err := Recognize(load(t), []byte("int x = ;"), SourceProduction)
	if err == nil || !strings.Contains(err.Error(), `1:9: unexpected ";"`) {
		t.Errorf("got %v, want a failure at 1:9", err)
	}
}
