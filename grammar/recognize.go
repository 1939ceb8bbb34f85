package grammar

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/jpp/java/token"
)

// ErrNoMatch is returned by Recognize when the input is not derivable from
// the start production.
var ErrNoMatch = errors.New("input does not match grammar")

// Recognize reports whether src derives from the start production of g.
// Tokens come from the grammar's own Lexer; a lexical production name in a
// syntactic production matches a token of that kind, and a string matches
// a token with that literal. Reserved words never match identifier.
func Recognize(g ebnf.Grammar, src []byte, start string) error {
	lx, err := NewLexer(g, src, "")
	if err != nil {
		return err
	}
	tokens, err := lx.Tokenize()
	if err != nil {
		return err
	}
	tokens = tokens[:len(tokens)-1] // EOF

	r := &recognizer{
		grammar:  g,
		tokens:   tokens,
		memo:     make(map[memoKey][]int),
		visiting: make(map[memoKey]bool),
	}
	prod, ok := g[start]
	if !ok {
		return fmt.Errorf("no production %s", start)
	}
	for _, end := range r.match(prod.Expr, 0) {
		if end == len(tokens) {
			return nil
		}
	}
	if r.furthest < len(tokens) {
		return fmt.Errorf("%w: %s: unexpected %q", ErrNoMatch, tokens[r.furthest].Position, tokens[r.furthest].Literal)
	}
	return fmt.Errorf("%w: unexpected end of input", ErrNoMatch)
}

// recognizer computes, for an expression and a token index, every index at
// which a derivation of the expression can end. Results per production and
// index are memoized; the grammar has no left recursion.
type recognizer struct {
	grammar  ebnf.Grammar
	tokens   []Token
	memo     map[memoKey][]int
	visiting map[memoKey]bool
	furthest int
}

func (r *recognizer) match(expr ebnf.Expression, pos int) []int {
	switch e := expr.(type) {
	case nil:
		return []int{pos}

	case *ebnf.Token:
		if pos < len(r.tokens) && r.tokens[pos].Literal == e.String {
			return r.consume(pos)
		}
		return nil

	case ebnf.Sequence:
		ends := []int{pos}
		for _, item := range e {
			var next []int
			for _, p := range ends {
				next = append(next, r.match(item, p)...)
			}
			ends = dedupe(next)
			if len(ends) == 0 {
				return nil
			}
		}
		return ends

	case ebnf.Alternative:
		var ends []int
		for _, alt := range e {
			ends = append(ends, r.match(alt, pos)...)
		}
		return dedupe(ends)

	case *ebnf.Repetition:
		ends := []int{pos}
		frontier := []int{pos}
		seen := map[int]bool{pos: true}
		for len(frontier) > 0 {
			var next []int
			for _, p := range frontier {
				for _, q := range r.match(e.Body, p) {
					if !seen[q] {
						seen[q] = true
						next = append(next, q)
					}
				}
			}
			ends = append(ends, next...)
			frontier = next
		}
		return dedupe(ends)

	case *ebnf.Option:
		return dedupe(append([]int{pos}, r.match(e.Body, pos)...))

	case *ebnf.Group:
		return r.match(e.Body, pos)

	case *ebnf.Name:
		if isLexical(e.String) {
			if pos < len(r.tokens) && r.matchesKind(r.tokens[pos], e.String) {
				return r.consume(pos)
			}
			return nil
		}
		return r.matchName(e.String, pos)
	}
	return nil
}

func (r *recognizer) matchName(name string, pos int) []int {
	key := memoKey{name: name, offset: pos}
	if ends, ok := r.memo[key]; ok {
		return ends
	}
	if r.visiting[key] {
		return nil
	}
	prod, ok := r.grammar[name]
	if !ok {
		return nil
	}
	r.visiting[key] = true
	ends := r.match(prod.Expr, pos)
	delete(r.visiting, key)
	r.memo[key] = ends
	return ends
}

func (r *recognizer) consume(pos int) []int {
	if pos+1 > r.furthest {
		r.furthest = pos + 1
	}
	return []int{pos + 1}
}

func (r *recognizer) matchesKind(tok Token, kind string) bool {
	if tok.Kind != kind {
		return false
	}
	if kind != "identifier" {
		return true
	}
	switch token.LookupKeyword(tok.Literal) {
	case token.Ident, token.Var, token.Yield, token.Record:
		return true
	}
	return false
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

func dedupe(ends []int) []int {
	if len(ends) < 2 {
		return ends
	}
	sort.Ints(ends)
	out := ends[:1]
	for _, e := range ends[1:] {
		if e != out[len(out)-1] {
			out = append(out, e)
		}
	}
	return out
}
