// Package grammar holds the EBNF description of the Java dialect and indexes
// which of its productions each feature introduces.
//
// Upper-case productions are syntactic and lower-case ones lexical, as
// golang.org/x/exp/ebnf defines them. The grammar covers the whole dialect
// with every feature enabled; comments and text blocks are left out.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"github.com/tliron/commonlog"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/jpp/feature"
)

var log = commonlog.GetLogger("jpp.grammar")

//go:embed jpp.ebnf
var source []byte

const (
	// Start is the production every other production is reachable from.
	Start = "Grammar"
	// SourceProduction derives a sequence of statements.
	SourceProduction = "Source"
)

// Source returns the grammar text.
func Source() []byte {
	return bytes.Clone(source)
}

// Load parses and verifies the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("jpp.ebnf", bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	log.Debugf("loaded grammar with %d productions", len(g))
	return g, nil
}

var featureProductions = map[string][]string{
	feature.NullSafe:            {"NullSafeSelector"},
	feature.CollectionLiterals:  {"CollectionLiteral", "CollectionElements", "MapEntries", "MapEntry"},
	feature.OptionalLiterals:    {"OptionalMark", "OptionalType", "EmptyOptional", "Unwrap"},
	feature.PowerOperator:       {"PowerOperator"},
	feature.PrintStatements:     {"PrintStatement", "PrintKeyword", "PrintArguments"},
	feature.ArgumentAnnotations: {"ArgumentLabel"},
	feature.TrailingArgComma:    {"ArgumentTrailingComma"},
	feature.TrailingOtherComma:  {"ListTrailingComma"},
}

// Productions returns the productions introduced by the feature id.
func Productions(id string) []string {
	return append([]string(nil), featureProductions[id]...)
}

// FeatureOf returns the feature that introduces production, if any.
func FeatureOf(production string) (string, bool) {
	for id, prods := range featureProductions {
		for _, p := range prods {
			if p == production {
				return id, true
			}
		}
	}
	return "", false
}

// Gate ties a production to the feature that introduces it.
type Gate struct {
	Production string
	Feature    string
	Enabled    bool
}

// Gates lists every feature-gated production, sorted by name, with whether
// features enables it.
func Gates(features *feature.Set) []Gate {
	var gates []Gate
	for id, prods := range featureProductions {
		for _, p := range prods {
			gates = append(gates, Gate{Production: p, Feature: id, Enabled: features.IsEnabled(id)})
		}
	}
	sort.Slice(gates, func(i, j int) bool {
		return gates[i].Production < gates[j].Production
	})
	return gates
}
