// Package feature enumerates the optional syntax extensions understood by the
// tokenizer and parser, and tracks which of them are enabled for a parsing
// session.
//
// A Registry is a fixed catalog built once at startup. A Set is the mutable,
// per-session selection derived from a registry; it is passed explicitly to
// the lexer and parser and is not safe for concurrent use.
package feature

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jpp.feature")

// Identifiers of the features registered in Default.
const (
	NullSafe            = "expressions.null-safe"
	CollectionLiterals  = "literals.collections"
	OptionalLiterals    = "literals.optional"
	PowerOperator       = "operators.power"
	PrintStatements     = "statements.print"
	ArgumentAnnotations = "syntax.argument-annotations"
	TrailingArgComma    = "trailing-commas.argument"
	TrailingOtherComma  = "trailing-commas.other"
)

// Feature is a named, independently toggleable grammar extension.
// Two features are the same feature iff their ids are equal.
type Feature struct {
	id               string
	summary          string
	enabledByDefault bool
}

// New describes a feature. The id is validated when the feature is
// registered, not here.
func New(id string, enabledByDefault bool, summary string) Feature {
	return Feature{id: id, summary: summary, enabledByDefault: enabledByDefault}
}

func (f Feature) ID() string             { return f.id }
func (f Feature) Summary() string        { return f.summary }
func (f Feature) EnabledByDefault() bool { return f.enabledByDefault }

// Category returns the id up to and including its last dot, which is the
// prefix a "<category>.*" pattern matches against.
func (f Feature) Category() string {
	if i := strings.LastIndexByte(f.id, '.'); i >= 0 {
		return f.id[:i+1]
	}
	return ""
}

func (f Feature) String() string { return f.id }

// Registry is an immutable catalog of features, sorted by id.
type Registry struct {
	features []Feature
	byID     map[string]Feature
}

// NewRegistry validates and indexes the given features. Ids must be
// dot-segmented lowercase identifiers and must be unique.
func NewRegistry(features ...Feature) (*Registry, error) {
	r := &Registry{
		features: make([]Feature, 0, len(features)),
		byID:     make(map[string]Feature, len(features)),
	}
	for _, f := range features {
		if err := validateID(f.id); err != nil {
			return nil, err
		}
		if _, dup := r.byID[f.id]; dup {
			return nil, &ConfigError{Pattern: f.id, Reason: "registered twice"}
		}
		r.byID[f.id] = f
		r.features = append(r.features, f)
	}
	sort.Slice(r.features, func(i, j int) bool {
		return r.features[i].id < r.features[j].id
	})
	return r, nil
}

// MustRegistry is like NewRegistry but panics on an invalid catalog.
func MustRegistry(features ...Feature) *Registry {
	r, err := NewRegistry(features...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default is the catalog of extensions implemented by the parser.
var Default = MustRegistry(
	New(NullSafe, true, "null-safe member access a?.b"),
	New(CollectionLiterals, true, "list, set and map literals [a, b], {a, b} and {k: v}"),
	New(OptionalLiterals, true, "x? and ?<int> build Optionals, x! unwraps"),
	New(PowerOperator, false, "right-associative power operator a ** b"),
	New(PrintStatements, true, "println/print/printf statements"),
	New(ArgumentAnnotations, true, "labelled call arguments f(name: value)"),
	New(TrailingArgComma, true, "trailing comma in call arguments"),
	New(TrailingOtherComma, false, "trailing comma in parameter lists and print arguments"),
)

// All returns every registered feature sorted by id.
func (r *Registry) All() []Feature {
	out := make([]Feature, len(r.features))
	copy(out, r.features)
	return out
}

// IDs returns every registered id in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.features))
	for i, f := range r.features {
		ids[i] = f.id
	}
	return ids
}

func (r *Registry) Len() int { return len(r.features) }

func (r *Registry) Lookup(id string) (Feature, bool) {
	f, ok := r.byID[id]
	return f, ok
}

// Match resolves a pattern to the features it denotes: "*" matches all,
// "<prefix>.*" matches every id starting with "<prefix>.", anything else
// must equal an id. A well-formed pattern that matches nothing returns an
// empty slice and a nil error.
func (r *Registry) Match(pattern string) ([]Feature, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}
	if pattern == "*" {
		return r.All(), nil
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		var out []Feature
		for _, f := range r.features {
			if strings.HasPrefix(f.id, prefix) {
				out = append(out, f)
			}
		}
		return out, nil
	}
	if f, ok := r.byID[pattern]; ok {
		return []Feature{f}, nil
	}
	return nil, nil
}

// Defaults returns a new Set holding the features enabled by default.
func (r *Registry) Defaults() *Set {
	s := &Set{registry: r, enabled: make(map[string]bool)}
	for _, f := range r.features {
		if f.enabledByDefault {
			s.enabled[f.id] = true
		}
	}
	return s
}

// Empty returns a new Set with every feature disabled.
func (r *Registry) Empty() *Set {
	return &Set{registry: r, enabled: make(map[string]bool)}
}

func validateID(id string) error {
	if id == "" {
		return &ConfigError{Pattern: id, Reason: "empty feature id"}
	}
	if strings.Contains(id, "*") {
		return &ConfigError{Pattern: id, Reason: "feature id must not contain '*'"}
	}
	for _, seg := range strings.Split(id, ".") {
		if seg == "" {
			return &ConfigError{Pattern: id, Reason: "empty segment"}
		}
		if seg[0] < 'a' || seg[0] > 'z' {
			return &ConfigError{Pattern: id, Reason: fmt.Sprintf("segment %q must start with a lowercase letter", seg)}
		}
		for i := 0; i < len(seg); i++ {
			c := seg[i]
			if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' && c != '_' {
				return &ConfigError{Pattern: id, Reason: fmt.Sprintf("invalid character %q", c)}
			}
		}
	}
	return nil
}

func validatePattern(pattern string) error {
	if pattern == "*" {
		return nil
	}
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		if prefix == "" {
			return &ConfigError{Pattern: pattern, Reason: "wildcard needs a category before '.*'"}
		}
		return validateID(prefix)
	}
	if strings.Contains(pattern, "*") {
		return &ConfigError{Pattern: pattern, Reason: "'*' is only allowed as \"*\" or a trailing \".*\""}
	}
	return validateID(pattern)
}
