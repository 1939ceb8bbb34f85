package feature

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(
		New("switch.arrow", true, ""),
		New("lambda.informal-params", true, ""),
		New("lambda.block-body", true, ""),
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func ids(features []Feature) []string {
	var out []string
	for _, f := range features {
		out = append(out, f.ID())
	}
	return out
}

func TestRegistryAllSorted(t *testing.T) {
	r := testRegistry(t)
	got := ids(r.All())
	want := []string{"lambda.block-body", "lambda.informal-params", "switch.arrow"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestRegistryRejectsInvalidIDs(t *testing.T) {
	tests := []string{
		"",
		"lambda.*",
		"*",
		"lambda..body",
		"Lambda.body",
		"lambda.body!",
		".lambda",
	}
	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			_, err := NewRegistry(New(id, true, ""))
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("NewRegistry(%q) error = %v, want *ConfigError", id, err)
			}
		})
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(New("a.b", true, ""), New("a.b", false, ""))
	if err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestDefaultRegistry(t *testing.T) {
	for _, id := range []string{
		NullSafe, CollectionLiterals, OptionalLiterals, PowerOperator,
		PrintStatements, ArgumentAnnotations, TrailingArgComma, TrailingOtherComma,
	} {
		if _, ok := Default.Lookup(id); !ok {
			t.Errorf("Default registry is missing %s", id)
		}
	}
	s := Default.Defaults()
	if s.IsEnabled(PowerOperator) {
		t.Error("operators.power should be disabled by default")
	}
	if !s.IsEnabled(PrintStatements) {
		t.Error("statements.print should be enabled by default")
	}
}

func TestWildcardDisable(t *testing.T) {
	s := testRegistry(t).Defaults()

	changes, err := s.Disable("lambda.*")
	if err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2: %v", len(changes), changes)
	}
	for _, c := range changes {
		if c.Outcome != Disabled {
			t.Errorf("%v: outcome %v, want Disabled", c.Feature, c.Outcome)
		}
	}
	if s.IsEnabled("lambda.informal-params") || s.IsEnabled("lambda.block-body") {
		t.Error("lambda.* features still enabled")
	}
	if !s.IsEnabled("switch.arrow") {
		t.Error("switch.arrow should be untouched")
	}

	if _, err := s.Disable("*"); err != nil {
		t.Fatalf("Disable(*): %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Disable(*), want 0", s.Len())
	}

	changes, _ = s.Enable("*")
	if len(changes) != 1 || changes[0].String() != "Enabled all features" {
		t.Errorf("Enable(*) reported %v", changes)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d after Enable(*), want 3", s.Len())
	}
}

func TestIdempotence(t *testing.T) {
	s := testRegistry(t).Defaults()
	before := s.String()

	changes, err := s.Enable("switch.arrow")
	if err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if len(changes) != 1 || changes[0].Outcome != AlreadyEnabled || changes[0].Changed() {
		t.Fatalf("Enable of enabled feature reported %v", changes)
	}
	if got := changes[0].String(); got != "switch.arrow is already enabled" {
		t.Errorf("String() = %q", got)
	}
	if s.String() != before {
		t.Errorf("set changed from %q to %q", before, s.String())
	}

	s.Disable("switch.arrow")
	changes, _ = s.Disable("switch.arrow")
	if changes[0].Outcome != AlreadyDisabled {
		t.Errorf("second Disable reported %v", changes[0].Outcome)
	}
}

func TestNoMatchReporting(t *testing.T) {
	s := testRegistry(t).Defaults()
	before := s.String()

	for _, pattern := range []string{"nonexistent.*", "nonexistent.id"} {
		changes, err := s.Enable(pattern)
		if err != nil {
			t.Fatalf("Enable(%q): %v", pattern, err)
		}
		if len(changes) != 1 || changes[0].Outcome != NotFound {
			t.Fatalf("Enable(%q) reported %v", pattern, changes)
		}
		if !strings.HasPrefix(changes[0].String(), "No feature found matching '"+pattern+"'") {
			t.Errorf("String() = %q", changes[0].String())
		}
	}
	if s.String() != before {
		t.Errorf("set mutated: %q -> %q", before, s.String())
	}
}

func TestNoMatchDoesNotStopBatch(t *testing.T) {
	s := testRegistry(t).Empty()
	changes, err := s.Enable("nope", "switch.arrow")
	if err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2", len(changes))
	}
	if !s.IsEnabled("switch.arrow") {
		t.Error("switch.arrow should be enabled after the no-match pattern")
	}
}

func TestMalformedPatternIsConfigError(t *testing.T) {
	s := testRegistry(t).Empty()
	changes, err := s.Enable("lambda*", "switch.arrow")
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *ConfigError", err)
	}
	if cerr.Pattern != "lambda*" {
		t.Errorf("Pattern = %q", cerr.Pattern)
	}
	if len(changes) != 1 || !s.IsEnabled("switch.arrow") {
		t.Errorf("valid pattern after malformed one was not applied: %v", changes)
	}
}

func TestEnabledDisabledSorted(t *testing.T) {
	s := testRegistry(t).Empty()
	s.Enable("switch.arrow", "lambda.informal-params")
	if got, want := ids(s.Enabled()), []string{"lambda.informal-params", "switch.arrow"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Enabled() = %v, want %v", got, want)
	}
	if got, want := ids(s.Disabled()), []string{"lambda.block-body"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Disabled() = %v, want %v", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := testRegistry(t).Defaults()
	c := s.Clone()
	c.Disable("*")
	if s.Len() != 3 {
		t.Errorf("original Len() = %d after mutating clone", s.Len())
	}
}

func TestNilSetIsBaseLanguage(t *testing.T) {
	var s *Set
	if s.IsEnabled(NullSafe) {
		t.Error("nil set reports a feature enabled")
	}
	if s.Len() != 0 {
		t.Error("nil set is not empty")
	}
}

func TestSuggest(t *testing.T) {
	got := Default.Suggest("operators.powr")
	if len(got) == 0 || got[0] != PowerOperator {
		t.Errorf("Suggest = %v, want %s first", got, PowerOperator)
	}
	s := Default.Defaults()
	changes, _ := s.Enable("operators.powr")
	if !strings.Contains(changes[0].String(), "did you mean operators.power?") {
		t.Errorf("String() = %q", changes[0].String())
	}
}

func TestCategory(t *testing.T) {
	if got := New("lambda.block-body", true, "").Category(); got != "lambda." {
		t.Errorf("Category() = %q", got)
	}
}
