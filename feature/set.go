package feature

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ConfigError reports a malformed feature id or pattern.
type ConfigError struct {
	Pattern string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid feature pattern %q: %s", e.Pattern, e.Reason)
}

// Outcome classifies the effect a pattern had on a Set.
type Outcome int

const (
	Enabled Outcome = iota
	Disabled
	AlreadyEnabled
	AlreadyDisabled
	EnabledAll
	DisabledAll
	NotFound
)

// Change is the report produced for one feature (or one pattern, for "*" and
// patterns that matched nothing) by Set.Enable and Set.Disable.
type Change struct {
	Pattern     string
	Feature     Feature
	Outcome     Outcome
	Suggestions []string
}

// Changed reports whether the Set was actually mutated.
func (c Change) Changed() bool {
	switch c.Outcome {
	case Enabled, Disabled, EnabledAll, DisabledAll:
		return true
	}
	return false
}

func (c Change) String() string {
	switch c.Outcome {
	case Enabled:
		return "Enabled " + c.Feature.id
	case Disabled:
		return "Disabled " + c.Feature.id
	case AlreadyEnabled:
		if c.Feature.id == "" {
			return "All features are already enabled"
		}
		return c.Feature.id + " is already enabled"
	case AlreadyDisabled:
		if c.Feature.id == "" {
			return "All features are already disabled"
		}
		return c.Feature.id + " is already disabled"
	case EnabledAll:
		return "Enabled all features"
	case DisabledAll:
		return "Disabled all features"
	case NotFound:
		msg := "No feature found matching '" + c.Pattern + "'"
		if len(c.Suggestions) > 0 {
			msg += " (did you mean " + strings.Join(c.Suggestions, ", ") + "?)"
		}
		return msg
	}
	return "unknown change"
}

// Set is the collection of currently enabled features. A nil *Set has every
// feature disabled, which reduces the parser to the base grammar.
type Set struct {
	registry *Registry
	enabled  map[string]bool
}

func (s *Set) Registry() *Registry { return s.registry }

// IsEnabled reports whether the feature with the given id is enabled.
func (s *Set) IsEnabled(id string) bool {
	if s == nil {
		return false
	}
	return s.enabled[id]
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.enabled)
}

// Enabled returns the enabled features sorted by id.
func (s *Set) Enabled() []Feature {
	return s.filter(true)
}

// Disabled returns the registered features that are not enabled, sorted by id.
func (s *Set) Disabled() []Feature {
	return s.filter(false)
}

func (s *Set) filter(want bool) []Feature {
	if s == nil {
		return nil
	}
	var out []Feature
	for _, f := range s.registry.features {
		if s.enabled[f.id] == want {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns an independent snapshot of s.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	c := &Set{registry: s.registry, enabled: make(map[string]bool, len(s.enabled))}
	for id := range s.enabled {
		c.enabled[id] = true
	}
	return c
}

// Clear disables every feature.
func (s *Set) Clear() {
	clear(s.enabled)
}

// Enable enables every feature matched by the patterns. Patterns that match
// nothing are reported with Outcome NotFound and do not stop the batch.
// Malformed patterns are skipped and returned joined in the error.
func (s *Set) Enable(patterns ...string) ([]Change, error) {
	return s.apply(patterns, true)
}

// Disable disables every feature matched by the patterns, with the same
// reporting rules as Enable.
func (s *Set) Disable(patterns ...string) ([]Change, error) {
	return s.apply(patterns, false)
}

func (s *Set) apply(patterns []string, enable bool) ([]Change, error) {
	var changes []Change
	var errs []error
	for _, pattern := range patterns {
		matched, err := s.registry.Match(pattern)
		if err != nil {
			log.Warningf("%s", err)
			errs = append(errs, err)
			continue
		}
		if len(matched) == 0 {
			log.Debugf("no feature matches %q", pattern)
			changes = append(changes, Change{
				Pattern:     pattern,
				Outcome:     NotFound,
				Suggestions: s.registry.Suggest(pattern),
			})
			continue
		}
		if pattern == "*" {
			changes = append(changes, s.setAll(enable))
			continue
		}
		for _, f := range matched {
			changes = append(changes, s.set(pattern, f, enable))
		}
	}
	return changes, errors.Join(errs...)
}

func (s *Set) set(pattern string, f Feature, enable bool) Change {
	c := Change{Pattern: pattern, Feature: f}
	switch {
	case enable && s.enabled[f.id]:
		c.Outcome = AlreadyEnabled
	case enable:
		s.enabled[f.id] = true
		c.Outcome = Enabled
	case !s.enabled[f.id]:
		c.Outcome = AlreadyDisabled
	default:
		delete(s.enabled, f.id)
		c.Outcome = Disabled
	}
	log.Debugf("%s", c)
	return c
}

func (s *Set) setAll(enable bool) Change {
	c := Change{Pattern: "*"}
	if enable {
		if len(s.enabled) == len(s.registry.features) {
			c.Outcome = AlreadyEnabled
			return c
		}
		for _, f := range s.registry.features {
			s.enabled[f.id] = true
		}
		c.Outcome = EnabledAll
	} else {
		if len(s.enabled) == 0 {
			c.Outcome = AlreadyDisabled
			return c
		}
		s.Clear()
		c.Outcome = DisabledAll
	}
	log.Debugf("%s", c)
	return c
}

// String lists the enabled ids, comma separated.
func (s *Set) String() string {
	var ids []string
	for _, f := range s.Enabled() {
		ids = append(ids, f.id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
