package feature

import (
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
disable: ["*"]
enable:
  - literals.*
  - operators.power
`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	s := Default.Defaults()
	if _, err := cfg.Apply(s); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "literals.collections,literals.optional,operators.power"
	if got := s.String(); got != want {
		t.Errorf("enabled = %q, want %q", got, want)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	s := Default.Defaults()
	before := s.String()
	cfg.Apply(s)
	if s.String() != before {
		t.Errorf("empty config changed the set: %q", s.String())
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("enabled: [x]\n"))
	if err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestNilConfigApply(t *testing.T) {
	var cfg *Config
	changes, err := cfg.Apply(Default.Defaults())
	if err != nil || changes != nil {
		t.Errorf("nil config Apply = %v, %v", changes, err)
	}
}
