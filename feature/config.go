package feature

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is the name looked up in the working directory when no
// configuration file is given explicitly.
const DefaultConfigFile = ".jpp.yaml"

// Config is the on-disk selection of features:
//
//	disable: ["*"]
//	enable:
//	  - literals.*
//	  - operators.power
//
// Disable patterns are applied before enable patterns.
type Config struct {
	Enable  []string `yaml:"enable"`
	Disable []string `yaml:"disable"`
}

// LoadConfig decodes a configuration document. An empty document yields an
// empty Config.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read feature config: %w", err)
	}
	cfg := &Config{}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("decode feature config: %w", err)
	}
	return cfg, nil
}

// ReadConfigFile loads the configuration at path. A missing file is
// reported as an error wrapping os.ErrNotExist.
func ReadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feature config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FindConfig loads DefaultConfigFile from the working directory if it exists
// and returns nil otherwise.
func FindConfig() (*Config, error) {
	cfg, err := ReadConfigFile(DefaultConfigFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return cfg, err
}

// Apply mutates s according to the configuration.
func (c *Config) Apply(s *Set) ([]Change, error) {
	if c == nil {
		return nil, nil
	}
	disabled, derr := s.Disable(c.Disable...)
	enabled, eerr := s.Enable(c.Enable...)
	return append(disabled, enabled...), errors.Join(derr, eerr)
}
