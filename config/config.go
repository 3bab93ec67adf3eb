// Package config holds the YAML-based run configuration and loads the rule
// file read by the asjfilter and asjverify commands. Those commands take
// their settings from Default; none of the commands calls Load.
package config

import (
	"fmt"
	"os"

	"github.com/leskin-in/mipt-asj/rule"
	"gopkg.in/yaml.v2"
)

// Config is the on-disk run configuration.
type Config struct {
	// Delimiter splits a row into tokens. Defaults to a single space.
	Delimiter string `yaml:"delimiter"`
	// DefaultExactness is used by commands that do not receive an
	// explicit -exactness flag.
	DefaultExactness float64 `yaml:"default_exactness"`
	// RulesFile points at a YAML file of abbreviation rules, loaded
	// separately via LoadRules.
	RulesFile string `yaml:"rules_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Delimiter:        " ",
		DefaultExactness: 0.8,
		RulesFile:        "",
	}
}

// Load reads and parses a YAML configuration file. Unset fields keep
// Default's values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = " "
	}
	return cfg, nil
}

// ruleFile is the on-disk shape of a rules YAML document: a flat list of
// abbreviation/full pairs.
type ruleFile struct {
	Rules []struct {
		Abbr string `yaml:"abbr"`
		Full string `yaml:"full"`
	} `yaml:"rules"`
}

// LoadRules reads a rule file in the format:
//
//	rules:
//	  - abbr: ny
//	    full: new york
func LoadRules(path string) ([]rule.StringPairRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading rules %q: %w", path, err)
	}
	var doc ruleFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parsing rules %q: %w", path, err)
	}
	rows := make([]rule.StringPairRow, len(doc.Rules))
	for i, r := range doc.Rules {
		rows[i] = rule.StringPairRow{Abbr: r.Abbr, Full: r.Full}
	}
	return rows, nil
}
