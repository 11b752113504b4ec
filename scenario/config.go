package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used by `plogic init` and `plogic run` when no
// path is given.
const DefaultConfigPath = ".plogic.yaml"

// Config is the contents of a scenario file.
type Config struct {
	Name        string             `yaml:"name"`
	Implication string             `yaml:"implication,omitempty"`
	Values      map[string]bool    `yaml:"values,omitempty"` // defaults for every statement
	Statements  []StatementConfig  `yaml:"statements"`
	Quantifiers []QuantifierConfig `yaml:"quantifiers,omitempty"`
	Agent       *AgentConfig       `yaml:"agent,omitempty"`
}

// StatementConfig is a statement evaluated against fixed values.
type StatementConfig struct {
	Name   string          `yaml:"name"`
	Expr   string          `yaml:"expr"`
	Values map[string]bool `yaml:"values"`
	Expect *bool           `yaml:"expect,omitempty"`
}

// QuantifierConfig checks a comparison predicate over an integer domain.
type QuantifierConfig struct {
	Name         string `yaml:"name"`
	Domain       []int  `yaml:"domain"`
	Predicate    string `yaml:"predicate"`
	ExpectForAll *bool  `yaml:"expect_forall,omitempty"`
	ExpectExists *bool  `yaml:"expect_exists,omitempty"`
}

// AgentConfig sets the agent's condition. A nil Condition means true.
type AgentConfig struct {
	Condition *bool  `yaml:"condition,omitempty"`
	Expect    string `yaml:"expect,omitempty"`
}

func boolPtr(b bool) *bool { return &b }

// DefaultConfig reproduces the classic examples: the four connectives,
// quantifiers over [1, 2, 3, -1, -2] with x > 0, and the default agent.
func DefaultConfig() Config {
	return Config{
		Name:        "plogic",
		Implication: "material",
		Statements: []StatementConfig{
			{Name: "conjunction", Expr: "A and B", Values: map[string]bool{"A": true, "B": false}, Expect: boolPtr(false)},
			{Name: "disjunction", Expr: "A or B", Values: map[string]bool{"A": true, "B": false}, Expect: boolPtr(true)},
			{Name: "negation", Expr: "not A", Values: map[string]bool{"A": true}, Expect: boolPtr(false)},
			{Name: "implication", Expr: "A => B", Values: map[string]bool{"A": true, "B": false}, Expect: boolPtr(false)},
		},
		Quantifiers: []QuantifierConfig{
			{
				Name:         "positive",
				Domain:       []int{1, 2, 3, -1, -2},
				Predicate:    "> 0",
				ExpectForAll: boolPtr(false),
				ExpectExists: boolPtr(true),
			},
		},
		Agent: &AgentConfig{Condition: boolPtr(true), Expect: "Take action A"},
	}
}

// ParseConfigurationFile reads and decodes a scenario file.
func ParseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decoding %s: %w", configurationPath, err)
	}

	return config, nil
}

// WriteConfigurationFile encodes config as YAML into configurationPath,
// replacing any existing file.
func WriteConfigurationFile(configurationPath string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
