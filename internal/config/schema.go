package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the root of a configuration file.
type File struct {
	Version  string         `yaml:"version" validate:"omitempty,oneof=1"`
	Defaults BuilderOptions `yaml:"defaults,omitempty"`
	Builders []Target       `yaml:"builders" validate:"dive"`
}

// BuilderOptions overrides generated names. Empty values are inherited.
type BuilderOptions struct {
	Suffix            string `yaml:"suffix,omitempty" validate:"omitempty,goident"`
	ConstructorPrefix string `yaml:"constructor_prefix,omitempty" validate:"omitempty,goident"`
	SetterPrefix      string `yaml:"setter_prefix,omitempty" validate:"omitempty,goident"`
	BuildMethod       string `yaml:"build_method,omitempty" validate:"omitempty,goident"`
}

// Target selects types by name or doublestar glob pattern.
type Target struct {
	Types          StringOrList `yaml:"type" validate:"required,min=1,dive,required,glob"`
	BuilderOptions `yaml:",inline"`
}

// StringOrList is a list of strings that may be written as a single scalar.
type StringOrList []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrList.
// Accepts either a single string or an array of strings.
func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrList{str}
		} else {
			*s = StringOrList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or list of strings", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrList.
// Outputs a single string if length is 1, otherwise a list.
func (s StringOrList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
