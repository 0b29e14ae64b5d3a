// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathplan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jongio/pathvar/envvar"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan indicates a plan document that cannot be applied.
var ErrInvalidPlan = errors.New("invalid plan")

// Plan is a set of edits to one environment variable.
type Plan struct {
	// Variable is the environment variable to edit. Empty means
	// envvar.PathVarName.
	Variable string `yaml:"variable,omitempty" json:"variable,omitempty"`
	// Remove lists entries to drop, matched exactly.
	Remove []string `yaml:"remove,omitempty" json:"remove,omitempty"`
	// Prepend lists entries to place, in order, before the existing ones.
	Prepend []string `yaml:"prepend,omitempty" json:"prepend,omitempty"`
	// Append lists entries to place, in order, after the existing ones.
	Append []string `yaml:"append,omitempty" json:"append,omitempty"`
}

// Parse decodes a plan from YAML. Unknown fields are rejected.
func Parse(data []byte) (*Plan, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var plan Plan
	if err := decoder.Decode(&plan); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidPlan)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// VariableName returns the variable the plan edits.
func (p *Plan) VariableName() string {
	if p.Variable == "" {
		return envvar.PathVarName
	}
	return p.Variable
}

// Validate checks that the variable name can be set in an environment.
// Entries are not checked; an entry that cannot be joined fails in Evaluate.
func (p *Plan) Validate() error {
	if strings.ContainsAny(p.Variable, "=\x00") {
		return fmt.Errorf("%w: variable name %q contains '=' or NUL", ErrInvalidPlan, p.Variable)
	}
	return nil
}

// IsEmpty reports whether the plan makes no edits.
func (p *Plan) IsEmpty() bool {
	return len(p.Remove) == 0 && len(p.Prepend) == 0 && len(p.Append) == 0
}

// Apply chains the plan's edits onto s.
func (p *Plan) Apply(s *envvar.Splitter) *envvar.Splitter {
	for _, entry := range p.Remove {
		s = s.Remove(entry)
	}
	return s.Prefix(p.Prepend...).Suffix(p.Append...)
}

// Evaluate reads the plan's variable from e, applies the edits and returns
// the joined result. An unset variable is treated as empty.
func (p *Plan) Evaluate(e envvar.Environment) (envvar.Var, error) {
	if err := p.Validate(); err != nil {
		return envvar.Var{}, err
	}

	name := p.VariableName()
	current, _ := envvar.LookupFrom(e, name)

	result, err := p.Apply(current.Split()).Join()
	if err != nil {
		return envvar.Var{}, fmt.Errorf("failed to evaluate plan for %s: %w", name, err)
	}
	return result, nil
}
