// Package params declares construction parameters for circuit builders as an
// ordered schema of named, typed fields. Validation is eager and reports all
// missing or invalid fields in a single aggregated error.
package params

import (
	"errors"
	"fmt"
	"sort"
)

type Kind int

const (
	Int Kind = iota
	Bool
)

func (k Kind) String() string {
	if k == Int {
		return "int"
	}
	return "bool"
}

// Field is one named construction parameter. A nil Default marks the field
// required.
type Field struct {
	Name    string
	Kind    Kind
	Default any
}

// Schema is the ordered field list a builder accepts.
type Schema struct {
	Fields []Field
}

// Values holds validated parameter values keyed by field name.
type Values map[string]any

func (v Values) Int(name string) int {
	x, ok := v[name].(int)
	if !ok {
		panic(fmt.Sprintf("parameter %s is not a validated int", name))
	}
	return x
}

func (v Values) Bool(name string) bool {
	x, ok := v[name].(bool)
	if !ok {
		panic(fmt.Sprintf("parameter %s is not a validated bool", name))
	}
	return x
}

// Validate checks raw against the schema, applying defaults for absent
// optional fields. All violations are collected before returning, so the
// caller sees every missing, mistyped, and unknown field at once.
func (s Schema) Validate(raw map[string]any) (Values, error) {
	var errs []error
	vals := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		rv, ok := raw[f.Name]
		if !ok {
			if f.Default == nil {
				errs = append(errs, fmt.Errorf("missing required parameter %s (%s)", f.Name, f.Kind))
				continue
			}
			rv = f.Default
		}
		switch f.Kind {
		case Int:
			x, ok := rv.(int)
			if !ok {
				errs = append(errs, fmt.Errorf("parameter %s must be an int, got %T", f.Name, rv))
				continue
			}
			vals[f.Name] = x
		case Bool:
			x, ok := rv.(bool)
			if !ok {
				errs = append(errs, fmt.Errorf("parameter %s must be a bool, got %T", f.Name, rv))
				continue
			}
			vals[f.Name] = x
		}
	}
	var unknown []string
	for name := range raw {
		if !s.has(name) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		errs = append(errs, fmt.Errorf("unknown parameter %s", name))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return vals, nil
}

func (s Schema) has(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
