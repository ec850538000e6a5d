package dut

import (
	"fmt"
	"sort"
	"strings"

	"github.com/approxware/errchar/params"
)

// AdderBuilder constructs an adder from validated parameters.
type AdderBuilder struct {
	Schema params.Schema
	Build  func(params.Values) (Adder, error)
}

// MultiplierBuilder constructs a multiplier from validated parameters.
type MultiplierBuilder struct {
	Schema params.Schema
	Build  func(params.Values) (Multiplier, error)
}

var (
	adders      = map[string]AdderBuilder{}
	multipliers = map[string]MultiplierBuilder{}
)

// RegisterAdder adds a named adder builder. Duplicate names panic at
// registration time.
func RegisterAdder(name string, b AdderBuilder) {
	if _, dup := adders[name]; dup {
		panic(fmt.Sprintf("adder %q registered twice", name))
	}
	adders[name] = b
}

// RegisterMultiplier adds a named multiplier builder.
func RegisterMultiplier(name string, b MultiplierBuilder) {
	if _, dup := multipliers[name]; dup {
		panic(fmt.Sprintf("multiplier %q registered twice", name))
	}
	multipliers[name] = b
}

// AdderNames lists the registered adder builders, sorted.
func AdderNames() []string {
	names := make([]string, 0, len(adders))
	for name := range adders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MultiplierNames lists the registered multiplier builders, sorted.
func MultiplierNames() []string {
	names := make([]string, 0, len(multipliers))
	for name := range multipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildAdder validates raw against the builder's schema and constructs the
// adder.
func BuildAdder(name string, raw map[string]any) (Adder, error) {
	b, ok := adders[name]
	if !ok {
		return nil, fmt.Errorf("unknown adder %q (registered: %s)", name, strings.Join(AdderNames(), ", "))
	}
	vals, err := b.Schema.Validate(raw)
	if err != nil {
		return nil, fmt.Errorf("adder %q parameters:\n%w", name, err)
	}
	return b.Build(vals)
}

// BuildMultiplier validates raw against the builder's schema and
// constructs the multiplier.
func BuildMultiplier(name string, raw map[string]any) (Multiplier, error) {
	b, ok := multipliers[name]
	if !ok {
		return nil, fmt.Errorf("unknown multiplier %q (registered: %s)", name, strings.Join(MultiplierNames(), ", "))
	}
	vals, err := b.Schema.Validate(raw)
	if err != nil {
		return nil, fmt.Errorf("multiplier %q parameters:\n%w", name, err)
	}
	return b.Build(vals)
}

func init() {
	RegisterAdder("exact", AdderBuilder{
		Schema: params.Schema{Fields: []params.Field{
			{Name: "width", Kind: params.Int},
		}},
		Build: func(v params.Values) (Adder, error) {
			return ExactAdder{W: v.Int("width")}, nil
		},
	})
	RegisterAdder("loa", AdderBuilder{
		Schema: params.Schema{Fields: []params.Field{
			{Name: "width", Kind: params.Int},
			{Name: "approxBits", Kind: params.Int},
		}},
		Build: func(v params.Values) (Adder, error) {
			return LOAAdder{W: v.Int("width"), ApproxBits: v.Int("approxBits")}, nil
		},
	})
	RegisterAdder("trunc", AdderBuilder{
		Schema: params.Schema{Fields: []params.Field{
			{Name: "width", Kind: params.Int},
			{Name: "cut", Kind: params.Int},
		}},
		Build: func(v params.Values) (Adder, error) {
			return TruncatedAdder{W: v.Int("width"), Cut: v.Int("cut")}, nil
		},
	})
	RegisterMultiplier("exact", MultiplierBuilder{
		Schema: params.Schema{Fields: []params.Field{
			{Name: "width", Kind: params.Int},
			{Name: "signed", Kind: params.Bool, Default: false},
		}},
		Build: func(v params.Values) (Multiplier, error) {
			w := v.Int("width")
			return ExactMultiplier{WA: w, WB: w, Signed: v.Bool("signed")}, nil
		},
	})
	RegisterMultiplier("trunc", MultiplierBuilder{
		Schema: params.Schema{Fields: []params.Field{
			{Name: "width", Kind: params.Int},
			{Name: "cut", Kind: params.Int},
			{Name: "signed", Kind: params.Bool, Default: false},
		}},
		Build: func(v params.Values) (Multiplier, error) {
			return TruncatedMultiplier{W: v.Int("width"), Cut: v.Int("cut"), Signed: v.Bool("signed")}, nil
		},
	})
}
