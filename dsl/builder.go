package dsl

import (
	"fmt"
	"reflect"
	"regexp"

	paramval "github.com/paramval/paramval"
)

// Builder assembles a single Parameter. Methods return the receiver so
// declarations chain; construction problems accumulate and surface at Build.
type Builder struct {
	p          paramval.Parameter
	properties map[string]*Builder
	items      *Builder
	additional *Builder
	err        error
}

// Types creates a builder declaring one or more accepted types, in the
// order given (declaration order decides type-match ties).
func Types(types ...string) *Builder {
	return &Builder{p: paramval.Parameter{Type: types}}
}

// String declares a string parameter.
func String() *Builder { return Types(paramval.TypeString) }

// Integer declares an integer parameter.
func Integer() *Builder { return Types(paramval.TypeInteger) }

// Numeric declares a numeric parameter.
func Numeric() *Builder { return Types(paramval.TypeNumeric) }

// Bool declares a boolean parameter.
func Bool() *Builder { return Types(paramval.TypeBoolean) }

// Null declares a null parameter.
func Null() *Builder { return Types(paramval.TypeNull) }

// Any declares a parameter that accepts every value.
func Any() *Builder { return Types(paramval.TypeAny) }

// Object declares an object parameter.
func Object() *Builder { return Types(paramval.TypeObject) }

// Array declares an array parameter whose elements validate against items.
func Array(items *Builder) *Builder {
	b := Types(paramval.TypeArray)
	b.items = items
	return b
}

// Name sets the parameter name used in error paths.
func (b *Builder) Name(name string) *Builder {
	b.p.Name = name
	return b
}

// Required marks the parameter as required.
func (b *Builder) Required() *Builder {
	b.p.Required = true
	return b
}

// Default sets the value substituted for absent input.
func (b *Builder) Default(v any) *Builder {
	b.p.Default = v
	return b
}

// Static fixes the value: input is overridden and the subtree is not
// validated further.
func (b *Builder) Static(v any) *Builder {
	b.p.Static = true
	b.p.Default = v
	return b
}

// Describe attaches a description, appended to required-error messages.
func (b *Builder) Describe(desc string) *Builder {
	b.p.Description = desc
	return b
}

// Enum restricts string values to the given members.
func (b *Builder) Enum(values ...string) *Builder {
	b.p.Enum = values
	return b
}

// Pattern restricts string values to the given regular expression. A
// compile failure is reported by Build.
func (b *Builder) Pattern(expr string) *Builder {
	re, err := regexp.Compile(expr)
	if err != nil {
		b.fail(fmt.Errorf("dsl: invalid pattern %q: %w", expr, err))
		return b
	}
	b.p.Pattern = re
	return b
}

// Min sets the lower bound. Interpretation follows the resolved type; zero
// means unset.
func (b *Builder) Min(min float64) *Builder {
	b.p.Min = min
	return b
}

// Max sets the upper bound. Interpretation follows the resolved type; zero
// means unset.
func (b *Builder) Max(max float64) *Builder {
	b.p.Max = max
	return b
}

// InstanceOf restricts object values to the concrete type of sample.
func (b *Builder) InstanceOf(sample any) *Builder {
	if sample == nil {
		b.fail(fmt.Errorf("dsl: InstanceOf requires a non-nil sample"))
		return b
	}
	b.p.InstanceOf = reflect.TypeOf(sample)
	return b
}

// Filter attaches the post-validation transform.
func (b *Builder) Filter(fn paramval.FilterFunc) *Builder {
	b.p.Filter = fn
	return b
}

// Property declares a nested property schema. The child's name is taken
// from the key.
func (b *Builder) Property(name string, child *Builder) *Builder {
	if child == nil {
		b.fail(fmt.Errorf("dsl: nil property builder for %q", name))
		return b
	}
	if b.properties == nil {
		b.properties = map[string]*Builder{}
	}
	b.properties[name] = child
	return b
}

// Items declares the element schema for array values.
func (b *Builder) Items(child *Builder) *Builder {
	b.items = child
	return b
}

// AdditionalAllow accepts undeclared object keys unchecked (the default).
func (b *Builder) AdditionalAllow() *Builder {
	b.p.Additional = paramval.AdditionalAllow
	b.additional = nil
	return b
}

// AdditionalReject rejects undeclared object keys.
func (b *Builder) AdditionalReject() *Builder {
	b.p.Additional = paramval.AdditionalReject
	b.additional = nil
	return b
}

// Additional validates undeclared object keys against the given schema.
func (b *Builder) Additional(child *Builder) *Builder {
	if child == nil {
		b.fail(fmt.Errorf("dsl: nil additional-properties builder"))
		return b
	}
	b.p.Additional = paramval.AdditionalSchema
	b.additional = child
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build resolves nested builders and returns the finished Parameter.
func (b *Builder) Build() (*paramval.Parameter, error) {
	if b.err != nil {
		return nil, b.err
	}
	p := b.p
	if len(b.properties) > 0 {
		p.Properties = make(map[string]*paramval.Parameter, len(b.properties))
		for name, child := range b.properties {
			cp, err := child.Build()
			if err != nil {
				return nil, fmt.Errorf("dsl: property %q: %w", name, err)
			}
			cp.Name = name
			p.Properties[name] = cp
		}
	}
	if b.items != nil {
		items, err := b.items.Build()
		if err != nil {
			return nil, fmt.Errorf("dsl: items: %w", err)
		}
		p.Items = items
	}
	if b.additional != nil {
		add, err := b.additional.Build()
		if err != nil {
			return nil, fmt.Errorf("dsl: additional properties: %w", err)
		}
		p.AdditionalSchema = add
	}
	if p.Additional == paramval.AdditionalSchema && p.AdditionalSchema == nil {
		return nil, fmt.Errorf("dsl: additional-properties schema missing")
	}
	return &p, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *paramval.Parameter {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
