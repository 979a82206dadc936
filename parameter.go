package paramval

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/mohae/deepcopy"
)

// FilterFunc post-processes a value that passed every check. It must be pure.
type FilterFunc func(v any) any

// Parameter is one node of a validation tree. It describes the expected
// shape, type, and constraints of a value; the Processor treats it as
// read-only. Construct parameters directly, through dsl builders, or by
// importing a serialized description with the descriptor package.
type Parameter struct {
	// Name is used only to extend the error path ("...[name]").
	Name string

	// Type lists the accepted types (Type* constants). Empty means no type
	// check is performed.
	Type []string

	Required    bool
	Static      bool
	Default     any
	Description string

	// Properties declares nested schemas for object values. Traversal uses
	// sorted key order so results are deterministic.
	Properties map[string]*Parameter

	// Items validates every element of array values.
	Items *Parameter

	// Additional governs object keys not declared in Properties.
	// AdditionalSchema must be set when the policy is AdditionalSchema.
	Additional       AdditionalPolicy
	AdditionalSchema *Parameter

	Enum    []string
	Pattern *regexp.Regexp

	// Min and Max are interpreted per resolved type: value bounds for
	// numbers, length for strings, element count for arrays. Zero means
	// unset, so an exact bound of zero cannot be expressed.
	Min float64
	Max float64

	// InstanceOf restricts object values to a concrete Go type.
	InstanceOf reflect.Type

	Filter FilterFunc
}

// GetValue implements default/static substitution: the static value always
// wins, an absent value picks up the default, anything else passes through.
// Composite defaults are deep-copied so the schema never aliases mutated
// value trees.
func (p *Parameter) GetValue(v any) any {
	if p.Static || (v == nil && p.Default != nil) {
		return deepcopy.Copy(p.Default)
	}
	return v
}

// FilterValue applies the filter hook, or returns v unchanged when none is
// set.
func (p *Parameter) FilterValue(v any) any {
	if p.Filter == nil {
		return v
	}
	return p.Filter(v)
}

// HasType reports whether t is one of the declared types.
func (p *Parameter) HasType(t string) bool {
	for _, dt := range p.Type {
		if dt == t {
			return true
		}
	}
	return false
}

// TypeString joins the declared types for use in messages.
func (p *Parameter) TypeString() string {
	return strings.Join(p.Type, " or ")
}

// isNullType reports whether the parameter declares exactly the null type,
// which exempts it from the required check.
func (p *Parameter) isNullType() bool {
	return len(p.Type) == 1 && p.Type[0] == TypeNull
}

// descendsWhenAbsent reports whether an absent value should still be
// traversed with a temporary container so nested defaults can bubble up.
func (p *Parameter) descendsWhenAbsent() bool {
	return p.HasType(TypeObject) && len(p.Properties) > 0 && p.InstanceOf == nil
}

// sortedPropertyNames returns the declared property names in sorted order.
func (p *Parameter) sortedPropertyNames() []string {
	names := make([]string, 0, len(p.Properties))
	for name := range p.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
