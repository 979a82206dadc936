package paramval

import (
	"sort"

	js "github.com/paramval/paramval/jsonschema"
)

// JSONSchema projects the parameter into a JSON Schema representation. The
// projection is lossy: static flags, filters, and instance-of constraints
// have no JSON Schema counterpart.
func (p *Parameter) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{
		Description: p.Description,
		Default:     p.Default,
	}
	switch len(p.Type) {
	case 0:
	case 1:
		out.Type = jsType(p.Type[0])
	default:
		for _, t := range p.Type {
			out.OneOf = append(out.OneOf, &js.Schema{Type: jsType(t)})
		}
	}
	if len(p.Enum) > 0 {
		out.Enum = append([]string(nil), p.Enum...)
	}
	if p.Pattern != nil {
		out.Pattern = p.Pattern.String()
	}
	p.exportBounds(out)
	p.exportObject(out)
	if p.Items != nil {
		items, err := p.Items.JSONSchema()
		if err != nil {
			return nil, err
		}
		out.Items = items
	}
	return out, nil
}

func (p *Parameter) exportObject(out *js.Schema) {
	if len(p.Properties) > 0 {
		out.Properties = make(map[string]*js.Schema, len(p.Properties))
		for name, prop := range p.Properties {
			ps, err := prop.JSONSchema()
			if err != nil {
				continue
			}
			out.Properties[name] = ps
			if prop.Required {
				out.Required = append(out.Required, name)
			}
		}
		sort.Strings(out.Required)
	}
	switch p.Additional {
	case AdditionalReject:
		out.AdditionalProperties = false
	case AdditionalSchema:
		if p.AdditionalSchema != nil {
			if as, err := p.AdditionalSchema.JSONSchema(); err == nil {
				out.AdditionalProperties = as
			}
		}
	}
}

// exportBounds maps Min/Max onto the keyword family of the primary declared
// type. Zero bounds stay unset, matching the processor.
func (p *Parameter) exportBounds(out *js.Schema) {
	if (p.Min == 0 && p.Max == 0) || len(p.Type) == 0 {
		return
	}
	switch p.Type[0] {
	case TypeInteger, TypeNumeric:
		if p.Min != 0 {
			min := p.Min
			out.Minimum = &min
		}
		if p.Max != 0 {
			max := p.Max
			out.Maximum = &max
		}
	case TypeString:
		if p.Min != 0 {
			min := int(p.Min)
			out.MinLength = &min
		}
		if p.Max != 0 {
			max := int(p.Max)
			out.MaxLength = &max
		}
	case TypeArray:
		if p.Min != 0 {
			min := int(p.Min)
			out.MinItems = &min
		}
		if p.Max != 0 {
			max := int(p.Max)
			out.MaxItems = &max
		}
	}
}

// jsType maps parameter type names onto JSON Schema type names.
func jsType(t string) string {
	switch t {
	case TypeNumeric:
		return "number"
	case TypeAny:
		return ""
	}
	return t
}
