// Package descriptor imports serialized parameter descriptions (JSON or
// YAML documents) into paramval Parameter trees. It performs no file I/O:
// bytes in, Parameter out.
//
// Recognized keys: name, type (string or list), required, static, default,
// description, properties, items, additionalProperties (bool or object),
// enum, pattern, min, max. Filters and instance-of constraints are
// programmatic-only and cannot appear in documents; unrecognized keys are
// ignored so descriptions may carry extra metadata.
package descriptor

import (
	"errors"
	"fmt"
	"regexp"

	paramval "github.com/paramval/paramval"
)

var validTypes = map[string]struct{}{
	paramval.TypeString:  {},
	paramval.TypeObject:  {},
	paramval.TypeArray:   {},
	paramval.TypeInteger: {},
	paramval.TypeBoolean: {},
	paramval.TypeNumeric: {},
	paramval.TypeNull:    {},
	paramval.TypeAny:     {},
}

// Import compiles a decoded description document into a Parameter tree.
func Import(doc map[string]any) (*paramval.Parameter, error) {
	if doc == nil {
		return nil, errors.New("descriptor: nil document")
	}
	return importNode(doc, "")
}

func importNode(def map[string]any, at string) (*paramval.Parameter, error) {
	p := &paramval.Parameter{}

	if name, ok := def["name"].(string); ok {
		p.Name = name
	}
	types, err := importTypes(def["type"], at)
	if err != nil {
		return nil, err
	}
	p.Type = types
	if req, ok := def["required"].(bool); ok {
		p.Required = req
	}
	if st, ok := def["static"].(bool); ok {
		p.Static = st
	}
	p.Default = def["default"]
	if desc, ok := def["description"].(string); ok {
		p.Description = desc
	}
	if err := importEnum(p, def["enum"], at); err != nil {
		return nil, err
	}
	if expr, ok := def["pattern"].(string); ok {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("descriptor: %sinvalid pattern %q: %w", at, expr, err)
		}
		p.Pattern = re
	}
	if raw, ok := def["min"]; ok {
		if p.Min, ok = asFloat(raw); !ok {
			return nil, fmt.Errorf("descriptor: %smin must be a number", at)
		}
	}
	if raw, ok := def["max"]; ok {
		if p.Max, ok = asFloat(raw); !ok {
			return nil, fmt.Errorf("descriptor: %smax must be a number", at)
		}
	}
	if err := importProperties(p, def["properties"], at); err != nil {
		return nil, err
	}
	if raw, ok := def["items"]; ok {
		m, isMap := raw.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("descriptor: %sitems must be an object", at)
		}
		items, err := importNode(m, at+"items.")
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	if err := importAdditional(p, def, at); err != nil {
		return nil, err
	}
	return p, nil
}

func importTypes(raw any, at string) ([]string, error) {
	switch t := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if _, ok := validTypes[t]; !ok {
			return nil, fmt.Errorf("descriptor: %sunknown type %q", at, t)
		}
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("descriptor: %stype list must contain strings", at)
			}
			if _, ok := validTypes[s]; !ok {
				return nil, fmt.Errorf("descriptor: %sunknown type %q", at, s)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("descriptor: %stype must be a string or a list of strings", at)
}

func importEnum(p *paramval.Parameter, raw any, at string) error {
	if raw == nil {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("descriptor: %senum must be a list", at)
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		s, ok := e.(string)
		if !ok {
			return fmt.Errorf("descriptor: %senum members must be strings", at)
		}
		out = append(out, s)
	}
	p.Enum = out
	return nil
}

func importProperties(p *paramval.Parameter, raw any, at string) error {
	if raw == nil {
		return nil
	}
	props, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("descriptor: %sproperties must be an object", at)
	}
	p.Properties = make(map[string]*paramval.Parameter, len(props))
	for name, rawDef := range props {
		def, ok := rawDef.(map[string]any)
		if !ok {
			return fmt.Errorf("descriptor: %sproperty %q must be an object", at, name)
		}
		child, err := importNode(def, at+"properties["+name+"].")
		if err != nil {
			return err
		}
		child.Name = name
		p.Properties[name] = child
	}
	return nil
}

func importAdditional(p *paramval.Parameter, def map[string]any, at string) error {
	raw, ok := def["additionalProperties"]
	if !ok {
		return nil
	}
	switch t := raw.(type) {
	case bool:
		if t {
			p.Additional = paramval.AdditionalAllow
		} else {
			p.Additional = paramval.AdditionalReject
		}
	case map[string]any:
		child, err := importNode(t, at+"additionalProperties.")
		if err != nil {
			return err
		}
		p.Additional = paramval.AdditionalSchema
		p.AdditionalSchema = child
	default:
		return fmt.Errorf("descriptor: %sadditionalProperties must be a bool or an object", at)
	}
	return nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

