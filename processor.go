package paramval

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/paramval/paramval/i18n"
)

// Processor validates a value tree against a Parameter tree, mutating the
// value in place: defaults are inserted, integers are cast to strings where
// a string is declared, and filters run on accepted values. All violations
// found during the walk are collected; nothing stops at the first error.
// The one exception is an absent keyed container: its children are walked
// against a temporary container, and when no nested default materializes it
// the children's findings are discarded along with it, so a missing required
// object reports only its own message.
//
// A Processor holds only its configuration and may be reused concurrently;
// every Process call returns a fresh Result.
type Processor struct {
	castIntToString bool
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithIntToStringCast toggles the integer-to-string coercion applied when a
// string is declared but an integer arrives. Enabled by default.
func WithIntToStringCast(enabled bool) ProcessorOption {
	return func(p *Processor) { p.castIntToString = enabled }
}

// NewProcessor returns a Processor with coercion enabled unless options say
// otherwise.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{castIntToString: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process walks the schema against *value, mutating it in place. The value
// is partially mutated even on failure: every subtree that individually
// passed its checks keeps its defaults, casts, and filter results.
func (p *Processor) Process(param *Parameter, value *any) *Result {
	res := &Result{}
	p.walk(param, value, "", 0, res)
	return res
}

// Process validates with a default Processor (coercion enabled).
func Process(param *Parameter, value *any) *Result {
	return NewProcessor().Process(param, value)
}

func (p *Processor) walk(param *Parameter, value *any, path string, depth int, res *Result) bool {
	*value = param.GetValue(*value)

	// Static values and absent optional values end here, except that absent
	// objects with declared properties still descend so nested defaults can
	// bubble up into them.
	if param.Static || (*value == nil && !param.Required && !param.descendsWhenAbsent()) {
		return true
	}

	if param.Name != "" {
		path += "[" + param.Name + "]"
	}

	before := len(res.issues)

	if param.HasType(TypeObject) {
		if stop := p.processObject(param, value, path, depth, res); stop {
			return false
		}
		if *value == nil && !param.Required {
			// The temporary container gathered nothing; the subtree stays
			// absent and valid.
			return true
		}
	}

	if param.HasType(TypeArray) && param.Items != nil {
		if arr, ok := (*value).([]any); ok {
			for i := range arr {
				p.walk(param.Items, &arr[i], path+"["+strconv.Itoa(i)+"]", depth+1, res)
			}
		}
	}

	if param.Required && isAbsent(*value) && !param.isNullType() {
		res.append(Issue{Path: path, Code: CodeRequired, Message: i18n.T(CodeRequired, map[string]string{
			"path":        path,
			"type":        param.TypeString(),
			"description": param.Description,
		})})
		return false
	}

	resolved := ""
	if len(param.Type) > 0 {
		if t, ok := determineType(param.Type, *value); ok {
			resolved = t
		} else if s, isInt := intString(*value); p.castIntToString && param.HasType(TypeString) && isInt {
			*value = s
			resolved = TypeString
		} else {
			res.append(Issue{Path: path, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, map[string]string{
				"path": path,
				"type": param.TypeString(),
			})})
		}
	}

	if resolved == TypeString {
		s := asString(*value)
		if len(param.Enum) > 0 && !containsString(param.Enum, s) {
			res.append(Issue{Path: path, Code: CodeInvalidEnum, Message: i18n.T(CodeInvalidEnum, map[string]string{
				"path":   path,
				"values": quoteJoin(param.Enum),
			})})
		}
		if param.Pattern != nil && !param.Pattern.MatchString(s) {
			res.append(Issue{Path: path, Code: CodePattern, Message: i18n.T(CodePattern, map[string]string{
				"path":    path,
				"pattern": param.Pattern.String(),
			})})
		}
	}

	p.checkBounds(param, resolved, *value, path, res)

	if len(res.issues) == before {
		*value = param.FilterValue(*value)
		return true
	}
	return false
}

// processObject covers the object-specific portion of the walk: the
// instance-of constraint, shape checks, property recursion, and the
// additional-properties policy. It reports stop=true when a hard failure
// pre-empts every remaining check on this node.
func (p *Processor) processObject(param *Parameter, value *any, path string, depth int, res *Result) (stop bool) {
	if param.InstanceOf != nil {
		if reflect.TypeOf(*value) != param.InstanceOf {
			res.append(Issue{Path: path, Code: CodeInstanceOf, Message: i18n.T(CodeInstanceOf, map[string]string{
				"path":       path,
				"constraint": param.InstanceOf.String(),
			})})
			return true
		}
	}

	switch cur := (*value).(type) {
	case []any:
		if param.HasType(TypeArray) {
			// A declared array type claims the sequence; item recursion and
			// the type check handle it.
			break
		}
		res.append(Issue{Path: path, Code: CodeIndexedArray, Message: i18n.T(CodeIndexedArray, map[string]string{
			"path": path,
		})})
		return true
	case map[string]any:
		// A nil map is a valid keyed container with no entries; treat it
		// like an absent one so the write-backs have a map to land in.
		if cur == nil {
			p.materializeContainer(param, value, path, depth, res)
		} else {
			p.traverseObject(param, cur, path, depth, res)
		}
	case nil:
		p.materializeContainer(param, value, path, depth, res)
	default:
		// Not traversable and not an indexed sequence; the type check below
		// reports the mismatch.
	}
	return false
}

// materializeContainer substitutes a temporary container so nested defaults
// can populate it, reverting to nil when nothing did. Children of an
// unmaterialized container report nothing.
func (p *Processor) materializeContainer(param *Parameter, value *any, path string, depth int, res *Result) {
	tmp := map[string]any{}
	scratch := &Result{}
	p.traverseObject(param, tmp, path, depth, scratch)
	if len(tmp) == 0 {
		*value = nil
	} else {
		*value = tmp
		res.append(scratch.issues...)
	}
}

func (p *Processor) traverseObject(param *Parameter, m map[string]any, path string, depth int, res *Result) {
	for _, name := range param.sortedPropertyNames() {
		prop := param.Properties[name]
		if cv, ok := m[name]; ok && cv != nil {
			p.walk(prop, &cv, path, depth+1, res)
			m[name] = cv
			continue
		}
		// Absent property: recurse on a fresh placeholder and keep the
		// result only when nested defaults produced something.
		var fresh any
		p.walk(prop, &fresh, path, depth+1, res)
		if !isFalsy(fresh) {
			m[name] = fresh
		}
	}

	if param.Additional == AdditionalAllow {
		return
	}
	extras := make([]string, 0)
	for k := range m {
		if _, known := param.Properties[k]; !known {
			extras = append(extras, k)
		}
	}
	if len(extras) == 0 {
		return
	}
	sort.Strings(extras)
	if param.Additional == AdditionalSchema && param.AdditionalSchema != nil {
		for _, k := range extras {
			cv := m[k]
			p.walk(param.AdditionalSchema, &cv, path+"["+k+"]", depth, res)
			m[k] = cv
		}
		return
	}
	res.append(Issue{Path: path, Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, map[string]string{
		"path": path,
		"key":  extras[0],
	})})
}

// checkBounds applies Min/Max with the interpretation the resolved type
// demands. A zero bound means unset, so exact-zero bounds are inexpressible.
func (p *Processor) checkBounds(param *Parameter, resolved string, v any, path string, res *Result) {
	kind := ""
	size := 0.0
	switch resolved {
	case TypeInteger, TypeNumeric:
		kind = "numeric"
		size, _ = toFloat64(v)
	case TypeString:
		kind = "string"
		size = float64(utf8.RuneCountInString(asString(v)))
	case TypeArray:
		kind = "array"
		if arr, ok := v.([]any); ok {
			size = float64(len(arr))
		}
	default:
		return
	}
	if param.Min != 0 && size < param.Min {
		res.append(Issue{Path: path, Code: CodeTooSmall, Message: i18n.T(CodeTooSmall, map[string]string{
			"path":  path,
			"kind":  kind,
			"bound": formatBound(param.Min),
		})})
	}
	if param.Max != 0 && size > param.Max {
		res.append(Issue{Path: path, Code: CodeTooBig, Message: i18n.T(CodeTooBig, map[string]string{
			"path":  path,
			"kind":  kind,
			"bound": formatBound(param.Max),
		})})
	}
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

// quoteJoin renders enum members double-quoted, backslash-escaped, and
// joined with " or ".
func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, `"`, `\"`)
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, " or ")
}
