package paramval

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Declared parameter types. A Parameter may declare one or several of these;
// a value is accepted when it matches any declared type.
const (
	TypeString  = "string"
	TypeObject  = "object"
	TypeArray   = "array"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeNumeric = "numeric"
	TypeNull    = "null"
	TypeAny     = "any"
)

// AdditionalPolicy controls how object keys that are not declared as
// properties are handled. The zero value allows them unchecked.
type AdditionalPolicy int

const (
	AdditionalAllow  AdditionalPolicy = iota // Accept unknown keys without validation.
	AdditionalReject                         // Reject unknown keys with an error.
	AdditionalSchema                         // Validate unknown keys against Parameter.AdditionalSchema.
)

// determineType resolves which of the declared types the value matches.
// Declaration order decides ties; the first matching type wins.
func determineType(types []string, v any) (string, bool) {
	for _, t := range types {
		if matchType(t, v) {
			return t, true
		}
	}
	return "", false
}

func matchType(t string, v any) bool {
	switch t {
	case TypeString:
		if _, ok := v.(string); ok {
			return true
		}
		// Values carrying a string conversion count as strings.
		_, ok := v.(fmt.Stringer)
		return ok
	case TypeObject:
		if _, ok := v.(map[string]any); ok {
			return true
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer {
			rv = rv.Elem()
		}
		return rv.IsValid() && rv.Kind() == reflect.Struct
	case TypeArray:
		_, ok := v.([]any)
		return ok
	case TypeInteger:
		return isIntegerValue(v)
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeNumeric:
		_, ok := toFloat64(v)
		return ok
	case TypeNull:
		return isFalsy(v)
	case TypeAny:
		return true
	}
	return false
}

// isIntegerValue reports whether v is an integer-valued number.
func isIntegerValue(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(n) == float64(int64(n))
	case float64:
		return n == float64(int64(n))
	case json.Number:
		_, err := n.Int64()
		return err == nil
	}
	return false
}

// intString renders an integer-valued number without a fraction part.
func intString(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		if float64(n) == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10), true
		}
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
	}
	return "", false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// isFalsy mirrors the loose emptiness notion used for the null type match,
// default bubble write-back, and temporary-container revert: nil, false,
// numeric zero, the empty string, and empty containers.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		if f, ok := toFloat64(v); ok {
			return f == 0
		}
	}
	return false
}

// isAbsent reports the stricter "missing" notion used by the required check.
func isAbsent(v any) bool {
	return v == nil || v == ""
}

// asString extracts the string form used by enum, pattern, and length checks.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return ""
}
