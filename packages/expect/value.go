package expect

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind classifies a document value, following JSON terminology. Absent
// paths classify as KindUndefined.
type Kind string

const (
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindObject    Kind = "object"
	KindArray     Kind = "array"
	KindNull      Kind = "null"
	KindUndefined Kind = "undefined"
)

// maxValueLen caps how much of a rendered value failure messages carry.
const maxValueLen = 200

// classify maps a resolved value onto its Kind.
func classify(v any, defined bool) Kind {
	if !defined {
		return KindUndefined
	}
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}
	if _, ok := numeric(v); ok {
		return KindNumber
	}
	return Kind(reflect.TypeOf(v).String())
}

// numeric reports v's value as a float64 when v is a built-in numeric
// type. Strings never qualify.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
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
	}
	return 0, false
}

// truthy reports whether a resolved value is outside the falsy set:
// false, numeric zero, the empty string, null, and absent. Containers
// are truthy even when empty.
func truthy(v any, defined bool) bool {
	if !defined || v == nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	}
	if n, ok := numeric(v); ok {
		return n != 0
	}
	return true
}

// deepEqual compares two document values structurally: sequences are
// order-sensitive, objects must agree on every key, and numeric leaves
// compare by value so int 1 equals float64 1.
func deepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if an, ok := numeric(a); ok {
		bn, ok := numeric(b)
		return ok && an == bn
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for key, value := range av {
			other, ok := bv[key]
			if !ok || !deepEqual(value, other) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a, b)
}

// containsValue implements membership: an element of a sequence, or a
// substring of a string. Other kinds contain nothing.
func containsValue(v, expected any) bool {
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if deepEqual(item, expected) {
				return true
			}
		}
		return false
	case string:
		return strings.Contains(val, fmt.Sprintf("%v", expected))
	}
	return false
}

// describe renders a resolved value for failure messages. Absent and
// stored null are kept distinct, strings are quoted, and long
// renderings are truncated.
func describe(v any, defined bool) string {
	if !defined {
		return "absent"
	}
	var s string
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		s = fmt.Sprintf("%q", val)
	default:
		s = fmt.Sprintf("%v", val)
	}
	if len(s) > maxValueLen {
		return s[:maxValueLen] + "..."
	}
	return s
}
