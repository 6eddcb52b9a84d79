package jsonls

// value.go implements the deep-equality helpers used by the validator
// (uniqueItems, enum, const) and a type-name helper, all operating on values
// produced by the AST-to-JSON projection.
// A direct type switch stands in for reflect.DeepEqual since JSON values
// decode to a small closed set of Go types (nil, bool, float64, string,
// []any, map[string]any), making the switch both faster and more explicit
// about which shapes are legal.

// DeepEqual reports whether two projected JSON values are structurally
// equal: primitives by value, arrays element-wise in order, objects by
// key-set-and-value equality (order-independent).
func DeepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !DeepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, exists := bv[k]
			if !exists || !DeepEqual(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// JSONTypeName returns the JSON Schema type name ("null", "boolean",
// "object", "array", "number", "string") for a projected JSON value, or ""
// for a Go value that cannot occur in a JSON projection.
func JSONTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return ""
	}
}

// ContainsDuplicate reports whether items contains two deep-equal elements,
// used by the uniqueItems keyword. O(n^2) by design: arrays large enough for
// this to matter are rare in hand-authored documents, and DeepEqual avoids
// the allocation cost of a canonical-encode-then-hash approach.
func ContainsDuplicate(items []any) bool {
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if DeepEqual(items[i], items[j]) {
				return true
			}
		}
	}
	return false
}
