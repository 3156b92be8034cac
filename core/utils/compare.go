package utils

import "reflect"

// ArraysEqual reports whether a and b have the same length and pairwise Equal
// elements in order. A nil argument is never equal to anything.
func ArraysEqual[T any](a, b []T) bool {
	if a == nil || b == nil || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// TypeOf returns a coarse type tag for v: "array", "object", "string",
// "number", "boolean" or "function". nil is reported as "object".
func TypeOf(v any) string {
	if v == nil {
		return "object"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Func:
		return "function"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "object"
	}
}
