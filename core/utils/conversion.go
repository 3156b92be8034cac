package utils

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ToInt converts various types to int using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		i, _ := strconv.Atoi(strings.TrimSpace(string(v)))
		return i
	}
	if f, ok := ToFloat(val); ok {
		return int(f)
	}
	return 0
}

// ToFloat converts any Go numeric value to float64.
// The boolean is false when val is not a number.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	default:
		return 0, false
	}
}

// IsNumber reports whether val holds a Go numeric type.
func IsNumber(val any) bool {
	_, ok := ToFloat(val)
	return ok
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	case []byte:
		s := string(v)
		return s == "1" || strings.EqualFold(s, "true")
	}
	if f, ok := ToFloat(val); ok {
		return f == 1
	}
	return false
}

// Equal reports strict equality between two values.
//
// Numbers compare by value regardless of their Go type, so the float64 of a
// decoded JSON document equals an int literal. Other values must share a
// dynamic type and be comparable; maps, slices and funcs are never equal.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := ToFloat(a); ok {
		fb, ok := ToFloat(b)
		return ok && fa == fb
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !isComparable(reflect.ValueOf(a)) {
		return false
	}
	return a == b
}

// isComparable walks v so that == cannot panic on a map or slice held in an
// interface field.
func isComparable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return false
	case reflect.Interface:
		return v.IsNil() || isComparable(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !isComparable(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !isComparable(v.Field(i)) {
				return false
			}
		}
	}
	return true
}
