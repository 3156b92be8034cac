package utils

import "reflect"

// PruneEmpty returns a copy of r without the keys whose value is an empty
// string, nil, or an empty slice. r itself is left untouched. Nested values
// are shared with r, not copied.
//
//	PruneEmpty(Record{"a": "", "b": 1, "c": []any{}}) // Record{"b": 1}
func PruneEmpty(r Record) Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		if isBlank(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// PruneEmptyDeep recursively prunes records and slices nested in v.
//
// Within a record, keys whose value is blank (see PruneEmpty) or became an
// empty record or slice after pruning are removed. Within a slice, such
// elements are dropped and the order of the rest is kept. Every record and
// slice in the result is a fresh copy; v is never mutated. Scalars are
// returned as-is.
//
//	PruneEmptyDeep(Record{"a": Record{"b": ""}, "c": []any{1, Record{}}})
//	// Record{"c": []any{1}}
func PruneEmptyDeep(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			pruned := PruneEmptyDeep(item)
			if isBlank(pruned) || isEmptyRecord(pruned) {
				continue
			}
			out[k] = pruned
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			pruned := PruneEmptyDeep(item)
			if isBlank(pruned) || isEmptyRecord(pruned) {
				continue
			}
			out = append(out, pruned)
		}
		return out
	case []Record:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			pruned := PruneEmptyDeep(item)
			if isEmptyRecord(pruned) {
				continue
			}
			out = append(out, pruned)
		}
		return out
	default:
		return v
	}
}

// IsEmpty reports whether v is not a record or is a record with no keys.
func IsEmpty(v any) bool {
	r, ok := v.(map[string]any)
	return !ok || len(r) == 0
}

// isBlank matches the values PruneEmpty removes.
func isBlank(v any) bool {
	switch typed := v.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case []any:
		return len(typed) == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isEmptyRecord(v any) bool {
	r, ok := v.(map[string]any)
	return ok && len(r) == 0
}
