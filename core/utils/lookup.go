package utils

// DefaultKeyField is the field FindByKey and FindMatching compare on.
const DefaultKeyField = "id"

// Record is a plain key-value record, the shape of a decoded JSON object.
type Record = map[string]any

// FindByKey returns the first record whose "id" field equals key.
func FindByKey(records []Record, key any) (Record, bool) {
	return FindByField(records, DefaultKeyField, key)
}

// FindByField returns the first record whose field equals key.
// A nil slice or a nil key yields no result.
func FindByField(records []Record, field string, key any) (Record, bool) {
	if records == nil || key == nil {
		return nil, false
	}
	for _, r := range records {
		if v, ok := r[field]; ok && Equal(v, key) {
			return r, true
		}
	}
	return nil, false
}

// FindMatching returns the records whose "id" also appears in candidates.
func FindMatching(records, candidates []Record) ([]Record, bool) {
	return FindMatchingBy(records, candidates, DefaultKeyField)
}

// FindMatchingBy returns, in order, the records whose field value appears as
// the same field of some candidate. The result is always a subsequence of
// records; an empty overlap yields no result.
func FindMatchingBy(records, candidates []Record, field string) ([]Record, bool) {
	if records == nil || candidates == nil {
		return nil, false
	}

	keys := make([]any, 0, len(candidates))
	for _, c := range candidates {
		if v, ok := c[field]; ok {
			keys = append(keys, v)
		}
	}

	var matched []Record
	for _, r := range records {
		v, ok := r[field]
		if !ok {
			continue
		}
		for _, k := range keys {
			if Equal(v, k) {
				matched = append(matched, r)
				break
			}
		}
	}
	if len(matched) == 0 {
		return nil, false
	}
	return matched, true
}

// Last returns the final element of items.
func Last[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[len(items)-1], true
}
