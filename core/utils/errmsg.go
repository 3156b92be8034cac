package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotObject is returned when a field-error document is not a JSON object.
var ErrNotObject = errors.New("field errors must be a JSON object")

// FieldError is a single field and its message. Message holds either a
// string or a []string.
type FieldError struct {
	Field   string
	Message any
}

// FieldErrors is a validation error document, in declaration order.
type FieldErrors []FieldError

// UnmarshalJSON decodes a JSON object while keeping the order of its keys.
// Array messages become []string; other scalars are kept as decoded.
func (fe *FieldErrors) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	out := FieldErrors{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		field, _ := tok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
		out = append(out, FieldError{Field: field, Message: normalizeMessage(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*fe = out
	return nil
}

// ParseFieldErrors decodes a JSON field-error document.
func ParseFieldErrors(data []byte) (FieldErrors, error) {
	var fe FieldErrors
	if err := json.Unmarshal(data, &fe); err != nil {
		return nil, err
	}
	return fe, nil
}

// ExtractErrorMessage returns the message of the first declared field. A
// message list is joined with single spaces. No fields means no message.
func ExtractErrorMessage(errs FieldErrors) (string, bool) {
	if len(errs) == 0 {
		return "", false
	}
	switch msg := errs[0].Message.(type) {
	case []string:
		return strings.Join(msg, " "), true
	case string:
		return msg, true
	default:
		return ToString(msg), true
	}
}

func normalizeMessage(raw any) any {
	list, ok := raw.([]any)
	if !ok {
		return raw
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, ToString(item))
	}
	return parts
}
