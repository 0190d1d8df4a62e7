package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a JSON field that distinguishes three states: absent,
// explicitly null, and set to a value. It is used for partial updates.
//
// Struct fields of this type should be tagged `omitzero` so absent values
// are dropped when marshaling.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Null returns an Optional that is present and explicitly null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// IsSet reports whether the field was present in the input, null included.
func (o Optional[T]) IsSet() bool {
	return o.present
}

// IsNull reports whether the field was present and null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Get returns the value and true when the field holds a non-null value.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present && !o.null
}

// IsZero reports an absent field; it drives `omitzero`.
func (o Optional[T]) IsZero() bool {
	return !o.present
}

// UnmarshalJSON is only invoked for keys present in the input.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}

	o.null = false
	return json.Unmarshal(b, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
