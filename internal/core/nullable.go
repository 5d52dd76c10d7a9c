// AngelaMos | 2026
// nullable.go

package core

import (
	"bytes"
	"encoding/json"
)

// Nullable tells an absent key apart from an explicit null. Set is true when
// the key was present; Valid is false when its value was null.
type Nullable[T any] struct {
	Value T
	Set   bool
	Valid bool
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil for null.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
