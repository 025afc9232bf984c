package dto

import (
	"bytes"
	"encoding/json"
)

// Nullable distingue, en actualizaciones parciales, entre campo ausente (Set=false),
// null explícito (Set=true, Null=true) y valor presente.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON solo se invoca cuando la clave aparece en el cuerpo.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		n.Null = true
		n.Value = zero
		return nil
	}
	n.Null = false
	return json.Unmarshal(b, &n.Value)
}

// MarshalJSON serializa null si el campo no tiene valor.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// HasValue informa si el campo trae un valor (ni ausente ni null).
func (n Nullable[T]) HasValue() bool {
	return n.Set && !n.Null
}

// Some construye un Nullable con valor.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Null construye un Nullable con null explícito.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}
