package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// enumTable maps the values 1..n of an integer enum to their wire names.
// The zero value of every enum is reserved as "unset".
type enumTable[T ~int] struct {
	kind   string
	names  []string
	byName map[string]T
}

// newEnumTable panics when a name is empty, not lowercase, or repeated, so a bad
// table fails at package init rather than on the wire.
func newEnumTable[T ~int](kind string, names ...string) enumTable[T] {
	if len(names) == 0 {
		panic(fmt.Sprintf("models: enum %s has no values", kind))
	}
	byName := make(map[string]T, len(names))
	for i, name := range names {
		if name == "" || name != strings.ToLower(name) {
			panic(fmt.Sprintf("models: enum %s value %d has invalid name %q", kind, i+1, name))
		}
		if _, dup := byName[name]; dup {
			panic(fmt.Sprintf("models: enum %s name %q is used twice", kind, name))
		}
		byName[name] = T(i + 1)
	}
	return enumTable[T]{kind: kind, names: names, byName: byName}
}

func (t enumTable[T]) valid(v T) bool {
	return v >= 1 && int(v) <= len(t.names)
}

func (t enumTable[T]) name(v T) string {
	if !t.valid(v) {
		return fmt.Sprintf("%s(%d)", t.kind, int(v))
	}
	return t.names[v-1]
}

func (t enumTable[T]) values() []T {
	out := make([]T, len(t.names))
	for i := range t.names {
		out[i] = T(i + 1)
	}
	return out
}

func (t enumTable[T]) parse(s string) (T, error) {
	v, ok := t.byName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, &DecodeError{Err: fmt.Errorf("unknown %s %q", t.kind, s)}
	}
	return v, nil
}

func (t enumTable[T]) marshalText(v T) ([]byte, error) {
	if !t.valid(v) {
		return nil, &ValidationError{Field: t.kind, Reason: fmt.Sprintf("value %d has no name", int(v))}
	}
	return []byte(t.names[v-1]), nil
}

// unmarshalJSON decodes a JSON string. Non-string input is a decode error.
func (t enumTable[T]) unmarshalJSON(data []byte) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, &DecodeError{Err: fmt.Errorf("%s must be a string: %w", t.kind, err)}
	}
	return t.parse(s)
}
