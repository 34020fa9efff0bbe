package document

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Object is a map that keeps insertion order when encoded.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores v under key. Setting an existing key keeps its position.
func (o *Object) Set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, k := range o.keys {
		var key, val yaml.Node

		if err := key.Encode(k); err != nil {
			return nil, err
		}

		if err := val.Encode(o.values[k]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &key, &val)
	}

	return node, nil
}

// List is an ordered sequence of values.
type List struct {
	items []any
}

// Append adds v to the end of the list.
func (l *List) Append(v any) {
	l.items = append(l.items, v)
}

// Items returns the list contents.
func (l *List) Items() []any {
	return append([]any(nil), l.items...)
}

// MarshalJSON implements json.Marshaler.
func (l *List) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(l.items)
}

// MarshalYAML implements yaml.Marshaler.
func (l *List) MarshalYAML() (any, error) {
	if l.items == nil {
		return []any{}, nil
	}

	return l.items, nil
}
