package acf

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler for Document.
// Root entries become members of a single JSON object in parse order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range d.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		err := appendMember(&buf, e.Name, Value{Kind: KindNested, Nested: e})
		if err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler for Entry.
// Keys appear in insertion order, which encoding/json's map marshaling
// would not preserve.
func (e *Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, p := range e.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}

		err := appendMember(&buf, p.key, p.value)
		if err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// appendMember writes one `"key": value` object member.
func appendMember(buf *bytes.Buffer, key string, v Value) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}

	buf.Write(k)
	buf.WriteByte(':')

	switch v.Kind {
	case KindNested:
		nested, err := v.Nested.MarshalJSON()
		if err != nil {
			return err
		}

		buf.Write(nested)

	default:
		s, err := json.Marshal(v.Scalar)
		if err != nil {
			return err
		}

		buf.Write(s)
	}

	return nil
}

// ToMap converts the document to a native Go map structure.
// Insertion order is lost; use toMapSlice or MarshalJSON when order matters.
func (d *Document) ToMap() map[string]any {
	result := make(map[string]any, len(d.Entries))

	for _, e := range d.Entries {
		result[e.Name] = e.ToMap()
	}

	return result
}

// ToMap converts the entry to a native Go map structure.
func (e *Entry) ToMap() map[string]any {
	result := make(map[string]any, len(e.pairs))

	for _, p := range e.pairs {
		result[p.key] = p.value.ToNative()
	}

	return result
}

// ToNative converts a Value to its native Go type: string for scalars,
// map[string]any for nested entries. Scalars stay strings even when they
// look numeric.
func (v Value) ToNative() any {
	switch v.Kind {
	case KindNested:
		return v.Nested.ToMap()
	default:
		return v.Scalar
	}
}

// toMapSlice converts the document to an order-preserving yaml.MapSlice.
func (d *Document) toMapSlice() yaml.MapSlice {
	result := make(yaml.MapSlice, 0, len(d.Entries))

	for _, e := range d.Entries {
		result = append(result, yaml.MapItem{Key: e.Name, Value: e.toMapSlice()})
	}

	return result
}

// toMapSlice converts the entry to an order-preserving yaml.MapSlice.
func (e *Entry) toMapSlice() yaml.MapSlice {
	result := make(yaml.MapSlice, 0, len(e.pairs))

	for _, p := range e.pairs {
		item := yaml.MapItem{Key: p.key}

		switch p.value.Kind {
		case KindNested:
			item.Value = p.value.Nested.toMapSlice()
		default:
			item.Value = p.value.Scalar
		}

		result = append(result, item)
	}

	return result
}
