package ifc

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Field is a single named field of one section.
type Field struct {
	Name string
	Type Type
}

// FieldSet is an insertion-ordered mapping from field name to resolved
// type. Declaration order in the source file is preserved; it is
// meaningful to downstream renderers. Setting an existing name overwrites
// the value but keeps the original slot (last write wins).
type FieldSet struct {
	fields *orderedmap.OrderedMap[string, Type]
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{fields: orderedmap.New[string, Type]()}
}

// Set stores the type under the given field name.
func (f *FieldSet) Set(name string, t Type) {
	f.fields.Set(name, t)
}

// Get returns the type stored under the given field name.
func (f *FieldSet) Get(name string) (Type, bool) {
	if f == nil || f.fields == nil {
		return Type{}, false
	}
	return f.fields.Get(name)
}

// Len returns the number of fields.
func (f *FieldSet) Len() int {
	if f == nil || f.fields == nil {
		return 0
	}
	return f.fields.Len()
}

// oldest returns the first pair in declaration order, nil-safe.
func (f *FieldSet) oldest() *orderedmap.Pair[string, Type] {
	if f == nil || f.fields == nil {
		return nil
	}
	return f.fields.Oldest()
}

// Names returns the field names in declaration order.
func (f *FieldSet) Names() []string {
	names := make([]string, 0, f.Len())
	for pair := f.oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Fields returns the fields in declaration order.
func (f *FieldSet) Fields() []Field {
	out := make([]Field, 0, f.Len())
	for pair := f.oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Field{Name: pair.Key, Type: pair.Value})
	}
	return out
}

// MarshalJSON serializes the set as a JSON object in declaration order,
// with legacy type strings as values.
func (f *FieldSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := f.oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(pair.Value)
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

// MarshalYAML serializes the set as a YAML mapping in declaration order,
// with legacy type strings as values.
func (f *FieldSet) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for pair := f.oldest(); pair != nil; pair = pair.Next() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: pair.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: pair.Value.String()},
		)
	}
	return node, nil
}
