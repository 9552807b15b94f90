package ifc

import (
	"encoding/json"
	"strings"
)

// TypeKind identifies whether a field type is a built-in primitive or a
// cross-referenced interface type.
type TypeKind uint8

const (
	// Primitive is a built-in scalar or array field type.
	Primitive TypeKind = iota
	// Reference is a field type referencing another interface, qualified
	// with the declaring package.
	Reference
)

// String returns the kind name.
func (k TypeKind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Type is a resolved field type descriptor.
//
// For Primitive kinds only Name and IsArray are set. For Reference kinds
// Package carries the declaring or referenced package and Name the
// interface name; the message namespace between them is implied.
type Type struct {
	Kind    TypeKind
	Name    string
	Package string
	IsArray bool
}

// String serializes the type in the legacy form consumed by downstream
// renderers: a bare keyword for primitives, a quoted package-qualified
// path for references. The array suffix on references goes after the
// closing quote ('pkg/msg/Type'[]), never inside it.
func (t Type) String() string {
	var b strings.Builder
	if t.Kind == Reference {
		b.WriteByte('\'')
		b.WriteString(t.Package)
		b.WriteString("/msg/")
		b.WriteString(t.Name)
		b.WriteByte('\'')
	} else {
		b.WriteString(t.Name)
	}
	if t.IsArray {
		b.WriteString("[]")
	}
	return b.String()
}

// MarshalJSON serializes the type as its legacy string form.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// MarshalYAML serializes the type as its legacy string form.
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// primitiveBaseNames is the closed set of built-in field type keywords.
// Each also has an array form ("int32[]"); neither list is extensible at
// runtime.
var primitiveBaseNames = []string{
	"bool",
	"int8", "uint8",
	"int16", "uint16",
	"int32", "uint32",
	"int64", "uint64",
	"float32", "float64",
	"string",
	"byte",
	"time",
	"duration",
	"Header",
}

var primitiveSet = func() map[string]struct{} {
	set := make(map[string]struct{}, 2*len(primitiveBaseNames))
	for _, name := range primitiveBaseNames {
		set[name] = struct{}{}
		set[name+"[]"] = struct{}{}
	}
	return set
}()

// IsPrimitive reports whether the given type token (array-normalized, e.g.
// "int32" or "int32[]") names a built-in primitive type.
func IsPrimitive(token string) bool {
	_, ok := primitiveSet[token]
	return ok
}

// PrimitiveNames returns the base primitive type keywords, without array
// forms, in declaration order.
func PrimitiveNames() []string {
	out := make([]string, len(primitiveBaseNames))
	copy(out, primitiveBaseNames)
	return out
}
