package intention

import "strings"

// Schema maps field names to type descriptors. Schemas are treated as
// immutable once a template is constructed; validation never mutates them.
type Schema map[string]FieldType

// FieldType is a type descriptor for a schema field. The set of variants is
// closed: PrimitiveType, AnyListType, AnyMapType, NestedType and UnionType.
type FieldType interface {
	fieldType()
	String() string
}

// PrimitiveType matches a single leaf runtime type exactly. An integer value
// does not satisfy TypeFloat and vice versa.
type PrimitiveType string

// Primitive type descriptors.
const (
	TypeString  PrimitiveType = TypeTagString
	TypeInteger PrimitiveType = TypeTagInteger
	TypeFloat   PrimitiveType = TypeTagFloat
	TypeBoolean PrimitiveType = TypeTagBoolean
	TypeNull    PrimitiveType = TypeTagNull
)

func (PrimitiveType) fieldType() {}

func (p PrimitiveType) String() string { return string(p) }

// AnyListType matches any sequence value without inspecting elements.
type AnyListType struct{}

// TypeList is the "sequence of any" descriptor.
var TypeList = AnyListType{}

func (AnyListType) fieldType() {}

func (AnyListType) String() string { return TypeTagList }

// AnyMapType matches any mapping value without inspecting its fields.
type AnyMapType struct{}

// TypeMap is the bare mapping descriptor.
var TypeMap = AnyMapType{}

func (AnyMapType) fieldType() {}

func (AnyMapType) String() string { return TypeTagMap }

// NestedType matches a mapping that recursively satisfies an inner schema.
// Fields beyond the inner schema are ignored; schemas are not closed.
type NestedType struct {
	schema Schema
}

// Nested creates a nested schema descriptor.
func Nested(schema Schema) NestedType {
	return NestedType{schema: schema}
}

// Schema returns the inner schema.
func (n NestedType) Schema() Schema { return n.schema }

func (NestedType) fieldType() {}

func (n NestedType) String() string {
	fields := make([]string, 0, len(n.schema))
	for name := range n.schema {
		fields = append(fields, name)
	}
	return TypeTagMap + "{" + strings.Join(fields, ",") + "}"
}

// UnionType matches if any member descriptor matches. Matching short-circuits
// on the first hit; there is no ambiguity reporting.
type UnionType struct {
	members []FieldType
}

// Union creates a union descriptor from its member descriptors.
func Union(members ...FieldType) UnionType {
	return UnionType{members: members}
}

// Members returns the member descriptors.
func (u UnionType) Members() []FieldType { return u.members }

func (UnionType) fieldType() {}

func (u UnionType) String() string {
	parts := make([]string, len(u.members))
	for i, m := range u.members {
		if m == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = m.String()
	}
	return strings.Join(parts, "|")
}
