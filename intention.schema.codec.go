package intention

import "fmt"

// ParseSchema converts a declarative descriptor mapping (decoded YAML or
// JSON) into a Schema. Descriptor language:
//
//   - "string", "integer", "float", "boolean", "null" — primitive tags
//   - "list" — any sequence, "map" — any mapping
//   - a sequence of descriptors — union, valid if any member matches
//   - a mapping of field name to descriptor — nested schema
func ParseSchema(descriptor map[string]any) (Schema, error) {
	schema := make(Schema, len(descriptor))
	for field, d := range descriptor {
		ft, err := ParseFieldType(d)
		if err != nil {
			return nil, err
		}
		schema[field] = ft
	}
	return schema, nil
}

// ParseFieldType converts a single declarative descriptor into a FieldType.
func ParseFieldType(descriptor any) (FieldType, error) {
	switch d := descriptor.(type) {
	case string:
		return parseTypeTag(d)
	case []any:
		if len(d) == 0 {
			return nil, NewSchemaDescriptorError(ErrMsgEmptyUnion, "")
		}
		members := make([]FieldType, len(d))
		for i, m := range d {
			ft, err := ParseFieldType(m)
			if err != nil {
				return nil, err
			}
			members[i] = ft
		}
		return Union(members...), nil
	case map[string]any:
		inner, err := ParseSchema(d)
		if err != nil {
			return nil, err
		}
		return Nested(inner), nil
	default:
		return nil, NewSchemaDescriptorError(ErrMsgBadDescriptor, fmt.Sprintf("%T", descriptor))
	}
}

func parseTypeTag(tag string) (FieldType, error) {
	switch tag {
	case TypeTagString:
		return TypeString, nil
	case TypeTagInteger:
		return TypeInteger, nil
	case TypeTagFloat:
		return TypeFloat, nil
	case TypeTagBoolean:
		return TypeBoolean, nil
	case TypeTagNull:
		return TypeNull, nil
	case TypeTagList:
		return TypeList, nil
	case TypeTagMap:
		return TypeMap, nil
	default:
		return nil, NewSchemaDescriptorError(ErrMsgUnknownTypeTag, tag)
	}
}

// Descriptor converts the schema back to its declarative form so it can be
// serialized for storage. Round-trips with ParseSchema.
func (s Schema) Descriptor() map[string]any {
	out := make(map[string]any, len(s))
	for field, ft := range s {
		out[field] = fieldTypeDescriptor(ft)
	}
	return out
}

func fieldTypeDescriptor(ft FieldType) any {
	switch t := ft.(type) {
	case PrimitiveType:
		return string(t)
	case AnyListType:
		return TypeTagList
	case AnyMapType:
		return TypeTagMap
	case NestedType:
		return map[string]any(t.Schema().Descriptor())
	case UnionType:
		members := make([]any, len(t.Members()))
		for i, m := range t.Members() {
			members[i] = fieldTypeDescriptor(m)
		}
		return members
	default:
		return nil
	}
}
