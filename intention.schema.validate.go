package intention

// ValidateSchema checks data for presence and type conformance against
// schema. It is deterministic, side-effect-free and total: malformed
// descriptors make the affected field invalid instead of panicking.
//
// Fields present in data but absent from the schema are ignored. The check
// is binary; callers wanting messages attach their own (processors add a
// single generic structural error).
func ValidateSchema(data map[string]any, schema Schema) bool {
	for field, expected := range schema {
		value, ok := data[field]
		if !ok {
			return false
		}
		if !IsValidType(value, expected) {
			return false
		}
	}
	return true
}

// IsValidType reports whether value satisfies the type descriptor. A nil
// descriptor never matches.
func IsValidType(value any, expected FieldType) (valid bool) {
	// Custom FieldType implementations can misbehave; a panic here must not
	// escape the validator.
	defer func() {
		if r := recover(); r != nil {
			valid = false
		}
	}()

	switch ft := expected.(type) {
	case PrimitiveType:
		return matchPrimitive(value, ft)
	case AnyListType:
		return matchList(value)
	case AnyMapType:
		_, ok := value.(map[string]any)
		return ok
	case NestedType:
		return matchNested(value, ft.Schema())
	case UnionType:
		for _, member := range ft.Members() {
			if IsValidType(value, member) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// matchPrimitive requires an exact runtime-type match. int64 and int both
// count as integer because the coercer emits int64 while literal Go data
// carries int; neither satisfies the float tag.
func matchPrimitive(value any, kind PrimitiveType) bool {
	switch kind {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeInteger:
		switch value.(type) {
		case int, int64:
			return true
		}
		return false
	case TypeFloat:
		switch value.(type) {
		case float64, float32:
			return true
		}
		return false
	case TypeBoolean:
		_, ok := value.(bool)
		return ok
	case TypeNull:
		return value == nil
	default:
		return false
	}
}

func matchList(value any) bool {
	switch value.(type) {
	case []any, []string, []int, []int64, []float64, []map[string]any:
		return true
	}
	return false
}

func matchNested(value any, schema Schema) bool {
	inner, ok := value.(map[string]any)
	if !ok {
		return false
	}
	return ValidateSchema(inner, schema)
}
