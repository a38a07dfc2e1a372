package intention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema_PrimitiveTags(t *testing.T) {
	schema, err := ParseSchema(map[string]any{
		"name":   "string",
		"count":  "integer",
		"score":  "float",
		"active": "boolean",
		"note":   "null",
		"tags":   "list",
		"extra":  "map",
	})
	require.NoError(t, err)

	assert.Equal(t, TypeString, schema["name"])
	assert.Equal(t, TypeInteger, schema["count"])
	assert.Equal(t, TypeFloat, schema["score"])
	assert.Equal(t, TypeBoolean, schema["active"])
	assert.Equal(t, TypeNull, schema["note"])
	assert.Equal(t, TypeList, schema["tags"])
	assert.Equal(t, TypeMap, schema["extra"])
}

func TestParseSchema_UnionAndNested(t *testing.T) {
	schema, err := ParseSchema(map[string]any{
		"value": []any{"string", "null"},
		"address": map[string]any{
			"city": "string",
			"zip":  "string",
		},
	})
	require.NoError(t, err)

	union, ok := schema["value"].(UnionType)
	require.True(t, ok)
	assert.Len(t, union.Members(), 2)

	nested, ok := schema["address"].(NestedType)
	require.True(t, ok)
	assert.Equal(t, TypeString, nested.Schema()["city"])

	assert.True(t, ValidateSchema(map[string]any{
		"value": nil,
		"address": map[string]any{
			"city": "boston",
			"zip":  "02134",
		},
	}, schema))
}

func TestParseFieldType_Errors(t *testing.T) {
	_, err := ParseFieldType("quaternion")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownTypeTag)

	_, err = ParseFieldType([]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgEmptyUnion)

	_, err = ParseFieldType(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgBadDescriptor)

	// A bad descriptor nested inside a valid shape still fails.
	_, err = ParseSchema(map[string]any{
		"outer": map[string]any{"inner": true},
	})
	require.Error(t, err)
}

func TestSchemaDescriptor_RoundTrip(t *testing.T) {
	original := Schema{
		"name":  TypeString,
		"count": TypeInteger,
		"maybe": Union(TypeFloat, TypeNull),
		"loc": Nested(Schema{
			"lat": TypeFloat,
			"lon": TypeFloat,
		}),
		"tags": TypeList,
	}

	parsed, err := ParseSchema(original.Descriptor())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
