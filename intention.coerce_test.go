package intention

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce_IntegerString(t *testing.T) {
	assert.Equal(t, int64(42), Coerce("42"))
}

func TestCoerce_FloatString(t *testing.T) {
	assert.Equal(t, 3.14, Coerce("3.14"))
}

func TestCoerce_DoubleDotFallsThrough(t *testing.T) {
	// "12.3.4" fails the float parse; no second attempt, no partial parse.
	assert.Equal(t, "12.3.4", Coerce("12.3.4"))
}

func TestCoerce_WhitespaceTrimmed(t *testing.T) {
	assert.Equal(t, int64(2), Coerce(" 2 "))
	assert.Equal(t, "x", Coerce(" x "))
}

func TestCoerce_NonStringLeavesUnchanged(t *testing.T) {
	assert.Equal(t, 7, Coerce(7))
	assert.Equal(t, 1.5, Coerce(1.5))
	assert.Equal(t, true, Coerce(true))
	assert.Nil(t, Coerce(nil))
}

func TestCoerce_RecursesContainers(t *testing.T) {
	in := map[string]any{
		"a": "1",
		"b": []any{" 2 ", "x", map[string]any{"c": "3.5"}},
	}
	out := Coerce(in)
	assert.Equal(t, map[string]any{
		"a": int64(1),
		"b": []any{int64(2), "x", map[string]any{"c": 3.5}},
	}, out)
}

func TestCoerce_Idempotent(t *testing.T) {
	in := map[string]any{
		"n":    "42",
		"f":    "3.14",
		"s":    " keep ",
		"list": []any{"1", "a", "2.2.2"},
	}
	once := Coerce(in)
	twice := Coerce(once)
	assert.Equal(t, once, twice)
}

func TestCoerce_JSONNumbers(t *testing.T) {
	assert.Equal(t, int64(42), Coerce(json.Number("42")))
	assert.Equal(t, 4.2, Coerce(json.Number("4.2")))
	assert.Equal(t, 100000.0, Coerce(json.Number("1e5")))
}
