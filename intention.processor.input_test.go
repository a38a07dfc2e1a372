package intention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInputProcessor(t *testing.T, mode string) *InputProcessor {
	t.Helper()
	cfg := DefaultProcessorConfig()
	cfg.ErrorHandling = mode
	p, err := NewInputProcessor(cfg, nil)
	require.NoError(t, err)
	return p
}

func TestInputProcessor_ValidateStrict(t *testing.T) {
	p := newTestInputProcessor(t, ModeStrict)
	schema := Schema{"city": TypeString}

	result, err := p.Validate(map[string]any{"city": "Boston"}, schema)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)

	_, err = p.Validate(map[string]any{}, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInputValidation)
}

func TestInputProcessor_ValidateLenient(t *testing.T) {
	p := newTestInputProcessor(t, ModeLenient)
	schema := Schema{"city": TypeString}

	result, err := p.Validate(map[string]any{"city": 5}, schema)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{ErrMsgInputSchemaMismatch}, result.Errors)
}

func TestInputProcessor_ValidateIgnore(t *testing.T) {
	// Ignore mode records nothing and always reports valid.
	p := newTestInputProcessor(t, ModeIgnore)
	schema := Schema{"city": TypeString}

	result, err := p.Validate(map[string]any{}, schema)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestInputProcessor_ValidateDisabled(t *testing.T) {
	cfg := DefaultProcessorConfig()
	cfg.ValidateSchema = false
	p, err := NewInputProcessor(cfg, nil)
	require.NoError(t, err)

	result, err := p.Validate(map[string]any{}, Schema{"x": TypeString})
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestInputProcessor_InvalidMode(t *testing.T) {
	cfg := DefaultProcessorConfig()
	cfg.ErrorHandling = "whatever"
	_, err := NewInputProcessor(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidMode)
}

func TestInputProcessor_ProcessLowercases(t *testing.T) {
	p := newTestInputProcessor(t, ModeStrict)
	out := p.Process(map[string]any{"city": "Boston"})
	assert.Equal(t, map[string]any{"city": "boston"}, out)
}

func TestInputProcessor_ProcessNumericStrings(t *testing.T) {
	p := newTestInputProcessor(t, ModeStrict)
	out := p.Process(map[string]any{
		"count": "42",
		"price": "19.99",
		"name":  "Widget",
	})
	assert.Equal(t, int64(42), out["count"])
	assert.Equal(t, 19.99, out["price"])
	assert.Equal(t, "widget", out["name"])
}

func TestInputProcessor_ProcessIsShallow(t *testing.T) {
	// Nested values pass through untouched; only the output processor
	// coerces recursively.
	p := newTestInputProcessor(t, ModeStrict)
	nested := map[string]any{"inner": "UPPER"}
	out := p.Process(map[string]any{"nested": nested, "list": []any{"X"}})
	assert.Equal(t, nested, out["nested"])
	assert.Equal(t, []any{"X"}, out["list"])
}

func TestInputProcessor_ProcessRejectsMixedTokens(t *testing.T) {
	p := newTestInputProcessor(t, ModeStrict)
	out := p.Process(map[string]any{
		"version": "1.2.3",
		"code":    "a12",
	})
	assert.Equal(t, "1.2.3", out["version"])
	assert.Equal(t, "a12", out["code"])
}

func TestInputProcessor_ProcessDoesNotMutateInput(t *testing.T) {
	p := newTestInputProcessor(t, ModeStrict)
	in := map[string]any{"city": "Boston"}
	_ = p.Process(in)
	assert.Equal(t, "Boston", in["city"])
}

func TestInputProcessor_Sanitize(t *testing.T) {
	p := newTestInputProcessor(t, ModeStrict)
	out := p.Sanitize(map[string]any{
		"q":   `Rob'; DROP TABLE--"`,
		"x":   "<script>alert(1)</script>ok",
		"num": 5,
	})
	assert.Equal(t, "Rob DROP TABLE--", out["q"])
	assert.Equal(t, "alert(1)ok", out["x"])
	assert.Equal(t, 5, out["num"])
}

func TestIsNumericToken(t *testing.T) {
	assert.True(t, isNumericToken("42"))
	assert.True(t, isNumericToken("4.2"))
	assert.True(t, isNumericToken("42."))
	assert.False(t, isNumericToken(""))
	assert.False(t, isNumericToken("."))
	assert.False(t, isNumericToken("1.2.3"))
	assert.False(t, isNumericToken("12a"))
	assert.False(t, isNumericToken("-1"))
}
