package intention

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns a canned raw response and records the prompt it saw.
type stubProvider struct {
	raw        string
	err        error
	lastPrompt string
}

func (s *stubProvider) Complete(ctx context.Context, prompt string) (*ProviderResponse, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	var formatted map[string]any
	_ = json.Unmarshal([]byte(s.raw), &formatted)
	return &ProviderResponse{
		RawResponse:       s.raw,
		FormattedResponse: formatted,
		Metadata:          map[string]any{ProviderMetaKeyModel: "stub"},
	}, nil
}

func (s *stubProvider) ValidateConnection(ctx context.Context) error { return nil }

func (s *stubProvider) Name() string { return "stub" }

func cityTemplate(t *testing.T) *Definition {
	t.Helper()
	return MustNewTemplate("city_facts",
		Schema{"city": TypeString},
		Schema{"result": TypeString},
		WithPromptFunc(func(data map[string]any) (string, error) {
			return "tell me about " + data["city"].(string), nil
		}),
	)
}

func TestClient_ProcessHappyPath(t *testing.T) {
	provider := &stubProvider{raw: `{"result": "a nice city"}`}
	client, err := NewClient(provider)
	require.NoError(t, err)
	client.RegisterTemplate(cityTemplate(t))

	out, err := client.Process(context.Background(), "city_facts", map[string]any{"city": "Boston"})
	require.NoError(t, err)

	// Input was lowercased before prompt formatting.
	assert.Equal(t, "tell me about boston", provider.lastPrompt)
	assert.Equal(t, "a nice city", out["result"])

	enrichCtx, ok := out[EnrichKeyContext].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "city_facts", enrichCtx[ContextKeyTemplate])
	assert.Equal(t, map[string]any{"city": "boston"}, enrichCtx[ContextKeyInput])
	assert.Contains(t, out, EnrichKeyMetadata)
}

func TestClient_ProcessUnknownTemplate(t *testing.T) {
	client, err := NewClient(&stubProvider{})
	require.NoError(t, err)

	_, err = client.Process(context.Background(), "missing", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgTemplateNotFound)
}

func TestClient_ProcessInvalidInputStrict(t *testing.T) {
	client, err := NewClient(&stubProvider{raw: `{"result": "x"}`})
	require.NoError(t, err)
	client.RegisterTemplate(cityTemplate(t))

	_, err = client.Process(context.Background(), "city_facts", map[string]any{"town": "Boston"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInputValidation)
}

func TestClient_ProcessProviderErrorPropagates(t *testing.T) {
	provider := &stubProvider{err: NewRateLimitError("stub")}
	client, err := NewClient(provider)
	require.NoError(t, err)
	client.RegisterTemplate(cityTemplate(t))

	_, err = client.Process(context.Background(), "city_facts", map[string]any{"city": "Boston"})
	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))
}

func TestClient_ProcessCoercionInvalidatesStringSchema(t *testing.T) {
	// The provider answers {"result": "42"}; format coerces it to the
	// integer 42, so the string-typed output schema fails. In strict mode
	// the whole call aborts. Coercion-before-validation is preserved
	// behavior.
	provider := &stubProvider{raw: `{"result": "42"}`}
	client, err := NewClient(provider)
	require.NoError(t, err)
	client.RegisterTemplate(cityTemplate(t))

	_, err = client.Process(context.Background(), "city_facts", map[string]any{"city": "Boston"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgOutputValidation)
}

func TestClient_ProcessCoercionLenient(t *testing.T) {
	provider := &stubProvider{raw: `{"result": "42"}`}
	cfg := DefaultProcessorConfig()
	cfg.ErrorHandling = ModeLenient
	client, err := NewClient(provider, WithProcessorConfig(cfg))
	require.NoError(t, err)
	client.RegisterTemplate(cityTemplate(t))

	out, err := client.Process(context.Background(), "city_facts", map[string]any{"city": "Boston"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out["result"])
}

func TestClient_ProcessMalformedProviderJSON(t *testing.T) {
	// Even in lenient mode unparseable text cannot be formatted; the call
	// fails at the format step.
	provider := &stubProvider{raw: `not json at all`}
	cfg := DefaultProcessorConfig()
	cfg.ErrorHandling = ModeLenient
	client, err := NewClient(provider, WithProcessorConfig(cfg))
	require.NoError(t, err)
	client.RegisterTemplate(cityTemplate(t))

	_, err = client.Process(context.Background(), "city_facts", map[string]any{"city": "Boston"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgOutputParse)
}

func TestClient_WithRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(cityTemplate(t))

	client, err := NewClient(&stubProvider{raw: `{"result": "ok"}`}, WithRegistry(registry))
	require.NoError(t, err)
	assert.Same(t, registry, client.Registry())

	out, err := client.Process(context.Background(), "city_facts", map[string]any{"city": "X"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out["result"])
}

func TestClient_ValidateConnection(t *testing.T) {
	client, err := NewClient(&stubProvider{})
	require.NoError(t, err)
	assert.NoError(t, client.ValidateConnection(context.Background()))
}
