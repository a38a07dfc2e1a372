package intention

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"

	"go.uber.org/zap"
)

// Provider is the contract for LLM completion backends. Implementations are
// safe for concurrent use and must respect context cancellation.
type Provider interface {
	// Complete sends a prompt and returns the shaped response. Failures are
	// categorized: authentication, rate limit, response format or generic
	// provider errors.
	Complete(ctx context.Context, prompt string) (*ProviderResponse, error)

	// ValidateConnection verifies credentials and reachability without
	// performing useful work. A nil error means the provider is usable.
	ValidateConnection(ctx context.Context) error

	// Name returns the provider type identifier.
	Name() string
}

// ProviderConfig configures an HTTP provider. Zero values fall back to
// per-provider defaults.
type ProviderConfig struct {
	// APIKey is the bearer token. Required.
	APIKey string
	// BaseURL overrides the provider API base.
	BaseURL string
	// Model overrides the provider default model.
	Model string
	// Temperature controls sampling randomness. Default: 0.7.
	Temperature float64
	// MaxTokens limits response length. Default: 1000.
	MaxTokens int
	// HTTPClient overrides the transport. Default: client with a 30s timeout.
	HTTPClient *http.Client
}

// NewProvider creates a provider by type identifier. Unknown types are a
// configuration error.
func NewProvider(providerType string, config ProviderConfig) (Provider, error) {
	switch providerType {
	case ProviderOpenAI:
		return NewOpenAIProvider(config)
	case ProviderPerplexity:
		return NewPerplexityProvider(config)
	default:
		return nil, NewConfigurationError(ErrMsgUnknownProvider, providerType)
	}
}

// ProviderOption configures optional provider collaborators.
type ProviderOption func(*providerOptions)

type providerOptions struct {
	logger *zap.Logger
}

// WithProviderLogger sets the logger used by a provider.
func WithProviderLogger(logger *zap.Logger) ProviderOption {
	return func(o *providerOptions) {
		o.logger = logger
	}
}

// prepareProviderConfig validates the API key, backfills defaults and
// resolves the HTTP client and logger shared by all providers.
func prepareProviderConfig(config ProviderConfig, defaultBase, defaultModel string, opts []ProviderOption) (ProviderConfig, *http.Client, *zap.Logger, error) {
	if config.APIKey == "" {
		return config, nil, nil, NewConfigurationError(ErrMsgMissingAPIKey, "")
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBase
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultRequestTimeout}
	}

	options := &providerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return config, client, logger, nil
}

// chatMessage is one turn in an OpenAI-style chat completion request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the OpenAI-style chat completion request body, which both
// supported providers accept.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatResponse struct {
	Choices []chatChoice   `json:"choices"`
	Usage   map[string]any `json:"usage"`
}

// jsonObjectPattern extracts the outermost JSON object from chatty model
// output that wraps it in prose.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// completeChat posts a chat completion and shapes the reply into a
// ProviderResponse. Both providers share the wire format; only base URL,
// defaults and connection validation differ.
func completeChat(ctx context.Context, client *http.Client, provider, url, apiKey string, reqBody chatRequest) (*ProviderResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, NewProviderError(provider, ErrMsgRequestFailed, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, NewProviderError(provider, ErrMsgRequestFailed, 0, err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, NewProviderError(provider, ErrMsgNetworkFailure, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewProviderError(provider, ErrMsgNetworkFailure, 0, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, NewAuthenticationError(provider)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewRateLimitError(provider)
	case resp.StatusCode != http.StatusOK:
		return nil, NewProviderError(provider, ErrMsgRequestFailed+": "+string(body), resp.StatusCode, nil)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, NewResponseFormatError(provider, ErrMsgUnparseableContent, err)
	}
	if len(parsed.Choices) == 0 {
		return nil, NewResponseFormatError(provider, ErrMsgNoChoices, nil)
	}

	raw := parsed.Choices[0].Message.Content
	formatted, raw, err := shapeCompletion(provider, raw)
	if err != nil {
		return nil, err
	}

	return &ProviderResponse{
		RawResponse:       raw,
		FormattedResponse: formatted,
		Metadata: map[string]any{
			ProviderMetaKeyModel:        reqBody.Model,
			ProviderMetaKeyUsage:        parsed.Usage,
			ProviderMetaKeyFinishReason: parsed.Choices[0].FinishReason,
		},
	}, nil
}

// shapeCompletion parses model output into a JSON object. When the text is
// not pure JSON it falls back to extracting the outermost object, narrowing
// the raw response to the extracted span so downstream validation sees the
// same bytes that parsed.
func shapeCompletion(provider, raw string) (map[string]any, string, error) {
	var formatted map[string]any
	if err := json.Unmarshal([]byte(raw), &formatted); err == nil {
		return formatted, raw, nil
	}

	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return nil, raw, NewResponseFormatError(provider, ErrMsgUnparseableContent, nil)
	}
	if err := json.Unmarshal([]byte(match), &formatted); err != nil {
		return nil, raw, NewResponseFormatError(provider, ErrMsgUnparseableContent, err)
	}
	return formatted, match, nil
}
