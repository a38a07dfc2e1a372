package intention

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// PerplexityProvider implements Provider against the Perplexity chat
// completions API.
type PerplexityProvider struct {
	config ProviderConfig
	client *http.Client
	logger *zap.Logger
}

// NewPerplexityProvider creates a Perplexity provider. The API key is
// required; all other config fields fall back to defaults.
func NewPerplexityProvider(config ProviderConfig, opts ...ProviderOption) (*PerplexityProvider, error) {
	config, client, logger, err := prepareProviderConfig(config, PerplexityAPIBase, DefaultPerplexityModel, opts)
	if err != nil {
		return nil, err
	}
	return &PerplexityProvider{config: config, client: client, logger: logger}, nil
}

// Name returns the provider type identifier.
func (p *PerplexityProvider) Name() string { return ProviderPerplexity }

// Complete sends the prompt to Perplexity and shapes the reply.
func (p *PerplexityProvider) Complete(ctx context.Context, prompt string) (*ProviderResponse, error) {
	p.logger.Debug("sending prompt",
		zap.String("provider", ProviderPerplexity),
		zap.String("model", p.config.Model),
		zap.Int("prompt_len", len(prompt)))

	req := chatRequest{
		Model: p.config.Model,
		Messages: []chatMessage{
			{Role: RoleSystem, Content: JSONSystemPrompt},
			{Role: RoleUser, Content: prompt},
		},
		Temperature: p.config.Temperature,
		MaxTokens:   p.config.MaxTokens,
	}

	resp, err := completeChat(ctx, p.client, ProviderPerplexity, p.config.BaseURL+"/chat/completions", p.config.APIKey, req)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("received completion",
		zap.String("provider", ProviderPerplexity),
		zap.Int("response_len", len(resp.RawResponse)))
	return resp, nil
}

// ValidateConnection issues a minimal completion. Perplexity has no models
// endpoint, so a one-token request is the cheapest credential check.
func (p *PerplexityProvider) ValidateConnection(ctx context.Context) error {
	req := chatRequest{
		Model: p.config.Model,
		Messages: []chatMessage{
			{Role: RoleUser, Content: "test"},
		},
		MaxTokens: 1,
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return NewProviderError(ProviderPerplexity, ErrMsgRequestFailed, 0, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return NewProviderError(ProviderPerplexity, ErrMsgRequestFailed, 0, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return NewProviderError(ProviderPerplexity, ErrMsgNetworkFailure, 0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return NewAuthenticationError(ProviderPerplexity)
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewRateLimitError(ProviderPerplexity)
	case resp.StatusCode != http.StatusOK:
		return NewProviderError(ProviderPerplexity, ErrMsgRequestFailed, resp.StatusCode, nil)
	}
	return nil
}
