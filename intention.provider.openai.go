package intention

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// OpenAIProvider implements Provider against the OpenAI chat completions
// API.
type OpenAIProvider struct {
	config ProviderConfig
	client *http.Client
	logger *zap.Logger
}

// NewOpenAIProvider creates an OpenAI provider. The API key is required;
// all other config fields fall back to defaults.
func NewOpenAIProvider(config ProviderConfig, opts ...ProviderOption) (*OpenAIProvider, error) {
	config, client, logger, err := prepareProviderConfig(config, OpenAIAPIBase, DefaultOpenAIModel, opts)
	if err != nil {
		return nil, err
	}
	return &OpenAIProvider{config: config, client: client, logger: logger}, nil
}

// Name returns the provider type identifier.
func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

// Complete sends the prompt to OpenAI and shapes the reply.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt string) (*ProviderResponse, error) {
	p.logger.Debug("sending prompt",
		zap.String("provider", ProviderOpenAI),
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

	resp, err := completeChat(ctx, p.client, ProviderOpenAI, p.config.BaseURL+"/chat/completions", p.config.APIKey, req)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("received completion",
		zap.String("provider", ProviderOpenAI),
		zap.Int("response_len", len(resp.RawResponse)))
	return resp, nil
}

// ValidateConnection checks credentials against the models endpoint.
func (p *OpenAIProvider) ValidateConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.BaseURL+"/models", http.NoBody)
	if err != nil {
		return NewProviderError(ProviderOpenAI, ErrMsgRequestFailed, 0, err)
	}
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return NewProviderError(ProviderOpenAI, ErrMsgNetworkFailure, 0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return NewAuthenticationError(ProviderOpenAI)
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewRateLimitError(ProviderOpenAI)
	case resp.StatusCode != http.StatusOK:
		return NewProviderError(ProviderOpenAI, ErrMsgRequestFailed, resp.StatusCode, nil)
	}
	return nil
}
