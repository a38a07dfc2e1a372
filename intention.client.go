package intention

import (
	"context"

	"go.uber.org/zap"
)

// Client sequences the processing pipeline: template lookup, input
// validation, prompt formatting, the provider call, output validation and
// enrichment. The flow is strictly linear; there is no retry, no partial
// result and nothing to roll back. Calls are independent, so a single
// client may serve many concurrent Process calls.
type Client struct {
	provider Provider
	registry *Registry
	input    *InputProcessor
	output   *OutputProcessor
	logger   *zap.Logger
}

// NewClient creates a client for the given provider.
func NewClient(provider Provider, opts ...Option) (*Client, error) {
	config := defaultClientConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := config.registry
	if registry == nil {
		registry = NewRegistry()
	}

	input, err := NewInputProcessor(config.processorConfig, logger)
	if err != nil {
		return nil, err
	}
	output, err := NewOutputProcessor(config.processorConfig, logger)
	if err != nil {
		return nil, err
	}

	return &Client{
		provider: provider,
		registry: registry,
		input:    input,
		output:   output,
		logger:   logger,
	}, nil
}

// RegisterTemplate adds a template to the client's registry. Last
// registration under a name wins.
func (c *Client) RegisterTemplate(tmpl Template) {
	c.registry.Register(tmpl)
}

// Registry returns the client's template registry.
func (c *Client) Registry() *Registry {
	return c.registry
}

// ValidateConnection checks provider credentials and reachability.
func (c *Client) ValidateConnection(ctx context.Context) error {
	return c.provider.ValidateConnection(ctx)
}

// Process runs data through the named template and returns the enriched,
// schema-validated result. Any failure at any step aborts the whole call.
func (c *Client) Process(ctx context.Context, templateName string, data map[string]any) (map[string]any, error) {
	tmpl, err := c.registry.Get(templateName)
	if err != nil {
		return nil, err
	}

	inputResult, err := c.input.Validate(data, tmpl.InputSchema())
	if err != nil {
		return nil, err
	}
	if !inputResult.Valid {
		c.logger.Warn("input validation failed, continuing in non-strict mode",
			zap.String("template", templateName),
			zap.Strings("errors", inputResult.Errors))
	}

	processed := c.input.Process(data)

	prompt, err := tmpl.FormatPrompt(processed)
	if err != nil {
		return nil, err
	}

	resp, err := c.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	outputResult, err := c.output.Validate(resp.RawResponse, tmpl.OutputSchema())
	if err != nil {
		return nil, err
	}
	if !outputResult.Valid {
		c.logger.Warn("output validation failed, continuing in non-strict mode",
			zap.String("template", templateName),
			zap.Strings("errors", outputResult.Errors))
	}

	formatted, err := c.output.Format(resp.RawResponse)
	if err != nil {
		return nil, err
	}

	enrichCtx := map[string]any{
		ContextKeyTemplate: templateName,
		ContextKeyProvider: resp.Metadata,
		ContextKeyInput:    processed,
	}
	return c.output.EnrichOutput(formatted, enrichCtx), nil
}
