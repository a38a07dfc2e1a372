package intention

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Client.
type Option func(*clientConfig)

// clientConfig holds the internal configuration for a Client.
type clientConfig struct {
	registry        *Registry
	processorConfig ProcessorConfig
	logger          *zap.Logger
}

// defaultClientConfig returns the default client configuration.
func defaultClientConfig() *clientConfig {
	return &clientConfig{
		processorConfig: DefaultProcessorConfig(),
		logger:          nil,
	}
}

// WithRegistry supplies a pre-populated template registry.
// Default: a fresh empty registry.
func WithRegistry(registry *Registry) Option {
	return func(c *clientConfig) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithProcessorConfig sets the configuration shared by the input and output
// processors.
// Default: DefaultProcessorConfig (strict).
func WithProcessorConfig(config ProcessorConfig) Option {
	return func(c *clientConfig) {
		c.processorConfig = config
	}
}

// WithLogger sets the logger for the client and its processors.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
