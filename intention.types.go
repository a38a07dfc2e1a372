package intention

// ValidationResult reports the outcome of a processor validation pass.
// Valid is true exactly when Errors is empty.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// addError records a validation failure message.
func (r *ValidationResult) addError(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// ProcessorConfig configures input and output processors. Instances are
// immutable per processor; supply the config at construction time.
type ProcessorConfig struct {
	// ValidateSchema gates schema validation entirely. Default: true.
	ValidateSchema bool
	// StrictMode is reserved for custom validators; the abort decision is
	// driven by ErrorHandling. Default: true.
	StrictMode bool
	// CustomValidators names additional validators by identifier. The core
	// pipeline declares but does not dispatch these.
	CustomValidators []string
	// ErrorHandling is one of ModeStrict, ModeLenient or ModeIgnore.
	// Strict aborts on validation failure, lenient records failures in the
	// result, ignore records nothing and always reports valid.
	ErrorHandling string
}

// DefaultProcessorConfig returns the default strict configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		ValidateSchema: true,
		StrictMode:     true,
		ErrorHandling:  ModeStrict,
	}
}

// normalize backfills zero values and rejects unknown error handling modes.
func (c ProcessorConfig) normalize() (ProcessorConfig, error) {
	if c.ErrorHandling == "" {
		c.ErrorHandling = ModeStrict
	}
	switch c.ErrorHandling {
	case ModeStrict, ModeLenient, ModeIgnore:
	default:
		return c, NewConfigurationError(ErrMsgInvalidMode, c.ErrorHandling)
	}
	return c, nil
}

// ProviderResponse is the result of a single provider completion call.
// The provider does not retain it; ownership passes to the caller.
type ProviderResponse struct {
	// RawResponse is the model output text, reduced to the JSON object when
	// the provider had to extract one.
	RawResponse string `json:"raw_response"`
	// FormattedResponse is the parsed JSON object from RawResponse.
	FormattedResponse map[string]any `json:"formatted_response"`
	// Metadata carries provider details: model, usage, finish reason.
	Metadata map[string]any `json:"metadata"`
}
