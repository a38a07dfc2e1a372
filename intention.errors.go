package intention

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Validation errors
	ErrMsgInputSchemaMismatch  = "input data does not match schema structure"
	ErrMsgOutputSchemaMismatch = "output does not match schema structure"
	ErrMsgInvalidJSONFormat    = "invalid JSON format"
	ErrMsgInputValidation      = "input validation failed"
	ErrMsgOutputValidation     = "output validation failed"

	// Processing errors
	ErrMsgOutputNotObject = "response is not a JSON object"
	ErrMsgOutputParse     = "response could not be parsed"

	// Template errors
	ErrMsgEmptyInputSchema   = "input schema must be defined"
	ErrMsgEmptyOutputSchema  = "output schema must be defined"
	ErrMsgEmptyTemplateName  = "template name cannot be empty"
	ErrMsgTemplateNotFound   = "template not found"
	ErrMsgPromptNotImpl      = "format prompt is not implemented"
	ErrMsgOutputNotImpl      = "format output is not implemented"
	ErrMsgPromptFieldMissing = "prompt placeholder has no matching input field"

	// Configuration errors
	ErrMsgUnknownProvider = "unknown provider type"
	ErrMsgMissingAPIKey   = "provider API key is required"
	ErrMsgInvalidMode     = "invalid error handling mode"

	// Schema codec errors
	ErrMsgUnknownTypeTag  = "unknown type descriptor tag"
	ErrMsgBadDescriptor   = "type descriptor has unsupported shape"
	ErrMsgEmptyUnion      = "union descriptor needs at least one member"
	ErrMsgSpecMissingName = "template spec is missing a name"

	// Provider errors
	ErrMsgInvalidAPIKey      = "invalid API key"
	ErrMsgRateLimitExceeded  = "rate limit exceeded"
	ErrMsgRequestFailed      = "API request failed"
	ErrMsgNetworkFailure     = "network error"
	ErrMsgNoChoices          = "no choices in response"
	ErrMsgUnparseableContent = "could not parse JSON from response"
)

// Error code constants for categorization
const (
	ErrCodeValidation = "INTENTION_VALIDATION"
	ErrCodeProcessing = "INTENTION_PROCESSING"
	ErrCodeTemplate   = "INTENTION_TEMPLATE"
	ErrCodeConfig     = "INTENTION_CONFIG"
)

// NewValidationError creates a validation error carrying the recorded
// validation messages as metadata.
func NewValidationError(msg string, validationErrors []string) error {
	err := cuserr.NewValidationError(ErrCodeValidation, msg)
	for i, ve := range validationErrors {
		err = err.WithMetadata(MetaKeyErrors+"_"+strconv.Itoa(i), ve)
	}
	return err
}

// NewProcessingError creates a processing error for structural failures.
func NewProcessingError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeProcessing, msg)
	}
	return cuserr.NewValidationError(ErrCodeProcessing, msg)
}

// NewTemplateError creates an error for template construction or misuse.
func NewTemplateError(msg string, name string) error {
	return cuserr.NewValidationError(ErrCodeTemplate, msg).
		WithMetadata(MetaKeyTemplate, name)
}

// NewTemplateNotFoundError creates a registry lookup failure.
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplate, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplate, name)
}

// NewConfigurationError creates an error for bad framework configuration.
func NewConfigurationError(msg string, detail string) error {
	err := cuserr.NewValidationError(ErrCodeConfig, msg)
	if detail != "" {
		err = err.WithMetadata(MetaKeyProvider, detail)
	}
	return err
}

// NewSchemaDescriptorError creates an error for an unparseable type descriptor.
func NewSchemaDescriptorError(msg string, tag string) error {
	return cuserr.NewValidationError(ErrCodeTemplate, msg).
		WithMetadata(MetaKeyTypeTag, tag)
}

// ProviderErrorKind categorizes provider-layer failures.
type ProviderErrorKind string

const (
	ProviderErrKindGeneric        ProviderErrorKind = "provider"
	ProviderErrKindAuthentication ProviderErrorKind = "authentication"
	ProviderErrKindRateLimit      ProviderErrorKind = "rate_limit"
	ProviderErrKindResponseFormat ProviderErrorKind = "response_format"
)

// ProviderError is returned for failures at the provider HTTP boundary.
// It propagates unchanged through the client; there is no retry layer.
type ProviderError struct {
	Provider   string
	Kind       ProviderErrorKind
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	msg := e.Message
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.StatusCode != 0 {
		msg = msg + " (status " + strconv.Itoa(e.StatusCode) + ")"
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a generic provider failure.
func NewProviderError(provider, msg string, statusCode int, cause error) error {
	return &ProviderError{
		Provider:   provider,
		Kind:       ProviderErrKindGeneric,
		StatusCode: statusCode,
		Message:    msg,
		Cause:      cause,
	}
}

// NewAuthenticationError creates an error for rejected credentials.
func NewAuthenticationError(provider string) error {
	return &ProviderError{
		Provider:   provider,
		Kind:       ProviderErrKindAuthentication,
		StatusCode: 401,
		Message:    ErrMsgInvalidAPIKey,
	}
}

// NewRateLimitError creates an error for provider throttling.
func NewRateLimitError(provider string) error {
	return &ProviderError{
		Provider:   provider,
		Kind:       ProviderErrKindRateLimit,
		StatusCode: 429,
		Message:    ErrMsgRateLimitExceeded,
	}
}

// NewResponseFormatError creates an error for unparseable provider payloads.
func NewResponseFormatError(provider, msg string, cause error) error {
	return &ProviderError{
		Provider: provider,
		Kind:     ProviderErrKindResponseFormat,
		Message:  msg,
		Cause:    cause,
	}
}

// providerErrorKind extracts the kind from an error chain, or "" if the error
// is not a ProviderError.
func providerErrorKind(err error) ProviderErrorKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// IsAuthenticationError reports whether err is a credential rejection.
func IsAuthenticationError(err error) bool {
	return providerErrorKind(err) == ProviderErrKindAuthentication
}

// IsRateLimitError reports whether err is provider throttling.
func IsRateLimitError(err error) bool {
	return providerErrorKind(err) == ProviderErrKindRateLimit
}

// IsResponseFormatError reports whether err is an unparseable provider payload.
func IsResponseFormatError(err error) bool {
	return providerErrorKind(err) == ProviderErrKindResponseFormat
}

// IsProviderError reports whether err originated at the provider boundary.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
