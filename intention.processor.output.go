package intention

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutputProcessor validates, normalizes and enriches raw provider responses.
type OutputProcessor struct {
	config ProcessorConfig
	logger *zap.Logger

	// Injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewOutputProcessor creates an output processor. A nil logger disables
// logging.
func NewOutputProcessor(config ProcessorConfig, logger *zap.Logger) (*OutputProcessor, error) {
	config, err := config.normalize()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OutputProcessor{
		config: config,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// Validate checks raw provider text against the template's output schema.
//
// Malformed JSON fails immediately in every mode, including lenient and
// ignore; nothing downstream can work with text that does not parse. A
// structural failure (top level is not an object) aborts in strict mode and
// is recorded otherwise. The schema check runs against the coerced value
// produced by Format, so a schema expecting string-typed numeric fields can
// fail here after coercion turned them into numbers.
func (p *OutputProcessor) Validate(raw string, schema Schema) (*ValidationResult, error) {
	result := &ValidationResult{Valid: true}

	if !json.Valid([]byte(raw)) {
		result.addError(ErrMsgInvalidJSONFormat)
		return result, nil
	}

	parsed, err := p.Format(raw)
	if err != nil {
		if p.config.ErrorHandling == ModeStrict {
			return nil, err
		}
		if p.config.ErrorHandling == ModeLenient {
			result.addError(err.Error())
		}
		return result, nil
	}

	if p.config.ValidateSchema && p.config.ErrorHandling != ModeIgnore {
		if !ValidateSchema(parsed, schema) {
			result.addError(ErrMsgOutputSchemaMismatch)
			p.logger.Debug("output schema validation failed",
				zap.Int("field_count", len(parsed)),
				zap.Int("schema_fields", len(schema)))
		}
	}

	if p.config.ErrorHandling == ModeStrict && !result.Valid {
		return nil, NewValidationError(ErrMsgOutputValidation, result.Errors)
	}
	return result, nil
}

// Format parses raw provider text into a mapping and recursively coerces it.
// The top-level JSON value must be an object; arrays and scalars are a
// processing error.
func (p *OutputProcessor) Format(raw string) (map[string]any, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, NewProcessingError(ErrMsgOutputParse, err)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, NewProcessingError(ErrMsgOutputNotObject, nil)
	}

	coerced, ok := Coerce(obj).(map[string]any)
	if !ok {
		// Coerce preserves container shape; this cannot happen.
		return nil, NewProcessingError(ErrMsgOutputParse, nil)
	}
	return coerced, nil
}

// EnrichOutput shallow-copies data, attaches context verbatim under the
// reserved context key when supplied, and unconditionally attaches a
// metadata block with a UTC timestamp, the framework version and a request
// id. EnrichOutput never fails.
func (p *OutputProcessor) EnrichOutput(data map[string]any, context map[string]any) map[string]any {
	out := make(map[string]any, len(data)+2)
	for key, value := range data {
		out[key] = value
	}

	if context != nil {
		out[EnrichKeyContext] = context
	}

	out[EnrichKeyMetadata] = map[string]any{
		MetadataKeyProcessedAt: p.now().UTC().Format(time.RFC3339),
		MetadataKeyVersion:     Version,
		MetadataKeyRequestID:   p.newID(),
	}
	return out
}
