package intention

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// InputProcessor validates and normalizes request data before it reaches a
// template's prompt formatter.
type InputProcessor struct {
	config ProcessorConfig
	logger *zap.Logger
}

// NewInputProcessor creates an input processor. A nil logger disables
// logging.
func NewInputProcessor(config ProcessorConfig, logger *zap.Logger) (*InputProcessor, error) {
	config, err := config.normalize()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InputProcessor{config: config, logger: logger}, nil
}

// Validate checks data against the template's input schema. In strict mode a
// failed validation aborts with a typed error; lenient mode returns the
// failure in the result; ignore mode records nothing and always reports
// valid.
func (p *InputProcessor) Validate(data map[string]any, schema Schema) (*ValidationResult, error) {
	result := &ValidationResult{Valid: true}

	if !p.config.ValidateSchema || p.config.ErrorHandling == ModeIgnore {
		return result, nil
	}

	if !ValidateSchema(data, schema) {
		result.addError(ErrMsgInputSchemaMismatch)
		p.logger.Debug("input schema validation failed",
			zap.Int("field_count", len(data)),
			zap.Int("schema_fields", len(schema)))
	}

	if p.config.ErrorHandling == ModeStrict && !result.Valid {
		return nil, NewValidationError(ErrMsgInputValidation, result.Errors)
	}
	return result, nil
}

// Process normalizes top-level string fields: lowercase first, then convert
// all-digits-with-at-most-one-dot tokens to numbers. The pass is shallow on
// purpose; nested values are left to the output processor's recursive
// coercion. Process never fails.
func (p *InputProcessor) Process(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for field, value := range data {
		s, ok := value.(string)
		if !ok {
			out[field] = value
			continue
		}
		out[field] = normalizeInputString(strings.ToLower(s))
	}
	return out
}

// Sanitize strips quote characters, semicolons and literal script tags from
// top-level string fields. This is a blunt denylist for prompt hygiene, not
// context-aware escaping; do not treat it as a security boundary. It is not
// wired into the client pipeline.
func (p *InputProcessor) Sanitize(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for field, value := range data {
		if s, ok := value.(string); ok {
			out[field] = inputSanitizer.Replace(s)
			continue
		}
		out[field] = value
	}
	return out
}

var inputSanitizer = strings.NewReplacer(
	"'", "",
	`"`, "",
	";", "",
	"<script>", "",
	"</script>", "",
)

// normalizeInputString converts a numeric token to int64 or float64 and
// passes everything else through unchanged.
func normalizeInputString(s string) any {
	if !isNumericToken(s) {
		return s
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return s
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

// isNumericToken reports whether s consists solely of digits with at most
// one decimal point.
func isNumericToken(s string) bool {
	if s == "" {
		return false
	}
	dots := 0
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
