package intention

// DefaultTemplateVersion is assigned when a template declares no version.
const DefaultTemplateVersion = "1.0.0"

// Template is the capability contract consumed by the client: two schemas
// and two pure formatting functions. Implementations must not mutate their
// schemas after construction.
type Template interface {
	// Name returns the unique, non-empty registry key.
	Name() string
	// Description returns an optional human-readable summary.
	Description() string
	// Version returns the template version string.
	Version() string
	// InputSchema declares the fields required of request data.
	InputSchema() Schema
	// OutputSchema declares the fields expected of provider output.
	OutputSchema() Schema
	// FormatPrompt converts validated input data into a prompt string.
	FormatPrompt(data map[string]any) (string, error)
	// FormatOutput converts a raw provider response into structured data.
	FormatOutput(raw string) (map[string]any, error)
}

// PromptFunc converts input data into a prompt string.
type PromptFunc func(data map[string]any) (string, error)

// OutputFunc converts a raw response into structured data.
type OutputFunc func(raw string) (map[string]any, error)

// Definition is a Template built from constructor-injected values. There is
// no inheritance and no shared mutable schema state between definitions.
type Definition struct {
	name         string
	description  string
	version      string
	inputSchema  Schema
	outputSchema Schema
	promptFunc   PromptFunc
	outputFunc   OutputFunc
}

// TemplateOption configures a Definition during construction.
type TemplateOption func(*Definition)

// WithDescription sets the template description.
func WithDescription(description string) TemplateOption {
	return func(d *Definition) {
		d.description = description
	}
}

// WithVersion sets the template version string.
func WithVersion(version string) TemplateOption {
	return func(d *Definition) {
		d.version = version
	}
}

// WithPromptFunc sets the prompt formatter.
func WithPromptFunc(fn PromptFunc) TemplateOption {
	return func(d *Definition) {
		d.promptFunc = fn
	}
}

// WithOutputFunc sets the response parser.
func WithOutputFunc(fn OutputFunc) TemplateOption {
	return func(d *Definition) {
		d.outputFunc = fn
	}
}

// NewTemplate creates a template definition. Construction fails when the
// name is empty or either schema has no fields. Formatter functions left
// unset fail with a not-implemented error when called.
func NewTemplate(name string, inputSchema, outputSchema Schema, opts ...TemplateOption) (*Definition, error) {
	if name == "" {
		return nil, NewTemplateError(ErrMsgEmptyTemplateName, name)
	}
	if len(inputSchema) == 0 {
		return nil, NewTemplateError(ErrMsgEmptyInputSchema, name)
	}
	if len(outputSchema) == 0 {
		return nil, NewTemplateError(ErrMsgEmptyOutputSchema, name)
	}

	def := &Definition{
		name:         name,
		version:      DefaultTemplateVersion,
		inputSchema:  inputSchema,
		outputSchema: outputSchema,
	}
	for _, opt := range opts {
		opt(def)
	}
	return def, nil
}

// MustNewTemplate creates a template definition and panics on error.
func MustNewTemplate(name string, inputSchema, outputSchema Schema, opts ...TemplateOption) *Definition {
	def, err := NewTemplate(name, inputSchema, outputSchema, opts...)
	if err != nil {
		panic(err)
	}
	return def
}

// Name returns the registry key.
func (d *Definition) Name() string { return d.name }

// Description returns the optional summary.
func (d *Definition) Description() string { return d.description }

// Version returns the template version.
func (d *Definition) Version() string { return d.version }

// InputSchema returns the declared input schema.
func (d *Definition) InputSchema() Schema { return d.inputSchema }

// OutputSchema returns the declared output schema.
func (d *Definition) OutputSchema() Schema { return d.outputSchema }

// FormatPrompt converts input data into a prompt string. Definitions
// without a prompt function fail with a template error.
func (d *Definition) FormatPrompt(data map[string]any) (string, error) {
	if d.promptFunc == nil {
		return "", NewTemplateError(ErrMsgPromptNotImpl, d.name)
	}
	return d.promptFunc(data)
}

// FormatOutput converts a raw response into structured data. Definitions
// without an output function fail with a template error.
func (d *Definition) FormatOutput(raw string) (map[string]any, error) {
	if d.outputFunc == nil {
		return nil, NewTemplateError(ErrMsgOutputNotImpl, d.name)
	}
	return d.outputFunc(raw)
}
