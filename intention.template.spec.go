package intention

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplateSpec is the declarative, serializable form of a template. Specs
// are what storage backends persist and what the CLI consumes: a prompt
// text with {{field}} placeholders plus input and output schemas in the
// descriptor language understood by ParseSchema.
type TemplateSpec struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string         `json:"version,omitempty" yaml:"version,omitempty"`
	Prompt      string         `json:"prompt" yaml:"prompt"`
	Input       map[string]any `json:"input" yaml:"input"`
	Output      map[string]any `json:"output" yaml:"output"`
}

// ParseTemplateSpecYAML decodes a YAML template spec.
func ParseTemplateSpecYAML(data []byte) (*TemplateSpec, error) {
	var spec TemplateSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, NewProcessingError(ErrMsgOutputParse, err)
	}
	return &spec, nil
}

// ParseTemplateSpecJSON decodes a JSON template spec.
func ParseTemplateSpecJSON(data []byte) (*TemplateSpec, error) {
	var spec TemplateSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, NewProcessingError(ErrMsgOutputParse, err)
	}
	return &spec, nil
}

// Template materializes the spec into a registrable template. The prompt
// function substitutes {{field}} placeholders from input data; the output
// function parses the raw response as a JSON object.
func (s *TemplateSpec) Template() (*Definition, error) {
	if s.Name == "" {
		return nil, NewSchemaDescriptorError(ErrMsgSpecMissingName, "")
	}

	inputSchema, err := ParseSchema(s.Input)
	if err != nil {
		return nil, err
	}
	outputSchema, err := ParseSchema(s.Output)
	if err != nil {
		return nil, err
	}

	opts := []TemplateOption{
		WithDescription(s.Description),
		WithPromptFunc(promptRenderer(s.Name, s.Prompt)),
		WithOutputFunc(jsonObjectOutput),
	}
	if s.Version != "" {
		opts = append(opts, WithVersion(s.Version))
	}
	return NewTemplate(s.Name, inputSchema, outputSchema, opts...)
}

// promptRenderer builds a PromptFunc that substitutes {{field}} placeholders
// with values from the input data. A placeholder left unresolved after
// substitution means the data was missing a field the prompt needs.
func promptRenderer(name, prompt string) PromptFunc {
	return func(data map[string]any) (string, error) {
		rendered := prompt
		for field, value := range data {
			placeholder := PlaceholderOpen + field + PlaceholderClose
			rendered = strings.ReplaceAll(rendered, placeholder, fmt.Sprint(value))
		}
		if strings.Contains(rendered, PlaceholderOpen) {
			return "", NewTemplateError(ErrMsgPromptFieldMissing, name)
		}
		return rendered, nil
	}
}

// jsonObjectOutput parses a raw response as a top-level JSON object.
func jsonObjectOutput(raw string) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, NewProcessingError(ErrMsgOutputParse, err)
	}
	return out, nil
}
