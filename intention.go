// Package intention binds structured templates (prompt formatter + output
// schema) to LLM completion providers, validating data on the way in and
// normalizing responses on the way out.
//
// A template pairs an input schema, an output schema, a prompt formatter and
// a response parser. Templates are registered in a Registry and resolved by
// name; a Client sequences input validation, prompt formatting, the provider
// call, output validation and enrichment.
//
// # Basic Usage
//
//	tmpl, err := intention.NewTemplate("city_facts",
//	    intention.Schema{"city": intention.TypeString},
//	    intention.Schema{"population": intention.TypeInteger},
//	    intention.WithPromptFunc(func(data map[string]any) (string, error) {
//	        return fmt.Sprintf("Report the population of %v as JSON.", data["city"]), nil
//	    }),
//	)
//
//	registry := intention.NewRegistry()
//	registry.Register(tmpl)
//
//	provider, err := intention.NewProvider(intention.ProviderPerplexity, intention.ProviderConfig{
//	    APIKey: os.Getenv("PERPLEXITY_API_KEY"),
//	})
//	client, err := intention.NewClient(provider, intention.WithRegistry(registry))
//
//	result, err := client.Process(ctx, "city_facts", map[string]any{"city": "Boston"})
//
// # Schemas
//
// Schemas map field names to type descriptors. Descriptors form a closed set:
// primitive tags (TypeString, TypeInteger, TypeFloat, TypeBoolean, TypeNull),
// TypeList ("any sequence"), TypeMap ("any mapping"), Nested for recursive
// shapes and Union for alternatives:
//
//	intention.Schema{
//	    "name":  intention.TypeString,
//	    "age":   intention.Union(intention.TypeInteger, intention.TypeNull),
//	    "tags":  intention.TypeList,
//	    "address": intention.Nested(intention.Schema{
//	        "city": intention.TypeString,
//	    }),
//	}
//
// Validation checks presence and exact runtime type; extra fields are
// ignored. ValidateSchema and Coerce are pure functions and never return
// errors.
//
// # Declarative Templates
//
// Templates can also be declared as data (YAML or JSON) and persisted via
// pluggable storage backends (memory, PostgreSQL):
//
//	spec, err := intention.ParseTemplateSpecYAML(source)
//	tmpl, err := spec.Template()
//
// # Error Handling
//
// Processors run in strict mode by default: validation failures abort with a
// typed error. Lenient mode records failures in a ValidationResult instead.
// Provider failures are categorized (authentication, rate limit, response
// format, generic provider) and propagate unchanged through the client.
package intention
