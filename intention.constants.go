package intention

import "time"

// Version is the framework version attached to enriched output metadata.
const Version = "0.2.0"

// Error handling modes for processors.
const (
	ModeStrict  = "strict"
	ModeLenient = "lenient"
	ModeIgnore  = "ignore"
)

// Provider type identifiers for the NewProvider factory.
const (
	ProviderOpenAI     = "openai"
	ProviderPerplexity = "perplexity"
)

// Provider defaults
const (
	OpenAIAPIBase     = "https://api.openai.com/v1"
	PerplexityAPIBase = "https://api.perplexity.ai"

	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultPerplexityModel = "sonar"

	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 1000
	DefaultRequestTimeout = 30 * time.Second
)

// Chat message roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// JSONSystemPrompt steers chat models toward parseable output. Providers send
// it as the system message on every completion.
const JSONSystemPrompt = "You are a helpful assistant that provides accurate, structured information in JSON format. Always ensure your responses are valid JSON objects."

// Reserved keys attached by OutputProcessor.EnrichOutput.
const (
	EnrichKeyContext  = "context"
	EnrichKeyMetadata = "metadata"

	MetadataKeyProcessedAt = "processed_at"
	MetadataKeyVersion     = "version"
	MetadataKeyRequestID   = "request_id"
)

// Context keys attached by the client when enriching results.
const (
	ContextKeyTemplate = "template"
	ContextKeyProvider = "provider"
	ContextKeyInput    = "input"
)

// Provider response metadata keys.
const (
	ProviderMetaKeyModel        = "model"
	ProviderMetaKeyUsage        = "usage"
	ProviderMetaKeyFinishReason = "finish_reason"
)

// Type descriptor tags used by the schema codec (YAML/JSON template specs).
const (
	TypeTagString  = "string"
	TypeTagInteger = "integer"
	TypeTagFloat   = "float"
	TypeTagBoolean = "boolean"
	TypeTagNull    = "null"
	TypeTagList    = "list"
	TypeTagMap     = "map"
)

// Placeholder delimiters for declarative prompt templates.
const (
	PlaceholderOpen  = "{{"
	PlaceholderClose = "}}"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyTemplate = "template"
	MetaKeyField    = "field"
	MetaKeyProvider = "provider"
	MetaKeyMode     = "mode"
	MetaKeyErrors   = "errors"
	MetaKeyTypeTag  = "type_tag"
	MetaKeyDriver   = "driver"
)

// Storage driver names
const (
	StorageDriverNameMemory   = "memory"
	StorageDriverNamePostgres = "postgres"
)

// Postgres storage defaults
const (
	PostgresTablePrefix            = "intention_"
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)
