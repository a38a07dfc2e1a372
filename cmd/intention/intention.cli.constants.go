package main

// Command names
const (
	CmdNameValidate = "validate"
	CmdNameRender   = "render"
	CmdNameProcess  = "process"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagSpec     = "spec"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagOutput   = "output"
	FlagProvider = "provider"
	FlagModel    = "model"
	FlagMode     = "mode"
	FlagFormat   = "format"
	FlagEnvFile  = "env-file"
)

// Flag names - short form
const (
	FlagSpecShort     = "s"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagProviderShort = "p"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Environment variable names
const (
	EnvProvider         = "INTENTION_PROVIDER"
	EnvModel            = "INTENTION_MODEL"
	EnvOpenAIAPIKey     = "OPENAI_API_KEY"
	EnvPerplexityAPIKey = "PERPLEXITY_API_KEY"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingSpec       = "template spec file required"
	ErrMsgInvalidJSON       = "invalid JSON data"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgParseSpecFailed   = "template spec parsing failed"
	ErrMsgRenderFailed      = "prompt rendering failed"
	ErrMsgProcessFailed     = "processing failed"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgMissingAPIKey     = "provider API key not set"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
)

// Help text templates
const (
	HelpMainUsage = `intention - Structured LLM output pipelines

Usage:
    intention <command> [options]

Commands:
    validate    Validate a template spec and its schemas
    render      Render a prompt from a template spec and data
    process     Run a template against a live provider
    version     Show version information
    help        Show help for a command

Use "intention help <command>" for more information about a command.`

	HelpValidateUsage = `Validate a template spec and its schemas

Usage:
    intention validate [options]

Options:
    -s, --spec <file>       Template spec file, YAML or JSON (use "-" for stdin)
    -d, --data <json>       Optional input data to check against the input schema
    -f, --data-file <file>  Optional input data file
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    intention validate -s template.yaml
    intention validate -s template.yaml -d '{"city": "Boston"}'
    cat template.yaml | intention validate -s -`

	HelpRenderUsage = `Render a prompt from a template spec and data

Usage:
    intention render [options]

Options:
    -s, --spec <file>       Template spec file, YAML or JSON (use "-" for stdin)
    -d, --data <json>       JSON input data string
    -f, --data-file <file>  JSON input data file
    -o, --output <file>     Output file (default: stdout)

Examples:
    intention render -s template.yaml -d '{"city": "Boston"}'
    intention render -s template.yaml -f data.json -o prompt.txt`

	HelpProcessUsage = `Run a template against a live provider

Reads the API key from the environment (OPENAI_API_KEY or
PERPLEXITY_API_KEY) or from a .env file in the working directory.

Usage:
    intention process [options]

Options:
    -s, --spec <file>       Template spec file, YAML or JSON (use "-" for stdin)
    -d, --data <json>       JSON input data string
    -f, --data-file <file>  JSON input data file
    -p, --provider <name>   Provider: openai, perplexity (default: $INTENTION_PROVIDER or openai)
    --model <name>          Model override (default: $INTENTION_MODEL or provider default)
    --mode <mode>           Error handling mode: strict, lenient, ignore (default: strict)
    --env-file <file>       Env file to load (default: .env if present)
    -o, --output <file>     Output file (default: stdout)

Examples:
    intention process -s template.yaml -d '{"city": "Boston"}'
    intention process -s template.yaml -f data.json -p perplexity --mode lenient`

	HelpVersionUsage = `Show version information

Usage:
    intention version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    intention help [command]

Commands:
    validate    Show help for validate command
    render      Show help for render command
    process     Show help for process command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "intention version %s\nGo: %s"
)

// Validation output format templates
const (
	ValidationTextSuccess     = "Template spec is valid"
	ValidationTextIssueHeader = "Validation issues:"
	ValidationTextIssueFormat = "  %s"
)

// CLI metadata
const (
	CLIName        = "intention"
	CLIDescription = "Structured LLM output pipelines"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)

// Default env file name
const (
	DefaultEnvFile = ".env"
)
