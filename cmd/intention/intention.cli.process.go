package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/nrayl/intention"
)

// processConfig holds parsed process command configuration
type processConfig struct {
	specPath     string
	dataJSON     string
	dataFilePath string
	provider     string
	model        string
	mode         string
	envFile      string
	outputPath   string
}

func runProcess(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseProcessFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingSpec, err)
		return ExitCodeUsageError
	}

	loadEnvFile(cfg.envFile)

	spec, err := loadSpec(cfg.specPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	tmpl, err := spec.Template()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseSpecFailed, err)
		return ExitCodeValidationError
	}

	data, err := loadData(cfg.dataJSON, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidJSON, err)
		return ExitCodeInputError
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingAPIKey, err)
		return ExitCodeUsageError
	}

	processorConfig := intention.DefaultProcessorConfig()
	processorConfig.ErrorHandling = cfg.mode
	processorConfig.StrictMode = cfg.mode == intention.ModeStrict

	client, err := intention.NewClient(provider,
		intention.WithProcessorConfig(processorConfig),
	)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgProcessFailed, err)
		return ExitCodeError
	}
	client.RegisterTemplate(tmpl)

	result, err := client.Process(context.Background(), tmpl.Name(), data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgProcessFailed, err)
		return ExitCodeError
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgJSONMarshalFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, append(jsonBytes, '\n'), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseProcessFlags(args []string) (*processConfig, error) {
	fs := flag.NewFlagSet(CmdNameProcess, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &processConfig{}

	fs.StringVar(&cfg.specPath, FlagSpec, "", "")
	fs.StringVar(&cfg.specPath, FlagSpecShort, "", "")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "")
	fs.StringVar(&cfg.dataJSON, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.provider, FlagProvider, "", "")
	fs.StringVar(&cfg.provider, FlagProviderShort, "", "")
	fs.StringVar(&cfg.model, FlagModel, "", "")
	fs.StringVar(&cfg.mode, FlagMode, intention.ModeStrict, "")
	fs.StringVar(&cfg.envFile, FlagEnvFile, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.specPath == "" {
		return nil, errors.New(ErrMsgMissingSpec)
	}

	switch cfg.mode {
	case intention.ModeStrict, intention.ModeLenient, intention.ModeIgnore:
	default:
		return nil, errors.New(intention.ErrMsgInvalidMode)
	}

	return cfg, nil
}

// loadEnvFile loads environment variables from a dotenv file. Without an
// explicit flag, a missing .env is not an error.
func loadEnvFile(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	if _, err := os.Stat(DefaultEnvFile); err == nil {
		_ = godotenv.Load(DefaultEnvFile)
	}
}

// buildProvider resolves the provider name, model and API key from flags and
// the environment.
func buildProvider(cfg *processConfig) (intention.Provider, error) {
	name := cfg.provider
	if name == "" {
		name = os.Getenv(EnvProvider)
	}
	if name == "" {
		name = intention.ProviderOpenAI
	}

	model := cfg.model
	if model == "" {
		model = os.Getenv(EnvModel)
	}

	var apiKey string
	switch name {
	case intention.ProviderPerplexity:
		apiKey = os.Getenv(EnvPerplexityAPIKey)
	default:
		apiKey = os.Getenv(EnvOpenAIAPIKey)
	}

	return intention.NewProvider(name, intention.ProviderConfig{
		APIKey: apiKey,
		Model:  model,
	})
}
