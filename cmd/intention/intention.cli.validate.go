package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/nrayl/intention"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	specPath     string
	dataJSON     string
	dataFilePath string
	format       string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingSpec, err)
		return ExitCodeUsageError
	}

	spec, err := loadSpec(cfg.specPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	var issues []string
	tmpl, err := spec.Template()
	if err != nil {
		issues = append(issues, err.Error())
	}

	// With data given, check it against the input schema too
	if err == nil && (cfg.dataJSON != "" || cfg.dataFilePath != "") {
		data, dataErr := loadData(cfg.dataJSON, cfg.dataFilePath)
		if dataErr != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidJSON, dataErr)
			return ExitCodeInputError
		}
		if !intention.ValidateSchema(data, tmpl.InputSchema()) {
			issues = append(issues, intention.ErrMsgInputSchemaMismatch)
		}
	}

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(issues, stdout)
	}
	return outputValidationText(issues, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

	fs.StringVar(&cfg.specPath, FlagSpec, "", "")
	fs.StringVar(&cfg.specPath, FlagSpecShort, "", "")
	fs.StringVar(&cfg.dataJSON, FlagData, "", "")
	fs.StringVar(&cfg.dataJSON, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.specPath == "" {
		return nil, errors.New(ErrMsgMissingSpec)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputValidationText(issues []string, stdout io.Writer) int {
	if len(issues) == 0 {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return ExitCodeSuccess
	}

	fmt.Fprintln(stdout, ValidationTextIssueHeader)
	for _, issue := range issues {
		fmt.Fprintf(stdout, ValidationTextIssueFormat+FmtNewline, issue)
	}
	return ExitCodeValidationError
}

func outputValidationJSON(issues []string, stdout io.Writer) int {
	output := validationOutput{
		Valid:  len(issues) == 0,
		Issues: issues,
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
