package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/nrayl/intention"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadSpec reads and parses a template spec. YAML is assumed unless the path
// ends in .json; stdin is always tried as YAML first since YAML is a JSON
// superset for the shapes specs use.
func loadSpec(path string, stdin io.Reader) (*intention.TemplateSpec, error) {
	raw, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(path, ".json") {
		return intention.ParseTemplateSpecJSON(raw)
	}
	return intention.ParseTemplateSpecYAML(raw)
}

// loadData parses input data from an inline JSON string or a file. No data
// means an empty map.
func loadData(jsonStr, filePath string) (map[string]any, error) {
	var jsonData []byte

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		jsonData = data
	} else if jsonStr != "" {
		jsonData = []byte(jsonStr)
	} else {
		return make(map[string]any), nil
	}

	var result map[string]any
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return nil, err
	}

	return result, nil
}
