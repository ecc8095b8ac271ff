package utils

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	errUtils "github.com/molecule-go/molecule/errors"
)

const (
	// DefaultYAMLIndent is the indentation used for all generated YAML files.
	DefaultYAMLIndent = 2
)

// ConvertToYAML converts the provided value to a YAML document.
func ConvertToYAML(data any) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(DefaultYAMLIndent)

	if err := encoder.Encode(data); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteToFileAsYAML converts the provided value to YAML and writes it to the specified file.
func WriteToFileAsYAML(filePath string, data any, fileMode os.FileMode) error {
	y, err := ConvertToYAML(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, []byte(y), fileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", errUtils.ErrFileOperation, filePath, err)
	}
	return nil
}

// UnmarshalYAML parses a YAML document into the requested type.
func UnmarshalYAML[T any](input string) (T, error) {
	var data T
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return data, err
	}
	return data, nil
}
