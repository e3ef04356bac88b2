package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// OutputFormat enumerates supported result encodings.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

const (
	jsonIndentConstant                       = "  "
	yamlIndentConstant                       = 2
	unsupportedOutputFormatTemplateConstant  = "unsupported output format %q"
	resultEncodingErrorTemplateConstant      = "unable to encode %s result: %w"
	resultFlushErrorTemplateConstant         = "unable to flush result output: %w"
	resultWriterNotConfiguredMessageConstant = "result writer not configured"
)

// OutputFormats lists the accepted output format names.
func OutputFormats() []string {
	return []string{string(OutputFormatJSON), string(OutputFormatYAML)}
}

// ParseOutputFormat normalizes a format name, accepting "yml" as YAML.
func ParseOutputFormat(formatName string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(formatName)) {
	case "", string(OutputFormatJSON):
		return OutputFormatJSON, nil
	case string(OutputFormatYAML), "yml":
		return OutputFormatYAML, nil
	default:
		return "", fmt.Errorf(unsupportedOutputFormatTemplateConstant, formatName)
	}
}

// ResultWriter encodes command results and flushes buffered writers after each result.
type ResultWriter struct {
	writer io.Writer
	format OutputFormat
	mutex  sync.Mutex
}

// NewResultWriter wraps writer with the encoder for format.
func NewResultWriter(writer io.Writer, format OutputFormat) (*ResultWriter, error) {
	if format != OutputFormatJSON && format != OutputFormatYAML {
		return nil, fmt.Errorf(unsupportedOutputFormatTemplateConstant, format)
	}
	return &ResultWriter{writer: writer, format: format}, nil
}

// Format reports the encoding used by the writer.
func (resultWriter *ResultWriter) Format() OutputFormat {
	return resultWriter.format
}

// WriteResult encodes result followed by a newline.
func (resultWriter *ResultWriter) WriteResult(result any) error {
	if resultWriter == nil || resultWriter.writer == nil {
		return errors.New(resultWriterNotConfiguredMessageConstant)
	}

	resultWriter.mutex.Lock()
	defer resultWriter.mutex.Unlock()

	var encodingError error
	switch resultWriter.format {
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(resultWriter.writer)
		encoder.SetIndent(yamlIndentConstant)
		encodingError = encoder.Encode(result)
		if encodingError == nil {
			encodingError = encoder.Close()
		}
	default:
		encoder := json.NewEncoder(resultWriter.writer)
		encoder.SetIndent("", jsonIndentConstant)
		encodingError = encoder.Encode(result)
	}
	if encodingError != nil {
		return fmt.Errorf(resultEncodingErrorTemplateConstant, resultWriter.format, encodingError)
	}

	if flushableWriter, implementsFlush := resultWriter.writer.(interface{ Flush() error }); implementsFlush {
		if flushError := flushableWriter.Flush(); flushError != nil {
			return fmt.Errorf(resultFlushErrorTemplateConstant, flushError)
		}
	}
	return nil
}
