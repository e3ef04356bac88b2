package utils_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/ghusers/internal/utils"
)

type recordingFlusher struct {
	bytes.Buffer
	flushCount int
}

func (flusher *recordingFlusher) Flush() error {
	flusher.flushCount++
	return nil
}

type sampleResult struct {
	Login string `json:"login" yaml:"login"`
	ID    int64  `json:"id" yaml:"id"`
}

func TestParseOutputFormat(testInstance *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedFormat utils.OutputFormat
		expectError    bool
	}{
		{name: "empty_defaults_to_json", input: "", expectedFormat: utils.OutputFormatJSON},
		{name: "json", input: "JSON", expectedFormat: utils.OutputFormatJSON},
		{name: "yaml", input: " yaml ", expectedFormat: utils.OutputFormatYAML},
		{name: "yml_alias", input: "yml", expectedFormat: utils.OutputFormatYAML},
		{name: "unknown", input: "xml", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			format, parseError := utils.ParseOutputFormat(testCase.input)
			if testCase.expectError {
				require.Error(testInstance, parseError)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedFormat, format)
		})
	}
}

func TestResultWriterEncodes(testInstance *testing.T) {
	testCases := []struct {
		name           string
		format         utils.OutputFormat
		result         any
		expectedOutput string
	}{
		{
			name:           "json_object",
			format:         utils.OutputFormatJSON,
			result:         sampleResult{Login: "octocat", ID: 1},
			expectedOutput: "{\n  \"login\": \"octocat\",\n  \"id\": 1\n}\n",
		},
		{
			name:           "yaml_object",
			format:         utils.OutputFormatYAML,
			result:         sampleResult{Login: "octocat", ID: 1},
			expectedOutput: "login: octocat\nid: 1\n",
		},
		{name: "json_boolean", format: utils.OutputFormatJSON, result: true, expectedOutput: "true\n"},
		{name: "yaml_boolean", format: utils.OutputFormatYAML, result: false, expectedOutput: "false\n"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			output := &recordingFlusher{}
			resultWriter, writerError := utils.NewResultWriter(output, testCase.format)
			require.NoError(testInstance, writerError)
			require.Equal(testInstance, testCase.format, resultWriter.Format())

			require.NoError(testInstance, resultWriter.WriteResult(testCase.result))
			require.Equal(testInstance, testCase.expectedOutput, output.String())
			require.Equal(testInstance, 1, output.flushCount)
		})
	}
}

func TestNewResultWriterRejectsUnknownFormat(testInstance *testing.T) {
	_, writerError := utils.NewResultWriter(&bytes.Buffer{}, utils.OutputFormat("xml"))
	require.Error(testInstance, writerError)

	var nilWriter *utils.ResultWriter
	require.Error(testInstance, nilWriter.WriteResult(true))
}
