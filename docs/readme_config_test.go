package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	userscmd "github.com/temirov/ghusers/cmd/cli/users"
)

const (
	readmeFileNameConstant             = "README.md"
	yamlFenceStartConstant             = "```yaml"
	yamlFenceEndConstant               = "```"
	configHeaderMarkerConstant         = "# config.yaml"
	readmeSnippetTestNameConstant      = "readme_configuration"
	readmeSnippetTemporaryPattern      = "readme-config-*.yaml"
	parentDirectoryReferenceConstant   = ".."
	missingHeaderMessageConstant       = "README example missing config header marker"
	missingStartFenceMessageConstant   = "README example missing yaml fence start"
	missingEndFenceMessageConstant     = "README example missing yaml fence end"
	unexpectedSettingMessageTemplate   = "unexpected setting %s"
	defaultTempDirectoryRootConstant   = ""
	gitHubSectionConstant              = "github"
	outputSectionConstant              = "output"
	commonSectionConstant              = "common"
	sectionKeySeparatorConstant        = "."
	commonLogLevelSettingConstant      = "common.log_level"
	commonLogFormatSettingConstant     = "common.log_format"
	readmeSnippetMinimumSettingsNumber = 3
)

func TestReadmeConfigurationParses(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], yamlFenceStartConstant)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)
	fenceEndIndex := headerIndex + fenceEndRelativeIndex

	snippetContent := strings.TrimSpace(contentText[fenceStartIndex+len(yamlFenceStartConstant) : fenceEndIndex])

	knownSettings := map[string]struct{}{
		commonLogLevelSettingConstant:  {},
		commonLogFormatSettingConstant: {},
	}
	for settingKey := range userscmd.DefaultConfigurationValues(gitHubSectionConstant, outputSectionConstant) {
		knownSettings[settingKey] = struct{}{}
	}

	testCases := []struct {
		name          string
		configuration string
	}{
		{
			name:          readmeSnippetTestNameConstant,
			configuration: snippetContent,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			tempFile, tempFileError := os.CreateTemp(defaultTempDirectoryRootConstant, readmeSnippetTemporaryPattern)
			require.NoError(subtest, tempFileError)
			subtest.Cleanup(func() {
				require.NoError(subtest, os.Remove(tempFile.Name()))
			})

			_, writeError := tempFile.WriteString(testCase.configuration)
			require.NoError(subtest, writeError)
			require.NoError(subtest, tempFile.Close())

			writtenContent, readBackError := os.ReadFile(tempFile.Name())
			require.NoError(subtest, readBackError)

			var sections map[string]map[string]any
			require.NoError(subtest, yaml.Unmarshal(writtenContent, &sections))
			require.Contains(subtest, sections, commonSectionConstant)
			require.Contains(subtest, sections, gitHubSectionConstant)
			require.GreaterOrEqual(subtest, len(sections), readmeSnippetMinimumSettingsNumber)

			for sectionName, settings := range sections {
				for settingName := range settings {
					settingKey := sectionName + sectionKeySeparatorConstant + settingName
					_, known := knownSettings[settingKey]
					require.Truef(subtest, known, unexpectedSettingMessageTemplate, settingKey)
				}
			}
		})
	}
}
