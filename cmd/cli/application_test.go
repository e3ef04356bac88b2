package cli_test

import (
	"bytes"
	"testing"
	"time"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/ghusers/cmd/cli"
	userscmd "github.com/temirov/ghusers/cmd/cli/users"
)

func TestEmbeddedDefaultConfigurationMatchesCommandDefaults(t *testing.T) {
	configurationData, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(t, "yaml", configurationType)

	applicationConfiguration := decodeEmbeddedApplicationConfiguration(t, configurationData, configurationType)
	commandDefaults := userscmd.DefaultCommandConfiguration()

	require.Equal(t, "info", applicationConfiguration.Common.LogLevel)
	require.Equal(t, "structured", applicationConfiguration.Common.LogFormat)
	require.Equal(t, commandDefaults.GitHub, applicationConfiguration.GitHub)
	require.Equal(t, commandDefaults.Output, applicationConfiguration.Output)
	require.Equal(t, 30*time.Second, applicationConfiguration.GitHub.Timeout)
}

func TestEmbeddedDefaultConfigurationReturnsCopy(t *testing.T) {
	firstCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEmpty(t, firstCopy)
	firstCopy[0] = '#'

	secondCopy, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEqual(t, firstCopy[0], secondCopy[0])
}

func TestEmbeddedDefaultConfigurationSections(t *testing.T) {
	configurationData, _ := cli.EmbeddedDefaultConfiguration()

	var sections map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(configurationData, &sections))

	require.ElementsMatch(t, []string{"common", "github", "output"}, mapKeys(sections))
	require.Len(t, sections["github"], len(userscmd.DefaultConfigurationValues("github", "output"))-1)
}

func decodeEmbeddedApplicationConfiguration(testInstance *testing.T, configurationData []byte, configurationType string) cli.ApplicationConfiguration {
	testInstance.Helper()

	viperInstance := viper.New()
	viperInstance.SetConfigType(configurationType)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(configurationData)))

	var applicationConfiguration cli.ApplicationConfiguration
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
	require.NoError(testInstance, viperInstance.Unmarshal(&applicationConfiguration, decodeHook))
	return applicationConfiguration
}

func mapKeys(sections map[string]map[string]any) []string {
	keys := make([]string, 0, len(sections))
	for key := range sections {
		keys = append(keys, key)
	}
	return keys
}
