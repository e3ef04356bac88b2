package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestAddToggleFlagParsesValues(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		expectedValue   bool
		expectedPresent bool
	}{
		{name: "Absent", arguments: []string{}, expectedValue: false, expectedPresent: false},
		{name: "ImplicitTrue", arguments: []string{"--toggle"}, expectedValue: true, expectedPresent: true},
		{name: "ExplicitYes", arguments: []string{"--toggle=yes"}, expectedValue: true, expectedPresent: true},
		{name: "ExplicitTrueUppercase", arguments: []string{"--toggle=TRUE"}, expectedValue: true, expectedPresent: true},
		{name: "ExplicitNo", arguments: []string{"--toggle=no"}, expectedValue: false, expectedPresent: true},
		{name: "ExplicitOff", arguments: []string{"--toggle=off"}, expectedValue: false, expectedPresent: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}
			toggle := AddToggleFlag(command.Flags(), "toggle", "Toggle flag")

			parseError := command.ParseFlags(testCase.arguments)
			require.NoError(t, parseError)

			value, present := toggle.Value()
			require.Equal(t, testCase.expectedValue, value)
			require.Equal(t, testCase.expectedPresent, present)

			flag := command.Flags().Lookup("toggle")
			require.NotNil(t, flag)
			require.Equal(t, testCase.expectedPresent, flag.Changed)
		})
	}
}

func TestAddToggleFlagRejectsInvalidValues(t *testing.T) {
	command := &cobra.Command{}
	toggle := AddToggleFlag(command.Flags(), "toggle", "Toggle flag")

	parseError := command.ParseFlags([]string{"--toggle=maybe"})
	require.Error(t, parseError)

	_, present := toggle.Value()
	require.False(t, present)
	require.Equal(t, "", toggle.String())
}

func TestToggleUsage(t *testing.T) {
	command := &cobra.Command{}
	AddToggleFlag(command.Flags(), "hireable", " Mark the account available for hire. ")

	flag := command.Flags().Lookup("hireable")
	require.NotNil(t, flag)
	require.Equal(t, "`<yes|no>` Mark the account available for hire.", flag.Usage)
	require.Equal(t, "true", flag.NoOptDefVal)
}
