package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestBindListFlagsReportsSuppliedValues(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		expectedPerPage int
		perPagePresent  bool
		expectedPage    int
		pagePresent     bool
	}{
		{name: "Absent", arguments: []string{}},
		{name: "PerPageOnly", arguments: []string{"--per-page", "30"}, expectedPerPage: 30, perPagePresent: true},
		{name: "Both", arguments: []string{"--per-page=10", "--page=3"}, expectedPerPage: 10, perPagePresent: true, expectedPage: 3, pagePresent: true},
		{name: "ExplicitZeroPage", arguments: []string{"--page=0"}, expectedPage: 0, pagePresent: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}
			values := BindListFlags(command.Flags())
			require.NoError(t, command.ParseFlags(testCase.arguments))

			perPage, perPagePresent := values.PerPage()
			require.Equal(t, testCase.expectedPerPage, perPage)
			require.Equal(t, testCase.perPagePresent, perPagePresent)

			page, pagePresent := values.Page()
			require.Equal(t, testCase.expectedPage, page)
			require.Equal(t, testCase.pagePresent, pagePresent)
		})
	}
}

func TestBindListFlagsWithoutFlagSet(t *testing.T) {
	values := BindListFlags(nil)
	_, present := values.PerPage()
	require.False(t, present)

	var nilValues *ListFlagValues
	_, present = nilValues.Page()
	require.False(t, present)
}
