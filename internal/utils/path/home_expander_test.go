package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/ghusers/internal/utils/path"
)

const (
	testHomeDirectoryConstant     = "/home/tester"
	testConfigurationHomeConstant = "/home/tester/.config"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	variables := map[string]string{"XDG_CONFIG_HOME": testConfigurationHomeConstant, "TOKEN_DIR": "~/secrets"}
	expander := pathutils.NewHomeExpanderWithLookups(
		func() (string, error) { return testHomeDirectoryConstant, nil },
		func(name string) (string, bool) {
			value, exists := variables[name]
			return value, exists
		},
	)

	testCases := []struct {
		name         string
		input        string
		expectedPath string
	}{
		{name: "empty", input: "", expectedPath: ""},
		{name: "absolute", input: "/etc/ghusers/token", expectedPath: "/etc/ghusers/token"},
		{name: "tilde_only", input: "~", expectedPath: testHomeDirectoryConstant},
		{name: "tilde_prefix", input: "~/tokens/github", expectedPath: filepath.Join(testHomeDirectoryConstant, "tokens", "github")},
		{name: "other_user_untouched", input: "~other/token", expectedPath: "~other/token"},
		{name: "braced_variable", input: "${XDG_CONFIG_HOME}/ghusers/token", expectedPath: testConfigurationHomeConstant + "/ghusers/token"},
		{name: "variable_then_tilde", input: "$TOKEN_DIR/github", expectedPath: filepath.Join(testHomeDirectoryConstant, "secrets", "github")},
		{name: "unset_variable", input: "$UNSET/token", expectedPath: "/token"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.input))
		})
	}
}

func TestHomeExpanderWithoutHomeDirectory(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New("no home")
	})
	require.Equal(testInstance, "~/token", expander.Expand("~/token"))

	var nilExpander *pathutils.HomeExpander
	require.Equal(testInstance, "~/token", nilExpander.Expand("~/token"))
}
