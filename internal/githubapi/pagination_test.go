package githubapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNextLink(testInstance *testing.T) {
	testCases := []struct {
		name         string
		linkHeader   string
		expectedNext string
	}{
		{name: "empty", linkHeader: "", expectedNext: ""},
		{
			name:         "next_and_last",
			linkHeader:   `<https://api.github.com/users?since=46>; rel="next", <https://api.github.com/users{?since}>; rel="first"`,
			expectedNext: "https://api.github.com/users?since=46",
		},
		{
			name:         "last_only",
			linkHeader:   `<https://api.github.com/user/keys?page=1>; rel="prev", <https://api.github.com/user/keys?page=1>; rel="first"`,
			expectedNext: "",
		},
		{
			name:         "combined_relations",
			linkHeader:   `<https://api.github.com/user/emails?page=2>; rel="next last"`,
			expectedNext: "https://api.github.com/user/emails?page=2",
		},
		{name: "malformed_target", linkHeader: `https://api.github.com/users; rel="next"`, expectedNext: ""},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedNext, parseNextLink(testCase.linkHeader))
		})
	}
}
