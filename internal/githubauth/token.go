package githubauth

import (
	"os"
	"strings"
)

// Environment variable names consulted for a GitHub token, in preference order.
const (
	EnvGitHubCLIToken = "GH_TOKEN"
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubAPIToken = "GITHUB_API_TOKEN"
)

var tokenPreference = []string{
	EnvGitHubCLIToken,
	EnvGitHubToken,
	EnvGitHubAPIToken,
}

// TokenVariables returns the well-known token variable names in preference order.
func TokenVariables() []string {
	return append([]string(nil), tokenPreference...)
}

// ResolveToken returns the first non-empty token found in environment, then
// in the process environment.
func ResolveToken(environment map[string]string) (string, bool) {
	if token, found := resolveFromLookup(func(key string) (string, bool) {
		value, exists := environment[key]
		return value, exists
	}); found {
		return token, true
	}
	return resolveFromLookup(os.LookupEnv)
}

func resolveFromLookup(environmentLookup EnvironmentLookup) (string, bool) {
	if environmentLookup == nil {
		return "", false
	}
	for _, key := range tokenPreference {
		value, exists := environmentLookup(key)
		if !exists {
			continue
		}
		trimmedValue := strings.TrimSpace(value)
		if len(trimmedValue) > 0 {
			return trimmedValue, true
		}
	}
	return "", false
}
