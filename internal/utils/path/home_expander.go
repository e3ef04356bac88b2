// Package pathutils expands user-supplied filesystem paths.
package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
	variableMarkerConstant          = "$"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// VariableLookup resolves an environment variable.
type VariableLookup func(name string) (string, bool)

// HomeExpander converts home directory shortcuts and environment variable
// references to concrete paths.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	variableLookup        VariableLookup
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookups.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithLookups(os.UserHomeDir, os.LookupEnv)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom home directory provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	return NewHomeExpanderWithLookups(provider, os.LookupEnv)
}

// NewHomeExpanderWithLookups constructs a HomeExpander with custom lookups.
// Nil lookups select the operating system.
func NewHomeExpanderWithLookups(provider HomeDirectoryProvider, variableLookup VariableLookup) *HomeExpander {
	if provider == nil {
		provider = os.UserHomeDir
	}
	if variableLookup == nil {
		variableLookup = os.LookupEnv
	}
	return &HomeExpander{homeDirectoryProvider: provider, variableLookup: variableLookup}
}

// Expand resolves $NAME and ${NAME} references, then a leading tilde. Unset
// variables expand to empty strings.
func (expander *HomeExpander) Expand(candidatePath string) string {
	if expander == nil || len(candidatePath) == 0 {
		return candidatePath
	}

	expandedPath := candidatePath
	if strings.Contains(expandedPath, variableMarkerConstant) {
		expandedPath = os.Expand(expandedPath, func(name string) string {
			value, _ := expander.variableLookup(name)
			return value
		})
	}

	if !strings.HasPrefix(expandedPath, tildeSymbolConstant) {
		return expandedPath
	}

	resolvedHomeDirectory := expander.resolveHomeDirectory()
	if len(resolvedHomeDirectory) == 0 {
		return expandedPath
	}

	switch {
	case expandedPath == tildeSymbolConstant:
		return resolvedHomeDirectory
	case strings.HasPrefix(expandedPath, tildeForwardSlashPrefixConstant):
		return filepath.Join(resolvedHomeDirectory, strings.TrimPrefix(expandedPath, tildeForwardSlashPrefixConstant))
	case strings.HasPrefix(expandedPath, tildeWithPathSeparatorPrefix):
		return filepath.Join(resolvedHomeDirectory, strings.TrimPrefix(expandedPath, tildeWithPathSeparatorPrefix))
	default:
		return expandedPath
	}
}

func (expander *HomeExpander) resolveHomeDirectory() string {
	expander.initializationGuard.Do(func() {
		expander.homeDirectory, expander.homeDirectoryError = expander.homeDirectoryProvider()
	})
	if expander.homeDirectoryError != nil {
		return ""
	}
	return expander.homeDirectory
}
