package users

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ghusers/internal/githubauth"
	"github.com/temirov/ghusers/internal/users"
	"github.com/temirov/ghusers/internal/utils/flags"
)

const (
	operationErrorTemplateConstant         = "%s failed: %w"
	invalidIdentifierErrorTemplateConstant = "invalid key id %q: expected a positive integer"
	loginArgumentUsageConstant             = "[login]"
	identifierArgumentUsageConstant        = "<key-id>"
	targetArgumentUsageConstant            = "<target>"
	repositoryArgumentsUsageConstant       = "<owner> <repository>"
	emailArgumentsUsageConstant            = "<email>..."
	codeArgumentUsageConstant              = "<code>"
	followsArgumentsUsageConstant          = "<target> [acting-login]"
	commandUseTemplateConstant             = "%s %s"
	identifierBitSizeConstant              = 64
	identifierBaseConstant                 = 10
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider yields the configuration in effect for a command execution.
type ConfigurationProvider func() CommandConfiguration

// PasswordPrompterFactory constructs password prompters scoped to a command.
type PasswordPrompterFactory func(*cobra.Command) githubauth.PasswordPrompter

type sessionOperation func(command *cobra.Command, arguments []string, activeSession *session) (any, error)

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolvePasswordPrompter(factory PasswordPrompterFactory, command *cobra.Command) githubauth.PasswordPrompter {
	if factory != nil {
		if prompter := factory(command); prompter != nil {
			return prompter
		}
	}
	return githubauth.NewTerminalPasswordPrompter(nil, command.ErrOrStderr())
}

func commandUse(name string, argumentsUsage string) string {
	return fmt.Sprintf(commandUseTemplateConstant, name, argumentsUsage)
}

func optionalArgument(arguments []string, index int) string {
	if index >= len(arguments) {
		return ""
	}
	return strings.TrimSpace(arguments[index])
}

func parseKeyIdentifier(rawIdentifier string) (int64, error) {
	keyIdentifier, parseError := strconv.ParseInt(strings.TrimSpace(rawIdentifier), identifierBaseConstant, identifierBitSizeConstant)
	if parseError != nil || keyIdentifier <= 0 {
		return 0, fmt.Errorf(invalidIdentifierErrorTemplateConstant, rawIdentifier)
	}
	return keyIdentifier, nil
}

func listOptionsFromFlags(listFlags *flags.ListFlagValues) users.ListOptions {
	options := users.ListOptions{}
	if perPage, supplied := listFlags.PerPage(); supplied {
		options.PerPage = users.Some(perPage)
	}
	if page, supplied := listFlags.Page(); supplied {
		options.Page = users.Some(page)
	}
	return options
}

func optionalString(optionalStrings *flags.OptionalStrings, flagName string) users.Optional[string] {
	if value, supplied := optionalStrings.Value(flagName); supplied {
		return users.Some(value)
	}
	return users.None[string]()
}
