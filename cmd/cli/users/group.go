package users

import (
	"github.com/spf13/cobra"

	"github.com/temirov/ghusers/internal/githubapi"
	"github.com/temirov/ghusers/internal/githubauth"
)

const (
	groupUseConstant      = "users"
	groupShortDescription = "Query and manage GitHub user accounts"
	groupLongDescription  = "users groups subcommands covering profiles, followers, stars, subscriptions, SSH keys, emails, and OAuth for GitHub accounts."
)

// CommandGroupBuilder assembles the users command group.
type CommandGroupBuilder struct {
	LoggerProvider          LoggerProvider
	ConfigurationProvider   ConfigurationProvider
	HTTPClient              githubapi.HTTPClient
	EnvironmentLookup       githubauth.EnvironmentLookup
	PasswordPrompterFactory PasswordPrompterFactory
}

// Build constructs the users command hierarchy.
func (builder *CommandGroupBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   groupUseConstant,
		Short: groupShortDescription,
		Long:  groupLongDescription,
	}

	command.AddCommand(
		builder.buildListCommand(),
		builder.buildGetCommand(),
		builder.buildUpdateCommand(),
		builder.buildFollowersCommand(),
		builder.buildFollowingCommand(),
		builder.buildFollowsCommand(),
		builder.buildFollowCommand(),
		builder.buildUnfollowCommand(),
		builder.buildStarredCommand(),
		builder.buildStarredCheckCommand(),
		builder.buildSubscriptionsCommand(),
		builder.buildKeysCommand(),
		builder.buildKeyCommand(),
		builder.buildAddKeyCommand(),
		builder.buildUpdateKeyCommand(),
		builder.buildRemoveKeyCommand(),
		builder.buildEmailsCommand(),
		builder.buildAddEmailCommand(),
		builder.buildRemoveEmailCommand(),
		builder.buildExchangeCodeCommand(),
		builder.buildValidateCommand(),
	)

	return command, nil
}
