package users

import (
	"github.com/spf13/cobra"

	"github.com/temirov/ghusers/internal/utils/flags"
)

const (
	followersCommandNameConstant     = "followers"
	followersCommandShortDescription = "List followers of a user, or of the authenticated user"
	followingCommandNameConstant     = "following"
	followingCommandShortDescription = "List accounts a user follows, or the authenticated user follows"
	followsCommandNameConstant       = "follows"
	followsCommandShortDescription   = "Report whether the authenticated user, or acting-login, follows target"
	followCommandNameConstant        = "follow"
	followCommandShortDescription    = "Follow target as the authenticated user"
	unfollowCommandNameConstant      = "unfollow"
	unfollowCommandShortDescription  = "Stop following target as the authenticated user"
)

func (builder *CommandGroupBuilder) buildFollowersCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(followersCommandNameConstant, loginArgumentUsageConstant),
		Short: followersCommandShortDescription,
		Args:  cobra.MaximumNArgs(1),
	}
	listFlags := flags.BindListFlags(command.Flags())

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		caller := activeSession.caller(command.Context())
		return activeSession.service.Followers(command.Context(), caller, optionalArgument(arguments, 0), listOptionsFromFlags(listFlags))
	})
	return command
}

func (builder *CommandGroupBuilder) buildFollowingCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(followingCommandNameConstant, loginArgumentUsageConstant),
		Short: followingCommandShortDescription,
		Args:  cobra.MaximumNArgs(1),
	}
	listFlags := flags.BindListFlags(command.Flags())

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		caller := activeSession.caller(command.Context())
		return activeSession.service.Following(command.Context(), caller, optionalArgument(arguments, 0), listOptionsFromFlags(listFlags))
	})
	return command
}

func (builder *CommandGroupBuilder) buildFollowsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(followsCommandNameConstant, followsArgumentsUsageConstant),
		Short: followsCommandShortDescription,
		Args:  cobra.RangeArgs(1, 2),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		caller := activeSession.caller(command.Context())
		return activeSession.service.Follows(command.Context(), caller, arguments[0], optionalArgument(arguments, 1))
	})
	return command
}

func (builder *CommandGroupBuilder) buildFollowCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(followCommandNameConstant, targetArgumentUsageConstant),
		Short: followCommandShortDescription,
		Args:  cobra.ExactArgs(1),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		return activeSession.service.Follow(command.Context(), arguments[0])
	})
	return command
}

func (builder *CommandGroupBuilder) buildUnfollowCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(unfollowCommandNameConstant, targetArgumentUsageConstant),
		Short: unfollowCommandShortDescription,
		Args:  cobra.ExactArgs(1),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		return activeSession.service.Unfollow(command.Context(), arguments[0])
	})
	return command
}
