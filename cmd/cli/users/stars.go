package users

import (
	"github.com/spf13/cobra"

	"github.com/temirov/ghusers/internal/users"
	"github.com/temirov/ghusers/internal/utils/flags"
)

const (
	starredCommandNameConstant           = "starred"
	starredCommandShortDescription       = "List repositories starred by a user, or by the authenticated user"
	starredCheckCommandNameConstant      = "starred-check"
	starredCheckCommandShortDescription  = "Report whether the authenticated user starred a repository"
	subscriptionsCommandNameConstant     = "subscriptions"
	subscriptionsCommandAliasConstant    = "watched"
	subscriptionsCommandShortDescription = "List repositories watched by a user, or by the authenticated user"
	sortFlagNameConstant                 = "sort"
	sortFlagUsageConstant                = "Order starred repositories by star time or last push."
	directionFlagNameConstant            = "direction"
	directionFlagUsageConstant           = "Sort direction."
	sortCreatedChoiceConstant            = "created"
	sortUpdatedChoiceConstant            = "updated"
	directionDescendingChoiceConstant    = "desc"
	directionAscendingChoiceConstant     = "asc"
)

func (builder *CommandGroupBuilder) buildStarredCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(starredCommandNameConstant, loginArgumentUsageConstant),
		Short: starredCommandShortDescription,
		Args:  cobra.MaximumNArgs(1),
	}
	var sortValue string
	var directionValue string
	flags.AddChoiceFlag(command.Flags(), &sortValue, sortFlagNameConstant, sortCreatedChoiceConstant, []string{sortCreatedChoiceConstant, sortUpdatedChoiceConstant}, sortFlagUsageConstant)
	flags.AddChoiceFlag(command.Flags(), &directionValue, directionFlagNameConstant, directionDescendingChoiceConstant, []string{directionDescendingChoiceConstant, directionAscendingChoiceConstant}, directionFlagUsageConstant)
	listFlags := flags.BindListFlags(command.Flags())

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		options := users.StarredOptions{ListOptions: listOptionsFromFlags(listFlags)}
		if command.Flags().Changed(sortFlagNameConstant) {
			options.Sort = users.Some(sortValue)
		}
		if command.Flags().Changed(directionFlagNameConstant) {
			options.Direction = users.Some(directionValue)
		}
		caller := activeSession.caller(command.Context())
		return activeSession.service.Starred(command.Context(), caller, optionalArgument(arguments, 0), options)
	})
	return command
}

func (builder *CommandGroupBuilder) buildStarredCheckCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(starredCheckCommandNameConstant, repositoryArgumentsUsageConstant),
		Short: starredCheckCommandShortDescription,
		Args:  cobra.ExactArgs(2),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		return activeSession.service.CheckStarred(command.Context(), arguments[0], arguments[1])
	})
	return command
}

func (builder *CommandGroupBuilder) buildSubscriptionsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:     commandUse(subscriptionsCommandNameConstant, loginArgumentUsageConstant),
		Aliases: []string{subscriptionsCommandAliasConstant},
		Short:   subscriptionsCommandShortDescription,
		Args:    cobra.MaximumNArgs(1),
	}
	listFlags := flags.BindListFlags(command.Flags())

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		caller := activeSession.caller(command.Context())
		return activeSession.service.Subscriptions(command.Context(), caller, optionalArgument(arguments, 0), listOptionsFromFlags(listFlags))
	})
	return command
}
