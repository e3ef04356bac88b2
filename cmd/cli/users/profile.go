package users

import (
	"github.com/spf13/cobra"

	"github.com/temirov/ghusers/internal/users"
	"github.com/temirov/ghusers/internal/utils/flags"
)

const (
	listCommandNameConstant             = "list"
	listCommandShortDescriptionConstant = "List every GitHub account in creation order"
	sinceFlagNameConstant               = "since"
	sinceFlagUsageConstant              = "Only list accounts with an ID greater than this value"
	getCommandNameConstant              = "get"
	getCommandShortDescriptionConstant  = "Show a user, or the authenticated user when no login is given"
	updateCommandNameConstant           = "update"
	updateCommandShortDescription       = "Update the authenticated user's profile"
	updateCommandLongDescription        = "update changes only the profile fields supplied as flags. Pass an empty value, such as --bio=, to clear a field."
	profileNameFlagNameConstant         = "name"
	profileNameFlagUsageConstant        = "Display name"
	profileEmailFlagNameConstant        = "email"
	profileEmailFlagUsageConstant       = "Publicly visible email address"
	profileBlogFlagNameConstant         = "blog"
	profileBlogFlagUsageConstant        = "Blog or website URL"
	profileCompanyFlagNameConstant      = "company"
	profileCompanyFlagUsageConstant     = "Company name"
	profileLocationFlagNameConstant     = "location"
	profileLocationFlagUsageConstant    = "Location"
	profileBioFlagNameConstant          = "bio"
	profileBioFlagUsageConstant         = "Short biography"
	profileTwitterFlagNameConstant      = "twitter-username"
	profileTwitterFlagUsageConstant     = "Twitter username"
	profileHireableFlagNameConstant     = "hireable"
	profileHireableFlagUsageConstant    = "Mark the account as available for hire"
)

func (builder *CommandGroupBuilder) buildListCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   listCommandNameConstant,
		Short: listCommandShortDescriptionConstant,
		Args:  cobra.NoArgs,
	}
	command.Flags().Int64(sinceFlagNameConstant, 0, sinceFlagUsageConstant)
	listFlags := flags.BindListFlags(command.Flags())

	command.RunE = builder.runWithSession(func(command *cobra.Command, _ []string, activeSession *session) (any, error) {
		options := users.AllUsersOptions{ListOptions: listOptionsFromFlags(listFlags)}
		if command.Flags().Changed(sinceFlagNameConstant) {
			since, _ := command.Flags().GetInt64(sinceFlagNameConstant)
			options.Since = users.Some(since)
		}
		return activeSession.service.AllUsers(command.Context(), options)
	})
	return command
}

func (builder *CommandGroupBuilder) buildGetCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(getCommandNameConstant, loginArgumentUsageConstant),
		Short: getCommandShortDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		return activeSession.service.User(command.Context(), optionalArgument(arguments, 0))
	})
	return command
}

func (builder *CommandGroupBuilder) buildUpdateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   updateCommandNameConstant,
		Short: updateCommandShortDescription,
		Long:  updateCommandLongDescription,
		Args:  cobra.NoArgs,
	}
	profileFlags := flags.BindOptionalStringFlags(command.Flags(),
		flags.OptionalStringFlagDefinition{Name: profileNameFlagNameConstant, Usage: profileNameFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: profileEmailFlagNameConstant, Usage: profileEmailFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: profileBlogFlagNameConstant, Usage: profileBlogFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: profileCompanyFlagNameConstant, Usage: profileCompanyFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: profileLocationFlagNameConstant, Usage: profileLocationFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: profileBioFlagNameConstant, Usage: profileBioFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: profileTwitterFlagNameConstant, Usage: profileTwitterFlagUsageConstant},
	)
	hireableToggle := flags.AddToggleFlag(command.Flags(), profileHireableFlagNameConstant, profileHireableFlagUsageConstant)

	command.RunE = builder.runWithSession(func(command *cobra.Command, _ []string, activeSession *session) (any, error) {
		update := users.UserUpdate{
			Name:            optionalString(profileFlags, profileNameFlagNameConstant),
			Email:           optionalString(profileFlags, profileEmailFlagNameConstant),
			Blog:            optionalString(profileFlags, profileBlogFlagNameConstant),
			Company:         optionalString(profileFlags, profileCompanyFlagNameConstant),
			Location:        optionalString(profileFlags, profileLocationFlagNameConstant),
			Bio:             optionalString(profileFlags, profileBioFlagNameConstant),
			TwitterUsername: optionalString(profileFlags, profileTwitterFlagNameConstant),
		}
		if hireable, supplied := hireableToggle.Value(); supplied {
			update.Hireable = users.Some(hireable)
		}
		return activeSession.service.UpdateUser(command.Context(), update)
	})
	return command
}
