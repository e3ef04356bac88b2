package users

import (
	"github.com/spf13/cobra"

	"github.com/temirov/ghusers/internal/utils/flags"
)

const (
	emailsCommandNameConstant          = "emails"
	emailsCommandShortDescription      = "List email addresses of the authenticated user"
	addEmailCommandNameConstant        = "add-email"
	addEmailCommandShortDescription    = "Add email addresses to the authenticated user"
	removeEmailCommandNameConstant     = "remove-email"
	removeEmailCommandShortDescription = "Remove email addresses from the authenticated user"
)

func (builder *CommandGroupBuilder) buildEmailsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   emailsCommandNameConstant,
		Short: emailsCommandShortDescription,
		Args:  cobra.NoArgs,
	}
	listFlags := flags.BindListFlags(command.Flags())

	command.RunE = builder.runWithSession(func(command *cobra.Command, _ []string, activeSession *session) (any, error) {
		return activeSession.service.Emails(command.Context(), listOptionsFromFlags(listFlags))
	})
	return command
}

func (builder *CommandGroupBuilder) buildAddEmailCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(addEmailCommandNameConstant, emailArgumentsUsageConstant),
		Short: addEmailCommandShortDescription,
		Args:  cobra.MinimumNArgs(1),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		return activeSession.service.AddEmail(command.Context(), arguments...)
	})
	return command
}

func (builder *CommandGroupBuilder) buildRemoveEmailCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(removeEmailCommandNameConstant, emailArgumentsUsageConstant),
		Short: removeEmailCommandShortDescription,
		Args:  cobra.MinimumNArgs(1),
	}

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		return activeSession.service.RemoveEmail(command.Context(), arguments...)
	})
	return command
}
