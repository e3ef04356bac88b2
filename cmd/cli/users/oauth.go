package users

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ghusers/internal/users"
	"github.com/temirov/ghusers/internal/utils/flags"
)

const (
	exchangeCodeCommandNameConstant     = "exchange-code"
	exchangeCodeCommandShortDescription = "Exchange an OAuth authorization code for an access token"
	exchangeCodeCommandLongDescription  = "exchange-code posts the code to the web host's OAuth endpoint. Application credentials default to github.client_id and github.client_secret."
	validateCommandNameConstant         = "validate"
	validateCommandShortDescription     = "Report whether a login and password authenticate"
	validateCommandLongDescription      = "validate checks a login and password against the authenticated user endpoint. The login defaults to github.login; the password is prompted for on a terminal when --password is omitted."
	clientIDFlagNameConstant            = "client-id"
	clientIDFlagUsageConstant           = "OAuth application client ID"
	clientSecretFlagNameConstant        = "client-secret"
	clientSecretFlagUsageConstant       = "OAuth application client secret"
	redirectURIFlagNameConstant         = "redirect-uri"
	redirectURIFlagUsageConstant        = "Redirect URI used in the authorization request"
	stateFlagNameConstant               = "state"
	stateFlagUsageConstant              = "State value used in the authorization request"
	passwordFlagNameConstant            = "password"
	passwordFlagUsageConstant           = "Password to validate (prompted for when omitted)"
	passwordPromptErrorTemplateConstant = "password required; supply --%s: %w"
	tokenExchangedMessageConstant       = "oauth code exchanged"
	credentialsValidatedMessageConstant = "credentials validated"
	logFieldTokenTypeConstant           = "token_type"
	logFieldScopeConstant               = "scope"
	logFieldLoginConstant               = "login"
	logFieldValidConstant               = "valid"
)

func (builder *CommandGroupBuilder) buildExchangeCodeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(exchangeCodeCommandNameConstant, codeArgumentUsageConstant),
		Short: exchangeCodeCommandShortDescription,
		Long:  exchangeCodeCommandLongDescription,
		Args:  cobra.ExactArgs(1),
	}
	exchangeFlags := flags.BindOptionalStringFlags(command.Flags(),
		flags.OptionalStringFlagDefinition{Name: clientIDFlagNameConstant, Usage: clientIDFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: clientSecretFlagNameConstant, Usage: clientSecretFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: redirectURIFlagNameConstant, Usage: redirectURIFlagUsageConstant},
		flags.OptionalStringFlagDefinition{Name: stateFlagNameConstant, Usage: stateFlagUsageConstant},
	)

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		clientID, _ := exchangeFlags.Value(clientIDFlagNameConstant)
		clientSecret, _ := exchangeFlags.Value(clientSecretFlagNameConstant)
		options := users.TokenExchangeOptions{
			RedirectURI: optionalString(exchangeFlags, redirectURIFlagNameConstant),
			State:       optionalString(exchangeFlags, stateFlagNameConstant),
		}

		accessToken, exchangeError := activeSession.service.ExchangeCodeForToken(command.Context(), arguments[0], clientID, clientSecret, options)
		if exchangeError != nil {
			return nil, exchangeError
		}
		activeSession.logger.Debug(
			tokenExchangedMessageConstant,
			zap.String(logFieldTokenTypeConstant, accessToken.TokenType),
			zap.String(logFieldScopeConstant, accessToken.Scope),
		)
		return accessToken, nil
	})
	return command
}

func (builder *CommandGroupBuilder) buildValidateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   commandUse(validateCommandNameConstant, loginArgumentUsageConstant),
		Short: validateCommandShortDescription,
		Long:  validateCommandLongDescription,
		Args:  cobra.MaximumNArgs(1),
	}
	command.Flags().String(passwordFlagNameConstant, "", passwordFlagUsageConstant)

	command.RunE = builder.runWithSession(func(command *cobra.Command, arguments []string, activeSession *session) (any, error) {
		login := optionalArgument(arguments, 0)
		if len(login) == 0 {
			login = builder.resolveConfiguration().GitHub.Login
		}

		password, _ := command.Flags().GetString(passwordFlagNameConstant)
		if len(login) > 0 && !command.Flags().Changed(passwordFlagNameConstant) {
			promptedPassword, promptError := resolvePasswordPrompter(builder.PasswordPrompterFactory, command).PromptPassword(login)
			if promptError != nil {
				return nil, fmt.Errorf(passwordPromptErrorTemplateConstant, passwordFlagNameConstant, promptError)
			}
			password = promptedPassword
		}

		valid, validationError := activeSession.service.ValidateCredentials(command.Context(), users.BasicCredentials{Login: login, Password: password})
		if validationError != nil {
			return nil, validationError
		}
		activeSession.logger.Debug(credentialsValidatedMessageConstant, zap.String(logFieldLoginConstant, login), zap.Bool(logFieldValidConstant, valid))
		return valid, nil
	})
	return command
}
