package users

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ghusers/internal/githubapi"
	"github.com/temirov/ghusers/internal/githubauth"
	"github.com/temirov/ghusers/internal/users"
	"github.com/temirov/ghusers/internal/utils"
)

const (
	sessionOpenedMessageConstant              = "github session opened"
	logFieldInvocationIdentifierConstant      = "invocation_id"
	logFieldConfigurationFileConstant         = "config_file"
	logFieldAPIEndpointConstant               = "api_endpoint"
	logFieldAuthenticatedConstant             = "authenticated"
	logFieldCommandConstant                   = "command"
	outputFormatErrorTemplateConstant         = "unable to select output format: %w"
	credentialResolutionErrorTemplateConstant = "unable to resolve github credentials: %w"
	gitHubClientErrorTemplateConstant         = "unable to construct GitHub client: %w"
	usersServiceErrorTemplateConstant         = "unable to construct users service: %w"
)

// session carries the collaborators one command execution talks to.
type session struct {
	logger       *zap.Logger
	client       *githubapi.Client
	service      *users.Service
	resultWriter *utils.ResultWriter
}

func (builder *CommandGroupBuilder) openSession(command *cobra.Command) (*session, error) {
	configuration := builder.resolveConfiguration()
	executionContext := command.Context()
	if executionContext == nil {
		executionContext = context.Background()
	}

	outputFormat, formatError := utils.ParseOutputFormat(configuration.Output.Format)
	if formatError != nil {
		return nil, fmt.Errorf(outputFormatErrorTemplateConstant, formatError)
	}
	resultWriter, writerError := utils.NewResultWriter(command.OutOrStdout(), outputFormat)
	if writerError != nil {
		return nil, fmt.Errorf(outputFormatErrorTemplateConstant, writerError)
	}

	logger := resolveLogger(builder.LoggerProvider).With(zap.String(logFieldCommandConstant, command.Name()))
	contextAccessor := utils.NewCommandContextAccessor()
	if invocationIdentifier, available := contextAccessor.InvocationIdentifier(executionContext); available {
		logger = logger.With(zap.String(logFieldInvocationIdentifierConstant, invocationIdentifier))
	}

	credentialResolver := githubauth.NewCredentialResolver(
		githubauth.NewTokenResolver(builder.EnvironmentLookup, nil, nil),
		builder.EnvironmentLookup,
	)
	credentials, credentialError := credentialResolver.Resolve(executionContext, githubauth.CredentialConfiguration{
		TokenSource:  configuration.GitHub.TokenSource,
		Login:        configuration.GitHub.Login,
		ClientID:     configuration.GitHub.ClientID,
		ClientSecret: configuration.GitHub.ClientSecret,
	})
	if credentialError != nil {
		return nil, fmt.Errorf(credentialResolutionErrorTemplateConstant, credentialError)
	}

	clientConfiguration := configuration.GitHub.clientConfiguration()
	clientConfiguration.Credentials = credentials
	client, clientError := githubapi.NewClient(logger, builder.HTTPClient, clientConfiguration)
	if clientError != nil {
		return nil, fmt.Errorf(gitHubClientErrorTemplateConstant, clientError)
	}

	service, serviceError := users.NewService(client, func(scopedCredentials githubapi.Credentials) (users.Transport, error) {
		resolvedCredentials, resolveError := credentialResolver.Resolve(executionContext, githubauth.CredentialConfiguration{
			Login:        scopedCredentials.Login,
			Password:     scopedCredentials.Password,
			ClientID:     configuration.GitHub.ClientID,
			ClientSecret: configuration.GitHub.ClientSecret,
		})
		if resolveError != nil {
			return nil, fmt.Errorf(credentialResolutionErrorTemplateConstant, resolveError)
		}
		return client.WithCredentials(resolvedCredentials), nil
	})
	if serviceError != nil {
		return nil, fmt.Errorf(usersServiceErrorTemplateConstant, serviceError)
	}

	configurationFilePath, _ := contextAccessor.ConfigurationFilePath(executionContext)
	logger.Debug(
		sessionOpenedMessageConstant,
		zap.String(logFieldAPIEndpointConstant, client.APIEndpoint()),
		zap.Bool(logFieldAuthenticatedConstant, client.UserAuthenticated()),
		zap.String(logFieldConfigurationFileConstant, configurationFilePath),
	)

	return &session{logger: logger, client: client, service: service, resultWriter: resultWriter}, nil
}

// caller reports who the session acts as, discovering the login of token-authenticated sessions.
func (activeSession *session) caller(executionContext context.Context) users.Caller {
	identity := activeSession.client.ResolveIdentity(executionContext)
	return users.Caller{Login: identity.Login, Authenticated: identity.Authenticated}
}

func (builder *CommandGroupBuilder) runWithSession(operation sessionOperation) func(*cobra.Command, []string) error {
	return func(command *cobra.Command, arguments []string) error {
		activeSession, sessionError := builder.openSession(command)
		if sessionError != nil {
			return sessionError
		}

		result, operationError := operation(command, arguments, activeSession)
		if operationError != nil {
			return fmt.Errorf(operationErrorTemplateConstant, command.Name(), operationError)
		}

		return activeSession.resultWriter.WriteResult(result)
	}
}

func (builder *CommandGroupBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}
