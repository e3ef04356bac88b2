package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	userscmd "github.com/temirov/ghusers/cmd/cli/users"
	"github.com/temirov/ghusers/internal/githubapi"
	"github.com/temirov/ghusers/internal/githubauth"
	"github.com/temirov/ghusers/internal/utils"
	"github.com/temirov/ghusers/internal/utils/flags"
)

const (
	applicationNameConstant                 = "ghusers"
	applicationShortDescriptionConstant     = "Command-line interface for the GitHub users API"
	applicationLongDescriptionConstant      = "ghusers looks up, follows, stars, and manages GitHub user accounts through the REST API."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	outputFlagNameConstant                  = "output"
	outputFlagUsageConstant                 = "Override the configured result format."
	apiEndpointFlagNameConstant             = "api-endpoint"
	apiEndpointFlagUsageConstant            = "Override the GitHub REST API endpoint, for example a GitHub Enterprise URL."
	tokenSourceFlagNameConstant             = "token-source"
	tokenSourceFlagUsageTemplateConstant    = "Environment variable name or file path holding the GitHub token. Defaults to the first of %s that is set."
	tokenVariableSeparatorConstant          = ", "
	loginFlagNameConstant                   = "login"
	loginFlagUsageConstant                  = "Login used for password authentication and as the default acting user."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	gitHubConfigurationKeyConstant          = "github"
	outputConfigurationKeyConstant          = "output"
	environmentPrefixConstant               = "GHUSERS"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	invocationIdentifierFieldConstant       = "invocation_id"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	commandBuildErrorTemplateConstant       = "unable to build %s command: %w"
	loggerNotInitializedMessageConstant     = "logger not initialized"
	defaultConfigurationSearchPathConstant  = "."
	usersCommandNameConstant                = "users"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	GitHub userscmd.GitHubConfiguration   `mapstructure:"github"`
	Output userscmd.OutputConfiguration   `mapstructure:"output"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type applicationDependencies struct {
	httpClient        githubapi.HTTPClient
	environmentLookup githubauth.EnvironmentLookup
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	outputFlagValue        string
	apiEndpointFlagValue   string
	tokenSourceFlagValue   string
	loginFlagValue         string
	commandContextAccessor utils.CommandContextAccessor
	buildError             error
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	return newApplication(applicationDependencies{})
}

func newApplication(dependencies applicationDependencies) *Application {
	searchPaths := []string{defaultConfigurationSearchPathConstant}
	if userConfigurationDirectory, available := utils.UserConfigurationDirectory(applicationNameConstant); available {
		searchPaths = append(searchPaths, userConfigurationDirectory)
	}

	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		searchPaths,
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		commandContextAccessor: utils.NewCommandContextAccessor(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	flags.AddChoiceFlag(persistentFlags, &application.logLevelFlagValue, logLevelFlagNameConstant, string(utils.LogLevelInfo), utils.LogLevels(), logLevelFlagUsageConstant)
	flags.AddChoiceFlag(persistentFlags, &application.logFormatFlagValue, logFormatFlagNameConstant, string(utils.LogFormatStructured), utils.LogFormats(), logFormatFlagUsageConstant)
	flags.AddChoiceFlag(persistentFlags, &application.outputFlagValue, outputFlagNameConstant, string(utils.OutputFormatJSON), utils.OutputFormats(), outputFlagUsageConstant)
	persistentFlags.StringVar(&application.apiEndpointFlagValue, apiEndpointFlagNameConstant, "", apiEndpointFlagUsageConstant)
	persistentFlags.StringVar(&application.tokenSourceFlagValue, tokenSourceFlagNameConstant, "", fmt.Sprintf(tokenSourceFlagUsageTemplateConstant, strings.Join(githubauth.TokenVariables(), tokenVariableSeparatorConstant)))
	persistentFlags.StringVar(&application.loginFlagValue, loginFlagNameConstant, "", loginFlagUsageConstant)

	usersBuilder := userscmd.CommandGroupBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: func() userscmd.CommandConfiguration {
			return userscmd.CommandConfiguration{
				GitHub: application.configuration.GitHub,
				Output: application.configuration.Output,
			}
		},
		HTTPClient:        dependencies.httpClient,
		EnvironmentLookup: dependencies.environmentLookup,
	}
	usersCommand, usersBuildError := usersBuilder.Build()
	if usersBuildError != nil {
		application.buildError = fmt.Errorf(commandBuildErrorTemplateConstant, usersCommandNameConstant, usersBuildError)
	} else {
		cobraCommand.AddCommand(usersCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	if application.buildError != nil {
		return application.buildError
	}
	executionError := application.rootCommand.Execute()
	if syncError := utils.SyncLogger(application.logger); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
	}
	for configurationKey, configurationValue := range userscmd.DefaultConfigurationValues(gitHubConfigurationKeyConstant, outputConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration
	application.applyFlagOverrides(command)

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	invocationIdentifier := uuid.NewString()
	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
		zap.String(invocationIdentifierFieldConstant, invocationIdentifier),
	)

	if command != nil {
		updatedContext := application.commandContextAccessor.WithConfigurationFilePath(
			command.Context(),
			application.configurationMetadata.ConfigFileUsed,
		)
		updatedContext = application.commandContextAccessor.WithInvocationIdentifier(updatedContext, invocationIdentifier)
		command.SetContext(updatedContext)
		if rootCommand := command.Root(); rootCommand != nil {
			rootCommand.SetContext(updatedContext)
		}
	}

	return nil
}

func (application *Application) applyFlagOverrides(command *cobra.Command) {
	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	if application.persistentFlagChanged(command, outputFlagNameConstant) {
		application.configuration.Output.Format = application.outputFlagValue
	}

	if application.persistentFlagChanged(command, apiEndpointFlagNameConstant) {
		application.configuration.GitHub.APIEndpoint = strings.TrimSpace(application.apiEndpointFlagValue)
	}

	if application.persistentFlagChanged(command, tokenSourceFlagNameConstant) {
		application.configuration.GitHub.TokenSource = strings.TrimSpace(application.tokenSourceFlagValue)
	}

	if application.persistentFlagChanged(command, loginFlagNameConstant) {
		application.configuration.GitHub.Login = strings.TrimSpace(application.loginFlagValue)
	}
}

func (application *Application) runRootCommand(command *cobra.Command, _ []string) error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	return command.Help()
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
