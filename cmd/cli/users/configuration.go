package users

import (
	"strings"
	"time"

	"github.com/temirov/ghusers/internal/githubapi"
	"github.com/temirov/ghusers/internal/utils"
)

const (
	configurationAPIEndpointKeyConstant       = "api_endpoint"
	configurationWebEndpointKeyConstant       = "web_endpoint"
	configurationUserAgentKeyConstant         = "user_agent"
	configurationTokenSourceKeyConstant       = "token_source"
	configurationLoginKeyConstant             = "login"
	configurationClientIDKeyConstant          = "client_id"
	configurationClientSecretKeyConstant      = "client_secret"
	configurationPerPageKeyConstant           = "per_page"
	configurationRequestsPerSecondKeyConstant = "requests_per_second"
	configurationTimeoutKeyConstant           = "timeout"
	configurationFormatKeyConstant            = "format"
)

// GitHubConfiguration describes how the users commands reach and authenticate with GitHub.
type GitHubConfiguration struct {
	APIEndpoint       string        `mapstructure:"api_endpoint"`
	WebEndpoint       string        `mapstructure:"web_endpoint"`
	UserAgent         string        `mapstructure:"user_agent"`
	TokenSource       string        `mapstructure:"token_source"`
	Login             string        `mapstructure:"login"`
	ClientID          string        `mapstructure:"client_id"`
	ClientSecret      string        `mapstructure:"client_secret"`
	PerPage           int           `mapstructure:"per_page"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// OutputConfiguration selects how results are rendered.
type OutputConfiguration struct {
	Format string `mapstructure:"format"`
}

// CommandConfiguration bundles the configuration consumed by the users commands.
type CommandConfiguration struct {
	GitHub GitHubConfiguration
	Output OutputConfiguration
}

// DefaultCommandConfiguration returns baseline values for the users commands.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		GitHub: GitHubConfiguration{
			APIEndpoint:       githubapi.DefaultAPIEndpoint,
			WebEndpoint:       githubapi.DefaultWebEndpoint,
			UserAgent:         githubapi.DefaultUserAgent,
			TokenSource:       "",
			Login:             "",
			ClientID:          "",
			ClientSecret:      "",
			PerPage:           githubapi.DefaultPerPage,
			RequestsPerSecond: 0,
			Timeout:           githubapi.DefaultTimeout,
		},
		Output: OutputConfiguration{Format: string(utils.OutputFormatJSON)},
	}
}

// DefaultConfigurationValues produces Viper defaults keyed under the GitHub and output sections.
func DefaultConfigurationValues(gitHubRootKey string, outputRootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		gitHubRootKey + "." + configurationAPIEndpointKeyConstant:       defaults.GitHub.APIEndpoint,
		gitHubRootKey + "." + configurationWebEndpointKeyConstant:       defaults.GitHub.WebEndpoint,
		gitHubRootKey + "." + configurationUserAgentKeyConstant:         defaults.GitHub.UserAgent,
		gitHubRootKey + "." + configurationTokenSourceKeyConstant:       defaults.GitHub.TokenSource,
		gitHubRootKey + "." + configurationLoginKeyConstant:             defaults.GitHub.Login,
		gitHubRootKey + "." + configurationClientIDKeyConstant:          defaults.GitHub.ClientID,
		gitHubRootKey + "." + configurationClientSecretKeyConstant:      defaults.GitHub.ClientSecret,
		gitHubRootKey + "." + configurationPerPageKeyConstant:           defaults.GitHub.PerPage,
		gitHubRootKey + "." + configurationRequestsPerSecondKeyConstant: defaults.GitHub.RequestsPerSecond,
		gitHubRootKey + "." + configurationTimeoutKeyConstant:           defaults.GitHub.Timeout.String(),
		outputRootKey + "." + configurationFormatKeyConstant:            defaults.Output.Format,
	}
}

// Sanitize trims string settings.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.GitHub.APIEndpoint = strings.TrimSpace(configuration.GitHub.APIEndpoint)
	sanitized.GitHub.WebEndpoint = strings.TrimSpace(configuration.GitHub.WebEndpoint)
	sanitized.GitHub.UserAgent = strings.TrimSpace(configuration.GitHub.UserAgent)
	sanitized.GitHub.TokenSource = strings.TrimSpace(configuration.GitHub.TokenSource)
	sanitized.GitHub.Login = strings.TrimSpace(configuration.GitHub.Login)
	sanitized.GitHub.ClientID = strings.TrimSpace(configuration.GitHub.ClientID)
	sanitized.GitHub.ClientSecret = strings.TrimSpace(configuration.GitHub.ClientSecret)
	sanitized.Output.Format = strings.ToLower(strings.TrimSpace(configuration.Output.Format))
	return sanitized
}

func (configuration GitHubConfiguration) clientConfiguration() githubapi.Configuration {
	return githubapi.Configuration{
		APIEndpoint:       configuration.APIEndpoint,
		WebEndpoint:       configuration.WebEndpoint,
		UserAgent:         configuration.UserAgent,
		PerPage:           configuration.PerPage,
		RequestsPerSecond: configuration.RequestsPerSecond,
		Timeout:           configuration.Timeout,
	}
}
