package githubapi

import (
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultAPIEndpoint is the public GitHub REST API root.
	DefaultAPIEndpoint = "https://api.github.com/"
	// DefaultWebEndpoint is the public GitHub web host used for OAuth flows.
	DefaultWebEndpoint = "https://github.com/"
	// DefaultUserAgent identifies requests issued by this module.
	DefaultUserAgent = "ghusers"
	// DefaultPerPage is the page size requested while paginating.
	DefaultPerPage = 100
	// DefaultTimeout bounds a single HTTP exchange when no HTTP client is supplied.
	DefaultTimeout = 30 * time.Second

	maximumPerPageConstant             = 100
	apiEndpointFieldNameConstant       = "api_endpoint"
	webEndpointFieldNameConstant       = "web_endpoint"
	requestsPerSecondFieldNameConstant = "requests_per_second"
	endpointSchemeMessageConstant      = "must be an absolute http or https URL"
	negativeValueMessageConstant       = "must not be negative"
	endpointPathSeparatorConstant      = "/"
	httpSchemeConstant                 = "http"
	httpsSchemeConstant                = "https"
)

// Configuration describes how a Client reaches the API.
type Configuration struct {
	APIEndpoint       string
	WebEndpoint       string
	UserAgent         string
	Credentials       Credentials
	PerPage           int
	RequestsPerSecond float64
	Timeout           time.Duration
}

// Sanitize trims values and applies defaults for omitted settings.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.APIEndpoint = strings.TrimSpace(configuration.APIEndpoint)
	if len(sanitized.APIEndpoint) == 0 {
		sanitized.APIEndpoint = DefaultAPIEndpoint
	}
	sanitized.WebEndpoint = strings.TrimSpace(configuration.WebEndpoint)
	if len(sanitized.WebEndpoint) == 0 {
		sanitized.WebEndpoint = DefaultWebEndpoint
	}
	sanitized.UserAgent = strings.TrimSpace(configuration.UserAgent)
	if len(sanitized.UserAgent) == 0 {
		sanitized.UserAgent = DefaultUserAgent
	}
	switch {
	case sanitized.PerPage <= 0:
		sanitized.PerPage = DefaultPerPage
	case sanitized.PerPage > maximumPerPageConstant:
		sanitized.PerPage = maximumPerPageConstant
	}
	if sanitized.Timeout <= 0 {
		sanitized.Timeout = DefaultTimeout
	}
	return sanitized
}

func parseEndpoint(fieldName string, endpoint string) (*url.URL, error) {
	parsedEndpoint, parseError := url.Parse(endpoint)
	if parseError != nil {
		return nil, InvalidConfigurationError{FieldName: fieldName, Message: parseError.Error()}
	}

	if parsedEndpoint.Scheme != httpSchemeConstant && parsedEndpoint.Scheme != httpsSchemeConstant {
		return nil, InvalidConfigurationError{FieldName: fieldName, Message: endpointSchemeMessageConstant}
	}
	if len(parsedEndpoint.Host) == 0 {
		return nil, InvalidConfigurationError{FieldName: fieldName, Message: endpointSchemeMessageConstant}
	}

	if !strings.HasSuffix(parsedEndpoint.Path, endpointPathSeparatorConstant) {
		parsedEndpoint.Path += endpointPathSeparatorConstant
		if len(parsedEndpoint.RawPath) > 0 {
			parsedEndpoint.RawPath += endpointPathSeparatorConstant
		}
	}

	return parsedEndpoint, nil
}
