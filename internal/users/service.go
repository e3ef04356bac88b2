package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/temirov/ghusers/internal/githubapi"
)

const (
	authenticatedUserPathConstant                = "user"
	authenticatedUserScopedPathTemplateConstant  = "user/%s"
	namedUserPathTemplateConstant                = "users/%s"
	namedUserScopedPathTemplateConstant          = "users/%s/%s"
	loginFieldNameConstant                       = "login"
	requiredValueMessageConstant                 = "value required"
	dotSegmentMessageConstant                    = "must not be a relative path segment"
	currentDirectorySegmentConstant              = "."
	parentDirectorySegmentConstant               = ".."
	anonymousCallerMessageConstant               = "value required when the caller is not authenticated"
	transportNotConfiguredMessageConstant        = "users transport not configured"
	factoryNotConfiguredMessageConstant          = "users transport factory not configured"
	invalidInputErrorTemplateConstant            = "%s: %s"
	responseDecodingErrorTemplateConstant        = "%s response decoding failed: %s"
	tokenExchangeErrorTemplateConstant           = "oauth code exchange failed: %s"
	tokenExchangeErrorWithDetailTemplateConstant = "oauth code exchange failed: %s: %s"
)

// Transport is the HTTP collaborator the Service delegates every request to.
// *githubapi.Client satisfies it.
type Transport interface {
	Get(executionContext context.Context, path string, query url.Values, target any) error
	Post(executionContext context.Context, path string, payload any, target any) error
	Patch(executionContext context.Context, path string, payload any, target any) error
	Paginate(executionContext context.Context, path string, query url.Values, handlePage func(pageBody []byte) error) error
	BooleanFromResponse(executionContext context.Context, method string, path string, payload any) (bool, error)
	WebEndpoint() string
	ClientID() string
	ClientSecret() string
}

// TransportFactory builds a Transport authenticated with different credentials.
type TransportFactory func(credentials githubapi.Credentials) (Transport, error)

// Caller describes who issues a request. Operations that can address either
// the authenticated account or a named account consult it to pick the path.
type Caller struct {
	Login         string
	Authenticated bool
}

// Service exposes the users endpoints over a Transport.
type Service struct {
	transport        Transport
	transportFactory TransportFactory
}

var (
	// ErrTransportNotConfigured indicates the service was constructed without a transport.
	ErrTransportNotConfigured = errors.New(transportNotConfiguredMessageConstant)
	// ErrTransportFactoryNotConfigured indicates ValidateCredentials has no way to build a scoped transport.
	ErrTransportFactoryNotConfigured = errors.New(factoryNotConfiguredMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// ResponseDecodingError indicates a paginated page could not be decoded.
type ResponseDecodingError struct {
	Path  string
	Cause error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Path, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// TokenExchangeError reports an OAuth error returned in a successful response body.
type TokenExchangeError struct {
	Code        string
	Description string
	URI         string
}

// Error describes the OAuth failure.
func (exchangeError TokenExchangeError) Error() string {
	if len(exchangeError.Description) == 0 {
		return fmt.Sprintf(tokenExchangeErrorTemplateConstant, exchangeError.Code)
	}
	return fmt.Sprintf(tokenExchangeErrorWithDetailTemplateConstant, exchangeError.Code, exchangeError.Description)
}

// NewService constructs a Service. transportFactory may be nil when
// ValidateCredentials is not needed.
func NewService(transport Transport, transportFactory TransportFactory) (*Service, error) {
	if transport == nil {
		return nil, ErrTransportNotConfigured
	}
	return &Service{transport: transport, transportFactory: transportFactory}, nil
}

// userScopedPath selects user/{suffix} when the request targets the
// authenticated caller and users/{login}/{suffix} otherwise.
func userScopedPath(caller Caller, login string, suffix string) (string, error) {
	resolvedLogin := strings.TrimSpace(login)
	callerLogin := strings.TrimSpace(caller.Login)
	if len(resolvedLogin) == 0 {
		resolvedLogin = callerLogin
	}

	if len(resolvedLogin) == 0 {
		if caller.Authenticated {
			return fmt.Sprintf(authenticatedUserScopedPathTemplateConstant, suffix), nil
		}
		return "", InvalidInputError{FieldName: loginFieldNameConstant, Message: anonymousCallerMessageConstant}
	}

	if caller.Authenticated && strings.EqualFold(resolvedLogin, callerLogin) {
		return fmt.Sprintf(authenticatedUserScopedPathTemplateConstant, suffix), nil
	}

	escapedLogin, loginError := pathSegment(loginFieldNameConstant, resolvedLogin)
	if loginError != nil {
		return "", loginError
	}
	return fmt.Sprintf(namedUserScopedPathTemplateConstant, escapedLogin, suffix), nil
}

func requireValue(fieldName string, value string) (string, error) {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return "", InvalidInputError{FieldName: fieldName, Message: requiredValueMessageConstant}
	}
	return trimmedValue, nil
}

// pathSegment validates value as a single path segment and returns it escaped.
// Dot segments are rejected since URL resolution collapses them into the parent path.
func pathSegment(fieldName string, value string) (string, error) {
	trimmedValue, valueError := requireValue(fieldName, value)
	if valueError != nil {
		return "", valueError
	}
	if trimmedValue == currentDirectorySegmentConstant || trimmedValue == parentDirectorySegmentConstant {
		return "", InvalidInputError{FieldName: fieldName, Message: dotSegmentMessageConstant}
	}
	return url.PathEscape(trimmedValue), nil
}

func collectPages[T any](executionContext context.Context, transport Transport, path string, query url.Values) ([]T, error) {
	collectedItems := make([]T, 0)
	paginationError := transport.Paginate(executionContext, path, query, func(pageBody []byte) error {
		if len(bytes.TrimSpace(pageBody)) == 0 {
			return nil
		}
		var pageItems []T
		if decodingError := json.Unmarshal(pageBody, &pageItems); decodingError != nil {
			return ResponseDecodingError{Path: path, Cause: decodingError}
		}
		collectedItems = append(collectedItems, pageItems...)
		return nil
	})
	if paginationError != nil {
		return nil, paginationError
	}
	return collectedItems, nil
}
