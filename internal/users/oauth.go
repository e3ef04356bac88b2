package users

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/ghusers/internal/githubapi"
)

const (
	accessTokenPathConstant       = "login/oauth/access_token"
	codeFieldNameConstant         = "code"
	clientIDFieldNameConstant     = "client_id"
	clientSecretFieldNameConstant = "client_secret"
	redirectURIFieldNameConstant  = "redirect_uri"
	stateFieldNameConstant        = "state"
	pathSeparatorConstant         = "/"
)

// ExchangeCodeForToken trades an OAuth authorization code for an access token
// on the web host. Blank application credentials fall back to the ones the
// transport was configured with.
func (service *Service) ExchangeCodeForToken(executionContext context.Context, code string, applicationID string, applicationSecret string, options TokenExchangeOptions) (AccessToken, error) {
	trimmedCode, codeError := requireValue(codeFieldNameConstant, code)
	if codeError != nil {
		return AccessToken{}, codeError
	}

	resolvedApplicationID := strings.TrimSpace(applicationID)
	if len(resolvedApplicationID) == 0 {
		resolvedApplicationID = strings.TrimSpace(service.transport.ClientID())
	}
	if _, applicationIDError := requireValue(clientIDFieldNameConstant, resolvedApplicationID); applicationIDError != nil {
		return AccessToken{}, applicationIDError
	}

	resolvedApplicationSecret := strings.TrimSpace(applicationSecret)
	if len(resolvedApplicationSecret) == 0 {
		resolvedApplicationSecret = strings.TrimSpace(service.transport.ClientSecret())
	}
	if _, applicationSecretError := requireValue(clientSecretFieldNameConstant, resolvedApplicationSecret); applicationSecretError != nil {
		return AccessToken{}, applicationSecretError
	}

	payload := map[string]any{
		codeFieldNameConstant:         trimmedCode,
		clientIDFieldNameConstant:     resolvedApplicationID,
		clientSecretFieldNameConstant: resolvedApplicationSecret,
	}
	setPresent(payload, redirectURIFieldNameConstant, options.RedirectURI)
	setPresent(payload, stateFieldNameConstant, options.State)

	tokenEndpoint := strings.TrimSuffix(service.transport.WebEndpoint(), pathSeparatorConstant) + pathSeparatorConstant + accessTokenPathConstant

	var accessToken AccessToken
	if postError := service.transport.Post(executionContext, tokenEndpoint, payload, &accessToken); postError != nil {
		return AccessToken{}, postError
	}

	if len(accessToken.Error) > 0 {
		return accessToken, TokenExchangeError{
			Code:        accessToken.Error,
			Description: accessToken.ErrorDescription,
			URI:         accessToken.ErrorURI,
		}
	}

	return accessToken, nil
}

// ValidateCredentials reports whether a login and password authenticate. It
// builds a transport scoped to the credentials and fetches the authenticated
// account; an authorization failure yields false, any other failure is returned.
func (service *Service) ValidateCredentials(executionContext context.Context, credentials BasicCredentials) (bool, error) {
	trimmedLogin, loginError := requireValue(loginFieldNameConstant, credentials.Login)
	if loginError != nil {
		return false, loginError
	}

	if service.transportFactory == nil {
		return false, ErrTransportFactoryNotConfigured
	}

	scopedTransport, factoryError := service.transportFactory(githubapi.Credentials{
		Login:    trimmedLogin,
		Password: credentials.Password,
	})
	if factoryError != nil {
		return false, factoryError
	}

	lookupError := scopedTransport.Get(executionContext, authenticatedUserPathConstant, nil, nil)
	switch {
	case lookupError == nil:
		return true, nil
	case errors.Is(lookupError, githubapi.ErrUnauthorized):
		return false, nil
	default:
		return false, lookupError
	}
}
