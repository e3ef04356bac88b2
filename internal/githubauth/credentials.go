package githubauth

import (
	"context"
	"strings"

	"github.com/temirov/ghusers/internal/githubapi"
)

// CredentialConfiguration gathers the configured credential inputs.
type CredentialConfiguration struct {
	TokenSource  string
	Login        string
	Password     string
	ClientID     string
	ClientSecret string
}

// CredentialResolver turns configuration into githubapi.Credentials.
type CredentialResolver struct {
	tokenResolver     *TokenResolver
	environmentLookup EnvironmentLookup
}

// NewCredentialResolver constructs a CredentialResolver. A nil tokenResolver
// reads from the process environment and filesystem.
func NewCredentialResolver(tokenResolver *TokenResolver, environmentLookup EnvironmentLookup) *CredentialResolver {
	if tokenResolver == nil {
		tokenResolver = NewTokenResolver(environmentLookup, nil, nil)
	}
	return &CredentialResolver{tokenResolver: tokenResolver, environmentLookup: environmentLookup}
}

// Resolve reads the token from the declared source, or from the well-known
// token variables when none is declared. Login, password, and application
// credentials pass through trimmed.
func (resolver *CredentialResolver) Resolve(resolutionContext context.Context, configuration CredentialConfiguration) (githubapi.Credentials, error) {
	credentials := githubapi.Credentials{
		Login:        strings.TrimSpace(configuration.Login),
		Password:     configuration.Password,
		ClientID:     strings.TrimSpace(configuration.ClientID),
		ClientSecret: strings.TrimSpace(configuration.ClientSecret),
	}

	if len(strings.TrimSpace(configuration.TokenSource)) > 0 {
		tokenSource, parseError := ParseTokenSource(configuration.TokenSource)
		if parseError != nil {
			return githubapi.Credentials{}, parseError
		}
		accessToken, resolveError := resolver.tokenResolver.Resolve(resolutionContext, tokenSource)
		if resolveError != nil {
			return githubapi.Credentials{}, resolveError
		}
		credentials.AccessToken = accessToken
		return credentials, nil
	}

	if len(credentials.Password) > 0 {
		return credentials, nil
	}

	if resolver.environmentLookup != nil {
		if accessToken, found := resolveFromLookup(resolver.environmentLookup); found {
			credentials.AccessToken = accessToken
		}
		return credentials, nil
	}

	if accessToken, found := ResolveToken(nil); found {
		credentials.AccessToken = accessToken
	}
	return credentials, nil
}
