package githubapi

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	authorizationHeaderNameConstant     = "Authorization"
	bearerAuthorizationTemplateConstant = "Bearer %s"
)

// Credentials carries the identity a Client authenticates with.
type Credentials struct {
	Login        string
	Password     string
	AccessToken  string
	ClientID     string
	ClientSecret string
}

// TokenAuthenticated reports whether an access token is configured.
func (credentials Credentials) TokenAuthenticated() bool {
	return len(strings.TrimSpace(credentials.AccessToken)) > 0
}

// BasicAuthenticated reports whether both a login and a password are configured.
func (credentials Credentials) BasicAuthenticated() bool {
	return len(strings.TrimSpace(credentials.Login)) > 0 && len(credentials.Password) > 0
}

// UserAuthenticated reports whether requests act on behalf of a user.
func (credentials Credentials) UserAuthenticated() bool {
	return credentials.TokenAuthenticated() || credentials.BasicAuthenticated()
}

func (credentials Credentials) apply(request *http.Request) {
	switch {
	case credentials.TokenAuthenticated():
		request.Header.Set(authorizationHeaderNameConstant, fmt.Sprintf(bearerAuthorizationTemplateConstant, strings.TrimSpace(credentials.AccessToken)))
	case credentials.BasicAuthenticated():
		request.SetBasicAuth(strings.TrimSpace(credentials.Login), credentials.Password)
	}
}
