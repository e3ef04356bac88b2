package users

import (
	"context"
	"fmt"
	"strings"
)

const (
	allUsersPathConstant = "users"
)

// AllUsers lists every account in creation order, starting after the Since cursor.
func (service *Service) AllUsers(executionContext context.Context, options AllUsersOptions) ([]User, error) {
	return collectPages[User](executionContext, service.transport, allUsersPathConstant, options.query())
}

// User fetches a single account. An empty login fetches the authenticated account.
func (service *Service) User(executionContext context.Context, login string) (User, error) {
	path := authenticatedUserPathConstant
	if len(strings.TrimSpace(login)) > 0 {
		escapedLogin, loginError := pathSegment(loginFieldNameConstant, login)
		if loginError != nil {
			return User{}, loginError
		}
		path = fmt.Sprintf(namedUserPathTemplateConstant, escapedLogin)
	}

	var user User
	if getError := service.transport.Get(executionContext, path, nil, &user); getError != nil {
		return User{}, getError
	}
	return user, nil
}

// UpdateUser changes profile fields of the authenticated account.
func (service *Service) UpdateUser(executionContext context.Context, update UserUpdate) (User, error) {
	var user User
	if patchError := service.transport.Patch(executionContext, authenticatedUserPathConstant, update.payload(), &user); patchError != nil {
		return User{}, patchError
	}
	return user, nil
}
