package users

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const (
	followersSuffixConstant               = "followers"
	followingSuffixConstant               = "following"
	followingTargetSuffixTemplateConstant = "following/%s"
	targetFieldNameConstant               = "target"
	actingLoginFieldNameConstant          = "acting_login"
)

// Followers lists accounts following login, or the caller when login is empty.
func (service *Service) Followers(executionContext context.Context, caller Caller, login string, options ListOptions) ([]User, error) {
	path, pathError := userScopedPath(caller, login, followersSuffixConstant)
	if pathError != nil {
		return nil, pathError
	}
	return collectPages[User](executionContext, service.transport, path, options.query())
}

// Following lists accounts followed by login, or by the caller when login is empty.
func (service *Service) Following(executionContext context.Context, caller Caller, login string, options ListOptions) ([]User, error) {
	path, pathError := userScopedPath(caller, login, followingSuffixConstant)
	if pathError != nil {
		return nil, pathError
	}
	return collectPages[User](executionContext, service.transport, path, options.query())
}

// Follows reports whether actingLogin follows target. An empty actingLogin, or
// one naming the authenticated caller, checks the caller's own relation.
func (service *Service) Follows(executionContext context.Context, caller Caller, target string, actingLogin string) (bool, error) {
	escapedTarget, targetError := pathSegment(targetFieldNameConstant, target)
	if targetError != nil {
		return false, targetError
	}

	followingSuffix := fmt.Sprintf(followingTargetSuffixTemplateConstant, escapedTarget)
	path := fmt.Sprintf(authenticatedUserScopedPathTemplateConstant, followingSuffix)

	trimmedActingLogin := strings.TrimSpace(actingLogin)
	actsAsCaller := len(trimmedActingLogin) == 0 || (caller.Authenticated && strings.EqualFold(trimmedActingLogin, strings.TrimSpace(caller.Login)))
	if !actsAsCaller {
		escapedActingLogin, actingLoginError := pathSegment(actingLoginFieldNameConstant, trimmedActingLogin)
		if actingLoginError != nil {
			return false, actingLoginError
		}
		path = fmt.Sprintf(namedUserScopedPathTemplateConstant, escapedActingLogin, followingSuffix)
	}

	return service.transport.BooleanFromResponse(executionContext, http.MethodGet, path, nil)
}

// Follow makes the authenticated account follow target.
func (service *Service) Follow(executionContext context.Context, target string) (bool, error) {
	path, pathError := followingTargetPath(target)
	if pathError != nil {
		return false, pathError
	}
	return service.transport.BooleanFromResponse(executionContext, http.MethodPut, path, nil)
}

// Unfollow makes the authenticated account stop following target.
func (service *Service) Unfollow(executionContext context.Context, target string) (bool, error) {
	path, pathError := followingTargetPath(target)
	if pathError != nil {
		return false, pathError
	}
	return service.transport.BooleanFromResponse(executionContext, http.MethodDelete, path, nil)
}

func followingTargetPath(target string) (string, error) {
	escapedTarget, targetError := pathSegment(targetFieldNameConstant, target)
	if targetError != nil {
		return "", targetError
	}
	followingSuffix := fmt.Sprintf(followingTargetSuffixTemplateConstant, escapedTarget)
	return fmt.Sprintf(authenticatedUserScopedPathTemplateConstant, followingSuffix), nil
}
