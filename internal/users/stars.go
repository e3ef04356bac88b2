package users

import (
	"context"
	"fmt"
	"net/http"
)

const (
	starredSuffixConstant                 = "starred"
	subscriptionsSuffixConstant           = "subscriptions"
	starredRepositoryPathTemplateConstant = "user/starred/%s/%s"
	ownerFieldNameConstant                = "owner"
	repositoryFieldNameConstant           = "repository"
)

// Starred lists repositories starred by login, or by the caller when login is empty.
func (service *Service) Starred(executionContext context.Context, caller Caller, login string, options StarredOptions) ([]Repository, error) {
	path, pathError := userScopedPath(caller, login, starredSuffixConstant)
	if pathError != nil {
		return nil, pathError
	}
	return collectPages[Repository](executionContext, service.transport, path, options.query())
}

// CheckStarred reports whether the authenticated account starred owner/repository.
func (service *Service) CheckStarred(executionContext context.Context, owner string, repository string) (bool, error) {
	escapedOwner, ownerError := pathSegment(ownerFieldNameConstant, owner)
	if ownerError != nil {
		return false, ownerError
	}
	escapedRepository, repositoryError := pathSegment(repositoryFieldNameConstant, repository)
	if repositoryError != nil {
		return false, repositoryError
	}

	path := fmt.Sprintf(starredRepositoryPathTemplateConstant, escapedOwner, escapedRepository)
	return service.transport.BooleanFromResponse(executionContext, http.MethodGet, path, nil)
}

// Subscriptions lists repositories watched by login, or by the caller when login is empty.
func (service *Service) Subscriptions(executionContext context.Context, caller Caller, login string, options ListOptions) ([]Repository, error) {
	path, pathError := userScopedPath(caller, login, subscriptionsSuffixConstant)
	if pathError != nil {
		return nil, pathError
	}
	return collectPages[Repository](executionContext, service.transport, path, options.query())
}

// Watched is an alias of Subscriptions.
func (service *Service) Watched(executionContext context.Context, caller Caller, login string, options ListOptions) ([]Repository, error) {
	return service.Subscriptions(executionContext, caller, login, options)
}
