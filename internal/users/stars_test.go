package users_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/ghusers/internal/users"
)

func TestStarredAndSubscriptionsRouting(testInstance *testing.T) {
	authenticatedCaller := users.Caller{Login: testCallerLoginConstant, Authenticated: true}

	testCases := []struct {
		name          string
		login         string
		operation     string
		expectedPath  string
		expectedQuery map[string]string
	}{
		{name: "starred_self", login: testCallerLoginConstant, operation: "starred", expectedPath: "user/starred"},
		{name: "starred_other", login: testOtherLoginConstant, operation: "starred", expectedPath: "users/hubot/starred"},
		{name: "starred_sorted", login: "", operation: "starred_sorted", expectedPath: "user/starred", expectedQuery: map[string]string{"sort": "updated", "direction": "asc"}},
		{name: "subscriptions_self", login: testCallerLoginConstant, operation: "subscriptions", expectedPath: "user/subscriptions"},
		{name: "subscriptions_other", login: testOtherLoginConstant, operation: "subscriptions", expectedPath: "users/hubot/subscriptions"},
		{name: "watched_alias", login: testOtherLoginConstant, operation: "watched", expectedPath: "users/hubot/subscriptions"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			transport := &stubTransport{pages: map[string][]string{testCase.expectedPath: {testRepositoriesPageConstant}}}
			service := newTestService(testInstance, transport, nil)

			var repositories []users.Repository
			var listError error
			switch testCase.operation {
			case "starred":
				repositories, listError = service.Starred(context.Background(), authenticatedCaller, testCase.login, users.StarredOptions{})
			case "starred_sorted":
				repositories, listError = service.Starred(context.Background(), authenticatedCaller, testCase.login, users.StarredOptions{
					Sort:      users.Some("updated"),
					Direction: users.Some("asc"),
				})
			case "subscriptions":
				repositories, listError = service.Subscriptions(context.Background(), authenticatedCaller, testCase.login, users.ListOptions{})
			case "watched":
				repositories, listError = service.Watched(context.Background(), authenticatedCaller, testCase.login, users.ListOptions{})
			}

			require.NoError(testInstance, listError)
			require.Len(testInstance, repositories, 1)
			require.Equal(testInstance, "octocat/hello-world", repositories[0].FullName)
			require.Equal(testInstance, testCallerLoginConstant, repositories[0].Owner.Login)
			require.Len(testInstance, transport.calls, 1)
			require.Equal(testInstance, testCase.expectedPath, transport.calls[0].Path)
			for parameterName, parameterValue := range testCase.expectedQuery {
				require.Equal(testInstance, parameterValue, transport.calls[0].Query.Get(parameterName))
			}
		})
	}
}

func TestCheckStarred(testInstance *testing.T) {
	transport := &stubTransport{booleanResults: map[string]bool{"GET user/starred/octocat/hello-world": true}}
	service := newTestService(testInstance, transport, nil)

	starred, starredError := service.CheckStarred(context.Background(), testCallerLoginConstant, "hello-world")
	require.NoError(testInstance, starredError)
	require.True(testInstance, starred)

	notStarred, notStarredError := service.CheckStarred(context.Background(), testCallerLoginConstant, "linguist")
	require.NoError(testInstance, notStarredError)
	require.False(testInstance, notStarred)

	require.Len(testInstance, transport.calls, 2)
	require.Equal(testInstance, http.MethodGet, transport.calls[1].Method)
	require.Equal(testInstance, "user/starred/octocat/linguist", transport.calls[1].Path)

	_, missingRepositoryError := service.CheckStarred(context.Background(), testCallerLoginConstant, "")
	require.IsType(testInstance, users.InvalidInputError{}, missingRepositoryError)
}

func TestStarsRejectDotSegments(testInstance *testing.T) {
	testCases := []struct {
		name       string
		owner      string
		repository string
		login      string
	}{
		{name: "parent_repository", owner: testCallerLoginConstant, repository: "..", login: ".."},
		{name: "current_owner", owner: ".", repository: "hello-world", login: "."},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			transport := &stubTransport{}
			service := newTestService(testInstance, transport, nil)
			caller := users.Caller{Login: testCallerLoginConstant, Authenticated: true}

			starred, starredError := service.CheckStarred(context.Background(), testCase.owner, testCase.repository)
			require.IsType(testInstance, users.InvalidInputError{}, starredError)
			require.False(testInstance, starred)

			_, starredListError := service.Starred(context.Background(), caller, testCase.login, users.StarredOptions{})
			require.IsType(testInstance, users.InvalidInputError{}, starredListError)

			_, subscriptionsError := service.Subscriptions(context.Background(), caller, testCase.login, users.ListOptions{})
			require.IsType(testInstance, users.InvalidInputError{}, subscriptionsError)

			require.Empty(testInstance, transport.calls)
		})
	}
}
