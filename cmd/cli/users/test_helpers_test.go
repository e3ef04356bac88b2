package users_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	userscmd "github.com/temirov/ghusers/cmd/cli/users"
	"github.com/temirov/ghusers/internal/githubauth"
)

const (
	testAPIPathPrefixConstant    = "/api/v3"
	testEnvironmentTokenConstant = "token-from-environment"
	testNotFoundBodyConstant     = `{"message":"Not Found"}`
)

type recordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	Body          string
}

type fakeResponse struct {
	status   int
	body     string
	nextPath string
}

// fakeGitHub serves canned responses keyed by "METHOD /path" and records every request.
type fakeGitHub struct {
	mutex     sync.Mutex
	requests  []recordedRequest
	responses map[string]fakeResponse
	server    *httptest.Server
}

func newFakeGitHub(testInstance testing.TB, responses map[string]fakeResponse) *fakeGitHub {
	testInstance.Helper()
	fake := &fakeGitHub{responses: responses}
	fake.server = httptest.NewServer(http.HandlerFunc(fake.serve))
	testInstance.Cleanup(fake.server.Close)
	return fake
}

func (fake *fakeGitHub) serve(responseWriter http.ResponseWriter, request *http.Request) {
	requestBody, _ := io.ReadAll(request.Body)

	fake.mutex.Lock()
	fake.requests = append(fake.requests, recordedRequest{
		Method:        request.Method,
		Path:          request.URL.Path,
		RawQuery:      request.URL.RawQuery,
		Authorization: request.Header.Get("Authorization"),
		Body:          string(requestBody),
	})
	response, found := fake.responses[request.Method+" "+request.URL.Path]
	fake.mutex.Unlock()

	responseWriter.Header().Set("Content-Type", "application/json")
	if !found {
		responseWriter.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(responseWriter, testNotFoundBodyConstant)
		return
	}
	if len(response.nextPath) > 0 {
		responseWriter.Header().Set("Link", "<"+fake.server.URL+response.nextPath+`>; rel="next"`)
	}
	status := response.status
	if status == 0 {
		status = http.StatusOK
	}
	responseWriter.WriteHeader(status)
	_, _ = io.WriteString(responseWriter, response.body)
}

func (fake *fakeGitHub) recorded() []recordedRequest {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	return append([]recordedRequest(nil), fake.requests...)
}

func (fake *fakeGitHub) configuration() userscmd.CommandConfiguration {
	configuration := userscmd.DefaultCommandConfiguration()
	configuration.GitHub.APIEndpoint = fake.server.URL + testAPIPathPrefixConstant
	configuration.GitHub.WebEndpoint = fake.server.URL
	return configuration
}

type recordingPasswordPrompter struct {
	password       string
	promptError    error
	promptedLogins []string
}

func (prompter *recordingPasswordPrompter) PromptPassword(login string) (string, error) {
	prompter.promptedLogins = append(prompter.promptedLogins, login)
	return prompter.password, prompter.promptError
}

type commandHarness struct {
	configuration userscmd.CommandConfiguration
	environment   map[string]string
	prompter      *recordingPasswordPrompter
	logger        *zap.Logger
}

func (harness commandHarness) execute(testInstance testing.TB, arguments ...string) (string, error) {
	testInstance.Helper()

	environment := harness.environment
	builder := userscmd.CommandGroupBuilder{
		LoggerProvider: func() *zap.Logger { return harness.logger },
		ConfigurationProvider: func() userscmd.CommandConfiguration {
			return harness.configuration
		},
		EnvironmentLookup: func(key string) (string, bool) {
			value, exists := environment[key]
			return value, exists
		},
	}
	if harness.prompter != nil {
		builder.PasswordPrompterFactory = func(*cobra.Command) githubauth.PasswordPrompter {
			return harness.prompter
		}
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetContext(context.Background())
	stdoutBuffer := &bytes.Buffer{}
	stderrBuffer := &bytes.Buffer{}
	command.SetOut(stdoutBuffer)
	command.SetErr(stderrBuffer)
	command.SetArgs(arguments)

	executionError := command.Execute()
	return strings.TrimSpace(stdoutBuffer.String()), executionError
}

func tokenEnvironment() map[string]string {
	return map[string]string{githubauth.EnvGitHubToken: testEnvironmentTokenConstant}
}
