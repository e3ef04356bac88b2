package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	acceptHeaderNameConstant            = "Accept"
	acceptHeaderValueConstant           = "application/vnd.github+json"
	acceptWebHeaderValueConstant        = "application/json"
	apiVersionHeaderNameConstant        = "X-GitHub-Api-Version"
	apiVersionHeaderValueConstant       = "2022-11-28"
	userAgentHeaderNameConstant         = "User-Agent"
	contentTypeHeaderNameConstant       = "Content-Type"
	contentTypeJSONValueConstant        = "application/json"
	requestIdentifierHeaderNameConstant = "X-Request-Id"
	linkHeaderNameConstant              = "Link"
	perPageQueryParameterConstant       = "per_page"
	pageQueryParameterConstant          = "page"
	authenticatedUserPathConstant       = "user"
	requestCompletedMessageConstant     = "github api request completed"
	requestFailedMessageConstant        = "github api request failed"
	requestRejectedMessageConstant      = "github api request rejected"
	identityLookupFailedMessageConstant = "unable to resolve authenticated login"
	logFieldMethodConstant              = "method"
	logFieldURLConstant                 = "url"
	logFieldStatusConstant              = "status"
	logFieldRequestIdentifierConstant   = "request_id"
	logFieldDurationConstant            = "duration"
	logFieldPageCountConstant           = "page"
	paginationPageMessageConstant       = "github api page received"
	paginationLoopMessageConstant       = "pagination link revisits a page"
	rateLimiterBurstConstant            = 1
)

// HTTPClient is the minimal interface required from *http.Client.
type HTTPClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// Identity describes who a Client acts as.
type Identity struct {
	Login         string
	Authenticated bool
}

// Client issues GitHub REST API requests.
type Client struct {
	logger                     *zap.Logger
	httpClient                 HTTPClient
	configuration              Configuration
	apiEndpoint                *url.URL
	webEndpoint                *url.URL
	requestLimiter             *rate.Limiter
	requestIdentifierGenerator func() string
}

type exchange struct {
	method     string
	requestURL string
	statusCode int
	header     http.Header
	body       []byte
}

// NewClient constructs a Client. A nil httpClient selects an *http.Client bounded by the configured timeout.
func NewClient(logger *zap.Logger, httpClient HTTPClient, configuration Configuration) (*Client, error) {
	sanitizedConfiguration := configuration.Sanitize()

	apiEndpoint, apiEndpointError := parseEndpoint(apiEndpointFieldNameConstant, sanitizedConfiguration.APIEndpoint)
	if apiEndpointError != nil {
		return nil, apiEndpointError
	}

	webEndpoint, webEndpointError := parseEndpoint(webEndpointFieldNameConstant, sanitizedConfiguration.WebEndpoint)
	if webEndpointError != nil {
		return nil, webEndpointError
	}

	if sanitizedConfiguration.RequestsPerSecond < 0 {
		return nil, InvalidConfigurationError{FieldName: requestsPerSecondFieldNameConstant, Message: negativeValueMessageConstant}
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: sanitizedConfiguration.Timeout}
	}

	var requestLimiter *rate.Limiter
	if sanitizedConfiguration.RequestsPerSecond > 0 {
		requestLimiter = rate.NewLimiter(rate.Limit(sanitizedConfiguration.RequestsPerSecond), rateLimiterBurstConstant)
	}

	return &Client{
		logger:                     logger,
		httpClient:                 httpClient,
		configuration:              sanitizedConfiguration,
		apiEndpoint:                apiEndpoint,
		webEndpoint:                webEndpoint,
		requestLimiter:             requestLimiter,
		requestIdentifierGenerator: uuid.NewString,
	}, nil
}

// WithCredentials returns a Client sharing this client's configuration but authenticating with other credentials.
func (client *Client) WithCredentials(credentials Credentials) *Client {
	scopedClient := *client
	scopedClient.configuration.Credentials = credentials
	return &scopedClient
}

// Login returns the configured login, if any.
func (client *Client) Login() string {
	return strings.TrimSpace(client.configuration.Credentials.Login)
}

// UserAuthenticated reports whether the client holds user credentials.
func (client *Client) UserAuthenticated() bool {
	return client.configuration.Credentials.UserAuthenticated()
}

// ClientID returns the configured OAuth application identifier.
func (client *Client) ClientID() string {
	return client.configuration.Credentials.ClientID
}

// ClientSecret returns the configured OAuth application secret.
func (client *Client) ClientSecret() string {
	return client.configuration.Credentials.ClientSecret
}

// WebEndpoint returns the non-API host base URL with a trailing slash.
func (client *Client) WebEndpoint() string {
	return client.webEndpoint.String()
}

// APIEndpoint returns the API base URL with a trailing slash.
func (client *Client) APIEndpoint() string {
	return client.apiEndpoint.String()
}

// ResolveIdentity reports the login the client acts as. Token-authenticated
// clients without a configured login discover it through the authenticated
// user endpoint; lookup failures leave the login empty.
func (client *Client) ResolveIdentity(executionContext context.Context) Identity {
	identity := Identity{
		Login:         client.Login(),
		Authenticated: client.UserAuthenticated(),
	}
	if len(identity.Login) > 0 || !client.configuration.Credentials.TokenAuthenticated() {
		return identity
	}

	var authenticatedUser struct {
		Login string `json:"login"`
	}
	lookupError := client.Get(executionContext, authenticatedUserPathConstant, nil, &authenticatedUser)
	if lookupError != nil {
		client.logger.Debug(identityLookupFailedMessageConstant, zap.Error(lookupError))
		return identity
	}

	identity.Login = strings.TrimSpace(authenticatedUser.Login)
	return identity
}

// Get issues a GET request and decodes the response into target when target is not nil.
func (client *Client) Get(executionContext context.Context, path string, query url.Values, target any) error {
	return client.executeAndDecode(executionContext, http.MethodGet, path, query, nil, target)
}

// Post issues a POST request with a JSON payload.
func (client *Client) Post(executionContext context.Context, path string, payload any, target any) error {
	return client.executeAndDecode(executionContext, http.MethodPost, path, nil, payload, target)
}

// Patch issues a PATCH request with a JSON payload.
func (client *Client) Patch(executionContext context.Context, path string, payload any, target any) error {
	return client.executeAndDecode(executionContext, http.MethodPatch, path, nil, payload, target)
}

// BooleanFromResponse issues the request and reports success as true and a
// 404 response as false. Every other failure is returned unchanged.
func (client *Client) BooleanFromResponse(executionContext context.Context, method string, path string, payload any) (bool, error) {
	_, executionError := client.execute(executionContext, method, path, nil, payload)
	if executionError == nil {
		return true, nil
	}
	if errors.Is(executionError, ErrNotFound) {
		return false, nil
	}
	return false, executionError
}

// Paginate issues GET requests starting at path and hands every page body to
// handlePage, following Link rel="next" headers until none remain. A query that
// names an explicit page fetches only that page.
func (client *Client) Paginate(executionContext context.Context, path string, query url.Values, handlePage func(pageBody []byte) error) error {
	pageQuery := url.Values{}
	for queryKey, queryValues := range query {
		pageQuery[queryKey] = append([]string(nil), queryValues...)
	}
	if len(pageQuery.Get(perPageQueryParameterConstant)) == 0 {
		pageQuery.Set(perPageQueryParameterConstant, strconv.Itoa(client.configuration.PerPage))
	}
	singlePage := len(pageQuery.Get(pageQueryParameterConstant)) > 0

	visitedPages := make(map[string]struct{})
	nextTarget := path
	nextQuery := pageQuery
	for pageNumber := 1; len(nextTarget) > 0; pageNumber++ {
		pageExchange, executionError := client.execute(executionContext, http.MethodGet, nextTarget, nextQuery, nil)
		if executionError != nil {
			return executionError
		}
		visitedPages[pageExchange.requestURL] = struct{}{}

		client.logger.Debug(
			paginationPageMessageConstant,
			zap.String(logFieldURLConstant, pageExchange.requestURL),
			zap.Int(logFieldPageCountConstant, pageNumber),
		)

		if handleError := handlePage(pageExchange.body); handleError != nil {
			return handleError
		}
		if singlePage {
			return nil
		}

		nextTarget = parseNextLink(pageExchange.header.Get(linkHeaderNameConstant))
		nextQuery = nil
		if _, visited := visitedPages[nextTarget]; visited {
			client.logger.Warn(paginationLoopMessageConstant, zap.String(logFieldURLConstant, nextTarget))
			return nil
		}
	}

	return nil
}

func (client *Client) executeAndDecode(executionContext context.Context, method string, path string, query url.Values, payload any, target any) error {
	responseExchange, executionError := client.execute(executionContext, method, path, query, payload)
	if executionError != nil {
		return executionError
	}
	return decodeExchange(responseExchange, target)
}

func (client *Client) execute(executionContext context.Context, method string, path string, query url.Values, payload any) (exchange, error) {
	requestURL, resolutionError := client.resolveURL(path, query)
	if resolutionError != nil {
		return exchange{}, RequestError{Method: method, URL: path, Cause: resolutionError}
	}
	requestURLText := requestURL.String()

	var requestBody io.Reader
	if payload != nil {
		payloadBytes, encodingError := json.Marshal(payload)
		if encodingError != nil {
			return exchange{}, PayloadEncodingError{Method: method, URL: requestURLText, Cause: encodingError}
		}
		requestBody = bytes.NewReader(payloadBytes)
	}

	if client.requestLimiter != nil {
		if waitError := client.requestLimiter.Wait(executionContext); waitError != nil {
			return exchange{}, RequestError{Method: method, URL: requestURLText, Cause: waitError}
		}
	}

	request, requestError := http.NewRequestWithContext(executionContext, method, requestURLText, requestBody)
	if requestError != nil {
		return exchange{}, RequestError{Method: method, URL: requestURLText, Cause: requestError}
	}

	requestIdentifier := client.requestIdentifierGenerator()
	targetsAPIHost := client.addressesAPIHost(requestURL)
	if targetsAPIHost {
		request.Header.Set(acceptHeaderNameConstant, acceptHeaderValueConstant)
	} else {
		request.Header.Set(acceptHeaderNameConstant, acceptWebHeaderValueConstant)
	}
	request.Header.Set(apiVersionHeaderNameConstant, apiVersionHeaderValueConstant)
	request.Header.Set(userAgentHeaderNameConstant, client.configuration.UserAgent)
	request.Header.Set(requestIdentifierHeaderNameConstant, requestIdentifier)
	if requestBody != nil {
		request.Header.Set(contentTypeHeaderNameConstant, contentTypeJSONValueConstant)
	}
	if targetsAPIHost {
		client.configuration.Credentials.apply(request)
	}

	startTime := time.Now()
	response, doError := client.httpClient.Do(request)
	if doError != nil {
		client.logger.Debug(
			requestFailedMessageConstant,
			zap.String(logFieldMethodConstant, method),
			zap.String(logFieldURLConstant, requestURLText),
			zap.String(logFieldRequestIdentifierConstant, requestIdentifier),
			zap.Error(doError),
		)
		return exchange{}, RequestError{Method: method, URL: requestURLText, Cause: doError}
	}
	defer response.Body.Close()

	responseBody, readError := io.ReadAll(response.Body)
	if readError != nil {
		return exchange{}, RequestError{Method: method, URL: requestURLText, Cause: readError}
	}

	logFields := []zap.Field{
		zap.String(logFieldMethodConstant, method),
		zap.String(logFieldURLConstant, requestURLText),
		zap.Int(logFieldStatusConstant, response.StatusCode),
		zap.String(logFieldRequestIdentifierConstant, requestIdentifier),
		zap.Duration(logFieldDurationConstant, time.Since(startTime)),
	}

	responseExchange := exchange{
		method:     method,
		requestURL: requestURLText,
		statusCode: response.StatusCode,
		header:     response.Header,
		body:       responseBody,
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		responseError := newResponseError(method, requestURLText, response.StatusCode, response.Header, responseBody)
		if errors.Is(responseError, ErrNotFound) {
			client.logger.Debug(requestRejectedMessageConstant, logFields...)
		} else {
			client.logger.Warn(requestRejectedMessageConstant, logFields...)
		}
		return responseExchange, responseError
	}

	client.logger.Debug(requestCompletedMessageConstant, logFields...)
	return responseExchange, nil
}

func (client *Client) resolveURL(path string, query url.Values) (*url.URL, error) {
	reference, parseError := url.Parse(strings.TrimPrefix(strings.TrimSpace(path), endpointPathSeparatorConstant))
	if parseError != nil {
		return nil, parseError
	}

	resolvedURL := reference
	if !reference.IsAbs() {
		resolvedURL = client.apiEndpoint.ResolveReference(reference)
	}

	if len(query) > 0 {
		mergedQuery := resolvedURL.Query()
		for queryKey, queryValues := range query {
			for _, queryValue := range queryValues {
				mergedQuery.Add(queryKey, queryValue)
			}
		}
		resolvedURL.RawQuery = mergedQuery.Encode()
	}

	return resolvedURL, nil
}

func (client *Client) addressesAPIHost(requestURL *url.URL) bool {
	if !strings.EqualFold(requestURL.Scheme, client.apiEndpoint.Scheme) || !strings.EqualFold(requestURL.Host, client.apiEndpoint.Host) {
		return false
	}
	return strings.HasPrefix(requestURL.Path, client.apiEndpoint.Path)
}

func decodeExchange(responseExchange exchange, target any) error {
	if target == nil || len(bytes.TrimSpace(responseExchange.body)) == 0 {
		return nil
	}
	if decodingError := json.Unmarshal(responseExchange.body, target); decodingError != nil {
		return ResponseDecodingError{Method: responseExchange.method, URL: responseExchange.requestURL, Cause: decodingError}
	}
	return nil
}
