package githubapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	unauthorizedMessageConstant                 = "github api: unauthorized"
	forbiddenMessageConstant                    = "github api: forbidden"
	rateLimitedMessageConstant                  = "github api: rate limit exceeded"
	notFoundMessageConstant                     = "github api: not found"
	unprocessableMessageConstant                = "github api: unprocessable entity"
	clientErrorMessageConstant                  = "github api: client error"
	serverErrorMessageConstant                  = "github api: server error"
	unexpectedStatusMessageConstant             = "github api: unexpected status"
	responseErrorTemplateConstant               = "%s %s: %d %s"
	responseErrorWithoutMessageTemplateConstant = "%s %s: %d"
	requestErrorTemplateConstant                = "%s %s request failed: %s"
	payloadEncodingErrorTemplateConstant        = "%s %s payload encoding failed: %s"
	responseDecodingErrorTemplateConstant       = "%s %s response decoding failed: %s"
	invalidConfigurationErrorTemplateConstant   = "invalid github api configuration: %s: %s"
	rateLimitRemainingHeaderNameConstant        = "X-RateLimit-Remaining"
	rateLimitExhaustedValueConstant             = "0"
)

var (
	// ErrUnauthorized indicates missing, invalid, or revoked credentials (HTTP 401).
	ErrUnauthorized = errors.New(unauthorizedMessageConstant)
	// ErrForbidden indicates the credentials lack access to the resource (HTTP 403).
	ErrForbidden = errors.New(forbiddenMessageConstant)
	// ErrRateLimited indicates the API rate limit is exhausted.
	ErrRateLimited = errors.New(rateLimitedMessageConstant)
	// ErrNotFound indicates the resource or relation does not exist (HTTP 404).
	ErrNotFound = errors.New(notFoundMessageConstant)
	// ErrUnprocessable indicates validation failures reported by the API (HTTP 422).
	ErrUnprocessable = errors.New(unprocessableMessageConstant)
	// ErrClient covers the remaining 4xx responses.
	ErrClient = errors.New(clientErrorMessageConstant)
	// ErrServer covers 5xx responses.
	ErrServer = errors.New(serverErrorMessageConstant)
	// ErrUnexpectedStatus covers non-2xx responses outside the 4xx and 5xx ranges.
	ErrUnexpectedStatus = errors.New(unexpectedStatusMessageConstant)
)

// ResponseError describes a non-successful HTTP response.
type ResponseError struct {
	Method           string
	URL              string
	StatusCode       int
	Message          string
	DocumentationURL string
	Kind             error
}

// Error describes the response failure.
func (responseError ResponseError) Error() string {
	if len(responseError.Message) == 0 {
		return fmt.Sprintf(responseErrorWithoutMessageTemplateConstant, responseError.Method, responseError.URL, responseError.StatusCode)
	}
	return fmt.Sprintf(responseErrorTemplateConstant, responseError.Method, responseError.URL, responseError.StatusCode, responseError.Message)
}

// Unwrap exposes the error kind so callers can rely on errors.Is.
func (responseError ResponseError) Unwrap() error {
	return responseError.Kind
}

// RequestError wraps failures that prevented a response from being received.
type RequestError struct {
	Method string
	URL    string
	Cause  error
}

// Error describes the request failure.
func (requestError RequestError) Error() string {
	return fmt.Sprintf(requestErrorTemplateConstant, requestError.Method, requestError.URL, requestError.Cause)
}

// Unwrap exposes the underlying transport error.
func (requestError RequestError) Unwrap() error {
	return requestError.Cause
}

// PayloadEncodingError indicates a request body could not be encoded as JSON.
type PayloadEncodingError struct {
	Method string
	URL    string
	Cause  error
}

// Error describes the encoding failure.
func (encodingError PayloadEncodingError) Error() string {
	return fmt.Sprintf(payloadEncodingErrorTemplateConstant, encodingError.Method, encodingError.URL, encodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (encodingError PayloadEncodingError) Unwrap() error {
	return encodingError.Cause
}

// ResponseDecodingError indicates a response body could not be decoded.
type ResponseDecodingError struct {
	Method string
	URL    string
	Cause  error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Method, decodingError.URL, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// InvalidConfigurationError reports unusable client configuration values.
type InvalidConfigurationError struct {
	FieldName string
	Message   string
}

// Error describes the configuration problem.
func (configurationError InvalidConfigurationError) Error() string {
	return fmt.Sprintf(invalidConfigurationErrorTemplateConstant, configurationError.FieldName, configurationError.Message)
}

func newResponseError(method string, requestURL string, statusCode int, header http.Header, body []byte) ResponseError {
	var errorPayload struct {
		Message          string `json:"message"`
		DocumentationURL string `json:"documentation_url"`
	}
	_ = json.Unmarshal(body, &errorPayload)

	return ResponseError{
		Method:           method,
		URL:              requestURL,
		StatusCode:       statusCode,
		Message:          strings.TrimSpace(errorPayload.Message),
		DocumentationURL: errorPayload.DocumentationURL,
		Kind:             classifyStatus(statusCode, header),
	}
}

func classifyStatus(statusCode int, header http.Header) error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case statusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case statusCode == http.StatusForbidden:
		if header != nil && strings.TrimSpace(header.Get(rateLimitRemainingHeaderNameConstant)) == rateLimitExhaustedValueConstant {
			return ErrRateLimited
		}
		return ErrForbidden
	case statusCode == http.StatusNotFound:
		return ErrNotFound
	case statusCode == http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case statusCode >= 400 && statusCode < 500:
		return ErrClient
	case statusCode >= 500:
		return ErrServer
	default:
		return ErrUnexpectedStatus
	}
}
