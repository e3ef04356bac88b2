// Package githubapi performs authenticated requests against a GitHub-compatible
// REST API.
//
// Client resolves request paths against the configured API endpoint, attaches
// credentials, follows Link based pagination, and maps HTTP status codes onto a
// small error taxonomy (ErrUnauthorized, ErrNotFound, ErrRateLimited, and so
// on) so that callers can use errors.Is instead of inspecting status codes.
// BooleanFromResponse folds 404 responses into false for endpoints that report
// relations through status codes alone.
package githubapi
