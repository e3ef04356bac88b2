// Package githubauth locates the credentials ghusers authenticates with: access
// tokens from declared sources or well-known environment variables, and
// passwords typed at a terminal.
package githubauth
