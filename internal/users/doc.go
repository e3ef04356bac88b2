// Package users binds the GitHub REST "users" resource group.
//
// Service exposes one method per endpoint: profile lookups and updates,
// follower relations, starred and watched repositories, public SSH keys,
// email addresses, and the OAuth code exchange. Every method formats a path,
// forwards it to a Transport, and decodes the response into typed records.
// Methods whose result depends on who is asking take an explicit Caller
// instead of reading identity from the transport.
package users
