// Package common contains shared constants and sentinel errors used across
// xpboard components.
package common

const (
	// DefaultBaseURL is the learning-platform origin used when no other is configured.
	DefaultBaseURL = "https://learn.zone01kisumu.ke"

	// SignInPath is the credential exchange endpoint.
	SignInPath = "/api/auth/signin"

	// GraphQLPath is the single GraphQL endpoint.
	GraphQLPath = "/api/graphql-engine/v1/graphql"

	// SessionTokenKey is the storage key the bearer token is persisted under.
	SessionTokenKey = "jwtToken"
)
