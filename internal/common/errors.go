// Package common defines shared constants and sentinel errors used across
// the xpboard client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrNotAuthenticated    = errors.New("You are not logged in. Please log in to continue")
	ErrIdentityUnavailable = errors.New("Failed to read user info from token. Please log in again")

	// Sign-in errors (bad credentials or malformed sign-in response).
	ErrAuthenticationFailed = errors.New("authentication failed")

	// GraphQL endpoint errors.
	ErrTransport = errors.New("transport error")
	ErrQuery     = errors.New("query error")

	// Lookup errors.
	ErrNotFound = errors.New("User not found")
)
