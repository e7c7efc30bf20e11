package client

import (
	"fmt"

	"github.com/dmitrijs2005/xpboard/internal/common"
)

// AuthenticationFailedError is returned by the sign-in call. StatusCode is
// zero when the request succeeded but the body carried no usable token.
type AuthenticationFailedError struct {
	StatusCode int
	Body       string
	Reason     string
}

func (e *AuthenticationFailedError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("authentication failed: HTTP %d - %s", e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("authentication failed: HTTP %d", e.StatusCode)
	default:
		return "authentication failed: " + e.Reason
	}
}

func (e *AuthenticationFailedError) Is(target error) bool {
	return target == common.ErrAuthenticationFailed
}

// TransportError reports a non-2xx answer from the GraphQL endpoint, or a
// request that never got an answer (StatusCode 0, Err set).
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func (e *TransportError) Is(target error) bool {
	return target == common.ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// QueryError carries the first message of a GraphQL errors envelope.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}

func (e *QueryError) Is(target error) bool {
	return target == common.ErrQuery
}
