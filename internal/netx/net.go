// Package netx wraps the small amount of HTTP plumbing shared by the
// sign-in and GraphQL calls.
package netx

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodySize caps how much of a response body is read into memory.
const maxBodySize = 8 << 20

// Response is an HTTP response whose body has been fully read.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewClient returns an HTTP client with the given overall timeout.
// A zero timeout means no timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Do sends req and reads the body. Only transport failures are returned as
// errors; callers decide what a non-2xx status means.
func Do(c *http.Client, req *http.Request) (*Response, error) {
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}, nil
}

// BasicCredentials encodes "identifier:password" for an Authorization: Basic header.
func BasicCredentials(identifier, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(identifier + ":" + password))
}
