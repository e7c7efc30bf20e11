package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/xpboard/internal/common"
	"github.com/dmitrijs2005/xpboard/internal/logging"
	"github.com/dmitrijs2005/xpboard/internal/netx"
)

// TokenSource yields the current bearer token, if any.
type TokenSource interface {
	Retrieve(ctx context.Context) (string, bool)
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GraphQLClient posts queries to the platform's GraphQL endpoint with
// bearer auth.
type GraphQLClient struct {
	endpoint string
	http     *http.Client
	tokens   TokenSource
	log      logging.Logger
}

func NewGraphQLClient(baseURL string, httpClient *http.Client, tokens TokenSource, log logging.Logger) *GraphQLClient {
	return &GraphQLClient{
		endpoint: strings.TrimRight(baseURL, "/") + common.GraphQLPath,
		http:     httpClient,
		tokens:   tokens,
		log:      log,
	}
}

// Query sends document with variables and returns the data field verbatim.
//
// Without a stored token it fails with common.ErrNotAuthenticated before
// any network I/O. Non-2xx answers yield *TransportError; a non-empty
// errors envelope yields *QueryError even when data is present.
func (c *GraphQLClient) Query(ctx context.Context, document string, variables map[string]any) (json.RawMessage, error) {
	tok, ok := c.tokens.Retrieve(ctx)
	if !ok {
		return nil, common.ErrNotAuthenticated
	}

	if variables == nil {
		variables = map[string]any{}
	}
	payload, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := netx.Do(c.http, req)
	if err != nil {
		c.log.Error(ctx, "graphql request failed", "err", err)
		return nil, &TransportError{Err: err}
	}
	c.log.Debug(ctx, "graphql response", "status", resp.StatusCode, "bytes", len(resp.Body), "duration", time.Since(start).String())

	if !resp.OK() {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(resp.Body))}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed graphql response: %v", common.ErrTransport, err)
	}

	if len(envelope.Errors) > 0 {
		msg := envelope.Errors[0].Message
		if msg == "" {
			msg = "graphql error"
		}
		return nil, &QueryError{Message: msg}
	}

	return envelope.Data, nil
}
