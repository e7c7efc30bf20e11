package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/xpboard/internal/common"
	"github.com/dmitrijs2005/xpboard/internal/logging"
	"github.com/dmitrijs2005/xpboard/internal/netx"
)

// tokenFields are the object keys a sign-in body may carry the token under.
var tokenFields = []string{"token", "jwt", "access_token"}

// Authenticator exchanges credentials for a bearer token.
type Authenticator struct {
	endpoint string
	http     *http.Client
	log      logging.Logger
}

func NewAuthenticator(baseURL string, httpClient *http.Client, log logging.Logger) *Authenticator {
	return &Authenticator{
		endpoint: strings.TrimRight(baseURL, "/") + common.SignInPath,
		http:     httpClient,
		log:      log,
	}
}

// Authenticate posts Basic credentials to the sign-in endpoint and returns
// the trimmed token. Any non-2xx status or unusable body yields an
// *AuthenticationFailedError. The password is never logged.
func (a *Authenticator) Authenticate(ctx context.Context, identifier, password string) (string, error) {
	a.log.Debug(ctx, "signing in", "identifier", identifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, http.NoBody)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Basic "+netx.BasicCredentials(identifier, password))
	req.Header.Set("Content-Type", "application/json")

	resp, err := netx.Do(a.http, req)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if !resp.OK() {
		a.log.Warn(ctx, "sign-in rejected", "identifier", identifier, "status", resp.StatusCode)
		return "", &AuthenticationFailedError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(resp.Body)),
		}
	}

	tok, reason := parseToken(resp.Body)
	if tok == "" {
		a.log.Warn(ctx, "sign-in returned no token", "identifier", identifier, "reason", reason)
		return "", &AuthenticationFailedError{Reason: reason}
	}

	a.log.Info(ctx, "signed in", "identifier", identifier)
	return tok, nil
}

// parseToken accepts a bare JSON string or an object carrying one of
// tokenFields. On failure it returns an empty token and the reason.
func parseToken(body []byte) (string, string) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(&v); err != nil {
		return "", "malformed sign-in response"
	}

	var raw any = v
	if obj, ok := v.(map[string]any); ok {
		raw = nil
		for _, f := range tokenFields {
			if val, ok := obj[f]; ok {
				raw = val
				break
			}
		}
		if raw == nil {
			return "", "no token in sign-in response"
		}
	}

	s, ok := raw.(string)
	if !ok {
		return "", "token is not a string"
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "token is empty"
	}
	return s, ""
}
