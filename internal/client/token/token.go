// Package token inspects platform-issued bearer tokens without verifying
// their signature. The client never holds the signing key, so the payload
// is only structurally decoded to answer identity and expiry questions.
//
// Inspection is a predicate used in control flow: every function here fails
// soft on malformed input and never panics.
package token

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
	"github.com/dmitrijs2005/xpboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Payload holds the decoded claims. It is derived fresh from the token on
// every use and never cached.
type Payload = jwt.MapClaims

const (
	hasuraClaimsKey = "https://hasura.io/jwt/claims"
	hasuraUserID    = "x-hasura-user-id"
	hasuraUserLogin = "x-hasura-user-login"
)

// Decode returns the payload segment of tok as claims. ok is false when tok
// does not have exactly three dot-separated segments, or when the middle
// segment is not base64url-encoded JSON object.
func Decode(tok string) (Payload, bool) {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return nil, false
	}

	raw, err := decodeSegment(parts[1])
	if err != nil {
		return nil, false
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil || p == nil {
		return nil, false
	}
	return p, true
}

// decodeSegment maps the base64url alphabet onto the standard one and
// restores "=" padding before decoding.
func decodeSegment(seg string) ([]byte, error) {
	s := strings.NewReplacer("-", "+", "_", "/").Replace(strings.TrimRight(seg, "="))
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}
	return base64.StdEncoding.DecodeString(s)
}

// Expiry returns the exp claim. ok is false when it is absent or not numeric.
func Expiry(p Payload) (time.Time, bool) {
	exp, err := p.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsValid reports whether tok decodes, carries an expiry, and that expiry
// lies strictly after now.
func IsValid(tok string, now time.Time) bool {
	p, ok := Decode(tok)
	if !ok {
		return false
	}
	exp, ok := Expiry(p)
	if !ok {
		return false
	}
	return exp.After(now)
}

// SubjectID resolves the identifying claim. A numeric subject (number or
// numeric string) identifies by id; a non-numeric subject or a login claim
// identifies by login. Hasura-style nested claims are consulted as well.
func SubjectID(p Payload) (models.Identity, error) {
	if id, login, ok := identityFrom(p["sub"]); ok {
		if login != "" {
			return models.ByLogin(login), nil
		}
		return models.ByID(id), nil
	}

	if nested, ok := p[hasuraClaimsKey].(map[string]any); ok {
		if id, login, ok := identityFrom(nested[hasuraUserID]); ok && login == "" {
			return models.ByID(id), nil
		}
		if login, ok := nested[hasuraUserLogin].(string); ok && strings.TrimSpace(login) != "" {
			return models.ByLogin(strings.TrimSpace(login)), nil
		}
	}

	if login, ok := p["login"].(string); ok && strings.TrimSpace(login) != "" {
		return models.ByLogin(strings.TrimSpace(login)), nil
	}

	return models.Identity{}, common.ErrIdentityUnavailable
}

// identityFrom interprets a claim value as a numeric id, or failing that as
// a login string.
func identityFrom(v any) (id int64, login string, ok bool) {
	switch value := v.(type) {
	case float64:
		if value != math.Trunc(value) || math.IsInf(value, 0) {
			return 0, "", false
		}
		return int64(value), "", true
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, "", false
		}
		return n, "", true
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return 0, "", false
		}
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, "", true
		}
		return 0, s, true
	default:
		return 0, "", false
	}
}

// Encode builds an unsigned token (alg "none", empty signature) carrying p.
// It exists for fakes and tests that need a structurally valid token.
func Encode(p Payload) (string, error) {
	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(body) + ".", nil
}
