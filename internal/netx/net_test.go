package netx

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	t.Run("reads body on success", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`"tok"`))
		}))
		defer ts.Close()

		req, err := http.NewRequest(http.MethodPost, ts.URL, nil)
		require.NoError(t, err)

		resp, err := Do(NewClient(time.Second), req)
		require.NoError(t, err)
		assert.True(t, resp.OK())
		assert.Equal(t, `"tok"`, string(resp.Body))
	})

	t.Run("non-2xx is not an error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer ts.Close()

		req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
		require.NoError(t, err)

		resp, err := Do(NewClient(0), req)
		require.NoError(t, err)
		assert.False(t, resp.OK())
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "nope")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		ts.Close()

		req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
		require.NoError(t, err)

		_, err = Do(NewClient(time.Second), req)
		require.Error(t, err)
		assert.True(t, isNetOpError(err), "want a net error, got %v", err)
	})
}

func TestBasicCredentials(t *testing.T) {
	enc := BasicCredentials("jdoe@example.org", "p:ss")

	raw, err := base64.StdEncoding.DecodeString(enc)
	require.NoError(t, err)
	assert.Equal(t, "jdoe@example.org:p:ss", string(raw))
}

type netOpErrorLike interface {
	error
	Timeout() bool
}

func isNetOpError(err error) bool {
	var target netOpErrorLike
	return errors.As(err, &target)
}
