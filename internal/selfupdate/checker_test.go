package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/rmehra/retain/releases/latest", r.URL.Path)
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/release"}`, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	c := NewChecker(WithBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
	assert.Equal(t, "v1.2.0", res.LatestVersion)
	assert.Equal(t, "https://example.com/release", res.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	c := NewChecker(WithBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, res.UpdateAvailable)
}

func TestCheck_BareVersionNormalized(t *testing.T) {
	srv := releaseServer(t, "1.3.0")
	c := NewChecker(WithBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "1.2.9"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
}

func TestCheck_DevBuildAlwaysOffersUpdate(t *testing.T) {
	srv := releaseServer(t, "v0.5.0")
	c := NewChecker(WithBaseURL(srv.URL))

	res, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.NoError(t, err)
	assert.True(t, res.UpdateAvailable)
}

func TestCheck_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := NewChecker(WithBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
