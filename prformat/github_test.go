package prformat

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v52/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePullRequestRef(t *testing.T) {
	tests := []struct {
		in      string
		want    PullRequestRef
		wantErr bool
	}{
		{in: "akerl/prformat#12", want: PullRequestRef{Owner: "akerl", Repo: "prformat", Number: 12}},
		{in: "some-org/repo.go#1", want: PullRequestRef{Owner: "some-org", Repo: "repo.go", Number: 1}},
		{in: "akerl/prformat", wantErr: true},
		{in: "akerl#12", wantErr: true},
		{in: "https://github.com/akerl/prformat/pull/12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePullRequestRef(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func newTestPullRequestSource(t *testing.T, handler http.Handler) PullRequestSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := github.NewClient(nil)
	u, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = u

	return PullRequestSource{
		Client: client,
		Ref:    PullRequestRef{Owner: "akerl", Repo: "prformat", Number: 7},
	}
}

func TestPullRequestSourceBody(t *testing.T) {
	s := newTestPullRequestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/repos/akerl/prformat/pulls/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"number": 7,
			"body":   "Fixes #1\r\n\r\nCo-authored-by: A <a@x.com>",
		})
	}))

	body, err := s.Body()
	require.NoError(t, err)
	assert.Equal(t, "Fixes #1\r\n\r\nCo-authored-by: A <a@x.com>", body)
}

func TestPullRequestSourceUpdate(t *testing.T) {
	var got map[string]interface{}
	s := newTestPullRequestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/repos/akerl/prformat/pulls/7", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"number": 7})
	}))

	require.NoError(t, s.Update("formatted"))
	assert.Equal(t, "formatted", got["body"])
}

func TestPullRequestSourceError(t *testing.T) {
	s := newTestPullRequestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))

	_, err := s.Body()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "akerl/prformat#7")
}

func TestNewPullRequestSourceRequiresApp(t *testing.T) {
	_, err := NewPullRequestSource(DefaultConfig(), PullRequestRef{Owner: "a", Repo: "b", Number: 1})
	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))

	c := DefaultConfig()
	c.IntegrationID = 1
	c.InstallationID = 2
	c.PrivateKeyFile = "/nonexistent/key.pem"
	_, err = NewPullRequestSource(c, PullRequestRef{Owner: "a", Repo: "b", Number: 1})
	assert.Error(t, err)
}
