package docker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docker-mcp/pkg/errdefs"
	"docker-mcp/pkg/tenant"
)

func hubClient(t *testing.T, creds tenant.Credentials, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(creds, nil)
	client.hubURL = srv.URL
	return client
}

func TestHubAuthRequiredPreflight(t *testing.T) {
	calls := 0
	client := hubClient(t, tenant.Credentials{HubUsername: "alice", HubPassword: "pw"}, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	// No prior login and no static token: fails before any HTTP call.
	_, err := client.ListHubRepositories(context.Background(), "alice", 2, 25)
	require.Error(t, err)
	be, ok := errdefs.As(err)
	require.True(t, ok)
	assert.Equal(t, errdefs.CodeAuthentication, be.Code)
	assert.Zero(t, calls)
}

func TestHubPublicEndpointNeedsNoToken(t *testing.T) {
	client := hubClient(t, tenant.Credentials{}, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"namespace":"library","name":"nginx","description":"official","star_count":10000,"pull_count":1000000000}`))
	})

	repo, err := client.GetHubRepository(context.Background(), "library", "nginx")
	require.NoError(t, err)
	assert.Equal(t, "library", repo.Namespace)
	assert.Equal(t, "nginx", repo.Name)
	assert.Equal(t, 10000, repo.StarCount)
}

func TestHubLoginSessionTokenPreferred(t *testing.T) {
	var gotAuth string
	client := hubClient(t, tenant.Credentials{HubToken: "static-token"}, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/users/login" {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "alice", body["username"])
			w.Write([]byte(`{"token":"session-token"}`))
			return
		}
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	})

	require.NoError(t, client.HubLogin(context.Background(), "alice", "pw"))

	_, err := client.ListHubRepositories(context.Background(), "alice", 1, 25)
	require.NoError(t, err)
	// The session token from Login outranks the static tenant token.
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestHubStaticTokenUsedWithoutLogin(t *testing.T) {
	var gotAuth string
	client := hubClient(t, tenant.Credentials{HubToken: "static-token"}, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	})

	_, err := client.ListHubRepositories(context.Background(), "alice", 1, 25)
	require.NoError(t, err)
	assert.Equal(t, "Bearer static-token", gotAuth)
}

func TestHubRateLimitCarriesRetryAfter(t *testing.T) {
	client := hubClient(t, tenant.Credentials{HubToken: "tok"}, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.ListHubRepositories(context.Background(), "alice", 1, 25)
	require.Error(t, err)
	be, ok := errdefs.As(err)
	require.True(t, ok)
	assert.Equal(t, errdefs.CodeRateLimited, be.Code)
	assert.True(t, be.Retryable)
	assert.Equal(t, 30, be.RetryAfterSeconds)
}

func TestHubPaginationCursorSynthesis(t *testing.T) {
	var gotQuery string
	client := hubClient(t, tenant.Credentials{HubToken: "tok"}, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 120,
			"next": "https://hub.docker.com/v2/repositories/alice/?page=3&page_size=25",
			"previous": null,
			"results": [{"namespace":"alice","name":"tool","is_private":true}]
		}`))
	})

	page, err := client.ListHubRepositories(context.Background(), "alice", 2, 25)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "page=2")
	assert.Contains(t, gotQuery, "page_size=25")
	assert.Equal(t, 120, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.True(t, page.HasMore)
	// The cursor is a locally derived page number, never the upstream URL.
	assert.Equal(t, 3, page.NextPage)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].IsPrivate)
}

func TestHubLastPageHasNoCursor(t *testing.T) {
	client := hubClient(t, tenant.Credentials{HubToken: "tok"}, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"name":"v1.0"}]}`))
	})

	page, err := client.ListHubTags(context.Background(), "alice", "tool", 1, 25)
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Zero(t, page.NextPage)
}

func TestHubTagsArePublic(t *testing.T) {
	calls := 0
	client := hubClient(t, tenant.Credentials{}, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	})

	_, err := client.ListHubTags(context.Background(), "library", "nginx", 1, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
