package docker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docker-mcp/pkg/errdefs"
	"docker-mcp/pkg/tenant"
)

func engineClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(tenant.Credentials{EngineURL: srv.URL}, nil)
}

func TestListContainersRequestShape(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	calls := 0
	client := engineClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"Id":"aaa111","Names":["/web"],"Image":"nginx:latest","State":"running","Status":"Up 2 hours","Ports":[{"PrivatePort":80,"PublicPort":8080,"Type":"tcp"}]},
			{"Id":"bbb222","Names":["/db"],"Image":"postgres:16","State":"exited","Status":"Exited (0)"}
		]`))
	})

	containers, err := client.ListContainers(context.Background(), false, 0, false, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/"+DefaultAPIVersion+"/containers/json", gotPath)
	assert.Equal(t, "all=false", gotQuery)

	require.Len(t, containers, 2)
	assert.Equal(t, "aaa111", containers[0].ID)
	// Names keep their upstream leading slash at this layer.
	assert.Equal(t, []string{"/web"}, containers[0].Names)
	assert.Equal(t, "nginx:latest", containers[0].Image)
	assert.Equal(t, "running", containers[0].State)
	require.Len(t, containers[0].Ports, 1)
	assert.Equal(t, 80, containers[0].Ports[0].PrivatePort)
	assert.Equal(t, 8080, containers[0].Ports[0].PublicPort)
	// Absent optional fields become empty, never null.
	assert.NotNil(t, containers[1].Ports)
	assert.Empty(t, containers[1].Ports)
	assert.NotNil(t, containers[1].Labels)
}

func TestListContainersFiltersEncoding(t *testing.T) {
	var gotFilters string
	client := engineClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotFilters = r.URL.Query().Get("filters")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := client.ListContainers(context.Background(), true, 0, false, Filters{"status": {"running"}})
	require.NoError(t, err)

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal([]byte(gotFilters), &decoded))
	assert.Equal(t, map[string][]string{"status": {"running"}}, decoded)
}

func TestPullImageRegistryAuthHeader(t *testing.T) {
	var gotAuth string
	var gotQuery url.Values
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("X-Registry-Auth")
		gotQuery = r.URL.Query()
		w.Write([]byte("Pulling from library/nginx"))
	}

	srv := httptest.NewServer(http.HandlerFunc(handler))
	defer srv.Close()

	withCreds := NewClient(tenant.Credentials{
		EngineURL:        srv.URL,
		RegistryUsername: "bot",
		RegistryPassword: "pw",
		RegistryURL:      "registry.example.com",
	}, nil)

	out, err := withCreds.PullImage(context.Background(), "nginx", "latest")
	require.NoError(t, err)
	assert.Equal(t, "Pulling from library/nginx", out)
	assert.Equal(t, "nginx", gotQuery.Get("fromImage"))
	assert.Equal(t, "latest", gotQuery.Get("tag"))

	payload, err := base64.URLEncoding.DecodeString(gotAuth)
	require.NoError(t, err)
	var auth map[string]string
	require.NoError(t, json.Unmarshal(payload, &auth))
	assert.Equal(t, "bot", auth["username"])
	assert.Equal(t, "pw", auth["password"])
	assert.Equal(t, "registry.example.com", auth["serveraddress"])

	// Without credentials the header is omitted entirely.
	gotAuth = "unset"
	withoutCreds := NewClient(tenant.Credentials{EngineURL: srv.URL}, nil)
	_, err = withoutCreds.PullImage(context.Background(), "nginx", "latest")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestEngineErrorMapping(t *testing.T) {
	client := engineClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No such container: nope"}`))
	})

	_, err := client.InspectContainer(context.Background(), "nope", false)
	require.Error(t, err)
	be, ok := errdefs.As(err)
	require.True(t, ok)
	assert.Equal(t, errdefs.CodeNotFound, be.Code)
	assert.Equal(t, 404, be.Status)
	assert.Contains(t, be.Message, "No such container")
}

func TestEngine429IsGenericBackendError(t *testing.T) {
	client := engineClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Ping(context.Background())
	require.Error(t, err)
	be, ok := errdefs.As(err)
	require.True(t, ok)
	assert.Equal(t, errdefs.CodeBackend, be.Code)
	assert.False(t, be.Retryable)
	assert.Zero(t, be.RetryAfterSeconds)
}

func TestConnectionFailureIsNormalized(t *testing.T) {
	client := NewClient(tenant.Credentials{EngineURL: "http://127.0.0.1:1"}, nil)

	_, err := client.Ping(context.Background())
	require.Error(t, err)
	be, ok := errdefs.As(err)
	require.True(t, ok)
	assert.Equal(t, errdefs.CodeUnavailable, be.Code)
	assert.True(t, be.Retryable)
}

func TestNoContentYieldsVoidResult(t *testing.T) {
	client := engineClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.StartContainer(context.Background(), "abc"))
}

func TestAPIVersionOverride(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client := NewClient(tenant.Credentials{EngineURL: srv.URL, APIVersion: "v1.45"}, nil)
	out, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", out)
	assert.Equal(t, "/v1.45/_ping", gotPath)
}

func TestContainerLogsRawText(t *testing.T) {
	client := engineClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("stdout"))
		assert.Equal(t, "100", r.URL.Query().Get("tail"))
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("line1\nline2\n"))
	})

	logs, err := client.ContainerLogs(context.Background(), "abc", ContainerLogsOptions{Stdout: true, Stderr: true, Tail: "100"})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", logs)
}

func TestStopContainerForwardsGracePeriod(t *testing.T) {
	var gotT string
	client := engineClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotT = r.URL.Query().Get("t")
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.StopContainer(context.Background(), "abc", 15))
	assert.Equal(t, "15", gotT)
}

func TestCreateServiceSendsRegistryAuth(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("X-Registry-Auth")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ID":"svc1"}`))
	}))
	defer srv.Close()

	client := NewClient(tenant.Credentials{
		EngineURL:        srv.URL,
		RegistryUsername: "bot",
		RegistryPassword: "pw",
	}, nil)

	created, err := client.CreateService(context.Background(), ServiceCreateOptions{Name: "api", Image: "nginx", Replicas: 2})
	require.NoError(t, err)
	assert.Equal(t, "svc1", created.ID)
	assert.NotEmpty(t, gotAuth)
	assert.Equal(t, "api", gotBody["Name"])
}
