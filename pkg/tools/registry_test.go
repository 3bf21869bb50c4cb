package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/errdefs"
	"docker-mcp/pkg/tenant"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func findConfig(t *testing.T, name string) ToolConfig {
	t.Helper()
	for _, config := range Configs() {
		if config.Name == name {
			return config
		}
	}
	t.Fatalf("no tool named %s", name)
	return ToolConfig{}
}

func TestConfigsCoverBothBackends(t *testing.T) {
	configs := Configs()
	require.Len(t, configs, 102)

	engine, hub := 0, 0
	seen := map[string]bool{}
	for _, config := range configs {
		require.NotEmpty(t, config.Name)
		require.NotEmpty(t, config.Description)
		require.NotNil(t, config.Run, "tool %s has no run function", config.Name)
		require.False(t, seen[config.Name], "duplicate tool name %s", config.Name)
		seen[config.Name] = true
		switch config.Backend {
		case BackendEngine:
			engine++
		case BackendHub:
			hub++
		default:
			t.Fatalf("tool %s has unknown backend %q", config.Name, config.Backend)
		}
	}
	assert.Equal(t, 88, engine)
	assert.Equal(t, 14, hub)
}

func TestRegistrationGatesOnCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds tenant.Credentials
		want  int
	}{
		{"engine only", tenant.Credentials{EngineURL: "http://127.0.0.1:2375"}, 88},
		{"hub only", tenant.Credentials{HubToken: "tok"}, 14},
		{"both", tenant.Credentials{EngineURL: "http://127.0.0.1:2375", HubToken: "tok"}, 102},
		{"neither", tenant.Credentials{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry(tt.creds, nil)
			count := 0
			for _, config := range Configs() {
				if registry.available(config.Backend) {
					count++
				}
			}
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestBuildToolSchema(t *testing.T) {
	config := ToolConfig{
		Name: "docker_list_containers",
		Params: []Param{
			{Name: "id", Type: "string", Description: "Container id", Required: true},
			{Name: "all", Type: "boolean", Description: "Include stopped", Default: false},
			{Name: "cmd", Type: "array", Description: "Command"},
			{Name: "format", Type: "string", Description: "Shape", Default: "tabular", Enum: []string{"structured", "tabular"}},
		},
	}

	schema := BuildToolSchema(config)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"id"}, schema.Required)

	all, ok := schema.Properties["all"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "boolean", all["type"])
	assert.Equal(t, false, all["default"])

	cmd, ok := schema.Properties["cmd"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", cmd["type"])
	assert.Equal(t, map[string]any{"type": "string"}, cmd["items"])

	format, ok := schema.Properties["format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"structured", "tabular"}, format["enum"])
}

func TestHandlerActionConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1.41/containers/web/start", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	registry := NewRegistry(tenant.Credentials{EngineURL: srv.URL}, nil)
	handler := registry.handler(findConfig(t, "docker_start_container"))

	result, err := handler(context.Background(), callRequest(map[string]any{"id": "web"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "Container web started", resultText(t, result))
}

func TestHandlerStructuredListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Id":"abc","Names":["/web"],"Image":"nginx"}]`))
	}))
	defer srv.Close()

	registry := NewRegistry(tenant.Credentials{EngineURL: srv.URL}, nil)
	handler := registry.handler(findConfig(t, "docker_list_containers"))

	result, err := handler(context.Background(), callRequest(map[string]any{"format": "structured"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var containers []docker.Container
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &containers))
	require.Len(t, containers, 1)
	assert.Equal(t, "abc", containers[0].ID)
}

func TestHandlerTabularListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Id":"abcdef1234567890","Names":["/web"],"Image":"nginx","Status":"Up 2 hours","State":"running"}]`))
	}))
	defer srv.Close()

	registry := NewRegistry(tenant.Credentials{EngineURL: srv.URL}, nil)
	handler := registry.handler(findConfig(t, "docker_list_containers"))

	result, err := handler(context.Background(), callRequest(nil))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, "| ID |")
	assert.Contains(t, text, "abcdef123456")
	assert.Contains(t, text, "web")
	assert.NotContains(t, text, "/web")
}

func TestHandlerFailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No such container: web"}`))
	}))
	defer srv.Close()

	registry := NewRegistry(tenant.Credentials{EngineURL: srv.URL}, nil)
	handler := registry.handler(findConfig(t, "docker_inspect_container"))

	result, err := handler(context.Background(), callRequest(map[string]any{"id": "web"}))
	require.NoError(t, err, "backend failures must not surface as Go errors")
	assert.True(t, result.IsError)

	text := resultText(t, result)
	assert.True(t, strings.HasPrefix(text, "Error: No such container: web"))
	assert.NotContains(t, text, "(retryable)")

	_, detail, found := strings.Cut(text, "\n\n")
	require.True(t, found, "expected a JSON detail block")
	var be errdefs.Backend
	require.NoError(t, json.Unmarshal([]byte(detail), &be))
	assert.Equal(t, errdefs.CodeNotFound, be.Code)
	assert.Equal(t, http.StatusNotFound, be.Status)
	assert.False(t, be.Retryable)
}

func TestHandlerRetryableFailureIsMarked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("engine blew up"))
	}))
	defer srv.Close()

	registry := NewRegistry(tenant.Credentials{EngineURL: srv.URL}, nil)
	handler := registry.handler(findConfig(t, "docker_ping"))

	result, err := handler(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "(retryable)")
}

func TestParseServicePorts(t *testing.T) {
	ports := parseServicePorts([]string{"8080:80", "9000:9000/udp", "garbage", "x:y"})
	require.Len(t, ports, 2)
	assert.Equal(t, docker.ServicePort{TargetPort: 80, PublishedPort: 8080, Protocol: "tcp"}, ports[0])
	assert.Equal(t, docker.ServicePort{TargetPort: 9000, PublishedPort: 9000, Protocol: "udp"}, ports[1])
}
