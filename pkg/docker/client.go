// Package docker is the dual-backend client for the Docker Engine REST
// API and the Docker Hub v2 API. One Client instance is scoped to a single
// inbound call: it owns that call's credentials and any hub session token
// acquired by Login, and is discarded when the call completes.
package docker

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"

	"docker-mcp/pkg/errdefs"
	"docker-mcp/pkg/tenant"
)

const (
	// DefaultAPIVersion is the engine API version used when the tenant
	// supplies no override.
	DefaultAPIVersion = "v1.41"

	// hubBaseURL is the fixed Docker Hub v2 API root.
	hubBaseURL = "https://hub.docker.com/v2"
)

// Filters is the engine's filter mapping: filter key to allowed values.
type Filters map[string][]string

// Client talks to both backends on behalf of one tenant for one call.
// The hub session token set by Login lives only as long as this instance.
type Client struct {
	creds      tenant.Credentials
	apiVersion string
	hubURL     string
	hubToken   string

	engineHTTP *http.Client
	hubHTTP    *http.Client
	logger     *slog.Logger
}

// NewClient builds a per-call client from resolved credentials. The HTTP
// transports are private to the instance so connection state is never
// shared across tenants.
func NewClient(creds tenant.Credentials, logger *slog.Logger) *Client {
	apiVersion := creds.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		creds:      creds,
		apiVersion: apiVersion,
		hubURL:     hubBaseURL,
		engineHTTP: cleanhttp.DefaultPooledClient(),
		hubHTTP:    cleanhttp.DefaultPooledClient(),
		logger:     logger.With("component", "docker-client"),
	}
}

// HasEngine reports whether this client can reach the engine backend.
func (c *Client) HasEngine() bool { return c.creds.HasEngine() }

// HasHub reports whether this client can reach the hub backend.
func (c *Client) HasHub() bool { return c.creds.HasHub() }

// response is a decoded upstream reply. Exactly one of jsonBody/text is
// meaningful: 204 yields neither, a JSON content type fills jsonBody, and
// anything else is kept as raw text (logs, ping, pull progress).
type response struct {
	status   int
	jsonBody []byte
	text     string
}

// decode unmarshals the JSON body into v. A no-content response leaves v
// untouched.
func (r *response) decode(v any) error {
	if len(r.jsonBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.jsonBody, v); err != nil {
		return errors.Wrap(err, "decoding backend response")
	}
	return nil
}

// engineDo issues one engine API call and normalizes the outcome. Paths
// are relative to <engineURL>/<apiVersion>.
func (c *Client) engineDo(ctx context.Context, method, path string, query url.Values, body any, headers http.Header) (*response, error) {
	target := c.creds.EngineURL + "/" + c.apiVersion + path
	return c.do(ctx, c.engineHTTP, method, target, query, body, headers, backendEngine)
}

// hubDo issues one Docker Hub call. When authRequired is set and no token
// is available (neither a session token from Login nor a static tenant
// token), it fails before any HTTP exchange is attempted.
func (c *Client) hubDo(ctx context.Context, method, path string, query url.Values, body any, authRequired bool) (*response, error) {
	token := c.hubToken
	if token == "" {
		token = c.creds.HubToken
	}
	if authRequired && token == "" {
		return nil, errdefs.Authentication("hub operation requires authentication: run docker_hub_login or supply DOCKER_HUB_TOKEN")
	}

	headers := http.Header{}
	if token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	return c.do(ctx, c.hubHTTP, method, c.hubURL+path, query, body, headers, backendHub)
}

type backendKind int

const (
	backendEngine backendKind = iota
	backendHub
)

// do performs the single HTTP exchange shared by both backends: encode
// the body, send, read the full reply, and translate failures through the
// error taxonomy. No retries, no streaming.
func (c *Client) do(ctx context.Context, httpClient *http.Client, method, target string, query url.Values, body any, headers http.Header, kind backendKind) (*response, error) {
	if len(query) > 0 {
		target = target + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, vals := range headers {
		for _, val := range vals {
			req.Header.Add(key, val)
		}
	}

	c.logger.Debug("backend request", "method", method, "url", target)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errdefs.Connection(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errdefs.Connection(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if kind == backendHub {
			return nil, errdefs.FromHubStatus(resp.StatusCode, raw, resp.Header.Get("Retry-After"))
		}
		return nil, errdefs.FromEngineStatus(resp.StatusCode, raw)
	}

	out := &response{status: resp.StatusCode}
	if resp.StatusCode == http.StatusNoContent {
		return out, nil
	}
	if isJSON(resp.Header.Get("Content-Type")) {
		out.jsonBody = raw
	} else {
		out.text = string(raw)
	}
	return out, nil
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

// addFilters JSON-serializes a filter mapping into the engine's `filters`
// query parameter. Centralized so every listing encodes filters the same
// way.
func addFilters(query url.Values, filters Filters) error {
	if len(filters) == 0 {
		return nil
	}
	encoded, err := json.Marshal(filters)
	if err != nil {
		return errors.Wrap(err, "encoding filters")
	}
	query.Set("filters", string(encoded))
	return nil
}

// registryAuthHeader builds the X-Registry-Auth value from tenant registry
// credentials, or "" when the caller supplied none. The header is only
// ever attached per-operation, never implicitly reused.
func (c *Client) registryAuthHeader() string {
	if !c.creds.HasRegistryAuth() {
		return ""
	}
	auth := struct {
		Username      string `json:"username"`
		Password      string `json:"password"`
		ServerAddress string `json:"serveraddress,omitempty"`
	}{
		Username:      c.creds.RegistryUsername,
		Password:      c.creds.RegistryPassword,
		ServerAddress: c.creds.RegistryURL,
	}
	payload, err := json.Marshal(auth)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(payload)
}

// withRegistryAuth returns headers carrying X-Registry-Auth when registry
// credentials exist, or nil headers otherwise.
func (c *Client) withRegistryAuth() http.Header {
	encoded := c.registryAuthHeader()
	if encoded == "" {
		return nil
	}
	headers := http.Header{}
	headers.Set("X-Registry-Auth", encoded)
	return headers
}
