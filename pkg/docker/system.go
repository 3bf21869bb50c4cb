package docker

import (
	"context"
	"net/http"
)

// System endpoints return payloads whose upstream shape is treated as
// canonical: they pass through as decoded JSON without field renaming.

// SystemInfo returns the engine's system information.
func (c *Client) SystemInfo(ctx context.Context) (map[string]any, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/info", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// SystemVersion returns engine version and component details.
func (c *Client) SystemVersion(ctx context.Context) (map[string]any, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/version", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks engine reachability; the reply is the literal "OK" text.
func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/_ping", nil, nil, nil)
	if err != nil {
		return "", err
	}
	return resp.text, nil
}

// DiskUsage returns the engine's data usage report.
func (c *Client) DiskUsage(ctx context.Context) (map[string]any, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/system/df", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthCheck validates registry credentials against the engine's auth
// endpoint.
func (c *Client) AuthCheck(ctx context.Context, username, password, serverAddress string) (map[string]any, error) {
	body := map[string]any{
		"username": username,
		"password": password,
	}
	if serverAddress != "" {
		body["serveraddress"] = serverAddress
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/auth", nil, body, nil)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
