package docker

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strconv"
)

// Secrets and configs share the engine's wire shape; payloads are
// base64-encoded on the way in.

// ListSecrets returns swarm secrets (metadata only).
func (c *Client) ListSecrets(ctx context.Context, filters Filters) ([]Secret, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/secrets", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []secretWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Secret, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapSecret(w))
	}
	return out, nil
}

// InspectSecret returns one secret.
func (c *Client) InspectSecret(ctx context.Context, id string) (Secret, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/secrets/"+id, nil, nil, nil)
	if err != nil {
		return Secret{}, err
	}
	var wire secretWire
	if err := resp.decode(&wire); err != nil {
		return Secret{}, err
	}
	return mapSecret(wire), nil
}

// CreateSecret creates a secret from plaintext data.
func (c *Client) CreateSecret(ctx context.Context, name, data string, labels map[string]string) (CreatedResource, error) {
	body := map[string]any{
		"Name": name,
		"Data": base64.StdEncoding.EncodeToString([]byte(data)),
	}
	if len(labels) > 0 {
		body["Labels"] = labels
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/secrets/create", nil, body, nil)
	if err != nil {
		return CreatedResource{}, err
	}
	var wire idWire
	if err := resp.decode(&wire); err != nil {
		return CreatedResource{}, err
	}
	return CreatedResource{ID: wire.ID, Warnings: []string{}}, nil
}

// RemoveSecret deletes a secret.
func (c *Client) RemoveSecret(ctx context.Context, id string) error {
	_, err := c.engineDo(ctx, http.MethodDelete, "/secrets/"+id, nil, nil, nil)
	return err
}

// UpdateSecret updates secret labels at the given version. The engine
// only allows label changes here.
func (c *Client) UpdateSecret(ctx context.Context, id string, version uint64, name string, labels map[string]string) error {
	q := url.Values{}
	q.Set("version", strconv.FormatUint(version, 10))
	body := map[string]any{"Name": name, "Labels": labels}
	_, err := c.engineDo(ctx, http.MethodPost, "/secrets/"+id+"/update", q, body, nil)
	return err
}

// ListConfigs returns swarm configs.
func (c *Client) ListConfigs(ctx context.Context, filters Filters) ([]Config, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/configs", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []secretWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Config, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapConfig(w))
	}
	return out, nil
}

// InspectConfig returns one config, including its base64 payload.
func (c *Client) InspectConfig(ctx context.Context, id string) (Config, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/configs/"+id, nil, nil, nil)
	if err != nil {
		return Config{}, err
	}
	var wire secretWire
	if err := resp.decode(&wire); err != nil {
		return Config{}, err
	}
	return mapConfig(wire), nil
}

// CreateConfig creates a config from plaintext data.
func (c *Client) CreateConfig(ctx context.Context, name, data string, labels map[string]string) (CreatedResource, error) {
	body := map[string]any{
		"Name": name,
		"Data": base64.StdEncoding.EncodeToString([]byte(data)),
	}
	if len(labels) > 0 {
		body["Labels"] = labels
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/configs/create", nil, body, nil)
	if err != nil {
		return CreatedResource{}, err
	}
	var wire idWire
	if err := resp.decode(&wire); err != nil {
		return CreatedResource{}, err
	}
	return CreatedResource{ID: wire.ID, Warnings: []string{}}, nil
}

// RemoveConfig deletes a config.
func (c *Client) RemoveConfig(ctx context.Context, id string) error {
	_, err := c.engineDo(ctx, http.MethodDelete, "/configs/"+id, nil, nil, nil)
	return err
}

// UpdateConfig updates config labels at the given version.
func (c *Client) UpdateConfig(ctx context.Context, id string, version uint64, name string, labels map[string]string) error {
	q := url.Values{}
	q.Set("version", strconv.FormatUint(version, 10))
	body := map[string]any{"Name": name, "Labels": labels}
	_, err := c.engineDo(ctx, http.MethodPost, "/configs/"+id+"/update", q, body, nil)
	return err
}
