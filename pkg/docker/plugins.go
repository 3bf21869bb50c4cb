package docker

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListPlugins returns installed plugins.
func (c *Client) ListPlugins(ctx context.Context, filters Filters) ([]Plugin, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/plugins", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []pluginWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Plugin, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapPlugin(w))
	}
	return out, nil
}

// InspectPlugin returns one plugin.
func (c *Client) InspectPlugin(ctx context.Context, name string) (Plugin, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/plugins/"+name+"/json", nil, nil, nil)
	if err != nil {
		return Plugin{}, err
	}
	var wire pluginWire
	if err := resp.decode(&wire); err != nil {
		return Plugin{}, err
	}
	return mapPlugin(wire), nil
}

// PluginPrivileges lists the privileges a remote plugin requests.
func (c *Client) PluginPrivileges(ctx context.Context, remote string) ([]PluginPrivilege, error) {
	q := url.Values{}
	q.Set("remote", remote)
	resp, err := c.engineDo(ctx, http.MethodGet, "/plugins/privileges", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []pluginPrivilegeWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	return mapPluginPrivileges(wire), nil
}

// InstallPlugin pulls a plugin, granting the supplied privileges. The
// grant body is the privilege list the caller accepted; X-Registry-Auth
// is attached when registry credentials exist.
func (c *Client) InstallPlugin(ctx context.Context, remote, name string, privileges []PluginPrivilege) (string, error) {
	q := url.Values{}
	q.Set("remote", remote)
	if name != "" {
		q.Set("name", name)
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/plugins/pull", q, privilegeGrantBody(privileges), c.withRegistryAuth())
	if err != nil {
		return "", err
	}
	return rawOrJSONText(resp), nil
}

// EnablePlugin enables an installed plugin.
func (c *Client) EnablePlugin(ctx context.Context, name string, timeoutSeconds int) error {
	q := url.Values{}
	if timeoutSeconds > 0 {
		q.Set("timeout", strconv.Itoa(timeoutSeconds))
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/plugins/"+name+"/enable", q, nil, nil)
	return err
}

// DisablePlugin disables a plugin.
func (c *Client) DisablePlugin(ctx context.Context, name string, force bool) error {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/plugins/"+name+"/disable", q, nil, nil)
	return err
}

// RemovePlugin uninstalls a plugin.
func (c *Client) RemovePlugin(ctx context.Context, name string, force bool) error {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	_, err := c.engineDo(ctx, http.MethodDelete, "/plugins/"+name, q, nil, nil)
	return err
}

// SetPlugin changes plugin settings; args are "KEY=VALUE" strings.
func (c *Client) SetPlugin(ctx context.Context, name string, args []string) error {
	_, err := c.engineDo(ctx, http.MethodPost, "/plugins/"+name+"/set", nil, args, nil)
	return err
}

// UpgradePlugin upgrades a plugin from its remote reference.
func (c *Client) UpgradePlugin(ctx context.Context, name, remote string, privileges []PluginPrivilege) (string, error) {
	q := url.Values{}
	q.Set("remote", remote)
	resp, err := c.engineDo(ctx, http.MethodPost, "/plugins/"+name+"/upgrade", q, privilegeGrantBody(privileges), c.withRegistryAuth())
	if err != nil {
		return "", err
	}
	return rawOrJSONText(resp), nil
}

// PushPlugin pushes a plugin to its registry.
func (c *Client) PushPlugin(ctx context.Context, name string) (string, error) {
	resp, err := c.engineDo(ctx, http.MethodPost, "/plugins/"+name+"/push", nil, nil, c.withRegistryAuth())
	if err != nil {
		return "", err
	}
	return rawOrJSONText(resp), nil
}

// privilegeGrantBody re-encodes accepted privileges in the engine's wire
// casing for the grant body.
func privilegeGrantBody(privileges []PluginPrivilege) []map[string]any {
	body := make([]map[string]any, 0, len(privileges))
	for _, p := range privileges {
		body = append(body, map[string]any{
			"Name":        p.Name,
			"Description": p.Description,
			"Value":       p.Value,
		})
	}
	return body
}
