package docker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// Docker Hub v2 operations. Pagination is page-number based: the caller
// asks for a page, the client re-derives a next-page cursor locally, and
// the upstream next-URL never escapes this file.

const defaultHubPageSize = 25

// hubPageQuery builds the flat page/page_size parameters of the hub
// convention, normalizing out-of-range values.
func hubPageQuery(page, pageSize int) (url.Values, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultHubPageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	return q, page, pageSize
}

// HubLogin exchanges username/password for a JWT and stores it as this
// instance's session token. The session token outranks a static tenant
// token for subsequent calls and dies with the instance.
func (c *Client) HubLogin(ctx context.Context, username, password string) error {
	if username == "" {
		username = c.creds.HubUsername
	}
	if password == "" {
		password = c.creds.HubPassword
	}
	body := map[string]string{"username": username, "password": password}
	resp, err := c.hubDo(ctx, http.MethodPost, "/users/login", nil, body, false)
	if err != nil {
		return err
	}
	var wire hubLoginWire
	if err := resp.decode(&wire); err != nil {
		return err
	}
	c.hubToken = wire.Token
	return nil
}

// ListHubRepositories lists the repositories of a namespace. Requires
// authentication.
func (c *Client) ListHubRepositories(ctx context.Context, namespace string, page, pageSize int) (Page[HubRepository], error) {
	q, page, pageSize := hubPageQuery(page, pageSize)
	resp, err := c.hubDo(ctx, http.MethodGet, "/repositories/"+namespace+"/", q, nil, true)
	if err != nil {
		return Page[HubRepository]{}, err
	}
	var wire hubPageWire[hubRepositoryWire]
	if err := resp.decode(&wire); err != nil {
		return Page[HubRepository]{}, err
	}
	return mapHubPage(wire, page, pageSize, mapHubRepository), nil
}

// GetHubRepository fetches one repository. Public repositories need no
// token.
func (c *Client) GetHubRepository(ctx context.Context, namespace, name string) (HubRepository, error) {
	resp, err := c.hubDo(ctx, http.MethodGet, "/repositories/"+namespace+"/"+name+"/", nil, nil, false)
	if err != nil {
		return HubRepository{}, err
	}
	var wire hubRepositoryWire
	if err := resp.decode(&wire); err != nil {
		return HubRepository{}, err
	}
	return mapHubRepository(wire), nil
}

// CreateHubRepository creates a repository. Requires authentication.
func (c *Client) CreateHubRepository(ctx context.Context, namespace, name, description string, private bool) (HubRepository, error) {
	body := map[string]any{
		"namespace":  namespace,
		"name":       name,
		"is_private": private,
	}
	if description != "" {
		body["description"] = description
	}
	resp, err := c.hubDo(ctx, http.MethodPost, "/repositories/", nil, body, true)
	if err != nil {
		return HubRepository{}, err
	}
	var wire hubRepositoryWire
	if err := resp.decode(&wire); err != nil {
		return HubRepository{}, err
	}
	return mapHubRepository(wire), nil
}

// UpdateHubRepository patches a repository's description or visibility.
// Requires authentication.
func (c *Client) UpdateHubRepository(ctx context.Context, namespace, name, description string, private *bool) (HubRepository, error) {
	body := map[string]any{}
	if description != "" {
		body["description"] = description
	}
	if private != nil {
		body["is_private"] = *private
	}
	resp, err := c.hubDo(ctx, http.MethodPatch, "/repositories/"+namespace+"/"+name+"/", nil, body, true)
	if err != nil {
		return HubRepository{}, err
	}
	var wire hubRepositoryWire
	if err := resp.decode(&wire); err != nil {
		return HubRepository{}, err
	}
	return mapHubRepository(wire), nil
}

// DeleteHubRepository deletes a repository. Requires authentication.
func (c *Client) DeleteHubRepository(ctx context.Context, namespace, name string) error {
	_, err := c.hubDo(ctx, http.MethodDelete, "/repositories/"+namespace+"/"+name+"/", nil, nil, true)
	return err
}

// ListHubTags lists the tags of a repository. Public repositories need no
// token.
func (c *Client) ListHubTags(ctx context.Context, namespace, name string, page, pageSize int) (Page[HubTag], error) {
	q, page, pageSize := hubPageQuery(page, pageSize)
	resp, err := c.hubDo(ctx, http.MethodGet, "/repositories/"+namespace+"/"+name+"/tags", q, nil, false)
	if err != nil {
		return Page[HubTag]{}, err
	}
	var wire hubPageWire[hubTagWire]
	if err := resp.decode(&wire); err != nil {
		return Page[HubTag]{}, err
	}
	return mapHubPage(wire, page, pageSize, mapHubTag), nil
}

// GetHubTag fetches one tag.
func (c *Client) GetHubTag(ctx context.Context, namespace, name, tag string) (HubTag, error) {
	resp, err := c.hubDo(ctx, http.MethodGet, "/repositories/"+namespace+"/"+name+"/tags/"+tag, nil, nil, false)
	if err != nil {
		return HubTag{}, err
	}
	var wire hubTagWire
	if err := resp.decode(&wire); err != nil {
		return HubTag{}, err
	}
	return mapHubTag(wire), nil
}

// DeleteHubTag deletes a tag. Requires authentication.
func (c *Client) DeleteHubTag(ctx context.Context, namespace, name, tag string) error {
	_, err := c.hubDo(ctx, http.MethodDelete, "/repositories/"+namespace+"/"+name+"/tags/"+tag+"/", nil, nil, true)
	return err
}

// ListHubWebhooks lists a repository's webhooks. Requires authentication.
func (c *Client) ListHubWebhooks(ctx context.Context, namespace, name string, page, pageSize int) (Page[HubWebhook], error) {
	q, page, pageSize := hubPageQuery(page, pageSize)
	resp, err := c.hubDo(ctx, http.MethodGet, "/repositories/"+namespace+"/"+name+"/webhooks/", q, nil, true)
	if err != nil {
		return Page[HubWebhook]{}, err
	}
	var wire hubPageWire[hubWebhookWire]
	if err := resp.decode(&wire); err != nil {
		return Page[HubWebhook]{}, err
	}
	return mapHubPage(wire, page, pageSize, mapHubWebhook), nil
}

// CreateHubWebhook registers a webhook on a repository. Requires
// authentication.
func (c *Client) CreateHubWebhook(ctx context.Context, namespace, name, webhookName, hookURL string) (HubWebhook, error) {
	body := map[string]any{
		"name": webhookName,
		"webhooks": []map[string]string{
			{"name": webhookName, "hook_url": hookURL},
		},
	}
	resp, err := c.hubDo(ctx, http.MethodPost, "/repositories/"+namespace+"/"+name+"/webhooks/", nil, body, true)
	if err != nil {
		return HubWebhook{}, err
	}
	var wire hubWebhookWire
	if err := resp.decode(&wire); err != nil {
		return HubWebhook{}, err
	}
	hook := mapHubWebhook(wire)
	if hook.Name == "" {
		hook.Name = webhookName
	}
	if hook.HookURL == "" {
		hook.HookURL = hookURL
	}
	return hook, nil
}

// DeleteHubWebhook removes a webhook by slug. Requires authentication.
func (c *Client) DeleteHubWebhook(ctx context.Context, namespace, name, slug string) error {
	_, err := c.hubDo(ctx, http.MethodDelete, "/repositories/"+namespace+"/"+name+"/webhooks/"+slug+"/", nil, nil, true)
	return err
}

// GetHubBuildSettings fetches a repository's automated-build settings.
// Requires authentication.
func (c *Client) GetHubBuildSettings(ctx context.Context, namespace, name string) (HubBuildSettings, error) {
	resp, err := c.hubDo(ctx, http.MethodGet, "/repositories/"+namespace+"/"+name+"/autobuild/", nil, nil, true)
	if err != nil {
		return HubBuildSettings{}, err
	}
	var wire hubBuildSettingsWire
	if err := resp.decode(&wire); err != nil {
		return HubBuildSettings{}, err
	}
	settings := mapHubBuildSettings(wire)
	// Autobuild payloads vary by provider; keep the full decoded body too.
	raw := map[string]any{}
	if err := json.Unmarshal(resp.jsonBody, &raw); err == nil && len(raw) > 0 {
		settings.Raw = raw
	}
	return settings, nil
}

// ListHubBuildHistory lists automated builds for a repository. Requires
// authentication.
func (c *Client) ListHubBuildHistory(ctx context.Context, namespace, name string, page, pageSize int) (Page[HubBuild], error) {
	q, page, pageSize := hubPageQuery(page, pageSize)
	resp, err := c.hubDo(ctx, http.MethodGet, "/repositories/"+namespace+"/"+name+"/buildhistory/", q, nil, true)
	if err != nil {
		return Page[HubBuild]{}, err
	}
	var wire hubPageWire[hubBuildWire]
	if err := resp.decode(&wire); err != nil {
		return Page[HubBuild]{}, err
	}
	return mapHubPage(wire, page, pageSize, mapHubBuild), nil
}
