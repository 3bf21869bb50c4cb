package tools

import (
	"context"
	"fmt"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

func pageInfo[T any](p docker.Page[T]) *render.PageInfo {
	return &render.PageInfo{
		Total:    p.Total,
		Shown:    len(p.Items),
		HasMore:  p.HasMore,
		NextPage: p.NextPage,
	}
}

func hubToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_hub_login",
			Description: "Exchange hub username and password for a session token",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "username", Type: "string", Description: "Hub username", Required: true},
				{Name: "password", Type: "string", Description: "Hub password or access token", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				username := a.String("username", "")
				if err := c.HubLogin(ctx, username, a.String("password", "")); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Logged in to Docker Hub as %s", username)}, nil
			},
		},
		{
			Name:        "docker_hub_list_repositories",
			Description: "List repositories in a hub namespace",
			Backend:     BackendHub,
			Params: append([]Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
			}, append(pageParams(), formatParam(render.FormatTabular))...),
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				page, err := c.ListHubRepositories(ctx, a.String("namespace", ""), a.Int("page", 1), a.Int("page_size", 25))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: page, Items: page.Items, Kind: render.KindHubRepositories, Page: pageInfo(page)}, nil
			},
		},
		{
			Name:        "docker_hub_get_repository",
			Description: "Show one hub repository",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				repo, err := c.GetHubRepository(ctx, a.String("namespace", ""), a.String("name", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: repo}, nil
			},
		},
		{
			Name:        "docker_hub_create_repository",
			Description: "Create a hub repository",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
				{Name: "description", Type: "string", Description: "Short description"},
				{Name: "private", Type: "boolean", Description: "Create as private", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				repo, err := c.CreateHubRepository(ctx, a.String("namespace", ""), a.String("name", ""), a.String("description", ""), a.Bool("private", false))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: repo}, nil
			},
		},
		{
			Name:        "docker_hub_update_repository",
			Description: "Update a hub repository's description or visibility",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
				{Name: "description", Type: "string", Description: "New description"},
				{Name: "private", Type: "boolean", Description: "New visibility; omit to leave unchanged"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				var private *bool
				if _, ok := a["private"]; ok {
					v := a.Bool("private", false)
					private = &v
				}
				repo, err := c.UpdateHubRepository(ctx, a.String("namespace", ""), a.String("name", ""), a.String("description", ""), private)
				if err != nil {
					return Result{}, err
				}
				return Result{Value: repo}, nil
			},
		},
		{
			Name:        "docker_hub_delete_repository",
			Description: "Delete a hub repository and all its tags",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				namespace := a.String("namespace", "")
				name := a.String("name", "")
				if err := c.DeleteHubRepository(ctx, namespace, name); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Repository %s/%s deleted", namespace, name)}, nil
			},
		},
		{
			Name:        "docker_hub_list_tags",
			Description: "List tags of a hub repository",
			Backend:     BackendHub,
			Params: append([]Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
			}, append(pageParams(), formatParam(render.FormatTabular))...),
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				page, err := c.ListHubTags(ctx, a.String("namespace", ""), a.String("name", ""), a.Int("page", 1), a.Int("page_size", 25))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: page, Items: page.Items, Kind: render.KindHubTags, Page: pageInfo(page)}, nil
			},
		},
		{
			Name:        "docker_hub_get_tag",
			Description: "Show one tag of a hub repository",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
				{Name: "tag", Type: "string", Description: "Tag name", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				tag, err := c.GetHubTag(ctx, a.String("namespace", ""), a.String("name", ""), a.String("tag", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: tag}, nil
			},
		},
		{
			Name:        "docker_hub_delete_tag",
			Description: "Delete a tag from a hub repository",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
				{Name: "tag", Type: "string", Description: "Tag name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				namespace := a.String("namespace", "")
				name := a.String("name", "")
				tag := a.String("tag", "")
				if err := c.DeleteHubTag(ctx, namespace, name, tag); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Tag %s/%s:%s deleted", namespace, name, tag)}, nil
			},
		},
		{
			Name:        "docker_hub_list_webhooks",
			Description: "List webhooks of a hub repository",
			Backend:     BackendHub,
			Params: append([]Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
			}, append(pageParams(), formatParam(render.FormatTabular))...),
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				page, err := c.ListHubWebhooks(ctx, a.String("namespace", ""), a.String("name", ""), a.Int("page", 1), a.Int("page_size", 25))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: page, Items: page.Items, Kind: render.KindHubWebhooks, Page: pageInfo(page)}, nil
			},
		},
		{
			Name:        "docker_hub_create_webhook",
			Description: "Create a webhook on a hub repository",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
				{Name: "webhook_name", Type: "string", Description: "Webhook name", Required: true},
				{Name: "url", Type: "string", Description: "Delivery URL", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				webhook, err := c.CreateHubWebhook(ctx, a.String("namespace", ""), a.String("name", ""), a.String("webhook_name", ""), a.String("url", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: webhook}, nil
			},
		},
		{
			Name:        "docker_hub_delete_webhook",
			Description: "Delete a webhook from a hub repository",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
				{Name: "slug", Type: "string", Description: "Webhook slug", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				slug := a.String("slug", "")
				if err := c.DeleteHubWebhook(ctx, a.String("namespace", ""), a.String("name", ""), slug); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Webhook %s deleted", slug)}, nil
			},
		},
		{
			Name:        "docker_hub_build_settings",
			Description: "Show automated build settings of a hub repository",
			Backend:     BackendHub,
			Params: []Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				settings, err := c.GetHubBuildSettings(ctx, a.String("namespace", ""), a.String("name", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: settings}, nil
			},
		},
		{
			Name:        "docker_hub_build_history",
			Description: "List automated build history of a hub repository",
			Backend:     BackendHub,
			Params: append([]Param{
				{Name: "namespace", Type: "string", Description: "User or organization namespace", Required: true},
				{Name: "name", Type: "string", Description: "Repository name", Required: true},
			}, append(pageParams(), formatParam(render.FormatTabular))...),
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				page, err := c.ListHubBuildHistory(ctx, a.String("namespace", ""), a.String("name", ""), a.Int("page", 1), a.Int("page_size", 25))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: page, Items: page.Items, Kind: render.KindHubBuilds, Page: pageInfo(page)}, nil
			},
		},
	}
}
