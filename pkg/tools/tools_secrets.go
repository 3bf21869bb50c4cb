package tools

import (
	"context"
	"fmt"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

func secretToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_list_secrets",
			Description: "List swarm secrets",
			Backend:     BackendEngine,
			Params: []Param{
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				secrets, err := c.ListSecrets(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: secrets, Items: secrets, Kind: render.KindSecrets}, nil
			},
		},
		{
			Name:        "docker_inspect_secret",
			Description: "Show metadata for one secret",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Secret id", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				secret, err := c.InspectSecret(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: secret}, nil
			},
		},
		{
			Name:        "docker_create_secret",
			Description: "Create a swarm secret",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Secret name", Required: true},
				{Name: "data", Type: "string", Description: "Secret payload", Required: true},
				{Name: "labels", Type: "object", Description: "Labels to apply"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				created, err := c.CreateSecret(ctx, a.String("name", ""), a.String("data", ""), a.StringMap("labels"))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: created}, nil
			},
		},
		{
			Name:        "docker_remove_secret",
			Description: "Remove a secret",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Secret id", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.RemoveSecret(ctx, id); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Secret %s removed", id)}, nil
			},
		},
		{
			Name:        "docker_update_secret",
			Description: "Update a secret's labels at a known version",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Secret id", Required: true},
				{Name: "version", Type: "integer", Description: "Current secret spec version", Required: true},
				{Name: "name", Type: "string", Description: "Secret name", Required: true},
				{Name: "labels", Type: "object", Description: "Replacement labels"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				err := c.UpdateSecret(ctx, id, a.Uint64("version"), a.String("name", ""), a.StringMap("labels"))
				if err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Secret %s updated", id)}, nil
			},
		},
		{
			Name:        "docker_list_configs",
			Description: "List swarm configs",
			Backend:     BackendEngine,
			Params: []Param{
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				configs, err := c.ListConfigs(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: configs, Items: configs, Kind: render.KindConfigs}, nil
			},
		},
		{
			Name:        "docker_inspect_config",
			Description: "Show one config including its payload",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Config id", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				config, err := c.InspectConfig(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: config}, nil
			},
		},
		{
			Name:        "docker_create_config",
			Description: "Create a swarm config",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Config name", Required: true},
				{Name: "data", Type: "string", Description: "Config payload", Required: true},
				{Name: "labels", Type: "object", Description: "Labels to apply"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				created, err := c.CreateConfig(ctx, a.String("name", ""), a.String("data", ""), a.StringMap("labels"))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: created}, nil
			},
		},
		{
			Name:        "docker_remove_config",
			Description: "Remove a config",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Config id", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.RemoveConfig(ctx, id); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Config %s removed", id)}, nil
			},
		},
		{
			Name:        "docker_update_config",
			Description: "Update a config's labels at a known version",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Config id", Required: true},
				{Name: "version", Type: "integer", Description: "Current config spec version", Required: true},
				{Name: "name", Type: "string", Description: "Config name", Required: true},
				{Name: "labels", Type: "object", Description: "Replacement labels"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				err := c.UpdateConfig(ctx, id, a.Uint64("version"), a.String("name", ""), a.StringMap("labels"))
				if err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Config %s updated", id)}, nil
			},
		},
	}
}
