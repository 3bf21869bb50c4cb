package tools

import (
	"context"

	"docker-mcp/pkg/docker"
)

func systemToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_system_info",
			Description: "Show engine-wide information",
			Backend:     BackendEngine,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				info, err := c.SystemInfo(ctx)
				if err != nil {
					return Result{}, err
				}
				return Result{Value: info}, nil
			},
		},
		{
			Name:        "docker_system_version",
			Description: "Show engine version details",
			Backend:     BackendEngine,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				version, err := c.SystemVersion(ctx)
				if err != nil {
					return Result{}, err
				}
				return Result{Value: version}, nil
			},
		},
		{
			Name:        "docker_ping",
			Description: "Check that the engine is reachable",
			Backend:     BackendEngine,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				reply, err := c.Ping(ctx)
				if err != nil {
					return Result{}, err
				}
				return Result{Message: reply}, nil
			},
		},
		{
			Name:        "docker_disk_usage",
			Description: "Show disk usage by images, containers, and volumes",
			Backend:     BackendEngine,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				usage, err := c.DiskUsage(ctx)
				if err != nil {
					return Result{}, err
				}
				return Result{Value: usage}, nil
			},
		},
		{
			Name:        "docker_auth_check",
			Description: "Validate registry credentials against the engine",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "username", Type: "string", Description: "Registry username", Required: true},
				{Name: "password", Type: "string", Description: "Registry password or token", Required: true},
				{Name: "server_address", Type: "string", Description: "Registry server address"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				status, err := c.AuthCheck(ctx, a.String("username", ""), a.String("password", ""), a.String("server_address", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: status}, nil
			},
		},
	}
}
