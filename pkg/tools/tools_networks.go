package tools

import (
	"context"
	"fmt"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

func networkToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_list_networks",
			Description: "List networks known to the engine",
			Backend:     BackendEngine,
			Params: []Param{
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				networks, err := c.ListNetworks(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: networks, Items: networks, Kind: render.KindNetworks}, nil
			},
		},
		{
			Name:        "docker_inspect_network",
			Description: "Show full details for one network",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Network id or name", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				network, err := c.InspectNetwork(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: network}, nil
			},
		},
		{
			Name:        "docker_create_network",
			Description: "Create a network",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Network name", Required: true},
				{Name: "driver", Type: "string", Description: "Network driver", Default: "bridge"},
				{Name: "internal", Type: "boolean", Description: "Restrict external access", Default: false},
				{Name: "attachable", Type: "boolean", Description: "Allow manual container attachment", Default: false},
				{Name: "enable_ipv6", Type: "boolean", Description: "Enable IPv6", Default: false},
				{Name: "subnet", Type: "string", Description: "Subnet in CIDR form"},
				{Name: "gateway", Type: "string", Description: "Gateway address"},
				{Name: "ip_range", Type: "string", Description: "Address allocation range in CIDR form"},
				{Name: "options", Type: "object", Description: "Driver options"},
				{Name: "labels", Type: "object", Description: "Labels to apply"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				created, err := c.CreateNetwork(ctx, docker.NetworkCreateOptions{
					Name:       a.String("name", ""),
					Driver:     a.String("driver", ""),
					Internal:   a.Bool("internal", false),
					Attachable: a.Bool("attachable", false),
					EnableIPv6: a.Bool("enable_ipv6", false),
					Subnet:     a.String("subnet", ""),
					Gateway:    a.String("gateway", ""),
					IPRange:    a.String("ip_range", ""),
					Options:    a.StringMap("options"),
					Labels:     a.StringMap("labels"),
				})
				if err != nil {
					return Result{}, err
				}
				return Result{Value: created}, nil
			},
		},
		{
			Name:        "docker_remove_network",
			Description: "Remove a network",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Network id or name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.RemoveNetwork(ctx, id); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Network %s removed", id)}, nil
			},
		},
		{
			Name:        "docker_connect_network",
			Description: "Connect a container to a network",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "network", Type: "string", Description: "Network id or name", Required: true},
				{Name: "container", Type: "string", Description: "Container id or name", Required: true},
				{Name: "aliases", Type: "array", Description: "Network-scoped aliases for the container"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				network := a.String("network", "")
				container := a.String("container", "")
				if err := c.ConnectNetwork(ctx, network, container, a.Strings("aliases")); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s connected to network %s", container, network)}, nil
			},
		},
		{
			Name:        "docker_disconnect_network",
			Description: "Disconnect a container from a network",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "network", Type: "string", Description: "Network id or name", Required: true},
				{Name: "container", Type: "string", Description: "Container id or name", Required: true},
				{Name: "force", Type: "boolean", Description: "Force the disconnect", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				network := a.String("network", "")
				container := a.String("container", "")
				if err := c.DisconnectNetwork(ctx, network, container, a.Bool("force", false)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s disconnected from network %s", container, network)}, nil
			},
		},
		{
			Name:        "docker_prune_networks",
			Description: "Delete unused networks",
			Backend:     BackendEngine,
			Params:      []Param{filtersParam()},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				report, err := c.PruneNetworks(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: report}, nil
			},
		},
	}
}
