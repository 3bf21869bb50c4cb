package tools

import (
	"context"
	"fmt"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

func volumeToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_list_volumes",
			Description: "List volumes known to the engine",
			Backend:     BackendEngine,
			Params: []Param{
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				volumes, err := c.ListVolumes(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: volumes, Items: volumes, Kind: render.KindVolumes}, nil
			},
		},
		{
			Name:        "docker_inspect_volume",
			Description: "Show full details for one volume",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Volume name", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				volume, err := c.InspectVolume(ctx, a.String("name", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: volume}, nil
			},
		},
		{
			Name:        "docker_create_volume",
			Description: "Create a volume",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Volume name"},
				{Name: "driver", Type: "string", Description: "Volume driver", Default: "local"},
				{Name: "driver_opts", Type: "object", Description: "Driver options"},
				{Name: "labels", Type: "object", Description: "Labels to apply"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				volume, err := c.CreateVolume(ctx, docker.VolumeCreateOptions{
					Name:       a.String("name", ""),
					Driver:     a.String("driver", ""),
					DriverOpts: a.StringMap("driver_opts"),
					Labels:     a.StringMap("labels"),
				})
				if err != nil {
					return Result{}, err
				}
				return Result{Value: volume}, nil
			},
		},
		{
			Name:        "docker_remove_volume",
			Description: "Remove a volume",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Volume name", Required: true},
				{Name: "force", Type: "boolean", Description: "Force removal", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				if err := c.RemoveVolume(ctx, name, a.Bool("force", false)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Volume %s removed", name)}, nil
			},
		},
		{
			Name:        "docker_prune_volumes",
			Description: "Delete unused volumes",
			Backend:     BackendEngine,
			Params:      []Param{filtersParam()},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				report, err := c.PruneVolumes(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: report}, nil
			},
		},
	}
}
