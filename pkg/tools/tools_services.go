package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

// parseServicePorts turns "published:target" or "published:target/protocol"
// entries into service port specs. Malformed entries are skipped.
func parseServicePorts(specs []string) []docker.ServicePort {
	var ports []docker.ServicePort
	for _, spec := range specs {
		protocol := "tcp"
		if idx := strings.LastIndex(spec, "/"); idx >= 0 {
			protocol = spec[idx+1:]
			spec = spec[:idx]
		}
		published, target, found := strings.Cut(spec, ":")
		if !found {
			continue
		}
		pub, err1 := strconv.Atoi(published)
		tgt, err2 := strconv.Atoi(target)
		if err1 != nil || err2 != nil {
			continue
		}
		ports = append(ports, docker.ServicePort{
			TargetPort:    tgt,
			PublishedPort: pub,
			Protocol:      protocol,
		})
	}
	return ports
}

func serviceToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_list_services",
			Description: "List swarm services",
			Backend:     BackendEngine,
			Params: []Param{
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				services, err := c.ListServices(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: services, Items: services, Kind: render.KindServices}, nil
			},
		},
		{
			Name:        "docker_inspect_service",
			Description: "Show full details for one service",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Service id or name", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				service, err := c.InspectService(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: service}, nil
			},
		},
		{
			Name:        "docker_create_service",
			Description: "Create a swarm service",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Service name", Required: true},
				{Name: "image", Type: "string", Description: "Image the tasks run", Required: true},
				{Name: "replicas", Type: "integer", Description: "Number of task replicas", Default: 1},
				{Name: "env", Type: "array", Description: "Environment entries, KEY=VALUE"},
				{Name: "labels", Type: "object", Description: "Labels to apply"},
				{Name: "ports", Type: "array", Description: "Published ports, published:target or published:target/protocol"},
				{Name: "networks", Type: "array", Description: "Networks to attach"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				created, err := c.CreateService(ctx, docker.ServiceCreateOptions{
					Name:     a.String("name", ""),
					Image:    a.String("image", ""),
					Replicas: a.Int("replicas", 1),
					Env:      a.Strings("env"),
					Labels:   a.StringMap("labels"),
					Ports:    parseServicePorts(a.Strings("ports")),
					Networks: a.Strings("networks"),
				})
				if err != nil {
					return Result{}, err
				}
				return Result{Value: created}, nil
			},
		},
		{
			Name:        "docker_update_service",
			Description: "Replace a service's spec at a known version",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Service id or name", Required: true},
				{Name: "version", Type: "integer", Description: "Current service spec version", Required: true},
				{Name: "spec", Type: "object", Description: "Replacement service spec", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.UpdateService(ctx, id, a.Uint64("version"), a.Map("spec")); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Service %s updated", id)}, nil
			},
		},
		{
			Name:        "docker_remove_service",
			Description: "Remove a service",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Service id or name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.RemoveService(ctx, id); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Service %s removed", id)}, nil
			},
		},
		{
			Name:        "docker_service_logs",
			Description: "Fetch a service's task output",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Service id or name", Required: true},
				{Name: "stdout", Type: "boolean", Description: "Include stdout", Default: true},
				{Name: "stderr", Type: "boolean", Description: "Include stderr", Default: true},
				{Name: "timestamps", Type: "boolean", Description: "Prefix lines with timestamps", Default: false},
				{Name: "tail", Type: "string", Description: "Number of lines from the end, or all"},
				{Name: "since", Type: "string", Description: "Only logs after this time"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				logs, err := c.ServiceLogs(ctx, a.String("id", ""), docker.ContainerLogsOptions{
					Stdout:     a.Bool("stdout", true),
					Stderr:     a.Bool("stderr", true),
					Timestamps: a.Bool("timestamps", false),
					Tail:       a.String("tail", ""),
					Since:      a.String("since", ""),
				})
				if err != nil {
					return Result{}, err
				}
				return Result{Message: logs}, nil
			},
		},
		{
			Name:        "docker_list_tasks",
			Description: "List swarm tasks",
			Backend:     BackendEngine,
			Params: []Param{
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				tasks, err := c.ListTasks(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: tasks, Items: tasks, Kind: render.KindTasks}, nil
			},
		},
		{
			Name:        "docker_inspect_task",
			Description: "Show full details for one task",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Task id", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				task, err := c.InspectTask(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: task}, nil
			},
		},
	}
}
