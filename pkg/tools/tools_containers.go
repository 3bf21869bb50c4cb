package tools

import (
	"context"
	"fmt"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

func containerToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_list_containers",
			Description: "List containers known to the engine",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "all", Type: "boolean", Description: "Include stopped containers", Default: false},
				{Name: "limit", Type: "integer", Description: "Return at most this many recently created containers"},
				{Name: "size", Type: "boolean", Description: "Include filesystem sizes", Default: false},
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				containers, err := c.ListContainers(ctx, a.Bool("all", false), a.Int("limit", 0), a.Bool("size", false), a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: containers, Items: containers, Kind: render.KindContainers}, nil
			},
		},
		{
			Name:        "docker_inspect_container",
			Description: "Show full details for one container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "size", Type: "boolean", Description: "Include filesystem sizes", Default: false},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				detail, err := c.InspectContainer(ctx, a.String("id", ""), a.Bool("size", false))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: detail}, nil
			},
		},
		{
			Name:        "docker_create_container",
			Description: "Create a container from an image without starting it",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "image", Type: "string", Description: "Image reference to run", Required: true},
				{Name: "name", Type: "string", Description: "Container name"},
				{Name: "cmd", Type: "array", Description: "Command to run"},
				{Name: "entrypoint", Type: "array", Description: "Entrypoint override"},
				{Name: "env", Type: "array", Description: "Environment entries, KEY=VALUE"},
				{Name: "working_dir", Type: "string", Description: "Working directory inside the container"},
				{Name: "user", Type: "string", Description: "User to run as"},
				{Name: "labels", Type: "object", Description: "Labels to apply"},
				{Name: "exposed_ports", Type: "array", Description: "Ports to expose, e.g. 8080/tcp"},
				{Name: "port_bindings", Type: "object", Description: "Container port to host address, e.g. 80/tcp to 0.0.0.0:8080"},
				{Name: "binds", Type: "array", Description: "Volume binds, host:container"},
				{Name: "network_mode", Type: "string", Description: "Network mode"},
				{Name: "restart_policy", Type: "string", Description: "Restart policy name"},
				{Name: "memory", Type: "integer", Description: "Memory limit in bytes"},
				{Name: "nano_cpus", Type: "integer", Description: "CPU quota in billionths of a CPU"},
				{Name: "privileged", Type: "boolean", Description: "Run privileged", Default: false},
				{Name: "auto_remove", Type: "boolean", Description: "Remove the container when it exits", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				created, err := c.CreateContainer(ctx, docker.ContainerCreateOptions{
					Name:          a.String("name", ""),
					Image:         a.String("image", ""),
					Cmd:           a.Strings("cmd"),
					Entrypoint:    a.Strings("entrypoint"),
					Env:           a.Strings("env"),
					WorkingDir:    a.String("working_dir", ""),
					User:          a.String("user", ""),
					Labels:        a.StringMap("labels"),
					ExposedPorts:  a.Strings("exposed_ports"),
					PortBindings:  a.StringMap("port_bindings"),
					Binds:         a.Strings("binds"),
					NetworkMode:   a.String("network_mode", ""),
					RestartPolicy: a.String("restart_policy", ""),
					Memory:        a.Int64("memory", 0),
					NanoCPUs:      a.Int64("nano_cpus", 0),
					Privileged:    a.Bool("privileged", false),
					AutoRemove:    a.Bool("auto_remove", false),
				})
				if err != nil {
					return Result{}, err
				}
				return Result{Value: created}, nil
			},
		},
		{
			Name:        "docker_start_container",
			Description: "Start a created or stopped container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.StartContainer(ctx, id); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s started", id)}, nil
			},
		},
		{
			Name:        "docker_stop_container",
			Description: "Stop a running container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "timeout", Type: "integer", Description: "Seconds to wait before killing"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.StopContainer(ctx, id, a.Int("timeout", 0)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s stopped", id)}, nil
			},
		},
		{
			Name:        "docker_restart_container",
			Description: "Restart a container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "timeout", Type: "integer", Description: "Seconds to wait before killing"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.RestartContainer(ctx, id, a.Int("timeout", 0)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s restarted", id)}, nil
			},
		},
		{
			Name:        "docker_kill_container",
			Description: "Send a signal to a running container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "signal", Type: "string", Description: "Signal to send", Default: "SIGKILL"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.KillContainer(ctx, id, a.String("signal", "SIGKILL")); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s killed", id)}, nil
			},
		},
		{
			Name:        "docker_pause_container",
			Description: "Pause all processes in a container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.PauseContainer(ctx, id); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s paused", id)}, nil
			},
		},
		{
			Name:        "docker_unpause_container",
			Description: "Resume a paused container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.UnpauseContainer(ctx, id); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s unpaused", id)}, nil
			},
		},
		{
			Name:        "docker_rename_container",
			Description: "Rename a container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "name", Type: "string", Description: "New name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				name := a.String("name", "")
				if err := c.RenameContainer(ctx, id, name); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s renamed to %s", id, name)}, nil
			},
		},
		{
			Name:        "docker_update_container",
			Description: "Change resource limits on a running container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "memory", Type: "integer", Description: "Memory limit in bytes"},
				{Name: "memory_swap", Type: "integer", Description: "Memory plus swap limit in bytes"},
				{Name: "nano_cpus", Type: "integer", Description: "CPU quota in billionths of a CPU"},
				{Name: "cpu_shares", Type: "integer", Description: "Relative CPU weight"},
				{Name: "restart_policy", Type: "string", Description: "Restart policy name"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				warnings, err := c.UpdateContainer(ctx, a.String("id", ""), docker.ContainerUpdateOptions{
					Memory:        a.Int64("memory", 0),
					MemorySwap:    a.Int64("memory_swap", 0),
					NanoCPUs:      a.Int64("nano_cpus", 0),
					CPUShares:     a.Int64("cpu_shares", 0),
					RestartPolicy: a.String("restart_policy", ""),
				})
				if err != nil {
					return Result{}, err
				}
				return Result{Value: warnings}, nil
			},
		},
		{
			Name:        "docker_wait_container",
			Description: "Block until a container reaches a condition and return its exit code",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "condition", Type: "string", Description: "Condition to wait for", Enum: []string{"not-running", "next-exit", "removed"}},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				result, err := c.WaitContainer(ctx, a.String("id", ""), a.String("condition", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: result}, nil
			},
		},
		{
			Name:        "docker_remove_container",
			Description: "Remove a container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "force", Type: "boolean", Description: "Kill the container if running", Default: false},
				{Name: "volumes", Type: "boolean", Description: "Remove anonymous volumes too", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.RemoveContainer(ctx, id, a.Bool("force", false), a.Bool("volumes", false)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s removed", id)}, nil
			},
		},
		{
			Name:        "docker_container_logs",
			Description: "Fetch container output",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "stdout", Type: "boolean", Description: "Include stdout", Default: true},
				{Name: "stderr", Type: "boolean", Description: "Include stderr", Default: true},
				{Name: "timestamps", Type: "boolean", Description: "Prefix lines with timestamps", Default: false},
				{Name: "tail", Type: "string", Description: "Number of lines from the end, or all"},
				{Name: "since", Type: "string", Description: "Only logs after this time"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				logs, err := c.ContainerLogs(ctx, a.String("id", ""), docker.ContainerLogsOptions{
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
			Name:        "docker_container_top",
			Description: "List processes running inside a container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "ps_args", Type: "string", Description: "Arguments passed to ps"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				procs, err := c.ContainerTop(ctx, a.String("id", ""), a.String("ps_args", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: procs}, nil
			},
		},
		{
			Name:        "docker_container_stats",
			Description: "Take a one-shot resource usage sample for a container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				stats, err := c.ContainerStats(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: stats}, nil
			},
		},
		{
			Name:        "docker_container_changes",
			Description: "List filesystem changes made since the container started",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				changes, err := c.ContainerChanges(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: changes}, nil
			},
		},
		{
			Name:        "docker_prune_containers",
			Description: "Delete stopped containers",
			Backend:     BackendEngine,
			Params:      []Param{filtersParam()},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				report, err := c.PruneContainers(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: report}, nil
			},
		},
		{
			Name:        "docker_commit_container",
			Description: "Create an image from a container's current state",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "repo", Type: "string", Description: "Repository for the new image"},
				{Name: "tag", Type: "string", Description: "Tag for the new image"},
				{Name: "comment", Type: "string", Description: "Commit message"},
				{Name: "author", Type: "string", Description: "Author, e.g. name <email>"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				commit, err := c.CommitContainer(ctx, a.String("id", ""), a.String("repo", ""), a.String("tag", ""), a.String("comment", ""), a.String("author", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: commit}, nil
			},
		},
		{
			Name:        "docker_resize_container",
			Description: "Resize a container's TTY",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "width", Type: "integer", Description: "Terminal width in columns", Required: true},
				{Name: "height", Type: "integer", Description: "Terminal height in rows", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.ResizeContainer(ctx, id, a.Int("width", 0), a.Int("height", 0)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Container %s resized", id)}, nil
			},
		},
		{
			Name:        "docker_create_exec",
			Description: "Set up a command to run inside a running container",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Container id or name", Required: true},
				{Name: "cmd", Type: "array", Description: "Command to run", Required: true},
				{Name: "attach_stdout", Type: "boolean", Description: "Capture stdout", Default: true},
				{Name: "attach_stderr", Type: "boolean", Description: "Capture stderr", Default: true},
				{Name: "tty", Type: "boolean", Description: "Allocate a pseudo terminal", Default: false},
				{Name: "env", Type: "array", Description: "Environment entries, KEY=VALUE"},
				{Name: "working_dir", Type: "string", Description: "Working directory for the command"},
				{Name: "user", Type: "string", Description: "User to run as"},
				{Name: "privileged", Type: "boolean", Description: "Run privileged", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				created, err := c.CreateExec(ctx, a.String("id", ""), docker.ExecCreateOptions{
					Cmd:          a.Strings("cmd"),
					AttachStdout: a.Bool("attach_stdout", true),
					AttachStderr: a.Bool("attach_stderr", true),
					Tty:          a.Bool("tty", false),
					Env:          a.Strings("env"),
					WorkingDir:   a.String("working_dir", ""),
					User:         a.String("user", ""),
					Privileged:   a.Bool("privileged", false),
				})
				if err != nil {
					return Result{}, err
				}
				return Result{Value: created}, nil
			},
		},
		{
			Name:        "docker_start_exec",
			Description: "Run a previously created exec and return its output",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Exec id", Required: true},
				{Name: "detach", Type: "boolean", Description: "Run without collecting output", Default: false},
				{Name: "tty", Type: "boolean", Description: "Run with a pseudo terminal", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				out, err := c.StartExec(ctx, a.String("id", ""), a.Bool("detach", false), a.Bool("tty", false))
				if err != nil {
					return Result{}, err
				}
				if out == "" {
					out = fmt.Sprintf("Exec %s started", a.String("id", ""))
				}
				return Result{Message: out}, nil
			},
		},
		{
			Name:        "docker_inspect_exec",
			Description: "Show the state of an exec instance",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Exec id", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				detail, err := c.InspectExec(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: detail}, nil
			},
		},
		{
			Name:        "docker_resize_exec",
			Description: "Resize an exec instance's TTY",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Exec id", Required: true},
				{Name: "width", Type: "integer", Description: "Terminal width in columns", Required: true},
				{Name: "height", Type: "integer", Description: "Terminal height in rows", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.ResizeExec(ctx, id, a.Int("width", 0), a.Int("height", 0)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Exec %s resized", id)}, nil
			},
		},
	}
}
