package tools

import (
	"context"
	"fmt"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

func pluginToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_list_plugins",
			Description: "List installed plugins",
			Backend:     BackendEngine,
			Params: []Param{
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				plugins, err := c.ListPlugins(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: plugins, Items: plugins, Kind: render.KindPlugins}, nil
			},
		},
		{
			Name:        "docker_inspect_plugin",
			Description: "Show full details for one plugin",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Plugin name", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				plugin, err := c.InspectPlugin(ctx, a.String("name", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: plugin}, nil
			},
		},
		{
			Name:        "docker_plugin_privileges",
			Description: "List the privileges a plugin would require",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "remote", Type: "string", Description: "Plugin reference in a registry", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				privileges, err := c.PluginPrivileges(ctx, a.String("remote", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: privileges}, nil
			},
		},
		{
			Name:        "docker_install_plugin",
			Description: "Install a plugin from a registry, granting its requested privileges",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "remote", Type: "string", Description: "Plugin reference in a registry", Required: true},
				{Name: "name", Type: "string", Description: "Local name for the plugin"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				remote := a.String("remote", "")
				privileges, err := c.PluginPrivileges(ctx, remote)
				if err != nil {
					return Result{}, err
				}
				if _, err := c.InstallPlugin(ctx, remote, a.String("name", ""), privileges); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Plugin %s installed", remote)}, nil
			},
		},
		{
			Name:        "docker_enable_plugin",
			Description: "Enable an installed plugin",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Plugin name", Required: true},
				{Name: "timeout", Type: "integer", Description: "Seconds to wait for activation"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				if err := c.EnablePlugin(ctx, name, a.Int("timeout", 0)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Plugin %s enabled", name)}, nil
			},
		},
		{
			Name:        "docker_disable_plugin",
			Description: "Disable an installed plugin",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Plugin name", Required: true},
				{Name: "force", Type: "boolean", Description: "Disable even while in use", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				if err := c.DisablePlugin(ctx, name, a.Bool("force", false)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Plugin %s disabled", name)}, nil
			},
		},
		{
			Name:        "docker_remove_plugin",
			Description: "Remove an installed plugin",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Plugin name", Required: true},
				{Name: "force", Type: "boolean", Description: "Remove even if enabled", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				if err := c.RemovePlugin(ctx, name, a.Bool("force", false)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Plugin %s removed", name)}, nil
			},
		},
		{
			Name:        "docker_set_plugin",
			Description: "Change settings of an installed plugin",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Plugin name", Required: true},
				{Name: "args", Type: "array", Description: "Settings entries, KEY=VALUE", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				if err := c.SetPlugin(ctx, name, a.Strings("args")); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Plugin %s configured", name)}, nil
			},
		},
		{
			Name:        "docker_upgrade_plugin",
			Description: "Upgrade a disabled plugin to a new remote version",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Plugin name", Required: true},
				{Name: "remote", Type: "string", Description: "Plugin reference to upgrade to", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				remote := a.String("remote", "")
				privileges, err := c.PluginPrivileges(ctx, remote)
				if err != nil {
					return Result{}, err
				}
				if _, err := c.UpgradePlugin(ctx, name, remote, privileges); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Plugin %s upgraded to %s", name, remote)}, nil
			},
		},
		{
			Name:        "docker_push_plugin",
			Description: "Push a plugin to a registry",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Plugin name", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				if _, err := c.PushPlugin(ctx, name); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Plugin %s pushed", name)}, nil
			},
		},
	}
}
