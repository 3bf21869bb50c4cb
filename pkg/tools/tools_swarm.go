package tools

import (
	"context"
	"fmt"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

func swarmToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_inspect_swarm",
			Description: "Show the swarm state of this engine",
			Backend:     BackendEngine,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				swarm, err := c.InspectSwarm(ctx)
				if err != nil {
					return Result{}, err
				}
				return Result{Value: swarm}, nil
			},
		},
		{
			Name:        "docker_init_swarm",
			Description: "Initialize a new swarm with this engine as manager",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "listen_addr", Type: "string", Description: "Listen address, host:port", Default: "0.0.0.0:2377"},
				{Name: "advertise_addr", Type: "string", Description: "Address advertised to other nodes"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				nodeID, err := c.InitSwarm(ctx, a.String("listen_addr", "0.0.0.0:2377"), a.String("advertise_addr", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Swarm initialized, node id %s", nodeID)}, nil
			},
		},
		{
			Name:        "docker_join_swarm",
			Description: "Join this engine to an existing swarm",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "remote_addrs", Type: "array", Description: "Manager addresses to join through", Required: true},
				{Name: "join_token", Type: "string", Description: "Worker or manager join token", Required: true},
				{Name: "listen_addr", Type: "string", Description: "Listen address, host:port"},
				{Name: "advertise_addr", Type: "string", Description: "Address advertised to other nodes"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				err := c.JoinSwarm(ctx, a.Strings("remote_addrs"), a.String("join_token", ""), a.String("listen_addr", ""), a.String("advertise_addr", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Message: "Swarm joined"}, nil
			},
		},
		{
			Name:        "docker_leave_swarm",
			Description: "Remove this engine from its swarm",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "force", Type: "boolean", Description: "Leave even if this node is a manager", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				if err := c.LeaveSwarm(ctx, a.Bool("force", false)); err != nil {
					return Result{}, err
				}
				return Result{Message: "Swarm left"}, nil
			},
		},
		{
			Name:        "docker_update_swarm",
			Description: "Update the swarm spec or rotate its tokens",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "version", Type: "integer", Description: "Current swarm spec version", Required: true},
				{Name: "spec", Type: "object", Description: "Replacement swarm spec"},
				{Name: "rotate_worker_token", Type: "boolean", Description: "Rotate the worker join token", Default: false},
				{Name: "rotate_manager_token", Type: "boolean", Description: "Rotate the manager join token", Default: false},
				{Name: "rotate_manager_unlock_key", Type: "boolean", Description: "Rotate the manager unlock key", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				err := c.UpdateSwarm(ctx, a.Uint64("version"), a.Map("spec"), docker.SwarmUpdateFlags{
					RotateWorkerToken:      a.Bool("rotate_worker_token", false),
					RotateManagerToken:     a.Bool("rotate_manager_token", false),
					RotateManagerUnlockKey: a.Bool("rotate_manager_unlock_key", false),
				})
				if err != nil {
					return Result{}, err
				}
				return Result{Message: "Swarm updated"}, nil
			},
		},
		{
			Name:        "docker_list_nodes",
			Description: "List nodes in the swarm",
			Backend:     BackendEngine,
			Params: []Param{
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				nodes, err := c.ListNodes(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: nodes, Items: nodes, Kind: render.KindNodes}, nil
			},
		},
		{
			Name:        "docker_inspect_node",
			Description: "Show full details for one swarm node",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Node id", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				node, err := c.InspectNode(ctx, a.String("id", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: node}, nil
			},
		},
		{
			Name:        "docker_remove_node",
			Description: "Remove a node from the swarm",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Node id", Required: true},
				{Name: "force", Type: "boolean", Description: "Force removal", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				if err := c.RemoveNode(ctx, id, a.Bool("force", false)); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Node %s removed", id)}, nil
			},
		},
		{
			Name:        "docker_update_node",
			Description: "Change a node's role, availability, or labels",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "id", Type: "string", Description: "Node id", Required: true},
				{Name: "version", Type: "integer", Description: "Current node spec version", Required: true},
				{Name: "role", Type: "string", Description: "Node role", Enum: []string{"worker", "manager"}},
				{Name: "availability", Type: "string", Description: "Scheduling availability", Enum: []string{"active", "pause", "drain"}},
				{Name: "labels", Type: "object", Description: "Node labels"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				id := a.String("id", "")
				err := c.UpdateNode(ctx, id, a.Uint64("version"), a.String("role", ""), a.String("availability", ""), a.StringMap("labels"))
				if err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Node %s updated", id)}, nil
			},
		},
	}
}
