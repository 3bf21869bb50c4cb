package tools

import (
	"context"
	"fmt"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/render"
)

func imageToolConfigs() []ToolConfig {
	return []ToolConfig{
		{
			Name:        "docker_list_images",
			Description: "List images stored on the engine",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "all", Type: "boolean", Description: "Include intermediate layers", Default: false},
				filtersParam(),
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				images, err := c.ListImages(ctx, a.Bool("all", false), a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: images, Items: images, Kind: render.KindImages}, nil
			},
		},
		{
			Name:        "docker_inspect_image",
			Description: "Show full details for one image",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Image name, tag, or id", Required: true},
				formatParam(render.FormatStructured),
			},
			DefaultFormat: render.FormatStructured,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				detail, err := c.InspectImage(ctx, a.String("name", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: detail}, nil
			},
		},
		{
			Name:        "docker_image_history",
			Description: "Show the layer history of an image",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Image name, tag, or id", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				history, err := c.ImageHistory(ctx, a.String("name", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: history}, nil
			},
		},
		{
			Name:        "docker_pull_image",
			Description: "Pull an image from a registry",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "image", Type: "string", Description: "Image to pull", Required: true},
				{Name: "tag", Type: "string", Description: "Tag to pull", Default: "latest"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				image := a.String("image", "")
				tag := a.String("tag", "latest")
				if _, err := c.PullImage(ctx, image, tag); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Image %s:%s pulled", image, tag)}, nil
			},
		},
		{
			Name:        "docker_push_image",
			Description: "Push an image to a registry",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Image to push", Required: true},
				{Name: "tag", Type: "string", Description: "Tag to push"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				if _, err := c.PushImage(ctx, name, a.String("tag", "")); err != nil {
					return Result{}, err
				}
				return Result{Message: fmt.Sprintf("Image %s pushed", name)}, nil
			},
		},
		{
			Name:        "docker_tag_image",
			Description: "Apply a new repository tag to an image",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Source image name or id", Required: true},
				{Name: "repo", Type: "string", Description: "Target repository", Required: true},
				{Name: "tag", Type: "string", Description: "Target tag"},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				name := a.String("name", "")
				repo := a.String("repo", "")
				tag := a.String("tag", "")
				if err := c.TagImage(ctx, name, repo, tag); err != nil {
					return Result{}, err
				}
				ref := repo
				if tag != "" {
					ref = repo + ":" + tag
				}
				return Result{Message: fmt.Sprintf("Image %s tagged as %s", name, ref)}, nil
			},
		},
		{
			Name:        "docker_remove_image",
			Description: "Remove an image",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Image name, tag, or id", Required: true},
				{Name: "force", Type: "boolean", Description: "Remove even if tagged in multiple repositories", Default: false},
				{Name: "no_prune", Type: "boolean", Description: "Keep untagged parent layers", Default: false},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				deleted, err := c.RemoveImage(ctx, a.String("name", ""), a.Bool("force", false), a.Bool("no_prune", false))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: deleted}, nil
			},
		},
		{
			Name:        "docker_search_images",
			Description: "Search a registry for images",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "term", Type: "string", Description: "Search term", Required: true},
				{Name: "limit", Type: "integer", Description: "Maximum results"},
				formatParam(render.FormatTabular),
			},
			DefaultFormat: render.FormatTabular,
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				results, err := c.SearchImages(ctx, a.String("term", ""), a.Int("limit", 0))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: results, Items: results, Kind: render.KindSearchResults}, nil
			},
		},
		{
			Name:        "docker_prune_images",
			Description: "Delete unused images",
			Backend:     BackendEngine,
			Params:      []Param{filtersParam()},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				report, err := c.PruneImages(ctx, a.Filters())
				if err != nil {
					return Result{}, err
				}
				return Result{Value: report}, nil
			},
		},
		{
			Name:        "docker_inspect_distribution",
			Description: "Show registry manifest details for an image reference",
			Backend:     BackendEngine,
			Params: []Param{
				{Name: "name", Type: "string", Description: "Image reference", Required: true},
			},
			Run: func(ctx context.Context, c *docker.Client, a Args) (Result, error) {
				dist, err := c.DistributionInspect(ctx, a.String("name", ""))
				if err != nil {
					return Result{}, err
				}
				return Result{Value: dist}, nil
			},
		},
	}
}
