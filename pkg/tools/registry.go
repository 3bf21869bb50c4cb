// Package tools binds every backend operation to an externally invocable
// MCP tool. Tools are declared in a config table; registration gates each
// table entry on the credential set available at session construction,
// and every invocation runs against a fresh per-call backend client.
package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	"docker-mcp/pkg/docker"
	"docker-mcp/pkg/errdefs"
	"docker-mcp/pkg/render"
	"docker-mcp/pkg/tenant"
)

// Backend names the credential set a tool requires.
type Backend string

const (
	BackendEngine Backend = "engine"
	BackendHub    Backend = "hub"
)

// Param declares one recognized input option.
type Param struct {
	Name        string
	Type        string // string, integer, boolean, array, object
	Description string
	Required    bool
	Default     any
	Enum        []string
}

// Result is what a tool run produces on success. Message alone makes an
// action confirmation; Value/Items feed the formatter for listings and
// inspections.
type Result struct {
	Message string
	Value   any
	Kind    render.Kind
	Items   any
	Page    *render.PageInfo
}

// RunFunc executes one backend operation with already-extracted args.
type RunFunc func(ctx context.Context, c *docker.Client, a Args) (Result, error)

// ToolConfig declares one tool: its external name, input contract, the
// backend it needs, and how its result is shaped.
type ToolConfig struct {
	Name          string
	Description   string
	Backend       Backend
	Params        []Param
	DefaultFormat render.Format
	Run           RunFunc
}

// Registry owns the session's credential set. Gating happens once, at
// registration: tools whose backend is unavailable are never registered,
// and no per-call re-check occurs afterward.
type Registry struct {
	creds  tenant.Credentials
	logger *slog.Logger
}

// NewRegistry builds a registry for one session's credentials.
func NewRegistry(creds tenant.Credentials, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{creds: creds, logger: logger.With("component", "tools")}
}

// Configs returns the full tool table.
func Configs() []ToolConfig {
	var configs []ToolConfig
	configs = append(configs, containerToolConfigs()...)
	configs = append(configs, imageToolConfigs()...)
	configs = append(configs, networkToolConfigs()...)
	configs = append(configs, volumeToolConfigs()...)
	configs = append(configs, systemToolConfigs()...)
	configs = append(configs, swarmToolConfigs()...)
	configs = append(configs, serviceToolConfigs()...)
	configs = append(configs, secretToolConfigs()...)
	configs = append(configs, pluginToolConfigs()...)
	configs = append(configs, hubToolConfigs()...)
	return configs
}

// Register adds every tool whose backend credentials are available to the
// MCP server and reports how many were registered.
func (r *Registry) Register(mcpServer *server.MCPServer) (int, error) {
	registered := 0
	for _, config := range Configs() {
		if !r.available(config.Backend) {
			continue
		}
		if config.Run == nil {
			return registered, errors.Errorf("tool %s has no run function", config.Name)
		}
		tool := mcp.Tool{
			Name:        config.Name,
			Description: config.Description,
			InputSchema: BuildToolSchema(config),
		}
		mcpServer.AddTool(tool, r.handler(config))
		r.logger.Debug("registered tool", "name", config.Name, "backend", string(config.Backend))
		registered++
	}
	return registered, nil
}

func (r *Registry) available(backend Backend) bool {
	switch backend {
	case BackendEngine:
		return r.creds.HasEngine()
	case BackendHub:
		return r.creds.HasHub()
	}
	return false
}

// handler wraps a tool config into an MCP handler. Backend failures never
// propagate as Go errors: they become error-marked results.
func (r *Registry) handler(config ToolConfig) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		start := time.Now()

		args := Args(req.GetArguments())
		if args == nil {
			args = Args{}
		}

		// Fresh client per invocation: credentials and any hub session
		// token live exactly as long as this call.
		client := docker.NewClient(r.creds, r.logger)

		result, err := config.Run(ctx, client, args)
		if err != nil {
			r.logger.Warn("tool failed",
				"tool", config.Name,
				"call_id", callID,
				"duration", time.Since(start),
				"error", err)
			return failureResult(err), nil
		}

		payload, err := r.renderResult(config, args, result)
		if err != nil {
			return failureResult(err), nil
		}

		r.logger.Info("tool completed",
			"tool", config.Name,
			"call_id", callID,
			"duration", time.Since(start))
		return textResult(payload, false), nil
	}
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
		IsError: isError,
	}
}

// renderResult shapes a successful result: confirmation message, indented
// JSON, or a per-kind table.
func (r *Registry) renderResult(config ToolConfig, args Args, result Result) (string, error) {
	if result.Value == nil {
		return result.Message, nil
	}

	format := render.Format(args.String("format", string(config.DefaultFormat)))
	if format == render.FormatTabular && result.Items != nil {
		return render.TableWithPage(result.Kind, result.Items, result.Page, time.Now()), nil
	}
	return render.Structured(result.Value)
}

// failureResult builds the uniform failure envelope: a message line
// prefixed "Error: " (with a retryable marker when applicable) followed
// by the normalized error details as JSON.
func failureResult(err error) *mcp.CallToolResult {
	be, ok := errdefs.As(err)
	if !ok {
		be = errdefs.New(errdefs.CodeBackend, err.Error())
	}

	text := "Error: " + be.Message
	if be.Retryable {
		text += " (retryable)"
	}
	if detail, marshalErr := json.MarshalIndent(be, "", "  "); marshalErr == nil {
		text += "\n\n" + string(detail)
	}
	return textResult(text, true)
}

// BuildToolSchema creates the JSON schema for a tool's input from its
// declared params.
func BuildToolSchema(config ToolConfig) mcp.ToolInputSchema {
	properties := make(map[string]any, len(config.Params))
	var required []string

	for _, param := range config.Params {
		prop := map[string]any{
			"description": param.Description,
		}
		switch param.Type {
		case "array":
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string"}
		case "boolean", "object", "integer", "number", "string":
			prop["type"] = param.Type
		default:
			prop["type"] = "string"
		}
		if param.Default != nil {
			prop["default"] = param.Default
		}
		if len(param.Enum) > 0 {
			prop["enum"] = param.Enum
		}
		properties[param.Name] = prop

		if param.Required {
			required = append(required, param.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// Shared param declarations reused across the table.

func formatParam(def render.Format) Param {
	return Param{
		Name:        "format",
		Type:        "string",
		Description: "Response shape: structured JSON or a rendered table",
		Default:     string(def),
		Enum:        []string{string(render.FormatStructured), string(render.FormatTabular)},
	}
}

func filtersParam() Param {
	return Param{
		Name:        "filters",
		Type:        "object",
		Description: "Filter mapping: key to value or list of values",
	}
}

func pageParams() []Param {
	return []Param{
		{Name: "page", Type: "integer", Description: "Page number, starting at 1", Default: 1},
		{Name: "page_size", Type: "integer", Description: "Items per page", Default: 25},
	}
}
