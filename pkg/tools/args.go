package tools

import (
	"fmt"

	"docker-mcp/pkg/docker"
)

// Args is the raw argument map of one invocation. The dispatch layer has
// already validated types and required fields against the tool schema;
// the accessors here only convert JSON's generic types into Go ones.
type Args map[string]any

// String returns a string argument or the default when absent.
func (a Args) String(name, def string) string {
	if v, ok := a[name].(string); ok && v != "" {
		return v
	}
	return def
}

// Bool returns a boolean argument or the default when absent.
func (a Args) Bool(name string, def bool) bool {
	if v, ok := a[name].(bool); ok {
		return v
	}
	return def
}

// Int returns an integer argument or the default when absent. JSON
// numbers decode as float64.
func (a Args) Int(name string, def int) int {
	switch v := a[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Int64 returns a 64-bit integer argument or the default when absent.
func (a Args) Int64(name string, def int64) int64 {
	switch v := a[name].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	}
	return def
}

// Uint64 returns an unsigned argument or zero when absent; swarm object
// versions travel this way.
func (a Args) Uint64(name string) uint64 {
	if v, ok := a[name].(float64); ok && v >= 0 {
		return uint64(v)
	}
	return 0
}

// Strings returns a string-array argument, empty when absent.
func (a Args) Strings(name string) []string {
	raw, ok := a[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// StringMap returns an object argument flattened to string values.
func (a Args) StringMap(name string) map[string]string {
	raw, ok := a[name].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

// Map returns an object argument as-is.
func (a Args) Map(name string) map[string]any {
	if v, ok := a[name].(map[string]any); ok {
		return v
	}
	return nil
}

// Filters decodes the optional `filters` argument into the engine filter
// mapping. Each value may be a single string or an array of strings.
func (a Args) Filters() docker.Filters {
	raw, ok := a["filters"].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := docker.Filters{}
	for key, val := range raw {
		switch v := val.(type) {
		case string:
			out[key] = []string{v}
		case []any:
			vals := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					vals = append(vals, s)
				}
			}
			out[key] = vals
		}
	}
	return out
}
