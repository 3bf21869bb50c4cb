package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docker-mcp/pkg/docker"
)

func TestArgsTypedAccess(t *testing.T) {
	args := Args{
		"name":    "web",
		"all":     true,
		"limit":   float64(5), // JSON numbers decode as float64
		"memory":  float64(1073741824),
		"version": float64(42),
		"cmd":     []any{"sh", "-c", "true"},
		"labels":  map[string]any{"env": "prod", "tier": 1},
		"spec":    map[string]any{"Name": "default"},
	}

	assert.Equal(t, "web", args.String("name", ""))
	assert.Equal(t, "fallback", args.String("missing", "fallback"))
	assert.True(t, args.Bool("all", false))
	assert.False(t, args.Bool("missing", false))
	assert.Equal(t, 5, args.Int("limit", 0))
	assert.Equal(t, 10, args.Int("missing", 10))
	assert.Equal(t, int64(1073741824), args.Int64("memory", 0))
	assert.Equal(t, uint64(42), args.Uint64("version"))
	assert.Equal(t, []string{"sh", "-c", "true"}, args.Strings("cmd"))
	assert.Nil(t, args.Strings("missing"))
	assert.Equal(t, map[string]string{"env": "prod", "tier": "1"}, args.StringMap("labels"))
	assert.Equal(t, map[string]any{"Name": "default"}, args.Map("spec"))
}

func TestArgsWrongTypesFallBack(t *testing.T) {
	args := Args{
		"name":  7,
		"all":   "yes",
		"limit": "many",
	}

	assert.Equal(t, "def", args.String("name", "def"))
	assert.False(t, args.Bool("all", false))
	assert.Equal(t, 3, args.Int("limit", 3))
}

func TestArgsFilters(t *testing.T) {
	args := Args{
		"filters": map[string]any{
			"status": "running",
			"label":  []any{"env=prod", "tier=web"},
		},
	}

	filters := args.Filters()
	assert.Equal(t, docker.Filters{
		"status": {"running"},
		"label":  {"env=prod", "tier=web"},
	}, filters)

	assert.Nil(t, Args{}.Filters())
}
