package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docker-mcp/pkg/docker"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestStructuredIsIndentedJSON(t *testing.T) {
	out, err := Structured(map[string]string{"id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": \"abc\"\n}", out)
}

func TestFormattingIsIdempotent(t *testing.T) {
	containers := []docker.Container{
		{ID: "aaa111bbb222ccc", Names: []string{"/web"}, Image: "nginx", State: "running", Status: "Up 2 hours"},
	}

	first := Table(KindContainers, containers, testNow)
	second := Table(KindContainers, containers, testNow)
	assert.Equal(t, first, second)

	s1, err := Structured(containers)
	require.NoError(t, err)
	s2, err := Structured(containers)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
}

func TestEmptyListRendersNoItemsLine(t *testing.T) {
	out := Table(KindContainers, []docker.Container{}, testNow)
	assert.Equal(t, "_No items found._", out)
	assert.NotContains(t, out, "|")
}

func TestContainerTableColumns(t *testing.T) {
	containers := []docker.Container{{
		ID:     "aaa111bbb222ccc333",
		Names:  []string{"/web"},
		Image:  "nginx:latest",
		State:  "running",
		Status: "Up 2 hours",
		Ports:  []docker.Port{{PrivatePort: 80, PublicPort: 8080, Type: "tcp"}},
	}}

	out := Table(KindContainers, containers, testNow)
	assert.Contains(t, out, "| ID | Names | Image | Status | State | Ports |")
	// ID shortened to 12 chars, leading slash stripped from names.
	assert.Contains(t, out, "| aaa111bbb222 | web | nginx:latest | Up 2 hours | running | 8080->80/tcp |")
}

func TestImageTableHumanSizeAndRelTime(t *testing.T) {
	created := testNow.Add(-3 * time.Hour).Unix()
	images := []docker.Image{{
		ID:       "sha256:abcdef0123456789",
		RepoTags: []string{"nginx:latest"},
		Size:     187 * 1024 * 1024,
		Created:  created,
	}}

	out := Table(KindImages, images, testNow)
	assert.Contains(t, out, "187.0 MB")
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "abcdef012345")
}

func TestHumanSizeLadder(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512.0 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
		{2 * 1024 * 1024 * 1024 * 1024, "2.0 TB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, humanSize(tt.in))
	}
}

func TestRelTimeLadder(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"minutes", testNow.Add(-5 * time.Minute), "5 minutes ago"},
		{"one minute", testNow.Add(-1 * time.Minute), "1 minute ago"},
		{"hours", testNow.Add(-2 * time.Hour), "2 hours ago"},
		{"days", testNow.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"one day", testNow.Add(-25 * time.Hour), "1 day ago"},
		{"older than a week is ISO", testNow.Add(-10 * 24 * time.Hour), "2024-06-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relTime(tt.t, testNow))
		})
	}
}

func TestPaginationHeader(t *testing.T) {
	repos := []docker.HubRepository{{Namespace: "alice", Name: "tool"}}
	out := TableWithPage(KindHubRepositories, repos, &PageInfo{Total: 120, Shown: 1, HasMore: true, NextPage: 3}, testNow)

	assert.Contains(t, out, "Total: 120 | Shown: 1")
	assert.Contains(t, out, "More available — next page: 3")

	out = TableWithPage(KindHubRepositories, repos, &PageInfo{Total: 1, Shown: 1}, testNow)
	assert.Contains(t, out, "Total: 1 | Shown: 1")
	assert.NotContains(t, out, "More available")
}

func TestGenericFallbackTruncates(t *testing.T) {
	type odd struct {
		Alpha string `json:"alpha"`
		Beta  string `json:"beta"`
	}
	items := []odd{{Alpha: strings.Repeat("x", 60), Beta: "short"}}

	out := Table(Kind("mystery"), items, testNow)
	assert.Contains(t, out, "| alpha | beta |")
	assert.Contains(t, out, strings.Repeat("x", 27)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 31))
}

func TestGenericFallbackLimitsToFiveKeys(t *testing.T) {
	items := []map[string]any{{
		"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7,
	}}

	out := Table(Kind("mystery"), items, testNow)
	assert.Contains(t, out, "| a | b | c | d | e |")
	assert.NotContains(t, out, "| f |")
}

func TestHubTagTable(t *testing.T) {
	tags := []docker.HubTag{{
		Name:        "1.27",
		FullSize:    67 * 1024 * 1024,
		LastUpdated: testNow.Add(-30 * time.Minute).Format(time.RFC3339),
		Images: []docker.HubTagImage{
			{Architecture: "arm64"},
			{Architecture: "amd64"},
		},
	}}

	out := Table(KindHubTags, tags, testNow)
	assert.Contains(t, out, "67.0 MB")
	assert.Contains(t, out, "30 minutes ago")
	assert.Contains(t, out, "amd64, arm64")
}
