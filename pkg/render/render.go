// Package render turns normalized results into the response payload: an
// indented JSON document or a human-oriented markdown table, dispatched
// per entity kind. Rendering is deterministic: the same value and format
// always produce byte-identical output for a fixed clock.
package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Format selects the response shape.
type Format string

const (
	FormatStructured Format = "structured"
	FormatTabular    Format = "tabular"
)

// Kind tags an entity type for tabular dispatch.
type Kind string

const (
	KindContainers      Kind = "containers"
	KindImages          Kind = "images"
	KindNetworks        Kind = "networks"
	KindVolumes         Kind = "volumes"
	KindServices        Kind = "services"
	KindTasks           Kind = "tasks"
	KindNodes           Kind = "nodes"
	KindSecrets         Kind = "secrets"
	KindConfigs         Kind = "configs"
	KindPlugins         Kind = "plugins"
	KindSearchResults   Kind = "search_results"
	KindHubRepositories Kind = "hub_repositories"
	KindHubTags         Kind = "hub_tags"
	KindHubWebhooks     Kind = "hub_webhooks"
	KindHubBuilds       Kind = "hub_builds"
)

// PageInfo carries pagination metadata for the table header.
type PageInfo struct {
	Total    int
	Shown    int
	HasMore  bool
	NextPage int
}

// noItems is rendered instead of an empty table.
const noItems = "_No items found._"

const genericCellLimit = 30

// Structured serializes any value as indented JSON.
func Structured(value any) (string, error) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "rendering structured result")
	}
	return string(out), nil
}

// Table renders items as a markdown table for the given kind. Unknown
// kinds fall back to a generic projection of the first item's keys.
func Table(kind Kind, items any, now time.Time) string {
	return TableWithPage(kind, items, nil, now)
}

// TableWithPage renders items with an optional pagination header showing
// total and shown counts plus the next-page cursor when more pages exist.
func TableWithPage(kind Kind, items any, page *PageInfo, now time.Time) string {
	headers, rows := tabulate(kind, items, now)
	if len(rows) == 0 {
		return noItems
	}

	var b strings.Builder
	if page != nil {
		fmt.Fprintf(&b, "Total: %d | Shown: %d\n", page.Total, page.Shown)
		if page.HasMore {
			fmt.Fprintf(&b, "More available — next page: %d\n", page.NextPage)
		}
		b.WriteString("\n")
	}
	writeMarkdownTable(&b, headers, rows)
	return b.String()
}

// tabulate dispatches on kind; the dispatch table keeps the supported
// set explicit.
func tabulate(kind Kind, items any, now time.Time) ([]string, [][]string) {
	if fn, ok := tables[kind]; ok {
		if headers, rows, ok := fn(items, now); ok {
			return headers, rows
		}
	}
	return genericTable(items)
}

// genericTable projects unknown item shapes onto the first 5 keys of the
// first item, truncating each cell. Keys are sorted so output stays
// deterministic.
func genericTable(items any) ([]string, [][]string) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, nil
	}
	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(list[0]))
	for k := range list[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 5 {
		keys = keys[:5]
	}

	rows := make([][]string, 0, len(list))
	for _, item := range list {
		row := make([]string, 0, len(keys))
		for _, k := range keys {
			row = append(row, truncate(fmt.Sprintf("%v", item[k]), genericCellLimit))
		}
		rows = append(rows, row)
	}
	return keys, rows
}

func writeMarkdownTable(b *strings.Builder, headers []string, rows [][]string) {
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range rows {
		for i, cell := range row {
			row[i] = strings.ReplaceAll(cell, "|", "\\|")
		}
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

// shortID trims an id to the 12-character display form.
func shortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// humanSize renders a byte count on the fixed B/KB/MB/GB/TB ladder at one
// decimal place.
func humanSize(n int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %s", size, units[i])
}

// relTime renders timestamps under 7 days old as relative time and older
// ones as an ISO date.
func relTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	switch {
	case d >= 7*24*time.Hour:
		return t.Format("2006-01-02")
	case d >= 24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	case d >= time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Minutes()), "minute")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// parseTime accepts the RFC3339 timestamps both backends emit; anything
// unparseable renders as-is.
func parseTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// timeCell renders a backend timestamp string relative to now.
func timeCell(s string, now time.Time) string {
	if t, ok := parseTime(s); ok {
		return relTime(t, now)
	}
	return s
}
