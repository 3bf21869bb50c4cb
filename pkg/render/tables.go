package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"docker-mcp/pkg/docker"
)

// Per-kind column layouts. Each entry asserts its own item type and
// reports !ok on a mismatch so Table can fall back to the generic
// projection.
type tableFn func(items any, now time.Time) ([]string, [][]string, bool)

var tables = map[Kind]tableFn{
	KindContainers:      containerTable,
	KindImages:          imageTable,
	KindNetworks:        networkTable,
	KindVolumes:         volumeTable,
	KindServices:        serviceTable,
	KindTasks:           taskTable,
	KindNodes:           nodeTable,
	KindSecrets:         secretTable,
	KindConfigs:         configTable,
	KindPlugins:         pluginTable,
	KindSearchResults:   searchTable,
	KindHubRepositories: hubRepositoryTable,
	KindHubTags:         hubTagTable,
	KindHubWebhooks:     hubWebhookTable,
	KindHubBuilds:       hubBuildTable,
}

func containerTable(items any, now time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Container)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{
			shortID(c.ID),
			containerNames(c.Names),
			c.Image,
			c.Status,
			c.State,
			portsCell(c.Ports),
		})
	}
	return []string{"ID", "Names", "Image", "Status", "State", "Ports"}, rows, true
}

// containerNames strips the engine's leading slash; that cleanup lives
// here, not in the mappers.
func containerNames(names []string) string {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		cleaned = append(cleaned, strings.TrimPrefix(n, "/"))
	}
	return strings.Join(cleaned, ", ")
}

func portsCell(ports []docker.Port) string {
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		if p.PublicPort > 0 {
			parts = append(parts, fmt.Sprintf("%d->%d/%s", p.PublicPort, p.PrivatePort, p.Type))
		} else {
			parts = append(parts, fmt.Sprintf("%d/%s", p.PrivatePort, p.Type))
		}
	}
	return strings.Join(parts, ", ")
}

func imageTable(items any, now time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Image)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, img := range list {
		rows = append(rows, []string{
			shortID(img.ID),
			strings.Join(img.RepoTags, ", "),
			humanSize(img.Size),
			relTime(time.Unix(img.Created, 0).UTC(), now),
		})
	}
	return []string{"ID", "RepoTags", "Size", "Created"}, rows, true
}

func networkTable(items any, _ time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Network)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, n := range list {
		rows = append(rows, []string{shortID(n.ID), n.Name, n.Driver, n.Scope})
	}
	return []string{"ID", "Name", "Driver", "Scope"}, rows, true
}

func volumeTable(items any, _ time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Volume)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, v := range list {
		rows = append(rows, []string{v.Name, v.Driver, v.Mountpoint})
	}
	return []string{"Name", "Driver", "Mountpoint"}, rows, true
}

func serviceTable(items any, _ time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Service)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		replicas := ""
		if s.Mode == "replicated" {
			replicas = strconv.Itoa(s.Replicas)
		}
		rows = append(rows, []string{shortID(s.ID), s.Name, s.Mode, replicas, s.Image})
	}
	return []string{"ID", "Name", "Mode", "Replicas", "Image"}, rows, true
}

func taskTable(items any, _ time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Task)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{
			shortID(t.ID),
			shortID(t.ServiceID),
			shortID(t.NodeID),
			t.State,
			t.DesiredState,
		})
	}
	return []string{"ID", "Service", "Node", "State", "Desired"}, rows, true
}

func nodeTable(items any, _ time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Node)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, n := range list {
		rows = append(rows, []string{shortID(n.ID), n.Hostname, n.Role, n.Availability, n.State})
	}
	return []string{"ID", "Hostname", "Role", "Availability", "State"}, rows, true
}

func secretTable(items any, now time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Secret)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, s := range list {
		rows = append(rows, []string{shortID(s.ID), s.Name, timeCell(s.CreatedAt, now)})
	}
	return []string{"ID", "Name", "Created"}, rows, true
}

func configTable(items any, now time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Config)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		rows = append(rows, []string{shortID(c.ID), c.Name, timeCell(c.CreatedAt, now)})
	}
	return []string{"ID", "Name", "Created"}, rows, true
}

func pluginTable(items any, _ time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.Plugin)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{p.Name, strconv.FormatBool(p.Enabled), p.PluginReference})
	}
	return []string{"Name", "Enabled", "Reference"}, rows, true
}

func searchTable(items any, _ time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.SearchResult)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, r := range list {
		rows = append(rows, []string{
			r.Name,
			strconv.Itoa(r.StarCount),
			strconv.FormatBool(r.IsOfficial),
			truncate(r.Description, genericCellLimit),
		})
	}
	return []string{"Name", "Stars", "Official", "Description"}, rows, true
}

func hubRepositoryTable(items any, now time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.HubRepository)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, r := range list {
		rows = append(rows, []string{
			r.Namespace + "/" + r.Name,
			strconv.FormatBool(r.IsPrivate),
			strconv.Itoa(r.StarCount),
			strconv.FormatInt(r.PullCount, 10),
			timeCell(r.LastUpdated, now),
		})
	}
	return []string{"Name", "Private", "Stars", "Pulls", "Updated"}, rows, true
}

func hubTagTable(items any, now time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.HubTag)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		archs := make([]string, 0, len(t.Images))
		for _, img := range t.Images {
			archs = append(archs, img.Architecture)
		}
		sort.Strings(archs)
		rows = append(rows, []string{
			t.Name,
			humanSize(t.FullSize),
			timeCell(t.LastUpdated, now),
			strings.Join(archs, ", "),
		})
	}
	return []string{"Tag", "Size", "Updated", "Platforms"}, rows, true
}

func hubWebhookTable(items any, now time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.HubWebhook)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, h := range list {
		rows = append(rows, []string{strconv.Itoa(h.ID), h.Name, h.HookURL, timeCell(h.CreatedAt, now)})
	}
	return []string{"ID", "Name", "URL", "Created"}, rows, true
}

func hubBuildTable(items any, now time.Time) ([]string, [][]string, bool) {
	list, ok := items.([]docker.HubBuild)
	if !ok {
		return nil, nil, false
	}
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{b.BuildCode, b.Status, b.Tag, timeCell(b.CreatedAt, now)})
	}
	return []string{"Code", "Status", "Tag", "Created"}, rows, true
}
