package docker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapContainerPreservesFixtureFields(t *testing.T) {
	fixture := `{
		"Id": "8dfafdbc3a40",
		"Names": ["/boring_feynman"],
		"Image": "ubuntu:latest",
		"ImageID": "sha256:d74508fb6632",
		"Command": "echo 1",
		"Created": 1367854155,
		"State": "exited",
		"Status": "Exit 0",
		"Ports": [{"IP":"0.0.0.0","PrivatePort":2222,"PublicPort":3333,"Type":"tcp"}],
		"Labels": {"com.example.vendor": "Acme"},
		"Mounts": [{"Type":"bind","Source":"/host","Destination":"/data","Mode":"rw","RW":true}]
	}`
	var wire containerSummaryWire
	require.NoError(t, json.Unmarshal([]byte(fixture), &wire))

	got := mapContainer(wire)
	assert.Equal(t, "8dfafdbc3a40", got.ID)
	assert.Equal(t, []string{"/boring_feynman"}, got.Names)
	assert.Equal(t, "ubuntu:latest", got.Image)
	assert.Equal(t, "sha256:d74508fb6632", got.ImageID)
	assert.Equal(t, int64(1367854155), got.Created)
	assert.Equal(t, "exited", got.State)
	require.Len(t, got.Ports, 1)
	assert.Equal(t, Port{IP: "0.0.0.0", PrivatePort: 2222, PublicPort: 3333, Type: "tcp"}, got.Ports[0])
	assert.Equal(t, map[string]string{"com.example.vendor": "Acme"}, got.Labels)
	require.Len(t, got.Mounts, 1)
	assert.True(t, got.Mounts[0].RW)
}

func TestMapContainerDefaultsAbsentOptionals(t *testing.T) {
	var wire containerSummaryWire
	require.NoError(t, json.Unmarshal([]byte(`{"Id":"x"}`), &wire))

	got := mapContainer(wire)
	assert.NotNil(t, got.Names)
	assert.Empty(t, got.Names)
	assert.NotNil(t, got.Ports)
	assert.NotNil(t, got.Labels)
	assert.NotNil(t, got.Mounts)
}

func TestMapContainerDetail(t *testing.T) {
	fixture := `{
		"Id": "abc",
		"Name": "/web",
		"Created": "2024-01-01T00:00:00Z",
		"State": {"Status":"running","Running":true,"Pid":42,
			"Health":{"Status":"healthy","FailingStreak":0,"Log":[{"Start":"s","End":"e","ExitCode":0,"Output":"ok"}]}},
		"Config": {"Image":"nginx"},
		"HostConfig": {"NetworkMode":"bridge"},
		"NetworkSettings": {"Networks":{"bridge":{"IPAddress":"172.17.0.2"}}}
	}`
	var wire containerDetailWire
	require.NoError(t, json.Unmarshal([]byte(fixture), &wire))

	got := mapContainerDetail(wire)
	assert.Equal(t, "/web", got.Name)
	assert.True(t, got.State.Running)
	assert.Equal(t, 42, got.State.Pid)
	require.NotNil(t, got.State.Health)
	assert.Equal(t, "healthy", got.State.Health.Status)
	require.Len(t, got.State.Health.Log, 1)
	assert.Equal(t, "nginx", got.Config["Image"])
	assert.Contains(t, got.Networks, "bridge")
}

func TestMapFilesystemChangeKeepsNumericKind(t *testing.T) {
	// 0=Modified, 1=Added, 2=Deleted pass through unchanged.
	for _, kind := range []int{0, 1, 2} {
		got := mapFilesystemChange(filesystemChangeWire{Path: "/etc/passwd", Kind: kind})
		assert.Equal(t, kind, got.Kind)
	}
}

func TestMapImageRoundTrip(t *testing.T) {
	fixture := `{
		"Id": "sha256:aaa",
		"ParentId": "sha256:bbb",
		"RepoTags": ["nginx:latest"],
		"RepoDigests": ["nginx@sha256:ccc"],
		"Created": 1700000000,
		"Size": 187000000,
		"SharedSize": 10,
		"Labels": {"maintainer": "NGINX"},
		"Containers": 3
	}`
	var wire imageSummaryWire
	require.NoError(t, json.Unmarshal([]byte(fixture), &wire))

	got := mapImage(wire)
	assert.Equal(t, "sha256:aaa", got.ID)
	assert.Equal(t, []string{"nginx:latest"}, got.RepoTags)
	assert.Equal(t, int64(187000000), got.Size)
	assert.Equal(t, int64(3), got.Containers)

	// Absent Labels and RepoTags become empty, never null.
	var bare imageSummaryWire
	require.NoError(t, json.Unmarshal([]byte(`{"Id":"sha256:x"}`), &bare))
	mapped := mapImage(bare)
	assert.NotNil(t, mapped.RepoTags)
	assert.NotNil(t, mapped.Labels)

	// Re-serializing keeps normalized lowerCamel names only.
	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"repoTags"`)
	assert.NotContains(t, string(out), `"RepoTags"`)
}

func TestMapNetworkNested(t *testing.T) {
	fixture := `{
		"Id": "net1",
		"Name": "backend",
		"Driver": "bridge",
		"EnableIPv6": true,
		"IPAM": {"Driver":"default","Config":[{"Subnet":"172.20.0.0/16","Gateway":"172.20.0.1"}]},
		"Containers": {"abc": {"Name":"web","IPv4Address":"172.20.0.2/16"}}
	}`
	var wire networkWire
	require.NoError(t, json.Unmarshal([]byte(fixture), &wire))

	got := mapNetwork(wire)
	assert.True(t, got.EnableIPv6)
	assert.Equal(t, "default", got.IPAM.Driver)
	require.Len(t, got.IPAM.Config, 1)
	assert.Equal(t, "172.20.0.0/16", got.IPAM.Config[0].Subnet)
	assert.Equal(t, "web", got.Containers["abc"].Name)

	// No IPAM block yields empty defaults, not nils.
	var bare networkWire
	require.NoError(t, json.Unmarshal([]byte(`{"Id":"net2"}`), &bare))
	mapped := mapNetwork(bare)
	assert.NotNil(t, mapped.IPAM.Config)
	assert.NotNil(t, mapped.Options)
	assert.NotNil(t, mapped.Containers)
}

func TestMapServiceExtractsSummary(t *testing.T) {
	fixture := `{
		"ID": "svc1",
		"Version": {"Index": 11},
		"CreatedAt": "2024-01-01T00:00:00Z",
		"Spec": {
			"Name": "api",
			"TaskTemplate": {"ContainerSpec": {"Image": "nginx:latest"}},
			"Mode": {"Replicated": {"Replicas": 3}}
		}
	}`
	var wire serviceWire
	require.NoError(t, json.Unmarshal([]byte(fixture), &wire))

	got := mapService(wire)
	assert.Equal(t, "svc1", got.ID)
	assert.Equal(t, "api", got.Name)
	assert.Equal(t, "nginx:latest", got.Image)
	assert.Equal(t, "replicated", got.Mode)
	assert.Equal(t, 3, got.Replicas)
	assert.Equal(t, uint64(11), got.Version)
}

func TestMapNodeNested(t *testing.T) {
	fixture := `{
		"ID": "node1",
		"Version": {"Index": 5},
		"Spec": {"Role":"manager","Availability":"active"},
		"Description": {"Hostname":"worker-1","Platform":{"Architecture":"x86_64","OS":"linux"},"Engine":{"EngineVersion":"25.0.1"}},
		"Status": {"State":"ready","Addr":"10.0.0.2"},
		"ManagerStatus": {"Leader":true,"Reachability":"reachable","Addr":"10.0.0.2:2377"}
	}`
	var wire nodeWire
	require.NoError(t, json.Unmarshal([]byte(fixture), &wire))

	got := mapNode(wire)
	assert.Equal(t, "manager", got.Role)
	assert.Equal(t, "worker-1", got.Hostname)
	assert.Equal(t, "linux", got.Os)
	assert.Equal(t, "ready", got.State)
	require.NotNil(t, got.ManagerStatus)
	assert.True(t, got.ManagerStatus.Leader)

	// Absent manager block stays nil; labels default to empty.
	var bare nodeWire
	require.NoError(t, json.Unmarshal([]byte(`{"ID":"node2"}`), &bare))
	mapped := mapNode(bare)
	assert.Nil(t, mapped.ManagerStatus)
	assert.NotNil(t, mapped.Labels)
}

func TestMapHubRepository(t *testing.T) {
	fixture := `{
		"namespace": "alice",
		"name": "tool",
		"description": "a tool",
		"is_private": true,
		"star_count": 7,
		"pull_count": 12345,
		"last_updated": "2024-06-01T10:00:00Z",
		"repository_type": "image"
	}`
	var wire hubRepositoryWire
	require.NoError(t, json.Unmarshal([]byte(fixture), &wire))

	got := mapHubRepository(wire)
	assert.Equal(t, "alice", got.Namespace)
	assert.True(t, got.IsPrivate)
	assert.Equal(t, int64(12345), got.PullCount)
	assert.Equal(t, "image", got.RepositoryType)
}

func TestMapHubTagNested(t *testing.T) {
	fixture := `{
		"name": "1.27",
		"full_size": 67000000,
		"last_updated": "2024-06-01T10:00:00Z",
		"last_updater_username": "bot",
		"digest": "sha256:abc",
		"tag_status": "active",
		"images": [{"architecture":"amd64","os":"linux","size":67000000,"digest":"sha256:def"}]
	}`
	var wire hubTagWire
	require.NoError(t, json.Unmarshal([]byte(fixture), &wire))

	got := mapHubTag(wire)
	assert.Equal(t, "1.27", got.Name)
	assert.Equal(t, "bot", got.LastUpdater)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "amd64", got.Images[0].Architecture)

	var bare hubTagWire
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x"}`), &bare))
	assert.NotNil(t, mapHubTag(bare).Images)
}

func TestMapHubPageCursor(t *testing.T) {
	next := "https://hub.docker.com/v2/whatever?page=5"
	wire := hubPageWire[hubTagWire]{Count: 100, Next: &next, Results: []hubTagWire{{Name: "a"}}}

	page := mapHubPage(wire, 4, 25, mapHubTag)
	assert.Equal(t, 100, page.Total)
	assert.True(t, page.HasMore)
	assert.Equal(t, 5, page.NextPage)

	wire.Next = nil
	page = mapHubPage(wire, 4, 25, mapHubTag)
	assert.False(t, page.HasMore)
	assert.Zero(t, page.NextPage)
}
