package docker

// Normalized entity model. Every entity is constructed by a mapper right
// after a successful decode, uses lowerCamel field naming regardless of
// the upstream wire casing, and is never mutated afterwards. Optional
// upstream fields absent from a response become empty slices, empty maps,
// or false — never null.

// Container is a summary entry from a container listing. Names keep their
// upstream leading slash; stripping is a formatter concern.
type Container struct {
	ID         string            `json:"id"`
	Names      []string          `json:"names"`
	Image      string            `json:"image"`
	ImageID    string            `json:"imageId"`
	Command    string            `json:"command"`
	Created    int64             `json:"created"`
	State      string            `json:"state"`
	Status     string            `json:"status"`
	Ports      []Port            `json:"ports"`
	Labels     map[string]string `json:"labels"`
	SizeRw     int64             `json:"sizeRw,omitempty"`
	SizeRootFs int64             `json:"sizeRootFs,omitempty"`
	Mounts     []MountPoint      `json:"mounts"`
}

// Port is one published or exposed container port.
type Port struct {
	IP          string `json:"ip,omitempty"`
	PrivatePort int    `json:"privatePort"`
	PublicPort  int    `json:"publicPort,omitempty"`
	Type        string `json:"type"`
}

// MountPoint is one mounted filesystem inside a container.
type MountPoint struct {
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Driver      string `json:"driver,omitempty"`
	Mode        string `json:"mode"`
	RW          bool   `json:"rw"`
	Propagation string `json:"propagation,omitempty"`
}

// ContainerState is the running-state block of a container inspection.
type ContainerState struct {
	Status     string       `json:"status"`
	Running    bool         `json:"running"`
	Paused     bool         `json:"paused"`
	Restarting bool         `json:"restarting"`
	OOMKilled  bool         `json:"oomKilled"`
	Dead       bool         `json:"dead"`
	Pid        int          `json:"pid"`
	ExitCode   int          `json:"exitCode"`
	Error      string       `json:"error"`
	StartedAt  string       `json:"startedAt"`
	FinishedAt string       `json:"finishedAt"`
	Health     *HealthState `json:"health,omitempty"`
}

// HealthState summarizes a container health check.
type HealthState struct {
	Status        string           `json:"status"`
	FailingStreak int              `json:"failingStreak"`
	Log           []HealthLogEntry `json:"log"`
}

// HealthLogEntry is one health-probe execution.
type HealthLogEntry struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	ExitCode int    `json:"exitCode"`
	Output   string `json:"output"`
}

// ContainerDetail is a full container inspection. The upstream Config and
// HostConfig sub-objects are version-dependent and kept as decoded JSON.
type ContainerDetail struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Created      string         `json:"created"`
	Path         string         `json:"path"`
	Args         []string       `json:"args"`
	State        ContainerState `json:"state"`
	Image        string         `json:"image"`
	RestartCount int            `json:"restartCount"`
	Driver       string         `json:"driver"`
	Platform     string         `json:"platform"`
	Mounts       []MountPoint   `json:"mounts"`
	Config       map[string]any `json:"config"`
	HostConfig   map[string]any `json:"hostConfig"`
	Networks     map[string]any `json:"networks"`
}

// FilesystemChange is one changed path from a container diff. Kind keeps
// the upstream numeric code: 0=Modified, 1=Added, 2=Deleted.
type FilesystemChange struct {
	Path string `json:"path"`
	Kind int    `json:"kind"`
}

// ProcessList is the output of a container top call.
type ProcessList struct {
	Titles    []string   `json:"titles"`
	Processes [][]string `json:"processes"`
}

// WaitResult is the exit report from a container wait call.
type WaitResult struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error,omitempty"`
}

// UpdateWarnings carries warnings from a container update.
type UpdateWarnings struct {
	Warnings []string `json:"warnings"`
}

// ExecDetail is an exec session inspection.
type ExecDetail struct {
	ID            string         `json:"id"`
	ContainerID   string         `json:"containerId"`
	Running       bool           `json:"running"`
	ExitCode      int            `json:"exitCode"`
	Pid           int            `json:"pid"`
	OpenStdin     bool           `json:"openStdin"`
	OpenStdout    bool           `json:"openStdout"`
	OpenStderr    bool           `json:"openStderr"`
	ProcessConfig map[string]any `json:"processConfig"`
}

// PruneReport summarizes a prune operation on any resource type.
type PruneReport struct {
	Deleted        []string `json:"deleted"`
	SpaceReclaimed int64    `json:"spaceReclaimed"`
}

// Image is a summary entry from an image listing.
type Image struct {
	ID          string            `json:"id"`
	ParentID    string            `json:"parentId"`
	RepoTags    []string          `json:"repoTags"`
	RepoDigests []string          `json:"repoDigests"`
	Created     int64             `json:"created"`
	Size        int64             `json:"size"`
	SharedSize  int64             `json:"sharedSize"`
	Labels      map[string]string `json:"labels"`
	Containers  int64             `json:"containers"`
}

// ImageDetail is a full image inspection.
type ImageDetail struct {
	ID           string         `json:"id"`
	RepoTags     []string       `json:"repoTags"`
	RepoDigests  []string       `json:"repoDigests"`
	Parent       string         `json:"parent"`
	Comment      string         `json:"comment"`
	Created      string         `json:"created"`
	Author       string         `json:"author"`
	Architecture string         `json:"architecture"`
	Os           string         `json:"os"`
	Size         int64          `json:"size"`
	Config       map[string]any `json:"config"`
	RootFS       map[string]any `json:"rootFs"`
}

// ImageHistoryEntry is one layer from an image history.
type ImageHistoryEntry struct {
	ID        string   `json:"id"`
	Created   int64    `json:"created"`
	CreatedBy string   `json:"createdBy"`
	Tags      []string `json:"tags"`
	Size      int64    `json:"size"`
	Comment   string   `json:"comment"`
}

// SearchResult is one registry search hit.
type SearchResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StarCount   int    `json:"starCount"`
	IsOfficial  bool   `json:"isOfficial"`
	IsAutomated bool   `json:"isAutomated"`
}

// Network is a network listing entry or inspection.
type Network struct {
	ID         string                     `json:"id"`
	Name       string                     `json:"name"`
	Created    string                     `json:"created"`
	Scope      string                     `json:"scope"`
	Driver     string                     `json:"driver"`
	EnableIPv6 bool                       `json:"enableIPv6"`
	Internal   bool                       `json:"internal"`
	Attachable bool                       `json:"attachable"`
	Ingress    bool                       `json:"ingress"`
	IPAM       IPAM                       `json:"ipam"`
	Options    map[string]string          `json:"options"`
	Labels     map[string]string          `json:"labels"`
	Containers map[string]NetworkEndpoint `json:"containers"`
}

// IPAM is a network's address-management configuration.
type IPAM struct {
	Driver  string            `json:"driver"`
	Options map[string]string `json:"options"`
	Config  []IPAMConfig      `json:"config"`
}

// IPAMConfig is one IPAM pool.
type IPAMConfig struct {
	Subnet       string            `json:"subnet,omitempty"`
	IPRange      string            `json:"ipRange,omitempty"`
	Gateway      string            `json:"gateway,omitempty"`
	AuxAddresses map[string]string `json:"auxAddresses,omitempty"`
}

// NetworkEndpoint is one container attached to a network.
type NetworkEndpoint struct {
	Name        string `json:"name"`
	EndpointID  string `json:"endpointId"`
	MacAddress  string `json:"macAddress"`
	IPv4Address string `json:"ipv4Address"`
	IPv6Address string `json:"ipv6Address"`
}

// Volume is a volume listing entry or inspection.
type Volume struct {
	Name       string            `json:"name"`
	Driver     string            `json:"driver"`
	Mountpoint string            `json:"mountpoint"`
	CreatedAt  string            `json:"createdAt"`
	Scope      string            `json:"scope"`
	Status     map[string]any    `json:"status"`
	Labels     map[string]string `json:"labels"`
	Options    map[string]string `json:"options"`
	UsageData  *VolumeUsage      `json:"usageData,omitempty"`
}

// VolumeUsage is disk-usage data for a volume, present only in df output.
type VolumeUsage struct {
	Size     int64 `json:"size"`
	RefCount int64 `json:"refCount"`
}

// Service is a swarm service. Spec and Endpoint keep the upstream shape:
// the swarm spec schema is large and version-dependent.
type Service struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Image     string         `json:"image"`
	Mode      string         `json:"mode"`
	Replicas  int            `json:"replicas"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
	Version   uint64         `json:"version"`
	Spec      map[string]any `json:"spec"`
	Endpoint  map[string]any `json:"endpoint"`
}

// Task is one swarm task.
type Task struct {
	ID           string         `json:"id"`
	ServiceID    string         `json:"serviceId"`
	NodeID       string         `json:"nodeId"`
	Slot         int            `json:"slot"`
	CreatedAt    string         `json:"createdAt"`
	UpdatedAt    string         `json:"updatedAt"`
	State        string         `json:"state"`
	DesiredState string         `json:"desiredState"`
	Message      string         `json:"message"`
	Error        string         `json:"error,omitempty"`
	Spec         map[string]any `json:"spec"`
}

// Node is one swarm node.
type Node struct {
	ID            string            `json:"id"`
	Hostname      string            `json:"hostname"`
	Role          string            `json:"role"`
	Availability  string            `json:"availability"`
	State         string            `json:"state"`
	Addr          string            `json:"addr"`
	ManagerStatus *ManagerStatus    `json:"managerStatus,omitempty"`
	EngineVersion string            `json:"engineVersion"`
	Architecture  string            `json:"architecture"`
	Os            string            `json:"os"`
	Labels        map[string]string `json:"labels"`
	Version       uint64            `json:"version"`
}

// ManagerStatus is the manager block of a swarm node.
type ManagerStatus struct {
	Leader       bool   `json:"leader"`
	Reachability string `json:"reachability"`
	Addr         string `json:"addr"`
}

// Secret is a swarm secret (metadata only; payloads are never returned by
// the engine).
type Secret struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
	Labels    map[string]string `json:"labels"`
	Version   uint64            `json:"version"`
}

// Config is a swarm config. Data is the base64 payload the engine returns
// on inspection.
type Config struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
	Labels    map[string]string `json:"labels"`
	Version   uint64            `json:"version"`
	Data      string            `json:"data,omitempty"`
}

// Plugin is an installed engine plugin. Settings and Config keep the
// upstream shape.
type Plugin struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Enabled         bool           `json:"enabled"`
	PluginReference string         `json:"pluginReference"`
	Settings        map[string]any `json:"settings"`
	Config          map[string]any `json:"config"`
}

// PluginPrivilege is one privilege a plugin requests at install time.
type PluginPrivilege struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Value       []string `json:"value"`
}

// CommitResult is the image id produced by a container commit.
type CommitResult struct {
	ID string `json:"id"`
}

// ExecCreated is the exec session id produced by an exec create.
type ExecCreated struct {
	ID string `json:"id"`
}

// CreatedResource is the generic id+warning reply from create endpoints.
type CreatedResource struct {
	ID       string   `json:"id"`
	Warnings []string `json:"warnings"`
}

// Page wraps one page of a hub listing. NextPage is synthesized locally
// from the requested page number; the upstream next-URL is never passed
// through.
type Page[T any] struct {
	Total    int  `json:"total"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	HasMore  bool `json:"hasMore"`
	NextPage int  `json:"nextPage,omitempty"`
	Items    []T  `json:"items"`
}

// HubRepository is a Docker Hub repository.
type HubRepository struct {
	Namespace      string `json:"namespace"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	IsPrivate      bool   `json:"isPrivate"`
	StarCount      int    `json:"starCount"`
	PullCount      int64  `json:"pullCount"`
	LastUpdated    string `json:"lastUpdated"`
	RepositoryType string `json:"repositoryType"`
	Status         int    `json:"status"`
}

// HubTag is one tag of a hub repository.
type HubTag struct {
	Name        string        `json:"name"`
	FullSize    int64         `json:"fullSize"`
	LastUpdated string        `json:"lastUpdated"`
	LastUpdater string        `json:"lastUpdater"`
	Digest      string        `json:"digest"`
	Status      string        `json:"status"`
	Images      []HubTagImage `json:"images"`
}

// HubTagImage is one per-platform image behind a tag.
type HubTagImage struct {
	Architecture string `json:"architecture"`
	Os           string `json:"os"`
	Variant      string `json:"variant,omitempty"`
	Size         int64  `json:"size"`
	Digest       string `json:"digest"`
}

// HubWebhook is one repository webhook.
type HubWebhook struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	HookURL   string `json:"hookUrl"`
	CreatedAt string `json:"createdAt"`
}

// HubBuild is one automated-build history entry.
type HubBuild struct {
	BuildCode string `json:"buildCode"`
	Status    string `json:"status"`
	Tag       string `json:"tag"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// HubBuildSettings is a repository's automated-build configuration.
type HubBuildSettings struct {
	RepoWebURL string         `json:"repoWebUrl"`
	Provider   string         `json:"provider"`
	SourceURL  string         `json:"sourceUrl"`
	BuildName  string         `json:"buildName"`
	Autotests  string         `json:"autotests"`
	Raw        map[string]any `json:"raw,omitempty"`
}
