package docker

// Upstream wire shapes. Engine responses use the REST API's capitalized
// field names; hub responses use snake_case. These types exist only long
// enough to be mapped into the normalized model.

type containerSummaryWire struct {
	ID         string            `json:"Id"`
	Names      []string          `json:"Names"`
	Image      string            `json:"Image"`
	ImageID    string            `json:"ImageID"`
	Command    string            `json:"Command"`
	Created    int64             `json:"Created"`
	State      string            `json:"State"`
	Status     string            `json:"Status"`
	Ports      []portWire        `json:"Ports"`
	Labels     map[string]string `json:"Labels"`
	SizeRw     int64             `json:"SizeRw"`
	SizeRootFs int64             `json:"SizeRootFs"`
	Mounts     []mountPointWire  `json:"Mounts"`
}

type portWire struct {
	IP          string `json:"IP"`
	PrivatePort int    `json:"PrivatePort"`
	PublicPort  int    `json:"PublicPort"`
	Type        string `json:"Type"`
}

type mountPointWire struct {
	Type        string `json:"Type"`
	Name        string `json:"Name"`
	Source      string `json:"Source"`
	Destination string `json:"Destination"`
	Driver      string `json:"Driver"`
	Mode        string `json:"Mode"`
	RW          bool   `json:"RW"`
	Propagation string `json:"Propagation"`
}

type containerDetailWire struct {
	ID              string              `json:"Id"`
	Name            string              `json:"Name"`
	Created         string              `json:"Created"`
	Path            string              `json:"Path"`
	Args            []string            `json:"Args"`
	State           *containerStateWire `json:"State"`
	Image           string              `json:"Image"`
	RestartCount    int                 `json:"RestartCount"`
	Driver          string              `json:"Driver"`
	Platform        string              `json:"Platform"`
	Mounts          []mountPointWire    `json:"Mounts"`
	Config          map[string]any      `json:"Config"`
	HostConfig      map[string]any      `json:"HostConfig"`
	NetworkSettings *struct {
		Networks map[string]any `json:"Networks"`
	} `json:"NetworkSettings"`
}

type containerStateWire struct {
	Status     string           `json:"Status"`
	Running    bool             `json:"Running"`
	Paused     bool             `json:"Paused"`
	Restarting bool             `json:"Restarting"`
	OOMKilled  bool             `json:"OOMKilled"`
	Dead       bool             `json:"Dead"`
	Pid        int              `json:"Pid"`
	ExitCode   int              `json:"ExitCode"`
	Error      string           `json:"Error"`
	StartedAt  string           `json:"StartedAt"`
	FinishedAt string           `json:"FinishedAt"`
	Health     *healthStateWire `json:"Health"`
}

type healthStateWire struct {
	Status        string               `json:"Status"`
	FailingStreak int                  `json:"FailingStreak"`
	Log           []healthLogEntryWire `json:"Log"`
}

type healthLogEntryWire struct {
	Start    string `json:"Start"`
	End      string `json:"End"`
	ExitCode int    `json:"ExitCode"`
	Output   string `json:"Output"`
}

type filesystemChangeWire struct {
	Path string `json:"Path"`
	Kind int    `json:"Kind"`
}

type processListWire struct {
	Titles    []string   `json:"Titles"`
	Processes [][]string `json:"Processes"`
}

type waitResultWire struct {
	StatusCode int `json:"StatusCode"`
	Error      *struct {
		Message string `json:"Message"`
	} `json:"Error"`
}

type updateWarningsWire struct {
	Warnings []string `json:"Warnings"`
}

type execCreatedWire struct {
	ID string `json:"Id"`
}

type execDetailWire struct {
	ID            string         `json:"ID"`
	ContainerID   string         `json:"ContainerID"`
	Running       bool           `json:"Running"`
	ExitCode      int            `json:"ExitCode"`
	Pid           int            `json:"Pid"`
	OpenStdin     bool           `json:"OpenStdin"`
	OpenStdout    bool           `json:"OpenStdout"`
	OpenStderr    bool           `json:"OpenStderr"`
	ProcessConfig map[string]any `json:"ProcessConfig"`
}

type commitResultWire struct {
	ID string `json:"Id"`
}

type createdResourceWire struct {
	ID       string   `json:"Id"`
	Warnings []string `json:"Warnings"`
}

type containerPruneWire struct {
	ContainersDeleted []string `json:"ContainersDeleted"`
	SpaceReclaimed    int64    `json:"SpaceReclaimed"`
}

type imageSummaryWire struct {
	ID          string            `json:"Id"`
	ParentID    string            `json:"ParentId"`
	RepoTags    []string          `json:"RepoTags"`
	RepoDigests []string          `json:"RepoDigests"`
	Created     int64             `json:"Created"`
	Size        int64             `json:"Size"`
	SharedSize  int64             `json:"SharedSize"`
	Labels      map[string]string `json:"Labels"`
	Containers  int64             `json:"Containers"`
}

type imageDetailWire struct {
	ID           string         `json:"Id"`
	RepoTags     []string       `json:"RepoTags"`
	RepoDigests  []string       `json:"RepoDigests"`
	Parent       string         `json:"Parent"`
	Comment      string         `json:"Comment"`
	Created      string         `json:"Created"`
	Author       string         `json:"Author"`
	Architecture string         `json:"Architecture"`
	Os           string         `json:"Os"`
	Size         int64          `json:"Size"`
	Config       map[string]any `json:"Config"`
	RootFS       map[string]any `json:"RootFS"`
}

type imageHistoryWire struct {
	ID        string   `json:"Id"`
	Created   int64    `json:"Created"`
	CreatedBy string   `json:"CreatedBy"`
	Tags      []string `json:"Tags"`
	Size      int64    `json:"Size"`
	Comment   string   `json:"Comment"`
}

type imageDeleteWire struct {
	Untagged string `json:"Untagged"`
	Deleted  string `json:"Deleted"`
}

type imagePruneWire struct {
	ImagesDeleted  []imageDeleteWire `json:"ImagesDeleted"`
	SpaceReclaimed int64             `json:"SpaceReclaimed"`
}

type searchResultWire struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StarCount   int    `json:"star_count"`
	IsOfficial  bool   `json:"is_official"`
	IsAutomated bool   `json:"is_automated"`
}

type networkWire struct {
	ID         string                         `json:"Id"`
	Name       string                         `json:"Name"`
	Created    string                         `json:"Created"`
	Scope      string                         `json:"Scope"`
	Driver     string                         `json:"Driver"`
	EnableIPv6 bool                           `json:"EnableIPv6"`
	Internal   bool                           `json:"Internal"`
	Attachable bool                           `json:"Attachable"`
	Ingress    bool                           `json:"Ingress"`
	IPAM       *ipamWire                      `json:"IPAM"`
	Options    map[string]string              `json:"Options"`
	Labels     map[string]string              `json:"Labels"`
	Containers map[string]networkEndpointWire `json:"Containers"`
}

type ipamWire struct {
	Driver  string            `json:"Driver"`
	Options map[string]string `json:"Options"`
	Config  []ipamConfigWire  `json:"Config"`
}

type ipamConfigWire struct {
	Subnet       string            `json:"Subnet"`
	IPRange      string            `json:"IPRange"`
	Gateway      string            `json:"Gateway"`
	AuxAddresses map[string]string `json:"AuxiliaryAddresses"`
}

type networkEndpointWire struct {
	Name        string `json:"Name"`
	EndpointID  string `json:"EndpointID"`
	MacAddress  string `json:"MacAddress"`
	IPv4Address string `json:"IPv4Address"`
	IPv6Address string `json:"IPv6Address"`
}

type networkCreateWire struct {
	ID      string `json:"Id"`
	Warning string `json:"Warning"`
}

type networkPruneWire struct {
	NetworksDeleted []string `json:"NetworksDeleted"`
}

type volumeWire struct {
	Name       string            `json:"Name"`
	Driver     string            `json:"Driver"`
	Mountpoint string            `json:"Mountpoint"`
	CreatedAt  string            `json:"CreatedAt"`
	Scope      string            `json:"Scope"`
	Status     map[string]any    `json:"Status"`
	Labels     map[string]string `json:"Labels"`
	Options    map[string]string `json:"Options"`
	UsageData  *struct {
		Size     int64 `json:"Size"`
		RefCount int64 `json:"RefCount"`
	} `json:"UsageData"`
}

type volumeListWire struct {
	Volumes  []volumeWire `json:"Volumes"`
	Warnings []string     `json:"Warnings"`
}

type volumePruneWire struct {
	VolumesDeleted []string `json:"VolumesDeleted"`
	SpaceReclaimed int64    `json:"SpaceReclaimed"`
}

type versionMetaWire struct {
	Index uint64 `json:"Index"`
}

type serviceWire struct {
	ID        string          `json:"ID"`
	Version   versionMetaWire `json:"Version"`
	CreatedAt string          `json:"CreatedAt"`
	UpdatedAt string          `json:"UpdatedAt"`
	Spec      map[string]any  `json:"Spec"`
	Endpoint  map[string]any  `json:"Endpoint"`
}

type taskWire struct {
	ID           string          `json:"ID"`
	Version      versionMetaWire `json:"Version"`
	CreatedAt    string          `json:"CreatedAt"`
	UpdatedAt    string          `json:"UpdatedAt"`
	ServiceID    string          `json:"ServiceID"`
	NodeID       string          `json:"NodeID"`
	Slot         int             `json:"Slot"`
	DesiredState string          `json:"DesiredState"`
	Spec         map[string]any  `json:"Spec"`
	Status       *struct {
		State   string `json:"State"`
		Message string `json:"Message"`
		Err     string `json:"Err"`
	} `json:"Status"`
}

type nodeWire struct {
	ID      string          `json:"ID"`
	Version versionMetaWire `json:"Version"`
	Spec    *struct {
		Role         string            `json:"Role"`
		Availability string            `json:"Availability"`
		Labels       map[string]string `json:"Labels"`
	} `json:"Spec"`
	Description *struct {
		Hostname string `json:"Hostname"`
		Platform *struct {
			Architecture string `json:"Architecture"`
			OS           string `json:"OS"`
		} `json:"Platform"`
		Engine *struct {
			EngineVersion string `json:"EngineVersion"`
		} `json:"Engine"`
	} `json:"Description"`
	Status *struct {
		State string `json:"State"`
		Addr  string `json:"Addr"`
	} `json:"Status"`
	ManagerStatus *struct {
		Leader       bool   `json:"Leader"`
		Reachability string `json:"Reachability"`
		Addr         string `json:"Addr"`
	} `json:"ManagerStatus"`
}

type secretWire struct {
	ID        string          `json:"ID"`
	Version   versionMetaWire `json:"Version"`
	CreatedAt string          `json:"CreatedAt"`
	UpdatedAt string          `json:"UpdatedAt"`
	Spec      *struct {
		Name   string            `json:"Name"`
		Labels map[string]string `json:"Labels"`
		Data   string            `json:"Data"`
	} `json:"Spec"`
}

type idWire struct {
	ID string `json:"ID"`
}

type pluginWire struct {
	ID              string         `json:"Id"`
	Name            string         `json:"Name"`
	Enabled         bool           `json:"Enabled"`
	PluginReference string         `json:"PluginReference"`
	Settings        map[string]any `json:"Settings"`
	Config          map[string]any `json:"Config"`
}

type pluginPrivilegeWire struct {
	Name        string   `json:"Name"`
	Description string   `json:"Description"`
	Value       []string `json:"Value"`
}

// Hub wire shapes (snake_case).

type hubPageWire[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type hubRepositoryWire struct {
	Namespace      string `json:"namespace"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	IsPrivate      bool   `json:"is_private"`
	StarCount      int    `json:"star_count"`
	PullCount      int64  `json:"pull_count"`
	LastUpdated    string `json:"last_updated"`
	RepositoryType string `json:"repository_type"`
	Status         int    `json:"status"`
}

type hubTagWire struct {
	Name        string            `json:"name"`
	FullSize    int64             `json:"full_size"`
	LastUpdated string            `json:"last_updated"`
	LastUpdater string            `json:"last_updater_username"`
	Digest      string            `json:"digest"`
	TagStatus   string            `json:"tag_status"`
	Images      []hubTagImageWire `json:"images"`
}

type hubTagImageWire struct {
	Architecture string `json:"architecture"`
	Os           string `json:"os"`
	Variant      string `json:"variant"`
	Size         int64  `json:"size"`
	Digest       string `json:"digest"`
}

type hubWebhookWire struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	HookURL string `json:"hook_url"`
	Created string `json:"created"`
}

type hubBuildWire struct {
	BuildCode string `json:"build_code"`
	Status    string `json:"state"`
	Tag       string `json:"docker_tag"`
	CreatedAt string `json:"created_date"`
	UpdatedAt string `json:"last_updated"`
}

type hubBuildSettingsWire struct {
	RepoWebURL string         `json:"repo_web_url"`
	Provider   string         `json:"provider"`
	SourceURL  string         `json:"source_url"`
	BuildName  string         `json:"build_name"`
	Autotests  string         `json:"autotests"`
	Extra      map[string]any `json:"-"`
}

type hubLoginWire struct {
	Token string `json:"token"`
}
