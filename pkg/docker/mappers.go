package docker

// Entity mappers: pure wire-to-normalized transforms. Each substitutes a
// defined default for any absent optional field (empty slice, empty map,
// false) and does nothing else beyond renaming. Mappers never perform I/O
// and never fail.

func strsOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func strMapOrEmpty(in map[string]string) map[string]string {
	if in == nil {
		return map[string]string{}
	}
	return in
}

func anyMapOrEmpty(in map[string]any) map[string]any {
	if in == nil {
		return map[string]any{}
	}
	return in
}

func mapContainer(w containerSummaryWire) Container {
	ports := make([]Port, 0, len(w.Ports))
	for _, p := range w.Ports {
		ports = append(ports, Port{
			IP:          p.IP,
			PrivatePort: p.PrivatePort,
			PublicPort:  p.PublicPort,
			Type:        p.Type,
		})
	}
	return Container{
		ID:         w.ID,
		Names:      strsOrEmpty(w.Names),
		Image:      w.Image,
		ImageID:    w.ImageID,
		Command:    w.Command,
		Created:    w.Created,
		State:      w.State,
		Status:     w.Status,
		Ports:      ports,
		Labels:     strMapOrEmpty(w.Labels),
		SizeRw:     w.SizeRw,
		SizeRootFs: w.SizeRootFs,
		Mounts:     mapMounts(w.Mounts),
	}
}

func mapMounts(in []mountPointWire) []MountPoint {
	out := make([]MountPoint, 0, len(in))
	for _, m := range in {
		out = append(out, MountPoint{
			Type:        m.Type,
			Name:        m.Name,
			Source:      m.Source,
			Destination: m.Destination,
			Driver:      m.Driver,
			Mode:        m.Mode,
			RW:          m.RW,
			Propagation: m.Propagation,
		})
	}
	return out
}

func mapContainerDetail(w containerDetailWire) ContainerDetail {
	detail := ContainerDetail{
		ID:           w.ID,
		Name:         w.Name,
		Created:      w.Created,
		Path:         w.Path,
		Args:         strsOrEmpty(w.Args),
		Image:        w.Image,
		RestartCount: w.RestartCount,
		Driver:       w.Driver,
		Platform:     w.Platform,
		Mounts:       mapMounts(w.Mounts),
		Config:       anyMapOrEmpty(w.Config),
		HostConfig:   anyMapOrEmpty(w.HostConfig),
		Networks:     map[string]any{},
	}
	if w.State != nil {
		detail.State = mapContainerState(*w.State)
	}
	if w.NetworkSettings != nil {
		detail.Networks = anyMapOrEmpty(w.NetworkSettings.Networks)
	}
	return detail
}

func mapContainerState(w containerStateWire) ContainerState {
	state := ContainerState{
		Status:     w.Status,
		Running:    w.Running,
		Paused:     w.Paused,
		Restarting: w.Restarting,
		OOMKilled:  w.OOMKilled,
		Dead:       w.Dead,
		Pid:        w.Pid,
		ExitCode:   w.ExitCode,
		Error:      w.Error,
		StartedAt:  w.StartedAt,
		FinishedAt: w.FinishedAt,
	}
	if w.Health != nil {
		log := make([]HealthLogEntry, 0, len(w.Health.Log))
		for _, entry := range w.Health.Log {
			log = append(log, HealthLogEntry{
				Start:    entry.Start,
				End:      entry.End,
				ExitCode: entry.ExitCode,
				Output:   entry.Output,
			})
		}
		state.Health = &HealthState{
			Status:        w.Health.Status,
			FailingStreak: w.Health.FailingStreak,
			Log:           log,
		}
	}
	return state
}

// mapFilesystemChange keeps the numeric kind code unchanged:
// 0=Modified, 1=Added, 2=Deleted.
func mapFilesystemChange(w filesystemChangeWire) FilesystemChange {
	return FilesystemChange{Path: w.Path, Kind: w.Kind}
}

func mapProcessList(w processListWire) ProcessList {
	procs := w.Processes
	if procs == nil {
		procs = [][]string{}
	}
	return ProcessList{Titles: strsOrEmpty(w.Titles), Processes: procs}
}

func mapWaitResult(w waitResultWire) WaitResult {
	out := WaitResult{StatusCode: w.StatusCode}
	if w.Error != nil {
		out.Error = w.Error.Message
	}
	return out
}

func mapExecDetail(w execDetailWire) ExecDetail {
	return ExecDetail{
		ID:            w.ID,
		ContainerID:   w.ContainerID,
		Running:       w.Running,
		ExitCode:      w.ExitCode,
		Pid:           w.Pid,
		OpenStdin:     w.OpenStdin,
		OpenStdout:    w.OpenStdout,
		OpenStderr:    w.OpenStderr,
		ProcessConfig: anyMapOrEmpty(w.ProcessConfig),
	}
}

func mapImage(w imageSummaryWire) Image {
	return Image{
		ID:          w.ID,
		ParentID:    w.ParentID,
		RepoTags:    strsOrEmpty(w.RepoTags),
		RepoDigests: strsOrEmpty(w.RepoDigests),
		Created:     w.Created,
		Size:        w.Size,
		SharedSize:  w.SharedSize,
		Labels:      strMapOrEmpty(w.Labels),
		Containers:  w.Containers,
	}
}

func mapImageDetail(w imageDetailWire) ImageDetail {
	return ImageDetail{
		ID:           w.ID,
		RepoTags:     strsOrEmpty(w.RepoTags),
		RepoDigests:  strsOrEmpty(w.RepoDigests),
		Parent:       w.Parent,
		Comment:      w.Comment,
		Created:      w.Created,
		Author:       w.Author,
		Architecture: w.Architecture,
		Os:           w.Os,
		Size:         w.Size,
		Config:       anyMapOrEmpty(w.Config),
		RootFS:       anyMapOrEmpty(w.RootFS),
	}
}

func mapImageHistory(w imageHistoryWire) ImageHistoryEntry {
	return ImageHistoryEntry{
		ID:        w.ID,
		Created:   w.Created,
		CreatedBy: w.CreatedBy,
		Tags:      strsOrEmpty(w.Tags),
		Size:      w.Size,
		Comment:   w.Comment,
	}
}

func mapSearchResult(w searchResultWire) SearchResult {
	return SearchResult{
		Name:        w.Name,
		Description: w.Description,
		StarCount:   w.StarCount,
		IsOfficial:  w.IsOfficial,
		IsAutomated: w.IsAutomated,
	}
}

func mapNetwork(w networkWire) Network {
	containers := map[string]NetworkEndpoint{}
	for id, ep := range w.Containers {
		containers[id] = NetworkEndpoint{
			Name:        ep.Name,
			EndpointID:  ep.EndpointID,
			MacAddress:  ep.MacAddress,
			IPv4Address: ep.IPv4Address,
			IPv6Address: ep.IPv6Address,
		}
	}
	net := Network{
		ID:         w.ID,
		Name:       w.Name,
		Created:    w.Created,
		Scope:      w.Scope,
		Driver:     w.Driver,
		EnableIPv6: w.EnableIPv6,
		Internal:   w.Internal,
		Attachable: w.Attachable,
		Ingress:    w.Ingress,
		IPAM:       IPAM{Options: map[string]string{}, Config: []IPAMConfig{}},
		Options:    strMapOrEmpty(w.Options),
		Labels:     strMapOrEmpty(w.Labels),
		Containers: containers,
	}
	if w.IPAM != nil {
		cfg := make([]IPAMConfig, 0, len(w.IPAM.Config))
		for _, c := range w.IPAM.Config {
			cfg = append(cfg, IPAMConfig{
				Subnet:       c.Subnet,
				IPRange:      c.IPRange,
				Gateway:      c.Gateway,
				AuxAddresses: c.AuxAddresses,
			})
		}
		net.IPAM = IPAM{
			Driver:  w.IPAM.Driver,
			Options: strMapOrEmpty(w.IPAM.Options),
			Config:  cfg,
		}
	}
	return net
}

func mapVolume(w volumeWire) Volume {
	vol := Volume{
		Name:       w.Name,
		Driver:     w.Driver,
		Mountpoint: w.Mountpoint,
		CreatedAt:  w.CreatedAt,
		Scope:      w.Scope,
		Status:     anyMapOrEmpty(w.Status),
		Labels:     strMapOrEmpty(w.Labels),
		Options:    strMapOrEmpty(w.Options),
	}
	if w.UsageData != nil {
		vol.UsageData = &VolumeUsage{Size: w.UsageData.Size, RefCount: w.UsageData.RefCount}
	}
	return vol
}

func mapService(w serviceWire) Service {
	svc := Service{
		ID:        w.ID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		Version:   w.Version.Index,
		Spec:      anyMapOrEmpty(w.Spec),
		Endpoint:  anyMapOrEmpty(w.Endpoint),
	}
	if name, ok := svc.Spec["Name"].(string); ok {
		svc.Name = name
	}
	if taskTemplate, ok := svc.Spec["TaskTemplate"].(map[string]any); ok {
		if containerSpec, ok := taskTemplate["ContainerSpec"].(map[string]any); ok {
			if image, ok := containerSpec["Image"].(string); ok {
				svc.Image = image
			}
		}
	}
	if mode, ok := svc.Spec["Mode"].(map[string]any); ok {
		if replicated, ok := mode["Replicated"].(map[string]any); ok {
			svc.Mode = "replicated"
			if replicas, ok := replicated["Replicas"].(float64); ok {
				svc.Replicas = int(replicas)
			}
		} else if _, ok := mode["Global"]; ok {
			svc.Mode = "global"
		}
	}
	return svc
}

func mapTask(w taskWire) Task {
	task := Task{
		ID:           w.ID,
		ServiceID:    w.ServiceID,
		NodeID:       w.NodeID,
		Slot:         w.Slot,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
		DesiredState: w.DesiredState,
		Spec:         anyMapOrEmpty(w.Spec),
	}
	if w.Status != nil {
		task.State = w.Status.State
		task.Message = w.Status.Message
		task.Error = w.Status.Err
	}
	return task
}

func mapNode(w nodeWire) Node {
	node := Node{
		ID:      w.ID,
		Version: w.Version.Index,
		Labels:  map[string]string{},
	}
	if w.Spec != nil {
		node.Role = w.Spec.Role
		node.Availability = w.Spec.Availability
		node.Labels = strMapOrEmpty(w.Spec.Labels)
	}
	if w.Description != nil {
		node.Hostname = w.Description.Hostname
		if w.Description.Platform != nil {
			node.Architecture = w.Description.Platform.Architecture
			node.Os = w.Description.Platform.OS
		}
		if w.Description.Engine != nil {
			node.EngineVersion = w.Description.Engine.EngineVersion
		}
	}
	if w.Status != nil {
		node.State = w.Status.State
		node.Addr = w.Status.Addr
	}
	if w.ManagerStatus != nil {
		node.ManagerStatus = &ManagerStatus{
			Leader:       w.ManagerStatus.Leader,
			Reachability: w.ManagerStatus.Reachability,
			Addr:         w.ManagerStatus.Addr,
		}
	}
	return node
}

func mapSecret(w secretWire) Secret {
	sec := Secret{
		ID:        w.ID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		Version:   w.Version.Index,
		Labels:    map[string]string{},
	}
	if w.Spec != nil {
		sec.Name = w.Spec.Name
		sec.Labels = strMapOrEmpty(w.Spec.Labels)
	}
	return sec
}

// mapConfig reuses the secret wire shape; configs additionally expose the
// base64 payload on inspection.
func mapConfig(w secretWire) Config {
	cfg := Config{
		ID:        w.ID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		Version:   w.Version.Index,
		Labels:    map[string]string{},
	}
	if w.Spec != nil {
		cfg.Name = w.Spec.Name
		cfg.Labels = strMapOrEmpty(w.Spec.Labels)
		cfg.Data = w.Spec.Data
	}
	return cfg
}

func mapPlugin(w pluginWire) Plugin {
	return Plugin{
		ID:              w.ID,
		Name:            w.Name,
		Enabled:         w.Enabled,
		PluginReference: w.PluginReference,
		Settings:        anyMapOrEmpty(w.Settings),
		Config:          anyMapOrEmpty(w.Config),
	}
}

func mapPluginPrivileges(in []pluginPrivilegeWire) []PluginPrivilege {
	out := make([]PluginPrivilege, 0, len(in))
	for _, p := range in {
		out = append(out, PluginPrivilege{
			Name:        p.Name,
			Description: p.Description,
			Value:       strsOrEmpty(p.Value),
		})
	}
	return out
}

func mapHubRepository(w hubRepositoryWire) HubRepository {
	return HubRepository{
		Namespace:      w.Namespace,
		Name:           w.Name,
		Description:    w.Description,
		IsPrivate:      w.IsPrivate,
		StarCount:      w.StarCount,
		PullCount:      w.PullCount,
		LastUpdated:    w.LastUpdated,
		RepositoryType: w.RepositoryType,
		Status:         w.Status,
	}
}

func mapHubTag(w hubTagWire) HubTag {
	images := make([]HubTagImage, 0, len(w.Images))
	for _, img := range w.Images {
		images = append(images, HubTagImage{
			Architecture: img.Architecture,
			Os:           img.Os,
			Variant:      img.Variant,
			Size:         img.Size,
			Digest:       img.Digest,
		})
	}
	return HubTag{
		Name:        w.Name,
		FullSize:    w.FullSize,
		LastUpdated: w.LastUpdated,
		LastUpdater: w.LastUpdater,
		Digest:      w.Digest,
		Status:      w.TagStatus,
		Images:      images,
	}
}

func mapHubWebhook(w hubWebhookWire) HubWebhook {
	return HubWebhook{
		ID:        w.ID,
		Name:      w.Name,
		HookURL:   w.HookURL,
		CreatedAt: w.Created,
	}
}

func mapHubBuild(w hubBuildWire) HubBuild {
	return HubBuild{
		BuildCode: w.BuildCode,
		Status:    w.Status,
		Tag:       w.Tag,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func mapHubBuildSettings(w hubBuildSettingsWire) HubBuildSettings {
	return HubBuildSettings{
		RepoWebURL: w.RepoWebURL,
		Provider:   w.Provider,
		SourceURL:  w.SourceURL,
		BuildName:  w.BuildName,
		Autotests:  w.Autotests,
	}
}

// mapHubPage converts one hub page, synthesizing the local page cursor
// from the requested page number instead of the upstream next-URL.
func mapHubPage[W, T any](w hubPageWire[W], page, pageSize int, mapItem func(W) T) Page[T] {
	items := make([]T, 0, len(w.Results))
	for _, r := range w.Results {
		items = append(items, mapItem(r))
	}
	out := Page[T]{
		Total:    w.Count,
		Page:     page,
		PageSize: pageSize,
		HasMore:  w.Next != nil && *w.Next != "",
		Items:    items,
	}
	if out.HasMore {
		out.NextPage = page + 1
	}
	return out
}
