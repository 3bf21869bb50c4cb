package docker

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ContainerCreateOptions is the already-validated input for CreateContainer.
type ContainerCreateOptions struct {
	Name          string
	Image         string
	Cmd           []string
	Entrypoint    []string
	Env           []string
	WorkingDir    string
	User          string
	Labels        map[string]string
	ExposedPorts  []string          // "8080/tcp"
	PortBindings  map[string]string // "8080/tcp" -> "0.0.0.0:80"
	Binds         []string
	NetworkMode   string
	RestartPolicy string
	Memory        int64
	NanoCPUs      int64
	Privileged    bool
	AutoRemove    bool
}

// ListContainers returns container summaries. The engine list is
// unpaginated: the full list comes back in one call.
func (c *Client) ListContainers(ctx context.Context, all bool, limit int, size bool, filters Filters) ([]Container, error) {
	q := url.Values{}
	q.Set("all", strconv.FormatBool(all))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if size {
		q.Set("size", "true")
	}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/containers/json", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []containerSummaryWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Container, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapContainer(w))
	}
	return out, nil
}

// InspectContainer returns the full details of one container.
func (c *Client) InspectContainer(ctx context.Context, id string, size bool) (ContainerDetail, error) {
	q := url.Values{}
	if size {
		q.Set("size", "true")
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/containers/"+id+"/json", q, nil, nil)
	if err != nil {
		return ContainerDetail{}, err
	}
	var wire containerDetailWire
	if err := resp.decode(&wire); err != nil {
		return ContainerDetail{}, err
	}
	return mapContainerDetail(wire), nil
}

// CreateContainer creates a container and returns its id plus any engine
// warnings.
func (c *Client) CreateContainer(ctx context.Context, opts ContainerCreateOptions) (CreatedResource, error) {
	q := url.Values{}
	if opts.Name != "" {
		q.Set("name", opts.Name)
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/containers/create", q, containerCreateBody(opts), nil)
	if err != nil {
		return CreatedResource{}, err
	}
	var wire createdResourceWire
	if err := resp.decode(&wire); err != nil {
		return CreatedResource{}, err
	}
	return CreatedResource{ID: wire.ID, Warnings: strsOrEmpty(wire.Warnings)}, nil
}

// containerCreateBody builds the engine create payload from validated
// options, keeping host settings under HostConfig where the API wants
// them.
func containerCreateBody(opts ContainerCreateOptions) map[string]any {
	body := map[string]any{"Image": opts.Image}
	if len(opts.Cmd) > 0 {
		body["Cmd"] = opts.Cmd
	}
	if len(opts.Entrypoint) > 0 {
		body["Entrypoint"] = opts.Entrypoint
	}
	if len(opts.Env) > 0 {
		body["Env"] = opts.Env
	}
	if opts.WorkingDir != "" {
		body["WorkingDir"] = opts.WorkingDir
	}
	if opts.User != "" {
		body["User"] = opts.User
	}
	if len(opts.Labels) > 0 {
		body["Labels"] = opts.Labels
	}
	if len(opts.ExposedPorts) > 0 {
		exposed := map[string]any{}
		for _, port := range opts.ExposedPorts {
			exposed[port] = map[string]any{}
		}
		body["ExposedPorts"] = exposed
	}

	hostConfig := map[string]any{}
	if len(opts.PortBindings) > 0 {
		bindings := map[string]any{}
		for port, hostAddr := range opts.PortBindings {
			hostIP, hostPort := splitHostAddr(hostAddr)
			bindings[port] = []map[string]string{{"HostIp": hostIP, "HostPort": hostPort}}
		}
		hostConfig["PortBindings"] = bindings
	}
	if len(opts.Binds) > 0 {
		hostConfig["Binds"] = opts.Binds
	}
	if opts.NetworkMode != "" {
		hostConfig["NetworkMode"] = opts.NetworkMode
	}
	if opts.RestartPolicy != "" {
		hostConfig["RestartPolicy"] = map[string]any{"Name": opts.RestartPolicy}
	}
	if opts.Memory > 0 {
		hostConfig["Memory"] = opts.Memory
	}
	if opts.NanoCPUs > 0 {
		hostConfig["NanoCpus"] = opts.NanoCPUs
	}
	if opts.Privileged {
		hostConfig["Privileged"] = true
	}
	if opts.AutoRemove {
		hostConfig["AutoRemove"] = true
	}
	if len(hostConfig) > 0 {
		body["HostConfig"] = hostConfig
	}
	return body
}

// splitHostAddr splits "ip:port" into its parts; a bare value is a port.
func splitHostAddr(addr string) (string, string) {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i], addr[i+1:]
		}
	}
	return "", addr
}

// StartContainer starts a created or stopped container.
func (c *Client) StartContainer(ctx context.Context, id string) error {
	_, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/start", nil, nil, nil)
	return err
}

// StopContainer stops a container. The grace period is transmitted to the
// engine, not interpreted locally.
func (c *Client) StopContainer(ctx context.Context, id string, timeoutSeconds int) error {
	q := url.Values{}
	if timeoutSeconds > 0 {
		q.Set("t", strconv.Itoa(timeoutSeconds))
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/stop", q, nil, nil)
	return err
}

// RestartContainer restarts a container.
func (c *Client) RestartContainer(ctx context.Context, id string, timeoutSeconds int) error {
	q := url.Values{}
	if timeoutSeconds > 0 {
		q.Set("t", strconv.Itoa(timeoutSeconds))
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/restart", q, nil, nil)
	return err
}

// KillContainer sends a signal to a container, SIGKILL by default.
func (c *Client) KillContainer(ctx context.Context, id, signal string) error {
	q := url.Values{}
	if signal != "" {
		q.Set("signal", signal)
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/kill", q, nil, nil)
	return err
}

// PauseContainer pauses all processes in a container.
func (c *Client) PauseContainer(ctx context.Context, id string) error {
	_, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/pause", nil, nil, nil)
	return err
}

// UnpauseContainer resumes a paused container.
func (c *Client) UnpauseContainer(ctx context.Context, id string) error {
	_, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/unpause", nil, nil, nil)
	return err
}

// RenameContainer renames a container.
func (c *Client) RenameContainer(ctx context.Context, id, name string) error {
	q := url.Values{}
	q.Set("name", name)
	_, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/rename", q, nil, nil)
	return err
}

// ContainerUpdateOptions is the resource subset UpdateContainer accepts.
type ContainerUpdateOptions struct {
	Memory        int64
	MemorySwap    int64
	NanoCPUs      int64
	CPUShares     int64
	RestartPolicy string
}

// UpdateContainer adjusts resource limits on a running container.
func (c *Client) UpdateContainer(ctx context.Context, id string, opts ContainerUpdateOptions) (UpdateWarnings, error) {
	body := map[string]any{}
	if opts.Memory > 0 {
		body["Memory"] = opts.Memory
	}
	if opts.MemorySwap != 0 {
		body["MemorySwap"] = opts.MemorySwap
	}
	if opts.NanoCPUs > 0 {
		body["NanoCpus"] = opts.NanoCPUs
	}
	if opts.CPUShares > 0 {
		body["CpuShares"] = opts.CPUShares
	}
	if opts.RestartPolicy != "" {
		body["RestartPolicy"] = map[string]any{"Name": opts.RestartPolicy}
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/update", nil, body, nil)
	if err != nil {
		return UpdateWarnings{}, err
	}
	var wire updateWarningsWire
	if err := resp.decode(&wire); err != nil {
		return UpdateWarnings{}, err
	}
	return UpdateWarnings{Warnings: strsOrEmpty(wire.Warnings)}, nil
}

// WaitContainer blocks until the container reaches the given condition and
// returns its exit status.
func (c *Client) WaitContainer(ctx context.Context, id, condition string) (WaitResult, error) {
	q := url.Values{}
	if condition != "" {
		q.Set("condition", condition)
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/wait", q, nil, nil)
	if err != nil {
		return WaitResult{}, err
	}
	var wire waitResultWire
	if err := resp.decode(&wire); err != nil {
		return WaitResult{}, err
	}
	return mapWaitResult(wire), nil
}

// RemoveContainer deletes a container.
func (c *Client) RemoveContainer(ctx context.Context, id string, force, removeVolumes bool) error {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	if removeVolumes {
		q.Set("v", "true")
	}
	_, err := c.engineDo(ctx, http.MethodDelete, "/containers/"+id, q, nil, nil)
	return err
}

// ContainerLogsOptions selects which log streams and how much history to
// fetch. Logs are returned as one complete body; there is no follow mode.
type ContainerLogsOptions struct {
	Stdout     bool
	Stderr     bool
	Timestamps bool
	Tail       string
	Since      string
}

// ContainerLogs fetches container logs as raw text.
func (c *Client) ContainerLogs(ctx context.Context, id string, opts ContainerLogsOptions) (string, error) {
	q := url.Values{}
	q.Set("stdout", strconv.FormatBool(opts.Stdout))
	q.Set("stderr", strconv.FormatBool(opts.Stderr))
	if opts.Timestamps {
		q.Set("timestamps", "true")
	}
	if opts.Tail != "" {
		q.Set("tail", opts.Tail)
	}
	if opts.Since != "" {
		q.Set("since", opts.Since)
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/containers/"+id+"/logs", q, nil, nil)
	if err != nil {
		return "", err
	}
	return resp.text, nil
}

// ContainerTop lists the processes running inside a container.
func (c *Client) ContainerTop(ctx context.Context, id, psArgs string) (ProcessList, error) {
	q := url.Values{}
	if psArgs != "" {
		q.Set("ps_args", psArgs)
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/containers/"+id+"/top", q, nil, nil)
	if err != nil {
		return ProcessList{}, err
	}
	var wire processListWire
	if err := resp.decode(&wire); err != nil {
		return ProcessList{}, err
	}
	return mapProcessList(wire), nil
}

// ContainerStats takes a single point-in-time stats sample. The upstream
// shape is treated as canonical and passed through.
func (c *Client) ContainerStats(ctx context.Context, id string) (map[string]any, error) {
	q := url.Values{}
	q.Set("stream", "false")
	resp, err := c.engineDo(ctx, http.MethodGet, "/containers/"+id+"/stats", q, nil, nil)
	if err != nil {
		return nil, err
	}
	stats := map[string]any{}
	if err := resp.decode(&stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ContainerChanges lists filesystem changes since container start.
func (c *Client) ContainerChanges(ctx context.Context, id string) ([]FilesystemChange, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/containers/"+id+"/changes", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []filesystemChangeWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]FilesystemChange, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapFilesystemChange(w))
	}
	return out, nil
}

// PruneContainers removes all stopped containers.
func (c *Client) PruneContainers(ctx context.Context, filters Filters) (PruneReport, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return PruneReport{}, err
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/containers/prune", q, nil, nil)
	if err != nil {
		return PruneReport{}, err
	}
	var wire containerPruneWire
	if err := resp.decode(&wire); err != nil {
		return PruneReport{}, err
	}
	return PruneReport{Deleted: strsOrEmpty(wire.ContainersDeleted), SpaceReclaimed: wire.SpaceReclaimed}, nil
}

// CommitContainer creates an image from a container's current state.
func (c *Client) CommitContainer(ctx context.Context, id, repo, tag, comment, author string) (CommitResult, error) {
	q := url.Values{}
	q.Set("container", id)
	if repo != "" {
		q.Set("repo", repo)
	}
	if tag != "" {
		q.Set("tag", tag)
	}
	if comment != "" {
		q.Set("comment", comment)
	}
	if author != "" {
		q.Set("author", author)
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/commit", q, nil, nil)
	if err != nil {
		return CommitResult{}, err
	}
	var wire commitResultWire
	if err := resp.decode(&wire); err != nil {
		return CommitResult{}, err
	}
	return CommitResult{ID: wire.ID}, nil
}

// ResizeContainer resizes a container's TTY.
func (c *Client) ResizeContainer(ctx context.Context, id string, width, height int) error {
	q := url.Values{}
	q.Set("w", strconv.Itoa(width))
	q.Set("h", strconv.Itoa(height))
	_, err := c.engineDo(ctx, http.MethodPost, "/containers/"+id+"/resize", q, nil, nil)
	return err
}

// ExecCreateOptions describes the command an exec session runs.
type ExecCreateOptions struct {
	Cmd          []string
	AttachStdout bool
	AttachStderr bool
	Tty          bool
	Env          []string
	WorkingDir   string
	User         string
	Privileged   bool
}

// CreateExec sets up an exec session in a running container.
func (c *Client) CreateExec(ctx context.Context, containerID string, opts ExecCreateOptions) (ExecCreated, error) {
	body := map[string]any{
		"Cmd":          opts.Cmd,
		"AttachStdout": opts.AttachStdout,
		"AttachStderr": opts.AttachStderr,
		"Tty":          opts.Tty,
	}
	if len(opts.Env) > 0 {
		body["Env"] = opts.Env
	}
	if opts.WorkingDir != "" {
		body["WorkingDir"] = opts.WorkingDir
	}
	if opts.User != "" {
		body["User"] = opts.User
	}
	if opts.Privileged {
		body["Privileged"] = true
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/containers/"+containerID+"/exec", nil, body, nil)
	if err != nil {
		return ExecCreated{}, err
	}
	var wire execCreatedWire
	if err := resp.decode(&wire); err != nil {
		return ExecCreated{}, err
	}
	return ExecCreated{ID: wire.ID}, nil
}

// StartExec runs an exec session. Detached sessions return an empty
// string; attached sessions return the full captured output as raw text.
func (c *Client) StartExec(ctx context.Context, execID string, detach, tty bool) (string, error) {
	body := map[string]any{"Detach": detach, "Tty": tty}
	resp, err := c.engineDo(ctx, http.MethodPost, "/exec/"+execID+"/start", nil, body, nil)
	if err != nil {
		return "", err
	}
	return resp.text, nil
}

// InspectExec returns the state of an exec session.
func (c *Client) InspectExec(ctx context.Context, execID string) (ExecDetail, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/exec/"+execID+"/json", nil, nil, nil)
	if err != nil {
		return ExecDetail{}, err
	}
	var wire execDetailWire
	if err := resp.decode(&wire); err != nil {
		return ExecDetail{}, err
	}
	return mapExecDetail(wire), nil
}

// ResizeExec resizes an exec session's TTY.
func (c *Client) ResizeExec(ctx context.Context, execID string, width, height int) error {
	q := url.Values{}
	q.Set("w", strconv.Itoa(width))
	q.Set("h", strconv.Itoa(height))
	_, err := c.engineDo(ctx, http.MethodPost, "/exec/"+execID+"/resize", q, nil, nil)
	return err
}
