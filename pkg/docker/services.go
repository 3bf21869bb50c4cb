package docker

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ServiceCreateOptions is the already-validated input for CreateService.
type ServiceCreateOptions struct {
	Name     string
	Image    string
	Replicas int
	Env      []string
	Labels   map[string]string
	Ports    []ServicePort
	Networks []string
}

// ServicePort publishes one service port.
type ServicePort struct {
	TargetPort    int
	PublishedPort int
	Protocol      string
}

// ListServices returns all swarm services.
func (c *Client) ListServices(ctx context.Context, filters Filters) ([]Service, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/services", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []serviceWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Service, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapService(w))
	}
	return out, nil
}

// InspectService returns one service.
func (c *Client) InspectService(ctx context.Context, id string) (Service, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/services/"+id, nil, nil, nil)
	if err != nil {
		return Service{}, err
	}
	var wire serviceWire
	if err := resp.decode(&wire); err != nil {
		return Service{}, err
	}
	return mapService(wire), nil
}

// CreateService creates a swarm service. Registry credentials, when
// supplied, travel in X-Registry-Auth for the image pull on each node.
func (c *Client) CreateService(ctx context.Context, opts ServiceCreateOptions) (CreatedResource, error) {
	resp, err := c.engineDo(ctx, http.MethodPost, "/services/create", nil, serviceSpecBody(opts), c.withRegistryAuth())
	if err != nil {
		return CreatedResource{}, err
	}
	var wire idWire
	if err := resp.decode(&wire); err != nil {
		return CreatedResource{}, err
	}
	return CreatedResource{ID: wire.ID, Warnings: []string{}}, nil
}

// UpdateService replaces a service spec at the given version. The raw
// spec passes through unchanged; X-Registry-Auth is attached when
// registry credentials exist.
func (c *Client) UpdateService(ctx context.Context, id string, version uint64, spec map[string]any) error {
	q := url.Values{}
	q.Set("version", strconv.FormatUint(version, 10))
	_, err := c.engineDo(ctx, http.MethodPost, "/services/"+id+"/update", q, spec, c.withRegistryAuth())
	return err
}

// RemoveService deletes a service.
func (c *Client) RemoveService(ctx context.Context, id string) error {
	_, err := c.engineDo(ctx, http.MethodDelete, "/services/"+id, nil, nil, nil)
	return err
}

// ServiceLogs fetches service logs as one complete body.
func (c *Client) ServiceLogs(ctx context.Context, id string, opts ContainerLogsOptions) (string, error) {
	q := url.Values{}
	q.Set("stdout", strconv.FormatBool(opts.Stdout))
	q.Set("stderr", strconv.FormatBool(opts.Stderr))
	if opts.Timestamps {
		q.Set("timestamps", "true")
	}
	if opts.Tail != "" {
		q.Set("tail", opts.Tail)
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/services/"+id+"/logs", q, nil, nil)
	if err != nil {
		return "", err
	}
	return resp.text, nil
}

// serviceSpecBody builds a minimal swarm service spec from validated
// options.
func serviceSpecBody(opts ServiceCreateOptions) map[string]any {
	containerSpec := map[string]any{"Image": opts.Image}
	if len(opts.Env) > 0 {
		containerSpec["Env"] = opts.Env
	}
	body := map[string]any{
		"Name":         opts.Name,
		"TaskTemplate": map[string]any{"ContainerSpec": containerSpec},
	}
	if len(opts.Labels) > 0 {
		body["Labels"] = opts.Labels
	}
	replicas := opts.Replicas
	if replicas <= 0 {
		replicas = 1
	}
	body["Mode"] = map[string]any{"Replicated": map[string]any{"Replicas": replicas}}
	if len(opts.Ports) > 0 {
		ports := make([]map[string]any, 0, len(opts.Ports))
		for _, p := range opts.Ports {
			protocol := p.Protocol
			if protocol == "" {
				protocol = "tcp"
			}
			ports = append(ports, map[string]any{
				"Protocol":      strings.ToLower(protocol),
				"TargetPort":    p.TargetPort,
				"PublishedPort": p.PublishedPort,
			})
		}
		body["EndpointSpec"] = map[string]any{"Ports": ports}
	}
	if len(opts.Networks) > 0 {
		nets := make([]map[string]any, 0, len(opts.Networks))
		for _, n := range opts.Networks {
			nets = append(nets, map[string]any{"Target": n})
		}
		body["Networks"] = nets
	}
	return body
}

// ListTasks returns swarm tasks.
func (c *Client) ListTasks(ctx context.Context, filters Filters) ([]Task, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/tasks", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []taskWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Task, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapTask(w))
	}
	return out, nil
}

// InspectTask returns one task.
func (c *Client) InspectTask(ctx context.Context, id string) (Task, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/tasks/"+id, nil, nil, nil)
	if err != nil {
		return Task{}, err
	}
	var wire taskWire
	if err := resp.decode(&wire); err != nil {
		return Task{}, err
	}
	return mapTask(wire), nil
}
