package docker

import (
	"context"
	"net/http"
	"net/url"
)

// NetworkCreateOptions is the already-validated input for CreateNetwork.
type NetworkCreateOptions struct {
	Name       string
	Driver     string
	Internal   bool
	Attachable bool
	EnableIPv6 bool
	Subnet     string
	Gateway    string
	IPRange    string
	Options    map[string]string
	Labels     map[string]string
}

// ListNetworks returns all networks known to the engine.
func (c *Client) ListNetworks(ctx context.Context, filters Filters) ([]Network, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/networks", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []networkWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Network, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapNetwork(w))
	}
	return out, nil
}

// InspectNetwork returns one network, including attached containers.
func (c *Client) InspectNetwork(ctx context.Context, id string) (Network, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/networks/"+id, nil, nil, nil)
	if err != nil {
		return Network{}, err
	}
	var wire networkWire
	if err := resp.decode(&wire); err != nil {
		return Network{}, err
	}
	return mapNetwork(wire), nil
}

// CreateNetwork creates a network and returns its id.
func (c *Client) CreateNetwork(ctx context.Context, opts NetworkCreateOptions) (CreatedResource, error) {
	body := map[string]any{"Name": opts.Name}
	if opts.Driver != "" {
		body["Driver"] = opts.Driver
	}
	if opts.Internal {
		body["Internal"] = true
	}
	if opts.Attachable {
		body["Attachable"] = true
	}
	if opts.EnableIPv6 {
		body["EnableIPv6"] = true
	}
	if opts.Subnet != "" || opts.Gateway != "" || opts.IPRange != "" {
		pool := map[string]string{}
		if opts.Subnet != "" {
			pool["Subnet"] = opts.Subnet
		}
		if opts.Gateway != "" {
			pool["Gateway"] = opts.Gateway
		}
		if opts.IPRange != "" {
			pool["IPRange"] = opts.IPRange
		}
		body["IPAM"] = map[string]any{"Config": []map[string]string{pool}}
	}
	if len(opts.Options) > 0 {
		body["Options"] = opts.Options
	}
	if len(opts.Labels) > 0 {
		body["Labels"] = opts.Labels
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/networks/create", nil, body, nil)
	if err != nil {
		return CreatedResource{}, err
	}
	var wire networkCreateWire
	if err := resp.decode(&wire); err != nil {
		return CreatedResource{}, err
	}
	created := CreatedResource{ID: wire.ID, Warnings: []string{}}
	if wire.Warning != "" {
		created.Warnings = []string{wire.Warning}
	}
	return created, nil
}

// RemoveNetwork deletes a network.
func (c *Client) RemoveNetwork(ctx context.Context, id string) error {
	_, err := c.engineDo(ctx, http.MethodDelete, "/networks/"+id, nil, nil, nil)
	return err
}

// ConnectNetwork attaches a container to a network.
func (c *Client) ConnectNetwork(ctx context.Context, networkID, containerID string, aliases []string) error {
	body := map[string]any{"Container": containerID}
	if len(aliases) > 0 {
		body["EndpointConfig"] = map[string]any{"Aliases": aliases}
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/networks/"+networkID+"/connect", nil, body, nil)
	return err
}

// DisconnectNetwork detaches a container from a network.
func (c *Client) DisconnectNetwork(ctx context.Context, networkID, containerID string, force bool) error {
	body := map[string]any{"Container": containerID, "Force": force}
	_, err := c.engineDo(ctx, http.MethodPost, "/networks/"+networkID+"/disconnect", nil, body, nil)
	return err
}

// PruneNetworks removes unused networks.
func (c *Client) PruneNetworks(ctx context.Context, filters Filters) (PruneReport, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return PruneReport{}, err
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/networks/prune", q, nil, nil)
	if err != nil {
		return PruneReport{}, err
	}
	var wire networkPruneWire
	if err := resp.decode(&wire); err != nil {
		return PruneReport{}, err
	}
	return PruneReport{Deleted: strsOrEmpty(wire.NetworksDeleted)}, nil
}
