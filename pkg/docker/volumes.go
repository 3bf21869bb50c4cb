package docker

import (
	"context"
	"net/http"
	"net/url"
)

// VolumeCreateOptions is the already-validated input for CreateVolume.
type VolumeCreateOptions struct {
	Name       string
	Driver     string
	DriverOpts map[string]string
	Labels     map[string]string
}

// ListVolumes returns all volumes.
func (c *Client) ListVolumes(ctx context.Context, filters Filters) ([]Volume, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/volumes", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire volumeListWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Volume, 0, len(wire.Volumes))
	for _, w := range wire.Volumes {
		out = append(out, mapVolume(w))
	}
	return out, nil
}

// InspectVolume returns one volume.
func (c *Client) InspectVolume(ctx context.Context, name string) (Volume, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/volumes/"+name, nil, nil, nil)
	if err != nil {
		return Volume{}, err
	}
	var wire volumeWire
	if err := resp.decode(&wire); err != nil {
		return Volume{}, err
	}
	return mapVolume(wire), nil
}

// CreateVolume creates a volume and returns it.
func (c *Client) CreateVolume(ctx context.Context, opts VolumeCreateOptions) (Volume, error) {
	body := map[string]any{}
	if opts.Name != "" {
		body["Name"] = opts.Name
	}
	if opts.Driver != "" {
		body["Driver"] = opts.Driver
	}
	if len(opts.DriverOpts) > 0 {
		body["DriverOpts"] = opts.DriverOpts
	}
	if len(opts.Labels) > 0 {
		body["Labels"] = opts.Labels
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/volumes/create", nil, body, nil)
	if err != nil {
		return Volume{}, err
	}
	var wire volumeWire
	if err := resp.decode(&wire); err != nil {
		return Volume{}, err
	}
	return mapVolume(wire), nil
}

// RemoveVolume deletes a volume.
func (c *Client) RemoveVolume(ctx context.Context, name string, force bool) error {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	_, err := c.engineDo(ctx, http.MethodDelete, "/volumes/"+name, q, nil, nil)
	return err
}

// PruneVolumes removes unused volumes.
func (c *Client) PruneVolumes(ctx context.Context, filters Filters) (PruneReport, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return PruneReport{}, err
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/volumes/prune", q, nil, nil)
	if err != nil {
		return PruneReport{}, err
	}
	var wire volumePruneWire
	if err := resp.decode(&wire); err != nil {
		return PruneReport{}, err
	}
	return PruneReport{Deleted: strsOrEmpty(wire.VolumesDeleted), SpaceReclaimed: wire.SpaceReclaimed}, nil
}
