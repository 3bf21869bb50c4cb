package docker

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListImages returns image summaries.
func (c *Client) ListImages(ctx context.Context, all bool, filters Filters) ([]Image, error) {
	q := url.Values{}
	if all {
		q.Set("all", "true")
	}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/images/json", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []imageSummaryWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Image, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapImage(w))
	}
	return out, nil
}

// InspectImage returns the full details of one image.
func (c *Client) InspectImage(ctx context.Context, name string) (ImageDetail, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/images/"+name+"/json", nil, nil, nil)
	if err != nil {
		return ImageDetail{}, err
	}
	var wire imageDetailWire
	if err := resp.decode(&wire); err != nil {
		return ImageDetail{}, err
	}
	return mapImageDetail(wire), nil
}

// ImageHistory lists the layers of an image.
func (c *Client) ImageHistory(ctx context.Context, name string) ([]ImageHistoryEntry, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/images/"+name+"/history", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []imageHistoryWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]ImageHistoryEntry, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapImageHistory(w))
	}
	return out, nil
}

// PullImage pulls an image from a registry, awaiting the full progress
// body. Registry credentials, when supplied, travel in X-Registry-Auth;
// without credentials the header is omitted entirely.
func (c *Client) PullImage(ctx context.Context, image, tag string) (string, error) {
	q := url.Values{}
	q.Set("fromImage", image)
	if tag != "" {
		q.Set("tag", tag)
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/images/create", q, nil, c.withRegistryAuth())
	if err != nil {
		return "", err
	}
	return rawOrJSONText(resp), nil
}

// PushImage pushes an image to a registry.
func (c *Client) PushImage(ctx context.Context, name, tag string) (string, error) {
	q := url.Values{}
	if tag != "" {
		q.Set("tag", tag)
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/images/"+name+"/push", q, nil, c.withRegistryAuth())
	if err != nil {
		return "", err
	}
	return rawOrJSONText(resp), nil
}

// rawOrJSONText returns the response body regardless of content type;
// pull/push progress arrives as either JSON lines or raw text.
func rawOrJSONText(resp *response) string {
	if resp.text != "" {
		return resp.text
	}
	return string(resp.jsonBody)
}

// TagImage applies a repository:tag name to an image.
func (c *Client) TagImage(ctx context.Context, name, repo, tag string) error {
	q := url.Values{}
	q.Set("repo", repo)
	if tag != "" {
		q.Set("tag", tag)
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/images/"+name+"/tag", q, nil, nil)
	return err
}

// RemoveImage deletes an image and returns what was untagged and deleted.
func (c *Client) RemoveImage(ctx context.Context, name string, force, noPrune bool) ([]map[string]string, error) {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	if noPrune {
		q.Set("noprune", "true")
	}
	resp, err := c.engineDo(ctx, http.MethodDelete, "/images/"+name, q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []imageDeleteWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]map[string]string, 0, len(wire))
	for _, w := range wire {
		entry := map[string]string{}
		if w.Untagged != "" {
			entry["untagged"] = w.Untagged
		}
		if w.Deleted != "" {
			entry["deleted"] = w.Deleted
		}
		out = append(out, entry)
	}
	return out, nil
}

// SearchImages queries the registry search endpoint.
func (c *Client) SearchImages(ctx context.Context, term string, limit int) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("term", term)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/images/search", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []searchResultWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]SearchResult, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapSearchResult(w))
	}
	return out, nil
}

// PruneImages removes unused images.
func (c *Client) PruneImages(ctx context.Context, filters Filters) (PruneReport, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return PruneReport{}, err
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/images/prune", q, nil, nil)
	if err != nil {
		return PruneReport{}, err
	}
	var wire imagePruneWire
	if err := resp.decode(&wire); err != nil {
		return PruneReport{}, err
	}
	deleted := make([]string, 0, len(wire.ImagesDeleted))
	for _, d := range wire.ImagesDeleted {
		if d.Deleted != "" {
			deleted = append(deleted, d.Deleted)
		} else if d.Untagged != "" {
			deleted = append(deleted, d.Untagged)
		}
	}
	return PruneReport{Deleted: deleted, SpaceReclaimed: wire.SpaceReclaimed}, nil
}

// DistributionInspect queries registry distribution data for an image
// reference. The upstream shape is passed through.
func (c *Client) DistributionInspect(ctx context.Context, name string) (map[string]any, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/distribution/"+name+"/json", nil, nil, c.withRegistryAuth())
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
