package docker

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Swarm inspect/init/join payloads keep the upstream spec shape: the
// swarm spec schema is large and version-dependent.

// InspectSwarm returns the swarm spec and cluster metadata.
func (c *Client) InspectSwarm(ctx context.Context) (map[string]any, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/swarm", nil, nil, nil)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := resp.decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// InitSwarm initializes a new swarm and returns the node id.
func (c *Client) InitSwarm(ctx context.Context, listenAddr, advertiseAddr string) (string, error) {
	body := map[string]any{}
	if listenAddr != "" {
		body["ListenAddr"] = listenAddr
	}
	if advertiseAddr != "" {
		body["AdvertiseAddr"] = advertiseAddr
	}
	resp, err := c.engineDo(ctx, http.MethodPost, "/swarm/init", nil, body, nil)
	if err != nil {
		return "", err
	}
	// The engine returns the node id as a bare JSON string.
	var nodeID string
	if err := resp.decode(&nodeID); err != nil {
		return "", err
	}
	if nodeID == "" {
		nodeID = resp.text
	}
	return nodeID, nil
}

// JoinSwarm joins this engine to an existing swarm.
func (c *Client) JoinSwarm(ctx context.Context, remoteAddrs []string, joinToken, listenAddr, advertiseAddr string) error {
	body := map[string]any{
		"RemoteAddrs": remoteAddrs,
		"JoinToken":   joinToken,
	}
	if listenAddr != "" {
		body["ListenAddr"] = listenAddr
	}
	if advertiseAddr != "" {
		body["AdvertiseAddr"] = advertiseAddr
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/swarm/join", nil, body, nil)
	return err
}

// LeaveSwarm removes this engine from the swarm.
func (c *Client) LeaveSwarm(ctx context.Context, force bool) error {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/swarm/leave", q, nil, nil)
	return err
}

// SwarmUpdateFlags selects which swarm tokens to rotate on update.
type SwarmUpdateFlags struct {
	RotateWorkerToken      bool
	RotateManagerToken     bool
	RotateManagerUnlockKey bool
}

// UpdateSwarm updates the swarm spec at the given version. The spec body
// passes through unchanged.
func (c *Client) UpdateSwarm(ctx context.Context, version uint64, spec map[string]any, flags SwarmUpdateFlags) error {
	q := url.Values{}
	q.Set("version", strconv.FormatUint(version, 10))
	if flags.RotateWorkerToken {
		q.Set("rotateWorkerToken", "true")
	}
	if flags.RotateManagerToken {
		q.Set("rotateManagerToken", "true")
	}
	if flags.RotateManagerUnlockKey {
		q.Set("rotateManagerUnlockKey", "true")
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/swarm/update", q, spec, nil)
	return err
}

// ListNodes returns all swarm nodes.
func (c *Client) ListNodes(ctx context.Context, filters Filters) ([]Node, error) {
	q := url.Values{}
	if err := addFilters(q, filters); err != nil {
		return nil, err
	}
	resp, err := c.engineDo(ctx, http.MethodGet, "/nodes", q, nil, nil)
	if err != nil {
		return nil, err
	}
	var wire []nodeWire
	if err := resp.decode(&wire); err != nil {
		return nil, err
	}
	out := make([]Node, 0, len(wire))
	for _, w := range wire {
		out = append(out, mapNode(w))
	}
	return out, nil
}

// InspectNode returns one swarm node.
func (c *Client) InspectNode(ctx context.Context, id string) (Node, error) {
	resp, err := c.engineDo(ctx, http.MethodGet, "/nodes/"+id, nil, nil, nil)
	if err != nil {
		return Node{}, err
	}
	var wire nodeWire
	if err := resp.decode(&wire); err != nil {
		return Node{}, err
	}
	return mapNode(wire), nil
}

// RemoveNode removes a node from the swarm.
func (c *Client) RemoveNode(ctx context.Context, id string, force bool) error {
	q := url.Values{}
	if force {
		q.Set("force", "true")
	}
	_, err := c.engineDo(ctx, http.MethodDelete, "/nodes/"+id, q, nil, nil)
	return err
}

// UpdateNode changes a node's role or availability at the given version.
func (c *Client) UpdateNode(ctx context.Context, id string, version uint64, role, availability string, labels map[string]string) error {
	q := url.Values{}
	q.Set("version", strconv.FormatUint(version, 10))
	body := map[string]any{}
	if role != "" {
		body["Role"] = role
	}
	if availability != "" {
		body["Availability"] = availability
	}
	if len(labels) > 0 {
		body["Labels"] = labels
	}
	_, err := c.engineDo(ctx, http.MethodPost, "/nodes/"+id+"/update", q, body, nil)
	return err
}
