// Package remote is the best-effort results shim: a thin HTTP JSON client
// around an external function endpoint. It never surfaces an error to its
// caller; every failure degrades to an unsuccessful outcome and the
// in-memory result the user sees stays authoritative. The assessment works
// fully offline when this sink is disabled or unreachable.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"edna/domain/core"
	"edna/domain/profile"
	"edna/internal"
	"edna/ports"
)

// Client posts and fetches results against the remote endpoint using a
// bearer token.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	log      *internal.Logger
}

// NewClient creates a remote results client
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: timeout},
		log:      internal.DefaultLogger,
	}
}

type savePayload struct {
	UserID  string         `json:"user_id"`
	Results profile.Result `json:"results"`
}

type loadPayload struct {
	Results *profile.Result `json:"results"`
}

// Save posts the result. All failures are logged at debug level and
// reported as data; nothing propagates.
func (c *Client) Save(ctx context.Context, userID core.UserID, res profile.Result) ports.SinkOutcome {
	body, err := json.Marshal(savePayload{UserID: userID.String(), Results: res})
	if err != nil {
		return c.failure("encode", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.failure("build request", err)
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.failure("post", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.failure("post", fmt.Errorf("status %d", resp.StatusCode))
	}
	return ports.SinkOutcome{Success: true}
}

// Load fetches a previously saved result. A 404 means "no results" and is
// a successful empty load, not an error.
func (c *Client) Load(ctx context.Context, userID core.UserID) (*profile.Result, ports.SinkOutcome) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?user_id="+userID.String(), nil)
	if err != nil {
		return nil, c.failure("build request", err)
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.failure("get", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ports.SinkOutcome{Success: true}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.failure("get", fmt.Errorf("status %d", resp.StatusCode))
	}

	var payload loadPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, c.failure("decode", err)
	}
	return payload.Results, ports.SinkOutcome{Success: true}
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
}

func (c *Client) failure(op string, err error) ports.SinkOutcome {
	c.log.Debug("remote results %s failed: %v", op, err)
	return ports.SinkOutcome{Success: false, Error: err.Error()}
}

// NopSink is the sink used when no remote endpoint is configured
type NopSink struct{}

func (NopSink) Save(context.Context, core.UserID, profile.Result) ports.SinkOutcome {
	return ports.SinkOutcome{Success: true}
}

func (NopSink) Load(context.Context, core.UserID) (*profile.Result, ports.SinkOutcome) {
	return nil, ports.SinkOutcome{Success: true}
}
