// ABOUTME: HTTP relay client for the upstream retirement administration API
// ABOUTME: Performs single calls with bearer credential and normalizes the result shape

package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fmartineau/retraite-mobile-bff/config"
)

// Request describes one upstream call. Stateless; constructed fresh per
// call and never retried.
type Request struct {
	Method string // defaults to GET
	Path   string // absolute path under the upstream base URL, e.g. /api/Salarie/infosSalarie
	Body   any    // marshaled as JSON; ignored for GET
	Token  string // upstream credential, replayed verbatim as Bearer when non-empty
	Query  url.Values
}

// Result is the uniform outcome of an upstream call. It is populated for
// every HTTP-level response including errors; only transport failures
// surface as errors from Do.
type Result struct {
	Status      int
	Data        json.RawMessage // raw response body; JSON when ContentType says so
	ContentType string
}

// OK reports whether the upstream responded with a 2xx status.
func (r Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the response body into v. Only meaningful for JSON
// responses; the caller checks Status first.
func (r Result) Decode(v any) error {
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}

// Client relays calls to the upstream API. The base URL may carry a fixed
// path segment (e.g. http://host:3001/API_RETRAITE_V2) which every call
// preserves.
type Client struct {
	baseURL string
	client  *http.Client
}

func New(cfg *config.Config) *Client {
	transport := &http.Transport{}

	// Optional SSH+SOCKS5 tunnel for reaching upstream from restricted
	// networks, same mechanism as UPSTREAM_ALL_PROXY in the ops tooling.
	if dial := dialContextFromEnv(); dial != nil {
		transport.DialContext = dial
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.UpstreamBaseURL, "/"),
		client: &http.Client{
			Timeout:   time.Duration(cfg.UpstreamTimeout) * time.Second,
			Transport: transport,
		},
	}
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	c.client = client
}

// Do performs one upstream call. The target URL is built by string
// concatenation of base URL and path, never URL resolution, so a fixed
// base path segment is never discarded. Non-2xx responses are normal
// results; only transport failures (DNS, refused, timeout) return an error.
func (c *Client) Do(ctx context.Context, req Request) (Result, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil && method != http.MethodGet {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return Result{}, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create upstream request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("upstream call %s %s failed: %w", method, req.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read upstream response: %w", err)
	}

	return Result{
		Status:      resp.StatusCode,
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
