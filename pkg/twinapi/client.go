package twinapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the local development backend.
	DefaultBaseURL = "http://localhost:7011/api"
	// requestTimeout bounds every backend call. The original client had
	// no timeout at all and could hang forever on a stalled request.
	requestTimeout = 30 * time.Second
)

// Client talks to the digital-twin REST backend. All entities live
// under /twins/{twinId}/... and the standard verbs apply: GET for
// list/detail, POST for create, PUT for full replace, DELETE.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a backend client. token may be empty for backends that
// run without auth (local development).
func New(baseURL, token string) (client *Client) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client = &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
	return client
}

// get performs a GET and returns the raw body. Non-2xx statuses come
// back as *APIError so callers can special-case 404.
func (c *Client) get(ctx context.Context, path string) (body []byte, err error) {
	body, err = c.do(ctx, http.MethodGet, path, nil)
	return body, err
}

// postJSON performs a POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, payload []byte) (body []byte, err error) {
	body, err = c.do(ctx, http.MethodPost, path, payload)
	return body, err
}

// putJSON performs a PUT with a JSON body.
func (c *Client) putJSON(ctx context.Context, path string, payload []byte) (body []byte, err error) {
	body, err = c.do(ctx, http.MethodPut, path, payload)
	return body, err
}

// delete performs a DELETE.
func (c *Client) delete(ctx context.Context, path string) (err error) {
	_, err = c.do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (body []byte, err error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return body, err
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var resp *http.Response
	resp, err = c.httpClient.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return body, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return body, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		return body, err
	}

	return body, err
}
