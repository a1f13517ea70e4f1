/*
Copyright 2026 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package reqres

//go:generate mockgen -source=client.go -destination=mock/interfaces.go -package=mock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/unikorn-cloud/reqres-contract/pkg/constants"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// APIKeys holds the per operation API keys.  The JSON names match the
// object the suite has always been configured with.
type APIKeys struct {
	Get  string `json:"req_get_api"`
	Post string `json:"req_post_api"`
}

// ClientOptions configures a Client.
type ClientOptions struct {
	// BaseURL is the API root e.g. https://reqres.in/api.
	BaseURL string
	// Keys are sent in the x-api-key header.
	Keys APIKeys
	// UserAgent defaults to constants.DefaultUserAgent.
	UserAgent string
	// Timeout is a transport level limit, unrelated to any latency
	// assertions.
	Timeout time.Duration
	// LogRequests logs every exchange at info level.
	LogRequests bool
	// LogResponses additionally logs response bodies.
	LogResponses bool
	// Transport overrides the underlying transport, mostly for testing.
	Transport http.RoundTripper
}

// ClientInterface is the API surface the validator needs.
type ClientInterface interface {
	// ListUsers fetches a page of users with the get key.
	ListUsers(ctx context.Context, page int) (*Response, error)
	// CreateUser creates a user with the post key.
	CreateUser(ctx context.Context, request CreateUserRequest) (*Response, error)
}

// Client is a minimal hand written client for the users API.  It
// deliberately returns raw exchanges so the caller can make assertions
// about status codes, shape and timing.
type Client struct {
	baseURL   string
	client    *http.Client
	options   ClientOptions
	endpoints *Endpoints
}

// Ensure the interface is implemented.
var _ ClientInterface = &Client{}

// NewClient returns a new client.
func NewClient(options ClientOptions) *Client {
	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	return &Client{
		baseURL: strings.TrimSuffix(options.BaseURL, "/"),
		client: &http.Client{
			Timeout:   options.Timeout,
			Transport: newHeaderTransport(options.Transport, userAgent),
		},
		options:   options,
		endpoints: NewEndpoints(),
	}
}

func (c *Client) ListUsers(ctx context.Context, page int) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListUsers(page), c.options.Keys.Get, nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return resp, nil
}

func (c *Client) CreateUser(ctx context.Context, request CreateUserRequest) (*Response, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshaling user body: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateUser(), c.options.Keys.Post, body)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return resp, nil
}

// doRequest performs a single exchange.  The duration covers the whole
// round trip up to the last byte of the body, which is what a consumer
// of the API experiences.
func (c *Client) doRequest(ctx context.Context, method, path, apiKey string, body []byte) (*Response, error) {
	log := log.FromContext(ctx).WithValues("method", method, "path", path)

	var reader io.Reader

	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	traceID := extractTraceID(traceParent)

	req.Header.Set(headerTraceParent, traceParent)
	req.Header.Set(headerTraceState, "test-automation=reqres-contract")

	if apiKey != "" {
		req.Header.Set(headerAPIKey, apiKey)
	}

	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error(err, "http request failed", "duration", time.Since(start), "traceID", traceID)

		return nil, fmt.Errorf("http request failed (trace ID: %s): %w", traceID, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)

	duration := time.Since(start)

	if err != nil {
		log.Error(err, "reading response body", "status", resp.StatusCode, "duration", duration, "traceID", traceID)

		return nil, fmt.Errorf("reading response body (trace ID: %s): %w", traceID, err)
	}

	if c.options.LogRequests {
		log.Info("request complete", "status", resp.StatusCode, "duration", duration, "traceID", traceID)
	}

	if c.options.LogResponses && len(respBody) > 0 {
		log.Info("response body", "body", string(respBody), "traceID", traceID)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Duration:   duration,
		TraceID:    traceID,
	}

	return result, nil
}
