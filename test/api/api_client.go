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

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/unikorn-cloud/reqres-contract/pkg/config"
	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
	"github.com/unikorn-cloud/reqres-contract/pkg/reqres/schema"
)

// tracingTransport mirrors every exchange to GinkgoWriter so failing
// tests can be correlated with server side logs.
type tracingTransport struct {
	next   http.RoundTripper
	config *config.Config
}

func (t *tracingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	method, path := req.Method, req.URL.RequestURI()
	traceParent := req.Header.Get("Traceparent")

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		ginkgo.GinkgoWriter.Printf("[%s %s] ERROR http request failed duration=%s traceparent=%s error=%v\n", method, path, duration, traceParent, err)
		logTraceContext(traceParent)

		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		ginkgo.GinkgoWriter.Printf("[%s %s] ERROR status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
		logTraceContext(traceParent)

		return resp, nil
	}

	if t.config.LogRequests || t.config.DebugLogging {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	return resp, nil
}

// logTraceContext logs the trace context information.
func logTraceContext(traceParent string) {
	traceID := traceParent

	if parts := strings.Split(traceParent, "-"); len(parts) >= 2 {
		traceID = parts[1]
	}

	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", traceID)
}

// NewAPIClientWithConfig returns a client using the configured keys.
func NewAPIClientWithConfig(config *config.Config) *reqres.Client {
	return NewAPIClientWithKeys(config, config.Keys)
}

// NewAPIClientWithKeys returns a client that presents the given keys,
// empty keys are omitted from requests entirely.
func NewAPIClientWithKeys(config *config.Config, keys reqres.APIKeys) *reqres.Client {
	options := config.ClientOptions()
	options.Keys = keys
	options.Transport = &tracingTransport{
		next:   http.DefaultTransport,
		config: config,
	}

	return reqres.NewClient(options)
}

// NewValidator returns a contract validator that also checks responses
// against the OpenAPI description.
func NewValidator(ctx context.Context, client reqres.ClientInterface, config *config.Config) (*reqres.Validator, error) {
	schemaValidator, err := schema.New(ctx)
	if err != nil {
		return nil, err
	}

	options := config.ValidatorOptions()
	options.Schema = schemaValidator

	return reqres.NewValidator(client, options), nil
}
