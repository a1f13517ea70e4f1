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

package schema

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"

	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
)

//go:embed openapi.yaml
var document []byte

// ErrRouteNotFound is raised when the document doesn't describe an
// operation.
var ErrRouteNotFound = errors.New("route not found")

// Validator checks raw responses conform to the embedded OpenAPI
// description of the users API.
type Validator struct {
	spec *openapi3.T
}

// Ensure the interface is implemented.
var _ reqres.SchemaValidator = &Validator{}

// New loads and validates the embedded document.
func New(ctx context.Context) (*Validator, error) {
	return NewFromData(ctx, document)
}

// NewFromData loads and validates an OpenAPI document.
func NewFromData(ctx context.Context, data []byte) (*Validator, error) {
	loader := openapi3.NewLoader()

	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("loading openapi document: %w", err)
	}

	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi document: %w", err)
	}

	return &Validator{
		spec: spec,
	}, nil
}

// findRoute resolves a request path, which may carry a query string, to
// the operation describing it.  Servers are ignored as the base URL is
// configurable.
func (v *Validator) findRoute(method, path string) (*routers.Route, error) {
	path, _, _ = strings.Cut(path, "?")

	pathItem := v.spec.Paths.Value(path)
	if pathItem == nil {
		return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, path)
	}

	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrRouteNotFound, method, path)
	}

	route := &routers.Route{
		Spec:      v.spec,
		Path:      path,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}

	return route, nil
}

// ValidateResponse checks the status, content type and body of a
// response against the document.  Failures wrap
// reqres.ErrMalformedResponse.
func (v *Validator) ValidateResponse(ctx context.Context, method, path string, status int, header http.Header, body []byte) error {
	route, err := v.findRoute(method, path)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, method, path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    request,
			PathParams: map[string]string{},
			Route:      route,
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: %s %s does not conform: %w", reqres.ErrMalformedResponse, method, path, err)
	}

	return nil
}
