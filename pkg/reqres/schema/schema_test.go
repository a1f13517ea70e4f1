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

package schema_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
	"github.com/unikorn-cloud/reqres-contract/pkg/reqres/fake"
	"github.com/unikorn-cloud/reqres-contract/pkg/reqres/schema"
)

func jsonHeader() http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/json")

	return header
}

func newValidator(t *testing.T) *schema.Validator {
	t.Helper()

	validator, err := schema.New(t.Context())
	require.NoError(t, err)

	return validator
}

// TestFakeConforms ensures the fake server honours the document, so unit
// tests against it exercise realistic responses.
func TestFakeConforms(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	server := fake.NewServer(fake.Options{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/users?page=2") //nolint:noctx
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.NoError(t, validator.ValidateResponse(t.Context(), http.MethodGet, "/users?page=2", resp.StatusCode, resp.Header, body))

	resp, err = http.Post(server.URL+"/users", "application/json", strings.NewReader(`{"name":"morpheus","job":"leader"}`)) //nolint:noctx
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.NoError(t, validator.ValidateResponse(t.Context(), http.MethodPost, "/users", resp.StatusCode, resp.Header, body))
}

func TestValidateResponseNonConforming(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	tests := []struct {
		name   string
		method string
		status int
		body   string
	}{
		{
			name:   "MissingData",
			method: http.MethodGet,
			status: http.StatusOK,
			body:   `{"page":2,"per_page":6,"total":12,"total_pages":2}`,
		},
		{
			name:   "StringPage",
			method: http.MethodGet,
			status: http.StatusOK,
			body:   `{"page":"2","per_page":6,"total":12,"total_pages":2,"data":[]}`,
		},
		{
			name:   "BadEmail",
			method: http.MethodGet,
			status: http.StatusOK,
			body:   `{"page":2,"per_page":6,"total":12,"total_pages":2,"data":[{"id":7,"email":"nobody","first_name":"A","last_name":"B","avatar":"https://x"}]}`,
		},
		{
			name:   "BadAvatar",
			method: http.MethodGet,
			status: http.StatusOK,
			body:   `{"page":2,"per_page":6,"total":12,"total_pages":2,"data":[{"id":7,"email":"a@b","first_name":"A","last_name":"B","avatar":"/img/7.jpg"}]}`,
		},
		{
			name:   "NumericID",
			method: http.MethodPost,
			status: http.StatusCreated,
			body:   `{"name":"morpheus","job":"leader","id":42,"createdAt":"2026-10-15T09:30:00.000Z"}`,
		},
		{
			name:   "MissingCreatedAt",
			method: http.MethodPost,
			status: http.StatusCreated,
			body:   `{"name":"morpheus","job":"leader","id":"42"}`,
		},
		{
			name:   "UndocumentedStatus",
			method: http.MethodPost,
			status: http.StatusTeapot,
			body:   `{}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := validator.ValidateResponse(t.Context(), test.method, "/users", test.status, jsonHeader(), []byte(test.body))
			require.ErrorIs(t, err, reqres.ErrMalformedResponse)
		})
	}
}

// TestValidateResponseAvatarContainsHTTP ensures avatars need only contain
// http, not start with it.
func TestValidateResponseAvatarContainsHTTP(t *testing.T) {
	t.Parallel()

	body := `{"page":1,"per_page":6,"total":1,"total_pages":1,"data":[{"id":1,"email":"a@reqres.in","first_name":"A","last_name":"B","avatar":"cdn+http://x/1.jpg"}]}`

	err := newValidator(t).ValidateResponse(t.Context(), http.MethodGet, "/users?page=1", http.StatusOK, jsonHeader(), []byte(body))
	require.NoError(t, err)
}

func TestValidateResponseUnauthorized(t *testing.T) {
	t.Parallel()

	err := newValidator(t).ValidateResponse(t.Context(), http.MethodGet, "/users", http.StatusUnauthorized, jsonHeader(), []byte(`{"error":"Missing API key"}`))
	require.NoError(t, err)
}

func TestValidateResponseRouteNotFound(t *testing.T) {
	t.Parallel()

	validator := newValidator(t)

	err := validator.ValidateResponse(t.Context(), http.MethodGet, "/users/2", http.StatusOK, jsonHeader(), nil)
	require.ErrorIs(t, err, schema.ErrRouteNotFound)

	err = validator.ValidateResponse(t.Context(), http.MethodDelete, "/users", http.StatusNoContent, jsonHeader(), nil)
	require.ErrorIs(t, err, schema.ErrRouteNotFound)
}

func TestNewFromDataInvalid(t *testing.T) {
	t.Parallel()

	_, err := schema.NewFromData(t.Context(), []byte("openapi: ["))
	require.Error(t, err)
}
