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

import (
	"net/http"
	"time"
)

// User is a single user as projected by the listing endpoint.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Support is the optional advertising block reqres attaches to listings.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// UserPage is the paginated listing envelope.
type UserPage struct {
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
	Data       []User   `json:"data"`
	Support    *Support `json:"support,omitempty"`
}

// CreateUserRequest is a user creation payload, typically loaded from
// a fixture file.
type CreateUserRequest struct {
	Name string `json:"name" yaml:"name"`
	Job  string `json:"job" yaml:"job"`
}

// CreatedUser is the creation response.  The server echoes the request
// and adds an ID and creation timestamp.
type CreatedUser struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	Name      string `json:"name"`
	Job       string `json:"job"`

	// Keys is every top level key present in the response, used for
	// key set containment checks.
	Keys []string `json:"-"`
}

// Response is a raw HTTP exchange as seen by the client.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Duration   time.Duration
	TraceID    string
}

// ListingReport summarises a successful listing validation.
type ListingReport struct {
	Page     int
	Count    int
	Total    int
	Duration time.Duration
}

// CreationReport is the outcome of a single fixture entry.
type CreationReport struct {
	Request         CreateUserRequest
	User            *CreatedUser
	Duration        time.Duration
	LatencyExceeded bool
	Err             error
}

// Failed returns true if the entry did not satisfy the contract.
func (r *CreationReport) Failed() bool {
	return r.Err != nil
}
