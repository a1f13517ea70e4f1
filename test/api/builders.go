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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"strings"
	"time"

	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
)

// UserPayloadBuilder builds user creation payloads for testing.
type UserPayloadBuilder struct {
	payload reqres.CreateUserRequest
}

// NewUserPayload creates a new user payload builder with a unique name.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: reqres.CreateUserRequest{
			Name: "testautomationcreate-" + GenerateTestID(),
			Job:  "contract tester",
		},
	}
}

// WithName sets the user name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload.Name = name

	return b
}

// WithJob sets the user job.
func (b *UserPayloadBuilder) WithJob(job string) *UserPayloadBuilder {
	b.payload.Job = job

	return b
}

// WithLongJob sets a job of the given length.
func (b *UserPayloadBuilder) WithLongJob(length int) *UserPayloadBuilder {
	b.payload.Job = strings.Repeat("x", length)

	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() reqres.CreateUserRequest {
	return b.payload
}

// VerifyUserPage checks the listing invariants directly, independently of
// the validator.
func VerifyUserPage(page *reqres.UserPage) {
	Expect(len(page.Data)).To(BeNumerically("<=", page.Total), "page holds more users than the total")

	if page.PerPage > 0 {
		minimumPages := (page.Total + page.PerPage - 1) / page.PerPage
		Expect(page.TotalPages).To(BeNumerically(">=", minimumPages))
	}

	for _, user := range page.Data {
		Expect(user.Email).To(ContainSubstring("@"), "user %d email", user.ID)
		Expect(user.Avatar).To(ContainSubstring("http"), "user %d avatar", user.ID)
		Expect(user.LastName).NotTo(BeEmpty(), "user %d last name", user.ID)
	}
}

// VerifyCreatedUser checks a creation response echoes the request and was
// created today.
func VerifyCreatedUser(request reqres.CreateUserRequest, user *reqres.CreatedUser) {
	Expect(user.Keys).To(ContainElements("name", "job", "id", "createdAt"))
	Expect(user.Name).To(Equal(request.Name))
	Expect(user.Job).To(Equal(request.Job))
	Expect(user.ID).To(MatchRegexp(`^\d+$`))

	date, _, found := strings.Cut(user.CreatedAt, "T")
	Expect(found).To(BeTrue(), "createdAt %q is not an ISO-8601 timestamp", user.CreatedAt)
	Expect(date).To(Equal(time.Now().UTC().Format(time.DateOnly)))
}
