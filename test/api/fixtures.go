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
	"context"
	"time"

	"github.com/google/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reqres-contract/pkg/config"
	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
)

// GenerateTestID returns a short, time ordered, unique suffix for test
// resources.
func GenerateTestID() string {
	return time.Now().Format("20060102-150405") + "-" + uuid.NewString()[:8]
}

// LoadUserFixtures loads the creation fixtures, failing the test if they
// cannot be read.
func LoadUserFixtures(config *config.Config) []reqres.CreateUserRequest {
	fixtures, err := reqres.LoadFixtures(FixturePath(config))
	Expect(err).NotTo(HaveOccurred())

	return fixtures
}

// ListUsers fetches and decodes a page of users, expecting success.
func ListUsers(ctx context.Context, client reqres.ClientInterface, page int) *reqres.UserPage {
	resp, err := client.ListUsers(ctx, page)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(200), "body: %s (trace ID: %s)", resp.Body, resp.TraceID)

	users, err := reqres.DecodeUserPage(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("users per page %d, total users %d\n", len(users.Data), users.Total)

	return users
}

// CreateUser creates a user, expecting success, and returns the decoded
// response alongside its round trip time.
func CreateUser(ctx context.Context, client reqres.ClientInterface, request reqres.CreateUserRequest) (*reqres.CreatedUser, time.Duration) {
	resp, err := client.CreateUser(ctx, request)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(201), "body: %s (trace ID: %s)", resp.Body, resp.TraceID)

	user, err := reqres.DecodeCreatedUser(resp.Body)
	Expect(err).NotTo(HaveOccurred())

	GinkgoWriter.Printf("%s created in %s\n", request.Name, resp.Duration)

	return user, resp.Duration
}
