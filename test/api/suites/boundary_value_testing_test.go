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

//nolint:testpackage,revive // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
	"github.com/unikorn-cloud/reqres-contract/test/api"
)

var _ = Describe("Boundary Value Testing", func() {
	Context("When listing at the edges of the data set", func() {
		Describe("Given the first page", func() {
			It("should satisfy the listing contract", func() {
				_, err := validator.ValidateListing(ctx, 1)
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Describe("Given a page beyond the last", func() {
			It("should report insufficient data rather than crash", func() {
				first := api.ListUsers(ctx, client, 1)

				beyond := api.ListUsers(ctx, client, first.TotalPages+1)
				Expect(beyond.Data).To(BeEmpty())
				Expect(beyond.Total).To(Equal(first.Total))

				_, err := validator.ValidateListing(ctx, first.TotalPages+1)
				Expect(err).To(MatchError(reqres.ErrInsufficientData))
			})
		})
	})

	Context("When creating users with unusual values", func() {
		Describe("Given non-ASCII names", func() {
			It("should echo Unicode characters unchanged", func() {
				payload := api.NewUserPayload().WithName("Zoë Ångström 陈").Build()

				user, _ := api.CreateUser(ctx, client, payload)
				api.VerifyCreatedUser(payload, user)
			})
		})

		Describe("Given an empty job", func() {
			It("should echo the empty job", func() {
				payload := api.NewUserPayload().WithJob("").Build()

				user, _ := api.CreateUser(ctx, client, payload)
				api.VerifyCreatedUser(payload, user)
			})
		})

		Describe("Given a long job", func() {
			It("should echo the job in full", func() {
				payload := api.NewUserPayload().WithLongJob(1024).Build()

				user, _ := api.CreateUser(ctx, client, payload)
				api.VerifyCreatedUser(payload, user)
			})
		})
	})
})
