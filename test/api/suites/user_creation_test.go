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

var _ = Describe("User Creation", func() {
	Context("When creating users", func() {
		Describe("Given the fixture users", func() {
			It("should satisfy the creation contract for every user", func() {
				fixtures := api.LoadUserFixtures(testConfig)

				reports, err := validator.ValidateCreation(ctx, fixtures)

				for _, report := range reports {
					GinkgoWriter.Printf("%s created in %s\n", report.Request.Name, report.Duration)
				}

				Expect(err).NotTo(HaveOccurred())
				Expect(reports).To(HaveLen(len(fixtures)))
			})
		})

		Describe("Given morpheus the leader", func() {
			It("should echo the user with a numeric id", func() {
				request := reqres.CreateUserRequest{
					Name: "morpheus",
					Job:  "leader",
				}

				report := validator.ValidateCreationEntry(ctx, request)
				Expect(report.Err).NotTo(HaveOccurred())

				GinkgoWriter.Printf("%s created in %s\n", request.Name, report.Duration)

				api.VerifyCreatedUser(request, report.User)
			})
		})

		Describe("Given a uniquely named user", func() {
			It("should accept the same user twice", func() {
				payload := api.NewUserPayload().Build()

				first, _ := api.CreateUser(ctx, client, payload)
				second, _ := api.CreateUser(ctx, client, payload)

				api.VerifyCreatedUser(payload, first)
				api.VerifyCreatedUser(payload, second)
			})
		})
	})
})
