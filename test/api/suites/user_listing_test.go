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

	"github.com/unikorn-cloud/reqres-contract/test/api"
)

var _ = Describe("User Listing", func() {
	Context("When listing users", func() {
		Describe("Given the configured page", func() {
			It("should satisfy the listing contract", func() {
				report, err := validator.ValidateListing(ctx, testConfig.ListPage)
				Expect(err).NotTo(HaveOccurred())

				GinkgoWriter.Printf("users per page %d, total users %d\n", report.Count, report.Total)

				Expect(report.Page).To(Equal(testConfig.ListPage))
				Expect(report.Count).To(BeNumerically("<=", report.Total))
			})

			It("should return typed users with consistent pagination", func() {
				page := api.ListUsers(ctx, client, testConfig.ListPage)

				Expect(page.Data).To(HaveLen(min(page.PerPage, page.Total-(page.Page-1)*page.PerPage)))
				api.VerifyUserPage(page)
			})
		})

		Describe("Given every page in turn", func() {
			It("should report the same total on every page", func() {
				first := api.ListUsers(ctx, client, 1)
				seen := len(first.Data)

				for page := 2; page <= first.TotalPages; page++ {
					users := api.ListUsers(ctx, client, page)
					Expect(users.Total).To(Equal(first.Total))
					api.VerifyUserPage(users)

					seen += len(users.Data)
				}

				Expect(seen).To(Equal(first.Total))
			})

			It("should not repeat users across pages", func() {
				ids := map[int]bool{}

				first := api.ListUsers(ctx, client, 1)

				for page := 1; page <= first.TotalPages; page++ {
					for _, user := range api.ListUsers(ctx, client, page).Data {
						Expect(ids).NotTo(HaveKey(user.ID), "user %d listed twice", user.ID)
						ids[user.ID] = true
					}
				}
			})
		})
	})
})
