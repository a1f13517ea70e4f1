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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
	"github.com/unikorn-cloud/reqres-contract/test/api"
)

var _ = Describe("Security and Authentication", func() {
	Context("When accessing API with different authentication states", func() {
		Describe("Given missing authentication", func() {
			It("should reject listing without an API key", func() {
				anonymous := api.NewAPIClientWithKeys(testConfig, reqres.APIKeys{})

				resp, err := anonymous.ListUsers(ctx, testConfig.ListPage)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeNumerically(">=", http.StatusBadRequest))
			})

			It("should reject creation without an API key", func() {
				anonymous := api.NewAPIClientWithKeys(testConfig, reqres.APIKeys{})

				resp, err := anonymous.CreateUser(ctx, api.NewUserPayload().Build())
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeNumerically(">=", http.StatusBadRequest))
			})

			It("should fail the listing contract on status", func() {
				anonymous := api.NewAPIClientWithKeys(testConfig, reqres.APIKeys{})

				_, err := reqres.NewValidator(anonymous, testConfig.ValidatorOptions()).ValidateListing(ctx, testConfig.ListPage)
				Expect(err).To(MatchError(reqres.ErrUnexpectedStatus))
			})
		})

		Describe("Given invalid authentication", func() {
			It("should reject an unknown API key", func() {
				forged := api.NewAPIClientWithKeys(testConfig, reqres.APIKeys{
					Get:  "testautomation-" + api.GenerateTestID(),
					Post: "testautomation-" + api.GenerateTestID(),
				})

				resp, err := forged.ListUsers(ctx, testConfig.ListPage)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeNumerically(">=", http.StatusBadRequest))
			})
		})
	})
})
