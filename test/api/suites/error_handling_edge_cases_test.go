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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
	"github.com/unikorn-cloud/reqres-contract/test/api"
)

var _ = Describe("Error Handling and Edge Cases", func() {
	Context("When the latency ceiling cannot be met", func() {
		Describe("Given an enforced ceiling", func() {
			It("should fail the entry", func() {
				options := testConfig.ValidatorOptions()
				options.LatencyCeiling = time.Nanosecond
				options.LatencyMode = reqres.LatencyEnforce

				report := reqres.NewValidator(client, options).ValidateCreationEntry(ctx, api.NewUserPayload().Build())
				Expect(report.Err).To(MatchError(reqres.ErrLatencyExceeded))
				Expect(report.LatencyExceeded).To(BeTrue())
			})
		})

		Describe("Given a ceiling in warning mode", func() {
			It("should flag the entry without failing it", func() {
				options := testConfig.ValidatorOptions()
				options.LatencyCeiling = time.Nanosecond
				options.LatencyMode = reqres.LatencyWarn

				report := reqres.NewValidator(client, options).ValidateCreationEntry(ctx, api.NewUserPayload().Build())
				Expect(report.Err).NotTo(HaveOccurred())
				Expect(report.LatencyExceeded).To(BeTrue())
			})
		})
	})

	Context("When the API cannot be reached", func() {
		Describe("Given an unroutable base URL", func() {
			It("should return a transport error with trace context", func() {
				unreachable := *testConfig
				unreachable.BaseURL = "http://127.0.0.1:1/api"
				unreachable.RequestTimeout = 5 * time.Second

				_, err := api.NewAPIClientWithConfig(&unreachable).ListUsers(ctx, 1)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("trace ID"))
			})
		})
	})

})
