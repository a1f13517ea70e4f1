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

// Package api provides integration test utilities for the users API.
//
// # Shared Client
//
// The suites drive the API through the same reqres.Client and
// reqres.Validator the command line runner uses, so a contract that
// passes here passes in CI and vice versa.  Suites additionally assert
// on the raw responses with Gomega, which triangulates the validator
// itself: a change to the contract needs a compensating change in both.
//
// Test-specific features layered on top of the client:
//   - Every exchange is mirrored to GinkgoWriter with its trace context
//   - Payload builders that generate unique user names
//   - Fixture and .env resolution relative to the suites directory
package api
