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
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is raised when the status code isn't the one
	// the operation defines as success.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrMalformedResponse is raised when a body doesn't have the shape
	// required to decode it.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInsufficientData is raised when a listing has too few entries
	// to run the per-entry checks.
	ErrInsufficientData = errors.New("insufficient data to validate")

	// ErrContractViolation is raised when a decoded value breaks the
	// contract.
	ErrContractViolation = errors.New("contract violation")

	// ErrLatencyExceeded is raised when a response took at least as long
	// as the latency ceiling.
	ErrLatencyExceeded = errors.New("latency ceiling exceeded")

	// ErrInvalidFixture is raised when fixture data cannot be used.
	ErrInvalidFixture = errors.New("invalid fixture")
)

// Violation describes a single unmet expectation.
type Violation struct {
	// Field is a JSON path like "data.0.email".
	Field string
	// Expected is a human readable description of the expectation.
	Expected string
	// Actual is the observed value.
	Actual any
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, got %v", ErrContractViolation, v.Field, v.Expected, v.Actual)
}

func (v *Violation) Unwrap() error {
	return ErrContractViolation
}

func violation(field, expected string, actual any) error {
	return &Violation{
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}

// malformed reports a type mismatch found while shape checking.
func malformed(path, expected, actual string) error {
	return fmt.Errorf("%w: %s: expected %s, got %s", ErrMalformedResponse, path, expected, actual)
}
