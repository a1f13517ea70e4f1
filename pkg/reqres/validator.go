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
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// LatencyMode controls what happens when a response exceeds the latency
// ceiling.  Wall clock latency depends on where the suite runs, so the
// ceiling is a soft threshold that may be downgraded to a warning.
type LatencyMode string

const (
	// LatencyEnforce fails the exchange.
	LatencyEnforce LatencyMode = "enforce"
	// LatencyWarn logs and records the overrun only.
	LatencyWarn LatencyMode = "warn"
)

// DefaultLatencyCeiling is the creation latency budget.
const DefaultLatencyCeiling = 300 * time.Millisecond

// ErrInvalidLatencyMode is raised when parsing an unknown mode.
var ErrInvalidLatencyMode = errors.New("invalid latency mode")

// ParseLatencyMode converts a string into a latency mode.
func ParseLatencyMode(s string) (LatencyMode, error) {
	switch mode := LatencyMode(s); mode {
	case LatencyEnforce, LatencyWarn:
		return mode, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidLatencyMode, s)
}

// SchemaValidator checks a raw response against an API description.
type SchemaValidator interface {
	ValidateResponse(ctx context.Context, method, path string, status int, header http.Header, body []byte) error
}

// ValidatorOptions configures a Validator.
type ValidatorOptions struct {
	// LatencyCeiling defaults to DefaultLatencyCeiling.
	LatencyCeiling time.Duration
	// LatencyMode defaults to LatencyEnforce.
	LatencyMode LatencyMode
	// Now is the clock used for creation date checks.
	Now func() time.Time
	// Metrics, if set, records observations.
	Metrics *Metrics
	// Schema, if set, is consulted after the status check.
	Schema SchemaValidator
}

// Validator runs the listing and creation contracts against an API.
type Validator struct {
	client    ClientInterface
	options   ValidatorOptions
	endpoints *Endpoints
}

// NewValidator returns a new validator.
func NewValidator(client ClientInterface, options ValidatorOptions) *Validator {
	if options.LatencyCeiling == 0 {
		options.LatencyCeiling = DefaultLatencyCeiling
	}

	if options.LatencyMode == "" {
		options.LatencyMode = LatencyEnforce
	}

	if options.Now == nil {
		options.Now = time.Now
	}

	return &Validator{
		client:    client,
		options:   options,
		endpoints: NewEndpoints(),
	}
}

func expectStatus(resp *Response, expected int) error {
	if resp.StatusCode != expected {
		return fmt.Errorf("%w: expected %d, got %d, body: %s (trace ID: %s)", ErrUnexpectedStatus, expected, resp.StatusCode, truncate(resp.Body), resp.TraceID)
	}

	return nil
}

func (v *Validator) checkSchema(ctx context.Context, method, path string, resp *Response) error {
	if v.options.Schema == nil {
		return nil
	}

	return v.options.Schema.ValidateResponse(ctx, method, path, resp.StatusCode, resp.Header, resp.Body)
}

// ValidateListing fetches a page of users and checks the listing
// contract.
func (v *Validator) ValidateListing(ctx context.Context, page int) (*ListingReport, error) {
	report, err := v.validateListing(ctx, page)

	v.options.Metrics.observeFailure(operationList, err)

	return report, err
}

func (v *Validator) validateListing(ctx context.Context, page int) (*ListingReport, error) {
	log := log.FromContext(ctx)

	resp, err := v.client.ListUsers(ctx, page)
	if err != nil {
		return nil, err
	}

	v.options.Metrics.observeRequest(operationList, resp)

	if err := expectStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	if err := v.checkSchema(ctx, http.MethodGet, v.endpoints.ListUsers(page), resp); err != nil {
		return nil, err
	}

	users, err := DecodeUserPage(resp.Body)
	if err != nil {
		return nil, err
	}

	if err := CheckUserPage(users); err != nil {
		return nil, err
	}

	log.Info("listed users", "page", users.Page, "count", len(users.Data), "total", users.Total, "duration", resp.Duration)

	report := &ListingReport{
		Page:     users.Page,
		Count:    len(users.Data),
		Total:    users.Total,
		Duration: resp.Duration,
	}

	return report, nil
}

// ValidateCreation creates a user for every fixture, in order, checking
// the creation contract for each.  Every fixture is attempted, and a
// report is returned for each.  The error joins all failures.
func (v *Validator) ValidateCreation(ctx context.Context, fixtures []CreateUserRequest) ([]CreationReport, error) {
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: no users to create", ErrInvalidFixture)
	}

	reports := make([]CreationReport, 0, len(fixtures))

	var errs []error

	for _, fixture := range fixtures {
		report := v.ValidateCreationEntry(ctx, fixture)

		if report.Err != nil {
			errs = append(errs, fmt.Errorf("user %q: %w", fixture.Name, report.Err))
		}

		reports = append(reports, report)
	}

	return reports, errors.Join(errs...)
}

// ValidateCreationEntry creates a single user and checks the response.
func (v *Validator) ValidateCreationEntry(ctx context.Context, request CreateUserRequest) CreationReport {
	report := CreationReport{
		Request: request,
	}

	report.Err = v.validateCreationEntry(ctx, &report)

	v.options.Metrics.observeFailure(operationCreate, report.Err)

	return report
}

func (v *Validator) validateCreationEntry(ctx context.Context, report *CreationReport) error {
	log := log.FromContext(ctx).WithValues("name", report.Request.Name)

	resp, err := v.client.CreateUser(ctx, report.Request)
	if err != nil {
		return err
	}

	report.Duration = resp.Duration

	v.options.Metrics.observeRequest(operationCreate, resp)

	if err := expectStatus(resp, http.StatusCreated); err != nil {
		return err
	}

	if err := v.checkSchema(ctx, http.MethodPost, v.endpoints.CreateUser(), resp); err != nil {
		return err
	}

	user, err := DecodeCreatedUser(resp.Body)
	if err != nil {
		return err
	}

	report.User = user

	if err := checkCreatedIdentity(user, v.options.Now()); err != nil {
		return err
	}

	if err := CheckLatency(resp.Duration, v.options.LatencyCeiling); err != nil {
		report.LatencyExceeded = true

		v.options.Metrics.observeLatencyExceeded(operationCreate)

		if v.options.LatencyMode == LatencyEnforce {
			return err
		}

		log.Info("latency ceiling exceeded, not enforced", "duration", resp.Duration, "ceiling", v.options.LatencyCeiling)
	}

	if err := checkCreatedEcho(report.Request, user); err != nil {
		return err
	}

	log.Info("user created", "id", user.ID, "duration", resp.Duration)

	return nil
}
