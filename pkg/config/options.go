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

package config

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"

	"k8s.io/utils/ptr"
)

// Overrides take precedence over the environment.  Nil fields are left
// alone.
type Overrides struct {
	BaseURL        *string
	LatencyCeiling *time.Duration
	LatencyMode    *string
	ListPage       *int
	FixturePath    *string
	LogRequests    *bool
	LogResponses   *bool
}

func (o *Overrides) apply(config *Config) {
	if o == nil {
		return
	}

	if o.BaseURL != nil {
		config.BaseURL = *o.BaseURL
	}

	if o.LatencyCeiling != nil {
		config.LatencyCeiling = *o.LatencyCeiling
	}

	if o.LatencyMode != nil {
		config.LatencyMode = reqres.LatencyMode(*o.LatencyMode)
	}

	if o.ListPage != nil {
		config.ListPage = *o.ListPage
	}

	if o.FixturePath != nil {
		config.FixturePath = *o.FixturePath
	}

	if o.LogRequests != nil {
		config.LogRequests = *o.LogRequests
	}

	if o.LogResponses != nil {
		config.LogResponses = *o.LogResponses
	}
}

// Options are command line flags that override the environment.
type Options struct {
	// EnvFile is the .env file to seed the environment from.
	EnvFile string

	baseURL        string
	latencyCeiling time.Duration
	latencyMode    string
	listPage       int
	fixturePath    string
	logRequests    bool
	logResponses   bool

	flags *pflag.FlagSet
}

// AddFlags registers flags with the provided flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	o.flags = f

	f.StringVar(&o.EnvFile, "env-file", ".env", "Environment file to load, if it exists.")
	f.StringVar(&o.baseURL, "base-url", "", "API root, overrides API_BASE_URL.")
	f.DurationVar(&o.latencyCeiling, "latency-ceiling", 0, "Creation latency ceiling, overrides LATENCY_CEILING.")
	f.StringVar(&o.latencyMode, "latency-mode", "", "Either enforce or warn, overrides LATENCY_MODE.")
	f.IntVar(&o.listPage, "page", 0, "Listing page to validate, overrides LIST_PAGE.")
	f.StringVar(&o.fixturePath, "fixtures", "", "Creation fixture file, overrides FIXTURE_PATH.")
	f.BoolVar(&o.logRequests, "log-requests", false, "Log every request, overrides LOG_REQUESTS.")
	f.BoolVar(&o.logResponses, "log-responses", false, "Log every response body, overrides LOG_RESPONSES.")
}

// Overrides returns only the flags that were explicitly set.
func (o *Options) Overrides() *Overrides {
	overrides := &Overrides{}

	if o.flags == nil {
		return overrides
	}

	if o.flags.Changed("base-url") {
		overrides.BaseURL = ptr.To(o.baseURL)
	}

	if o.flags.Changed("latency-ceiling") {
		overrides.LatencyCeiling = ptr.To(o.latencyCeiling)
	}

	if o.flags.Changed("latency-mode") {
		overrides.LatencyMode = ptr.To(o.latencyMode)
	}

	if o.flags.Changed("page") {
		overrides.ListPage = ptr.To(o.listPage)
	}

	if o.flags.Changed("fixtures") {
		overrides.FixturePath = ptr.To(o.fixturePath)
	}

	if o.flags.Changed("log-requests") {
		overrides.LogRequests = ptr.To(o.logRequests)
	}

	if o.flags.Changed("log-responses") {
		overrides.LogResponses = ptr.To(o.logResponses)
	}

	return overrides
}
