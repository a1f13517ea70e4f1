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

package api

import (
	"github.com/unikorn-cloud/reqres-contract/pkg/config"
)

const (
	// defaultFixturePath is relative to the suites directory.
	defaultFixturePath = "../../fixtures/users.json"
)

//nolint:gochecknoglobals
var envPaths = []string{
	"../../../test/.env", // From test/api/suites directory
	"../../.env",
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*config.Config, error) {
	return config.Load(envPaths, nil)
}

// FixturePath returns the configured creation fixtures, or the ones
// shipped with the suites.
func FixturePath(c *config.Config) string {
	if c.FixturePath != "" {
		return c.FixturePath
	}

	return defaultFixturePath
}
