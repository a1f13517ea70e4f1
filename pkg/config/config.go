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

// Package config resolves the suite configuration once, at startup, from
// the environment, an optional .env file and command line overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/unikorn-cloud/reqres-contract/pkg/constants"
	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
)

var (
	// ErrMissingConfiguration is raised when required values are unset.
	ErrMissingConfiguration = errors.New("missing required configuration")

	// ErrInvalidConfiguration is raised when a value cannot be parsed.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Config is immutable once loaded.
type Config struct {
	BaseURL         string
	Keys            reqres.APIKeys
	LatencyCeiling  time.Duration
	LatencyMode     reqres.LatencyMode
	RequestTimeout  time.Duration
	UserAgent       string
	ListPage        int
	FixturePath     string
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// ClientOptions returns the options for an API client.
func (c *Config) ClientOptions() reqres.ClientOptions {
	return reqres.ClientOptions{
		BaseURL:      c.BaseURL,
		Keys:         c.Keys,
		UserAgent:    c.UserAgent,
		Timeout:      c.RequestTimeout,
		LogRequests:  c.LogRequests || c.DebugLogging,
		LogResponses: c.LogResponses || c.DebugLogging,
	}
}

// ValidatorOptions returns the options for a contract validator.
func (c *Config) ValidatorOptions() reqres.ValidatorOptions {
	return reqres.ValidatorOptions{
		LatencyCeiling: c.LatencyCeiling,
		LatencyMode:    c.LatencyMode,
	}
}

// Load loads configuration from environment variables, seeded from the
// first of envFiles that exists, with any overrides applied last.
// Returns an error if required configuration values are missing.
func Load(envFiles []string, overrides *Overrides) (*Config, error) {
	loadEnvFile(envFiles)

	keys, err := getAPIKeys()
	if err != nil {
		return nil, err
	}

	config := &Config{
		BaseURL:         getStringWithDefault("API_BASE_URL", constants.DefaultBaseURL),
		Keys:            keys,
		LatencyCeiling:  getDurationWithDefault("LATENCY_CEILING", reqres.DefaultLatencyCeiling),
		LatencyMode:     reqres.LatencyMode(getStringWithDefault("LATENCY_MODE", string(reqres.LatencyEnforce))),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		UserAgent:       getStringWithDefault("USER_AGENT", constants.DefaultUserAgent),
		ListPage:        getIntWithDefault("LIST_PAGE", 2),
		FixturePath:     os.Getenv("FIXTURE_PATH"),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	overrides.apply(config)

	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getAPIKeys reads the keys object, then applies individual overrides.
func getAPIKeys() (reqres.APIKeys, error) {
	var keys reqres.APIKeys

	if value := os.Getenv("REQRES_API_KEY"); value != "" {
		if err := json.Unmarshal([]byte(value), &keys); err != nil {
			return keys, fmt.Errorf("%w: REQRES_API_KEY must be a JSON object with req_get_api and req_post_api: %w", ErrInvalidConfiguration, err)
		}
	}

	if value := os.Getenv("REQRES_GET_API_KEY"); value != "" {
		keys.Get = value
	}

	if value := os.Getenv("REQRES_POST_API_KEY"); value != "" {
		keys.Post = value
	}

	return keys, nil
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
// Plain integers are interpreted as milliseconds.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

func getIntWithDefault(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}

	return value
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile(envFiles []string) {
	var envPath string

	for _, path := range envFiles {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validate checks that all required configuration values are set and
// that the rest make sense.  Required values may be absent when
// integration testing is skipped.
func validate(config *Config) error {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"API_BASE_URL", config.BaseURL},
		{"REQRES_GET_API_KEY", config.Keys.Get},
		{"REQRES_POST_API_KEY", config.Keys.Post},
	}

	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}

	// Skipped runs never reach the API, so keyless CI can still load.
	if len(missing) > 0 && !config.SkipIntegration {
		return fmt.Errorf("%w: %s. Please set these environment variables, or REQRES_API_KEY, or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	if _, err := reqres.ParseLatencyMode(string(config.LatencyMode)); err != nil {
		return fmt.Errorf("%w: LATENCY_MODE: %w", ErrInvalidConfiguration, err)
	}

	if config.LatencyCeiling < 0 {
		return fmt.Errorf("%w: LATENCY_CEILING must not be negative", ErrInvalidConfiguration)
	}

	if config.ListPage < 1 {
		return fmt.Errorf("%w: LIST_PAGE must be at least 1", ErrInvalidConfiguration)
	}

	return nil
}
