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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFixtures reads an ordered collection of creation payloads from a
// JSON or YAML file, chosen by extension.
func LoadFixtures(path string) ([]CreateUserRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrInvalidFixture, path, err)
	}

	fixtures, err := ParseFixtures(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fixtures, nil
}

// ParseFixtures decodes fixture data.  The format is a file extension
// e.g. ".json" or ".yaml".
func ParseFixtures(data []byte, format string) ([]CreateUserRequest, error) {
	var fixtures []CreateUserRequest

	switch strings.ToLower(format) {
	case ".json":
		if err := json.Unmarshal(data, &fixtures); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fixtures); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidFixture, format)
	}

	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: no users defined", ErrInvalidFixture)
	}

	for i := range fixtures {
		if fixtures[i].Name == "" {
			return nil, fmt.Errorf("%w: user %d has no name", ErrInvalidFixture, i)
		}
	}

	return fixtures, nil
}
