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
	"slices"

	"github.com/tidwall/gjson"
)

// typeName returns a JSON type name for diagnostics.
func typeName(r gjson.Result) string {
	if !r.Exists() {
		return "missing"
	}

	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	case gjson.JSON:
		if r.IsArray() {
			return "array"
		}

		return "object"
	}

	return "unknown"
}

func expectedName(t gjson.Type) string {
	switch t {
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	case gjson.Null, gjson.False, gjson.True, gjson.JSON:
	}

	return "value"
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

// expectType checks a required member of an object has the correct type.
func expectType(parent gjson.Result, prefix, key string, want gjson.Type) error {
	value := parent.Get(key)

	if !value.Exists() || value.Type != want {
		return malformed(joinPath(prefix, key), expectedName(want), typeName(value))
	}

	return nil
}

// expectOptionalType checks a member, if present, has the correct type.
func expectOptionalType(parent gjson.Result, prefix, key string, want gjson.Type) error {
	if !parent.Get(key).Exists() {
		return nil
	}

	return expectType(parent, prefix, key, want)
}

func parseObject(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: body is not valid JSON: %q", ErrMalformedResponse, truncate(body))
	}

	root := gjson.ParseBytes(body)

	if !root.IsObject() {
		return gjson.Result{}, malformed("$", "object", typeName(root))
	}

	return root, nil
}

func truncate(body []byte) string {
	const limit = 256

	if len(body) <= limit {
		return string(body)
	}

	return string(body[:limit]) + "..."
}

// DecodeUserPage checks a listing body has the envelope shape, then
// returns it as a typed value.  Every type problem is reported with its
// JSON path rather than surfacing later as a zero value.
func DecodeUserPage(body []byte) (*UserPage, error) {
	root, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{"page", "per_page", "total", "total_pages"} {
		if err := expectType(root, "", key, gjson.Number); err != nil {
			return nil, err
		}
	}

	data := root.Get("data")
	if !data.IsArray() {
		return nil, malformed("data", "array", typeName(data))
	}

	for i, user := range data.Array() {
		prefix := fmt.Sprintf("data.%d", i)

		if !user.IsObject() {
			return nil, malformed(prefix, "object", typeName(user))
		}

		if err := expectType(user, prefix, "id", gjson.Number); err != nil {
			return nil, err
		}

		for _, key := range []string{"email", "first_name", "last_name", "avatar"} {
			if err := expectType(user, prefix, key, gjson.String); err != nil {
				return nil, err
			}
		}
	}

	var page UserPage

	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return &page, nil
}

// DecodeCreatedUser checks a creation body is an object whose known
// members are strings.  Presence of members is a contract concern and
// is left to CheckCreatedUser.
func DecodeCreatedUser(body []byte) (*CreatedUser, error) {
	root, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{"id", "createdAt", "name", "job"} {
		if err := expectOptionalType(root, "", key, gjson.String); err != nil {
			return nil, err
		}
	}

	var user CreatedUser

	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	root.ForEach(func(key, _ gjson.Result) bool {
		user.Keys = append(user.Keys, key.String())

		return true
	})

	return &user, nil
}

// hasKey is true if the decoded user carried the given top level key.
func (u *CreatedUser) hasKey(key string) bool {
	return slices.Contains(u.Keys, key)
}
