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
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spjmurray/go-util/pkg/set"
)

// minimumListing is the number of users the per-entry listing checks
// look at.
const minimumListing = 2

//nolint:gochecknoglobals
var (
	// numericID is the format of server generated user IDs.
	numericID = regexp.MustCompile(`^\d+$`)

	// createdUserKeys must all be present in a creation response.
	createdUserKeys = []string{"name", "job", "id", "createdAt"}
)

// CheckUserPage asserts the listing contract holds for a decoded page.
// The first unmet expectation is returned.
func CheckUserPage(page *UserPage) error {
	if len(page.Data) < minimumListing {
		return fmt.Errorf("%w: page %d has %d users, at least %d are required", ErrInsufficientData, page.Page, len(page.Data), minimumListing)
	}

	for i := range minimumListing {
		if page.Data[i].LastName == "" {
			return violation(fmt.Sprintf("data.%d.last_name", i), "a non-empty string", `""`)
		}
	}

	if len(page.Data) > page.Total {
		return violation("data", fmt.Sprintf("at most %d users", page.Total), len(page.Data))
	}

	for i, user := range page.Data {
		if !strings.Contains(user.Email, "@") {
			return violation(fmt.Sprintf("data.%d.email", i), `a string containing "@"`, user.Email)
		}

		if !strings.Contains(user.Avatar, "http") {
			return violation(fmt.Sprintf("data.%d.avatar", i), `a string containing "http"`, user.Avatar)
		}
	}

	if page.PerPage > 0 {
		minimum := (page.Total + page.PerPage - 1) / page.PerPage

		if page.TotalPages < minimum {
			return violation("total_pages", fmt.Sprintf("at least %d", minimum), page.TotalPages)
		}
	}

	return nil
}

// CheckCreatedUser asserts the creation contract holds for a decoded
// response to the given request.  The creation date is compared with
// now in UTC.
func CheckCreatedUser(request CreateUserRequest, user *CreatedUser, now time.Time) error {
	if err := checkCreatedIdentity(user, now); err != nil {
		return err
	}

	return checkCreatedEcho(request, user)
}

// checkCreatedIdentity checks the server generated members.
func checkCreatedIdentity(user *CreatedUser, now time.Time) error {
	if !user.hasKey("id") {
		return violation("id", "a present key", "missing")
	}

	if !numericID.MatchString(user.ID) {
		return violation("id", `a string matching ^\d+$`, user.ID)
	}

	if !user.hasKey("createdAt") {
		return violation("createdAt", "a present key", "missing")
	}

	today := now.UTC().Format(time.DateOnly)

	if date, _, found := strings.Cut(user.CreatedAt, "T"); !found || date != today {
		return violation("createdAt", "a timestamp dated "+today, user.CreatedAt)
	}

	return nil
}

// checkCreatedEcho checks the key set and that the request was echoed.
func checkCreatedEcho(request CreateUserRequest, user *CreatedUser) error {
	if missing := missingKeys(user.Keys); len(missing) != 0 {
		return violation("$", "keys "+strings.Join(createdUserKeys, ", "), "missing "+strings.Join(missing, ", "))
	}

	if user.Name != request.Name {
		return violation("name", fmt.Sprintf("%q", request.Name), fmt.Sprintf("%q", user.Name))
	}

	if user.Job != request.Job {
		return violation("job", fmt.Sprintf("%q", request.Job), fmt.Sprintf("%q", user.Job))
	}

	return nil
}

// missingKeys returns the required creation keys absent from keys, in
// lexical order.  Extra keys are permitted.
func missingKeys(keys []string) []string {
	required := set.New[string](createdUserKeys...)
	present := set.New[string](keys...)

	var missing []string

	for key := range required.Difference(present).All() {
		missing = append(missing, key)
	}

	sort.Strings(missing)

	return missing
}

// CheckLatency asserts a response arrived strictly inside the ceiling.
// A zero ceiling disables the check.
func CheckLatency(duration, ceiling time.Duration) error {
	if ceiling > 0 && duration >= ceiling {
		return fmt.Errorf("%w: took %s, ceiling is %s", ErrLatencyExceeded, duration, ceiling)
	}

	return nil
}
