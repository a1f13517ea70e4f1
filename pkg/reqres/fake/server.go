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

// Package fake provides an in-process implementation of the users API
// that behaves like the public reqres deployment, for use in tests.
package fake

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
)

const (
	defaultPerPage = 6
	defaultUsers   = 12

	// createdAtLayout is what reqres uses for timestamps.
	createdAtLayout = "2006-01-02T15:04:05.000Z"
)

// Options configures the fake API.
type Options struct {
	// Users is the data set, defaults to 12 generated users.
	Users []reqres.User
	// PerPage defaults to 6.
	PerPage *int
	// Keys, if set, are required in the x-api-key header for the
	// corresponding operation.
	Keys reqres.APIKeys
	// Delay is added to every response.
	Delay time.Duration
	// Now is the clock used for creation timestamps.
	Now func() time.Time
}

// Server is a running fake API.
type Server struct {
	*httptest.Server

	options Options
	perPage int

	lock    sync.Mutex
	nextID  int
	created []reqres.CreateUserRequest
}

// Users generates n users in the style of the reqres data set.
func Users(n int) []reqres.User {
	users := make([]reqres.User, n)

	for i := range users {
		id := i + 1

		users[i] = reqres.User{
			ID:        id,
			Email:     fmt.Sprintf("user.%d@reqres.in", id),
			FirstName: fmt.Sprintf("First%d", id),
			LastName:  fmt.Sprintf("Last%d", id),
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		}
	}

	return users
}

// NewServer starts a fake API, callers must Close it.
func NewServer(options Options) *Server {
	if options.Users == nil {
		options.Users = Users(defaultUsers)
	}

	if options.Now == nil {
		options.Now = time.Now
	}

	perPage := defaultPerPage
	if options.PerPage != nil {
		perPage = *options.PerPage
	}

	s := &Server{
		options: options,
		perPage: perPage,
		nextID:  100,
	}

	s.Server = httptest.NewServer(s.Handler())

	return s
}

// Handler returns the API router.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(s.delay)

	router.With(s.requireKey(func(k reqres.APIKeys) string { return k.Get })).Get("/users", s.listUsers)
	router.With(s.requireKey(func(k reqres.APIKeys) string { return k.Post })).Post("/users", s.createUser)

	return router
}

// Created returns the creation requests received, in order.
func (s *Server) Created() []reqres.CreateUserRequest {
	s.lock.Lock()
	defer s.lock.Unlock()

	out := make([]reqres.CreateUserRequest, len(s.created))
	copy(out, s.created)

	return out
}

func (s *Server) delay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.options.Delay > 0 {
			select {
			case <-time.After(s.options.Delay):
			case <-r.Context().Done():
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireKey(key func(reqres.APIKeys) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected := key(s.options.Keys); expected != "" && r.Header.Get("X-Api-Key") != expected {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Missing API key"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	page := 1

	if value := r.URL.Query().Get("page"); value != "" {
		p, err := strconv.Atoi(value)
		if err != nil || p < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid page"})
			return
		}

		page = p
	}

	total := len(s.options.Users)

	totalPages := 0
	if s.perPage > 0 {
		totalPages = (total + s.perPage - 1) / s.perPage
	}

	data := []reqres.User{}

	if start := (page - 1) * s.perPage; start < total {
		data = s.options.Users[start:min(start+s.perPage, total)]
	}

	writeJSON(w, http.StatusOK, &reqres.UserPage{
		Page:       page,
		PerPage:    s.perPage,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
		Support: &reqres.Support{
			URL:  "https://reqres.in/#support-heading",
			Text: "To keep ReqRes free, contributions towards server costs are appreciated!",
		},
	})
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	// Like reqres, everything in the body is echoed back.
	var body map[string]any

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid body"})
		return
	}

	var request reqres.CreateUserRequest

	request.Name, _ = body["name"].(string)
	request.Job, _ = body["job"].(string)

	s.lock.Lock()
	id := s.nextID
	s.nextID++
	s.created = append(s.created, request)
	s.lock.Unlock()

	body["id"] = strconv.Itoa(id)
	body["createdAt"] = s.options.Now().UTC().Format(createdAtLayout)

	writeJSON(w, http.StatusCreated, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
