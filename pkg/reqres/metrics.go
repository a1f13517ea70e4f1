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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "reqres_contract"

	operationList   = "list_users"
	operationCreate = "create_user"
)

// Metrics records what the validator observed.  A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	failures        *prometheus.CounterVec
	latencyExceeded *prometheus.CounterVec
}

// NewMetrics creates the validator metrics and registers them with the
// registerer, if one is given.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Round trip time of requests made against the API.",
			Buckets:   []float64{.025, .05, .1, .2, .3, .5, 1, 2.5, 5},
		}, []string{"operation", "status"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "failures_total",
			Help:      "Contract failures by operation and kind.",
		}, []string{"operation", "kind"}),
		latencyExceeded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "latency_exceeded_total",
			Help:      "Responses that arrived at or after the latency ceiling.",
		}, []string{"operation"}),
	}
}

func (m *Metrics) observeRequest(operation string, resp *Response) {
	if m == nil {
		return
	}

	m.requestDuration.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Observe(resp.Duration.Seconds())
}

func (m *Metrics) observeFailure(operation string, err error) {
	if m == nil || err == nil {
		return
	}

	m.failures.WithLabelValues(operation, failureKind(err)).Inc()
}

func (m *Metrics) observeLatencyExceeded(operation string) {
	if m == nil {
		return
	}

	m.latencyExceeded.WithLabelValues(operation).Inc()
}

// failureKind maps an error onto a low cardinality label.
func failureKind(err error) string {
	switch {
	case errors.Is(err, ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, ErrContractViolation):
		return "violation"
	case errors.Is(err, ErrLatencyExceeded):
		return "latency"
	}

	return "transport"
}
