// Package metrics defines the custom Prometheus metrics of the API. It is the
// single source of truth for metric names, labels and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; the echoprometheus handler mounted at /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "umd"

// ── Resource metrics ──────────────────────────────────────────────────────────

// ResourcesCreatedTotal counts records created through the API.
// Label:
//   - resource: "user", "course" or "image"
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of records created, by resource.",
	},
	[]string{"resource"},
)

// ErrorsTotal counts error responses rendered by the central error handler.
// Label:
//   - kind: "bad_request", "conflict", "not_found", "unauthorized", "forbidden", "internal" or "http"
var ErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "errors_total",
		Help:      "Total number of error responses, by error kind.",
	},
	[]string{"kind"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests rejected by the gateway.
// Label:
//   - reason: "missing_token", "invalid_token" or "forbidden_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests refused by the auth rate limiter.
// Label:
//   - route: the matched route path (e.g. "/users/login")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests refused by the rate limiter.",
	},
	[]string{"route"},
)
