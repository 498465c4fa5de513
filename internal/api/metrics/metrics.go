// Package metrics defines all custom Prometheus metrics for the blog API. It
// is the single source of truth for metric names, labels, and help strings.
// Metrics register with the default registry at import time via promauto; the
// echoprometheus middleware adds the generic HTTP request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered accounts.",
	},
)

// AuthRejectionsTotal counts requests rejected by the authentication or
// authorization gates.
// Label:
//   - reason: "missing_credential", "invalid_credential", "user_gone",
//     "role_denied", or "ownership_denied"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by an auth gate, by reason.",
	},
	[]string{"reason"},
)

// PostsCreatedTotal counts newly created posts.
// Label:
//   - published: "true" or "false"
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created, by published flag.",
	},
	[]string{"published"},
)

// CommentsCreatedTotal counts newly created comments.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// UploadsTotal counts featured-image uploads by outcome.
// Label:
//   - result: "ok" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of featured image uploads, by result.",
	},
	[]string{"result"},
)
