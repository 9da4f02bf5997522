// Package metrics expone contadores Prometheus del API y del pipeline comercial.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_leads_created_total",
			Help: "Total number of leads created",
		},
	)

	leadStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_lead_status_changes_total",
			Help: "Total number of lead status transitions",
		},
		[]string{"from", "to"},
	)

	projectsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_projects_created_total",
			Help: "Total number of projects derived from approved leads",
		},
	)

	followUpsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_followups_completed_total",
			Help: "Total number of follow-ups completed",
		},
	)

	followUpsOverdue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crm_followups_overdue",
			Help: "Pending follow-ups whose scheduled date is in the past (last scan)",
		},
	)

	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_events_published_total",
			Help: "Domain events handed to the publisher, by type and result",
		},
		[]string{"type", "result"},
	)
)

// Middleware mide cada request por ruta registrada (no por path concreto,
// para no disparar la cardinalidad con los ids).
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

func RecordLeadCreated() {
	leadsCreated.Inc()
}

func RecordStatusChange(from, to string) {
	leadStatusChanges.WithLabelValues(from, to).Inc()
}

func RecordProjectCreated() {
	projectsCreated.Inc()
}

func RecordFollowUpCompleted() {
	followUpsCompleted.Inc()
}

func SetOverdueFollowUps(n int) {
	followUpsOverdue.Set(float64(n))
}
