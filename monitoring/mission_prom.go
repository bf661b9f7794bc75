// Copyright 2025 the fleetdesk authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MissionTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fleetdesk_mission_transitions_total",
	Help: "Number of mission lifecycle transitions, by operation and outcome",
}, []string{"operation", "outcome"})

var MissionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fleetdesk_missions_created_total",
	Help: "Number of missions created",
})

var NotificationsFanoutTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fleetdesk_notifications_fanout_total",
	Help: "Number of notifications persisted as transition side effects",
})

var LeaveDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fleetdesk_leave_decisions_total",
	Help: "Number of leave request decisions, by outcome",
}, []string{"outcome"})

var NotificationRetentionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "fleetdesk_daemon_notification_retention_duration_seconds",
	Help:    "Duration of notification retention sweeps in seconds",
	Buckets: prometheus.DefBuckets,
})

var LeaveExpiryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "fleetdesk_daemon_leave_expiry_duration_seconds",
	Help:    "Duration of leave expiry sweeps in seconds",
	Buckets: prometheus.DefBuckets,
})
