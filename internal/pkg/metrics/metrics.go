package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_events_dispatched_total",
			Help: "Domain events routed to a handler, by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_notifications_sent_total",
			Help: "Notifications rendered and handed to a channel",
		},
		[]string{"type", "channel", "outcome"},
	)

	PushSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_push_skipped_total",
			Help: "Push deliveries skipped by the payload builder, by reason",
		},
		[]string{"reason"},
	)

	PushDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_push_delivered_total",
			Help: "Push transport results",
		},
		[]string{"outcome"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_store_errors_total",
			Help: "Shared store failures, by caller",
		},
		[]string{"component"},
	)

	RemindersEmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notifier_reminders_emitted_total",
			Help: "Appointment reminder broadcasts emitted",
		},
	)

	ReminderScans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_reminder_scans_total",
			Help: "Catch-up reminder scans, by poll guard decision",
		},
		[]string{"decision"},
	)

	OutboxJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_outbox_jobs_total",
			Help: "Outbox jobs processed, by final status",
		},
		[]string{"status"},
	)
)
