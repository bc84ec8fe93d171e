package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Total successful payments",
		},
		[]string{"type"}, // recharge|purchase
	)
	PaymentsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_failed_total",
			Help: "Total failed payment attempts",
		},
		[]string{"type"},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Parent notifications by result",
		},
		[]string{"result"}, // sent|failed
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current notification queue depth",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(PaymentsTotal)
	prometheus.MustRegister(PaymentsFailed)
	prometheus.MustRegister(NotificationsTotal)
	prometheus.MustRegister(WorkerQueueDepth)
}
