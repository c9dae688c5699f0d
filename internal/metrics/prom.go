package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PromMetrics struct {
	created      prometheus.Counter
	listings     prometheus.Counter
	listedTasks  prometheus.Counter
	objectWrites *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
}

func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {

	m := &PromMetrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tasks_created_total",
			Help: "Number of tasks created",
		}),
		listings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "task_listings_total",
			Help: "Number of task listings served",
		}),
		listedTasks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tasks_listed_total",
			Help: "Number of task records returned by listings",
		}),
		objectWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "object_writes_total",
			Help: "Number of placeholder object writes by result",
		}, []string{"result"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "store_operation_latency_seconds",
			Help:    "Latency of task table and object store calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
	reg.MustRegister(m.created, m.listings, m.listedTasks, m.objectWrites, m.storeLatency)
	return m
}

func (m *PromMetrics) TaskCreated() {
	m.created.Inc()
}
func (m *PromMetrics) TasksListed(n int) {
	m.listings.Inc()
	m.listedTasks.Add(float64(n))
}
func (m *PromMetrics) ObjectWritten() {
	m.objectWrites.WithLabelValues("success").Inc()
}
func (m *PromMetrics) ObjectWriteFailed() {
	m.objectWrites.WithLabelValues("failure").Inc()
}
func (m *PromMetrics) StoreLatency(op string, d time.Duration) {
	m.storeLatency.WithLabelValues(op).Observe(d.Seconds())
}
