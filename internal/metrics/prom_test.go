package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPromMetrics(reg)

	m.TaskCreated()
	m.TaskCreated()
	m.TasksListed(3)
	m.ObjectWritten()
	m.ObjectWriteFailed()
	m.ObjectWriteFailed()
	m.StoreLatency("put_task", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.created))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.listings))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.listedTasks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.objectWrites.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.objectWrites.WithLabelValues("failure")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "store_operation_latency_seconds")
}

func TestNewPromMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPromMetrics(reg)

	assert.Panics(t, func() { NewPromMetrics(reg) })
}

func TestNoop(t *testing.T) {
	var m TaskMetrics = Noop{}
	m.TaskCreated()
	m.TasksListed(1)
	m.ObjectWritten()
	m.ObjectWriteFailed()
	m.StoreLatency("op", time.Second)
}
