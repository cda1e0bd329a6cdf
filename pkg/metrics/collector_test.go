package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-blockingqueue/pkg/datastructs/queue"
)

func TestQueueCollector(t *testing.T) {
	q := queue.New[int]()
	require.NoError(t, q.PushBatch(1, 2, 3))
	_, _ = q.PopOne(false)
	_, _ = q.Front(false)
	_, _ = q.PopBatch(nil, 5, false)

	c := NewQueueCollector("test", q, prometheus.Labels{"queue": "jobs"})

	expected := `
# HELP test_queue_size Number of queued elements.
# TYPE test_queue_size gauge
test_queue_size{queue="jobs"} 2
# HELP test_queue_interrupted 1 if the queue is interrupted, 0 otherwise.
# TYPE test_queue_interrupted gauge
test_queue_interrupted{queue="jobs"} 0
# HELP test_queue_pushed_total Elements appended to the queue.
# TYPE test_queue_pushed_total counter
test_queue_pushed_total{queue="jobs"} 3
# HELP test_queue_popped_total Elements removed from the queue.
# TYPE test_queue_popped_total counter
test_queue_popped_total{queue="jobs"} 1
# HELP test_queue_peeked_total Elements copied from the head without removal.
# TYPE test_queue_peeked_total counter
test_queue_peeked_total{queue="jobs"} 1
# HELP test_queue_insufficient_total Non-blocking calls that found too few elements.
# TYPE test_queue_insufficient_total counter
test_queue_insufficient_total{queue="jobs"} 1
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"test_queue_size",
		"test_queue_interrupted",
		"test_queue_pushed_total",
		"test_queue_popped_total",
		"test_queue_peeked_total",
		"test_queue_insufficient_total",
	)
	assert.NoError(t, err)
}

func TestQueueCollector_Interrupted(t *testing.T) {
	q := queue.New[string]()
	q.Interrupt()
	_ = q.PushOne("x")

	c := NewQueueCollector("", q, nil)
	assert.Equal(t, 8, testutil.CollectAndCount(c))

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range families {
		m := mf.GetMetric()[0]
		if g := m.GetGauge(); g != nil {
			values[mf.GetName()] = g.GetValue()
		} else {
			values[mf.GetName()] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, values["queue_interrupted"])
	assert.Equal(t, 1.0, values["queue_interrupted_calls_total"])
	assert.Equal(t, 0.0, values["queue_size"])
}
