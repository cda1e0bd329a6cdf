package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/huynhanx03/go-blockingqueue/pkg/datastructs/queue"
)

// StatsSource is implemented by *queue.ConcurrentQueue.
type StatsSource interface {
	Size() int
	IsInterrupted() bool
	Stats() queue.Stats
}

var _ prometheus.Collector = (*QueueCollector)(nil)

// QueueCollector exports the state and counters of a queue.
// Values are read at scrape time.
type QueueCollector struct {
	src StatsSource

	size         *prometheus.Desc
	interrupted  *prometheus.Desc
	pushed       *prometheus.Desc
	popped       *prometheus.Desc
	peeked       *prometheus.Desc
	timedOut     *prometheus.Desc
	insufficient *prometheus.Desc
	rejected     *prometheus.Desc
}

// NewQueueCollector creates a collector for src. Every metric carries
// constLabels, which lets several queues share one registry.
func NewQueueCollector(namespace string, src StatsSource, constLabels prometheus.Labels) *QueueCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "queue", name), help, nil, constLabels)
	}

	return &QueueCollector{
		src:          src,
		size:         desc("size", "Number of queued elements."),
		interrupted:  desc("interrupted", "1 if the queue is interrupted, 0 otherwise."),
		pushed:       desc("pushed_total", "Elements appended to the queue."),
		popped:       desc("popped_total", "Elements removed from the queue."),
		peeked:       desc("peeked_total", "Elements copied from the head without removal."),
		timedOut:     desc("timeouts_total", "Blocking waits that exceeded the timeout."),
		insufficient: desc("insufficient_total", "Non-blocking calls that found too few elements."),
		rejected:     desc("interrupted_calls_total", "Calls rejected because the queue was interrupted."),
	}
}

// Describe implements prometheus.Collector.
func (c *QueueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.interrupted
	ch <- c.pushed
	ch <- c.popped
	ch <- c.peeked
	ch <- c.timedOut
	ch <- c.insufficient
	ch <- c.rejected
}

// Collect implements prometheus.Collector.
func (c *QueueCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Stats()

	var interrupted float64
	if c.src.IsInterrupted() {
		interrupted = 1
	}

	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.src.Size()))
	ch <- prometheus.MustNewConstMetric(c.interrupted, prometheus.GaugeValue, interrupted)
	ch <- prometheus.MustNewConstMetric(c.pushed, prometheus.CounterValue, float64(stats.Pushed))
	ch <- prometheus.MustNewConstMetric(c.popped, prometheus.CounterValue, float64(stats.Popped))
	ch <- prometheus.MustNewConstMetric(c.peeked, prometheus.CounterValue, float64(stats.Peeked))
	ch <- prometheus.MustNewConstMetric(c.timedOut, prometheus.CounterValue, float64(stats.TimedOut))
	ch <- prometheus.MustNewConstMetric(c.insufficient, prometheus.CounterValue, float64(stats.Insufficient))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(stats.Interrupted))
}
