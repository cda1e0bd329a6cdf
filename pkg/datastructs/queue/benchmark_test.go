package queue

import (
	"sync"
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// queueBenchConfig holds benchmark test configuration.
type queueBenchConfig struct {
	name  string
	batch int
}

// benchConfigs defines the batch sizes for benchmarking.
var benchConfigs = []queueBenchConfig{
	{"Batch1", 1},
	{"Batch16", 16},
	{"Batch256", 256},
}

// ===========================================================================
// Queue Factory Registry
// ===========================================================================

// queueFactory creates a Queue[int].
type queueFactory func() Queue[int]

// queueImplementations holds all registered queue implementations.
var queueImplementations = map[string]queueFactory{
	"Concurrent":          func() Queue[int] { return New[int]() },
	"Concurrent/Prealloc": func() Queue[int] { return New[int](WithCapacity(4096)) },
}

// ===========================================================================
// Single-Threaded Benchmarks
// ===========================================================================

// BenchmarkPushPop measures a push followed by a non-blocking pop.
func BenchmarkPushPop(b *testing.B) {
	for implName, factory := range queueImplementations {
		b.Run(implName, func(b *testing.B) {
			q := factory()
			b.ReportAllocs()
			for i := 0; b.Loop(); i++ {
				_ = q.PushOne(i)
				_, _ = q.PopOne(false)
			}
		})
	}
}

// BenchmarkPushPopBatch measures batch transfers of several sizes.
func BenchmarkPushPopBatch(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			b.Run(implName+"/"+cfg.name, func(b *testing.B) {
				q := factory()
				items := make([]int, cfg.batch)
				dst := make([]int, 0, cfg.batch)
				b.ReportAllocs()
				for b.Loop() {
					_ = q.PushBatch(items...)
					dst, _ = q.PopBatch(dst[:0], cfg.batch, false)
				}
			})
		}
	}
}

// BenchmarkFront measures a non-removing peek.
func BenchmarkFront(b *testing.B) {
	q := NewFromSlice([]int{1, 2, 3})
	b.ReportAllocs()
	for b.Loop() {
		_, _ = q.Front(false)
	}
}

// ===========================================================================
// Concurrent Benchmarks
// ===========================================================================

// concurrencyConfigs defines producer/consumer count combinations.
var concurrencyConfigs = []struct {
	name      string
	producers int
	consumers int
}{
	{"1P1C", 1, 1},
	{"2P2C", 2, 2},
	{"4P4C", 4, 4},
	{"8P8C", 8, 8},
}

// BenchmarkConcurrent_ProducerConsumer measures blocking handoff throughput.
func BenchmarkConcurrent_ProducerConsumer(b *testing.B) {
	const itemsPerProducer = 10000

	for _, cc := range concurrencyConfigs {
		b.Run(cc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				q := New[int]()
				total := cc.producers * itemsPerProducer

				var consumed sync.WaitGroup
				perConsumer := total / cc.consumers
				for range cc.consumers {
					consumed.Go(func() {
						for range perConsumer {
							_, _ = q.PopOne(true)
						}
					})
				}

				for range cc.producers {
					go func() {
						for i := range itemsPerProducer {
							_ = q.PushOne(i)
						}
					}()
				}

				consumed.Wait()
			}
		})
	}
}
