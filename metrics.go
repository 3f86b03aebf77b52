package qgate

import (
	"sort"
	"sync"
	"time"
)

/*
Metrics accumulates timings across compositions. Workers never touch it;
the composer records a composition's chunk results after the join.
*/
type Metrics struct {
	mu             sync.RWMutex
	Compositions   int64
	ChunkCount     int64
	SymbolCount    int64
	WorkerCount    int
	TotalChunkTime time.Duration
	LastFoldTime   time.Duration

	AverageChunkLatency time.Duration
	P95ChunkLatency     time.Duration
	P99ChunkLatency     time.Duration
	AverageQueueWait    time.Duration

	// Sliding window for percentile calculation
	latencyWindow []time.Duration
	windowSize    int
}

func NewMetrics() *Metrics {
	return &Metrics{
		latencyWindow: make([]time.Duration, 0, 1000), // Store last 1000 measurements
		windowSize:    1000,
	}
}

func (m *Metrics) recordComposition(results []ChunkResult, workers int, fold time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Compositions++
	m.WorkerCount = workers
	m.LastFoldTime = fold

	for _, r := range results {
		m.ChunkCount++
		m.SymbolCount += int64(r.Symbols)
		m.TotalChunkTime += r.Elapsed
		m.AverageQueueWait = (m.AverageQueueWait*time.Duration(m.ChunkCount-1) + r.Wait) / time.Duration(m.ChunkCount)
		m.updateLatencyPercentiles(r.Elapsed)
	}
}

func (m *Metrics) updateLatencyPercentiles(duration time.Duration) {
	m.AverageChunkLatency = m.TotalChunkTime / time.Duration(m.ChunkCount)

	m.latencyWindow = append(m.latencyWindow, duration)
	if len(m.latencyWindow) > m.windowSize {
		m.latencyWindow = m.latencyWindow[1:]
	}

	sorted := make([]time.Duration, len(m.latencyWindow))
	copy(sorted, m.latencyWindow)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	p95Index := min(int(float64(len(sorted))*0.95), len(sorted)-1)
	p99Index := min(int(float64(len(sorted))*0.99), len(sorted)-1)

	m.P95ChunkLatency = sorted[p95Index]
	m.P99ChunkLatency = sorted[p99Index]
}

// ExportMetrics returns a snapshot suitable for logging.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"compositions":   m.Compositions,
		"chunks":         m.ChunkCount,
		"symbols":        m.SymbolCount,
		"worker_count":   m.WorkerCount,
		"avg_latency":    m.AverageChunkLatency.Microseconds(),
		"p95_latency":    m.P95ChunkLatency.Microseconds(),
		"p99_latency":    m.P99ChunkLatency.Microseconds(),
		"avg_queue_wait": m.AverageQueueWait.Microseconds(),
		"last_fold":      m.LastFoldTime.Microseconds(),
	}
}
