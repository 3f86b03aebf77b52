package qgate

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given a metrics collector", t, func() {
		metrics := NewMetrics()

		Convey("Recording a composition should update counts and latencies", func() {
			metrics.recordComposition([]ChunkResult{
				{Symbols: 10, Elapsed: 2 * time.Millisecond, Wait: time.Millisecond},
				{Symbols: 12, Elapsed: 4 * time.Millisecond, Wait: 3 * time.Millisecond},
			}, 2, 5*time.Microsecond)

			exported := metrics.ExportMetrics()
			So(exported["compositions"], ShouldEqual, int64(1))
			So(exported["chunks"], ShouldEqual, int64(2))
			So(exported["symbols"], ShouldEqual, int64(22))
			So(exported["worker_count"], ShouldEqual, 2)
			So(exported["avg_latency"], ShouldEqual, int64(3000))
			So(exported["p95_latency"], ShouldEqual, int64(4000))
			So(exported["avg_queue_wait"], ShouldEqual, int64(2000))
			So(exported["last_fold"], ShouldEqual, int64(5))
		})

		Convey("The latency window should be bounded", func() {
			results := make([]ChunkResult, 1500)
			for i := range results {
				results[i] = ChunkResult{Symbols: 1, Elapsed: time.Duration(i) * time.Microsecond}
			}
			metrics.recordComposition(results, 8, 0)

			So(len(metrics.latencyWindow), ShouldEqual, metrics.windowSize)
			So(metrics.P99ChunkLatency, ShouldBeGreaterThan, metrics.P95ChunkLatency)
		})
	})
}
