package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	planLLMTotal          atomic.Uint64
	planLenientTotal      atomic.Uint64
	planRulesTotal        atomic.Uint64
	persistFailedTotal    atomic.Uint64
	textgenFailedTotal    atomic.Uint64
	feedbackRecordedTotal atomic.Uint64

	planDuration = newHistogram([]float64{5, 25, 100, 250, 500, 1000, 2500, 5000, 10000, 30000})
)

// IncPlanGenerated increments the generated counter for the producing tier (llm, lenient, rules).
func IncPlanGenerated(source string) {
	switch source {
	case "llm":
		planLLMTotal.Add(1)
	case "lenient":
		planLenientTotal.Add(1)
	default:
		planRulesTotal.Add(1)
	}
}

// IncPersistFailed increments the failed persistence counter.
func IncPersistFailed() {
	persistFailedTotal.Add(1)
}

// IncTextGenFailed increments the failed text generation counter.
func IncTextGenFailed() {
	textgenFailedTotal.Add(1)
}

// IncFeedbackRecorded increments the recorded feedback counter.
func IncFeedbackRecorded() {
	feedbackRecordedTotal.Add(1)
}

// ObservePlanDurationMs records a plan generation duration in milliseconds.
func ObservePlanDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	planDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# HELP plan_generated_total Plans generated by source tier\n")
	fmt.Fprintf(&buf, "# TYPE plan_generated_total counter\n")
	fmt.Fprintf(&buf, "plan_generated_total{source=\"llm\"} %d\n", planLLMTotal.Load())
	fmt.Fprintf(&buf, "plan_generated_total{source=\"lenient\"} %d\n", planLenientTotal.Load())
	fmt.Fprintf(&buf, "plan_generated_total{source=\"rules\"} %d\n", planRulesTotal.Load())
	writeCounter(&buf, "plan_persist_failed_total", "Plans that could not be persisted", persistFailedTotal.Load())
	writeCounter(&buf, "textgen_failed_total", "Failed text generation calls", textgenFailedTotal.Load())
	writeCounter(&buf, "feedback_recorded_total", "Feedback entries recorded", feedbackRecordedTotal.Load())
	writeHistogram(&buf, "plan_duration_ms", "Plan generation duration in milliseconds", planDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
