package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

type counter struct {
	name string
	help string
	v    atomic.Uint64
}

// labeledCounter is a counter family keyed by one label.
type labeledCounter struct {
	name  string
	help  string
	label string

	mu     sync.Mutex
	values map[string]uint64
}

func (l *labeledCounter) add(value string, n uint64) {
	l.mu.Lock()
	if l.values == nil {
		l.values = make(map[string]uint64)
	}
	l.values[value] += n
	l.mu.Unlock()
}

func (l *labeledCounter) snapshot() map[string]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]uint64, len(l.values))
	for k, v := range l.values {
		out[k] = v
	}
	return out
}

var (
	analysisStarted    = &counter{name: "analysis_started_total", help: "Total analyses started"}
	analysisCompleted  = &counter{name: "analysis_completed_total", help: "Total analyses completed"}
	analysisFailed     = &counter{name: "analysis_failed_total", help: "Total analyses failed"}
	candidatesIngested = &counter{name: "ranking_candidates_ingested_total", help: "Total candidates ranked"}
	outreachSent       = &counter{name: "ranking_outreach_sent_total", help: "Total simulated outreach emails"}

	extractionFailed = &labeledCounter{name: "extraction_failed_total", help: "Documents without usable text", label: "reason"}
	interviewChats   = &labeledCounter{name: "interview_generated_total", help: "Successful chat generations", label: "step"}
	interviewFailed  = &labeledCounter{name: "interview_failed_total", help: "Failed or unusable chat generations", label: "step"}
	rateLimited      = &labeledCounter{name: "http_rate_limited_total", help: "Requests rejected by the rate limiter", label: "group"}

	counters        = []*counter{analysisStarted, analysisCompleted, analysisFailed, candidatesIngested, outreachSent}
	labeledCounters = []*labeledCounter{extractionFailed, interviewChats, interviewFailed, rateLimited}

	analysisDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

func IncAnalysisStarted()   { analysisStarted.v.Add(1) }
func IncAnalysisCompleted() { analysisCompleted.v.Add(1) }
func IncAnalysisFailed()    { analysisFailed.v.Add(1) }

// AddCandidatesIngested adds n ranked candidates. Non-positive n is ignored.
func AddCandidatesIngested(n int) {
	if n > 0 {
		candidatesIngested.v.Add(uint64(n))
	}
}

// AddOutreachSent adds n simulated outreach emails.
func AddOutreachSent(n int) {
	if n > 0 {
		outreachSent.v.Add(uint64(n))
	}
}

// IncExtractionFailed counts a document that yielded no usable text, by error code.
func IncExtractionFailed(reason string) {
	extractionFailed.add(reason, 1)
}

// IncInterviewGenerated counts a successful chat call for step (question, clarify, evaluate).
func IncInterviewGenerated(step string) {
	interviewChats.add(step, 1)
}

// IncInterviewFailed counts a failed chat call for step.
func IncInterviewFailed(step string) {
	interviewFailed.add(step, 1)
}

// IncRateLimited counts a rejected request in the given limiter group.
func IncRateLimited(group string) {
	rateLimited.add(group, 1)
}

// ObserveAnalysisDurationMs records an analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
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
	for _, c := range counters {
		writeHeader(&buf, c.name, c.help, "counter")
		fmt.Fprintf(&buf, "%s %d\n", c.name, c.v.Load())
	}
	for _, l := range labeledCounters {
		writeHeader(&buf, l.name, l.help, "counter")
		values := l.snapshot()
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&buf, "%s{%s=%q} %d\n", l.name, l.label, k, values[k])
		}
	}
	writeHistogram(&buf, "analysis_duration_ms", "Analysis duration in milliseconds", analysisDuration.Snapshot())
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
	return &histogram{buckets: buckets, counts: make([]uint64, len(buckets))}
}

// Observe files value under the first bucket whose bound holds it. Values above every bound only
// show up in the +Inf line.
func (h *histogram) Observe(value float64) {
	i := sort.SearchFloat64s(h.buckets, value)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	if i < len(h.buckets) {
		h.counts[i]++
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeHeader(buf *bytes.Buffer, name, help, kind string) {
	fmt.Fprintf(buf, "# HELP %s %s\n# TYPE %s %s\n", name, help, name, kind)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	writeHeader(buf, name, help, "histogram")
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
	return strconv.FormatFloat(value, 'f', -1, 64)
}
