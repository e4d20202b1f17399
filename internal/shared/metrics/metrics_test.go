package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncAnalysisStarted()
	AddCandidatesIngested(3)
	AddCandidatesIngested(-1)
	AddOutreachSent(2)

	out := Render()
	assert.Contains(t, out, "# TYPE analysis_started_total counter")
	assert.Contains(t, out, "# TYPE ranking_candidates_ingested_total counter")
	assert.Contains(t, out, "# TYPE ranking_outreach_sent_total counter")
	assert.Contains(t, out, "interview_failed_total")
	assert.Contains(t, out, "analysis_duration_ms_bucket{le=\"+Inf\"}")
}

func TestLabeledCountersSortedByLabel(t *testing.T) {
	IncRateLimited("DEFAULT")
	IncRateLimited("CHAT")
	IncRateLimited("CHAT")
	IncInterviewFailed("evaluate")

	out := Render()
	chat := strings.Index(out, `http_rate_limited_total{group="CHAT"}`)
	def := strings.Index(out, `http_rate_limited_total{group="DEFAULT"}`)
	require.NotEqual(t, -1, chat)
	require.NotEqual(t, -1, def)
	assert.Less(t, chat, def)
	assert.Contains(t, out, `interview_failed_total{step="evaluate"}`)
}

func TestLabeledCounterAccumulates(t *testing.T) {
	l := &labeledCounter{name: "x_total", label: "reason"}
	l.add("no_text_found", 1)
	l.add("no_text_found", 2)
	l.add("extraction_failed", 1)

	assert.Equal(t, map[string]uint64{"no_text_found": 3, "extraction_failed": 1}, l.snapshot())
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(10)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	assert.Equal(t, []uint64{2, 1}, snap.counts)
	assert.Equal(t, uint64(4), snap.count)
	assert.InDelta(t, 565, snap.sum, 1e-9)
}

func TestHandlerServesText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler())

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.HasPrefix(resp.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, resp.Body.String(), "analysis_completed_total")
}
