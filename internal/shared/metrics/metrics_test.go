package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesAllMetrics(t *testing.T) {
	IncAnalysisStarted()
	IncJobSubmitted()
	IncJobPoll()
	ObserveAnalysisDurationMs(42)

	out := Render()
	for _, name := range []string{
		"clinical_analysis_started_total",
		"clinical_analysis_fallback_total",
		"transcription_jobs_submitted_total",
		"transcription_job_polls_total",
		"clinical_analysis_duration_ms_bucket",
		"clinical_analysis_duration_ms_sum",
		"clinical_analysis_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing metric %q in output", name)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100, 1000})
	h.Observe(5)
	h.Observe(50)
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("count = %d, want 3", snap.count)
	}
	want := []uint64{1, 2, 2}
	for i, c := range snap.counts {
		if c != want[i] {
			t.Fatalf("bucket %d = %d, want %d", i, c, want[i])
		}
	}
	if snap.sum != 5055 {
		t.Fatalf("sum = %v, want 5055", snap.sum)
	}
}

func TestFormatFloat(t *testing.T) {
	if got := formatFloat(100); got != "100" {
		t.Fatalf("formatFloat(100) = %q", got)
	}
	if got := formatFloat(0.5); got != "0.5" {
		t.Fatalf("formatFloat(0.5) = %q", got)
	}
}
