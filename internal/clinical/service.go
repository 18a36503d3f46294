package clinical

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scribe-backend/internal/agent"
	"scribe-backend/internal/shared/metrics"
	"scribe-backend/internal/shared/telemetry"
)

const placeholderPatientID = "unknown-patient"

// Service orchestrates the live analysis pipeline: prompt, invocation,
// extraction, completion, fallback.
type Service struct {
	Agent agent.Invoker
}

// NewService constructs a Service.
func NewService(invoker agent.Invoker) *Service {
	return &Service{Agent: invoker}
}

// Analyze runs one clinical analysis. It always returns a schema-complete
// record: invocation and extraction failures resolve to the fallback record,
// never an error.
func (s *Service) Analyze(ctx context.Context, transcript string, patient map[string]any) Record {
	started := metrics.NowMillis()
	metrics.IncAnalysisStarted()

	// Each analysis is an independent conversation with the reasoning
	// service; sessions are never reused across calls.
	sessionID := uuid.NewString()
	prompt := buildPrompt(patientIdentifier(patient), transcript)

	completion, err := s.Agent.Invoke(ctx, sessionID, prompt)
	if err != nil {
		telemetry.Error("analysis.invoke.failed", map[string]any{
			"session_id": sessionID,
			"err":        err.Error(),
		})
		metrics.IncAnalysisFallback()
		return FallbackRecord(fmt.Sprintf("reasoning service invocation failed: %v", err))
	}

	rec, err := Extract(completion)
	if err != nil {
		telemetry.Warn("analysis.extract.failed", map[string]any{
			"session_id":     sessionID,
			"err":            err.Error(),
			"completion_len": len(completion),
		})
		metrics.IncAnalysisFallback()
		return FallbackRecord(err.Error())
	}

	rec.RawText = completion
	out := Complete(rec)
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - started)
	return out
}

// patientIdentifier derives an identifier from the optional patient context,
// falling back to a fixed placeholder.
func patientIdentifier(patient map[string]any) string {
	for _, key := range []string{"id", "name"} {
		if v, ok := patient[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return placeholderPatientID
}
