package transcription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"scribe-backend/internal/shared/metrics"
	"scribe-backend/internal/shared/storage/object"
	"scribe-backend/internal/soap"
)

// Result is the caller-facing outcome of one status poll. Payload is present
// only on COMPLETED; Error only on FAILED.
type Result struct {
	Status  Status       `json:"status"`
	Payload *soap.Record `json:"payload,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Tracker observes transcription jobs. It holds no state between calls: each
// poll re-reads the external source of truth, so concurrent polls for the
// same job name are safe.
type Tracker struct {
	Jobs   JobService
	Store  object.ObjectStore
	Bucket string
}

// GetResult queries the job once and, when it has completed, fetches and
// normalizes its clinical document. A single best-effort attempt with no
// retries: transport or parse failures surface as FAILED and retry policy is
// the caller's responsibility.
func (t *Tracker) GetResult(ctx context.Context, jobName string) Result {
	metrics.IncJobPoll()

	job, err := t.Jobs.Get(ctx, jobName)
	if err != nil {
		return Result{Status: StatusFailed, Error: err.Error()}
	}

	switch {
	case job.Status == StatusFailed:
		reason := job.FailureReason
		if reason == "" {
			reason = "transcription job failed"
		}
		return Result{Status: StatusFailed, Error: reason}
	case job.Status != StatusCompleted:
		return Result{Status: job.Status}
	}

	record, err := t.fetchDocument(ctx, job.ClinicalDocumentURI)
	if err != nil {
		return Result{Status: StatusFailed, Error: err.Error()}
	}
	return Result{Status: StatusCompleted, Payload: &record}
}

func (t *Tracker) fetchDocument(ctx context.Context, uri string) (soap.Record, error) {
	key, err := objectKeyFromURI(uri, t.Bucket)
	if err != nil {
		return soap.Record{}, err
	}

	rc, err := t.Store.Open(ctx, key)
	if err != nil {
		return soap.Record{}, fmt.Errorf("fetch clinical document: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return soap.Record{}, fmt.Errorf("read clinical document: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return soap.Record{}, fmt.Errorf("parse clinical document: %w", err)
	}
	return soap.Normalize(raw), nil
}

// objectKeyFromURI resolves the job's result-document location to a storage
// key. Accepts s3://bucket/key URIs for the configured bucket and bare keys.
func objectKeyFromURI(uri, bucket string) (string, error) {
	if uri == "" {
		return "", errors.New("job completed without a clinical document location")
	}

	trimmed, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		if strings.Contains(uri, "://") {
			return "", fmt.Errorf("unsupported clinical document location %q", uri)
		}
		return strings.TrimPrefix(uri, "/"), nil
	}

	slash := strings.Index(trimmed, "/")
	if slash == -1 || slash == len(trimmed)-1 {
		return "", fmt.Errorf("malformed clinical document location %q", uri)
	}

	uriBucket, key := trimmed[:slash], trimmed[slash+1:]
	if bucket != "" && uriBucket != bucket {
		return "", fmt.Errorf("clinical document bucket %q does not match configured bucket %q", uriBucket, bucket)
	}
	return key, nil
}
