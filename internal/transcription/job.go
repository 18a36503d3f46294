package transcription

// Status is the job lifecycle vocabulary exposed to callers. The external
// transcription service is the source of truth; this system only maps its
// vocabulary and never drives transitions.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

// Terminal reports whether no further transitions are expected.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job is a snapshot of one transcription job as last observed externally.
type Job struct {
	Name                string
	Status              Status
	ClinicalDocumentURI string
	FailureReason       string
}
