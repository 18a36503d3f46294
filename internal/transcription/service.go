package transcription

import "context"

// StartJobInput describes a job submission.
type StartJobInput struct {
	JobName  string
	MediaURI string
}

// JobService submits transcription jobs and reads their state back. Both
// operations are single best-effort calls against the external service.
type JobService interface {
	Start(ctx context.Context, input StartJobInput) error
	Get(ctx context.Context, jobName string) (Job, error)
}

// UnavailableJobs returns a JobService that fails every call with the given
// configuration error, surfacing missing configuration at first use.
func UnavailableJobs(err error) JobService {
	return unavailableJobs{err: err}
}

type unavailableJobs struct {
	err error
}

func (u unavailableJobs) Start(ctx context.Context, input StartJobInput) error {
	return u.err
}

func (u unavailableJobs) Get(ctx context.Context, jobName string) (Job, error) {
	return Job{}, u.err
}
