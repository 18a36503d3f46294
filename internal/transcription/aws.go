package transcription

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/transcribe"
	"github.com/aws/aws-sdk-go-v2/service/transcribe/types"
)

const maxSpeakers = 2

// ScribeClient implements JobService against AWS Transcribe Medical Scribe.
type ScribeClient struct {
	client            *transcribe.Client
	outputBucket      string
	dataAccessRoleARN string
}

// NewScribeClient constructs a Medical Scribe job client.
func NewScribeClient(ctx context.Context, region, outputBucket, dataAccessRoleARN string) (*ScribeClient, error) {
	if outputBucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}
	if dataAccessRoleARN == "" {
		return nil, fmt.Errorf("SCRIBE_DATA_ACCESS_ROLE_ARN is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &ScribeClient{
		client:            transcribe.NewFromConfig(cfg),
		outputBucket:      outputBucket,
		dataAccessRoleARN: dataAccessRoleARN,
	}, nil
}

// Start submits a new Medical Scribe job for the uploaded media.
func (s *ScribeClient) Start(ctx context.Context, input StartJobInput) error {
	_, err := s.client.StartMedicalScribeJob(ctx, &transcribe.StartMedicalScribeJobInput{
		MedicalScribeJobName: aws.String(input.JobName),
		Media: &types.Media{
			MediaFileUri: aws.String(input.MediaURI),
		},
		OutputBucketName:  aws.String(s.outputBucket),
		DataAccessRoleArn: aws.String(s.dataAccessRoleARN),
		Settings: &types.MedicalScribeSettings{
			ShowSpeakerLabels: aws.Bool(true),
			MaxSpeakerLabels:  aws.Int32(maxSpeakers),
		},
	})
	if err != nil {
		return fmt.Errorf("start medical scribe job %s: %w", input.JobName, err)
	}
	return nil
}

// Get reads the current state of a job from the external service.
func (s *ScribeClient) Get(ctx context.Context, jobName string) (Job, error) {
	out, err := s.client.GetMedicalScribeJob(ctx, &transcribe.GetMedicalScribeJobInput{
		MedicalScribeJobName: aws.String(jobName),
	})
	if err != nil {
		return Job{}, fmt.Errorf("get medical scribe job %s: %w", jobName, err)
	}
	scribeJob := out.MedicalScribeJob
	if scribeJob == nil {
		return Job{}, fmt.Errorf("get medical scribe job %s: empty response", jobName)
	}

	job := Job{
		Name:   jobName,
		Status: mapStatus(scribeJob.MedicalScribeJobStatus),
	}
	if scribeJob.FailureReason != nil {
		job.FailureReason = *scribeJob.FailureReason
	}
	if scribeJob.MedicalScribeOutput != nil && scribeJob.MedicalScribeOutput.ClinicalDocumentUri != nil {
		job.ClinicalDocumentURI = *scribeJob.MedicalScribeOutput.ClinicalDocumentUri
	}
	return job, nil
}

// mapStatus translates the external status vocabulary. Unknown non-terminal
// statuses pass through verbatim.
func mapStatus(s types.MedicalScribeJobStatus) Status {
	switch s {
	case types.MedicalScribeJobStatusQueued:
		return StatusPending
	case types.MedicalScribeJobStatusInProgress:
		return StatusInProgress
	case types.MedicalScribeJobStatusCompleted:
		return StatusCompleted
	case types.MedicalScribeJobStatusFailed:
		return StatusFailed
	case "":
		return StatusPending
	default:
		return Status(s)
	}
}

var _ JobService = (*ScribeClient)(nil)
