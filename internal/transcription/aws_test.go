package transcription

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/transcribe/types"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		in   types.MedicalScribeJobStatus
		want Status
	}{
		{types.MedicalScribeJobStatusQueued, StatusPending},
		{types.MedicalScribeJobStatusInProgress, StatusInProgress},
		{types.MedicalScribeJobStatusCompleted, StatusCompleted},
		{types.MedicalScribeJobStatusFailed, StatusFailed},
		{"", StatusPending},
		{"SOMETHING_NEW", Status("SOMETHING_NEW")},
	}
	for _, tc := range cases {
		if got := mapStatus(tc.in); got != tc.want {
			t.Fatalf("mapStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
