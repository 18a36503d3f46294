package clinical

import (
	_ "embed"
	"strings"
)

//go:embed prompts/analyze_v1.txt
var analyzePromptV1 string

// buildPrompt renders the analysis prompt for one transcript.
func buildPrompt(patientID, transcript string) string {
	replacer := strings.NewReplacer(
		"{{PATIENT_ID}}", patientID,
		"{{TRANSCRIPT}}", transcript,
	)
	return replacer.Replace(analyzePromptV1)
}
