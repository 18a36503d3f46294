package soap

// Record is the fixed SOAP-style document produced from a completed
// transcription job. All fields default to the empty string when the source
// document lacks the corresponding section.
type Record struct {
	Summary        string `json:"summary"`
	Subjective     string `json:"subjective"`
	Objective      string `json:"objective"`
	Assessment     string `json:"assessment"`
	Plan           string `json:"plan"`
	FullTranscript string `json:"fullTranscript"`
}
