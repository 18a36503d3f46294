package clinical

// fallbackCondition labels the fallback record so clients can surface it as a
// "could not analyze" state instead of a clinical finding.
const fallbackCondition = "Analysis unavailable"

// FallbackRecord returns the statically defined, schema-complete record used
// when a real analysis cannot be produced. The rationale always reports the
// failure cause.
func FallbackRecord(cause string) Record {
	if cause == "" {
		cause = "unknown failure"
	}
	return Complete(Record{
		Diagnosis: Diagnosis{
			Primary: &PrimaryDiagnosis{
				Condition:  fallbackCondition,
				Confidence: 0,
				Rationale:  "Automated analysis could not be completed: " + cause,
			},
		},
	})
}
