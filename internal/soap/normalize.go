package soap

// Normalize projects a raw clinical document into a Record. It is a pure
// structural lookup: no interpretation, every absent path resolves to "".
func Normalize(raw map[string]any) Record {
	return Record{
		Summary:        stringAt(raw, "ClinicalNotes", "Summary"),
		Subjective:     stringAt(raw, "ClinicalNotes", "Subjective"),
		Objective:      stringAt(raw, "ClinicalNotes", "Objective"),
		Assessment:     stringAt(raw, "ClinicalNotes", "Assessment"),
		Plan:           stringAt(raw, "ClinicalNotes", "Plan"),
		FullTranscript: stringAt(raw, "Transcript", "TranscriptText"),
	}
}

func stringAt(raw map[string]any, path ...string) string {
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = m[key]
		if !ok {
			return ""
		}
	}
	s, _ := current.(string)
	return s
}
