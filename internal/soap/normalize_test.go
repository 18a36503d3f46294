package soap

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeEmptyDocument(t *testing.T) {
	rec := Normalize(map[string]any{})
	if rec != (Record{}) {
		t.Fatalf("expected all-empty record, got %+v", rec)
	}
}

func TestNormalizeNilDocument(t *testing.T) {
	rec := Normalize(nil)
	if rec != (Record{}) {
		t.Fatalf("expected all-empty record for nil input, got %+v", rec)
	}
}

func TestNormalizeFullDocument(t *testing.T) {
	raw := map[string]any{
		"ClinicalNotes": map[string]any{
			"Summary":    "Visit for fever.",
			"Subjective": "Patient reports fever and sore throat.",
			"Objective":  "Temp 38.4C.",
			"Assessment": "Likely viral URI.",
			"Plan":       "Rest and fluids.",
		},
		"Transcript": map[string]any{
			"TranscriptText": "Doctor: how are you feeling today?",
		},
	}

	rec := Normalize(raw)

	want := Record{
		Summary:        "Visit for fever.",
		Subjective:     "Patient reports fever and sore throat.",
		Objective:      "Temp 38.4C.",
		Assessment:     "Likely viral URI.",
		Plan:           "Rest and fluids.",
		FullTranscript: "Doctor: how are you feeling today?",
	}
	if rec != want {
		t.Fatalf("normalize mismatch:\n got %+v\nwant %+v", rec, want)
	}
}

func TestNormalizePartialAndMistypedDocument(t *testing.T) {
	raw := map[string]any{
		"ClinicalNotes": map[string]any{
			"Summary": "Only summary present.",
			"Plan":    42, // wrong type resolves to ""
		},
		"Transcript": "not a map",
	}

	rec := Normalize(raw)

	if rec.Summary != "Only summary present." {
		t.Fatalf("expected summary, got %q", rec.Summary)
	}
	if rec.Plan != "" || rec.FullTranscript != "" {
		t.Fatalf("expected empty plan/transcript, got %+v", rec)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := map[string]any{
		"ClinicalNotes": map[string]any{"Summary": "S"},
	}
	first := Normalize(raw)
	second := Normalize(raw)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization not idempotent: %+v vs %+v", first, second)
	}
}

func TestRecordSerializesAllSixFields(t *testing.T) {
	data, err := json.Marshal(Record{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"summary", "subjective", "objective", "assessment", "plan", "fullTranscript"} {
		v, ok := m[key]
		if !ok {
			t.Fatalf("missing key %q", key)
		}
		if v != "" {
			t.Fatalf("expected empty string for %q, got %v", key, v)
		}
	}
}
