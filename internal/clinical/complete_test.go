package clinical

import (
	"encoding/json"
	"testing"
)

func TestCompleteZeroRecord(t *testing.T) {
	out := Complete(Record{})

	if out.Diagnosis.Primary == nil {
		t.Fatalf("expected primary diagnosis branch")
	}
	if out.Diagnosis.Primary.Condition != "" || out.Diagnosis.Primary.Confidence != 0 {
		t.Fatalf("expected zero-valued primary, got %+v", out.Diagnosis.Primary)
	}
	if out.Diagnosis.Symptoms.Primary == nil || out.Diagnosis.Symptoms.Secondary == nil {
		t.Fatalf("expected symptom lists present")
	}
	if out.ICDCodes == nil || out.Safety.RedFlags == nil || out.Safety.ContraindicationsFound == nil {
		t.Fatalf("expected code and safety lists present")
	}
	if out.TreatmentPlan == nil || out.FollowUps == nil {
		t.Fatalf("expected treatment plan and follow ups present")
	}
}

func TestCompletePreservesExistingValues(t *testing.T) {
	in := Record{
		Diagnosis: Diagnosis{
			Primary:  &PrimaryDiagnosis{Condition: "Flu", Confidence: 0.9, Rationale: "classic presentation"},
			Symptoms: Symptoms{Primary: []string{"fever"}},
		},
		ICDCodes:      []ICDCode{{Code: "J11.1", Description: "Influenza", Confidence: 0.8}},
		TreatmentPlan: map[string]PlanItems{"immediate": {"Rest"}},
	}

	out := Complete(in)

	if out.Diagnosis.Primary.Condition != "Flu" || out.Diagnosis.Primary.Confidence != 0.9 {
		t.Fatalf("primary diagnosis altered: %+v", out.Diagnosis.Primary)
	}
	if len(out.Diagnosis.Symptoms.Primary) != 1 || out.Diagnosis.Symptoms.Primary[0] != "fever" {
		t.Fatalf("symptoms altered: %v", out.Diagnosis.Symptoms.Primary)
	}
	if len(out.ICDCodes) != 1 || out.ICDCodes[0].Code != "J11.1" {
		t.Fatalf("codes altered: %+v", out.ICDCodes)
	}
	if len(out.TreatmentPlan["immediate"]) != 1 {
		t.Fatalf("plan altered: %v", out.TreatmentPlan)
	}
	// Absent branches still filled.
	if out.Safety.RedFlags == nil || out.FollowUps == nil {
		t.Fatalf("expected absent branches filled")
	}
}

func TestCompleteDoesNotAliasInput(t *testing.T) {
	in := Record{
		Diagnosis:     Diagnosis{Primary: &PrimaryDiagnosis{Condition: "Flu"}},
		TreatmentPlan: map[string]PlanItems{"immediate": nil},
	}

	out := Complete(in)
	out.Diagnosis.Primary.Condition = "changed"
	out.TreatmentPlan["extra"] = PlanItems{"x"}

	if in.Diagnosis.Primary.Condition != "Flu" {
		t.Fatalf("input primary mutated through output")
	}
	if _, ok := in.TreatmentPlan["extra"]; ok {
		t.Fatalf("input plan mutated through output")
	}
	if in.TreatmentPlan["immediate"] != nil {
		t.Fatalf("input plan section mutated")
	}
}

func TestCompleteOutputSerializesEveryRequiredKey(t *testing.T) {
	data, err := json.Marshal(Complete(Record{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"diagnosis", "icd_codes", "safety", "treatment_plan", "follow_ups"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing top-level key %q", key)
		}
	}

	diagnosis, ok := m["diagnosis"].(map[string]any)
	if !ok {
		t.Fatalf("diagnosis is not an object: %v", m["diagnosis"])
	}
	primary, ok := diagnosis["primary"].(map[string]any)
	if !ok {
		t.Fatalf("diagnosis.primary is not an object: %v", diagnosis["primary"])
	}
	for _, key := range []string{"condition", "confidence", "rationale"} {
		if _, ok := primary[key]; !ok {
			t.Fatalf("missing diagnosis.primary key %q", key)
		}
	}
	symptoms, ok := diagnosis["symptoms"].(map[string]any)
	if !ok {
		t.Fatalf("diagnosis.symptoms is not an object")
	}
	if symptoms["primary"] == nil || symptoms["secondary"] == nil {
		t.Fatalf("expected symptom arrays, got %v", symptoms)
	}

	safety, ok := m["safety"].(map[string]any)
	if !ok {
		t.Fatalf("safety is not an object")
	}
	if safety["red_flags"] == nil || safety["contraindications_found"] == nil {
		t.Fatalf("expected safety arrays, got %v", safety)
	}

	// raw_text is optional and must stay absent when empty.
	if _, ok := m["raw_text"]; ok {
		t.Fatalf("raw_text should be omitted when empty")
	}
}
