package clinical

import (
	"encoding/json"
	"fmt"
)

// Record is the structured clinical analysis returned to the client. Every
// field the client renders is guaranteed present after Complete has run;
// consumers never branch on missing keys.
type Record struct {
	Diagnosis     Diagnosis            `json:"diagnosis"`
	ICDCodes      []ICDCode            `json:"icd_codes"`
	Safety        Safety               `json:"safety"`
	TreatmentPlan map[string]PlanItems `json:"treatment_plan"`
	FollowUps     []string             `json:"follow_ups"`
	// RawText carries the unparsed source text for traceability. Optional;
	// never read by required-field consumers.
	RawText string `json:"raw_text,omitempty"`
}

type Diagnosis struct {
	Primary  *PrimaryDiagnosis `json:"primary"`
	Symptoms Symptoms          `json:"symptoms"`
}

type PrimaryDiagnosis struct {
	Condition  string  `json:"condition"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

type Symptoms struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

type ICDCode struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type Safety struct {
	RedFlags               []string `json:"red_flags"`
	ContraindicationsFound []string `json:"contraindications_found"`
}

// PlanItems is one treatment-plan section. Source documents encode sections
// as either a scalar string or a list of strings; both decode to a list.
type PlanItems []string

func (p *PlanItems) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*p = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = PlanItems{single}
		return nil
	}
	return fmt.Errorf("treatment plan section must be a string or a list of strings")
}

// isEmpty reports whether extraction recovered no field at all.
func (r Record) isEmpty() bool {
	return r.Diagnosis.Primary == nil &&
		len(r.Diagnosis.Symptoms.Primary) == 0 &&
		len(r.Diagnosis.Symptoms.Secondary) == 0 &&
		len(r.ICDCodes) == 0 &&
		len(r.Safety.RedFlags) == 0 &&
		len(r.Safety.ContraindicationsFound) == 0 &&
		len(r.TreatmentPlan) == 0 &&
		len(r.FollowUps) == 0
}
