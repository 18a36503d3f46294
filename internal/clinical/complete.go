package clinical

// Complete returns a schema-complete copy of rec: every required branch is
// present, with type-appropriate empty defaults substituted for anything
// absent. Total — it never fails, including on the zero Record.
func Complete(rec Record) Record {
	if rec.Diagnosis.Primary == nil {
		rec.Diagnosis.Primary = &PrimaryDiagnosis{}
	} else {
		primary := *rec.Diagnosis.Primary
		rec.Diagnosis.Primary = &primary
	}

	rec.Diagnosis.Symptoms.Primary = orEmpty(rec.Diagnosis.Symptoms.Primary)
	rec.Diagnosis.Symptoms.Secondary = orEmpty(rec.Diagnosis.Symptoms.Secondary)

	if rec.ICDCodes == nil {
		rec.ICDCodes = []ICDCode{}
	}

	rec.Safety.RedFlags = orEmpty(rec.Safety.RedFlags)
	rec.Safety.ContraindicationsFound = orEmpty(rec.Safety.ContraindicationsFound)

	plan := make(map[string]PlanItems, len(rec.TreatmentPlan))
	for section, items := range rec.TreatmentPlan {
		if items == nil {
			items = PlanItems{}
		}
		plan[section] = items
	}
	rec.TreatmentPlan = plan

	rec.FollowUps = orEmpty(rec.FollowUps)

	return rec
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
