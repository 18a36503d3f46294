package clinical

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrNoStructuredContent is reported when no extraction strategy recovers a
// single field from the response text.
var ErrNoStructuredContent = errors.New("no structured content found in response text")

// strategy attempts to recover a record from raw text. The second return
// value reports whether the strategy yielded anything.
type strategy func(text string) (Record, bool)

// Extraction strategies in priority order; the first success wins.
var strategies = []strategy{
	extractDelimitedBlock,
	extractTagged,
}

// Extract recovers a possibly partial Record from free-form response text.
// Output is deterministic for a fixed input.
func Extract(text string) (Record, error) {
	for _, s := range strategies {
		if rec, ok := s(text); ok {
			return rec, nil
		}
	}
	return Record{}, ErrNoStructuredContent
}

// extractDelimitedBlock parses the substring between the first '{' and the
// last '}' as a JSON document. Markdown code fences are stripped first since
// the reasoning service often wraps its output in them.
func extractDelimitedBlock(text string) (Record, bool) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end <= start {
		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &rec); err != nil {
		return Record{}, false
	}
	return rec, true
}

const (
	// Companion metadata attached to codes recovered by the tag strategy,
	// which carries no description or confidence of its own.
	taggedCodeDescription = "Code extracted from transcript analysis"
	taggedCodeConfidence  = 0.5
)

// listTagTable maps list-valued tag names to their destination in the record.
// A fixed slice, not a map: extraction order must be deterministic.
var listTagTable = []struct {
	name   string
	assign func(rec *Record, items []string)
}{
	{"primary_symptoms", func(rec *Record, items []string) { rec.Diagnosis.Symptoms.Primary = items }},
	{"secondary_symptoms", func(rec *Record, items []string) { rec.Diagnosis.Symptoms.Secondary = items }},
	{"red_flags", func(rec *Record, items []string) { rec.Safety.RedFlags = items }},
	{"contraindications", func(rec *Record, items []string) { rec.Safety.ContraindicationsFound = items }},
	{"immediate", func(rec *Record, items []string) { planSection(rec, "immediate", items) }},
	{"ongoing", func(rec *Record, items []string) { planSection(rec, "ongoing", items) }},
	{"lifestyle", func(rec *Record, items []string) { planSection(rec, "lifestyle", items) }},
	{"follow_ups", func(rec *Record, items []string) { rec.FollowUps = items }},
}

// extractTagged reads fields out of named <tag>...</tag> marker pairs
// embedded in prose. Missing markers resolve to absence, never an error; the
// strategy fails only when no marker of any kind matched.
func extractTagged(text string) (Record, bool) {
	var rec Record

	if v, ok := tagValue(text, "condition"); ok {
		ensurePrimary(&rec).Condition = v
	}
	if v, ok := tagValue(text, "rationale"); ok {
		ensurePrimary(&rec).Rationale = v
	}
	if v, ok := tagValue(text, "confidence"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ensurePrimary(&rec).Confidence = f
		}
	}

	for _, lt := range listTagTable {
		interior, ok := tagValue(text, lt.name)
		if !ok {
			continue
		}
		lt.assign(&rec, splitListItems(interior))
	}

	for _, code := range tagValues(text, "icd_code") {
		rec.ICDCodes = append(rec.ICDCodes, ICDCode{
			Code:        code,
			Description: taggedCodeDescription,
			Confidence:  taggedCodeConfidence,
		})
	}

	if rec.isEmpty() {
		return Record{}, false
	}
	return rec, true
}

func planSection(rec *Record, name string, items []string) {
	if rec.TreatmentPlan == nil {
		rec.TreatmentPlan = make(map[string]PlanItems)
	}
	rec.TreatmentPlan[name] = items
}

func ensurePrimary(rec *Record) *PrimaryDiagnosis {
	if rec.Diagnosis.Primary == nil {
		rec.Diagnosis.Primary = &PrimaryDiagnosis{}
	}
	return rec.Diagnosis.Primary
}

// tagValue returns the trimmed interior of the first <name>...</name> pair.
func tagValue(text, name string) (string, bool) {
	opening := "<" + name + ">"
	closing := "</" + name + ">"

	start := strings.Index(text, opening)
	if start == -1 {
		return "", false
	}
	rest := text[start+len(opening):]
	end := strings.Index(rest, closing)
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

// tagValues returns the trimmed interiors of every non-overlapping
// <name>...</name> pair in document order.
func tagValues(text, name string) []string {
	opening := "<" + name + ">"
	closing := "</" + name + ">"

	var values []string
	for {
		start := strings.Index(text, opening)
		if start == -1 {
			return values
		}
		rest := text[start+len(opening):]
		end := strings.Index(rest, closing)
		if end == -1 {
			return values
		}
		values = append(values, strings.TrimSpace(rest[:end]))
		text = rest[end+len(closing):]
	}
}

// splitListItems splits tag interior text into list entries: one per line,
// leading bullet characters stripped, blank lines dropped.
func splitListItems(interior string) []string {
	items := []string{}
	for _, line := range strings.Split(interior, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
