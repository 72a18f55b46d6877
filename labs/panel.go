package labs

import "fmt"

// Analyte names the lab values the extractor attempts on every report.
type Analyte string

const (
	Hemoglobin             Analyte = "hemoglobin"
	WBC                    Analyte = "wbc"
	NeutrophilAbsolute     Analyte = "neutrophil_absolute"
	NeutrophilPercent      Analyte = "neutrophil_percent"
	Platelets              Analyte = "platelets"
	Glucose                Analyte = "glucose"
	BloodPressureSystolic  Analyte = "blood_pressure_systolic"
	BloodPressureDiastolic Analyte = "blood_pressure_diastolic"
)

// ExtractedValue is the best-effort result for one analyte. A nil RawNumber
// means "not found in the text" and is the expected common case, not an error.
// Value carries the unit-normalized number the classifier works with; for
// analytes that need no normalization it equals RawNumber. A derived value
// (ANC computed from percent × WBC) has a nil RawNumber but a non-nil Value,
// with the provenance note explaining where it came from.
type ExtractedValue struct {
	Analyte        Analyte  `json:"analyte"`
	RawNumber      *float64 `json:"raw_number"`
	Value          *float64 `json:"value"`
	RawUnitGuess   *string  `json:"raw_unit_guess"`
	ProvenanceNote *string  `json:"provenance_note"`
}

// Found reports whether the analyte has a usable normalized value.
func (e ExtractedValue) Found() bool { return e.Value != nil }

// Panel is the structured lab panel built once per input text. The field set is
// fixed; absence is expressed with nil pointers inside each ExtractedValue, so
// "absent" and "zero" can never be confused downstream.
type Panel struct {
	Hemoglobin         ExtractedValue `json:"hemoglobin"`
	WBC                ExtractedValue `json:"wbc"`
	NeutrophilAbsolute ExtractedValue `json:"neutrophil_absolute"`
	NeutrophilPercent  ExtractedValue `json:"neutrophil_percent"`
	Platelets          ExtractedValue `json:"platelets"`
	Glucose            ExtractedValue `json:"glucose"`
	BPSystolic         ExtractedValue `json:"blood_pressure_systolic"`
	BPDiastolic        ExtractedValue `json:"blood_pressure_diastolic"`
}

// BuildPanel runs the full extraction pipeline over raw report text:
// normalize → pattern extraction → unit normalization → derived values.
// It never fails; an empty or garbled input simply yields a panel of absent
// values.
func BuildPanel(raw string) Panel {
	text := NormalizeText(raw)

	extracted := map[Analyte]ExtractedValue{}
	for _, entry := range extractionTable {
		if v, ok := firstMatch(text, entry.patterns); ok {
			extracted[entry.analyte] = extractedValue(entry.analyte, v)
		} else {
			extracted[entry.analyte] = absentValue(entry.analyte)
		}
	}

	p := Panel{
		Hemoglobin:         withUnitGuess(extracted[Hemoglobin], "g/dL"),
		WBC:                normalizedCount(extracted[WBC]),
		NeutrophilAbsolute: normalizedCount(extracted[NeutrophilAbsolute]),
		NeutrophilPercent:  withUnitGuess(extracted[NeutrophilPercent], "%"),
		Platelets:          withUnitGuess(extracted[Platelets], "×10⁹/L"),
		Glucose:            normalizedGlucose(extracted[Glucose]),
	}

	p.BPSystolic = absentValue(BloodPressureSystolic)
	p.BPDiastolic = absentValue(BloodPressureDiastolic)
	if sys, dia, ok := extractBloodPressure(text); ok {
		p.BPSystolic = withUnitGuess(extractedValue(BloodPressureSystolic, sys), "mmHg")
		p.BPDiastolic = withUnitGuess(extractedValue(BloodPressureDiastolic, dia), "mmHg")
	}

	p.NeutrophilAbsolute = deriveNeutrophilAbsolute(p)
	return p
}

// deriveNeutrophilAbsolute fills in ANC from percent × WBC when the report
// never stated it directly. It requires a successfully normalized WBC; if
// either input is missing the value stays absent.
func deriveNeutrophilAbsolute(p Panel) ExtractedValue {
	if p.NeutrophilAbsolute.Found() {
		return p.NeutrophilAbsolute
	}
	if !p.NeutrophilPercent.Found() || !p.WBC.Found() {
		return p.NeutrophilAbsolute
	}
	pct := *p.NeutrophilPercent.Value
	wbc := *p.WBC.Value
	derived := pct / 100.0 * wbc
	note := fmt.Sprintf("derived: %g%% of wbc %.2f ×10⁹/L → %.2f ×10⁹/L", pct, wbc, derived)
	unit := "×10⁹/L"
	return ExtractedValue{
		Analyte:        NeutrophilAbsolute,
		Value:          &derived,
		RawUnitGuess:   &unit,
		ProvenanceNote: &note,
	}
}

func extractedValue(a Analyte, raw float64) ExtractedValue {
	v := raw
	return ExtractedValue{Analyte: a, RawNumber: &raw, Value: &v}
}

func absentValue(a Analyte) ExtractedValue {
	return ExtractedValue{Analyte: a}
}

func withUnitGuess(e ExtractedValue, unit string) ExtractedValue {
	if e.RawNumber == nil {
		return e
	}
	e.RawUnitGuess = &unit
	return e
}

// normalizedCount applies the cells/µL vs ×10⁹/L magnitude heuristic to an
// extracted count and records the decision in the provenance note.
func normalizedCount(e ExtractedValue) ExtractedValue {
	if e.RawNumber == nil {
		return e
	}
	value, unit, note := normalizeCount(e.Analyte, *e.RawNumber)
	e.Value = &value
	e.RawUnitGuess = &unit
	e.ProvenanceNote = &note
	return e
}

func normalizedGlucose(e ExtractedValue) ExtractedValue {
	if e.RawNumber == nil {
		return e
	}
	value, unit, note := normalizeGlucose(*e.RawNumber)
	e.Value = &value
	e.RawUnitGuess = &unit
	e.ProvenanceNote = &note
	return e
}
