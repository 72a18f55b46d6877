package labs

// FlagKind enumerates the risk categories the classifier can raise.
type FlagKind string

const (
	Neutropenia      FlagKind = "neutropenia"
	Anemia           FlagKind = "anemia"
	Thrombocytopenia FlagKind = "thrombocytopenia"
	Hyperglycemia    FlagKind = "hyperglycemia"
	Hypoglycemia     FlagKind = "hypoglycemia"
	Hypertension     FlagKind = "hypertension"
	Hypotension      FlagKind = "hypotension"
)

// Severity bands a flag. SeverityPossible is reserved for the neutropenia
// fallback where no absolute count exists and only a low WBC hints at risk.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityPossible Severity = "possible"
)

// RiskFlag is a derived indicator that a normalized lab value crossed a
// clinical cut-point. Flags are never user-supplied.
type RiskFlag struct {
	Kind            FlagKind `json:"kind"`
	Severity        Severity `json:"severity"`
	SupportingValue *float64 `json:"supporting_value"`
}

// Clinical cut-points. Counts are ×10⁹/L, hemoglobin g/dL, glucose mmol/L,
// blood pressure mmHg.
const (
	neutropeniaSevereBelow   = 0.5
	neutropeniaModerateBelow = 1.0
	neutropeniaMildBelow     = 1.5
	neutropeniaWBCFallback   = 3.0

	anemiaHemoglobinBelow = 12.0

	thrombocytopeniaBelow = 100.0

	hyperglycemiaAbove = 7.0
	hypoglycemiaBelow  = 3.9 // ≈70 mg/dL

	hypertensionSystolicAbove  = 140.0
	hypertensionDiastolicAbove = 90.0
	hypotensionSystolicBelow   = 90.0
	hypotensionDiastolicBelow  = 60.0
)

// NeutropeniaSeverity bands an absolute neutrophil count. The bands are
// monotonic: a lower count can only raise the severity, never lower it.
func NeutropeniaSeverity(anc float64) Severity {
	switch {
	case anc < neutropeniaSevereBelow:
		return SeveritySevere
	case anc < neutropeniaModerateBelow:
		return SeverityModerate
	case anc < neutropeniaMildBelow:
		return SeverityMild
	default:
		return SeverityNone
	}
}

// Classify maps a panel onto the set of active risk flags. A missing analyte
// yields no flag for its category; absence of data is never escalated. The
// returned set is unordered and may hold several flags at once.
func Classify(p Panel) []RiskFlag {
	flags := make([]RiskFlag, 0, 4)

	if p.NeutrophilAbsolute.Found() {
		anc := *p.NeutrophilAbsolute.Value
		if sev := NeutropeniaSeverity(anc); sev != SeverityNone {
			flags = append(flags, flag(Neutropenia, sev, anc))
		}
	} else if p.WBC.Found() && *p.WBC.Value < neutropeniaWBCFallback {
		// No absolute count to band; a low total WBC only hints at neutropenia.
		flags = append(flags, flag(Neutropenia, SeverityPossible, *p.WBC.Value))
	}

	if p.Hemoglobin.Found() && *p.Hemoglobin.Value < anemiaHemoglobinBelow {
		flags = append(flags, flag(Anemia, SeverityMild, *p.Hemoglobin.Value))
	}

	if p.Platelets.Found() && *p.Platelets.Value < thrombocytopeniaBelow {
		flags = append(flags, flag(Thrombocytopenia, SeverityMild, *p.Platelets.Value))
	}

	if p.Glucose.Found() {
		g := *p.Glucose.Value
		if g > hyperglycemiaAbove {
			flags = append(flags, flag(Hyperglycemia, SeverityMild, g))
		} else if g < hypoglycemiaBelow {
			flags = append(flags, flag(Hypoglycemia, SeverityMild, g))
		}
	}

	if p.BPSystolic.Found() && p.BPDiastolic.Found() {
		sys := *p.BPSystolic.Value
		dia := *p.BPDiastolic.Value
		if sys > hypertensionSystolicAbove || dia > hypertensionDiastolicAbove {
			flags = append(flags, flag(Hypertension, SeverityMild, sys))
		} else if sys < hypotensionSystolicBelow || dia < hypotensionDiastolicBelow {
			flags = append(flags, flag(Hypotension, SeverityMild, sys))
		}
	}

	return flags
}

func flag(kind FlagKind, sev Severity, supporting float64) RiskFlag {
	v := supporting
	return RiskFlag{Kind: kind, Severity: sev, SupportingValue: &v}
}
