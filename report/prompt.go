package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/eupern/ai-cancer-chatbot/labs"
)

// defaultPreamble is the instruction handed to the external text-generation
// service. Overridable via SUMMARY_PREAMBLE without a redeploy.
const defaultPreamble = "You are an expert oncology dietitian and clinical-support assistant. " +
	"Provide a concise clinical summary, 3 suggested practical questions for the next doctor " +
	"visit (not diet), and dietitian-level dietary advice including a clear 1-day sample menu " +
	"separated by spacing. Write in plain English."

// Preamble returns the system instruction for summary generation.
func Preamble() string {
	if v := strings.TrimSpace(os.Getenv("SUMMARY_PREAMBLE")); v != "" {
		return v
	}
	return defaultPreamble
}

// BuildSummaryPrompt turns a structured result plus the raw report text into
// the free-text prompt sent to the external text-generation service. The
// engine itself never calls that service; this is caller-side plumbing.
func BuildSummaryPrompt(res Result, rawText string) string {
	var b strings.Builder

	b.WriteString("Structured findings extracted from the patient's report:\n")
	writePanelLines(&b, res.Panel)

	if len(res.RiskFlags) == 0 {
		b.WriteString("Risk flags: none detected.\n")
	} else {
		b.WriteString("Risk flags:\n")
		for _, f := range res.RiskFlags {
			if f.SupportingValue != nil {
				fmt.Fprintf(&b, "- %s (%s, supporting value %.2f)\n", f.Kind, f.Severity, *f.SupportingValue)
			} else {
				fmt.Fprintf(&b, "- %s (%s)\n", f.Kind, f.Severity)
			}
		}
	}

	fmt.Fprintf(&b, "Heuristic health index: %.1f/100 (lab %d, imaging %d).\n",
		res.HealthIndex.Value, res.HealthIndex.LabComponent, res.HealthIndex.ImagingComponent)

	if raw := strings.TrimSpace(rawText); raw != "" {
		b.WriteString("\nOriginal report text:\n")
		b.WriteString(raw)
		b.WriteString("\n")
	}

	return b.String()
}

func writePanelLines(b *strings.Builder, p labs.Panel) {
	for _, e := range []labs.ExtractedValue{
		p.Hemoglobin, p.WBC, p.NeutrophilAbsolute, p.NeutrophilPercent,
		p.Platelets, p.Glucose, p.BPSystolic, p.BPDiastolic,
	} {
		if !e.Found() {
			continue
		}
		fmt.Fprintf(b, "- %s: %.2f%s", e.Analyte, *e.Value, canonicalUnit(e.Analyte))
		if e.ProvenanceNote != nil {
			fmt.Fprintf(b, " (%s)", *e.ProvenanceNote)
		}
		b.WriteString("\n")
	}
}

// canonicalUnit labels the normalized value, not the raw one the unit guess
// refers to.
func canonicalUnit(a labs.Analyte) string {
	switch a {
	case labs.Hemoglobin:
		return " g/dL"
	case labs.WBC, labs.NeutrophilAbsolute, labs.Platelets:
		return " ×10⁹/L"
	case labs.NeutrophilPercent:
		return " %"
	case labs.Glucose:
		return " mmol/L"
	case labs.BloodPressureSystolic, labs.BloodPressureDiastolic:
		return " mmHg"
	default:
		return ""
	}
}
