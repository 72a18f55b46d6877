package labs

import "fmt"

// Unit disambiguation thresholds. These are magnitude heuristics, not clinical
// facts: plain report text rarely states whether a count is cells/µL or ×10⁹/L,
// so the engine guesses from the number's size and records how it decided.
const (
	// CountUnitThreshold splits the two ways labs report cell counts. A WBC or
	// ANC above it is assumed to be cells/µL and is divided by 1000 into the
	// canonical ×10⁹/L; at or below it the value is taken as already canonical.
	// Source variants used 50 or 1000 for this cutoff; 50 is the canonical
	// choice here because real ×10⁹/L counts never reach it.
	CountUnitThreshold = 50.0

	// GlucoseUnitThreshold splits mg/dL from mmol/L glucose the same way.
	// Above it the value is assumed mg/dL and converted; mmol/L readings never
	// get near 30.
	GlucoseUnitThreshold = 30.0

	// mgPerDLPerMmolPerL converts glucose mg/dL into mmol/L.
	mgPerDLPerMmolPerL = 18.0
)

// normalizeCount maps a raw extracted cell count onto ×10⁹/L, attaching a
// provenance note describing which branch the heuristic took. Re-running it on
// an already-canonical value is a no-op apart from the note.
func normalizeCount(analyte Analyte, raw float64) (value float64, unitGuess, note string) {
	if raw > CountUnitThreshold {
		value = raw / 1000.0
		unitGuess = "cells/µL"
		note = fmt.Sprintf("%s %g exceeds %g, assumed cells/µL and divided by 1000 → %.2f ×10⁹/L", analyte, raw, CountUnitThreshold, value)
		return value, unitGuess, note
	}
	unitGuess = "×10⁹/L"
	note = fmt.Sprintf("%s %g is within %g, assumed already ×10⁹/L", analyte, raw, CountUnitThreshold)
	return raw, unitGuess, note
}

// normalizeGlucose maps a raw glucose reading onto mmol/L so the risk
// thresholds work on a single scale.
func normalizeGlucose(raw float64) (value float64, unitGuess, note string) {
	if raw > GlucoseUnitThreshold {
		value = raw / mgPerDLPerMmolPerL
		unitGuess = "mg/dL"
		note = fmt.Sprintf("glucose %g exceeds %g, assumed mg/dL and converted → %.2f mmol/L", raw, GlucoseUnitThreshold, value)
		return value, unitGuess, note
	}
	unitGuess = "mmol/L"
	note = fmt.Sprintf("glucose %g is within %g, assumed already mmol/L", raw, GlucoseUnitThreshold)
	return raw, unitGuess, note
}
