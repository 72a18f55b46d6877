package labs

import "regexp"

// Candidate patterns per analyte, tried in priority order: explicit labels first,
// abbreviations last, so "hemoglobin:" wins over a stray "hb" when both appear.
// All patterns assume the text was already passed through NormalizeText (lowercase).
// The single capture group is the numeric token; thousands separators are allowed
// and stripped before parsing.
type analytePatterns struct {
	analyte  Analyte
	patterns []*regexp.Regexp
}

var extractionTable = []analytePatterns{
	{Hemoglobin, []*regexp.Regexp{
		regexp.MustCompile(`ha?emoglobin[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`\bhgb\b[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`\bhb\b[^0-9]*([\d,]+(?:\.\d+)?)`),
	}},
	{WBC, []*regexp.Regexp{
		regexp.MustCompile(`white\s*(?:blood\s*)?cells?(?:\s*count)?[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`total\s*leu[ck]ocyte\s*count[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`\bwbc\b[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`\btlc\b[^0-9]*([\d,]+(?:\.\d+)?)`),
	}},
	{NeutrophilAbsolute, []*regexp.Regexp{
		regexp.MustCompile(`absolute\s*neutrophil\s*count[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`neutrophils?\s*\(?abs(?:olute)?\.?\)?[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`\banc\b[^0-9]*([\d,]+(?:\.\d+)?)`),
	}},
	{NeutrophilPercent, []*regexp.Regexp{
		regexp.MustCompile(`neutrophils?\s*(?:\(%\)|%|percent(?:age)?)?[^0-9]*([\d,]+(?:\.\d+)?)\s*%`),
		regexp.MustCompile(`neutrophils?\s*(?:\(%\)|percent(?:age)?)[^0-9]*([\d,]+(?:\.\d+)?)`),
	}},
	{Platelets, []*regexp.Regexp{
		regexp.MustCompile(`platelets?(?:\s*count)?[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`\bplt\b[^0-9]*([\d,]+(?:\.\d+)?)`),
	}},
	{Glucose, []*regexp.Regexp{
		regexp.MustCompile(`(?:fasting\s*|random\s*)?(?:blood\s*)?glucose[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`blood\s*sugar[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`\bfbs\b[^0-9]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`\brbs\b[^0-9]*([\d,]+(?:\.\d+)?)`),
	}},
}

// Blood pressure is the one two-capture analyte (systolic/diastolic), handled
// outside the generic table. A labelled reading wins over a bare "120/80 mmhg".
var bloodPressurePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:blood\s*pressure|\bb\.?p\.?\b)[^0-9]*(\d{2,3})\s*/\s*(\d{2,3})`),
	regexp.MustCompile(`(\d{2,3})\s*/\s*(\d{2,3})\s*mm\s*hg`),
}
