package health

import (
	"math"
	"strings"
)

// The index is a heuristic keyword signal, not a clinical score. Its only
// contract is determinism: identical text always produces the identical value.
const (
	labBaseline     = 50
	imagingBaseline = 100
	labDelta        = 5
	imagingDelta    = 10

	// WeightLab and WeightImaging combine the two sub-scores into the composite.
	WeightLab     = 0.7
	WeightImaging = 0.3
)

// Keyword tables. Each mention moves the sub-score by the fixed delta; lab text
// moves both ways from its midpoint baseline, imaging only deducts from 100.
var (
	labPositiveKeywords = []string{"remission", "stable", "improving", "improved", "resolved", "unremarkable"}
	labNegativeKeywords = []string{"progression", "abnormal", "worsening", "recurrence", "relapse", "critical"}

	imagingDeductionKeywords = []string{"metastasis", "metastases", "metastatic", "lesion", "mass", "nodule", "progression"}
)

// IndexScore is the 0–100 composite with its components kept visible so the
// presentation layer can explain the number.
type IndexScore struct {
	Value            float64 `json:"value"`
	LabComponent     int     `json:"lab_component"`
	ImagingComponent int     `json:"imaging_component"`
	WeightLab        float64 `json:"weight_lab"`
	WeightImaging    float64 `json:"weight_imaging"`
}

// Score computes the composite health index from lab/report text and any
// imaging-report texts. Empty inputs land on the neutral baseline: lab 50,
// imaging 100, composite 65.
func Score(labText string, imagingTexts []string) IndexScore {
	lab := labScore(labText)
	imaging := imagingScore(imagingTexts)
	composite := round1(float64(lab)*WeightLab + float64(imaging)*WeightImaging)
	return IndexScore{
		Value:            composite,
		LabComponent:     lab,
		ImagingComponent: imaging,
		WeightLab:        WeightLab,
		WeightImaging:    WeightImaging,
	}
}

func labScore(text string) int {
	t := strings.ToLower(text)
	score := labBaseline
	for _, kw := range labPositiveKeywords {
		score += labDelta * strings.Count(t, kw)
	}
	for _, kw := range labNegativeKeywords {
		score -= labDelta * strings.Count(t, kw)
	}
	return clamp(score)
}

func imagingScore(texts []string) int {
	score := imagingBaseline
	for _, text := range texts {
		t := strings.ToLower(text)
		for _, kw := range imagingDeductionKeywords {
			score -= imagingDelta * strings.Count(t, kw)
		}
	}
	return clamp(score)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
