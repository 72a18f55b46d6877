package report

import (
	"github.com/eupern/ai-cancer-chatbot/diet"
	"github.com/eupern/ai-cancer-chatbot/health"
	"github.com/eupern/ai-cancer-chatbot/labs"
)

// Result is the immutable analysis of one report text. It is built in a single
// pass and handed to the presentation layer and the prompt builder; nothing
// mutates it afterwards.
type Result struct {
	Panel       labs.Panel        `json:"panel"`
	RiskFlags   []labs.RiskFlag   `json:"risk_flags"`
	HealthIndex health.IndexScore `json:"health_index"`
	Advisory    diet.Advisory     `json:"dietary_advisory"`
}

// Build runs the whole pipeline: panel extraction, risk classification, health
// index scoring and dietary guidance, then composes the result. Assembly does
// no further computation and never re-invokes a stage. Given the same inputs
// the result is always identical, and no input — including the empty string —
// makes it fail.
func Build(text string, imagingTexts []string) Result {
	panel := labs.BuildPanel(text)
	flags := labs.Classify(panel)
	return Result{
		Panel:       panel,
		RiskFlags:   flags,
		HealthIndex: health.Score(text, imagingTexts),
		Advisory:    diet.Advise(flags),
	}
}
