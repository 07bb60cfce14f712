package domain

import "time"

// Period types and languages the narrative generator understands.
const (
	PeriodTypeWeekly  = "weekly"
	PeriodTypeMonthly = "monthly"

	LanguageEnglish    = "en"
	LanguageVietnamese = "vi"
)

// ValidPeriodType reports whether s is a supported period type.
func ValidPeriodType(s string) bool {
	return s == PeriodTypeWeekly || s == PeriodTypeMonthly
}

// ValidLanguage reports whether s is a supported narrative language.
func ValidLanguage(s string) bool {
	return s == LanguageEnglish || s == LanguageVietnamese
}

// Narrative is the payload returned by the external generator. The
// orchestrator does not interpret its content, only its presence.
type Narrative struct {
	Summary         string   `json:"summary"`
	KeyDrivers      []string `json:"keyDrivers"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// CachedInsight is a stored narrative together with the request window
// and the metrics snapshot it was generated from. Rows are never mutated;
// superseded entries simply lose future lookups to newer ones.
type CachedInsight struct {
	ID              string           `json:"id"`
	PeriodType      string           `json:"periodType"`
	Language        string           `json:"language"`
	StartDate       time.Time        `json:"startDate"`
	EndDate         time.Time        `json:"endDate"`
	Narrative       *Narrative       `json:"narrative"`
	MetricsSnapshot *MetricsSnapshot `json:"metricsSnapshot"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// InsightResult is what the orchestrator hands back to the API layer.
type InsightResult struct {
	Narrative   *Narrative `json:"data"`
	Cached      bool       `json:"cached"`
	GeneratedAt time.Time  `json:"generatedAt"`
}
