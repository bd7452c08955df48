package advisor

import (
	"fmt"

	"visapath-backend/internal/pathways"
)

// Urgency levels attached to recommendations, independent of match score.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// Recommendation points at a pathway with the advisor's confidence and
// priority for this profile.
type Recommendation struct {
	PathwayID  string `json:"pathwayId"`
	MatchScore int    `json:"matchScore"`
	Urgency    string `json:"urgency"`
	Reason     string `json:"reason"`
}

// Result is the full advisory output for one profile. Recommendations is
// never empty: when no rule matches, the consultation sentinel is emitted.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Warnings        []string         `json:"warnings"`
	TimelineNotes   []string         `json:"timelineNotes"`
	CostNotes       []string         `json:"costNotes"`
	NextSteps       []string         `json:"nextSteps"`
	Summary         string           `json:"summary"`
}

// Advise evaluates the ordered rule list against the profile. Pure and
// deterministic: identical profiles produce identical results, and the
// catalog is only read to compose the summary sentence.
func Advise(p Profile, catalog *pathways.Catalog) Result {
	res := Result{
		Recommendations: []Recommendation{},
		Warnings:        []string{},
		TimelineNotes:   []string{},
		CostNotes:       []string{},
		NextSteps:       []string{},
	}

	matched := make(map[string]bool, 3)
	for _, r := range rules {
		if matched[r.family] {
			continue
		}
		if !r.matches(p) {
			continue
		}
		matched[r.family] = true
		r.emit(p, &res)
	}

	if len(res.Recommendations) == 0 {
		res.Recommendations = append(res.Recommendations, Recommendation{
			PathwayID:  pathways.ConsultationID,
			MatchScore: 100,
			Urgency:    UrgencyHigh,
			Reason:     "Your situation does not fit a standard pathway and needs individual review.",
		})
		res.NextSteps = append(res.NextSteps, "Book a consultation with an immigration specialist to map out your options.")
	}

	res.Summary = summarize(res.Recommendations[0], catalog)
	return res
}

func summarize(top Recommendation, catalog *pathways.Catalog) string {
	if top.PathwayID == pathways.ConsultationID {
		return "Your profile does not map cleanly onto a standard pathway. Speak to an immigration specialist to review your options."
	}
	def, ok := catalog.Lookup(top.PathwayID)
	if !ok {
		return fmt.Sprintf("Your strongest option matches %d%% of your profile.", top.MatchScore)
	}
	return fmt.Sprintf("Your strongest option is %s with a %d%% match. Expect %s at a typical cost of %s.",
		def.Name, top.MatchScore, def.TimelineDetailed, def.Cost)
}
