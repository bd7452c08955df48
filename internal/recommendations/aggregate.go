// Package recommendations joins advisor output with the pathway catalog into
// the display-ready result consumed by clients.
package recommendations

import (
	"visapath-backend/internal/advisor"
	"visapath-backend/internal/pathways"
)

const consultationName = "Specialist Consultation"

// Ranked is one recommendation joined with its catalog definition. For the
// consultation sentinel Pathway is nil and Consultation is true.
type Ranked struct {
	PathwayID    string               `json:"pathwayId"`
	Name         string               `json:"name"`
	MatchScore   int                  `json:"matchScore"`
	Urgency      string               `json:"urgency"`
	Reason       string               `json:"reason"`
	Consultation bool                 `json:"consultation,omitempty"`
	Pathway      *pathways.Definition `json:"pathway,omitempty"`
}

// Result is the aggregated, user-facing outcome of one assessment.
type Result struct {
	Recommendations []Ranked `json:"recommendations"`
	Warnings        []string `json:"warnings"`
	TimelineNotes   []string `json:"timelineNotes"`
	CostNotes       []string `json:"costNotes"`
	NextSteps       []string `json:"nextSteps"`
	Summary         string   `json:"summary"`
}

// Aggregate joins each recommendation against the catalog, drops unknown IDs
// silently, and dedupes by pathway keeping the first occurrence. The advisor
// already encodes priority in its emission order, so no re-sorting by match
// score happens here: a warning-bearing high-urgency item stays ahead of a
// later item with an equal score.
func Aggregate(res advisor.Result, catalog *pathways.Catalog) Result {
	out := Result{
		Recommendations: make([]Ranked, 0, len(res.Recommendations)),
		Warnings:        copyStrings(res.Warnings),
		TimelineNotes:   copyStrings(res.TimelineNotes),
		CostNotes:       copyStrings(res.CostNotes),
		NextSteps:       copyStrings(res.NextSteps),
		Summary:         res.Summary,
	}

	seen := make(map[string]bool, len(res.Recommendations))
	for _, rec := range res.Recommendations {
		if seen[rec.PathwayID] {
			continue
		}

		if rec.PathwayID == pathways.ConsultationID {
			seen[rec.PathwayID] = true
			out.Recommendations = append(out.Recommendations, Ranked{
				PathwayID:    rec.PathwayID,
				Name:         consultationName,
				MatchScore:   rec.MatchScore,
				Urgency:      rec.Urgency,
				Reason:       rec.Reason,
				Consultation: true,
			})
			continue
		}

		def, ok := catalog.Lookup(rec.PathwayID)
		if !ok {
			// Curated catalog content may lag behind rule authoring.
			continue
		}
		seen[rec.PathwayID] = true
		out.Recommendations = append(out.Recommendations, Ranked{
			PathwayID:  rec.PathwayID,
			Name:       def.Name,
			MatchScore: rec.MatchScore,
			Urgency:    rec.Urgency,
			Reason:     rec.Reason,
			Pathway:    &def,
		})
	}

	return out
}

// Top returns the primary recommendation, if any.
func (r Result) Top() (Ranked, bool) {
	if len(r.Recommendations) == 0 {
		return Ranked{}, false
	}
	return r.Recommendations[0], true
}

// Alternates returns every recommendation after the primary one.
func (r Result) Alternates() []Ranked {
	if len(r.Recommendations) <= 1 {
		return []Ranked{}
	}
	return r.Recommendations[1:]
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
