package recommendations

import (
	"reflect"
	"testing"

	"visapath-backend/internal/advisor"
	"visapath-backend/internal/pathways"
)

func TestAggregateJoinsCatalogFields(t *testing.T) {
	res := advisor.Advise(advisor.Profile{
		Status:        advisor.StatusGreenCard,
		TimeInCountry: advisor.TimeFivePlus,
	}, pathways.Default())

	out := Aggregate(res, pathways.Default())
	top, ok := out.Top()
	if !ok {
		t.Fatalf("expected a top recommendation")
	}
	if top.PathwayID != "naturalization" {
		t.Fatalf("expected naturalization on top, got %q", top.PathwayID)
	}
	def, err := pathways.Default().Get("naturalization")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if top.Name != def.Name {
		t.Fatalf("expected catalog name %q, got %q", def.Name, top.Name)
	}
	if top.Pathway == nil || top.Pathway.ID != "naturalization" {
		t.Fatalf("expected embedded pathway definition, got %+v", top.Pathway)
	}
	if top.MatchScore != res.Recommendations[0].MatchScore {
		t.Fatalf("match score changed during aggregation")
	}
}

func TestAggregateDedupesKeepingFirst(t *testing.T) {
	// An H-1B holder married to a citizen gets family_based from two rule
	// families; only the first occurrence survives aggregation.
	res := advisor.Advise(advisor.Profile{
		Status:       advisor.StatusH1B,
		Relationship: advisor.RelationshipMarriedToCitizen,
	}, pathways.Default())

	out := Aggregate(res, pathways.Default())
	var scores []int
	for _, rec := range out.Recommendations {
		if rec.PathwayID == "family_based" {
			scores = append(scores, rec.MatchScore)
		}
	}
	if len(scores) != 1 || scores[0] != 85 {
		t.Fatalf("expected single family_based at 85, got %v", scores)
	}
}

func TestAggregateDropsUnknownIDs(t *testing.T) {
	res := advisor.Result{
		Recommendations: []advisor.Recommendation{
			{PathwayID: "retired_pathway", MatchScore: 99, Urgency: advisor.UrgencyHigh},
			{PathwayID: "tourist_extension", MatchScore: 50, Urgency: advisor.UrgencyMedium},
		},
	}
	out := Aggregate(res, pathways.Default())
	if len(out.Recommendations) != 1 || out.Recommendations[0].PathwayID != "tourist_extension" {
		t.Fatalf("expected unknown id dropped silently, got %+v", out.Recommendations)
	}
}

func TestAggregatePreservesAdvisorOrder(t *testing.T) {
	// The second item has the higher score; aggregation must not re-sort.
	res := advisor.Result{
		Recommendations: []advisor.Recommendation{
			{PathwayID: "employment_based", MatchScore: 75, Urgency: advisor.UrgencyMedium},
			{PathwayID: "fiance_visa", MatchScore: 88, Urgency: advisor.UrgencyHigh},
		},
	}
	out := Aggregate(res, pathways.Default())
	ids := []string{out.Recommendations[0].PathwayID, out.Recommendations[1].PathwayID}
	if !reflect.DeepEqual(ids, []string{"employment_based", "fiance_visa"}) {
		t.Fatalf("expected advisor order preserved, got %v", ids)
	}
}

func TestAggregateConsultationBypassesCatalog(t *testing.T) {
	res := advisor.Advise(advisor.Profile{
		Status:       advisor.StatusNone,
		Relationship: advisor.RelationshipNone,
	}, pathways.Default())

	out := Aggregate(res, pathways.Default())
	top, ok := out.Top()
	if !ok || top.PathwayID != pathways.ConsultationID {
		t.Fatalf("expected the consultation sentinel, got %+v", out.Recommendations)
	}
	if !top.Consultation || top.Pathway != nil {
		t.Fatalf("sentinel must be flagged and carry no catalog definition: %+v", top)
	}
	if top.Name == "" {
		t.Fatalf("sentinel needs a display name")
	}
}

func TestAggregateCarriesNotesAndSummary(t *testing.T) {
	res := advisor.Advise(advisor.Profile{
		Status:       advisor.StatusTourist,
		Relationship: advisor.RelationshipEngaged,
	}, pathways.Default())

	out := Aggregate(res, pathways.Default())
	if !reflect.DeepEqual(out.Warnings, res.Warnings) {
		t.Fatalf("warnings changed: %v vs %v", out.Warnings, res.Warnings)
	}
	if !reflect.DeepEqual(out.NextSteps, res.NextSteps) {
		t.Fatalf("next steps changed")
	}
	if out.Summary != res.Summary {
		t.Fatalf("summary changed")
	}

	// Mutating the aggregated copy must not reach back into the advisor result.
	if len(out.Warnings) > 0 {
		out.Warnings[0] = "mutated"
		if res.Warnings[0] == "mutated" {
			t.Fatalf("aggregation aliases advisor slices")
		}
	}
}

func TestAlternates(t *testing.T) {
	res := advisor.Advise(advisor.Profile{
		Status:       advisor.StatusH1B,
		Relationship: advisor.RelationshipEngaged,
	}, pathways.Default())

	out := Aggregate(res, pathways.Default())
	alts := out.Alternates()
	if len(alts) != len(out.Recommendations)-1 {
		t.Fatalf("expected everything after the top, got %d of %d", len(alts), len(out.Recommendations))
	}

	empty := Result{}
	if got := empty.Alternates(); len(got) != 0 {
		t.Fatalf("expected empty alternates, got %v", got)
	}
	if _, ok := empty.Top(); ok {
		t.Fatalf("expected no top for empty result")
	}
}
