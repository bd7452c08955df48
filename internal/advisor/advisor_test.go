package advisor

import (
	"reflect"
	"strings"
	"testing"

	"visapath-backend/internal/pathways"
)

func TestAdviseDeterminism(t *testing.T) {
	profile := Profile{
		Status:        StatusH1B,
		Relationship:  RelationshipEngaged,
		TimeInCountry: TimeOneToThree,
		Goal:          GoalGreenCard,
	}
	first := Advise(profile, pathways.Default())
	second := Advise(profile, pathways.Default())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results for identical profiles")
	}
}

func TestAdviseNeverEmpty(t *testing.T) {
	statuses := []string{StatusCitizen, StatusGreenCard, StatusH1B, StatusL1, StatusStudent, StatusTourist, StatusNone, "garbage"}
	relationships := []string{RelationshipNone, RelationshipEngaged, RelationshipMarriedToCitizen, RelationshipMarriedToResident, ""}
	times := []string{TimeLessThanOne, TimeFivePlus, TimeSinceBirth, ""}
	goals := []string{GoalCitizenship, GoalWork, GoalFamily, ""}

	for _, s := range statuses {
		for _, r := range relationships {
			for _, ti := range times {
				for _, g := range goals {
					res := Advise(Profile{Status: s, Relationship: r, TimeInCountry: ti, Goal: g}, pathways.Default())
					if len(res.Recommendations) == 0 {
						t.Fatalf("empty recommendations for %s/%s/%s/%s", s, r, ti, g)
					}
					if res.Summary == "" {
						t.Fatalf("empty summary for %s/%s/%s/%s", s, r, ti, g)
					}
					for _, rec := range res.Recommendations {
						if rec.MatchScore < 0 || rec.MatchScore > 100 {
							t.Fatalf("match score out of bounds: %+v", rec)
						}
						if rec.PathwayID == pathways.ConsultationID {
							continue
						}
						if _, ok := pathways.Default().Lookup(rec.PathwayID); !ok {
							t.Fatalf("rule emitted unknown pathway %q", rec.PathwayID)
						}
					}
				}
			}
		}
	}
}

func TestAdviseCitizenWithCitizenshipGoal(t *testing.T) {
	res := Advise(Profile{
		Status:        StatusCitizen,
		Goal:          GoalCitizenship,
		Relationship:  RelationshipNone,
		TimeInCountry: TimeFivePlus,
	}, pathways.Default())

	top := res.Recommendations[0]
	if top.PathwayID != "naturalization" {
		t.Fatalf("expected naturalization on top, got %q", top.PathwayID)
	}
	if top.Urgency != UrgencyHigh {
		t.Fatalf("expected high urgency, got %q", top.Urgency)
	}
}

func TestAdviseGreenCardResidencySplit(t *testing.T) {
	ready := Advise(Profile{Status: StatusGreenCard, TimeInCountry: TimeFivePlus}, pathways.Default())
	if got := ready.Recommendations[0]; got.MatchScore != 90 || got.Urgency != UrgencyHigh {
		t.Fatalf("expected 90/high for 5+ years, got %d/%s", got.MatchScore, got.Urgency)
	}

	sinceBirth := Advise(Profile{Status: StatusGreenCard, TimeInCountry: TimeSinceBirth}, pathways.Default())
	if got := sinceBirth.Recommendations[0]; got.MatchScore != 90 {
		t.Fatalf("expected since_birth to count as meeting the clock, got %d", got.MatchScore)
	}

	early := Advise(Profile{Status: StatusGreenCard, TimeInCountry: TimeOneToThree}, pathways.Default())
	if got := early.Recommendations[0]; got.MatchScore != 70 || got.Urgency != UrgencyMedium {
		t.Fatalf("expected 70/medium before the clock, got %d/%s", got.MatchScore, got.Urgency)
	}
	if reflect.DeepEqual(ready.NextSteps, early.NextSteps) {
		t.Fatalf("expected branch-specific next steps")
	}
}

func TestAdviseWorkStatusBranches(t *testing.T) {
	married := Advise(Profile{Status: StatusL1, Relationship: RelationshipMarriedToCitizen}, pathways.Default())
	if got := married.Recommendations[0]; got.PathwayID != "family_based" || got.MatchScore != 85 || got.Urgency != UrgencyHigh {
		t.Fatalf("expected family_based 85/high, got %+v", got)
	}
	if len(married.TimelineNotes) == 0 || len(married.CostNotes) == 0 {
		t.Fatalf("expected timeline and cost notes for the concurrent filing branch")
	}

	h1b := Advise(Profile{Status: StatusH1B, Relationship: RelationshipNone}, pathways.Default())
	if got := h1b.Recommendations[0]; got.PathwayID != "employment_based" || got.MatchScore != 75 || got.Urgency != UrgencyMedium {
		t.Fatalf("expected employment_based 75/medium, got %+v", got)
	}
	if len(h1b.TimelineNotes) == 0 || len(h1b.CostNotes) == 0 {
		t.Fatalf("expected timeline and cost notes for the employment branch")
	}

	student := Advise(Profile{Status: StatusStudent, Relationship: RelationshipNone}, pathways.Default())
	if got := student.Recommendations[0]; got.PathwayID != "work_visa_renewal" || got.MatchScore != 60 {
		t.Fatalf("expected work_visa_renewal 60 fallback, got %+v", got)
	}
}

func TestAdviseEngagedAddsNinetyDayWarning(t *testing.T) {
	res := Advise(Profile{Status: StatusTourist, Relationship: RelationshipEngaged}, pathways.Default())

	var found bool
	for _, rec := range res.Recommendations {
		if rec.PathwayID == "fiance_visa" {
			found = true
			if rec.MatchScore != 88 || rec.Urgency != UrgencyHigh {
				t.Fatalf("expected fiance_visa 88/high, got %+v", rec)
			}
		}
	}
	if !found {
		t.Fatalf("expected a fiance_visa recommendation, got %+v", res.Recommendations)
	}
	if len(res.Warnings) == 0 {
		t.Fatalf("expected the 90-day marriage warning")
	}
}

func TestAdviseMarriedToCitizenBranches(t *testing.T) {
	abroad := Advise(Profile{Status: StatusNone, Relationship: RelationshipMarriedToCitizen}, pathways.Default())
	if got := abroad.Recommendations[0]; got.PathwayID != "spousal_visa" || got.MatchScore != 82 {
		t.Fatalf("expected spousal_visa 82 for no-status spouse, got %+v", got)
	}
	if len(abroad.Warnings) == 0 {
		t.Fatalf("expected the tourist-entry fraud warning")
	}

	tourist := Advise(Profile{Status: StatusTourist, Relationship: RelationshipMarriedToCitizen}, pathways.Default())
	if got := tourist.Recommendations[0]; got.PathwayID != "spousal_visa" {
		t.Fatalf("expected spousal_visa for tourist spouse, got %+v", got)
	}

	settled := Advise(Profile{Status: StatusGreenCard, Relationship: RelationshipMarriedToCitizen}, pathways.Default())
	var familyBased *Recommendation
	for i := range settled.Recommendations {
		if settled.Recommendations[i].PathwayID == "family_based" {
			familyBased = &settled.Recommendations[i]
		}
	}
	if familyBased == nil || familyBased.MatchScore != 90 {
		t.Fatalf("expected concurrent family_based 90 for settled spouse, got %+v", settled.Recommendations)
	}
}

func TestAdviseTouristAloneGetsExtension(t *testing.T) {
	res := Advise(Profile{Status: StatusTourist, Relationship: RelationshipNone}, pathways.Default())
	if got := res.Recommendations[0]; got.PathwayID != "tourist_extension" || got.MatchScore != 50 || got.Urgency != UrgencyMedium {
		t.Fatalf("expected tourist_extension 50/medium, got %+v", got)
	}
}

func TestAdviseConsultationFallback(t *testing.T) {
	res := Advise(Profile{Status: StatusNone, Relationship: RelationshipNone, Goal: GoalWork}, pathways.Default())
	if len(res.Recommendations) != 1 {
		t.Fatalf("expected exactly the sentinel, got %+v", res.Recommendations)
	}
	got := res.Recommendations[0]
	if got.PathwayID != pathways.ConsultationID || got.MatchScore != 100 || got.Urgency != UrgencyHigh {
		t.Fatalf("expected consultation sentinel 100/high, got %+v", got)
	}
	if res.Summary == "" {
		t.Fatalf("expected the specialist summary for the sentinel")
	}
}

func TestSummaryUsesCatalogDisplayFields(t *testing.T) {
	res := Advise(Profile{Status: StatusGreenCard, TimeInCountry: TimeFivePlus}, pathways.Default())
	def, err := pathways.Default().Get("naturalization")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	for _, want := range []string{def.Name, def.TimelineDetailed, def.Cost} {
		if want == "" {
			t.Fatalf("catalog fixture missing display field")
		}
		if !strings.Contains(res.Summary, want) {
			t.Fatalf("summary %q missing %q", res.Summary, want)
		}
	}
}
