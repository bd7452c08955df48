package advisor

// The decision tree is an explicit ordered list rather than an if/else chain
// so precedence is inspectable and testable. Rules are grouped into concern
// families; within a family only the first matching rule fires, while
// different families can each contribute to the same result. Later rules
// assume earlier ones in their family did not match, so order matters.
const (
	familyStatus       = "status"
	familyRelationship = "relationship"
	familyExtension    = "extension"
)

type rule struct {
	name    string
	family  string
	matches func(Profile) bool
	emit    func(Profile, *Result)
}

// RuleInfo describes one rule's position in the evaluation order.
type RuleInfo struct {
	Name   string
	Family string
}

// Rules exposes the evaluation order for inspection and tests.
func Rules() []RuleInfo {
	out := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		out = append(out, RuleInfo{Name: r.name, Family: r.family})
	}
	return out
}

var rules = []rule{
	{
		name:   "citizen-citizenship-goal",
		family: familyStatus,
		matches: func(p Profile) bool {
			return p.Status == StatusCitizen && p.Goal == GoalCitizenship
		},
		emit: func(p Profile, res *Result) {
			res.Recommendations = append(res.Recommendations, Recommendation{
				PathwayID:  "naturalization",
				MatchScore: 95,
				Urgency:    UrgencyHigh,
				Reason:     "Citizenship is your stated goal and the naturalization track applies directly.",
			})
			res.NextSteps = append(res.NextSteps,
				"Confirm your naturalization records with USCIS and keep certified copies on hand.")
		},
	},
	{
		name:   "green-card-naturalization",
		family: familyStatus,
		matches: func(p Profile) bool {
			return p.Status == StatusGreenCard
		},
		emit: func(p Profile, res *Result) {
			if meetsResidencyClock(p.TimeInCountry) {
				res.Recommendations = append(res.Recommendations, Recommendation{
					PathwayID:  "naturalization",
					MatchScore: 90,
					Urgency:    UrgencyHigh,
					Reason:     "You meet the five-year residency requirement for naturalization.",
				})
				res.NextSteps = append(res.NextSteps,
					"File Form N-400 and book your biometrics appointment.")
				return
			}
			res.Recommendations = append(res.Recommendations, Recommendation{
				PathwayID:  "naturalization",
				MatchScore: 70,
				Urgency:    UrgencyMedium,
				Reason:     "You are on track for naturalization once you meet the residency requirement.",
			})
			res.NextSteps = append(res.NextSteps,
				"Maintain continuous residence and note the date you reach five years as a permanent resident.")
		},
	},
	{
		name:   "work-or-study-status",
		family: familyStatus,
		matches: func(p Profile) bool {
			return isWorkOrStudyStatus(p.Status)
		},
		emit: func(p Profile, res *Result) {
			if p.Relationship == RelationshipMarriedToCitizen {
				res.Recommendations = append(res.Recommendations, Recommendation{
					PathwayID:  "family_based",
					MatchScore: 85,
					Urgency:    UrgencyHigh,
					Reason:     "Marriage to a US citizen lets you file the I-130 and I-485 concurrently.",
				})
				res.NextSteps = append(res.NextSteps,
					"File the I-130 and I-485 together and request work and travel permits.")
				res.TimelineNotes = append(res.TimelineNotes,
					"Concurrent family-based filing typically takes 12 to 24 months.")
				res.CostNotes = append(res.CostNotes,
					"Budget about $3,005 in combined filing fees for a concurrent family filing.")
				return
			}
			if p.Status == StatusH1B {
				res.Recommendations = append(res.Recommendations, Recommendation{
					PathwayID:  "employment_based",
					MatchScore: 75,
					Urgency:    UrgencyMedium,
					Reason:     "Your H-1B employer can sponsor an employment-based green card.",
				})
				res.NextSteps = append(res.NextSteps,
					"Ask your employer to start PERM labor certification as early as possible.")
				res.TimelineNotes = append(res.TimelineNotes,
					"Employment-based processing commonly runs 2 to 4 years including PERM.")
				res.CostNotes = append(res.CostNotes,
					"Employment-based sponsorship usually exceeds $10,000 and is typically employer-paid.")
				return
			}
			res.Recommendations = append(res.Recommendations, Recommendation{
				PathwayID:  "work_visa_renewal",
				MatchScore: 60,
				Urgency:    UrgencyMedium,
				Reason:     "Keeping your current visa valid preserves your options while a permanent route develops.",
			})
			res.NextSteps = append(res.NextSteps,
				"Calendar your status expiration and file any extension at least six months early.")
		},
	},
	{
		name:   "engaged-fiance-visa",
		family: familyRelationship,
		matches: func(p Profile) bool {
			return p.Relationship == RelationshipEngaged
		},
		emit: func(p Profile, res *Result) {
			res.Recommendations = append(res.Recommendations, Recommendation{
				PathwayID:  "fiance_visa",
				MatchScore: 88,
				Urgency:    UrgencyHigh,
				Reason:     "An engagement to a US citizen qualifies you for the K-1 fiancé(e) visa.",
			})
			res.Warnings = append(res.Warnings,
				"K-1 entrants must marry within 90 days of arrival or leave the United States.")
			res.NextSteps = append(res.NextSteps,
				"File Form I-129F and collect evidence of your relationship history.")
		},
	},
	{
		name:   "married-to-citizen",
		family: familyRelationship,
		matches: func(p Profile) bool {
			return p.Relationship == RelationshipMarriedToCitizen
		},
		emit: func(p Profile, res *Result) {
			if p.Status == StatusTourist || p.Status == StatusNone {
				res.Recommendations = append(res.Recommendations, Recommendation{
					PathwayID:  "spousal_visa",
					MatchScore: 82,
					Urgency:    UrgencyHigh,
					Reason:     "Consular processing is the safer route for spouses without settled US status.",
				})
				res.Warnings = append(res.Warnings,
					"Entering on a tourist visa and marrying soon after can be treated as visa fraud. Get legal advice before traveling.")
				res.NextSteps = append(res.NextSteps,
					"File Form I-130 and prepare for a consular interview in your home country.")
				return
			}
			res.Recommendations = append(res.Recommendations, Recommendation{
				PathwayID:  "family_based",
				MatchScore: 90,
				Urgency:    UrgencyHigh,
				Reason:     "As the spouse of a US citizen you are an immediate relative eligible for concurrent filing.",
			})
			res.NextSteps = append(res.NextSteps,
				"File the I-130 and I-485 concurrently and schedule the medical exam.")
		},
	},
	{
		name:   "tourist-extension",
		family: familyExtension,
		matches: func(p Profile) bool {
			return p.Status == StatusTourist && p.Relationship == RelationshipNone
		},
		emit: func(p Profile, res *Result) {
			res.Recommendations = append(res.Recommendations, Recommendation{
				PathwayID:  "tourist_extension",
				MatchScore: 50,
				Urgency:    UrgencyMedium,
				Reason:     "Without family sponsorship, an extension assessment is the main near-term option.",
			})
			res.NextSteps = append(res.NextSteps,
				"File Form I-539 at least 45 days before your I-94 expires.")
		},
	},
}

// knownPathwayIDs are the IDs the rule list can emit, excluding the sentinel.
// Kept next to the rules so catalog completeness can be asserted in tests.
var knownPathwayIDs = []string{
	"naturalization",
	"family_based",
	"employment_based",
	"work_visa_renewal",
	"fiance_visa",
	"spousal_visa",
	"tourist_extension",
}

// EmittablePathwayIDs returns every catalog ID the rules can produce.
func EmittablePathwayIDs() []string {
	out := make([]string, len(knownPathwayIDs))
	copy(out, knownPathwayIDs)
	return out
}
