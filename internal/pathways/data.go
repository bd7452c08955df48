package pathways

// defaultDefinitions is the curated pathway content shown to users. The rule
// engine references these by ID; editing copy here never changes rule
// behavior.
var defaultDefinitions = []Definition{
	{
		ID:               "naturalization",
		Name:             "Naturalization (N-400)",
		Category:         "citizenship",
		Timeline:         "8-14 months",
		TimelineDetailed: "8 to 14 months from filing to oath ceremony",
		Cost:             "$760 filing fee",
		SuccessRate:      "96% of complete applications approved",
		Pros: []string{
			"Permanent status that cannot expire",
			"Right to vote and hold a US passport",
			"Ability to sponsor a wider range of relatives",
		},
		Cons: []string{
			"Requires an interview and civics test",
			"Continuous residence rules restrict long trips abroad",
		},
		Requirements: []string{
			"Green card held for 5 years (3 if married to a US citizen)",
			"Physical presence for at least half the qualifying period",
			"Good moral character",
		},
		Risks: []string{
			"Denials are possible for unreported trips or tax issues",
		},
		RecommendedFor: []string{
			"Long-term green card holders ready to complete the journey",
		},
		NotRecommendedFor: []string{
			"Recent green card holders who have not met the residency clock",
		},
	},
	{
		ID:               "family_based",
		Name:             "Family-Based Adjustment of Status (I-130/I-485)",
		Category:         "family",
		Timeline:         "12-24 months",
		TimelineDetailed: "12 to 24 months with concurrent filing",
		Cost:             "$3,005 in combined filing fees",
		SuccessRate:      "90% for immediate relatives of US citizens",
		Pros: []string{
			"Concurrent filing keeps you in the US during processing",
			"Work and travel permits available while the case is pending",
		},
		Cons: []string{
			"Long processing queues at some field offices",
			"Requires a financial sponsor meeting income thresholds",
		},
		Requirements: []string{
			"Qualifying relationship to a US citizen or permanent resident",
			"Lawful entry into the United States",
			"Affidavit of support from the sponsor",
		},
		Risks: []string{
			"Marriage-based cases face fraud scrutiny and a joint interview",
		},
		RecommendedFor: []string{
			"Spouses and immediate relatives of US citizens already in the US",
		},
		NotRecommendedFor: []string{
			"Applicants who entered without inspection",
		},
	},
	{
		ID:               "employment_based",
		Name:             "Employment-Based Adjustment (PERM/I-140)",
		Category:         "employment",
		Timeline:         "2-4 years",
		TimelineDetailed: "2 to 4 years including labor certification",
		Cost:             "$10,000+ (typically employer-paid)",
		SuccessRate:      "85% once labor certification is approved",
		Pros: []string{
			"Leads directly to a green card without family sponsorship",
			"Premium processing available for the I-140 stage",
		},
		Cons: []string{
			"Tied to the sponsoring employer for most of the process",
			"Priority date backlogs for some countries of birth",
		},
		Requirements: []string{
			"Permanent job offer from a sponsoring employer",
			"Approved labor certification (most categories)",
			"Maintained nonimmigrant status",
		},
		Risks: []string{
			"Layoffs during the process can restart the labor certification",
		},
		RecommendedFor: []string{
			"H-1B professionals with a committed employer",
		},
		NotRecommendedFor: []string{
			"Workers planning to change employers soon",
		},
	},
	{
		ID:               "fiance_visa",
		Name:             "Fiancé(e) Visa (K-1)",
		Category:         "family",
		Timeline:         "10-16 months",
		TimelineDetailed: "10 to 16 months including consular processing",
		Cost:             "$2,025 plus adjustment fees after marriage",
		SuccessRate:      "80% of petitions approved",
		Pros: []string{
			"Fastest route for an engaged partner living abroad",
			"Adjustment of status available after the wedding",
		},
		Cons: []string{
			"Must marry within 90 days of entry",
			"No work authorization until adjustment is filed",
		},
		Requirements: []string{
			"Petitioner is a US citizen",
			"In-person meeting within the past two years",
			"Genuine intent to marry within 90 days",
		},
		Risks: []string{
			"Status is lost entirely if the marriage does not occur in 90 days",
		},
		RecommendedFor: []string{
			"Engaged couples where one partner is a US citizen",
		},
		NotRecommendedFor: []string{
			"Couples already legally married",
		},
	},
	{
		ID:               "spousal_visa",
		Name:             "Spousal Immigrant Visa (CR-1/IR-1)",
		Category:         "family",
		Timeline:         "14-20 months",
		TimelineDetailed: "14 to 20 months through consular processing",
		Cost:             "$1,340 in government fees",
		SuccessRate:      "92% for well-documented marriages",
		Pros: []string{
			"Spouse enters the US as a permanent resident",
			"No adjustment-of-status step after arrival",
		},
		Cons: []string{
			"Couple is usually separated during processing",
			"Interview takes place at a consulate abroad",
		},
		Requirements: []string{
			"Legally valid marriage to a US citizen",
			"Financial sponsorship meeting the poverty guidelines",
		},
		Risks: []string{
			"Prior immigration violations surface at the consular interview",
		},
		RecommendedFor: []string{
			"Married couples where the foreign spouse is outside the US or lacks lawful status",
		},
		NotRecommendedFor: []string{
			"Spouses maintaining valid US status who can adjust instead",
		},
	},
	{
		ID:               "work_visa_renewal",
		Name:             "Work Visa Extension / Change of Status",
		Category:         "employment",
		Timeline:         "3-6 months",
		TimelineDetailed: "3 to 6 months with premium processing available",
		Cost:             "$1,385 per extension",
		SuccessRate:      "88% for timely filings",
		Pros: []string{
			"Keeps lawful status while longer-term options develop",
			"Premium processing gives a 15-day decision",
		},
		Cons: []string{
			"Temporary by definition; no direct green card",
			"Renewal limits apply to most visa classes",
		},
		Requirements: []string{
			"Continued employer sponsorship",
			"Filing before the current status expires",
		},
		Risks: []string{
			"Gaps in employment can break status",
		},
		RecommendedFor: []string{
			"Visa holders buying time toward a permanent option",
		},
		NotRecommendedFor: []string{
			"Applicants at their maximum extension limit",
		},
	},
	{
		ID:               "tourist_extension",
		Name:             "Visitor Status Extension (B-2)",
		Category:         "temporary",
		Timeline:         "1-3 months",
		TimelineDetailed: "1 to 3 months for a decision; file 45 days before expiry",
		Cost:             "$470 filing fee",
		SuccessRate:      "70% with a credible temporary purpose",
		Pros: []string{
			"Extends lawful presence for up to six more months",
		},
		Cons: []string{
			"No work authorization",
			"Repeated extensions draw scrutiny",
		},
		Requirements: []string{
			"Timely filing before I-94 expiry",
			"Proof of funds and intent to depart",
		},
		Risks: []string{
			"Denial after the I-94 expires starts unlawful presence",
		},
		RecommendedFor: []string{
			"Visitors with a genuine short-term reason to stay",
		},
		NotRecommendedFor: []string{
			"Visitors intending to immigrate permanently",
		},
	},
}
