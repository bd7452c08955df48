package questionnaire

// defaultQuestions is the assessment question set presented by the intake
// flow. Option scores across the set sum to at most 100.
var defaultQuestions = []Question{
	{
		ID:       "urgency",
		Title:    "How soon do you need to resolve your immigration status?",
		Category: "timing",
		Weight:   35,
		Options: []Option{
			{Value: "immediate", Label: "Immediately", Description: "My status expires within 90 days", Score: 35},
			{Value: "within_year", Label: "Within a year", Description: "I have time but want to start now", Score: 25},
			{Value: "one_to_two_years", Label: "In 1-2 years", Description: "Planning ahead", Score: 15},
			{Value: "exploring", Label: "Just exploring", Description: "Researching my options", Score: 5},
		},
	},
	{
		ID:       "family_ties",
		Title:    "Do you have close family members in the United States?",
		Category: "family",
		Weight:   40,
		Options: []Option{
			{Value: "citizen", Label: "Yes, a US citizen spouse, parent, or child", Score: 40},
			{Value: "green_card", Label: "Yes, a green card holder relative", Score: 25},
			{Value: "extended", Label: "Extended family only", Score: 10},
			{Value: "none", Label: "No family in the US", Score: 0},
		},
	},
	{
		ID:       "current_status",
		Title:    "What best describes your current status?",
		Category: "status",
		Weight:   15,
		Options: []Option{
			{Value: "green_card", Label: "Permanent resident", Score: 15},
			{Value: "work_visa", Label: "Work visa (H-1B, L-1, etc.)", Score: 12},
			{Value: "student_visa", Label: "Student visa", Score: 8},
			{Value: "visitor", Label: "Visitor or tourist", Score: 4},
			{Value: "none", Label: "No current status", Score: 0},
		},
	},
	{
		ID:       "sponsorship",
		Title:    "Do you have a US employer willing to sponsor you?",
		Category: "employment",
		Weight:   10,
		Options: []Option{
			{Value: "committed", Label: "Yes, my employer will sponsor", Score: 10},
			{Value: "employed", Label: "Employed, sponsorship undecided", Score: 6},
			{Value: "searching", Label: "Looking for a sponsoring employer", Score: 2},
			{Value: "none", Label: "No US employer", Score: 0},
		},
	},
}

// DefaultQuestions returns the assessment question set in presentation order.
func DefaultQuestions() []Question {
	out := make([]Question, len(defaultQuestions))
	copy(out, defaultQuestions)
	return out
}
