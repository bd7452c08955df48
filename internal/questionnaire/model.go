package questionnaire

// Option is a selectable answer for a question. Score is the non-negative
// number of points the option contributes to the eligibility score.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Score       int    `json:"score"`
}

// Question is a single assessment question. Weight is the point value shown
// next to the question in the UI; it does not scale option scores (see the
// scorer).
type Question struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Weight   int      `json:"weight"`
	Options  []Option `json:"options"`
}

// AnswerMap maps a question ID to the selected option value.
type AnswerMap map[string]string
