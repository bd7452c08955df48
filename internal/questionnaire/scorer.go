package questionnaire

const maxScore = 100

// Score reduces the answers to a single eligibility score in [0, 100].
//
// Each answered question contributes the selected option's score; unanswered
// questions and unknown option values contribute nothing. Question.Weight is
// deliberately not multiplied in: it is display metadata for the UI's "point
// value" badge, and the observed product behavior keeps it out of the sum.
// Deterministic: the result depends only on the arguments.
func Score(answers AnswerMap, questions []Question) int {
	total := 0
	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.Value == value {
				total += opt.Score
				break
			}
		}
	}
	if total > maxScore {
		return maxScore
	}
	if total < 0 {
		return 0
	}
	return total
}
