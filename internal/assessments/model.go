package assessments

import (
	"time"

	"visapath-backend/internal/advisor"
	"visapath-backend/internal/questionnaire"
	"visapath-backend/internal/recommendations"
)

// Assessment is one completed eligibility evaluation: the submitted profile
// and answers plus the engine's output, stored for later retrieval.
type Assessment struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"userId"`
	Profile   advisor.Profile         `json:"profile"`
	Answers   questionnaire.AnswerMap `json:"answers"`
	Score     int                     `json:"score"`
	Result    recommendations.Result  `json:"result"`
	CreatedAt time.Time               `json:"createdAt"`
}
