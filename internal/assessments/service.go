package assessments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"visapath-backend/internal/advisor"
	"visapath-backend/internal/pathways"
	"visapath-backend/internal/questionnaire"
	"visapath-backend/internal/recommendations"
	"visapath-backend/internal/shared/metrics"
	"visapath-backend/internal/shared/telemetry"
	"visapath-backend/internal/usage"
)

// Service runs the eligibility engine and persists the outcome. The engine
// itself is pure; the service supplies identity, credits and storage.
type Service struct {
	Repo      Repo
	Usage     *usage.Service
	Catalog   *pathways.Catalog
	Questions []questionnaire.Question
}

// NewService constructs a Service using the default catalog and question set.
func NewService(repo Repo, usageSvc *usage.Service) *Service {
	return &Service{
		Repo:      repo,
		Usage:     usageSvc,
		Catalog:   pathways.Default(),
		Questions: questionnaire.DefaultQuestions(),
	}
}

// Create evaluates the profile and answers synchronously and stores the
// completed assessment. One credit is consumed per assessment.
func (s *Service) Create(ctx context.Context, userID string, profile advisor.Profile, answers questionnaire.AnswerMap) (Assessment, error) {
	if userID == "" {
		return Assessment{}, errors.New("userID is required")
	}
	if answers == nil {
		answers = questionnaire.AnswerMap{}
	}

	if s.Usage != nil {
		ok, _, err := s.Usage.CanConsume(ctx, userID, 1)
		if err != nil {
			return Assessment{}, err
		}
		if !ok {
			return Assessment{}, usage.ErrLimitReached
		}
	}

	metrics.IncAssessmentStarted()
	started := time.Now()

	score := questionnaire.Score(answers, s.Questions)
	advice := advisor.Advise(profile, s.Catalog)
	result := recommendations.Aggregate(advice, s.Catalog)

	assessment := Assessment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Profile:   profile,
		Answers:   answers,
		Score:     score,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, assessment); err != nil {
		metrics.IncAssessmentFailed()
		return Assessment{}, err
	}

	if s.Usage != nil {
		if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
			// The assessment is already stored; log and return it anyway.
			telemetry.Error("assessment.consume_failed", map[string]any{
				"assessment_id": assessment.ID,
				"user_id":       userID,
				"error":         err.Error(),
			})
		}
	}

	metrics.IncAssessmentCompleted()
	metrics.ObserveAssessmentDurationMs(float64(time.Since(started).Milliseconds()))
	metrics.ObserveEligibilityScore(float64(score))

	telemetry.Info("assessment.completed", map[string]any{
		"assessment_id": assessment.ID,
		"user_id":       userID,
		"score":         score,
		"top_pathway":   topPathwayID(result),
	})
	return assessment, nil
}

// Get returns the user's assessment by ID.
func (s *Service) Get(ctx context.Context, userID, assessmentID string) (Assessment, error) {
	return s.Repo.GetByID(ctx, userID, assessmentID)
}

// List returns the user's assessments, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func topPathwayID(result recommendations.Result) string {
	if top, ok := result.Top(); ok {
		return top.PathwayID
	}
	return ""
}
