package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"visapath-backend/internal/advisor"
	"visapath-backend/internal/questionnaire"
	"visapath-backend/internal/recommendations"
)

// PGRepo implements Repo using Postgres. Profile, answers and the engine
// result are stored as jsonb columns.
type PGRepo struct {
	DB *sql.DB
}

// NewPGRepo constructs a Postgres-backed repo.
func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, assessment Assessment) error {
	const query = `
INSERT INTO assessments (id, user_id, profile, answers, score, result, created_at)
VALUES ($1, $2, $3::jsonb, $4::jsonb, $5, $6::jsonb, $7)`

	profile, err := json.Marshal(assessment.Profile)
	if err != nil {
		return err
	}
	answers, err := json.Marshal(assessment.Answers)
	if err != nil {
		return err
	}
	result, err := json.Marshal(assessment.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		assessment.ID,
		assessment.UserID,
		profile,
		answers,
		assessment.Score,
		result,
		assessment.CreatedAt,
	)
	return err
}

// GetByID returns the user's assessment by ID.
func (r *PGRepo) GetByID(ctx context.Context, userID, assessmentID string) (Assessment, error) {
	const query = `
SELECT id, user_id, profile, answers, score, result, created_at
FROM assessments
WHERE id = $1 AND user_id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, assessmentID, userID)
	a, err := scanAssessment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	return a, nil
}

// ListByUser returns assessments for a user, newest first, with limit/offset.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	const query = `
SELECT id, user_id, profile, answers, score, result, created_at
FROM assessments
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAssessment(scan func(dest ...any) error) (Assessment, error) {
	var a Assessment
	var profile, answers, result []byte
	if err := scan(&a.ID, &a.UserID, &profile, &answers, &a.Score, &result, &a.CreatedAt); err != nil {
		return Assessment{}, err
	}
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &a.Profile); err != nil {
			return Assessment{}, err
		}
	} else {
		a.Profile = advisor.Profile{}
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &a.Answers); err != nil {
			return Assessment{}, err
		}
	} else {
		a.Answers = questionnaire.AnswerMap{}
	}
	if len(result) > 0 {
		if err := json.Unmarshal(result, &a.Result); err != nil {
			return Assessment{}, err
		}
	} else {
		a.Result = recommendations.Result{}
	}
	return a, nil
}
