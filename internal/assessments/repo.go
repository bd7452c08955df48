package assessments

import "context"

// Repo defines persistence operations for assessments. Reads are scoped to
// the owning user; a lookup for someone else's assessment is a not-found.
type Repo interface {
	Create(ctx context.Context, assessment Assessment) error
	GetByID(ctx context.Context, userID, assessmentID string) (Assessment, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error)
}
