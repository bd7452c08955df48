package assessments

import (
	"context"
	"errors"
	"testing"

	"visapath-backend/internal/advisor"
	"visapath-backend/internal/questionnaire"
	"visapath-backend/internal/usage"
)

func TestServiceCreateRunsEngine(t *testing.T) {
	svc := NewService(NewMemoryRepo(), usage.NewService())

	profile := advisor.Profile{
		Status:        advisor.StatusGreenCard,
		Relationship:  advisor.RelationshipNone,
		TimeInCountry: advisor.TimeFivePlus,
		Goal:          advisor.GoalCitizenship,
	}
	answers := questionnaire.AnswerMap{
		"urgency":     "immediate",
		"family_ties": "citizen",
	}

	assessment, err := svc.Create(context.Background(), "user-1", profile, answers)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if assessment.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if assessment.Score != 75 {
		t.Fatalf("expected score 75, got %d", assessment.Score)
	}
	top, ok := assessment.Result.Top()
	if !ok || top.PathwayID != "naturalization" {
		t.Fatalf("expected naturalization on top, got %+v", assessment.Result.Recommendations)
	}

	stored, err := svc.Get(context.Background(), "user-1", assessment.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Score != assessment.Score {
		t.Fatalf("stored assessment differs")
	}
}

func TestServiceCreateConsumesCredit(t *testing.T) {
	usageSvc := usage.NewService()
	svc := NewService(NewMemoryRepo(), usageSvc)

	if _, err := svc.Create(context.Background(), "user-1", advisor.Profile{Status: advisor.StatusTourist}, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	u, err := usageSvc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("usage Get: %v", err)
	}
	if u.Used != 1 {
		t.Fatalf("expected 1 credit used, got %d", u.Used)
	}
}

func TestServiceCreateLimitReached(t *testing.T) {
	usageSvc := usage.NewService()
	svc := NewService(NewMemoryRepo(), usageSvc)

	u, err := usageSvc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("usage Get: %v", err)
	}
	for i := 0; i < u.Limit; i++ {
		if _, err := svc.Create(context.Background(), "user-1", advisor.Profile{Status: advisor.StatusTourist}, nil); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	_, err = svc.Create(context.Background(), "user-1", advisor.Profile{Status: advisor.StatusTourist}, nil)
	if !errors.Is(err, usage.ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
}

func TestServiceCreateRequiresUser(t *testing.T) {
	svc := NewService(NewMemoryRepo(), usage.NewService())
	if _, err := svc.Create(context.Background(), "", advisor.Profile{}, nil); err == nil {
		t.Fatalf("expected an error for a missing user")
	}
}

func TestServiceGetScopedToOwner(t *testing.T) {
	svc := NewService(NewMemoryRepo(), usage.NewService())
	assessment, err := svc.Create(context.Background(), "user-1", advisor.Profile{Status: advisor.StatusTourist}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Get(context.Background(), "user-2", assessment.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another user, got %v", err)
	}
}

func TestServiceListNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo(), usage.NewService())
	first, err := svc.Create(context.Background(), "user-1", advisor.Profile{Status: advisor.StatusTourist}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(context.Background(), "user-1", advisor.Profile{Status: advisor.StatusGreenCard, TimeInCountry: advisor.TimeFivePlus}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.List(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 assessments, got %d", len(list))
	}
	// CreatedAt can collide at clock resolution, so accept either strict order
	// or equal timestamps with both present.
	ids := map[string]bool{list[0].ID: true, list[1].ID: true}
	if !ids[first.ID] || !ids[second.ID] {
		t.Fatalf("missing assessments in list: %+v", list)
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("expected newest first")
	}
}
