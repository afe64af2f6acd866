package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
	"github.com/courtflow/case-management/internal/pkg/clock"
)

func hearingInput(caseID string) ports.CreateScheduleInput {
	return ports.CreateScheduleInput{
		CaseID:        caseID,
		AssignedJudge: "judge-1",
		StartDate:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		EndDate:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndTime:       "11:00",
		Room:          "Courtroom 3",
	}
}

func TestScheduleService_Create_TransitionsCase(t *testing.T) {
	caseRepo := newStubCaseRepo()
	schedRepo := &stubScheduleRepo{}
	svc := NewScheduleService(schedRepo, caseRepo, clock.System{}, zerolog.Nop())

	c := seedCase(caseRepo, domain.StatusAssigned)

	created, err := svc.Create(context.Background(), hearingInput(c.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("schedule should get an id")
	}
	if created.Status != domain.HearingScheduled {
		t.Errorf("stored status should default to Scheduled, got %s", created.Status)
	}
	if caseRepo.byID[c.ID].Status != domain.StatusScheduled {
		t.Errorf("case should transition to Scheduled, got %s", caseRepo.byID[c.ID].Status)
	}
}

func TestScheduleService_Create_MissingFields(t *testing.T) {
	caseRepo := newStubCaseRepo()
	schedRepo := &stubScheduleRepo{}
	svc := NewScheduleService(schedRepo, caseRepo, clock.System{}, zerolog.Nop())

	c := seedCase(caseRepo, domain.StatusAssigned)
	input := hearingInput(c.ID)
	input.Room = ""

	_, err := svc.Create(context.Background(), input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(schedRepo.items) != 0 {
		t.Error("nothing must be persisted on validation failure")
	}
}

func TestScheduleService_Create_CaseNotAssigned(t *testing.T) {
	caseRepo := newStubCaseRepo()
	schedRepo := &stubScheduleRepo{}
	svc := NewScheduleService(schedRepo, caseRepo, clock.System{}, zerolog.Nop())

	c := seedCase(caseRepo, domain.StatusApproved)

	_, err := svc.Create(context.Background(), hearingInput(c.ID))
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(schedRepo.items) != 0 {
		t.Error("no schedule must be created on a rejected transition")
	}
}

func TestScheduleService_Create_CaseNotFound(t *testing.T) {
	svc := NewScheduleService(&stubScheduleRepo{}, newStubCaseRepo(), clock.System{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), hearingInput("missing"))
	if !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

// seedHearing inserts a hearing window on the given day directly into the stub.
func seedHearing(repo *stubScheduleRepo, judgeID string, day time.Time, startHHMM, endHHMM string) {
	_, _ = repo.Create(context.Background(), &domain.Schedule{
		CaseID:        "case-1",
		AssignedJudge: judgeID,
		StartDate:     day,
		StartTime:     startHHMM,
		EndDate:       day,
		EndTime:       endHHMM,
		Room:          "Courtroom 1",
		Status:        domain.HearingScheduled,
	})
}

func TestScheduleService_List_ProjectsStatusAtReadTime(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	seedHearing(schedRepo, "judge-1", day, "09:00", "11:00")

	cases := []struct {
		now  time.Time
		want domain.ScheduleStatus
	}{
		{time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC), domain.HearingScheduled},
		{time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), domain.HearingInProgress},
		{time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), domain.HearingClosed},
	}
	for _, tc := range cases {
		svc := NewScheduleService(schedRepo, newStubCaseRepo(), clock.Fixed(tc.now), zerolog.Nop())
		views, err := svc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 {
			t.Fatalf("expected 1 hearing, got %d", len(views))
		}
		if views[0].Status != tc.want {
			t.Errorf("at %v: expected %q, got %q", tc.now, tc.want, views[0].Status)
		}
	}
}

func TestScheduleService_ListByJudge_SortedByStartRegardlessOfStatus(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	// Inserted out of order; the middle one is already closed at evaluation time.
	seedHearing(schedRepo, "judge-1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "14:00", "16:00")
	seedHearing(schedRepo, "judge-1", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "09:00", "11:00")
	seedHearing(schedRepo, "judge-1", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "10:00", "12:00")
	seedHearing(schedRepo, "judge-2", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "08:00", "09:00")

	now := time.Date(2024, 2, 1, 11, 0, 0, 0, time.UTC)
	svc := NewScheduleService(schedRepo, newStubCaseRepo(), clock.Fixed(now), zerolog.Nop())

	views, err := svc.ListByJudge(context.Background(), "judge-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 hearings for judge-1, got %d", len(views))
	}
	for i := 1; i < len(views); i++ {
		if views[i].StartAt().Before(views[i-1].StartAt()) {
			t.Errorf("hearings out of order at %d: %v before %v", i, views[i].StartAt(), views[i-1].StartAt())
		}
	}
	// Mixed derived statuses must not disturb the ordering.
	if views[0].Status != domain.HearingClosed {
		t.Errorf("earliest hearing should project Closed, got %s", views[0].Status)
	}
	if views[1].Status != domain.HearingInProgress {
		t.Errorf("middle hearing should project In Progress, got %s", views[1].Status)
	}
	if views[2].Status != domain.HearingScheduled {
		t.Errorf("latest hearing should project Scheduled, got %s", views[2].Status)
	}
}

func TestScheduleService_ProgressByJudge_FillsProgressAndColor(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	seedHearing(schedRepo, "judge-1", day, "09:00", "11:00")

	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	svc := NewScheduleService(schedRepo, newStubCaseRepo(), clock.Fixed(now), zerolog.Nop())

	views, err := svc.ProgressByJudge(context.Background(), "judge-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if views[0].Progress != domain.ProgressInProgress {
		t.Errorf("expected progress %d, got %d", domain.ProgressInProgress, views[0].Progress)
	}
	if views[0].Color != "yellow" {
		t.Errorf("expected color yellow, got %q", views[0].Color)
	}
}

func TestScheduleService_List_NeverPersistsProjection(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	seedHearing(schedRepo, "judge-1", day, "09:00", "11:00")

	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := NewScheduleService(schedRepo, newStubCaseRepo(), clock.Fixed(now), zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schedRepo.items[0].Status != domain.HearingScheduled {
		t.Errorf("stored status must stay %q, got %q", domain.HearingScheduled, schedRepo.items[0].Status)
	}
}
