package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/courtflow/case-management/internal/core/domain"
)

func TestNotificationService_Sync_CreatesOnlyMissing(t *testing.T) {
	caseRepo := newStubCaseRepo()
	notifRepo := newStubNotificationRepo()
	svc := NewNotificationService(notifRepo, caseRepo, zerolog.Nop())

	judgeID := "judge-1"
	for i := 0; i < 3; i++ {
		c := seedCase(caseRepo, domain.StatusAssigned)
		caseRepo.byID[c.ID].AssignedJudge = judgeID
	}
	// One pair already has its alert.
	_, _ = notifRepo.Create(context.Background(), &domain.Notification{
		UserID: judgeID, CaseID: "case-1", Title: "Doe v. Acme",
		Status: domain.NotificationUnread, SentAt: time.Now().UTC(),
	})

	created, err := svc.SyncForJudge(context.Background(), judgeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 2 {
		t.Errorf("expected 2 backfilled notifications, got %d", created)
	}
	if len(notifRepo.byPair) != 3 {
		t.Errorf("expected 3 notifications total, got %d", len(notifRepo.byPair))
	}
}

func TestNotificationService_Sync_IsIdempotent(t *testing.T) {
	caseRepo := newStubCaseRepo()
	notifRepo := newStubNotificationRepo()
	svc := NewNotificationService(notifRepo, caseRepo, zerolog.Nop())

	c := seedCase(caseRepo, domain.StatusAssigned)
	caseRepo.byID[c.ID].AssignedJudge = "judge-1"

	first, err := svc.SyncForJudge(context.Background(), "judge-1")
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if first != 1 {
		t.Fatalf("expected 1 created on first sync, got %d", first)
	}

	second, err := svc.SyncForJudge(context.Background(), "judge-1")
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if second != 0 {
		t.Errorf("expected 0 created on replay, got %d", second)
	}
}

func TestNotificationService_Sync_SkipsUnassignedStatuses(t *testing.T) {
	caseRepo := newStubCaseRepo()
	notifRepo := newStubNotificationRepo()
	svc := NewNotificationService(notifRepo, caseRepo, zerolog.Nop())

	// Scheduled case for the judge: already past the Assigned stage, the
	// backfill only covers cases still waiting on the judge's attention.
	c := seedCase(caseRepo, domain.StatusScheduled)
	caseRepo.byID[c.ID].AssignedJudge = "judge-1"

	created, err := svc.SyncForJudge(context.Background(), "judge-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 0 {
		t.Errorf("expected 0 created, got %d", created)
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	notifRepo := newStubNotificationRepo()
	svc := NewNotificationService(notifRepo, newStubCaseRepo(), zerolog.Nop())

	n, _ := notifRepo.Create(context.Background(), &domain.Notification{
		UserID: "judge-1", CaseID: "case-1", Title: "Doe v. Acme",
		Status: domain.NotificationUnread, SentAt: time.Now().UTC(),
	})

	updated, err := svc.MarkRead(context.Background(), n.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.NotificationRead {
		t.Errorf("expected Read, got %s", updated.Status)
	}
}

func TestNotificationService_MarkRead_Missing(t *testing.T) {
	svc := NewNotificationService(newStubNotificationRepo(), newStubCaseRepo(), zerolog.Nop())

	_, err := svc.MarkRead(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestNotificationService_ListForUser_NewestFirst(t *testing.T) {
	notifRepo := newStubNotificationRepo()
	svc := NewNotificationService(notifRepo, newStubCaseRepo(), zerolog.Nop())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, caseID := range []string{"case-1", "case-2", "case-3"} {
		_, _ = notifRepo.Create(context.Background(), &domain.Notification{
			UserID: "judge-1", CaseID: caseID, Title: "t",
			Status: domain.NotificationUnread, SentAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	list, err := svc.ListForUser(context.Background(), "judge-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].SentAt.After(list[i-1].SentAt) {
			t.Errorf("notifications not newest first at index %d", i)
		}
	}
}
