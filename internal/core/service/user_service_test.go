package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

func TestUserService_Create(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, zerolog.Nop())

	u, err := svc.Create(context.Background(), ports.CreateUserInput{
		Fullname: "Sam Registrar",
		Email:    "sam@court.test",
		Password: "s3cret",
		Role:     domain.RoleRegistrar,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "s3cret" {
		t.Error("password must be stored hashed")
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Fullname: "Sam",
		Email:    "sam@court.test",
		Password: "s3cret",
		Role:     "stenographer",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_Update_PartialPatch(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, zerolog.Nop())

	u, err := svc.Create(context.Background(), ports.CreateUserInput{
		Fullname: "Sam Registrar",
		Email:    "sam@court.test",
		Password: "s3cret",
		Role:     domain.RoleRegistrar,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), u.ID, ports.UpdateUserInput{Fullname: "Samuel Registrar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Fullname != "Samuel Registrar" {
		t.Errorf("fullname not updated: %q", updated.Fullname)
	}
	if updated.Email != "sam@court.test" || updated.Role != domain.RoleRegistrar {
		t.Error("untouched fields must survive a partial update")
	}
}

func TestUserService_Update_RejectsBadRole(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, zerolog.Nop())

	u, _ := users.Create(context.Background(), &domain.User{
		Fullname: "Sam", Email: "sam@court.test", Role: domain.RoleClerk,
	})

	_, err := svc.Update(context.Background(), u.ID, ports.UpdateUserInput{Role: "stenographer"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if users.byID[u.ID].Role != domain.RoleClerk {
		t.Error("role must stay unchanged after a rejected update")
	}
}

func TestUserService_Delete_Missing(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	err := svc.Delete(context.Background(), "missing")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Stats(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, zerolog.Nop())

	for i, role := range []string{domain.RoleClerk, domain.RoleClerk, domain.RoleJudge} {
		_, _ = users.Create(context.Background(), &domain.User{
			Fullname: "u", Email: fmt.Sprintf("u%d@court.test", i), Role: role,
		})
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 {
		t.Errorf("expected total 3, got %d", stats.Total)
	}
	if stats.ByRole[domain.RoleClerk] != 2 {
		t.Errorf("expected 2 clerks, got %d", stats.ByRole[domain.RoleClerk])
	}
	if len(stats.Recent) != 3 {
		t.Errorf("expected 3 recent users, got %d", len(stats.Recent))
	}
}

func TestUserService_Judges(t *testing.T) {
	users := newStubUserRepo()
	svc := NewUserService(users, zerolog.Nop())

	_, _ = users.Create(context.Background(), &domain.User{Fullname: "j", Email: "j@court.test", Role: domain.RoleJudge})
	_, _ = users.Create(context.Background(), &domain.User{Fullname: "c", Email: "c@court.test", Role: domain.RoleClerk})

	judges, err := svc.Judges(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(judges) != 1 || judges[0].Role != domain.RoleJudge {
		t.Fatalf("expected only the judge, got %d users", len(judges))
	}
}
