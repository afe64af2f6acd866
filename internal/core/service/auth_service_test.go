package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/courtflow/case-management/internal/core/domain"
)

const testSecret = "test-secret"

func TestAuthService_Register(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	u, err := svc.Register(context.Background(), "Jane Clerk", "jane@court.test", "s3cret", domain.RoleClerk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID == "" {
		t.Error("user should get an id")
	}
	if u.PasswordHash == "s3cret" {
		t.Error("password must not be stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) != nil {
		t.Error("stored hash must verify the original password")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	if _, err := svc.Register(context.Background(), "Jane Clerk", "jane@court.test", "s3cret", domain.RoleClerk); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "Other Jane", "jane@court.test", "other", domain.RoleClerk)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret, time.Hour)

	_, err := svc.Register(context.Background(), "Jane Clerk", "jane@court.test", "s3cret", "bailiff")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	registered, err := svc.Register(context.Background(), "Hon. Maria Cruz", "mcruz@court.test", "s3cret", domain.RoleJudge)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "mcruz@court.test", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, user.ID)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("token should parse: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		t.Fatal("token should carry valid map claims")
	}
	if claims["sub"] != registered.ID {
		t.Errorf("sub claim: expected %s, got %v", registered.ID, claims["sub"])
	}
	if claims["role"] != domain.RoleJudge {
		t.Errorf("role claim: expected %s, got %v", domain.RoleJudge, claims["role"])
	}
	if claims["fullname"] != "Hon. Maria Cruz" {
		t.Errorf("fullname claim: got %v", claims["fullname"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := NewAuthService(users, testSecret, time.Hour)

	if _, err := svc.Register(context.Background(), "Jane Clerk", "jane@court.test", "s3cret", domain.RoleClerk); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "jane@court.test", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret, time.Hour)

	// Unknown account and bad password answer identically.
	_, _, err := svc.Login(context.Background(), "nobody@court.test", "s3cret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err != nil && strings.Contains(err.Error(), "not found") {
		t.Error("error must not reveal whether the account exists")
	}
}
