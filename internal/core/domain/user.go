package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleClerk     = "clerk"
	RoleRegistrar = "registrar"
	RoleJudge     = "judge"
	RoleLawyer    = "lawyer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// ErrNotAJudge signals an endorsement target that does not carry the judge role.
var ErrNotAJudge = errors.New("user is not a judge")

// ValidRole reports whether role is one of the known actor roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleClerk, RoleRegistrar, RoleJudge, RoleLawyer:
		return true
	}
	return false
}

// User models any actor in the system: clerk, registrar, judge, lawyer, admin.
type User struct {
	ID           string    `json:"id"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
