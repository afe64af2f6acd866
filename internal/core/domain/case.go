package domain

import (
	"errors"
	"time"
)

// CaseStatus represents the lifecycle state of a case.
type CaseStatus string

const (
	StatusFiled       CaseStatus = "Filed"
	StatusRegistered  CaseStatus = "Registered"
	StatusSubmitted   CaseStatus = "Submitted"
	StatusApproved    CaseStatus = "Approved"
	StatusDisapproved CaseStatus = "Disapproved"
	StatusAssigned    CaseStatus = "Assigned"
	StatusScheduled   CaseStatus = "Scheduled"
	StatusJudged      CaseStatus = "Judged"
)

// validTransitions defines the allowed state machine transitions.
// Disapproved and Judged are terminal.
var validTransitions = map[CaseStatus][]CaseStatus{
	StatusFiled:      {StatusRegistered, StatusSubmitted},
	StatusRegistered: {StatusSubmitted},
	StatusSubmitted:  {StatusApproved, StatusDisapproved},
	StatusApproved:   {StatusAssigned},
	StatusAssigned:   {StatusScheduled, StatusJudged},
	StatusScheduled:  {StatusJudged},
}

var ErrCaseNotFound = errors.New("case not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrValidation = errors.New("validation failed")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the known case statuses.
func (s CaseStatus) IsValid() bool {
	switch s {
	case StatusFiled, StatusRegistered, StatusSubmitted, StatusApproved,
		StatusDisapproved, StatusAssigned, StatusScheduled, StatusJudged:
		return true
	}
	return false
}

// Case is the core aggregate root: one filed legal matter moving through the
// registry workflow. Status only changes through the lifecycle operations on
// CaseService; no endpoint writes the field directly.
type Case struct {
	ID                   string     `json:"id"`
	CaseNumber           string     `json:"caseNumber,omitempty"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	PartiesInvolved      string     `json:"partiesInvolved,omitempty"`
	FiledByName          string     `json:"filedByName"`
	Status               CaseStatus `json:"status"`
	RegistrationNotes    string     `json:"registrationNotes,omitempty"`
	RegisteredBy         string     `json:"registeredBy,omitempty"`
	RegisteredByName     string     `json:"registeredByName,omitempty"`
	SubmittedToRegistrar bool       `json:"submittedToRegistrar"`
	SubmittedBy          string     `json:"submittedBy,omitempty"`
	SubmittedByName      string     `json:"submittedByName,omitempty"`
	AssignedJudge        string     `json:"assignedJudge,omitempty"`
	AssignedJudgeName    string     `json:"assignedJudgeName,omitempty"`
	EndorsedBy           string     `json:"endorsedBy,omitempty"`
	RegistrarName        string     `json:"registrarName,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}
