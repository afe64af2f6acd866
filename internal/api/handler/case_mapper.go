package handler

import (
	"time"

	"github.com/courtflow/case-management/internal/core/domain"
)

func toCaseResponse(c *domain.Case) caseResponse {
	return caseResponse{
		ID:                   c.ID,
		CaseNumber:           c.CaseNumber,
		Title:                c.Title,
		Description:          c.Description,
		PartiesInvolved:      c.PartiesInvolved,
		FiledByName:          c.FiledByName,
		Status:               string(c.Status),
		RegistrationNotes:    c.RegistrationNotes,
		RegisteredBy:         c.RegisteredBy,
		RegisteredByName:     c.RegisteredByName,
		SubmittedToRegistrar: c.SubmittedToRegistrar,
		SubmittedBy:          c.SubmittedBy,
		SubmittedByName:      c.SubmittedByName,
		AssignedJudge:        c.AssignedJudge,
		AssignedJudgeName:    c.AssignedJudgeName,
		EndorsedBy:           c.EndorsedBy,
		RegistrarName:        c.RegistrarName,
		CreatedAt:            formatTime(c.CreatedAt),
		UpdatedAt:            formatTime(c.UpdatedAt),
	}
}

func toCaseListResponse(cases []*domain.Case) caseListResponse {
	out := caseListResponse{Cases: make([]caseResponse, 0, len(cases))}
	for _, c := range cases {
		out.Cases = append(out.Cases, toCaseResponse(c))
	}
	out.Count = len(out.Cases)
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
