package handler

import "github.com/courtflow/case-management/internal/core/domain"

type createScheduleRequest struct {
	CaseID        string `json:"caseId" validate:"required"`
	AssignedJudge string `json:"assignedJudge" validate:"required"`
	StartDate     string `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	EndDate       string `json:"endDate" validate:"required,datetime=2006-01-02"`
	EndTime       string `json:"endTime" validate:"required,datetime=15:04"`
	Room          string `json:"room" validate:"required"`
}

type scheduleResponse struct {
	ID            string `json:"id"`
	CaseID        string `json:"caseId"`
	AssignedJudge string `json:"assignedJudge"`
	StartDate     string `json:"startDate"`
	StartTime     string `json:"startTime"`
	EndDate       string `json:"endDate"`
	EndTime       string `json:"endTime"`
	Room          string `json:"room"`
	Status        string `json:"status"`
}

type hearingResponse struct {
	scheduleResponse
	Case     *domain.CaseSummary  `json:"case,omitempty"`
	Judge    *domain.JudgeSummary `json:"judge,omitempty"`
	Progress int                  `json:"progress,omitempty"`
	Color    string               `json:"color,omitempty"`
}

type hearingListResponse struct {
	Hearings []hearingResponse `json:"hearings"`
	Count    int               `json:"count"`
}

func toScheduleResponse(s *domain.Schedule) scheduleResponse {
	return scheduleResponse{
		ID:            s.ID,
		CaseID:        s.CaseID,
		AssignedJudge: s.AssignedJudge,
		StartDate:     s.StartDate.UTC().Format("2006-01-02"),
		StartTime:     s.StartTime,
		EndDate:       s.EndDate.UTC().Format("2006-01-02"),
		EndTime:       s.EndTime,
		Room:          s.Room,
		Status:        string(s.Status),
	}
}

func toHearingListResponse(views []*domain.HearingView) hearingListResponse {
	out := hearingListResponse{Hearings: make([]hearingResponse, 0, len(views))}
	for _, v := range views {
		out.Hearings = append(out.Hearings, hearingResponse{
			scheduleResponse: toScheduleResponse(&v.Schedule),
			Case:             v.Case,
			Judge:            v.Judge,
			Progress:         v.Progress,
			Color:            v.Color,
		})
	}
	out.Count = len(out.Hearings)
	return out
}
