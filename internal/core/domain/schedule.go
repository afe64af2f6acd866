package domain

import (
	"errors"
	"time"
)

// ScheduleStatus is the display state of a hearing. The stored value is only
// a default; the real state is derived from the clock at read time.
type ScheduleStatus string

const (
	HearingScheduled  ScheduleStatus = "Scheduled"
	HearingInProgress ScheduleStatus = "In Progress"
	HearingClosed     ScheduleStatus = "Closed"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// UI policy values shipped alongside the derived status. The numbers carry no
// physical meaning; the frontend renders them as a progress bar.
const (
	ProgressScheduled  = 50
	ProgressInProgress = 80
	ProgressClosed     = 100
)

// Progress returns the progress-bar percentage for a display status.
func (s ScheduleStatus) Progress() int {
	switch s {
	case HearingInProgress:
		return ProgressInProgress
	case HearingClosed:
		return ProgressClosed
	default:
		return ProgressScheduled
	}
}

// Color returns the UI color hint for a display status.
func (s ScheduleStatus) Color() string {
	switch s {
	case HearingInProgress:
		return "yellow"
	case HearingClosed:
		return "red"
	default:
		return "green"
	}
}

// ProjectScheduleStatus derives the display status of a hearing window from
// the evaluation instant. Pure: never written back to storage.
//
//	now <  start          → Scheduled
//	start <= now < end    → In Progress
//	now >= end            → Closed
func ProjectScheduleStatus(start, end, now time.Time) ScheduleStatus {
	switch {
	case now.Before(start):
		return HearingScheduled
	case now.Before(end):
		return HearingInProgress
	default:
		return HearingClosed
	}
}

// Schedule represents a booked hearing session for a case. StartTime and
// EndTime are wall-clock strings ("15:04") carried separately from the dates,
// matching the frontend contract.
type Schedule struct {
	ID            string         `json:"id"`
	CaseID        string         `json:"caseId"`
	AssignedJudge string         `json:"assignedJudge"`
	StartDate     time.Time      `json:"startDate"`
	StartTime     string         `json:"startTime"`
	EndDate       time.Time      `json:"endDate"`
	EndTime       string         `json:"endTime"`
	Room          string         `json:"room"`
	Status        ScheduleStatus `json:"status"`
}

// StartAt combines StartDate and StartTime into the hearing's opening instant.
func (s *Schedule) StartAt() time.Time {
	return combine(s.StartDate, s.StartTime)
}

// EndAt combines EndDate and EndTime into the hearing's closing instant.
func (s *Schedule) EndAt() time.Time {
	return combine(s.EndDate, s.EndTime)
}

// combine overlays a "15:04" wall-clock string onto a date. An unparsable or
// empty time string leaves the date untouched, so date-only records still
// project sensibly.
func combine(date time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// CaseSummary is the subset of case fields embedded into schedule and
// notification reads ("populate").
type CaseSummary struct {
	ID         string     `json:"id"`
	CaseNumber string     `json:"caseNumber,omitempty"`
	Title      string     `json:"title"`
	Status     CaseStatus `json:"status"`
}

// JudgeSummary is the subset of user fields embedded into schedule reads.
type JudgeSummary struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// HearingView is a schedule as returned by list endpoints: referenced records
// embedded and the status re-derived from the clock.
type HearingView struct {
	Schedule
	Case     *CaseSummary  `json:"case,omitempty"`
	Judge    *JudgeSummary `json:"judge,omitempty"`
	Progress int           `json:"progress,omitempty"`
	Color    string        `json:"color,omitempty"`
}
