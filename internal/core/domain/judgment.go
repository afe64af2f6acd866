package domain

import "time"

// Judgment is the verdict recorded against a case. Immutable once written;
// recording one moves the case to Judged.
type Judgment struct {
	ID           string    `json:"id"`
	CaseID       string    `json:"caseId"`
	JudgmentText string    `json:"judgmentText"`
	Verdict      string    `json:"verdict"`
	JudgeID      string    `json:"judgeId"`
	CreatedAt    time.Time `json:"createdAt"`
}
