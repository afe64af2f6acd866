package handler

// --- Request types ---

type createCaseRequest struct {
	CaseNumber        string `json:"caseNumber"`
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	PartiesInvolved   string `json:"partiesInvolved"`
	FiledByName       string `json:"filedByName" validate:"required"`
	RegistrationNotes string `json:"registrationNotes"`
	RegisteredBy      string `json:"registeredBy"`
}

type registerCaseRequest struct {
	RegistrationNotes string `json:"registrationNotes"`
	ClerkName         string `json:"clerkName" validate:"required"`
}

type submitCaseRequest struct {
	ClerkID   string `json:"clerkId"`
	ClerkName string `json:"clerkName" validate:"required"`
}

type decisionRequest struct {
	RegistrarName string `json:"registrarName" validate:"required"`
}

type endorseCaseRequest struct {
	JudgeID       string `json:"judgeId" validate:"required"`
	RegistrarName string `json:"registrarName" validate:"required"`
}

// --- Response types ---

type caseResponse struct {
	ID                   string `json:"id"`
	CaseNumber           string `json:"caseNumber,omitempty"`
	Title                string `json:"title"`
	Description          string `json:"description,omitempty"`
	PartiesInvolved      string `json:"partiesInvolved,omitempty"`
	FiledByName          string `json:"filedByName"`
	Status               string `json:"status"`
	RegistrationNotes    string `json:"registrationNotes,omitempty"`
	RegisteredBy         string `json:"registeredBy,omitempty"`
	RegisteredByName     string `json:"registeredByName,omitempty"`
	SubmittedToRegistrar bool   `json:"submittedToRegistrar"`
	SubmittedBy          string `json:"submittedBy,omitempty"`
	SubmittedByName      string `json:"submittedByName,omitempty"`
	AssignedJudge        string `json:"assignedJudge,omitempty"`
	AssignedJudgeName    string `json:"assignedJudgeName,omitempty"`
	EndorsedBy           string `json:"endorsedBy,omitempty"`
	RegistrarName        string `json:"registrarName,omitempty"`
	CreatedAt            string `json:"createdAt"`
	UpdatedAt            string `json:"updatedAt"`
}

type caseListResponse struct {
	Cases []caseResponse `json:"cases"`
	Count int            `json:"count"`
}

type endorseCaseResponse struct {
	Case         caseResponse          `json:"case"`
	Notification *notificationResponse `json:"notification,omitempty"`
}
