package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtflow/case-management/internal/api/metrics"
	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// JudgmentHandler handles HTTP requests for recording and reading judgments.
type JudgmentHandler struct {
	service ports.JudgmentService
}

func NewJudgmentHandler(service ports.JudgmentService) *JudgmentHandler {
	return &JudgmentHandler{service: service}
}

type recordJudgmentRequest struct {
	CaseID       string `json:"caseId" validate:"required"`
	JudgmentText string `json:"judgmentText" validate:"required"`
	Verdict      string `json:"verdict" validate:"required"`
	JudgeID      string `json:"judgeId"`
}

type judgmentResponse struct {
	ID           string `json:"id"`
	CaseID       string `json:"caseId"`
	JudgmentText string `json:"judgmentText"`
	Verdict      string `json:"verdict"`
	JudgeID      string `json:"judgeId"`
	CreatedAt    string `json:"createdAt"`
}

type judgmentListResponse struct {
	Judgments []judgmentResponse `json:"judgments"`
	Count     int                `json:"count"`
}

func toJudgmentResponse(j *domain.Judgment) judgmentResponse {
	return judgmentResponse{
		ID:           j.ID,
		CaseID:       j.CaseID,
		JudgmentText: j.JudgmentText,
		Verdict:      j.Verdict,
		JudgeID:      j.JudgeID,
		CreatedAt:    formatTime(j.CreatedAt),
	}
}

// Record handles POST /v1/judgments — writes the verdict and closes the case.
//
// @Summary      Record a judgment
// @Tags         judgments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordJudgmentRequest  true  "Judgment details"
// @Success      201   {object}  judgmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/judgments [post]
func (h *JudgmentHandler) Record(c echo.Context) error {
	var req recordJudgmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	judgeID := req.JudgeID
	if judgeID == "" {
		judgeID, _, _ = ctxClaims(c)
	}

	created, err := h.service.Record(c.Request().Context(), ports.RecordJudgmentInput{
		CaseID:       req.CaseID,
		JudgmentText: req.JudgmentText,
		Verdict:      req.Verdict,
		JudgeID:      judgeID,
	})
	if err != nil {
		countTransition("judge", err)
		return err
	}

	metrics.CaseTransitionsTotal.WithLabelValues("judge", "ok").Inc()
	metrics.JudgmentsRecordedTotal.Inc()
	return c.JSON(http.StatusCreated, toJudgmentResponse(created))
}

// ListByCase handles GET /v1/judgments/case/:caseId.
//
// @Summary      List judgments for a case
// @Tags         judgments
// @Produce      json
// @Security     BearerAuth
// @Param        caseId  path      string  true  "Case id"
// @Success      200     {object}  judgmentListResponse
// @Router       /v1/judgments/case/{caseId} [get]
func (h *JudgmentHandler) ListByCase(c echo.Context) error {
	list, err := h.service.ListByCase(c.Request().Context(), c.Param("caseId"))
	if err != nil {
		return err
	}

	resp := judgmentListResponse{Judgments: make([]judgmentResponse, 0, len(list))}
	for _, j := range list {
		resp.Judgments = append(resp.Judgments, toJudgmentResponse(j))
	}
	resp.Count = len(resp.Judgments)
	return c.JSON(http.StatusOK, resp)
}
