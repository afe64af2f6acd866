package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtflow/case-management/internal/api/metrics"
	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// CaseHandler handles HTTP requests for case lifecycle operations.
type CaseHandler struct {
	service ports.CaseService
}

func NewCaseHandler(service ports.CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

// Create handles POST /v1/cases.
//
// @Summary      File a new case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCaseRequest  true  "Case details"
// @Success      201   {object}  caseResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/cases [post]
func (h *CaseHandler) Create(c echo.Context) error {
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateCaseInput{
		CaseNumber:        req.CaseNumber,
		Title:             req.Title,
		Description:       req.Description,
		PartiesInvolved:   req.PartiesInvolved,
		FiledByName:       req.FiledByName,
		RegistrationNotes: req.RegistrationNotes,
		RegisteredBy:      req.RegisteredBy,
	})
	if err != nil {
		return err
	}

	metrics.CasesCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	return c.JSON(http.StatusCreated, toCaseResponse(created))
}

// List handles GET /v1/cases with optional status, registeredBy and
// assignedJudge filters.
//
// @Summary      List cases
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        status         query     string  false  "Filter by status"
// @Param        registeredBy   query     string  false  "Filter by registering clerk id"
// @Param        assignedJudge  query     string  false  "Filter by assigned judge id"
// @Success      200            {object}  caseListResponse
// @Failure      400            {object}  map[string]string
// @Router       /v1/cases [get]
func (h *CaseHandler) List(c echo.Context) error {
	filter := ports.ListCasesFilter{
		Status:        domain.CaseStatus(c.QueryParam("status")),
		RegisteredBy:  c.QueryParam("registeredBy"),
		AssignedJudge: c.QueryParam("assignedJudge"),
	}

	cases, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseListResponse(cases))
}

// Get handles GET /v1/cases/:id.
//
// @Summary      Get a case by id
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Case id"
// @Success      200  {object}  caseResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/cases/{id} [get]
func (h *CaseHandler) Get(c echo.Context) error {
	found, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCaseResponse(found))
}

// Delete handles DELETE /v1/cases/:id.
//
// @Summary      Delete a case
// @Tags         cases
// @Security     BearerAuth
// @Param        id  path  string  true  "Case id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/cases/{id} [delete]
func (h *CaseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /v1/cases/stats.
//
// @Summary      Case dashboard counts
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.CaseStats
// @Router       /v1/cases/stats [get]
func (h *CaseHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Register handles POST /v1/cases/:id/register — a clerk registering a
// self-filed case.
//
// @Summary      Register a filed case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Case id"
// @Param        body  body      registerCaseRequest  true  "Registration details"
// @Success      200   {object}  caseResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/cases/{id}/register [post]
func (h *CaseHandler) Register(c echo.Context) error {
	var req registerCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Register(c.Request().Context(), c.Param("id"), ports.RegisterCaseInput{
		RegistrationNotes: req.RegistrationNotes,
		ClerkName:         req.ClerkName,
	})
	return h.transitionResponse(c, "register", updated, err)
}

// Submit handles PUT /v1/cases/:id/submit — a clerk handing the case to the
// registrar.
//
// @Summary      Submit a case to the registrar
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Case id"
// @Param        body  body      submitCaseRequest  true  "Submission details"
// @Success      200   {object}  caseResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/cases/{id}/submit [put]
func (h *CaseHandler) Submit(c echo.Context) error {
	var req submitCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	clerkID := req.ClerkID
	if clerkID == "" {
		clerkID, _, _ = ctxClaims(c)
	}

	updated, err := h.service.Submit(c.Request().Context(), c.Param("id"), ports.SubmitCaseInput{
		ClerkID:   clerkID,
		ClerkName: req.ClerkName,
	})
	return h.transitionResponse(c, "submit", updated, err)
}

// Approve handles POST /v1/cases/:id/approve.
//
// @Summary      Approve a submitted case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Case id"
// @Param        body  body      decisionRequest  true  "Registrar identity"
// @Success      200   {object}  caseResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/cases/{id}/approve [post]
func (h *CaseHandler) Approve(c echo.Context) error {
	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Approve(c.Request().Context(), c.Param("id"), req.RegistrarName)
	return h.transitionResponse(c, "approve", updated, err)
}

// Disapprove handles POST /v1/cases/:id/disapprove. Disapproved is terminal.
//
// @Summary      Disapprove a submitted case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Case id"
// @Param        body  body      decisionRequest  true  "Registrar identity"
// @Success      200   {object}  caseResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/cases/{id}/disapprove [post]
func (h *CaseHandler) Disapprove(c echo.Context) error {
	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.Disapprove(c.Request().Context(), c.Param("id"), req.RegistrarName)
	return h.transitionResponse(c, "disapprove", updated, err)
}

// Endorse handles POST /v1/cases/:id/endorse — assigning a judge to an
// approved case. The assignment notification (when written inline) is
// returned alongside the case.
//
// @Summary      Endorse a case to a judge
// @Tags         cases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Case id"
// @Param        body  body      endorseCaseRequest  true  "Judge assignment"
// @Success      200   {object}  endorseCaseResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/cases/{id}/endorse [post]
func (h *CaseHandler) Endorse(c echo.Context) error {
	var req endorseCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Endorse(c.Request().Context(), c.Param("id"), ports.EndorseCaseInput{
		JudgeID:       req.JudgeID,
		RegistrarName: req.RegistrarName,
	})
	if err != nil {
		countTransition("endorse", err)
		return err
	}
	metrics.CaseTransitionsTotal.WithLabelValues("endorse", "ok").Inc()

	resp := endorseCaseResponse{Case: toCaseResponse(result.Case)}
	if result.Notification != nil {
		metrics.NotificationsCreatedTotal.WithLabelValues("endorse").Inc()
		n := toNotificationResponse(result.Notification)
		resp.Notification = &n
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CaseHandler) transitionResponse(c echo.Context, operation string, updated *domain.Case, err error) error {
	if err != nil {
		countTransition(operation, err)
		return err
	}
	metrics.CaseTransitionsTotal.WithLabelValues(operation, "ok").Inc()
	return c.JSON(http.StatusOK, toCaseResponse(updated))
}

func countTransition(operation string, err error) {
	if err == nil {
		return
	}
	result := "error"
	if errors.Is(err, domain.ErrInvalidTransition) {
		result = "rejected"
	}
	metrics.CaseTransitionsTotal.WithLabelValues(operation, result).Inc()
}
