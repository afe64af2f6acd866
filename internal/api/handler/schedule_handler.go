package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/courtflow/case-management/internal/api/metrics"
	"github.com/courtflow/case-management/internal/core/ports"
)

// ScheduleHandler handles HTTP requests for hearing schedules.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Create handles POST /v1/schedules — books a hearing and moves the case to
// Scheduled.
//
// @Summary      Book a hearing
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createScheduleRequest  true  "Hearing details"
// @Success      201   {object}  scheduleResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/schedules [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req createScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Dates already validated against the layout above.
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := h.service.Create(c.Request().Context(), ports.CreateScheduleInput{
		CaseID:        req.CaseID,
		AssignedJudge: req.AssignedJudge,
		StartDate:     startDate,
		StartTime:     req.StartTime,
		EndDate:       endDate,
		EndTime:       req.EndTime,
		Room:          req.Room,
	})
	if err != nil {
		countTransition("schedule", err)
		return err
	}

	metrics.CaseTransitionsTotal.WithLabelValues("schedule", "ok").Inc()
	metrics.SchedulesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toScheduleResponse(created))
}

// List handles GET /v1/schedules — every hearing with the display status
// derived at read time.
//
// @Summary      List all hearings
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  hearingListResponse
// @Router       /v1/schedules [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHearingListResponse(views))
}

// ListByJudge handles GET /v1/schedules/judge/:judgeId.
//
// @Summary      List a judge's hearings
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        judgeId  path      string  true  "Judge user id"
// @Success      200      {object}  hearingListResponse
// @Router       /v1/schedules/judge/{judgeId} [get]
func (h *ScheduleHandler) ListByJudge(c echo.Context) error {
	views, err := h.service.ListByJudge(c.Request().Context(), c.Param("judgeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHearingListResponse(views))
}

// Progress handles GET /v1/schedules/progress/:judgeId — the judge's hearings
// with progress percentage and color hint filled in.
//
// @Summary      List a judge's hearings with progress
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        judgeId  path      string  true  "Judge user id"
// @Success      200      {object}  hearingListResponse
// @Router       /v1/schedules/progress/{judgeId} [get]
func (h *ScheduleHandler) Progress(c echo.Context) error {
	views, err := h.service.ProgressByJudge(c.Request().Context(), c.Param("judgeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHearingListResponse(views))
}
