package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtflow/case-management/internal/api/metrics"
	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// NotificationHandler handles HTTP requests for judge notifications.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type notificationResponse struct {
	ID      string              `json:"id"`
	UserID  string              `json:"userId"`
	CaseID  string              `json:"caseId,omitempty"`
	Title   string              `json:"title"`
	Message string              `json:"message"`
	Status  string              `json:"status"`
	SentAt  string              `json:"sentAt"`
	Case    *domain.CaseSummary `json:"case,omitempty"`
}

type notificationListResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Count         int                    `json:"count"`
}

type syncResponse struct {
	Created int `json:"created"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:      n.ID,
		UserID:  n.UserID,
		CaseID:  n.CaseID,
		Title:   n.Title,
		Message: n.Message,
		Status:  string(n.Status),
		SentAt:  formatTime(n.SentAt),
		Case:    n.Case,
	}
}

// List handles GET /v1/notifications/:userId.
//
// @Summary      List a user's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  notificationListResponse
// @Router       /v1/notifications/{userId} [get]
func (h *NotificationHandler) List(c echo.Context) error {
	list, err := h.service.ListForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	resp := notificationListResponse{Notifications: make([]notificationResponse, 0, len(list))}
	for _, n := range list {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(n))
	}
	resp.Count = len(resp.Notifications)
	return c.JSON(http.StatusOK, resp)
}

// MarkRead handles PATCH /v1/notifications/read/:id.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  notificationResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/notifications/read/{id} [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	updated, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNotificationResponse(updated))
}

// Sync handles POST /v1/notifications/sync/:judgeId — backfills assignment
// notifications for every case assigned to the judge that lacks one.
//
// @Summary      Backfill missing assignment notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        judgeId  path      string  true  "Judge user id"
// @Success      200      {object}  syncResponse
// @Router       /v1/notifications/sync/{judgeId} [post]
func (h *NotificationHandler) Sync(c echo.Context) error {
	created, err := h.service.SyncForJudge(c.Request().Context(), c.Param("judgeId"))
	if err != nil {
		return err
	}
	metrics.NotificationsCreatedTotal.WithLabelValues("sync").Add(float64(created))
	return c.JSON(http.StatusOK, syncResponse{Created: created})
}
