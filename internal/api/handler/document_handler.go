package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtflow/case-management/internal/api/metrics"
	"github.com/courtflow/case-management/internal/core/domain"
	"github.com/courtflow/case-management/internal/core/ports"
)

// DocumentHandler handles document uploads and listings.
type DocumentHandler struct {
	service ports.DocumentService
}

func NewDocumentHandler(service ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

type documentResponse struct {
	ID         string `json:"id"`
	CaseID     string `json:"caseId"`
	FileName   string `json:"fileName"`
	FilePath   string `json:"filePath"`
	UploadedAt string `json:"uploadedAt"`
}

type documentListResponse struct {
	Documents []documentResponse `json:"documents"`
	Count     int                `json:"count"`
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:         d.ID,
		CaseID:     d.CaseID,
		FileName:   d.FileName,
		FilePath:   d.FilePath,
		UploadedAt: formatTime(d.UploadedAt),
	}
}

// Upload handles POST /v1/documents/upload/:caseId — a multipart form with a
// single "document" field.
//
// @Summary      Upload a document to a case
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        caseId    path      string  true  "Case id"
// @Param        document  formData  file    true  "Document file"
// @Success      201       {object}  documentResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /v1/documents/upload/{caseId} [post]
func (h *DocumentHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "document file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read document file")
	}
	defer src.Close()

	created, err := h.service.Upload(c.Request().Context(), c.Param("caseId"), fileHeader.Filename, src)
	if err != nil {
		return err
	}

	metrics.DocumentsUploadedTotal.Inc()
	return c.JSON(http.StatusCreated, toDocumentResponse(created))
}

// ListByCase handles GET /v1/documents/case/:caseId.
//
// @Summary      List a case's documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        caseId  path      string  true  "Case id"
// @Success      200     {object}  documentListResponse
// @Router       /v1/documents/case/{caseId} [get]
func (h *DocumentHandler) ListByCase(c echo.Context) error {
	list, err := h.service.ListByCase(c.Request().Context(), c.Param("caseId"))
	if err != nil {
		return err
	}

	resp := documentListResponse{Documents: make([]documentResponse, 0, len(list))}
	for _, d := range list {
		resp.Documents = append(resp.Documents, toDocumentResponse(d))
	}
	resp.Count = len(resp.Documents)
	return c.JSON(http.StatusOK, resp)
}
