// Package http provides HTTP handlers for the report review workflow.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/safework/safework/internal/auth/http"
	apperrors "github.com/safework/safework/internal/errors"
	"github.com/safework/safework/internal/httputil"
	"github.com/safework/safework/internal/report/http/dto"
	reportUseCase "github.com/safework/safework/internal/report/usecase"
	customValidation "github.com/safework/safework/internal/validation"
)

// ReportHandler handles HTTP requests for report operations.
type ReportHandler struct {
	reportUseCase reportUseCase.ReportUseCase
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler with required dependencies.
func NewReportHandler(useCase reportUseCase.ReportUseCase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: useCase,
		logger:        logger,
	}
}

// CreateReportHandler files a new report owned by the caller.
// POST /api/reports - Requires authentication.
// Returns 201 Created with the report.
func (h *ReportHandler) CreateReportHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	report, err := h.reportUseCase.Create(c.Request.Context(), identity, reportUseCase.CreateReportInput{
		Title:        req.Title,
		Content:      req.Content,
		ReporterRisk: req.ReporterRisk,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewReportResponse(report))
}

// ListReportsHandler lists reports newest first.
// GET /api/reports?offset=&limit= - Requires authentication.
func (h *ReportHandler) ListReportsHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	reports, err := h.reportUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": dto.NewReportListResponse(reports)})
}

// GetReportHandler retrieves a single report.
// GET /api/reports/:id - Requires authentication.
func (h *ReportHandler) GetReportHandler(c *gin.Context) {
	id, err := parseReportID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	report, err := h.reportUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(report))
}

// UpdateReportHandler applies a lifecycle update.
// PUT /api/reports/:id - Requires authentication; authorization is decided
// per field set by the use case.
func (h *ReportHandler) UpdateReportHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseReportID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	report, err := h.reportUseCase.ApplyUpdate(c.Request.Context(), identity, id, req.ToPatch())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(report))
}

// DeleteReportHandler deletes a report, owner-only.
// DELETE /api/reports/:id - Requires authentication.
func (h *ReportHandler) DeleteReportHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseReportID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.reportUseCase.Delete(c.Request.Context(), identity, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}

// AdminDeleteReportHandler force-deletes any report.
// DELETE /api/admin/reports/:id - Requires admin role.
func (h *ReportHandler) AdminDeleteReportHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	id, err := parseReportID(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.reportUseCase.AdminDelete(c.Request.Context(), identity, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}

// parseReportID parses the :id path parameter.
func parseReportID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "report id must be an integer")
	}
	return id, nil
}
