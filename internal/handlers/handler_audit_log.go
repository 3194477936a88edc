package handlers

import (
	"net/http"

	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// auditLogHandler serves the per-document audit trail.
type auditLogHandler struct {
	auditService portssvc.AuditSvc
}

// newAuditLogHandler creates a new auditLogHandler.
func newAuditLogHandler(as portssvc.AuditSvc) *auditLogHandler {
	return &auditLogHandler{auditService: as}
}

// registerAuditLogRoutes registers the audit trail routes.
func registerAuditLogRoutes(rg *gin.RouterGroup, as portssvc.AuditSvc) {
	h := newAuditLogHandler(as)

	rg.GET("/documents/:documentID/audit", h.getAuditTrail)

	auditLogs := rg.Group("/audit-logs")
	{
		auditLogs.GET("/document/:documentID", h.getAuditTrailPage)
		auditLogs.GET("/document/:documentID/count", h.getAuditTrailCount)
		auditLogs.GET("/document/:documentID/action/:action", h.getAuditTrailByAction)
		auditLogs.GET("/user/:userID", h.getAuditLogsByUser)
		auditLogs.GET("/action/:action", h.getAuditLogsByAction)
		auditLogs.GET("/range", h.getAuditLogsByDateRange)
	}
}

// getAuditTrail godoc
// @Summary Get a document's audit trail
// @Description Retrieves the full audit trail for a document in chronological order.
// @Tags audit
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.AuditTrailResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /documents/{documentID}/audit [get]
func (h *auditLogHandler) getAuditTrail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	entries, err := h.auditService.GetTrail(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve audit trail")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditTrailResponse(documentID, entries))
}

// getAuditTrailPage godoc
// @Summary Get a page of a document's audit trail
// @Description Retrieves a page of a document's audit entries, newest first.
// @Tags audit
// @Produce json
// @Param documentID path int true "Document ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.AuditLogResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs/document/{documentID} [get]
func (h *auditLogHandler) getAuditTrailPage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.auditService.GetTrailPage(c.Request.Context(), documentID, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve audit trail")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponses(entries))
}

// getAuditTrailCount godoc
// @Summary Count a document's audit entries
// @Tags audit
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.AuditLogCountResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs/document/{documentID}/count [get]
func (h *auditLogHandler) getAuditTrailCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	count, err := h.auditService.CountByDocument(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to count audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.AuditLogCountResponse{DocumentID: documentID, Count: count})
}

// getAuditTrailByAction godoc
// @Summary Get a document's audit entries for one action
// @Description Retrieves a document's audit entries with the given action label, newest first.
// @Tags audit
// @Produce json
// @Param documentID path int true "Document ID"
// @Param action path string true "Action label"
// @Success 200 {array} dto.AuditLogResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs/document/{documentID}/action/{action} [get]
func (h *auditLogHandler) getAuditTrailByAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	action := c.Param("action")

	entries, err := h.auditService.GetByDocumentAndAction(c.Request.Context(), documentID, action)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponses(entries))
}

// getAuditLogsByUser godoc
// @Summary Get audit entries written by a user
// @Description Retrieves a page of audit entries recorded for a user's actions, newest first.
// @Tags audit
// @Produce json
// @Param userID path int true "User ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.AuditLogResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs/user/{userID} [get]
func (h *auditLogHandler) getAuditLogsByUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := parseIDParam(c, "userID")
	if !ok {
		return
	}
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.auditService.GetByUser(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponses(entries))
}

// getAuditLogsByAction godoc
// @Summary Get audit entries by action label
// @Description Retrieves a page of audit entries with the given action label, newest first.
// @Tags audit
// @Produce json
// @Param action path string true "Action label"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.AuditLogResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs/action/{action} [get]
func (h *auditLogHandler) getAuditLogsByAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	action := c.Param("action")
	var params dto.ListAuditLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.auditService.GetByAction(c.Request.Context(), action, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponses(entries))
}

// getAuditLogsByDateRange godoc
// @Summary Get audit entries within a date range
// @Description Retrieves a page of audit entries created between from and to (RFC 3339), newest first.
// @Tags audit
// @Produce json
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.AuditLogResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs/range [get]
func (h *auditLogHandler) getAuditLogsByDateRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AuditLogRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.To.Before(params.From) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Range end must not be before range start"})
		return
	}

	entries, err := h.auditService.GetByDateRange(c.Request.Context(), params.From, params.To, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponses(entries))
}
