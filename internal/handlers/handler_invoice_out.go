package handlers

import (
	"net/http"

	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceOutHandler handles HTTP requests for outgoing invoices.
type invoiceOutHandler struct {
	invoiceService portssvc.InvoiceOutSvcFacade
	userService    portssvc.UserSvcFacade
}

// newInvoiceOutHandler creates a new invoiceOutHandler.
func newInvoiceOutHandler(is portssvc.InvoiceOutSvcFacade, us portssvc.UserSvcFacade) *invoiceOutHandler {
	return &invoiceOutHandler{
		invoiceService: is,
		userService:    us,
	}
}

// registerInvoiceOutRoutes registers outgoing-invoice routes.
func registerInvoiceOutRoutes(rg *gin.RouterGroup, is portssvc.InvoiceOutSvcFacade, us portssvc.UserSvcFacade) {
	h := newInvoiceOutHandler(is, us)

	invoices := rg.Group("/invoices/out")
	{
		invoices.POST("", h.createInvoiceOut)
		invoices.GET("", h.listInvoicesOut)
		invoices.GET("/:documentID", h.getInvoiceOut)
		invoices.PUT("/:documentID", h.updateInvoiceOut)
		invoices.POST("/:documentID/submit", h.submitInvoiceOut)
		invoices.POST("/:documentID/approve", h.approveInvoiceOut)
		invoices.POST("/:documentID/reject", h.rejectInvoiceOut)
		invoices.POST("/:documentID/cancel", h.cancelInvoiceOut)
		invoices.POST("/:documentID/pay", h.payInvoiceOut)
	}
}

// createInvoiceOut godoc
// @Summary Create an outgoing invoice
// @Description Creates a new outgoing invoice in DRAFT status.
// @Tags invoices-out
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceOutRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceOutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /invoices/out [post]
func (h *invoiceOutHandler) createInvoiceOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CreateInvoiceOut(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceOutResponse(invoice))
}

// listInvoicesOut godoc
// @Summary List outgoing invoices
// @Description Retrieves a page of outgoing invoices, newest first.
// @Tags invoices-out
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque pagination token"
// @Success 200 {object} dto.ListInvoicesOutResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/out [get]
func (h *invoiceOutHandler) listInvoicesOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.invoiceService.ListInvoicesOut(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getInvoiceOut godoc
// @Summary Get an outgoing invoice
// @Description Retrieves an outgoing invoice by document ID.
// @Tags invoices-out
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.InvoiceOutResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/out/{documentID} [get]
func (h *invoiceOutHandler) getInvoiceOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceOutByID(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceOutResponse(invoice))
}

// updateInvoiceOut godoc
// @Summary Update a draft outgoing invoice
// @Description Updates the fields of a DRAFT outgoing invoice. Only the owner or an ADMIN may edit.
// @Tags invoices-out
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param invoice body dto.UpdateInvoiceOutRequest true "Updated fields"
// @Success 200 {object} dto.InvoiceOutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/out/{documentID} [put]
func (h *invoiceOutHandler) updateInvoiceOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	var req dto.UpdateInvoiceOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceOut(c.Request.Context(), documentID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceOutResponse(invoice))
}

// submitInvoiceOut godoc
// @Summary Submit an outgoing invoice for approval
// @Description Moves a DRAFT invoice to PENDING. Only the owner or an ADMIN may submit.
// @Tags invoices-out
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.InvoiceOutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/out/{documentID}/submit [post]
func (h *invoiceOutHandler) submitInvoiceOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.SubmitInvoiceOut(c.Request.Context(), documentID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceOutResponse(invoice))
}

// approveInvoiceOut godoc
// @Summary Approve an outgoing invoice
// @Description Moves a PENDING invoice to APPROVED after an authorization check.
// @Tags invoices-out
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.InvoiceOutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/out/{documentID}/approve [post]
func (h *invoiceOutHandler) approveInvoiceOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.ApproveInvoiceOut(c.Request.Context(), documentID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceOutResponse(invoice))
}

// rejectInvoiceOut godoc
// @Summary Reject an outgoing invoice
// @Description Moves a PENDING invoice to REJECTED with a reason.
// @Tags invoices-out
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param transition body dto.TransitionRequest true "Rejection reason"
// @Success 200 {object} dto.InvoiceOutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/out/{documentID}/reject [post]
func (h *invoiceOutHandler) rejectInvoiceOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Reason is required"})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.RejectInvoiceOut(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceOutResponse(invoice))
}

// cancelInvoiceOut godoc
// @Summary Cancel an outgoing invoice
// @Description Cancels a DRAFT or PENDING invoice with a reason.
// @Tags invoices-out
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param transition body dto.TransitionRequest true "Cancellation reason"
// @Success 200 {object} dto.InvoiceOutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/out/{documentID}/cancel [post]
func (h *invoiceOutHandler) cancelInvoiceOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Reason is required"})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CancelInvoiceOut(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceOutResponse(invoice))
}

// payInvoiceOut godoc
// @Summary Record payment of an outgoing invoice
// @Description Records an inbound payment and moves an APPROVED invoice to PAID.
// @Tags invoices-out
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.InvoiceOutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/out/{documentID}/pay [post]
func (h *invoiceOutHandler) payInvoiceOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.PayInvoiceOut(c.Request.Context(), documentID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceOutResponse(invoice))
}
