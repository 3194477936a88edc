package handlers

import (
	"net/http"

	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceInHandler handles HTTP requests for incoming invoices.
type invoiceInHandler struct {
	invoiceService portssvc.InvoiceInSvcFacade
	userService    portssvc.UserSvcFacade
}

// newInvoiceInHandler creates a new invoiceInHandler.
func newInvoiceInHandler(is portssvc.InvoiceInSvcFacade, us portssvc.UserSvcFacade) *invoiceInHandler {
	return &invoiceInHandler{
		invoiceService: is,
		userService:    us,
	}
}

// RegisterInvoiceInRoutes registers incoming-invoice routes.
func RegisterInvoiceInRoutes(rg *gin.RouterGroup, is portssvc.InvoiceInSvcFacade, us portssvc.UserSvcFacade) {
	h := newInvoiceInHandler(is, us)

	invoices := rg.Group("/invoices/in")
	{
		invoices.POST("", h.createInvoiceIn)
		invoices.GET("", h.listInvoicesIn)
		invoices.GET("/:documentID", h.getInvoiceIn)
		invoices.PUT("/:documentID", h.updateInvoiceIn)
		invoices.POST("/:documentID/submit", h.submitInvoiceIn)
		invoices.POST("/:documentID/approve", h.approveInvoiceIn)
		invoices.POST("/:documentID/reject", h.rejectInvoiceIn)
		invoices.POST("/:documentID/cancel", h.cancelInvoiceIn)
		invoices.POST("/:documentID/pay", h.payInvoiceIn)
	}
}

// createInvoiceIn godoc
// @Summary Create an incoming invoice
// @Description Creates a new incoming invoice in DRAFT status.
// @Tags invoices-in
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceInRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Vendor or purchase order not found"
// @Security BearerAuth
// @Router /invoices/in [post]
func (h *invoiceInHandler) createInvoiceIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CreateInvoiceIn(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceInResponse(invoice))
}

// listInvoicesIn godoc
// @Summary List incoming invoices
// @Description Retrieves a page of incoming invoices, newest first.
// @Tags invoices-in
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque pagination token"
// @Success 200 {object} dto.ListInvoicesInResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/in [get]
func (h *invoiceInHandler) listInvoicesIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.invoiceService.ListInvoicesIn(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getInvoiceIn godoc
// @Summary Get an incoming invoice
// @Description Retrieves an incoming invoice by document ID.
// @Tags invoices-in
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.InvoiceInResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/in/{documentID} [get]
func (h *invoiceInHandler) getInvoiceIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceInByID(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceInResponse(invoice))
}

// updateInvoiceIn godoc
// @Summary Update a draft incoming invoice
// @Description Updates the fields of a DRAFT incoming invoice. Only the owner or an ADMIN may edit.
// @Tags invoices-in
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param invoice body dto.UpdateInvoiceInRequest true "Updated fields"
// @Success 200 {object} dto.InvoiceInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/in/{documentID} [put]
func (h *invoiceInHandler) updateInvoiceIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	var req dto.UpdateInvoiceInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceIn(c.Request.Context(), documentID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceInResponse(invoice))
}

// submitInvoiceIn godoc
// @Summary Submit an incoming invoice for approval
// @Description Moves a DRAFT invoice to PENDING. Only the owner or an ADMIN may submit.
// @Tags invoices-in
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.InvoiceInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/in/{documentID}/submit [post]
func (h *invoiceInHandler) submitInvoiceIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.SubmitInvoiceIn(c.Request.Context(), documentID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceInResponse(invoice))
}

// approveInvoiceIn godoc
// @Summary Approve an incoming invoice
// @Description Moves a PENDING invoice to APPROVED after an authorization check.
// @Tags invoices-in
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.InvoiceInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/in/{documentID}/approve [post]
func (h *invoiceInHandler) approveInvoiceIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.ApproveInvoiceIn(c.Request.Context(), documentID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceInResponse(invoice))
}

// rejectInvoiceIn godoc
// @Summary Reject an incoming invoice
// @Description Moves a PENDING invoice to REJECTED with a reason.
// @Tags invoices-in
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param transition body dto.TransitionRequest true "Rejection reason"
// @Success 200 {object} dto.InvoiceInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/in/{documentID}/reject [post]
func (h *invoiceInHandler) rejectInvoiceIn(c *gin.Context) {
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

	invoice, err := h.invoiceService.RejectInvoiceIn(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceInResponse(invoice))
}

// cancelInvoiceIn godoc
// @Summary Cancel an incoming invoice
// @Description Cancels a DRAFT or PENDING invoice with a reason.
// @Tags invoices-in
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param transition body dto.TransitionRequest true "Cancellation reason"
// @Success 200 {object} dto.InvoiceInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/in/{documentID}/cancel [post]
func (h *invoiceInHandler) cancelInvoiceIn(c *gin.Context) {
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

	invoice, err := h.invoiceService.CancelInvoiceIn(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceInResponse(invoice))
}

// payInvoiceIn godoc
// @Summary Record payment of an incoming invoice
// @Description Records an outbound payment and moves an APPROVED invoice to PAID.
// @Tags invoices-in
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.InvoiceInResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/in/{documentID}/pay [post]
func (h *invoiceInHandler) payInvoiceIn(c *gin.Context) {
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

	invoice, err := h.invoiceService.PayInvoiceIn(c.Request.Context(), documentID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceInResponse(invoice))
}
