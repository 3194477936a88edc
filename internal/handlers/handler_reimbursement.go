package handlers

import (
	"net/http"

	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reimbursementHandler handles HTTP requests for reimbursements.
type reimbursementHandler struct {
	reimbursementService portssvc.ReimbursementSvcFacade
	userService          portssvc.UserSvcFacade
}

// newReimbursementHandler creates a new reimbursementHandler.
func newReimbursementHandler(rs portssvc.ReimbursementSvcFacade, us portssvc.UserSvcFacade) *reimbursementHandler {
	return &reimbursementHandler{
		reimbursementService: rs,
		userService:          us,
	}
}

// registerReimbursementRoutes registers reimbursement routes.
func registerReimbursementRoutes(rg *gin.RouterGroup, rs portssvc.ReimbursementSvcFacade, us portssvc.UserSvcFacade) {
	h := newReimbursementHandler(rs, us)

	reimbursements := rg.Group("/reimbursements")
	{
		reimbursements.POST("", h.createReimbursement)
		reimbursements.GET("", h.listReimbursements)
		reimbursements.GET("/:documentID", h.getReimbursement)
		reimbursements.POST("/:documentID/submit", h.submitReimbursement)
		reimbursements.POST("/:documentID/approve", h.approveReimbursement)
		reimbursements.POST("/:documentID/reject", h.rejectReimbursement)
		reimbursements.POST("/:documentID/cancel", h.cancelReimbursement)
		reimbursements.POST("/:documentID/pay", h.payReimbursement)
	}
}

// createReimbursement godoc
// @Summary Create a reimbursement
// @Description Creates a reimbursement against an APPROVED expense claim. The claim must not already have one and the total must match the claim within tolerance.
// @Tags reimbursements
// @Accept json
// @Produce json
// @Param reimbursement body dto.CreateReimbursementRequest true "Reimbursement details"
// @Success 201 {object} dto.ReimbursementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Expense claim not found"
// @Failure 409 {object} ErrorResponse "Claim already reimbursed"
// @Security BearerAuth
// @Router /reimbursements [post]
func (h *reimbursementHandler) createReimbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReimbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	reimbursement, err := h.reimbursementService.CreateReimbursement(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create reimbursement")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReimbursementResponse(reimbursement))
}

// listReimbursements godoc
// @Summary List reimbursements
// @Description Retrieves a page of reimbursements, newest first.
// @Tags reimbursements
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque pagination token"
// @Success 200 {object} dto.ListReimbursementsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements [get]
func (h *reimbursementHandler) listReimbursements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reimbursementService.ListReimbursements(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list reimbursements")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getReimbursement godoc
// @Summary Get a reimbursement
// @Description Retrieves a reimbursement by document ID.
// @Tags reimbursements
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{documentID} [get]
func (h *reimbursementHandler) getReimbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	reimbursement, err := h.reimbursementService.GetReimbursementByID(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve reimbursement")
		return
	}
	c.JSON(http.StatusOK, dto.ToReimbursementResponse(reimbursement))
}

// submitReimbursement godoc
// @Summary Submit a reimbursement for approval
// @Description Moves a DRAFT reimbursement to PENDING. Only the owner or an ADMIN may submit.
// @Tags reimbursements
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{documentID}/submit [post]
func (h *reimbursementHandler) submitReimbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	reimbursement, err := h.reimbursementService.SubmitReimbursement(c.Request.Context(), documentID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit reimbursement")
		return
	}
	c.JSON(http.StatusOK, dto.ToReimbursementResponse(reimbursement))
}

// approveReimbursement godoc
// @Summary Approve a reimbursement
// @Description Moves a PENDING reimbursement to APPROVED. The decision rule follows the linked claim's approver.
// @Tags reimbursements
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{documentID}/approve [post]
func (h *reimbursementHandler) approveReimbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	reimbursement, err := h.reimbursementService.ApproveReimbursement(c.Request.Context(), documentID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve reimbursement")
		return
	}
	c.JSON(http.StatusOK, dto.ToReimbursementResponse(reimbursement))
}

// rejectReimbursement godoc
// @Summary Reject a reimbursement
// @Description Moves a PENDING reimbursement to REJECTED with a reason.
// @Tags reimbursements
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param transition body dto.TransitionRequest true "Rejection reason"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{documentID}/reject [post]
func (h *reimbursementHandler) rejectReimbursement(c *gin.Context) {
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

	reimbursement, err := h.reimbursementService.RejectReimbursement(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject reimbursement")
		return
	}
	c.JSON(http.StatusOK, dto.ToReimbursementResponse(reimbursement))
}

// cancelReimbursement godoc
// @Summary Cancel a reimbursement
// @Description Cancels a DRAFT or PENDING reimbursement with a reason.
// @Tags reimbursements
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param transition body dto.TransitionRequest true "Cancellation reason"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{documentID}/cancel [post]
func (h *reimbursementHandler) cancelReimbursement(c *gin.Context) {
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

	reimbursement, err := h.reimbursementService.CancelReimbursement(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel reimbursement")
		return
	}
	c.JSON(http.StatusOK, dto.ToReimbursementResponse(reimbursement))
}

// payReimbursement godoc
// @Summary Record payment of a reimbursement
// @Description Records an outbound payment and moves an APPROVED reimbursement to PAID.
// @Tags reimbursements
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.ReimbursementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{documentID}/pay [post]
func (h *reimbursementHandler) payReimbursement(c *gin.Context) {
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

	reimbursement, err := h.reimbursementService.PayReimbursement(c.Request.Context(), documentID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToReimbursementResponse(reimbursement))
}
