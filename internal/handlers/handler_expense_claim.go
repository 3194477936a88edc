package handlers

import (
	"net/http"

	portssvc "github.com/docflowhq/docflow_backend/internal/core/ports/services"
	"github.com/docflowhq/docflow_backend/internal/dto"
	"github.com/docflowhq/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseClaimHandler handles HTTP requests for expense claims.
type expenseClaimHandler struct {
	claimService portssvc.ExpenseClaimSvcFacade
	userService  portssvc.UserSvcFacade
}

// newExpenseClaimHandler creates a new expenseClaimHandler.
func newExpenseClaimHandler(cs portssvc.ExpenseClaimSvcFacade, us portssvc.UserSvcFacade) *expenseClaimHandler {
	return &expenseClaimHandler{
		claimService: cs,
		userService:  us,
	}
}

// registerExpenseClaimRoutes registers expense-claim routes.
func registerExpenseClaimRoutes(rg *gin.RouterGroup, cs portssvc.ExpenseClaimSvcFacade, us portssvc.UserSvcFacade) {
	h := newExpenseClaimHandler(cs, us)

	claims := rg.Group("/expense-claims")
	{
		claims.POST("", h.createExpenseClaim)
		claims.GET("", h.listExpenseClaims)
		claims.GET("/:documentID", h.getExpenseClaim)
		claims.PUT("/:documentID", h.updateExpenseClaim)
		claims.POST("/:documentID/submit", h.submitExpenseClaim)
		claims.POST("/:documentID/approve", h.approveExpenseClaim)
		claims.POST("/:documentID/reject", h.rejectExpenseClaim)
		claims.POST("/:documentID/cancel", h.cancelExpenseClaim)
	}
}

// createExpenseClaim godoc
// @Summary Create an expense claim
// @Description Creates a new expense claim in DRAFT status for the caller's employee record.
// @Tags expense-claims
// @Accept json
// @Produce json
// @Param claim body dto.CreateExpenseClaimRequest true "Claim details"
// @Success 201 {object} dto.ExpenseClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No employee record for caller"
// @Security BearerAuth
// @Router /expense-claims [post]
func (h *expenseClaimHandler) createExpenseClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	claim, err := h.claimService.CreateExpenseClaim(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create expense claim")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseClaimResponse(claim))
}

// listExpenseClaims godoc
// @Summary List expense claims
// @Description Retrieves a page of expense claims, newest first.
// @Tags expense-claims
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Opaque pagination token"
// @Success 200 {object} dto.ListExpenseClaimsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /expense-claims [get]
func (h *expenseClaimHandler) listExpenseClaims(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.claimService.ListExpenseClaims(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list expense claims")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getExpenseClaim godoc
// @Summary Get an expense claim
// @Description Retrieves an expense claim with its items by document ID.
// @Tags expense-claims
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.ExpenseClaimResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expense-claims/{documentID} [get]
func (h *expenseClaimHandler) getExpenseClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	claim, err := h.claimService.GetExpenseClaimByID(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve expense claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}

// updateExpenseClaim godoc
// @Summary Update a draft expense claim
// @Description Replaces the fields and items of a DRAFT claim. Only the owner or an ADMIN may edit.
// @Tags expense-claims
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param claim body dto.UpdateExpenseClaimRequest true "Updated fields"
// @Success 200 {object} dto.ExpenseClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expense-claims/{documentID} [put]
func (h *expenseClaimHandler) updateExpenseClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}

	var req dto.UpdateExpenseClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	claim, err := h.claimService.UpdateExpenseClaim(c.Request.Context(), documentID, req, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update expense claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}

// submitExpenseClaim godoc
// @Summary Submit an expense claim for approval
// @Description Moves a DRAFT claim to PENDING. Only the owner or an ADMIN may submit.
// @Tags expense-claims
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.ExpenseClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /expense-claims/{documentID}/submit [post]
func (h *expenseClaimHandler) submitExpenseClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	claim, err := h.claimService.SubmitExpenseClaim(c.Request.Context(), documentID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit expense claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}

// approveExpenseClaim godoc
// @Summary Approve an expense claim
// @Description Moves a PENDING claim to APPROVED. Only the claimant's manager or an ADMIN may decide.
// @Tags expense-claims
// @Produce json
// @Param documentID path int true "Document ID"
// @Success 200 {object} dto.ExpenseClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /expense-claims/{documentID}/approve [post]
func (h *expenseClaimHandler) approveExpenseClaim(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	documentID, ok := parseIDParam(c, "documentID")
	if !ok {
		return
	}
	actor, ok := requireActor(c, h.userService)
	if !ok {
		return
	}

	claim, err := h.claimService.ApproveExpenseClaim(c.Request.Context(), documentID, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve expense claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}

// rejectExpenseClaim godoc
// @Summary Reject an expense claim
// @Description Moves a PENDING claim to REJECTED with a reason.
// @Tags expense-claims
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param transition body dto.TransitionRequest true "Rejection reason"
// @Success 200 {object} dto.ExpenseClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /expense-claims/{documentID}/reject [post]
func (h *expenseClaimHandler) rejectExpenseClaim(c *gin.Context) {
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

	claim, err := h.claimService.RejectExpenseClaim(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject expense claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}

// cancelExpenseClaim godoc
// @Summary Cancel an expense claim
// @Description Cancels a DRAFT or PENDING claim with a reason.
// @Tags expense-claims
// @Accept json
// @Produce json
// @Param documentID path int true "Document ID"
// @Param transition body dto.TransitionRequest true "Cancellation reason"
// @Success 200 {object} dto.ExpenseClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /expense-claims/{documentID}/cancel [post]
func (h *expenseClaimHandler) cancelExpenseClaim(c *gin.Context) {
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

	claim, err := h.claimService.CancelExpenseClaim(c.Request.Context(), documentID, req.Reason, actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel expense claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseClaimResponse(claim))
}
