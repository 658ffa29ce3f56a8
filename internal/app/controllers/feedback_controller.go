package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/app/services"
	"github.com/yigit/academy/internal/middleware"
)

// FeedbackController handles feedback-related operations
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// GetAllFeedback retrieves all feedback
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Success 200 {array} dto.FeedbackResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [get]
func (c *FeedbackController) GetAllFeedback(ctx *gin.Context) {
	feedback, err := c.feedbackService.GetAllFeedback(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// GetFeedbackByID retrieves feedback by ID
// @Summary Get feedback
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid feedback ID"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /feedback/{id} [get]
func (c *FeedbackController) GetFeedbackByID(ctx *gin.Context) {
	id, err := middleware.ParamObjectID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	feedback, err := c.feedbackService.GetFeedbackByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// CreateFeedback handles feedback creation
// @Summary Submit feedback
// @Description rating must be an integer from 1 to 5. References are not checked until read.
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback information"
// @Success 201 {object} models.Feedback
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /feedback [post]
func (c *FeedbackController) CreateFeedback(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	feedback, err := c.feedbackService.CreateFeedback(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, feedback)
}

// UpdateFeedback updates existing feedback
// @Summary Update feedback
// @Description Only supplied fields change.
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param request body dto.UpdateFeedbackRequest true "Fields to change"
// @Success 200 {object} models.Feedback
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /feedback/{id} [put]
func (c *FeedbackController) UpdateFeedback(ctx *gin.Context) {
	id, err := middleware.ParamObjectID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateFeedbackRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	feedback, err := c.feedbackService.UpdateFeedback(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, feedback)
}

// DeleteFeedback deletes feedback
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid feedback ID"
// @Failure 404 {object} dto.ErrorResponse "Feedback not found"
// @Router /feedback/{id} [delete]
func (c *FeedbackController) DeleteFeedback(ctx *gin.Context) {
	id, err := middleware.ParamObjectID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.feedbackService.DeleteFeedback(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Feedback deleted successfully"))
}
