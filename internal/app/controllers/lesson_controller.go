package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academy/internal/app/models/dto"
	"github.com/yigit/academy/internal/app/services"
	"github.com/yigit/academy/internal/middleware"
)

// LessonController handles lesson-related operations
type LessonController struct {
	lessonService services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService services.LessonService) *LessonController {
	return &LessonController{
		lessonService: lessonService,
	}
}

// GetAllLessons retrieves all lessons
// @Summary List lessons
// @Tags lessons
// @Produce json
// @Success 200 {array} dto.LessonResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons [get]
func (c *LessonController) GetAllLessons(ctx *gin.Context) {
	lessons, err := c.lessonService.GetAllLessons(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lessons)
}

// GetLessonByID retrieves a lesson by ID
// @Summary Get a lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} dto.LessonResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid lesson ID"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [get]
func (c *LessonController) GetLessonByID(ctx *gin.Context) {
	id, err := middleware.ParamObjectID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	lesson, err := c.lessonService.GetLessonByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lesson)
}

// CreateLesson handles lesson creation
// @Summary Create a lesson
// @Description The course reference is stored as given; a missing course reads back as null.
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body dto.CreateLessonRequest true "Lesson information"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req dto.CreateLessonRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	lesson, err := c.lessonService.CreateLesson(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, lesson)
}

// UpdateLesson updates an existing lesson
// @Summary Update a lesson
// @Description Only supplied fields change.
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body dto.UpdateLessonRequest true "Fields to change"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	id, err := middleware.ParamObjectID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateLessonRequest
	if err := middleware.BindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	lesson, err := c.lessonService.UpdateLesson(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lesson)
}

// DeleteLesson deletes a lesson
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid lesson ID"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	id, err := middleware.ParamObjectID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.lessonService.DeleteLesson(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Lesson deleted successfully"))
}
