package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/services"
  "github.com/edukita/lms-backend/internal/types"
)

type LessonHandler struct {
  lessonService services.LessonService
}

func NewLessonHandler(lessonService services.LessonService) *LessonHandler {
  return &LessonHandler{lessonService: lessonService}
}

func (lh *LessonHandler) Create(c *gin.Context) {
  var req struct {
    CourseID        uint    `json:"course_id" binding:"required"`
    Title           string  `json:"title" binding:"required,max=200"`
    Slug            string  `json:"slug" binding:"required,max=200"`
    Description     string  `json:"description"`
    Content         string  `json:"content"`
    VideoURL        string  `json:"video_url"`
    DurationMinutes int     `json:"duration_minutes" binding:"omitempty,min=0"`
    Order           int     `json:"order" binding:"omitempty,min=0"`
    IsPublished     bool    `json:"is_published"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  lesson, err := lh.lessonService.Create(c.Request.Context(), services.LessonCreateInput{
    CourseID:        req.CourseID,
    Title:           req.Title,
    Slug:            req.Slug,
    Description:     req.Description,
    Content:         req.Content,
    VideoURL:        req.VideoURL,
    DurationMinutes: req.DurationMinutes,
    Order:           req.Order,
    IsPublished:     req.IsPublished,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondCreated(c, lesson)
}

func (lh *LessonHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var req struct {
    Title           *string  `json:"title" binding:"omitempty,max=200"`
    Description     *string  `json:"description"`
    Content         *string  `json:"content"`
    VideoURL        *string  `json:"video_url"`
    DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,min=0"`
    Order           *int     `json:"order" binding:"omitempty,min=0"`
    IsPublished     *bool    `json:"is_published"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  lesson, err := lh.lessonService.Update(c.Request.Context(), id, services.LessonUpdateInput{
    Title:           req.Title,
    Description:     req.Description,
    Content:         req.Content,
    VideoURL:        req.VideoURL,
    DurationMinutes: req.DurationMinutes,
    Order:           req.Order,
    IsPublished:     req.IsPublished,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, lesson)
}

func (lh *LessonHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := lh.lessonService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, types.MessageResponse{Message: "lesson deleted successfully"})
}
