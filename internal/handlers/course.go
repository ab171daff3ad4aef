package handlers

import (
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/repos"
  "github.com/edukita/lms-backend/internal/services"
  "github.com/edukita/lms-backend/internal/types"
)

type CourseHandler struct {
  courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService) *CourseHandler {
  return &CourseHandler{courseService: courseService}
}

func (ch *CourseHandler) List(c *gin.Context) {
  filter := repos.CourseFilter{
    Category: c.Query("category"),
    Level:    c.Query("level"),
  }
  if raw := c.Query("instructor_id"); raw != "" {
    id, err := strconv.ParseUint(raw, 10, 64)
    if err != nil {
      RespondValidationError(c, err)
      return
    }
    filter.InstructorID = uint(id)
  }
  courses, err := ch.courseService.List(c.Request.Context(), filter)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, courses)
}

func (ch *CourseHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  detail, err := ch.courseService.GetDetail(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, detail)
}

func (ch *CourseHandler) Create(c *gin.Context) {
  var req struct {
    Title       string             `json:"title" binding:"required,max=200"`
    Slug        string             `json:"slug" binding:"required,max=200"`
    Description string             `json:"description" binding:"required"`
    Category    string             `json:"category" binding:"required,max=100"`
    Level       types.CourseLevel  `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  course, err := ch.courseService.Create(c.Request.Context(), services.CourseCreateInput{
    Title:       req.Title,
    Slug:        req.Slug,
    Description: req.Description,
    Category:    req.Category,
    Level:       req.Level,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondCreated(c, course)
}

func (ch *CourseHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var req struct {
    Title       *string             `json:"title" binding:"omitempty,max=200"`
    Description *string             `json:"description"`
    Category    *string             `json:"category" binding:"omitempty,max=100"`
    Level       *types.CourseLevel  `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
    IsActive    *bool               `json:"is_active"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  course, err := ch.courseService.Update(c.Request.Context(), id, services.CourseUpdateInput{
    Title:       req.Title,
    Description: req.Description,
    Category:    req.Category,
    Level:       req.Level,
    IsActive:    req.IsActive,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, course)
}

func (ch *CourseHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := ch.courseService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, types.MessageResponse{Message: "course deleted successfully"})
}
