package handlers

import (
  "time"

  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/services"
  "github.com/edukita/lms-backend/internal/types"
)

type AssignmentHandler struct {
  assignmentService services.AssignmentService
}

func NewAssignmentHandler(assignmentService services.AssignmentService) *AssignmentHandler {
  return &AssignmentHandler{assignmentService: assignmentService}
}

func (ah *AssignmentHandler) Create(c *gin.Context) {
  var req struct {
    CourseID      uint       `json:"course_id" binding:"required"`
    Title         string     `json:"title" binding:"required,max=200"`
    Description   string     `json:"description" binding:"required"`
    Instructions  string     `json:"instructions"`
    MaxScore      int        `json:"max_score" binding:"omitempty,min=0,max=100"`
    DueDate       time.Time  `json:"due_date" binding:"required"`
    AttachmentURL string     `json:"attachment_url"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  assignment, err := ah.assignmentService.Create(c.Request.Context(), services.AssignmentCreateInput{
    CourseID:      req.CourseID,
    Title:         req.Title,
    Description:   req.Description,
    Instructions:  req.Instructions,
    MaxScore:      req.MaxScore,
    DueDate:       req.DueDate,
    AttachmentURL: req.AttachmentURL,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondCreated(c, assignment)
}

func (ah *AssignmentHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  assignment, err := ah.assignmentService.Get(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, assignment)
}

func (ah *AssignmentHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var req struct {
    Title        *string     `json:"title" binding:"omitempty,max=200"`
    Description  *string     `json:"description"`
    Instructions *string     `json:"instructions"`
    MaxScore     *int        `json:"max_score" binding:"omitempty,min=0,max=100"`
    DueDate      *time.Time  `json:"due_date"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  assignment, err := ah.assignmentService.Update(c.Request.Context(), id, services.AssignmentUpdateInput{
    Title:        req.Title,
    Description:  req.Description,
    Instructions: req.Instructions,
    MaxScore:     req.MaxScore,
    DueDate:      req.DueDate,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, assignment)
}

func (ah *AssignmentHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := ah.assignmentService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, types.MessageResponse{Message: "assignment deleted successfully"})
}
