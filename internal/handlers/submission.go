package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/services"
)

type SubmissionHandler struct {
  submissionService services.SubmissionService
}

func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
  return &SubmissionHandler{submissionService: submissionService}
}

func (sh *SubmissionHandler) Submit(c *gin.Context) {
  var req struct {
    AssignmentID  uint    `json:"assignment_id" binding:"required"`
    Content       string  `json:"content" binding:"required"`
    AttachmentURL string  `json:"attachment_url"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  submission, err := sh.submissionService.Submit(c.Request.Context(), services.SubmissionCreateInput{
    AssignmentID:  req.AssignmentID,
    Content:       req.Content,
    AttachmentURL: req.AttachmentURL,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondCreated(c, submission)
}

func (sh *SubmissionHandler) My(c *gin.Context) {
  submissions, err := sh.submissionService.MySubmissions(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, submissions)
}

func (sh *SubmissionHandler) Grade(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var req struct {
    Score    *float64  `json:"score" binding:"required,min=0,max=100"`
    Feedback string    `json:"feedback"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  submission, err := sh.submissionService.Grade(c.Request.Context(), id, *req.Score, req.Feedback)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, submission)
}
