package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/services"
)

type EnrollmentHandler struct {
  enrollmentService services.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService services.EnrollmentService) *EnrollmentHandler {
  return &EnrollmentHandler{enrollmentService: enrollmentService}
}

func (eh *EnrollmentHandler) Enroll(c *gin.Context) {
  var req struct {
    CourseID uint `json:"course_id" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  enrollment, err := eh.enrollmentService.Enroll(c.Request.Context(), req.CourseID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondCreated(c, enrollment)
}

func (eh *EnrollmentHandler) My(c *gin.Context) {
  enrollments, err := eh.enrollmentService.MyEnrollments(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, enrollments)
}
