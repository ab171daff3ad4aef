package handlers

import (
  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/services"
  "github.com/edukita/lms-backend/internal/types"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
  var req struct {
    Email     string      `json:"email" binding:"required,email"`
    Username  string      `json:"username" binding:"required,min=3,max=150"`
    Password  string      `json:"password" binding:"required,min=8"`
    FirstName string      `json:"first_name"`
    LastName  string      `json:"last_name"`
    Role      types.Role  `json:"role" binding:"omitempty,oneof=admin instructor student"`
    Bio       string      `json:"bio"`
    Phone     string      `json:"phone" binding:"omitempty,max=20"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  resp, err := ah.authService.Register(c.Request.Context(), services.RegisterInput{
    Email:     req.Email,
    Username:  req.Username,
    Password:  req.Password,
    FirstName: req.FirstName,
    LastName:  req.LastName,
    Role:      req.Role,
    Bio:       req.Bio,
    Phone:     req.Phone,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondCreated(c, resp)
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Email    string  `json:"email" binding:"required,email"`
    Password string  `json:"password" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  resp, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, resp)
}

func (ah *AuthHandler) Me(c *gin.Context) {
  user, err := ah.authService.CurrentUser(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, user)
}
