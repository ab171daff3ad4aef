package handlers

import (
  "strconv"

  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/apierr"
  "github.com/edukita/lms-backend/internal/services"
  "github.com/edukita/lms-backend/internal/types"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

func parseIDParam(c *gin.Context) (uint, error) {
  id, err := strconv.ParseUint(c.Param("id"), 10, 64)
  if err != nil {
    return 0, apierr.Validation("invalid id")
  }
  return uint(id), nil
}

func (uh *UserHandler) List(c *gin.Context) {
  users, err := uh.userService.List(c.Request.Context(), types.Role(c.Query("role")))
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, users)
}

func (uh *UserHandler) Get(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  user, err := uh.userService.Get(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, user)
}

func (uh *UserHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  var req struct {
    FirstName *string  `json:"first_name"`
    LastName  *string  `json:"last_name"`
    Bio       *string  `json:"bio"`
    Phone     *string  `json:"phone" binding:"omitempty,max=20"`
    AvatarURL *string  `json:"avatar_url"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondValidationError(c, err)
    return
  }
  user, err := uh.userService.Update(c.Request.Context(), id, services.UserUpdateInput{
    FirstName: req.FirstName,
    LastName:  req.LastName,
    Bio:       req.Bio,
    Phone:     req.Phone,
    AvatarURL: req.AvatarURL,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, user)
}

func (uh *UserHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c)
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := uh.userService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, types.MessageResponse{Message: "user deleted successfully"})
}
