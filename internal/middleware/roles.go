package middleware

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/edukita/lms-backend/internal/handlers"
  "github.com/edukita/lms-backend/internal/requestdata"
  "github.com/edukita/lms-backend/internal/types"
)

// RequireRole gates a route on an exact role match. Runs after RequireAuth.
func (am *AuthMiddleware) RequireRole(roles ...types.Role) gin.HandlerFunc {
  return func(c *gin.Context) {
    rd := requestdata.GetRequestData(c.Request.Context())
    if rd == nil {
      c.AbortWithStatusJSON(http.StatusUnauthorized, handlers.ErrorResponse{Error: "authentication required"})
      return
    }
    for _, role := range roles {
      if rd.Role == role {
        c.Next()
        return
      }
    }
    c.AbortWithStatusJSON(http.StatusForbidden, handlers.ErrorResponse{Error: "permission denied"})
  }
}
