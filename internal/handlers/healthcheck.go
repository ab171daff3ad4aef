package handlers

import (
  "net/http"
  "time"

  "github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
  c.JSON(http.StatusOK, gin.H{
    "status":    "healthy",
    "timestamp": time.Now().Format(time.RFC3339),
  })
}
