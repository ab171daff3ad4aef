package middleware

import (
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/edukita/lms-backend/internal/logger"
)

// RequestLog tags each request with an id and logs method, path, status and
// latency on completion.
func RequestLog(log *logger.Logger) gin.HandlerFunc {
  requestLog := log.With("middleware", "RequestLog")
  return func(c *gin.Context) {
    requestID := uuid.New().String()
    c.Writer.Header().Set("X-Request-ID", requestID)

    start := time.Now()
    c.Next()

    requestLog.Info("request completed",
      "request_id", requestID,
      "method", c.Request.Method,
      "path", c.Request.URL.Path,
      "status", c.Writer.Status(),
      "latency_ms", time.Since(start).Milliseconds(),
    )
  }
}
